package router

import (
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/config"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/handler"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/middleware"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/service"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures Gin engine and registers all API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	st := store.New(db, cfg.Security.EncryptionSecret)
	svc := service.New(st)

	// ====== API ======
	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret
	// 登录/注册接口（不需要鉴权）
	authHandler := handler.NewAuthHandler(db, st, jwtSecret, cfg.JWT.ExpireHours)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// 需要登录才能访问的接口
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret, db))

	protected.GET("/me", handler.GetMe)
	protected.POST("/profile/config", handler.UpdateConfig(db))
	protected.POST("/profile/password", handler.ChangePassword(db))
	protected.POST("/profile/security", handler.UpdateSecurity(db))

	transactionHandler := handler.NewTransactionHandler(svc)
	protected.GET("/transactions", transactionHandler.ListTransactions)
	protected.POST("/transactions", transactionHandler.CreateTransaction)
	protected.PUT("/transactions", transactionHandler.UpdateTransaction)
	protected.DELETE("/transactions/:bucketId/:uid", transactionHandler.DeleteTransaction)

	assetHandler := handler.NewAssetHandler(svc)
	protected.GET("/assets", assetHandler.ListAssets)
	protected.POST("/assets", assetHandler.CreateAsset)
	protected.PUT("/assets", assetHandler.UpdateAsset)
	protected.DELETE("/assets/:name", assetHandler.DeleteAsset)

	statisticHandler := handler.NewStatisticHandler(svc)
	protected.GET("/statistics", statisticHandler.GetProjection)

	return r
}
