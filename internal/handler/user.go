package handler

import (
	"net/http"

	"github.com/aqil2514/server-pengelolaan-keuangan/internal/middleware"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/util"

	"github.com/gin-gonic/gin"
)

// GetMe 返回当前登录用户信息（需要经过 AuthMiddleware）
func GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"config": gin.H{
				"currency":      user.Currency,
				"language":      user.Language,
				"purpose_usage": user.PurposeUsage,
			},
			"status": gin.H{
				"has_password":          user.HasPassword(),
				"is_verified":           user.IsVerified,
				"has_security_question": user.HasSecurityQuestion(),
			},
			"created_at": user.CreatedAt,
		},
	})
}
