package handler

import (
	"net/http"

	"github.com/aqil2514/server-pengelolaan-keuangan/internal/middleware"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/service"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/util"

	"github.com/gin-gonic/gin"
)

// StatisticHandler 负责统计接口
type StatisticHandler struct {
	Service *service.Service
}

func NewStatisticHandler(svc *service.Service) *StatisticHandler {
	return &StatisticHandler{Service: svc}
}

// GetProjection 返回各钱包占总余额的百分比（环形图数据）
func (h *StatisticHandler) GetProjection(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	writeResult(c, h.Service.GetProjection(user.ID))
}
