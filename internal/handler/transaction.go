package handler

import (
	"net/http"

	"github.com/aqil2514/server-pengelolaan-keuangan/internal/middleware"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/service"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/util"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 负责记账相关接口。所有业务都在 service 里，
// 这里只做 JSON 绑定和结果转发。
type TransactionHandler struct {
	Service *service.Service
}

func NewTransactionHandler(svc *service.Service) *TransactionHandler {
	return &TransactionHandler{Service: svc}
}

// writeResult 把引擎的统一返回结构原样写成 HTTP 响应。
func writeResult(c *gin.Context, res service.Result) {
	status := res.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, res)
}

// ListTransactions 查询完整账本（按日分桶）
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	writeResult(c, h.Service.ListTransactions(user.ID))
}

// CreateTransaction 记一笔（收入/支出/转账）
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	var form service.TransactionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	writeResult(c, h.Service.RecordTransaction(form, user.ID))
}

// UpdateTransaction 修改一条已有流水（可能改日期）
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	var form service.TransactionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	writeResult(c, h.Service.EditTransaction(form, user.ID))
}

// DeleteTransaction 删除一条流水
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	bucketID := c.Param("bucketId")
	lineUID := c.Param("uid")

	writeResult(c, h.Service.DeleteTransaction(bucketID, lineUID, user.ID))
}
