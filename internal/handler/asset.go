package handler

import (
	"net/http"

	"github.com/aqil2514/server-pengelolaan-keuangan/internal/middleware"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/service"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/util"

	"github.com/gin-gonic/gin"
)

// AssetHandler 负责钱包相关接口
type AssetHandler struct {
	Service *service.Service
}

func NewAssetHandler(svc *service.Service) *AssetHandler {
	return &AssetHandler{Service: svc}
}

// ListAssets 查询钱包表（首次访问自动种默认钱包）
func (h *AssetHandler) ListAssets(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	writeResult(c, h.Service.ListAssets(user.ID))
}

// CreateAsset 新建钱包
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	var form service.AssetForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	writeResult(c, h.Service.CreateAsset(form, user.ID))
}

// UpdateAsset 修改钱包（改名会级联改写账本流水）
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	var form service.AssetForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	writeResult(c, h.Service.UpdateAsset(form, user.ID))
}

// DeleteAsset 删除钱包。?option=delete-transaction 连流水一起删，
// ?option=move-transaction to-xxx 把流水挪到别的钱包。
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
		return
	}

	name := c.Param("name")
	option := c.DefaultQuery("option", "delete-transaction")

	writeResult(c, h.Service.DeleteAsset(name, option, user.ID))
}
