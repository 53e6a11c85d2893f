package handler

import (
	"net/http"
	"strings"

	"github.com/aqil2514/server-pengelolaan-keuangan/internal/middleware"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateConfigReq 更新偏好配置请求
type UpdateConfigReq struct {
	Currency     string `json:"currency" binding:"max=8"`
	Language     string `json:"language" binding:"max=16"`
	PurposeUsage string `json:"purpose_usage" binding:"max=64"`
}

// ChangePasswordReq 修改密码请求。第三方登录的账号首次设置密码时
// old_password 允许为空。
type ChangePasswordReq struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdateSecurityReq 设置/修改安全问题请求
type UpdateSecurityReq struct {
	Password string `json:"password"` // 已设置密码的账号需要验证密码
	Quiz     string `json:"quiz" binding:"required,max=128"`
	Answer   string `json:"answer" binding:"required,max=128"`
}

// UpdateConfig 更新当前用户的货币/语言/用途等配置
func UpdateConfig(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
			return
		}

		var req UpdateConfigReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
			return
		}

		updates := map[string]any{}
		if req.Currency != "" {
			updates["currency"] = req.Currency
		}
		if req.Language != "" {
			updates["language"] = req.Language
		}
		if req.PurposeUsage != "" {
			updates["purpose_usage"] = req.PurposeUsage
		}
		if len(updates) == 0 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "没有要更新的内容")
			return
		}

		if err := db.Model(user).Updates(updates).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "更新失败")
			return
		}

		util.Success(c, util.Response{
			"config": gin.H{
				"currency":      user.Currency,
				"language":      user.Language,
				"purpose_usage": user.PurposeUsage,
			},
		})
	}
}

// ChangePassword 修改当前用户密码（未设置过密码时直接设置）
func ChangePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
			return
		}

		var req ChangePasswordReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
			return
		}

		// 已有密码必须先验证旧密码
		if user.HasPassword() && !util.CheckPassword(req.OldPassword, user.PasswordHash) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "原密码错误")
			return
		}

		if err := util.ValidatePassword(req.NewPassword); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "密码需8-32位，且包含大写、小写字母和数字")
			return
		}

		hash, err := util.HashPassword(req.NewPassword)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "密码加密失败")
			return
		}

		if err := db.Model(user).Update("password_hash", hash).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "更新密码失败")
			return
		}

		util.Success(c, util.Response{
			"message": "密码修改成功，请使用新密码重新登录",
		})
	}
}

// UpdateSecurity 设置或修改安全问题
func UpdateSecurity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "未登录")
			return
		}

		var req UpdateSecurityReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
			return
		}

		if user.HasPassword() && !util.CheckPassword(req.Password, user.PasswordHash) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "密码验证失败")
			return
		}

		answerHash, err := util.HashPassword(strings.TrimSpace(req.Answer))
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "安全答案加密失败")
			return
		}

		if err := db.Model(user).Updates(map[string]any{
			"security_quiz":        req.Quiz,
			"security_answer_hash": answerHash,
		}).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "更新失败")
			return
		}

		util.Success(c, util.Response{
			"message": "安全问题设置成功",
		})
	}
}
