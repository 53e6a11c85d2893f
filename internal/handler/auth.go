package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/aqil2514/server-pengelolaan-keuangan/internal/models"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/store"
	"github.com/aqil2514/server-pengelolaan-keuangan/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler 负责登录/注册相关接口
type AuthHandler struct {
	DB        *gorm.DB
	Store     *store.Store
	JWTSecret string
	TokenTTL  time.Duration
}

// NewAuthHandler 构造函数
func NewAuthHandler(db *gorm.DB, st *store.Store, jwtSecret string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		DB:        db,
		Store:     st,
		JWTSecret: jwtSecret,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

// ---------- 注册 ----------

type registerReq struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	SecurityQuiz    string `json:"security_quiz" binding:"max=128"`
	SecurityAnswer  string `json:"security_answer" binding:"max=128"`
	Currency        string `json:"currency" binding:"max=8"`
	Language        string `json:"language" binding:"max=16"`
	PurposeUsage    string `json:"purpose_usage" binding:"max=64"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := util.ValidateUsername(req.Username); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "用户名必须为3-20位字母、数字或下划线")
		return
	}
	if err := util.ValidateEmail(req.Email); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "邮箱格式不正确")
		return
	}
	if err := util.ValidatePassword(req.Password); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "密码需8-32位，且包含大写、小写字母和数字")
		return
	}
	if req.Password != req.ConfirmPassword {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "两次输入的密码不一致")
		return
	}
	// 安全问题要么都填，要么都不填
	if (req.SecurityQuiz == "") != (req.SecurityAnswer == "") {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "安全问题和答案需要一起设置")
		return
	}

	// 不区分大小写唯一：使用 LOWER() 检查
	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", req.Username, req.Email).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询用户失败")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusConflict, util.CodeConflict, "用户名或邮箱已存在")
		return
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "密码加密失败")
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		SecurityQuiz: req.SecurityQuiz,
		Currency:     req.Currency,
		Language:     req.Language,
		PurposeUsage: req.PurposeUsage,
	}
	if req.SecurityAnswer != "" {
		answerHash, err := util.HashPassword(strings.TrimSpace(req.SecurityAnswer))
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "安全答案加密失败")
			return
		}
		user.SecurityAnswerHash = answerHash
	}

	if err := h.DB.Create(&user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "创建用户失败")
		return
	}

	// 注册即种好加密数据行：空账本 + 默认钱包
	if _, err := h.Store.LoadUserData(user.ID); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "初始化用户数据失败")
		return
	}

	util.Success(c, util.Response{
		"message": "注册成功",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// ---------- 登录 ----------

type loginReq struct {
	Account  string `json:"account" binding:"required"` // 用户名或邮箱
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	req.Account = strings.TrimSpace(req.Account)

	var user models.User
	// 用户名或邮箱均可登录，不区分大小写
	if err := h.DB.Where("LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", req.Account, req.Account).
		First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "账号或密码错误")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询用户失败")
		}
		return
	}

	now := time.Now()

	// 检查是否被锁定
	if user.LockedUntil != nil && now.Before(*user.LockedUntil) {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "账户已锁定，请稍后再试")
		return
	}

	// 第三方登录的账号没有密码，不能走密码登录
	if !user.HasPassword() {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "该账号未设置密码，请使用第三方方式登录")
		return
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		// 密码错误：递增失败次数，达到5次则锁定10分钟
		user.FailedLoginAttempts++
		if user.FailedLoginAttempts >= 5 {
			lockUntil := now.Add(10 * time.Minute)
			user.LockedUntil = &lockUntil
			user.FailedLoginAttempts = 0
		}
		_ = h.DB.Save(&user).Error
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "账号或密码错误")
		return
	}

	// 登录成功：重置失败次数和锁定时间，记录登录 IP 和时间
	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	user.LastLoginIP = c.ClientIP()
	user.LastLoginAt = &now
	_ = h.DB.Save(&user).Error

	token, err := util.GenerateToken(h.JWTSecret, user.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "生成 token 失败")
		return
	}

	util.Success(c, util.Response{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
