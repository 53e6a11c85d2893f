package models

import "time"

// User represents application user.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:64;uniqueIndex;not null"`
	Email        string `gorm:"size:128;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255"` // 空串表示第三方登录、尚未设置密码
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// 安全问题（答案只存哈希，和密码同一套方案）
	SecurityQuiz       string `gorm:"size:128"`
	SecurityAnswerHash string `gorm:"size:255"`

	// 偏好配置
	Currency     string `gorm:"size:8;default:CNY"`
	Language     string `gorm:"size:16;default:zh-CN"`
	PurposeUsage string `gorm:"size:64"` // 记账目的，注册时填写

	IsVerified bool `gorm:"default:false"`

	FailedLoginAttempts int        `gorm:"default:0"` // 连续登录失败次数
	LockedUntil         *time.Time `gorm:"index"`     // 账户锁定到期时间
	LastLoginAt         *time.Time                    // 最近登录时间
	LastLoginIP         string     `gorm:"size:64"`   // 最近登录 IP
}

// HasPassword 是否已设置密码（第三方登录的账号可能没有）。
func (u *User) HasPassword() bool { return u.PasswordHash != "" }

// HasSecurityQuestion 是否已设置安全问题。
func (u *User) HasSecurityQuestion() bool {
	return u.SecurityQuiz != "" && u.SecurityAnswerHash != ""
}
