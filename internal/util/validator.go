package util

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateAmount 验证金额（必须为正数且不超过上限，符号由交易类型决定）
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %f", amount)
	}
	if amount >= 10_000_000_000 { // 限制最大金额为100亿
		return fmt.Errorf("amount too large, got %f", amount)
	}
	return nil
}

// ValidateDate 验证日期格式（必须为 YYYY-MM-DD 且不晚于今天）
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	if t.Format("2006-01-02") > time.Now().UTC().Format("2006-01-02") {
		return fmt.Errorf("date is in the future: %s", dateStr)
	}
	return nil
}

// ValidateCategory 验证分类（不能为空且长度合理）
func ValidateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("category is empty")
	}
	if len([]rune(category)) > 32 {
		return fmt.Errorf("category too long, max 32 characters")
	}
	return nil
}

// ValidateAssetName 验证钱包名称（不能为空且长度合理）
func ValidateAssetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("asset name is empty")
	}
	if len([]rune(name)) > 32 {
		return fmt.Errorf("asset name too long, max 32 characters")
	}
	return nil
}

// ValidateUsername 用户名规则：3-20 位，仅字母、数字、下划线
func ValidateUsername(username string) error {
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("username must be 3-20 letters, digits or underscores")
	}
	return nil
}

// ValidateEmail 简单的邮箱格式检查
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return fmt.Errorf("invalid email: %q", email)
	}
	return nil
}

// ValidatePassword 检查密码强度：8-32 位，包含大小写字母和数字
func ValidatePassword(pwd string) error {
	if len(pwd) < 8 || len(pwd) > 32 {
		return fmt.Errorf("password must be 8-32 characters")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, ch := range pwd {
		switch {
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		case ch >= 'a' && ch <= 'z':
			hasLower = true
		case ch >= '0' && ch <= '9':
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("password must contain upper, lower and digit")
	}
	return nil
}
