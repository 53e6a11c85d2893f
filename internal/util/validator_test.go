package util

import (
	"testing"
	"time"
)

// TestValidateAmount_Positive 测试正数金额
func TestValidateAmount_Positive(t *testing.T) {
	testCases := []float64{0.01, 1.0, 100.5, 9999999.99}

	for _, amount := range testCases {
		err := ValidateAmount(amount)
		if err != nil {
			t.Errorf("ValidateAmount(%f) error = %v, want nil", amount, err)
		}
	}
}

// TestValidateAmount_NotPositive 测试零和负数金额（异常）
func TestValidateAmount_NotPositive(t *testing.T) {
	testCases := []float64{0, -0.01, -100, -9999.99}

	for _, amount := range testCases {
		err := ValidateAmount(amount)
		if err == nil {
			t.Errorf("ValidateAmount(%f) error = nil, want error", amount)
		}
	}
}

// TestValidateAmount_TooLarge 测试金额过大（异常）
func TestValidateAmount_TooLarge(t *testing.T) {
	err := ValidateAmount(10_000_000_000) // 100亿
	if err == nil {
		t.Error("ValidateAmount(1e10) error = nil, want error")
	}
}

// TestValidateDate_Valid 测试有效日期
func TestValidateDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15",
		time.Now().UTC().Format("2006-01-02"), // 今天也允许
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err != nil {
			t.Errorf("ValidateDate(%q) error = %v, want nil", date, err)
		}
	}
}

// TestValidateDate_InvalidFormat 测试无效格式（异常）
func TestValidateDate_InvalidFormat(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"2024-1-1",
		"not-a-date",
		"2024-13-01", // 月份错误
		"2024-01-32", // 日期错误
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", date)
		}
	}
}

// TestValidateDate_Future 测试未来日期（异常）
func TestValidateDate_Future(t *testing.T) {
	future := time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")
	if err := ValidateDate(future); err == nil {
		t.Errorf("ValidateDate(%q) error = nil, want error", future)
	}
}

// TestValidateCategory 测试分类校验
func TestValidateCategory(t *testing.T) {
	if err := ValidateCategory("餐饮"); err != nil {
		t.Errorf("合法分类不应报错: %v", err)
	}
	if err := ValidateCategory(""); err == nil {
		t.Error("空分类应报错")
	}
	if err := ValidateCategory("   "); err == nil {
		t.Error("全空格分类应报错")
	}

	long := make([]rune, 33)
	for i := range long {
		long[i] = '长'
	}
	if err := ValidateCategory(string(long)); err == nil {
		t.Error("超长分类应报错")
	}
}

// TestValidateAssetName 测试钱包名称校验
func TestValidateAssetName(t *testing.T) {
	valid := []string{"现金钱包", "BCA Bank", "e-Wallet"}
	for _, name := range valid {
		if err := ValidateAssetName(name); err != nil {
			t.Errorf("ValidateAssetName(%q) error = %v, want nil", name, err)
		}
	}
	if err := ValidateAssetName(""); err == nil {
		t.Error("空名称应报错")
	}
	if err := ValidateAssetName("  "); err == nil {
		t.Error("全空格名称应报错")
	}
}

// TestValidateUsername 测试用户名规则
func TestValidateUsername(t *testing.T) {
	valid := []string{"abc", "user_01", "A1234567890123456789"}
	for _, u := range valid {
		if err := ValidateUsername(u); err != nil {
			t.Errorf("ValidateUsername(%q) error = %v, want nil", u, err)
		}
	}

	invalid := []string{"", "ab", "user name", "用户名", "a-b-c", "toolongusernametoolongusername1"}
	for _, u := range invalid {
		if err := ValidateUsername(u); err == nil {
			t.Errorf("ValidateUsername(%q) error = nil, want error", u)
		}
	}
}

// TestValidateEmail 测试邮箱格式
func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.com", "user.name@example.co.id"}
	for _, e := range valid {
		if err := ValidateEmail(e); err != nil {
			t.Errorf("ValidateEmail(%q) error = %v, want nil", e, err)
		}
	}

	invalid := []string{"", "plain", "a@b", "a b@c.com", "@example.com"}
	for _, e := range invalid {
		if err := ValidateEmail(e); err == nil {
			t.Errorf("ValidateEmail(%q) error = nil, want error", e)
		}
	}
}

// TestValidatePassword 测试密码强度
func TestValidatePassword(t *testing.T) {
	valid := []string{"Abcdefg1", "MyPassword123", "Xy9Xy9Xy9Xy9"}
	for _, p := range valid {
		if err := ValidatePassword(p); err != nil {
			t.Errorf("ValidatePassword(%q) error = %v, want nil", p, err)
		}
	}

	invalid := []string{
		"",
		"Ab1",          // 太短
		"abcdefg1",     // 没有大写
		"ABCDEFG1",     // 没有小写
		"Abcdefgh",     // 没有数字
	}
	for _, p := range invalid {
		if err := ValidatePassword(p); err == nil {
			t.Errorf("ValidatePassword(%q) error = nil, want error", p)
		}
	}
}
