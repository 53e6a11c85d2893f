package util

import (
	"strings"
	"testing"
)

// ============ 密码哈希测试 ============

func TestHashPassword(t *testing.T) {
	password := "MyPassword123"

	// 测试正常哈希
	hashed, err := HashPassword(password)
	if err != nil {
		t.Fatalf("哈希失败: %v", err)
	}
	if !strings.Contains(hashed, "$") {
		t.Error("哈希格式错误，应包含 $")
	}

	// 测试空密码
	_, err = HashPassword("")
	if err == nil {
		t.Error("空密码应返回错误")
	}

	// 测试相同密码生成不同哈希
	hashed2, _ := HashPassword(password)
	if hashed == hashed2 {
		t.Error("相同密码应生成不同哈希（随机salt）")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "TestPass456"
	hashed, _ := HashPassword(password)

	// 测试正确密码
	if !CheckPassword(password, hashed) {
		t.Error("正确密码验证失败")
	}

	// 测试错误密码
	if CheckPassword("WrongPass", hashed) {
		t.Error("错误密码不应通过验证")
	}

	// 测试空输入
	if CheckPassword("", hashed) {
		t.Error("空密码不应通过验证")
	}
	if CheckPassword(password, "") {
		t.Error("空哈希不应通过验证")
	}

	// 测试无效格式
	if CheckPassword(password, "invalid-format") {
		t.Error("无效格式不应通过验证")
	}
}

// 安全问题的答案走同一套哈希，大小写敏感
func TestCheckPassword_SecurityAnswer(t *testing.T) {
	answer := "我的第一只猫叫咪咪"
	hashed, err := HashPassword(answer)
	if err != nil {
		t.Fatalf("哈希失败: %v", err)
	}
	if !CheckPassword(answer, hashed) {
		t.Error("正确答案验证失败")
	}
	if CheckPassword("别的答案", hashed) {
		t.Error("错误答案不应通过验证")
	}
}

// ============ 随机字符串测试 ============

func TestRandomString(t *testing.T) {
	// 测试正常生成
	str, err := RandomString(32)
	if err != nil {
		t.Fatalf("生成失败: %v", err)
	}
	if len(str) != 32 {
		t.Errorf("长度错误: 期望32，实际%d", len(str))
	}

	// 测试唯一性
	str2, _ := RandomString(32)
	if str == str2 {
		t.Error("应生成不同的随机字符串")
	}

	// 测试非法长度
	if _, err := RandomString(0); err == nil {
		t.Error("长度0应返回错误")
	}
	if _, err := RandomString(-5); err == nil {
		t.Error("负数长度应返回错误")
	}
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("BenchmarkPass123")
	}
}
