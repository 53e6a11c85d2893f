package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// ============ 密钥派生测试 ============

func TestDeriveKey(t *testing.T) {
	key := DeriveKey("server-secret", "42")
	if len(key) != 32 {
		t.Errorf("密钥长度错误: 期望32，实际%d", len(key))
	}

	// 同输入同输出
	if string(key) != string(DeriveKey("server-secret", "42")) {
		t.Error("相同输入应派生相同密钥")
	}

	// 不同用户不同密钥
	if string(key) == string(DeriveKey("server-secret", "43")) {
		t.Error("不同用户应派生不同密钥")
	}

	// 不同服务端密钥不同密钥
	if string(key) == string(DeriveKey("other-secret", "42")) {
		t.Error("不同服务端密钥应派生不同密钥")
	}
}

// ============ 编解码测试 ============

func TestEncryptDecryptJSON(t *testing.T) {
	key := DeriveKey("test-secret", "1")

	original := Ledger{
		{
			ID:     "bucket-1",
			Header: NewDay(2024, time.January, 5),
			Body: []LineItem{
				{UID: "line-1", Asset: "现金钱包", Category: "工资", Item: "一月工资", Price: decimal.NewFromInt(50000)},
				{UID: "line-2", Asset: "现金钱包", Category: "餐饮", Item: "晚饭", Price: decimal.NewFromInt(-200)},
			},
		},
	}

	enc, err := EncryptJSON(original, key)
	if err != nil {
		t.Fatalf("加密失败: %v", err)
	}

	var back Ledger
	if err := DecryptJSON(enc, key, &back); err != nil {
		t.Fatalf("解密失败: %v", err)
	}

	if len(back) != 1 || len(back[0].Body) != 2 {
		t.Fatalf("结构不一致: %+v", back)
	}
	if back[0].Header != original[0].Header {
		t.Errorf("日期不一致: 期望 %s，实际 %s", original[0].Header, back[0].Header)
	}
	if !back[0].Body[0].Price.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("金额不一致: %s", back[0].Body[0].Price)
	}
}

func TestEncryptJSON_DifferentCiphertext(t *testing.T) {
	key := DeriveKey("test-secret", "1")
	table := DefaultAssets()

	enc1, _ := EncryptJSON(table, key)
	enc2, _ := EncryptJSON(table, key)
	if enc1 == enc2 {
		t.Error("随机 nonce 下相同明文应生成不同密文")
	}
}

func TestDecryptJSON_EmptyInput(t *testing.T) {
	key := DeriveKey("test-secret", "1")

	// 空输入不报错、不动 out（调用方传入的空集合保持为空）
	table := AssetTable{}
	if err := DecryptJSON("", key, &table); err != nil {
		t.Fatalf("空输入不应报错: %v", err)
	}
	if len(table) != 0 {
		t.Errorf("空输入不应产生数据: %+v", table)
	}
}

func TestDecryptJSON_WrongKey(t *testing.T) {
	enc, _ := EncryptJSON(DefaultAssets(), DeriveKey("secret", "1"))

	var table AssetTable
	err := DecryptJSON(enc, DeriveKey("secret", "2"), &table)
	if err == nil {
		t.Fatal("错误密钥应解密失败")
	}
	if !errors.Is(err, ErrCorruptedRecord) {
		t.Errorf("应返回 ErrCorruptedRecord，实际 %v", err)
	}
}

func TestDecryptJSON_InvalidData(t *testing.T) {
	key := DeriveKey("secret", "1")

	testCases := []string{
		"not-base64!!!",
		"YWJj", // 合法 base64 但太短
		"YWJjZGVmZ2hpamtsbW5vcHFyc3R1dnd4eXo", // 够长但不是合法密文
	}

	for _, enc := range testCases {
		var table AssetTable
		if err := DecryptJSON(enc, key, &table); !errors.Is(err, ErrCorruptedRecord) {
			t.Errorf("DecryptJSON(%q) 应返回 ErrCorruptedRecord，实际 %v", enc, err)
		}
	}
}

// ============ 性能测试 ============

func BenchmarkEncryptJSON(b *testing.B) {
	key := DeriveKey("bench-secret", "1")
	table := DefaultAssets()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EncryptJSON(table, key)
	}
}

func BenchmarkDecryptJSON(b *testing.B) {
	key := DeriveKey("bench-secret", "1")
	enc, _ := EncryptJSON(DefaultAssets(), key)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var table AssetTable
		DecryptJSON(enc, key, &table)
	}
}
