package ledger

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrCorruptedRecord 表示存储的密文解不开或解出来不是合法 JSON。
// 对当前请求来说这是致命错误：宁可报错，也不能悄悄返回空数据掩盖数据丢失。
var ErrCorruptedRecord = errors.New("corrupted record")

// DeriveKey 用服务端密钥 + 用户标识派生出 32 字节的 AES 密钥
// （HMAC-SHA256）。只拿用户 id 当密码等于没加密，所以必须混入服务端密钥。
func DeriveKey(secret, userKey string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(userKey))
	return mac.Sum(nil)
}

// EncryptJSON 把任意可 JSON 序列化的值加密为 base64(nonce+ciphertext)。
// 本函数不理解账本/钱包语义，只是一个对称编解码器。
func EncryptJSON(v any, key []byte) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("new cipher: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("new gcm: %w", err)
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("nonce: %w", err)
	}

	ciphertext := aesgcm.Seal(nil, nonce, plaintext, nil)
	// 前面拼上 nonce，解密时拆回来
	return base64.StdEncoding.EncodeToString(append(nonce, ciphertext...)), nil
}

// DecryptJSON 解密 EncryptJSON 的输出并反序列化到 out。
// 空输入直接返回 nil 且不动 out（调用方传入已初始化的空集合即可）；
// 非空输入解不开时一律返回包了 ErrCorruptedRecord 的错误。
func DecryptJSON(enc string, key []byte, out any) error {
	if enc == "" {
		return nil
	}

	data, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return fmt.Errorf("%w: base64: %v", ErrCorruptedRecord, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("new cipher: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("new gcm: %w", err)
	}

	ns := aesgcm.NonceSize()
	if len(data) < ns {
		return fmt.Errorf("%w: cipher too short", ErrCorruptedRecord)
	}
	nonce, ciphertext := data[:ns], data[ns:]

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("%w: decrypt: %v", ErrCorruptedRecord, err)
	}

	if err := json.Unmarshal(plaintext, out); err != nil {
		return fmt.Errorf("%w: parse: %v", ErrCorruptedRecord, err)
	}
	return nil
}
