package util

import (
	"crypto/rand"
	"encoding/base64"
	mathrand "math/rand"
)

// GetRandomString 生成指定长度的随机字符串
func GetRandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	b := make([]byte, length)
	for i := range b {
		// 直接使用全局 rand，无需每次都 NewSource
		b[i] = charset[mathrand.Intn(len(charset))]
	}
	return string(b)
}

// GetSecureToken generates a URL-safe random token with n bytes of entropy
// from crypto/rand. Used for share-link tokens, which must be unguessable.
// GetSecureToken 使用 crypto/rand 生成 n 字节熵的 URL 安全随机 Token，
// 用于分享链接 Token，必须不可猜测。
func GetSecureToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
