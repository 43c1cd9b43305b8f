package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := GeneratePasswordHash("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	assert.True(t, CheckPasswordHash(hash, "correct-horse"))
	assert.False(t, CheckPasswordHash(hash, "wrong"))
	assert.False(t, CheckPasswordHash("not-a-hash", "correct-horse"))
}

func TestGetSecureToken(t *testing.T) {
	a, err := GetSecureToken(32)
	require.NoError(t, err)
	b, err := GetSecureToken(32)
	require.NoError(t, err)

	// base64url 无填充：32 字节 -> 43 字符
	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "+")
	assert.NotContains(t, a, "/")
	assert.NotContains(t, a, "=")
}

func TestGetRandomString(t *testing.T) {
	s := GetRandomString(32)
	assert.Len(t, s, 32)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("30m")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, d)

	d, err = ParseDuration("2d")
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, d)

	_, err = ParseDuration("bogus")
	assert.Error(t, err)
}
