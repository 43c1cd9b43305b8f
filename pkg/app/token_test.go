package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "test-secret",
		Expiry:    time.Hour,
	})

	token, err := tm.Generate(42, "user@example.com", "127.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, DefaultTokenIssuer, claims.Issuer)

	assert.NoError(t, tm.Validate(token))
}

func TestTokenWrongKey(t *testing.T) {
	tm := NewTokenManager(TokenConfig{SecretKey: "key-a", Expiry: time.Hour})

	token, err := tm.Generate(1, "a@example.com", "")
	require.NoError(t, err)

	_, err = ParseTokenWithKey(token, "key-b")
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager(TokenConfig{SecretKey: "key", Expiry: -time.Minute})

	token, err := tm.Generate(1, "a@example.com", "")
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := ParseTokenWithKey("not.a.jwt", "key")
	assert.Error(t, err)
}
