package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	tok := signToken(t, exp)

	got, ok := TokenExpiry(tok)
	require.True(t, ok)
	assert.True(t, got.Equal(exp), "got %v want %v", got, exp)
}

func TestTokenExpiry_BearerPrefix(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := "Bearer " + signToken(t, exp)

	got, ok := TokenExpiry(tok)
	require.True(t, ok)
	assert.True(t, got.Equal(exp))
}

func TestTokenExpiry_NotAJWT(t *testing.T) {
	_, ok := TokenExpiry("opaque-session-id")
	assert.False(t, ok)
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, ok := TokenExpiry(signed)
	assert.False(t, ok)
}

func TestTokenExpiry_ExpiredTokenStillParses(t *testing.T) {
	tok := signToken(t, time.Now().Add(-time.Hour))

	got, ok := TokenExpiry(tok)
	require.True(t, ok)
	assert.True(t, got.Before(time.Now()))
}
