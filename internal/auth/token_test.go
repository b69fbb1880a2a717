package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-123", "secret")
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)

	// 30-day expiry.
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, (30 * 24 * time.Hour).Hours(), ttl.Hours(), 1)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "secret")
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestTokenEmptySecret(t *testing.T) {
	_, err := GenerateToken("user-123", "")
	assert.Error(t, err)
}

func TestTokenGarbageRejected(t *testing.T) {
	_, err := ParseToken("not-a-token", "secret")
	assert.Error(t, err)
}
