package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "user@example.com", "patient", time.Hour)
	require.NoError(t, err)

	id, role, err := IdentityFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
	assert.Equal(t, "patient", role)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "user@example.com", "patient", -time.Minute)
	require.NoError(t, err)

	_, _, err = IdentityFromToken(token)
	assert.Error(t, err)
}

func TestMangledTokenIsRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "user@example.com", "patient", time.Hour)
	require.NoError(t, err)

	_, _, err = IdentityFromToken(token + "x")
	assert.Error(t, err)

	_, _, err = IdentityFromToken("not-a-token")
	assert.Error(t, err)
}
