package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	token, err := GenerateToken("user-123", "publicista")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "publicista", claims.Role)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-a")
	token, err := GenerateToken("user-123", "admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secreto-b")
	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	_, err := VerifyToken("esto.no.es-un-jwt")
	assert.Error(t, err)
}
