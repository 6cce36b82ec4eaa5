// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	SetJWTSecret("test-secret")
	userID := uuid.New()

	token, err := GenerateJWT(userID, "Asha Rao", "user", 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "Asha Rao", claims.Name)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "renters", claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateJWTExpired(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT(uuid.New(), "Asha Rao", "user", -1)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	SetJWTSecret("test-secret")
	token, err := GenerateJWT(uuid.New(), "Asha Rao", "admin", 1)
	require.NoError(t, err)

	SetJWTSecret("a-different-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	SetJWTSecret("test-secret")

	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}
