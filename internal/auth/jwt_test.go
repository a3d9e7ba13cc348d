package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.GenerateToken("admin", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-one", time.Hour).GenerateToken("admin", RoleAdmin)
	require.NoError(t, err)

	_, err = NewJWTManager("secret-two", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.GenerateToken("admin", RoleAdmin)
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	_, err := manager.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-123")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "rahasia-123"))
	assert.False(t, VerifyPassword(hash, "salah"))
}
