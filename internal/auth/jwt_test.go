package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rms-backend/internal/config"
	"rms-backend/internal/models"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "rms-backend"
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewJWTManager(testConfig("test-secret"))

	token, err := m.GenerateToken(&models.User{
		ID:       "1",
		Username: "admin",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "rms-backend", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTManager(testConfig("secret-a"))
	verifier := NewJWTManager(testConfig("secret-b"))

	token, err := issuer.GenerateToken(&models.User{ID: "1", Username: "admin"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	m := NewJWTManager(testConfig("test-secret"))

	_, err := m.ValidateToken("not.a.token")
	assert.Error(t, err)
}
