// internal/pkg/auth/auth_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/your-org/warehouse-backend/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "warehouse-test"
	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	cfg.JWT.AccessTokenExpiry = 15 * time.Minute
	cfg.JWT.RefreshTokenExpiry = 7 * 24 * time.Hour
	cfg.Security.BcryptCost = 4 // min cost keeps the test fast
	return cfg
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken(42, "operator@example.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "operator@example.com", claims.Email)
	require.True(t, claims.IsAdmin)
	require.Equal(t, "access", claims.TokenType)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	manager := NewJWTManager(testConfig())

	refresh, err := manager.GenerateRefreshToken(7, "operator@example.com")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(refresh)
	require.Error(t, err)

	claims, err := manager.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.UserID)
	require.False(t, claims.IsAdmin)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken(1, "a@example.com", false)
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWT.Secret = "ffffffffffffffffffffffffffffffff"
	other := NewJWTManager(otherCfg)

	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	require.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("Bearer abc.def.ghi"))
	require.Empty(t, ExtractTokenFromHeader(""))
	require.Empty(t, ExtractTokenFromHeader("abc.def.ghi"))
	require.Empty(t, ExtractTokenFromHeader("Basic abc"))
}

func TestPasswordHashAndVerify(t *testing.T) {
	manager := NewPasswordManager(testConfig())

	hash, err := manager.HashPassword("Sup3rSecret")
	require.NoError(t, err)
	require.NotEqual(t, "Sup3rSecret", hash)

	require.NoError(t, manager.VerifyPassword("Sup3rSecret", hash))
	require.Error(t, manager.VerifyPassword("wrong-password", hash))
}

func TestValidatePassword(t *testing.T) {
	manager := NewPasswordManager(testConfig())

	require.Error(t, manager.ValidatePassword("short1A"))
	require.Error(t, manager.ValidatePassword("alllowercase1"))
	require.Error(t, manager.ValidatePassword("ALLUPPERCASE1"))
	require.Error(t, manager.ValidatePassword("NoNumbersHere"))
	require.NoError(t, manager.ValidatePassword("Sup3rSecret"))
}
