package auth

import (
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, "ADMIN")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	claims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_RefreshTokenRejectedAsAccess(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	_, refreshToken, err := jwtService.GenerateTokens(uuid.New(), "USER")
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = &config.AuthConfig{AccessTTL: time.Nanosecond}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), "USER")
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	_, err = jwtService.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, jwtService.GetRefreshTokenDuration())

	cfg := testConfig()
	cfg.Auth = &config.AuthConfig{RefreshTTL: time.Hour}
	jwtService, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, jwtService.GetRefreshTokenDuration())
}
