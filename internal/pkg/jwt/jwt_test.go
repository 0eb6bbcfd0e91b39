package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "hr@example.com", user.RoleHR)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "hr@example.com", claims["email"])
	assert.Equal(t, "hr", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestValidateRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	refresh, _, err := svc.GenerateRefreshToken("user-2")
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-2", userID)
}

func TestValidateRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	access, _, err := svc.GenerateAccessToken("user-3", "emp@example.com", user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestValidateRefreshToken_RejectsForeignSignature(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")
	other := NewJWTService("another-secret-entirely", "1h", "24h")

	refresh, _, err := other.GenerateRefreshToken("user-4")
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(refresh)
	assert.Error(t, err)
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "24h")

	_, _, err := svc.GenerateAccessToken("user-5", "x@example.com", user.RoleEmployee)
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	expiresAt := time.Now().Add(24 * time.Hour).Unix()
	cookie := svc.RefreshTokenCookie("some-token", expiresAt)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
}
