package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	user := NewUser("vendeur@solkit.fr", "hash")
	token, expiresAt, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, time.Minute)

	userCtx, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), userCtx.UserID)
	assert.Equal(t, user.Email, userCtx.Email)
	assert.Equal(t, []string{RoleCommercial}, userCtx.Roles)
	assert.False(t, userCtx.IsAdmin)
}

func TestJWTService_AdminClaim(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	admin := NewUser("admin@solkit.fr", "hash")
	admin.Role = RoleAdmin

	token, _, err := svc.GenerateAccessToken(admin)
	require.NoError(t, err)

	userCtx, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, userCtx.IsAdmin)
	assert.Equal(t, []string{RoleAdmin}, userCtx.Roles)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(DefaultJWTConfig("secret-a"))
	verifier := NewJWTService(DefaultJWTConfig("secret-b"))

	token, _, err := issuer.GenerateAccessToken(NewUser("u@solkit.fr", "hash"))
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
}
