package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_LockoutAfterFailedLogins(t *testing.T) {
	u := NewUser("u@solkit.fr", "hash")

	for i := 0; i < 4; i++ {
		u.RecordFailedLogin(5, 15*time.Minute)
		assert.False(t, u.IsLocked(), "attempt %d should not lock", i+1)
	}

	u.RecordFailedLogin(5, 15*time.Minute)
	assert.True(t, u.IsLocked())
	require.Error(t, u.CanLogin())

	u.RecordSuccessfulLogin()
	assert.False(t, u.IsLocked())
	assert.Equal(t, 0, u.FailedLoginAttempts)
	require.NotNil(t, u.LastLoginAt)
	require.NoError(t, u.CanLogin())
}

func TestUser_DisabledCannotLogin(t *testing.T) {
	u := NewUser("u@solkit.fr", "hash")
	u.IsActive = false
	require.Error(t, u.CanLogin())
}

func TestUser_ValidateRole(t *testing.T) {
	ctx := context.Background()

	u := NewUser("u@solkit.fr", "hash")
	require.NoError(t, u.Validate(ctx))

	u.Role = "superuser"
	require.Error(t, u.Validate(ctx))

	u.Role = RoleAdmin
	require.NoError(t, u.Validate(ctx))
	assert.True(t, u.IsAdmin())
}

func TestUser_FullName(t *testing.T) {
	u := NewUser("u@solkit.fr", "hash")
	assert.Equal(t, "u@solkit.fr", u.FullName())

	u.FirstName = "Jean"
	assert.Equal(t, "Jean", u.FullName())

	u.LastName = "Martin"
	assert.Equal(t, "Jean Martin", u.FullName())
}

func TestRefreshToken_IsValid(t *testing.T) {
	tok := RefreshToken{ExpiresAt: time.Now().Add(time.Hour)}
	assert.True(t, tok.IsValid())

	expired := RefreshToken{ExpiresAt: time.Now().Add(-time.Minute)}
	assert.False(t, expired.IsValid())

	now := time.Now()
	revoked := RefreshToken{ExpiresAt: time.Now().Add(time.Hour), RevokedAt: &now}
	assert.False(t, revoked.IsValid())
}
