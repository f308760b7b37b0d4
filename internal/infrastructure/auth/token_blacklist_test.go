package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	bl := NewInMemoryTokenBlacklist()

	t.Run("unknown jti is not blacklisted", func(t *testing.T) {
		blacklisted, err := bl.IsBlacklisted(ctx, "unknown")
		require.NoError(t, err)
		assert.False(t, blacklisted)
	})

	t.Run("added jti is blacklisted", func(t *testing.T) {
		require.NoError(t, bl.AddToBlacklist(ctx, "jti-1", time.Minute))

		blacklisted, err := bl.IsBlacklisted(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, blacklisted)
	})

	t.Run("expired entry is purged", func(t *testing.T) {
		require.NoError(t, bl.AddToBlacklist(ctx, "jti-2", -time.Second))

		blacklisted, err := bl.IsBlacklisted(ctx, "jti-2")
		require.NoError(t, err)
		assert.False(t, blacklisted)
	})
}

func TestInMemoryUserTokenInvalidation(t *testing.T) {
	ctx := context.Background()
	bl := NewInMemoryTokenBlacklist()

	issuedBefore := time.Now().Add(-time.Minute)

	require.NoError(t, bl.AddUserTokensToBlacklist(ctx, "user-1", time.Hour))

	invalidated, err := bl.IsUserTokenInvalidated(ctx, "user-1", issuedBefore)
	require.NoError(t, err)
	assert.True(t, invalidated)

	invalidated, err = bl.IsUserTokenInvalidated(ctx, "user-1", time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, invalidated)

	invalidated, err = bl.IsUserTokenInvalidated(ctx, "other-user", issuedBefore)
	require.NoError(t, err)
	assert.False(t, invalidated)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, VerifyPassword(hash, "correct horse battery"))
	assert.False(t, VerifyPassword(hash, "wrong password"))

	_, err = HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}
