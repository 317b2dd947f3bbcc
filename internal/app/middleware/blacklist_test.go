package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBlacklist(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	b := NewMemoryBlacklist()
	b.now = func() time.Time { return now }

	require.NoError(t, b.WriteJWTToBlacklist(ctx, "a", time.Minute))

	ok, err := b.IsJWTBlacklisted(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = b.IsJWTBlacklisted(ctx, "b")
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	ok, _ = b.IsJWTBlacklisted(ctx, "a")
	assert.False(t, ok, "expired entries are not revoked any more")

	require.NoError(t, b.WriteJWTToBlacklist(ctx, "c", time.Minute))
	assert.NotContains(t, b.tokens, "a")
}
