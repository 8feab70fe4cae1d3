package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreecacheLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	limiter := NewFreecacheLimiter(3)

	for i := 0; i < 3; i++ {
		allowed, _, err := limiter.Allow(ctx, "login::10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, retryAfter, err := limiter.Allow(ctx, "login::10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Positive(t, retryAfter.Seconds())

	// another key is unaffected
	allowed, _, err = limiter.Allow(ctx, "login::10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestFreecacheLimiter_Disabled(t *testing.T) {
	ctx := context.Background()
	limiter := NewFreecacheLimiter(0)

	for i := 0; i < 100; i++ {
		allowed, _, err := limiter.Allow(ctx, "login::10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
