package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheService_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	cache, _ := newMiniredisCache(t)

	val, err := cache.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))
	val, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	require.NoError(t, cache.Delete(ctx, "k"))
	val, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestCacheService_IncrementRateLimit(t *testing.T) {
	ctx := context.Background()
	cache, mr := newMiniredisCache(t)

	for want := 1; want <= 3; want++ {
		count, err := cache.IncrementRateLimit(ctx, "10.0.0.1", "/quotes/generate", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	assert.Equal(t, time.Minute, mr.TTL("ratelimit:10.0.0.1:/quotes/generate"))

	mr.FastForward(2 * time.Minute)
	count, err := cache.IncrementRateLimit(ctx, "10.0.0.1", "/quotes/generate", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCacheService_PingAndStats(t *testing.T) {
	cache, _ := newMiniredisCache(t)

	require.NoError(t, cache.Ping(context.Background()))
	stats := cache.GetConnectionStats()
	assert.Contains(t, stats, "total_conns")
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(nil))
	assert.False(t, isRetryableError(redis.Nil))
	assert.False(t, isRetryableError(errors.New("WRONGTYPE Operation against a key")))
	assert.True(t, isRetryableError(errors.New("dial tcp: connection refused")))
	assert.True(t, isRetryableError(errors.New("i/o timeout")))
}

func TestHealthService_CacheStatus(t *testing.T) {
	cache, _ := newMiniredisCache(t)
	hs := NewHealthService(gecho.NewDefaultLogger(), cache)

	status, err := hs.GetCacheHealthStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Enabled)
	assert.True(t, status.Connected)

	disabled, err := NewHealthService(gecho.NewDefaultLogger(), nil).GetCacheHealthStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, disabled.Enabled)
}
