package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedValue struct {
	Name  string
	Count int
}

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewWithClient(client, time.Minute), mr
}

func TestCache_SetAndGet(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	expected := cachedValue{Name: "drinks", Count: 3}
	require.NoError(t, cache.Set(ctx, "value:1", expected))

	var actual cachedValue
	found, err := cache.Get(ctx, "value:1", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
	assert.Equal(t, time.Minute, mr.TTL("value:1"))
}

func TestCache_GetMiss(t *testing.T) {
	cache, _ := setupTestCache(t)

	var out cachedValue
	found, err := cache.Get(context.Background(), "missing", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_GetInvalidJSON(t *testing.T) {
	cache, mr := setupTestCache(t)
	require.NoError(t, mr.Set("bad", "not-json"))

	var out cachedValue
	found, err := cache.Get(context.Background(), "bad", &out)
	assert.False(t, found)
	assert.Error(t, err)
}

func TestCache_Invalidate(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", "1"))
	require.NoError(t, cache.Set(ctx, "b", "2"))

	require.NoError(t, cache.Invalidate(ctx, "a", "b"))
	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))

	require.NoError(t, cache.Invalidate(ctx))
}

func TestNewWithClient_DefaultTTL(t *testing.T) {
	cache := NewWithClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}), 0)
	assert.Equal(t, defaultTTL, cache.ttl)
}
