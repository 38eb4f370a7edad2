package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmationCache_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewConfirmationCache(client)
	ctx := context.Background()

	traceID := "trace-1700000000000-deadbeef"
	value := []byte(`{"trace_id":"trace-1700000000000-deadbeef","status":"CONFIRMED"}`)

	// Get before set => nil
	result, err := cache.Get(ctx, traceID)
	assert.NoError(t, err)
	assert.Nil(t, result)

	// Set
	err = cache.Set(ctx, traceID, value, 24*time.Hour)
	require.NoError(t, err)

	// Get after set
	result, err = cache.Get(ctx, traceID)
	require.NoError(t, err)
	assert.Equal(t, value, result)
}

func TestConfirmationCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewConfirmationCache(client)
	ctx := context.Background()

	traceID := "trace-1700000000001-cafebabe"
	value := []byte(`{"status":"FAILED"}`)

	err := cache.Set(ctx, traceID, value, 1*time.Second)
	require.NoError(t, err)

	// Fast-forward time in miniredis
	s.FastForward(2 * time.Second)

	result, err := cache.Get(ctx, traceID)
	assert.NoError(t, err)
	assert.Nil(t, result, "expired key should return nil")
}

func TestConfirmationCache_KeyPrefix(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewConfirmationCache(client)
	ctx := context.Background()

	err := cache.Set(ctx, "trace-1", []byte(`{}`), time.Minute)
	require.NoError(t, err)

	// Key is namespaced so unrelated cache users cannot collide.
	assert.True(t, s.Exists("confirmation:trace-1"))
	assert.False(t, s.Exists("trace-1"))
}
