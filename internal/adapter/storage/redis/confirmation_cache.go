package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ConfirmationCache implements ports.ConfirmationCache using Redis. It
// holds the JSON result of each processed settlement confirmation so
// webhook redeliveries short-circuit without touching Postgres.
type ConfirmationCache struct {
	client *goredis.Client
	prefix string
}

// NewConfirmationCache creates a new Redis-backed confirmation cache.
func NewConfirmationCache(client *goredis.Client) *ConfirmationCache {
	return &ConfirmationCache{
		client: client,
		prefix: "confirmation:",
	}
}

// Get retrieves a cached confirmation result by trace id.
// Returns nil, nil if the trace was not recently confirmed.
func (c *ConfirmationCache) Get(ctx context.Context, traceID string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+traceID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis confirmation get: %w", err)
	}
	return val, nil
}

// Set stores a confirmation result with TTL.
func (c *ConfirmationCache) Set(ctx context.Context, traceID string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+traceID, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis confirmation set: %w", err)
	}
	return nil
}
