package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikelm2020/estatehub/internal/api/metrics"
)

const cacheTTL = 5 * time.Minute

// Cache is a JSON read-through cache for reference data backed by Redis.
type Cache struct {
	client *redis.Client
}

// NewCache creates a Cache wrapping the given Redis client.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get unmarshals the cached value for key into v. A missing key is a miss,
// not an error.
func (c *Cache) Get(ctx context.Context, key string, v any) (bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RefDataCacheTotal.WithLabelValues("miss").Inc()
			return false, nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return false, fmt.Errorf("cache decode: %w", err)
	}
	metrics.RefDataCacheTotal.WithLabelValues("hit").Inc()
	return true, nil
}

// Set stores v under key, expiring after cacheTTL.
func (c *Cache) Set(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, key, payload, cacheTTL).Err()
}

// Invalidate removes the given keys.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
