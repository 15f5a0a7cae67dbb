// Package cache provides a Redis-backed cache client. Entries are disposable:
// any read-after-write inconsistency is resolved by deletion, never by
// in-place mutation.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the configuration for the Redis client.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// RedisCache implements the orchestrator's cache contract on Redis.
// Namespaced keys are tracked in a registry set so a whole namespace can be
// invalidated without pattern-matching deletion.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a RedisCache and verifies connectivity.
func NewRedisCache(ctx context.Context, cfg Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisCache{client: client}, nil
}

// NewRedisCacheWithClient wraps an existing client (used in tests).
func NewRedisCacheWithClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// registryKey names the set that tracks outstanding keys of a namespace.
func registryKey(namespace string) string {
	return namespace + ":keys"
}

// Get fetches a key. A missing key is reported as ok=false, not an error.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}
	return val, true, nil
}

// Set stores a value under key with the given TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// SetNamespaced stores a value and records the key in the namespace registry.
// The registry carries the same TTL refresh so it cannot outlive its members
// by more than one invalidation cycle.
func (c *RedisCache) SetNamespaced(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error {
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, value, ttl)
	pipe.SAdd(ctx, registryKey(namespace), key)
	pipe.Expire(ctx, registryKey(namespace), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set namespaced %s: %w", key, err)
	}
	return nil
}

// Delete removes keys. Deleting keys that do not exist is a no-op.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// DeleteNamespace removes every registered key of a namespace plus the
// registry itself. Idempotent: an empty or absent registry is a no-op.
func (c *RedisCache) DeleteNamespace(ctx context.Context, namespace string) error {
	reg := registryKey(namespace)
	members, err := c.client.SMembers(ctx, reg).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("cache read registry %s: %w", reg, err)
	}
	keys := append(members, reg)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete namespace %s: %w", namespace, err)
	}
	return nil
}

// Ping verifies connectivity for health checks.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
