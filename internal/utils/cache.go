package utils

import (
	"context" // Context for Redis operations
	"errors"  // Error matching
	"time"    // Time durations

	json "github.com/goccy/go-json" // JSON encoding/decoding
	"github.com/redis/go-redis/v9"  // Redis client
)

// Cache stores JSON-encoded responses under string keys
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error) // Reports whether key was present
	Set(ctx context.Context, key string, value any) error
	DeletePrefix(ctx context.Context, prefix string) error // Drops every key starting with prefix
}

// RedisCache is a Cache backed by Redis with a fixed TTL
type RedisCache struct {
	rdb *redis.Client // Redis client
	ttl time.Duration // Lifetime of every entry
}

// NewRedisCache wraps rdb
func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

// Get retrieves a value from Redis and unmarshals it into dest
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.rdb.Get(ctx, key).Bytes() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal(val, dest) // Unmarshal JSON into dest
}

// Set stores a value in Redis with the cache TTL
func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err() // Set value in Redis with TTL
}

// DeletePrefix scans for keys under prefix and deletes them
func (c *RedisCache) DeletePrefix(ctx context.Context, prefix string) error {
	iter := c.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err() // Delete collected keys
}

// NoopCache never stores anything; used when Redis is not configured
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NoopCache) Set(context.Context, string, any) error         { return nil }
func (NoopCache) DeletePrefix(context.Context, string) error     { return nil }
