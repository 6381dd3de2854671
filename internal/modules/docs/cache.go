package docs

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheResult classifies the outcome of a cache read so callers branch
// explicitly instead of inspecting errors.
type CacheResult int

const (
	CacheHit CacheResult = iota
	CacheMiss
	CacheUnavailable
)

// Cache is the key-value capability the retrieval layer needs. Implementations
// report any failure as CacheUnavailable; callers must treat it as a miss.
type Cache interface {
	Get(ctx context.Context, key string) (string, CacheResult)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

type redisCache struct{ client *redis.Client }

// NewRedisCache wraps an existing client; the caller owns its lifecycle.
func NewRedisCache(client *redis.Client) Cache { return &redisCache{client: client} }

func (c *redisCache) Get(ctx context.Context, key string) (string, CacheResult) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", CacheMiss
	}
	if err != nil {
		return "", CacheUnavailable
	}
	return val, CacheHit
}

func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// unavailableCache stands in when no Redis connection could be configured.
// Every read misses and every write is dropped, so the service runs
// cache-less but correct.
type unavailableCache struct{}

// NewUnavailableCache returns a Cache that is permanently unreachable.
func NewUnavailableCache() Cache { return unavailableCache{} }

func (unavailableCache) Get(context.Context, string) (string, CacheResult) {
	return "", CacheUnavailable
}

func (unavailableCache) Set(context.Context, string, string, time.Duration) error { return nil }

func (unavailableCache) Delete(context.Context, string) error { return nil }

func (unavailableCache) Ping(context.Context) error { return errors.New("cache not configured") }
