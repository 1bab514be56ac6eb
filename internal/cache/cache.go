package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key is absent or expired
var ErrCacheMiss = cache.ErrCacheMiss

// Cache stores msgpack-encoded values with a TTL
//
//go:generate mockgen -source=cache.go -destination=../mocks/cache.go -package=mocks -mock_names=Cache=MockCache
type Cache interface {
	Get(ctx context.Context, key string, target any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// UseCache returns the cached value for key, or computes it with callback and stores it.
// Errors other than a miss are returned as-is; a failed Set is ignored.
func UseCache[T any](ctx context.Context, c Cache, key string, ttl time.Duration, callback func() (T, error)) (T, bool, error) {
	var v T
	err := c.Get(ctx, key, &v)
	if err == nil {
		return v, true, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		return v, false, err
	}

	v, err = callback()
	if err != nil {
		return v, false, err
	}

	//nolint:errcheck
	c.Set(ctx, key, v, ttl)
	return v, false, nil
}

type redisCache struct {
	instance *cache.Cache
}

// NewRedis creates a Redis-backed cache, optionally fronted by an in-process TinyLFU
func NewRedis(client redis.UniversalClient, withLocalCache bool, localTTL time.Duration) Cache {
	var localCache cache.LocalCache
	if withLocalCache {
		localCache = cache.NewTinyLFU(10000, localTTL)
	}
	return &redisCache{cache.New(&cache.Options{
		Redis:      client,
		LocalCache: localCache,
	})}
}

// NewLocal creates an in-process cache for deployments without Redis.
// Entries expire after ttl regardless of the TTL passed to Set.
func NewLocal(size int, ttl time.Duration) Cache {
	return &redisCache{cache.New(&cache.Options{
		LocalCache: cache.NewTinyLFU(size, ttl),
	})}
}

func (c *redisCache) Get(ctx context.Context, key string, target any) error {
	return c.instance.Get(ctx, key, target)
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.instance.Set(&cache.Item{
		Ctx:   ctx,
		Key:   key,
		Value: value,
		TTL:   ttl,
	})
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.instance.Delete(ctx, key)
}
