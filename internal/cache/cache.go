package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/HakimZ78/devhakim-api/pkg/logger"
)

// Store is the minimal cache surface the API needs; redis in production,
// an in-memory fake in tests.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
	Del(ctx context.Context, keys ...string)
}

type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps a redis client. Cache errors are logged and treated as
// misses; the cache is never load-bearing.
func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.L().Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return b, true
}

func (s *redisStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if err := s.rdb.Set(ctx, key, val, ttl).Err(); err != nil {
		logger.L().Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *redisStore) Del(ctx context.Context, keys ...string) {
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		logger.L().Warn("cache del failed", zap.Error(err))
	}
}

// ListCache is a read-through cache for public list responses, keyed by
// resource path and invalidated on every mutation of that resource.
type ListCache struct {
	store Store
	ttl   time.Duration
}

// NewListCache returns a list cache; a nil *ListCache is valid and disables
// caching.
func NewListCache(store Store, ttl time.Duration) *ListCache {
	return &ListCache{store: store, ttl: ttl}
}

func (c *ListCache) key(resource string) string { return "portfolio:list:" + resource }

func (c *ListCache) GetList(ctx context.Context, resource string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	return c.store.Get(ctx, c.key(resource))
}

func (c *ListCache) PutList(ctx context.Context, resource string, body []byte) {
	if c == nil {
		return
	}
	c.store.Set(ctx, c.key(resource), body, c.ttl)
}

func (c *ListCache) Invalidate(ctx context.Context, resource string) {
	if c == nil {
		return
	}
	c.store.Del(ctx, c.key(resource))
}
