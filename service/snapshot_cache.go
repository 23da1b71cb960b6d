package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"laptopshop/errx"
)

const (
	inventoryCacheKey    = "laptopshop:inventory"
	priceCatalogCacheKey = "laptopshop:prices"
)

// ErrCacheMiss is returned by SnapshotCache.Get when the key is absent or expired
var ErrCacheMiss = errors.New("snapshot cache miss")

// SnapshotCache stores encoded snapshots for a bounded time
type SnapshotCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisSnapshotCache shares snapshots between instances through Redis
type RedisSnapshotCache struct {
	client redis.UniversalClient
}

// NewRedisSnapshotCache creates a new RedisSnapshotCache
func NewRedisSnapshotCache(client redis.UniversalClient) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client}
}

var _ SnapshotCache = (*RedisSnapshotCache)(nil)

func (c *RedisSnapshotCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, errx.WrapRedis(err)
	}
	return value, nil
}

func (c *RedisSnapshotCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemorySnapshotCache keeps snapshots in process when Redis is not configured
type MemorySnapshotCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemorySnapshotCache creates an empty MemorySnapshotCache
func NewMemorySnapshotCache() *MemorySnapshotCache {
	return &MemorySnapshotCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

var _ SnapshotCache = (*MemorySnapshotCache)(nil)

func (c *MemorySnapshotCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(entry.expiresAt) {
		return nil, ErrCacheMiss
	}
	return entry.value, nil
}

func (c *MemorySnapshotCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
	return nil
}
