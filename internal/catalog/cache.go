package catalog

import (
	"context"
	"encoding/json"
	"time"

	"mergington-activities/internal/common/database"
	"mergington-activities/internal/models"
)

const listCacheKey = "catalog:list"

// ListCache caches the serialized catalog served by list requests. A
// miss or any Redis failure falls through to the in-memory store, which
// stays authoritative; entries are dropped on every roster mutation.
type ListCache interface {
	Get(ctx context.Context) (models.Catalog, bool)
	Set(ctx context.Context, catalog models.Catalog)
	Invalidate(ctx context.Context)
}

// RedisListCache is the Redis-backed ListCache.
type RedisListCache struct {
	client *database.RedisClient
	ttl    time.Duration
}

func NewRedisListCache(client *database.RedisClient, ttl time.Duration) *RedisListCache {
	return &RedisListCache{client: client, ttl: ttl}
}

func (c *RedisListCache) Get(ctx context.Context) (models.Catalog, bool) {
	val, err := c.client.Get(ctx, listCacheKey)
	if err != nil {
		return nil, false
	}
	var catalog models.Catalog
	if err := json.Unmarshal([]byte(val), &catalog); err != nil {
		return nil, false
	}
	return catalog, true
}

func (c *RedisListCache) Set(ctx context.Context, catalog models.Catalog) {
	data, err := json.Marshal(catalog)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, listCacheKey, data, c.ttl)
}

func (c *RedisListCache) Invalidate(ctx context.Context) {
	_ = c.client.Del(ctx, listCacheKey)
}

// NoopListCache is used when caching is disabled.
type NoopListCache struct{}

func (NoopListCache) Get(context.Context) (models.Catalog, bool) { return nil, false }
func (NoopListCache) Set(context.Context, models.Catalog)        {}
func (NoopListCache) Invalidate(context.Context)                 {}
