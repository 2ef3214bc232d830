package catalog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington-activities/internal/common/database"
)

// ==========================
// Unit Tests (redismock)
// ==========================

func TestRedisListCache_Get_Miss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisListCache(&database.RedisClient{Client: client}, 30*time.Second)

	mock.ExpectGet(listCacheKey).RedisNil()

	_, ok := cache.Get(context.Background())

	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisListCache_Get_Hit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisListCache(&database.RedisClient{Client: client}, 30*time.Second)

	seed := DefaultSeed()
	data, err := json.Marshal(seed)
	require.NoError(t, err)
	mock.ExpectGet(listCacheKey).SetVal(string(data))

	catalog, ok := cache.Get(context.Background())

	require.True(t, ok)
	assert.Len(t, catalog, 9)
	assert.Equal(t, seed["Chess Club"].Participants, catalog["Chess Club"].Participants)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisListCache_Get_CorruptPayload(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisListCache(&database.RedisClient{Client: client}, 30*time.Second)

	mock.ExpectGet(listCacheKey).SetVal("{not json")

	_, ok := cache.Get(context.Background())

	assert.False(t, ok, "a corrupt entry must read as a miss")
}

func TestRedisListCache_Set_StoresWithTTL(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisListCache(&database.RedisClient{Client: client}, 45*time.Second)

	seed := DefaultSeed()
	data, err := json.Marshal(seed)
	require.NoError(t, err)
	mock.ExpectSet(listCacheKey, data, 45*time.Second).SetVal("OK")

	cache.Set(context.Background(), seed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisListCache_Invalidate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisListCache(&database.RedisClient{Client: client}, 30*time.Second)

	mock.ExpectDel(listCacheKey).SetVal(1)

	cache.Invalidate(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Integration Tests (miniredis)
// ==========================

func TestRedisListCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewRedisListCache(&database.RedisClient{Client: client}, time.Minute)
	ctx := context.Background()

	_, ok := cache.Get(ctx)
	assert.False(t, ok, "cold cache must miss")

	cache.Set(ctx, DefaultSeed())

	catalog, ok := cache.Get(ctx)
	require.True(t, ok)
	assert.Len(t, catalog, 9)

	cache.Invalidate(ctx)

	_, ok = cache.Get(ctx)
	assert.False(t, ok, "invalidated cache must miss")
}

func TestRedisListCache_EntryExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewRedisListCache(&database.RedisClient{Client: client}, 10*time.Second)
	ctx := context.Background()

	cache.Set(ctx, DefaultSeed())
	mr.FastForward(11 * time.Second)

	_, ok := cache.Get(ctx)
	assert.False(t, ok)
}

func TestRedisListCache_DownRedisFallsThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewRedisListCache(&database.RedisClient{Client: client}, time.Minute)
	ctx := context.Background()

	mr.Close()

	_, ok := cache.Get(ctx)
	assert.False(t, ok, "an unreachable Redis must behave like a miss")
	cache.Set(ctx, DefaultSeed()) // must not panic
	cache.Invalidate(ctx)         // must not panic
}
