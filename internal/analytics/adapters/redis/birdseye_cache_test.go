package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	rediscache "analytics-service/internal/analytics/adapters/redis"
	"analytics-service/internal/analytics/core/domain"
	"analytics-service/internal/analytics/core/ports"
)

func newCache(t *testing.T, ttl time.Duration) (*rediscache.BirdseyeCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rediscache.NewBirdseyeCache(rdb, ttl), mr
}

func TestBirdseyeCache_MissSetGet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newCache(t, time.Minute)

	_, err := cache.GetBirdseye(ctx, "aUn1quEid-3g")
	require.True(t, errors.Is(err, ports.ErrCacheMiss))

	want := domain.Birdseye{ThisWeek: 12, LastWeek: 8, PercChange: 50}
	require.NoError(t, cache.SetBirdseye(ctx, "aUn1quEid-3g", want))

	got, err := cache.GetBirdseye(ctx, "aUn1quEid-3g")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestBirdseyeCache_Expires(t *testing.T) {
	ctx := context.Background()
	cache, mr := newCache(t, 30*time.Second)

	require.NoError(t, cache.SetBirdseye(ctx, "aUn1quEid-3g", domain.Birdseye{ThisWeek: 1}))
	mr.FastForward(31 * time.Second)

	_, err := cache.GetBirdseye(ctx, "aUn1quEid-3g")
	require.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestBirdseyeCache_SetsKeyTTL(t *testing.T) {
	ctx := context.Background()
	cache, mr := newCache(t, 45*time.Second)

	require.NoError(t, cache.SetBirdseye(ctx, "aUn1quEid-3g", domain.Birdseye{ThisWeek: 3}))
	require.True(t, mr.Exists("birdseye:aUn1quEid-3g"))
	require.Equal(t, 45*time.Second, mr.TTL("birdseye:aUn1quEid-3g"))
}

func TestBirdseyeCache_CorruptValue(t *testing.T) {
	ctx := context.Background()
	cache, mr := newCache(t, time.Minute)

	require.NoError(t, mr.Set("birdseye:aUn1quEid-3g", "{not json"))

	_, err := cache.GetBirdseye(ctx, "aUn1quEid-3g")
	require.Error(t, err)
	require.False(t, errors.Is(err, ports.ErrCacheMiss))
}
