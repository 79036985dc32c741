package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projectcache "analytics-service/internal/projects/adapters/redis"
)

type fakeProjectReader struct {
	ProjectExistsFn func(ctx context.Context, projectID string) (bool, error)
	calls           int
}

func (f *fakeProjectReader) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	f.calls++
	if f.ProjectExistsFn != nil {
		return f.ProjectExistsFn(ctx, projectID)
	}
	return true, nil
}

func setup(t *testing.T, next *fakeProjectReader) (*projectcache.CachedProjectReader, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return projectcache.NewCachedProjectReader(next, rdb, time.Hour, zerolog.Nop()), mr
}

func TestCachedProjectReader_CachesKnownProject(t *testing.T) {
	ctx := context.Background()
	next := &fakeProjectReader{}
	reader, mr := setup(t, next)

	for i := 0; i < 3; i++ {
		ok, err := reader.ProjectExists(ctx, "aUn1quEid-3g")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	assert.Equal(t, 1, next.calls)
	assert.True(t, mr.Exists("project:exists:aUn1quEid-3g"))
	assert.Equal(t, time.Hour, mr.TTL("project:exists:aUn1quEid-3g"))
}

func TestCachedProjectReader_UnknownProjectNotCached(t *testing.T) {
	ctx := context.Background()
	next := &fakeProjectReader{
		ProjectExistsFn: func(ctx context.Context, projectID string) (bool, error) { return false, nil },
	}
	reader, mr := setup(t, next)

	for i := 0; i < 2; i++ {
		ok, err := reader.ProjectExists(ctx, "aUn1quEid-3g")
		require.NoError(t, err)
		assert.False(t, ok)
	}

	assert.Equal(t, 2, next.calls)
	assert.False(t, mr.Exists("project:exists:aUn1quEid-3g"))
}

func TestCachedProjectReader_SourceError(t *testing.T) {
	srcErr := errors.New("db down")
	next := &fakeProjectReader{
		ProjectExistsFn: func(ctx context.Context, projectID string) (bool, error) { return false, srcErr },
	}
	reader, _ := setup(t, next)

	ok, err := reader.ProjectExists(context.Background(), "aUn1quEid-3g")
	require.ErrorIs(t, err, srcErr)
	assert.False(t, ok)
}

func TestCachedProjectReader_RedisDown(t *testing.T) {
	next := &fakeProjectReader{}
	reader, mr := setup(t, next)
	mr.Close()

	ok, err := reader.ProjectExists(context.Background(), "aUn1quEid-3g")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, next.calls)
}
