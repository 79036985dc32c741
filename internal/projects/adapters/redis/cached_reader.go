package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"analytics-service/internal/projects/core/ports"
)

const projectKeyPrefix = "project:exists:"

// CachedProjectReader remembers known project IDs in redis and asks next on a
// miss. Unknown IDs are not cached so a freshly created project is visible at
// once.
type CachedProjectReader struct {
	next   ports.ProjectReaderPort
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewCachedProjectReader(next ports.ProjectReaderPort, client *redis.Client, ttl time.Duration, log zerolog.Logger) *CachedProjectReader {
	return &CachedProjectReader{next: next, client: client, ttl: ttl, log: log}
}

var _ ports.ProjectReaderPort = (*CachedProjectReader)(nil)

func (c *CachedProjectReader) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	key := projectKeyPrefix + projectID

	err := c.client.Get(ctx, key).Err()
	switch {
	case err == nil:
		return true, nil
	case !errors.Is(err, redis.Nil):
		// redis is a cache only; fall through to the source of truth
		c.log.Warn().Err(err).Str("pid", projectID).Msg("project cache read failed")
	}

	exists, err := c.next.ProjectExists(ctx, projectID)
	if err != nil || !exists {
		return exists, err
	}

	if err := c.client.Set(ctx, key, "1", c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("pid", projectID).Msg("project cache write failed")
	}
	return true, nil
}
