package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"analytics-service/internal/analytics/core/domain"
	"analytics-service/internal/analytics/core/ports"
)

const birdseyeKeyPrefix = "birdseye:"

type BirdseyeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBirdseyeCache(client *redis.Client, ttl time.Duration) *BirdseyeCache {
	return &BirdseyeCache{client: client, ttl: ttl}
}

var _ ports.BirdseyeCachePort = (*BirdseyeCache)(nil)

func (c *BirdseyeCache) GetBirdseye(ctx context.Context, projectID string) (domain.Birdseye, error) {
	raw, err := c.client.Get(ctx, birdseyeKeyPrefix+projectID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Birdseye{}, ports.ErrCacheMiss
		}
		return domain.Birdseye{}, err
	}

	var b domain.Birdseye
	if err := json.Unmarshal(raw, &b); err != nil {
		return domain.Birdseye{}, err
	}
	return b, nil
}

func (c *BirdseyeCache) SetBirdseye(ctx context.Context, projectID string, b domain.Birdseye) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, birdseyeKeyPrefix+projectID, raw, c.ttl).Err()
}
