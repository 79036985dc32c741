package ports

import (
	"context"
	"errors"
	"time"

	"analytics-service/internal/analytics/core/domain"
)

var ErrCacheMiss = errors.New("cache miss")

// EventsFilter selects one project's records by creation time. FetchEvents
// treats To as inclusive, CountEvents as exclusive.
type EventsFilter struct {
	ProjectID string
	From      time.Time // inclusive, UTC
	To        time.Time
}

// RecordSourcePort loads the raw records of one project and window.
// Timestamps must already be UTC.
type RecordSourcePort interface {
	FetchEvents(ctx context.Context, f EventsFilter) ([]domain.Record, error)
}

type EventCounterPort interface {
	CountEvents(ctx context.Context, f EventsFilter) (int64, error)
}

// BirdseyeCachePort stores week-over-week summaries per project.
// Get returns ErrCacheMiss when nothing is stored.
type BirdseyeCachePort interface {
	GetBirdseye(ctx context.Context, projectID string) (domain.Birdseye, error)
	SetBirdseye(ctx context.Context, projectID string, b domain.Birdseye) error
}
