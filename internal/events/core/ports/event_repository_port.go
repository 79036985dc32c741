package ports

import (
	"context"
	"errors"

	"analytics-service/internal/events/core/domain"
)

// ErrProjectNotFound is returned when the store rejects an event whose project
// row no longer exists.
var ErrProjectNotFound = errors.New("project not found")

type EventRepositoryPort interface {
	InsertEvent(ctx context.Context, e *domain.Event) error
	// InsertEvents stores all events or none of them.
	InsertEvents(ctx context.Context, events []*domain.Event) error
}
