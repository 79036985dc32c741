package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"analytics-service/internal/events/core/domain"
	"analytics-service/internal/events/core/ports"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// foreign_key_violation on analytics.pid -> project.id
const fkViolation pq.ErrorCode = "23503"

var eventColumns = []string{"id", "pid", "ev", "pg", "lc", "ref", "sw", "so", "me", "ca", "lt", "cc", "created"}

const insertEventSQL = `
INSERT INTO analytics (
    id, pid, ev, pg, lc, ref, sw, so, me, ca, lt, cc, created
) VALUES (
    $1, $2, $3, $4, $5, $6, $7,
    $8, $9, $10, $11, $12, $13
);
`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) error {
	if _, err := r.db.ExecContext(ctx, insertEventSQL, eventArgs(e)...); err != nil {
		return classify(err)
	}
	return nil
}

// InsertEvents streams the batch with COPY inside one transaction.
func (r *EventRepository) InsertEvents(ctx context.Context, events []*domain.Event) (err error) {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("analytics", eventColumns...))
	if err != nil {
		return fmt.Errorf("prepare copy: %w", err)
	}

	for _, e := range events {
		if _, err = stmt.ExecContext(ctx, eventArgs(e)...); err != nil {
			_ = stmt.Close()
			return classify(err)
		}
	}

	// flush buffered rows
	if _, err = stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return classify(err)
	}
	if err = stmt.Close(); err != nil {
		return classify(err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func eventArgs(e *domain.Event) []any {
	var sw any
	if e.ScreenWidth != nil {
		sw = *e.ScreenWidth
	}
	return []any{
		e.ID,
		e.ProjectID,
		nullable(e.EventName),
		nullable(e.Page),
		nullable(e.Locale),
		nullable(e.Referrer),
		sw,
		nullable(e.Source),
		nullable(e.Medium),
		nullable(e.Campaign),
		nullable(e.Language),
		nullable(e.Country),
		e.CreatedAt.UTC(),
	}
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == fkViolation {
		return fmt.Errorf("%w: %s", ports.ErrProjectNotFound, pqErr.Message)
	}
	return err
}
