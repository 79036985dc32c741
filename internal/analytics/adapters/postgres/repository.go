package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"analytics-service/internal/analytics/core/domain"
	"analytics-service/internal/analytics/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type AnalyticsRepository struct {
	db DB
}

func NewAnalyticsRepository(db DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

var (
	_ ports.RecordSourcePort = (*AnalyticsRepository)(nil)
	_ ports.EventCounterPort = (*AnalyticsRepository)(nil)
)

// created is stored as UTC "timestamp without time zone".
const selectEventsSQL = `
SELECT
    id, pid, ev, pg, lc, ref, sw, so, me, ca, lt, cc, created
FROM analytics
WHERE pid = $1 AND created BETWEEN $2 AND $3`

// Count windows are half-open so adjacent weeks never share a record.
const countEventsSQL = `
SELECT COUNT(*)
FROM analytics
WHERE pid = $1 AND created >= $2 AND created < $3`

func (r *AnalyticsRepository) FetchEvents(ctx context.Context, f ports.EventsFilter) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, selectEventsSQL, f.ProjectID, f.From.UTC(), f.To.UTC())
	if err != nil {
		return nil, fmt.Errorf("query analytics: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var rec domain.Record
		var ev, pg, lc, ref, so, me, ca, lt, cc sql.NullString
		var sw sql.NullInt64
		if err := rows.Scan(
			&rec.ID, &rec.ProjectID,
			&ev, &pg, &lc, &ref, &sw, &so, &me, &ca, &lt, &cc,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan analytics row: %w", err)
		}

		rec.EventName = nullString(ev)
		rec.Page = nullString(pg)
		rec.Locale = nullString(lc)
		rec.Referrer = nullString(ref)
		rec.Source = nullString(so)
		rec.Medium = nullString(me)
		rec.Campaign = nullString(ca)
		rec.Language = nullString(lt)
		rec.Country = nullString(cc)
		if sw.Valid {
			w := int(sw.Int64)
			rec.ScreenWidth = &w
		}
		rec.CreatedAt = rec.CreatedAt.UTC()

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *AnalyticsRepository) CountEvents(ctx context.Context, f ports.EventsFilter) (int64, error) {
	rows, err := r.db.QueryContext(ctx, countEventsSQL, f.ProjectID, f.From.UTC(), f.To.UTC())
	if err != nil {
		return 0, fmt.Errorf("count analytics: %w", err)
	}
	defer rows.Close()

	var total int64
	if rows.Next() {
		if err := rows.Scan(&total); err != nil {
			return 0, err
		}
	}

	if err := rows.Err(); err != nil {
		return 0, err
	}

	return total, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
