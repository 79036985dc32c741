package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"analytics-service/internal/analytics/core/domain"
	"analytics-service/internal/analytics/core/ports"
)

var columns = []string{"id", "pid", "ev", "pg", "lc", "ref", "sw", "so", "me", "ca", "lt", "cc", "created"}

func newRepo(t *testing.T) (*AnalyticsRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAnalyticsRepository(NewSQLDB(db)), mock
}

func testFilter() ports.EventsFilter {
	return ports.EventsFilter{
		ProjectID: "aUn1quEid-3g",
		From:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}
}

// ------------------------------------------------------------
// FETCH
// ------------------------------------------------------------

func TestAnalyticsRepository_FetchEvents(t *testing.T) {
	repo, mock := newRepo(t)
	f := testFilter()
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(columns).
		AddRow("id-1", f.ProjectID, nil, "/", "en-US", "https://example.com", int64(1920), "newsletter", "email", "launch", "en", "UA", created).
		AddRow("id-2", f.ProjectID, "signup", nil, nil, nil, nil, nil, nil, nil, nil, nil, created.Add(time.Hour))

	mock.ExpectQuery("FROM analytics").
		WithArgs(f.ProjectID, f.From, f.To).
		WillReturnRows(rows)

	records, err := repo.FetchEvents(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "id-1", first.ID)
	assert.Nil(t, first.EventName)
	require.NotNil(t, first.Page)
	assert.Equal(t, "/", *first.Page)
	require.NotNil(t, first.ScreenWidth)
	assert.Equal(t, 1920, *first.ScreenWidth)
	require.NotNil(t, first.Country)
	assert.Equal(t, "UA", *first.Country)
	assert.True(t, first.CreatedAt.Equal(created))

	v, ok := first.Value(domain.DimensionCampaign)
	assert.True(t, ok)
	assert.Equal(t, "launch", v)

	second := records[1]
	require.NotNil(t, second.EventName)
	assert.Equal(t, "signup", *second.EventName)
	assert.Nil(t, second.Page)
	assert.Nil(t, second.ScreenWidth)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_FetchEvents_Empty(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM analytics").WillReturnRows(sqlmock.NewRows(columns))

	records, err := repo.FetchEvents(context.Background(), testFilter())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_FetchEvents_DBError(t *testing.T) {
	repo, mock := newRepo(t)
	dbErr := errors.New("db failure")

	mock.ExpectQuery("FROM analytics").WillReturnError(dbErr)

	records, err := repo.FetchEvents(context.Background(), testFilter())
	require.ErrorIs(t, err, dbErr)
	assert.Nil(t, records)
}

func TestAnalyticsRepository_FetchEvents_RowError(t *testing.T) {
	repo, mock := newRepo(t)
	rowErr := errors.New("connection reset")

	rows := sqlmock.NewRows(columns).
		AddRow("id-1", "aUn1quEid-3g", nil, "/", nil, nil, nil, nil, nil, nil, nil, nil, time.Now().UTC()).
		RowError(0, rowErr)
	mock.ExpectQuery("FROM analytics").WillReturnRows(rows)

	_, err := repo.FetchEvents(context.Background(), testFilter())
	require.ErrorIs(t, err, rowErr)
}

// ------------------------------------------------------------
// COUNT
// ------------------------------------------------------------

func TestAnalyticsRepository_CountEvents(t *testing.T) {
	repo, mock := newRepo(t)
	f := testFilter()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(f.ProjectID, f.From, f.To).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	n, err := repo.CountEvents(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_CountEvents_HalfOpenWindow(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE pid = $1 AND created >= $2 AND created < $3")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	_, err := repo.CountEvents(context.Background(), testFilter())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_CountEvents_DBError(t *testing.T) {
	repo, mock := newRepo(t)
	dbErr := errors.New("db failure")

	mock.ExpectQuery("SELECT COUNT").WillReturnError(dbErr)

	n, err := repo.CountEvents(context.Background(), testFilter())
	require.ErrorIs(t, err, dbErr)
	assert.Zero(t, n)
}
