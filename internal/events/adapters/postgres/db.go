package postgres

import (
	"context"
	"database/sql"
)

// DB is satisfied by *sql.DB opened with the lib/pq driver.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}
