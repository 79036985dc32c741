package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"analytics-service/internal/projects/core/ports"
)

// DB is satisfied by *sql.DB.
type DB interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type ProjectRepository struct {
	db DB
}

func NewProjectRepository(db DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

var _ ports.ProjectReaderPort = (*ProjectRepository)(nil)

const projectExistsSQL = `SELECT EXISTS(SELECT 1 FROM project WHERE id = $1)`

func (r *ProjectRepository) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, projectExistsSQL, projectID).Scan(&exists); err != nil {
		return false, fmt.Errorf("lookup project %s: %w", projectID, err)
	}
	return exists, nil
}
