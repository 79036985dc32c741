package ports

import "context"

type ProjectReaderPort interface {
	// ProjectExists reports whether a project with the given ID is registered.
	ProjectExists(ctx context.Context, projectID string) (bool, error)
}
