package repository

import (
	"context"

	"meeting-assistant/internal/model"
)

// WorkspaceRepository creates task tables in the document workspace and
// inserts records into them. The access token is passed per call because the
// operator can change it at runtime through the settings store.
type WorkspaceRepository interface {
	// CreateTaskDatabase creates a new table with the three task columns
	// under the given parent page and returns its id.
	CreateTaskDatabase(ctx context.Context, token, parentPageID, title string) (string, error)

	// InsertTask inserts one record into a previously created table.
	InsertTask(ctx context.Context, token, databaseID string, rec model.TaskRecord) error
}
