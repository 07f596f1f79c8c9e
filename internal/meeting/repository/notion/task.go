package notion

import (
	"context"

	"meeting-assistant/internal/meeting/repository"
	"meeting-assistant/internal/model"
	pkgLog "meeting-assistant/pkg/log"
)

// Column names of the task table, as rendered in the workspace.
const (
	PropDescription = "업무내용"
	PropAssignee    = "담당자"
	PropDueDate     = "기한"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new Notion workspace repository.
func New(client *Client, l pkgLog.Logger) repository.WorkspaceRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) CreateTaskDatabase(ctx context.Context, token, parentPageID, title string) (string, error) {
	req := CreateDatabaseRequest{
		Parent: Parent{Type: "page_id", PageID: parentPageID},
		Title: []RichText{
			{Type: "text", Text: TextContent{Content: title}},
		},
		Properties: map[string]PropertySchema{
			PropDescription: {Title: &EmptyObject{}},
			PropAssignee:    {RichText: &EmptyObject{}},
			PropDueDate:     {RichText: &EmptyObject{}},
		},
	}

	db, err := r.client.CreateDatabase(ctx, token, req)
	if err != nil {
		r.l.Errorf(ctx, "notion repository: failed to create database: %v", err)
		return "", err
	}
	return db.ID, nil
}

func (r *implRepository) InsertTask(ctx context.Context, token, databaseID string, rec model.TaskRecord) error {
	rec = rec.Normalized()

	req := CreatePageRequest{
		Parent: Parent{DatabaseID: databaseID},
		Properties: map[string]PropertyValue{
			PropDescription: {Title: []RichText{{Text: TextContent{Content: rec.Description}}}},
			PropAssignee:    {RichText: []RichText{{Text: TextContent{Content: rec.Assignee}}}},
			PropDueDate:     {RichText: []RichText{{Text: TextContent{Content: rec.DueDate}}}},
		},
	}

	if err := r.client.CreatePage(ctx, token, req); err != nil {
		r.l.Errorf(ctx, "notion repository: failed to insert task: %v", err)
		return err
	}
	return nil
}
