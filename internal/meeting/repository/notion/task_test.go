package notion_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"meeting-assistant/internal/meeting/repository/notion"
	"meeting-assistant/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any) {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any) {}
func (nopLogger) Warn(ctx context.Context, args ...any) {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Error(ctx context.Context, args ...any) {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any) {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

func TestWorkspaceRepository(t *testing.T) {
	var lastPage notion.CreatePageRequest
	var lastDB notion.CreateDatabaseRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/databases", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&lastDB)
		json.NewEncoder(w).Encode(notion.Database{ID: "db-7"})
	})
	mux.HandleFunc("/v1/pages", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&lastPage)
		json.NewEncoder(w).Encode(map[string]string{"id": "p-1"})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	repo := notion.New(notion.NewClient(ts.URL), nopLogger{})
	ctx := context.Background()

	t.Run("CreateTaskDatabase declares three typed columns", func(t *testing.T) {
		id, err := repo.CreateTaskDatabase(ctx, "tok", "parent-1", "2024-01-01 회의 업무")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "db-7" {
			t.Errorf("unexpected id: %s", id)
		}
		if lastDB.Parent.PageID != "parent-1" || lastDB.Parent.Type != "page_id" {
			t.Errorf("unexpected parent: %+v", lastDB.Parent)
		}
		if lastDB.Title[0].Text.Content != "2024-01-01 회의 업무" {
			t.Errorf("unexpected title: %+v", lastDB.Title)
		}
		if lastDB.Properties[notion.PropDescription].Title == nil {
			t.Error("업무내용 must be the title column")
		}
		if lastDB.Properties[notion.PropAssignee].RichText == nil {
			t.Error("담당자 must be a rich_text column")
		}
		if lastDB.Properties[notion.PropDueDate].RichText == nil {
			t.Error("기한 must be a rich_text column")
		}
	})

	t.Run("InsertTask substitutes defaults for missing fields", func(t *testing.T) {
		err := repo.InsertTask(ctx, "tok", "db-7", model.TaskRecord{Assignee: "지훈"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		desc := lastPage.Properties[notion.PropDescription].Title[0].Text.Content
		assignee := lastPage.Properties[notion.PropAssignee].RichText[0].Text.Content
		due := lastPage.Properties[notion.PropDueDate].RichText[0].Text.Content

		if desc != model.DefaultDescription {
			t.Errorf("expected default description %q, got %q", model.DefaultDescription, desc)
		}
		if assignee != "지훈" {
			t.Errorf("expected assignee preserved, got %q", assignee)
		}
		if due != model.DefaultDueDate {
			t.Errorf("expected default due date %q, got %q", model.DefaultDueDate, due)
		}
		if lastPage.Parent.DatabaseID != "db-7" {
			t.Errorf("unexpected parent database: %+v", lastPage.Parent)
		}
	})
}
