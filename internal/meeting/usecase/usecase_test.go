package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"meeting-assistant/internal/meeting"
	"meeting-assistant/internal/meeting/usecase"
	"meeting-assistant/internal/model"
	"meeting-assistant/internal/session"
	"meeting-assistant/internal/settings"
	"meeting-assistant/pkg/gemini"
)

// mock dependencies

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

type mockLLM struct {
	responseText string
	uploadErr    error
	genErr       error

	uploadedPath  string
	uploadedKey   string
	pathReadable  bool
	generateCalls int
}

func (m *mockLLM) UploadFile(ctx context.Context, apiKey, path, mimeType string) (*gemini.File, error) {
	m.uploadedPath = path
	m.uploadedKey = apiKey
	if _, err := os.Stat(path); err == nil {
		m.pathReadable = true
	}
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	return &gemini.File{Name: "files/x1", URI: "uri://files/x1", MimeType: mimeType}, nil
}

func (m *mockLLM) GenerateContent(ctx context.Context, apiKey string, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.generateCalls++
	if m.genErr != nil {
		return nil, m.genErr
	}
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: m.responseText}}}},
		},
	}, nil
}

func (m *mockLLM) Model() string { return "gemini-2.5-flash" }

type mockRepo struct {
	createErr error
	failDesc  map[string]bool

	createdToken  string
	createdParent string
	createdTitle  string
	inserted      []model.TaskRecord
	insertCalls   int
}

func (m *mockRepo) CreateTaskDatabase(ctx context.Context, token, parentPageID, title string) (string, error) {
	m.createdToken = token
	m.createdParent = parentPageID
	m.createdTitle = title
	if m.createErr != nil {
		return "", m.createErr
	}
	return "db-1", nil
}

func (m *mockRepo) InsertTask(ctx context.Context, token, databaseID string, rec model.TaskRecord) error {
	m.insertCalls++
	rec = rec.Normalized()
	if m.failDesc[rec.Description] {
		return errors.New("insert rejected")
	}
	m.inserted = append(m.inserted, rec)
	return nil
}

// fixture

type fixture struct {
	uc       meeting.UseCase
	llm      *mockLLM
	repo     *mockRepo
	sessions *session.Store
}

func newFixture(t *testing.T, cfg model.Settings, llm *mockLLM, repo *mockRepo) *fixture {
	t.Helper()

	store := settings.New(filepath.Join(t.TempDir(), "user_config.json"))
	if err := store.Save(cfg); err != nil {
		t.Fatalf("failed to seed settings: %v", err)
	}

	sessions, err := session.New(0)
	if err != nil {
		t.Fatalf("failed to create session store: %v", err)
	}

	fixedNow := func() time.Time {
		return time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	}

	return &fixture{
		uc:       usecase.NewWithClock(mockLogger{}, llm, repo, store, sessions, fixedNow),
		llm:      llm,
		repo:     repo,
		sessions: sessions,
	}
}

func (f *fixture) sessionWithAudio(t *testing.T) string {
	t.Helper()
	sess := f.sessions.Create()
	if err := f.sessions.SetAudio(sess.ID, []byte("fake-wav"), model.AudioInfo{}); err != nil {
		t.Fatalf("failed to attach audio: %v", err)
	}
	return sess.ID
}

var workingSettings = model.Settings{
	GoogleAPIKey: "g-key",
	NotionToken:  "n-token",
	NotionPageID: "https://www.notion.so/ws/Notes-abc123def456",
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("Fenced response with missing due date", func(t *testing.T) {
		llm := &mockLLM{responseText: "```json\n[{\"담당자\":\"지훈\",\"업무내용\":\"보고서 작성\"}]\n```"}
		f := newFixture(t, workingSettings, llm, &mockRepo{})
		id := f.sessionWithAudio(t)

		out, err := f.uc.Analyze(ctx, meeting.AnalyzeInput{SessionID: id})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 1 {
			t.Fatalf("expected 1 task, got %d", out.Count)
		}
		got := out.Tasks[0]
		if got.Assignee != "지훈" || got.Description != "보고서 작성" {
			t.Errorf("unexpected record: %+v", got)
		}
		if got.DueDate != model.DefaultDueDate {
			t.Errorf("expected default due date %q, got %q", model.DefaultDueDate, got.DueDate)
		}
		if llm.uploadedKey != "g-key" {
			t.Errorf("expected configured API key, got %q", llm.uploadedKey)
		}
	})

	t.Run("Temp audio file removed after analysis", func(t *testing.T) {
		llm := &mockLLM{responseText: "[]"}
		f := newFixture(t, workingSettings, llm, &mockRepo{})
		id := f.sessionWithAudio(t)

		if _, err := f.uc.Analyze(ctx, meeting.AnalyzeInput{SessionID: id}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !llm.pathReadable {
			t.Fatal("expected temp file to exist during upload")
		}
		if _, err := os.Stat(llm.uploadedPath); !os.IsNotExist(err) {
			t.Errorf("expected temp file %s to be removed", llm.uploadedPath)
		}
	})

	t.Run("Temp audio file removed on failure path", func(t *testing.T) {
		llm := &mockLLM{genErr: errors.New("boom")}
		f := newFixture(t, workingSettings, llm, &mockRepo{})
		id := f.sessionWithAudio(t)

		if _, err := f.uc.Analyze(ctx, meeting.AnalyzeInput{SessionID: id}); err == nil {
			t.Fatal("expected error")
		}
		if _, err := os.Stat(llm.uploadedPath); !os.IsNotExist(err) {
			t.Errorf("expected temp file %s to be removed on failure", llm.uploadedPath)
		}
	})

	t.Run("Missing API key", func(t *testing.T) {
		llm := &mockLLM{}
		f := newFixture(t, model.Settings{}, llm, &mockRepo{})
		id := f.sessionWithAudio(t)

		_, err := f.uc.Analyze(ctx, meeting.AnalyzeInput{SessionID: id})
		if !errors.Is(err, meeting.ErrMissingAIKey) {
			t.Errorf("expected ErrMissingAIKey, got %v", err)
		}
		if llm.uploadedPath != "" {
			t.Error("expected no upload without a configured key")
		}
	})

	t.Run("No audio", func(t *testing.T) {
		f := newFixture(t, workingSettings, &mockLLM{}, &mockRepo{})
		sess := f.sessions.Create()

		_, err := f.uc.Analyze(ctx, meeting.AnalyzeInput{SessionID: sess.ID})
		if !errors.Is(err, meeting.ErrNoAudio) {
			t.Errorf("expected ErrNoAudio, got %v", err)
		}
	})

	t.Run("Unknown session", func(t *testing.T) {
		f := newFixture(t, workingSettings, &mockLLM{}, &mockRepo{})

		_, err := f.uc.Analyze(ctx, meeting.AnalyzeInput{SessionID: "missing"})
		if !errors.Is(err, meeting.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Empty extraction result", func(t *testing.T) {
		llm := &mockLLM{responseText: "```json\n\n```"}
		f := newFixture(t, workingSettings, llm, &mockRepo{})
		id := f.sessionWithAudio(t)

		_, err := f.uc.Analyze(ctx, meeting.AnalyzeInput{SessionID: id})
		if !errors.Is(err, meeting.ErrEmptyExtraction) {
			t.Errorf("expected ErrEmptyExtraction, got %v", err)
		}
	})

	t.Run("Malformed result leaves prior batch untouched", func(t *testing.T) {
		llm := &mockLLM{responseText: "[{broken json"}
		f := newFixture(t, workingSettings, llm, &mockRepo{})
		id := f.sessionWithAudio(t)

		prior := []model.TaskRecord{{Assignee: "민수", Description: "기존 업무", DueDate: "내일"}}
		if err := f.sessions.SetTasks(id, prior); err != nil {
			t.Fatalf("failed to seed batch: %v", err)
		}

		_, err := f.uc.Analyze(ctx, meeting.AnalyzeInput{SessionID: id})
		if !errors.Is(err, meeting.ErrMalformedExtraction) {
			t.Fatalf("expected ErrMalformedExtraction, got %v", err)
		}

		sess, _ := f.sessions.Get(id)
		if len(sess.Tasks) != 1 || sess.Tasks[0].Description != "기존 업무" {
			t.Errorf("expected prior batch untouched, got %+v", sess.Tasks)
		}
	})

	t.Run("Timeout maps to ErrExtractionTimeout", func(t *testing.T) {
		llm := &mockLLM{genErr: context.DeadlineExceeded}
		f := newFixture(t, workingSettings, llm, &mockRepo{})
		id := f.sessionWithAudio(t)

		_, err := f.uc.Analyze(ctx, meeting.AnalyzeInput{SessionID: id})
		if !errors.Is(err, meeting.ErrExtractionTimeout) {
			t.Errorf("expected ErrExtractionTimeout, got %v", err)
		}
	})
}

func TestPublish(t *testing.T) {
	ctx := context.Background()

	seedTasks := func(t *testing.T, f *fixture, tasks []model.TaskRecord) string {
		t.Helper()
		sess := f.sessions.Create()
		if err := f.sessions.SetTasks(sess.ID, tasks); err != nil {
			t.Fatalf("failed to seed tasks: %v", err)
		}
		return sess.ID
	}

	t.Run("Happy path with dated title", func(t *testing.T) {
		repo := &mockRepo{}
		f := newFixture(t, workingSettings, &mockLLM{}, repo)
		id := seedTasks(t, f, []model.TaskRecord{
			{Assignee: "지훈", Description: "보고서 작성", DueDate: "금요일"},
			{Assignee: "", Description: "자료 조사", DueDate: ""},
		})

		out, err := f.uc.Publish(ctx, meeting.PublishInput{SessionID: id})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Title != "2024-01-01 회의 업무" {
			t.Errorf("unexpected title: %q", out.Title)
		}
		if out.DatabaseID != "db-1" {
			t.Errorf("unexpected database id: %q", out.DatabaseID)
		}
		if out.Submitted != 2 || out.Published != 2 {
			t.Errorf("unexpected counts: %+v", out)
		}
		if repo.createdParent != "abc123def456" {
			t.Errorf("expected extracted page id, got %q", repo.createdParent)
		}
		if repo.inserted[1].Assignee != model.DefaultAssignee || repo.inserted[1].DueDate != model.DefaultDueDate {
			t.Errorf("expected defaults substituted before send, got %+v", repo.inserted[1])
		}

		sess, _ := f.sessions.Get(id)
		if sess.DatabaseID != "db-1" {
			t.Errorf("expected database id stored on session, got %q", sess.DatabaseID)
		}
	})

	t.Run("Partial failure attempts every record", func(t *testing.T) {
		repo := &mockRepo{failDesc: map[string]bool{"두번째": true}}
		f := newFixture(t, workingSettings, &mockLLM{}, repo)
		id := seedTasks(t, f, []model.TaskRecord{
			{Description: "첫번째"}, {Description: "두번째"}, {Description: "세번째"},
		})

		out, err := f.uc.Publish(ctx, meeting.PublishInput{SessionID: id})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.insertCalls != 3 {
			t.Errorf("expected all 3 inserts attempted, got %d", repo.insertCalls)
		}
		if out.Published != 2 || out.Submitted != 3 {
			t.Errorf("unexpected counts: %+v", out)
		}
	})

	t.Run("All inserts fail", func(t *testing.T) {
		repo := &mockRepo{failDesc: map[string]bool{"유일한 업무": true}}
		f := newFixture(t, workingSettings, &mockLLM{}, repo)
		id := seedTasks(t, f, []model.TaskRecord{{Description: "유일한 업무"}})

		out, err := f.uc.Publish(ctx, meeting.PublishInput{SessionID: id})
		if !errors.Is(err, meeting.ErrNothingPublished) {
			t.Errorf("expected ErrNothingPublished, got %v", err)
		}
		if out.Published != 0 || out.Submitted != 1 {
			t.Errorf("unexpected counts: %+v", out)
		}
	})

	t.Run("Missing workspace settings abort before any request", func(t *testing.T) {
		repo := &mockRepo{}
		f := newFixture(t, model.Settings{GoogleAPIKey: "g"}, &mockLLM{}, repo)
		id := seedTasks(t, f, []model.TaskRecord{{Description: "x"}})

		_, err := f.uc.Publish(ctx, meeting.PublishInput{SessionID: id})
		if !errors.Is(err, meeting.ErrMissingWorkspace) {
			t.Errorf("expected ErrMissingWorkspace, got %v", err)
		}
		if repo.createdTitle != "" {
			t.Error("expected no remote call without credentials")
		}
	})

	t.Run("Empty batch", func(t *testing.T) {
		f := newFixture(t, workingSettings, &mockLLM{}, &mockRepo{})
		sess := f.sessions.Create()

		_, err := f.uc.Publish(ctx, meeting.PublishInput{SessionID: sess.ID})
		if !errors.Is(err, meeting.ErrNoTasks) {
			t.Errorf("expected ErrNoTasks, got %v", err)
		}
	})

	t.Run("Database creation failure surfaces body", func(t *testing.T) {
		repo := &mockRepo{createErr: errors.New(`notion API error 400: {"message":"bad parent"}`)}
		f := newFixture(t, workingSettings, &mockLLM{}, repo)
		id := seedTasks(t, f, []model.TaskRecord{{Description: "x"}})

		_, err := f.uc.Publish(ctx, meeting.PublishInput{SessionID: id})
		if err == nil {
			t.Fatal("expected error")
		}
		if repo.insertCalls != 0 {
			t.Error("expected no inserts after database creation failed")
		}
	})
}

func TestEndToEnd(t *testing.T) {
	llm := &mockLLM{responseText: "```json\n[{\"담당자\":\"지훈\",\"업무내용\":\"보고서 작성\"}]\n```"}
	repo := &mockRepo{}
	f := newFixture(t, workingSettings, llm, repo)
	ctx := context.Background()

	id := f.sessionWithAudio(t)

	analyzed, err := f.uc.Analyze(ctx, meeting.AnalyzeInput{SessionID: id})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if analyzed.Count != 1 || analyzed.Tasks[0].DueDate != model.DefaultDueDate {
		t.Fatalf("unexpected extraction: %+v", analyzed)
	}

	out, err := f.uc.Publish(ctx, meeting.PublishInput{SessionID: id})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if out.Title != "2024-01-01 회의 업무" || out.Published != 1 {
		t.Errorf("unexpected publish output: %+v", out)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].Description != "보고서 작성" {
		t.Errorf("unexpected inserted record: %+v", repo.inserted)
	}
}
