package usecase

import (
	"time"

	"meeting-assistant/internal/meeting/repository"
	"meeting-assistant/internal/session"
	"meeting-assistant/internal/settings"
	"meeting-assistant/pkg/gemini"
	pkgLog "meeting-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      gemini.IGemini
	repo     repository.WorkspaceRepository
	settings *settings.Store
	sessions *session.Store
	now      func() time.Time
}

// New creates a new meeting UseCase instance.
func New(
	l pkgLog.Logger,
	llm gemini.IGemini,
	repo repository.WorkspaceRepository,
	settingsStore *settings.Store,
	sessions *session.Store,
) *implUseCase {
	return NewWithClock(l, llm, repo, settingsStore, sessions, time.Now)
}

// NewWithClock is New with an injectable clock. The clock stamps the title of
// the published database.
func NewWithClock(
	l pkgLog.Logger,
	llm gemini.IGemini,
	repo repository.WorkspaceRepository,
	settingsStore *settings.Store,
	sessions *session.Store,
	now func() time.Time,
) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		repo:     repo,
		settings: settingsStore,
		sessions: sessions,
		now:      now,
	}
}
