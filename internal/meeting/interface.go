package meeting

import "context"

// UseCase defines the business logic interface for the meeting domain.
type UseCase interface {
	// OpenSession creates a new working session.
	OpenSession(ctx context.Context) (SessionOutput, error)

	// AttachAudio stores the recorded clip on the session after inspecting it.
	AttachAudio(ctx context.Context, input AttachAudioInput) (AttachAudioOutput, error)

	// Analyze uploads the session's audio to the AI service and replaces the
	// task batch with the extraction result.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)

	// GetTasks returns the session's current task batch.
	GetTasks(ctx context.Context, sessionID string) (TasksOutput, error)

	// UpdateTasks replaces the task batch wholesale with the edited records.
	UpdateTasks(ctx context.Context, input UpdateTasksInput) (TasksOutput, error)

	// Publish creates a dated database under the configured parent page and
	// inserts one page per task. Partial success is reported by the count.
	Publish(ctx context.Context, input PublishInput) (PublishOutput, error)
}
