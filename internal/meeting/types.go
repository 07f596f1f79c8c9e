package meeting

import (
	"time"

	"meeting-assistant/internal/model"
)

// MaxRecommendedDuration is the advisory clip length. Longer recordings still
// go through in a single upload, but processing gets slow and flaky.
const MaxRecommendedDuration = 50 * time.Minute

// SessionOutput describes a newly opened session.
type SessionOutput struct {
	SessionID string
	CreatedAt time.Time
}

// AttachAudioInput carries the uploaded clip.
type AttachAudioInput struct {
	SessionID string
	Audio     []byte
}

// AttachAudioOutput reports the inspected clip metadata. Warning is set when
// the clip exceeds MaxRecommendedDuration.
type AttachAudioOutput struct {
	Info    model.AudioInfo
	Warning string
}

// AnalyzeInput triggers extraction for a session.
type AnalyzeInput struct {
	SessionID string
}

// AnalyzeOutput is the freshly extracted task batch.
type AnalyzeOutput struct {
	Tasks []model.TaskRecord
	Count int
}

// UpdateTasksInput replaces a session's batch with the operator's edits.
type UpdateTasksInput struct {
	SessionID string
	Tasks     []model.TaskRecord
}

// TasksOutput is the session's current batch.
type TasksOutput struct {
	Tasks []model.TaskRecord
	Count int
}

// PublishInput triggers publishing for a session.
type PublishInput struct {
	SessionID string
}

// PublishOutput reports the created database and how many records made it in.
// Published < Submitted means some inserts failed; every record is attempted.
type PublishOutput struct {
	DatabaseID string
	Title      string
	Submitted  int
	Published  int
}
