package model

import "time"

// Default values substituted for fields the extraction (or the operator's
// edits) left empty. These are the exact strings the Notion table receives.
const (
	DefaultAssignee    = "미정"
	DefaultDescription = "내용 없음"
	DefaultDueDate     = "미정"
)

// TaskRecord is one unit of extracted work. The JSON tags are the Korean
// field names the extraction instruction asks the model to emit, so a raw
// Gemini response array unmarshals directly into a batch.
type TaskRecord struct {
	Assignee    string `json:"담당자"`
	Description string `json:"업무내용"`
	DueDate     string `json:"기한"`
}

// Normalized returns a copy with defaults substituted for empty fields.
// Applied once after extraction and once more before publishing, since the
// operator's edits may reintroduce empty fields.
func (t TaskRecord) Normalized() TaskRecord {
	if t.Assignee == "" {
		t.Assignee = DefaultAssignee
	}
	if t.Description == "" {
		t.Description = DefaultDescription
	}
	if t.DueDate == "" {
		t.DueDate = DefaultDueDate
	}
	return t
}

// AudioInfo describes the uploaded WAV clip.
type AudioInfo struct {
	Duration   time.Duration
	SampleRate int
	Channels   int
	BitDepth   int
}

// Session is the explicit per-operator working state: one audio clip, one
// editable task batch, and the id of the last database created for it.
// Sessions live in memory only and are discarded when evicted.
type Session struct {
	ID         string
	Audio      []byte
	AudioInfo  AudioInfo
	Tasks      []TaskRecord
	DatabaseID string
	CreatedAt  time.Time
}
