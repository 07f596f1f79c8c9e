package http

import (
	"time"

	"meeting-assistant/internal/meeting"
	"meeting-assistant/internal/model"
)

// --- Request DTOs ---

type taskDTO struct {
	Assignee    string `json:"assignee"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

func (d taskDTO) toModel() model.TaskRecord {
	return model.TaskRecord{
		Assignee:    d.Assignee,
		Description: d.Description,
		DueDate:     d.DueDate,
	}
}

func newTaskDTO(rec model.TaskRecord) taskDTO {
	return taskDTO{
		Assignee:    rec.Assignee,
		Description: rec.Description,
		DueDate:     rec.DueDate,
	}
}

type updateTasksReq struct {
	Tasks []taskDTO `json:"tasks"`
}

func (r updateTasksReq) toInput(sessionID string) meeting.UpdateTasksInput {
	tasks := make([]model.TaskRecord, len(r.Tasks))
	for i, d := range r.Tasks {
		tasks[i] = d.toModel()
	}
	return meeting.UpdateTasksInput{SessionID: sessionID, Tasks: tasks}
}

type settingsDTO struct {
	GoogleAPIKey string `json:"google_api_key"`
	NotionToken  string `json:"notion_token"`
	NotionPageID string `json:"notion_page_id"`
}

func (d settingsDTO) toModel() model.Settings {
	return model.Settings{
		GoogleAPIKey: d.GoogleAPIKey,
		NotionToken:  d.NotionToken,
		NotionPageID: d.NotionPageID,
	}
}

func newSettingsDTO(s model.Settings) settingsDTO {
	return settingsDTO{
		GoogleAPIKey: s.GoogleAPIKey,
		NotionToken:  s.NotionToken,
		NotionPageID: s.NotionPageID,
	}
}

// --- Response DTOs ---

type sessionResp struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

func newSessionResp(out meeting.SessionOutput) sessionResp {
	return sessionResp{SessionID: out.SessionID, CreatedAt: out.CreatedAt}
}

type audioResp struct {
	DurationSeconds float64 `json:"duration_seconds"`
	SampleRate      int     `json:"sample_rate"`
	Channels        int     `json:"channels"`
	BitDepth        int     `json:"bit_depth"`
	Warning         string  `json:"warning,omitempty"`
}

func newAudioResp(out meeting.AttachAudioOutput) audioResp {
	return audioResp{
		DurationSeconds: out.Info.Duration.Seconds(),
		SampleRate:      out.Info.SampleRate,
		Channels:        out.Info.Channels,
		BitDepth:        out.Info.BitDepth,
		Warning:         out.Warning,
	}
}

type tasksResp struct {
	Tasks []taskDTO `json:"tasks"`
	Count int       `json:"count"`
}

func newTasksResp(tasks []model.TaskRecord) tasksResp {
	dtos := make([]taskDTO, len(tasks))
	for i, rec := range tasks {
		dtos[i] = newTaskDTO(rec)
	}
	return tasksResp{Tasks: dtos, Count: len(dtos)}
}

type publishResp struct {
	DatabaseID string `json:"database_id"`
	Title      string `json:"title"`
	Submitted  int    `json:"submitted"`
	Published  int    `json:"published"`
}

func newPublishResp(out meeting.PublishOutput) publishResp {
	return publishResp{
		DatabaseID: out.DatabaseID,
		Title:      out.Title,
		Submitted:  out.Submitted,
		Published:  out.Published,
	}
}

// newPublishData exposes the partial result on error responses so the
// operator can see how far publishing got.
func newPublishData(out meeting.PublishOutput) map[string]interface{} {
	if out.DatabaseID == "" && out.Submitted == 0 {
		return nil
	}
	return map[string]interface{}{
		"database_id": out.DatabaseID,
		"submitted":   out.Submitted,
		"published":   out.Published,
	}
}
