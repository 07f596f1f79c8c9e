package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"meeting-assistant/internal/meeting"
	"meeting-assistant/internal/model"
	"meeting-assistant/pkg/gemini"
)

// Analyze uploads the session's clip to Gemini, runs the fixed extraction
// instruction, and replaces the task batch with the result. On any failure
// the previous batch is left untouched.
func (uc *implUseCase) Analyze(ctx context.Context, input meeting.AnalyzeInput) (meeting.AnalyzeOutput, error) {
	cfg, err := uc.settings.Load()
	if err != nil {
		return meeting.AnalyzeOutput{}, err
	}
	if cfg.GoogleAPIKey == "" {
		return meeting.AnalyzeOutput{}, meeting.ErrMissingAIKey
	}

	sess, err := uc.getSession(input.SessionID)
	if err != nil {
		return meeting.AnalyzeOutput{}, err
	}
	if len(sess.Audio) == 0 {
		return meeting.AnalyzeOutput{}, meeting.ErrNoAudio
	}

	uc.l.Infof(ctx, "Analyze: session=%s audio_bytes=%d", input.SessionID, len(sess.Audio))

	tasks, err := uc.extractTasks(ctx, cfg.GoogleAPIKey, sess.Audio)
	if err != nil {
		return meeting.AnalyzeOutput{}, err
	}

	for i := range tasks {
		tasks[i] = tasks[i].Normalized()
	}

	if err := uc.sessions.SetTasks(input.SessionID, tasks); err != nil {
		return meeting.AnalyzeOutput{}, uc.mapSessionErr(err)
	}

	uc.l.Infof(ctx, "Analyze: session=%s extracted %d tasks", input.SessionID, len(tasks))
	return meeting.AnalyzeOutput{Tasks: tasks, Count: len(tasks)}, nil
}

// extractTasks runs the upload + generation round trip. The clip is staged in
// a temporary file that is removed on every exit path.
func (uc *implUseCase) extractTasks(ctx context.Context, apiKey string, audio []byte) ([]model.TaskRecord, error) {
	tmp, err := os.CreateTemp("", "meeting-*.wav")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp audio file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(audio); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write temp audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp audio file: %w", err)
	}

	file, err := uc.llm.UploadFile(ctx, apiKey, tmpPath, "audio/wav")
	if err != nil {
		return nil, fmt.Errorf("failed to upload audio: %w", err)
	}

	genCtx, cancel := context.WithTimeout(ctx, gemini.GenerationTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(genCtx, apiKey, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{
				{FileData: &gemini.FileData{MimeType: file.MimeType, FileURI: file.URI}},
				{Text: gemini.MeetingTaskPrompt},
			}},
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", meeting.ErrExtractionTimeout, err)
		}
		return nil, fmt.Errorf("generation request failed: %w", err)
	}

	text := sanitizeJSONResponse(resp.Text())
	if text == "" {
		return nil, meeting.ErrEmptyExtraction
	}

	var tasks []model.TaskRecord
	if err := json.Unmarshal([]byte(text), &tasks); err != nil {
		uc.l.Errorf(ctx, "Analyze: failed to parse extraction result. Raw=%q Cleaned=%q", resp.Text(), text)
		return nil, fmt.Errorf("%w: %v", meeting.ErrMalformedExtraction, err)
	}

	return tasks, nil
}
