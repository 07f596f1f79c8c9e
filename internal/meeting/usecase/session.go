package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meeting-assistant/internal/meeting"
	"meeting-assistant/internal/model"
	"meeting-assistant/internal/session"
	"meeting-assistant/pkg/audioinfo"
)

// OpenSession creates a new working session.
func (uc *implUseCase) OpenSession(ctx context.Context) (meeting.SessionOutput, error) {
	sess := uc.sessions.Create()
	uc.l.Infof(ctx, "OpenSession: session=%s", sess.ID)
	return meeting.SessionOutput{SessionID: sess.ID, CreatedAt: sess.CreatedAt}, nil
}

// AttachAudio inspects the uploaded clip and stores it on the session.
func (uc *implUseCase) AttachAudio(ctx context.Context, input meeting.AttachAudioInput) (meeting.AttachAudioOutput, error) {
	if _, err := uc.getSession(input.SessionID); err != nil {
		return meeting.AttachAudioOutput{}, err
	}

	info, err := audioinfo.Inspect(input.Audio)
	if err != nil {
		return meeting.AttachAudioOutput{}, fmt.Errorf("%w: %v", meeting.ErrInvalidAudio, err)
	}

	audioMeta := model.AudioInfo{
		Duration:   info.Duration,
		SampleRate: info.SampleRate,
		Channels:   info.Channels,
		BitDepth:   info.BitDepth,
	}
	if err := uc.sessions.SetAudio(input.SessionID, input.Audio, audioMeta); err != nil {
		return meeting.AttachAudioOutput{}, uc.mapSessionErr(err)
	}

	out := meeting.AttachAudioOutput{Info: audioMeta}
	if info.Duration > meeting.MaxRecommendedDuration {
		out.Warning = fmt.Sprintf("recording is %s long; clips over %s may be slow or fail to process",
			info.Duration.Round(time.Second), meeting.MaxRecommendedDuration)
	}

	uc.l.Infof(ctx, "AttachAudio: session=%s bytes=%d duration=%s",
		input.SessionID, len(input.Audio), info.Duration)
	return out, nil
}

// GetTasks returns the session's current batch.
func (uc *implUseCase) GetTasks(ctx context.Context, sessionID string) (meeting.TasksOutput, error) {
	sess, err := uc.getSession(sessionID)
	if err != nil {
		return meeting.TasksOutput{}, err
	}
	return meeting.TasksOutput{Tasks: sess.Tasks, Count: len(sess.Tasks)}, nil
}

// UpdateTasks replaces the batch wholesale with the operator's edits.
func (uc *implUseCase) UpdateTasks(ctx context.Context, input meeting.UpdateTasksInput) (meeting.TasksOutput, error) {
	if err := uc.sessions.SetTasks(input.SessionID, input.Tasks); err != nil {
		return meeting.TasksOutput{}, uc.mapSessionErr(err)
	}
	uc.l.Infof(ctx, "UpdateTasks: session=%s count=%d", input.SessionID, len(input.Tasks))
	return meeting.TasksOutput{Tasks: input.Tasks, Count: len(input.Tasks)}, nil
}

func (uc *implUseCase) getSession(id string) (*model.Session, error) {
	sess, err := uc.sessions.Get(id)
	if err != nil {
		return nil, uc.mapSessionErr(err)
	}
	return sess, nil
}

func (uc *implUseCase) mapSessionErr(err error) error {
	if errors.Is(err, session.ErrNotFound) {
		return meeting.ErrSessionNotFound
	}
	return err
}
