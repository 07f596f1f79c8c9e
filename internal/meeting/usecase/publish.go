package usecase

import (
	"context"
	"fmt"

	"meeting-assistant/internal/meeting"
	"meeting-assistant/pkg/pageid"
)

// DatabaseTitleSuffix follows the date in the published table's title.
const DatabaseTitleSuffix = "회의 업무"

// Publish creates a dated database under the configured parent page and
// inserts one page per task. Inserts are sequential; a failed insert is
// reported and the remaining records are still attempted.
func (uc *implUseCase) Publish(ctx context.Context, input meeting.PublishInput) (meeting.PublishOutput, error) {
	cfg, err := uc.settings.Load()
	if err != nil {
		return meeting.PublishOutput{}, err
	}

	parentPageID := pageid.Extract(cfg.NotionPageID)
	if cfg.NotionToken == "" || parentPageID == "" {
		return meeting.PublishOutput{}, meeting.ErrMissingWorkspace
	}

	sess, err := uc.getSession(input.SessionID)
	if err != nil {
		return meeting.PublishOutput{}, err
	}
	if len(sess.Tasks) == 0 {
		return meeting.PublishOutput{}, meeting.ErrNoTasks
	}

	title := fmt.Sprintf("%s %s", uc.now().Format("2006-01-02"), DatabaseTitleSuffix)

	databaseID, err := uc.repo.CreateTaskDatabase(ctx, cfg.NotionToken, parentPageID, title)
	if err != nil {
		return meeting.PublishOutput{}, fmt.Errorf("failed to create database: %w", err)
	}

	if err := uc.sessions.SetDatabaseID(input.SessionID, databaseID); err != nil {
		return meeting.PublishOutput{}, uc.mapSessionErr(err)
	}

	uc.l.Infof(ctx, "Publish: session=%s database=%s tasks=%d", input.SessionID, databaseID, len(sess.Tasks))

	published := 0
	for i, rec := range sess.Tasks {
		if err := uc.repo.InsertTask(ctx, cfg.NotionToken, databaseID, rec); err != nil {
			uc.l.Errorf(ctx, "Publish: insert %d/%d failed: %v", i+1, len(sess.Tasks), err)
			continue
		}
		published++
	}

	out := meeting.PublishOutput{
		DatabaseID: databaseID,
		Title:      title,
		Submitted:  len(sess.Tasks),
		Published:  published,
	}

	if published == 0 {
		return out, meeting.ErrNothingPublished
	}
	return out, nil
}
