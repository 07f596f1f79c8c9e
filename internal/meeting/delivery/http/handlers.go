package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"meeting-assistant/internal/meeting"
	"meeting-assistant/pkg/response"
)

// CreateSession godoc
// @Summary     Open a working session
// @Description Creates a new session that holds the audio clip and editable task batch.
// @Tags        Meeting
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.OpenSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.OpenSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(out))
}

// UploadAudio godoc
// @Summary     Upload the recorded clip
// @Description Attaches a WAV recording to the session. Responds with clip metadata and a warning for clips over 50 minutes.
// @Tags        Meeting
// @Accept      multipart/form-data
// @Produce     json
// @Param       id    path     string true "Session ID"
// @Param       audio formData file   true "WAV recording"
// @Success     200 {object} audioResp
// @Failure     400 {object} response.Resp "Invalid or missing audio"
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/{id}/audio [POST]
func (h *handler) UploadAudio(c *gin.Context) {
	ctx := c.Request.Context()

	audio, err := h.readAudioFile(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.AttachAudio(ctx, meeting.AttachAudioInput{
		SessionID: c.Param("id"),
		Audio:     audio,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.AttachAudio: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAudioResp(out))
}

// Analyze godoc
// @Summary     Extract tasks from the clip
// @Description Uploads the clip to the AI service and replaces the task batch with the extraction result.
// @Tags        Meeting
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} tasksResp
// @Failure     400 {object} response.Resp "Missing credential or audio"
// @Failure     502 {object} response.Resp "Extraction failed"
// @Router      /api/v1/sessions/{id}/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Analyze(ctx, meeting.AnalyzeInput{SessionID: c.Param("id")})
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTasksResp(out.Tasks))
}

// GetTasks godoc
// @Summary     Get the editable task batch
// @Tags        Meeting
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} tasksResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/{id}/tasks [GET]
func (h *handler) GetTasks(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.GetTasks(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetTasks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTasksResp(out.Tasks))
}

// UpdateTasks godoc
// @Summary     Replace the task batch with the operator's edits
// @Tags        Meeting
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Session ID"
// @Param       body body updateTasksReq true "Edited task batch"
// @Success     200 {object} tasksResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/sessions/{id}/tasks [PUT]
func (h *handler) UpdateTasks(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateTasksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.UpdateTasks(ctx, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateTasks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTasksResp(out.Tasks))
}

// Publish godoc
// @Summary     Publish the batch to the workspace
// @Description Creates a dated database under the configured parent page and inserts one record per task.
// @Tags        Meeting
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} publishResp
// @Failure     400 {object} response.Resp "Missing workspace settings or empty batch"
// @Failure     502 {object} response.Resp "Workspace request failed"
// @Router      /api/v1/sessions/{id}/publish [POST]
func (h *handler) Publish(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Publish(ctx, meeting.PublishInput{SessionID: c.Param("id")})
	if err != nil {
		h.l.Errorf(ctx, "uc.Publish: %v", err)
		response.Error(c, h.mapError(err), newPublishData(out))
		return
	}

	response.OK(c, newPublishResp(out))
}

// GetSettings godoc
// @Summary     Read the stored operator settings
// @Tags        Settings
// @Produce     json
// @Success     200 {object} settingsDTO
// @Router      /api/v1/settings [GET]
func (h *handler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := h.settings.Load()
	if err != nil {
		h.l.Errorf(ctx, "settings.Load: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSettingsDTO(cfg))
}

// UpdateSettings godoc
// @Summary     Save the operator settings
// @Description Overwrites the settings file wholesale with the submitted values.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body settingsDTO true "Settings"
// @Success     200 {object} settingsDTO
// @Router      /api/v1/settings [PUT]
func (h *handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	var req settingsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.settings.Save(req.toModel()); err != nil {
		h.l.Errorf(ctx, "settings.Save: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, req)
}

func (h *handler) readAudioFile(c *gin.Context) ([]byte, error) {
	if h.maxAudioBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxAudioBytes)
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return nil, errors.New("multipart field 'audio' is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
