package http

import (
	"github.com/gin-gonic/gin"

	"meeting-assistant/internal/meeting"
	"meeting-assistant/internal/settings"
	pkgLog "meeting-assistant/pkg/log"
)

// Handler is the public interface for the meeting HTTP delivery layer.
type Handler interface {
	CreateSession(c *gin.Context)
	UploadAudio(c *gin.Context)
	Analyze(c *gin.Context)
	GetTasks(c *gin.Context)
	UpdateTasks(c *gin.Context)
	Publish(c *gin.Context)
	GetSettings(c *gin.Context)
	UpdateSettings(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	uc       meeting.UseCase
	settings *settings.Store

	maxAudioBytes int64
}

// New creates a new HTTP handler for the meeting domain.
func New(l pkgLog.Logger, uc meeting.UseCase, settingsStore *settings.Store, maxAudioBytes int64) Handler {
	return &handler{
		l:             l,
		uc:            uc,
		settings:      settingsStore,
		maxAudioBytes: maxAudioBytes,
	}
}
