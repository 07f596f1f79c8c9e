package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"meeting-assistant/config"
	_ "meeting-assistant/docs" // Swagger docs
	"meeting-assistant/internal/httpserver"
	meetingDelivery "meeting-assistant/internal/meeting/delivery/http"
	notionRepo "meeting-assistant/internal/meeting/repository/notion"
	"meeting-assistant/internal/meeting/usecase"
	"meeting-assistant/internal/middleware"
	"meeting-assistant/internal/session"
	"meeting-assistant/internal/settings"
	"meeting-assistant/pkg/gemini"
	"meeting-assistant/pkg/log"
)

// @title       Meeting Assistant API
// @description Extracts action items from meeting audio with Gemini and publishes them to a Notion database.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Meeting Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Settings file: %s", cfg.Settings.Path)

	// 3. Operator settings (API keys live here, editable at runtime)
	settingsStore := settings.New(cfg.Settings.Path)
	if _, sErr := settingsStore.Load(); sErr != nil {
		logger.Warnf(ctx, "Settings file unreadable, starting unconfigured: %v", sErr)
	}

	// 4. Gemini LLM client
	llm, err := gemini.New(gemini.Config{
		APIURL:    cfg.Gemini.APIURL,
		UploadURL: cfg.Gemini.UploadURL,
		Model:     cfg.Gemini.Model,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to build Gemini client: %v", err)
	}
	logger.Infof(ctx, "Gemini model: %s", llm.Model())

	// 5. Notion repository
	notionClient := notionRepo.NewClient(cfg.Notion.BaseURL)
	workspaceRepo := notionRepo.New(notionClient, logger)

	// 6. Session store
	sessions, err := session.New(cfg.Limits.MaxSessions)
	if err != nil {
		logger.Fatalf(ctx, "Failed to build session store: %v", err)
	}

	// 7. Meeting UseCase + HTTP delivery
	meetingUC := usecase.New(logger, llm, workspaceRepo, settingsStore, sessions)
	meetingHandler := meetingDelivery.New(logger, meetingUC, settingsStore, cfg.Limits.MaxAudioBytes)

	mw := middleware.New(logger, cfg.Limits.RequestsPerMin)

	srv, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: string(cfg.Environment.Name),

		Middleware:     mw,
		MeetingHandler: meetingHandler,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}

	logger.Info(ctx, "Shutdown complete")
}
