package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestLogger())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the meeting and settings routes. The
// analyze/publish routes sit behind the rate limiter since each call hits a
// remote API.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	h := srv.meetingHandler
	limited := srv.middleware.RateLimit()

	api := srv.gin.Group("/api/v1")

	api.POST("/sessions", h.CreateSession)
	api.POST("/sessions/:id/audio", h.UploadAudio)
	api.POST("/sessions/:id/analyze", limited, h.Analyze)
	api.GET("/sessions/:id/tasks", h.GetTasks)
	api.PUT("/sessions/:id/tasks", h.UpdateTasks)
	api.POST("/sessions/:id/publish", limited, h.Publish)

	api.GET("/settings", h.GetSettings)
	api.PUT("/settings", h.UpdateSettings)

	srv.l.Infof(ctx, "Meeting routes registered under /api/v1")
}
