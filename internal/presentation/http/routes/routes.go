// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/luxeestates/luxegate-go/internal/application/container"
	"github.com/luxeestates/luxegate-go/internal/presentation/http/handlers"
	"github.com/luxeestates/luxegate-go/internal/presentation/http/middleware"
	"github.com/luxeestates/luxegate-go/pkg/config"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Uploaded project images are served straight from disk
	r.Static("/media", config.MediaPath)

	// Initialize handlers
	catalogHandlers := handlers.NewCatalogHandlers(container.CatalogService, container.GatingService, container.StateService, container.Logger, container.PerfTracker)
	captureHandlers := handlers.NewCaptureHandlers(container.CaptureService, container.Logger, container.PerfTracker)
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.Logger, container.PerfTracker)
	sessionHandlers := handlers.NewSessionHandlers(container.StateService, container.Broadcaster, container.Logger, container.PerfTracker)
	adminHandlers := handlers.NewAdminHandlers(container.StateService, container.CatalogService, container.ExportService, container.Broadcaster, container.LeadStream, container.Logger, container.PerfTracker)

	api := r.Group("/api/v1")
	{
		api.GET("/catalog", catalogHandlers.GetCatalog)
		api.GET("/catalog/:id", catalogHandlers.GetProjectDetail)

		api.POST("/capture", captureHandlers.PostCapture)

		api.GET("/session", sessionHandlers.GetSession)
		api.GET("/session/sse", sessionHandlers.GetSessionStream)

		api.POST("/auth/login", authHandlers.PostLogin)
		api.POST("/auth/logout", authHandlers.PostLogout)
		api.GET("/auth/status", authHandlers.GetAuthStatus)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminOnlyMiddleware())
		{
			admin.GET("/leads", adminHandlers.GetLeads)
			admin.GET("/leads/export", adminHandlers.GetLeadsExport)
			admin.GET("/leads/stream", adminHandlers.GetLeadStream)
			admin.GET("/stats", adminHandlers.GetStats)
			admin.POST("/projects", adminHandlers.PostProject)
			admin.POST("/reset", adminHandlers.PostReset)
		}
	}

	return r
}
