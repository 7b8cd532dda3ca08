// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pullpane/pullpane-go/internal/application/container"
	"github.com/pullpane/pullpane-go/internal/presentation/http/handlers"
	"github.com/pullpane/pullpane-go/internal/presentation/http/middleware"
	"github.com/pullpane/pullpane-go/pkg/config"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SessionMiddleware())

	// Serve the static preview page and its stylesheet.
	r.Static("/preview", config.PreviewDir)

	// Initialize handlers
	fragmentHandlers := handlers.NewFragmentHandlers(container.FragmentService, container.DialogService, container.Logger, container.PerfTracker)
	stateHandlers := handlers.NewStateHandlers(container.StateService, container.Logger, container.PerfTracker)
	visitHandlers := handlers.NewVisitHandlers(container.SessionService, container.Logger)
	previewHandlers := handlers.NewPreviewHandlers(container.Broadcaster, container.Logger)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/dialogs", fragmentHandlers.ListDialogs)
		api.GET("/fragments/dialogs/:id", fragmentHandlers.GetDialogFragment)
		api.POST("/state", stateHandlers.PostState)
		api.POST("/visit", visitHandlers.PostVisit)
		api.GET("/preview/ws", previewHandlers.StreamDialogState)
	}

	return r
}
