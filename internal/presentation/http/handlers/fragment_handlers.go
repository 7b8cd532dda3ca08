// Package handlers provides HTTP request handlers for the presentation layer.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pullpane/pullpane-go/internal/application/services"
	"github.com/pullpane/pullpane-go/internal/infrastructure/observability/logging"
	"github.com/pullpane/pullpane-go/internal/infrastructure/observability/performance"
	"github.com/pullpane/pullpane-go/internal/presentation/http/middleware"
)

// FragmentHandlers handles HTTP requests for dialog fragment endpoints
type FragmentHandlers struct {
	fragmentService *services.FragmentService
	dialogService   *services.DialogService
	logger          *logging.ChanneledLogger
	perfTracker     *performance.Tracker
}

// NewFragmentHandlers creates a new fragment handlers instance
func NewFragmentHandlers(
	fragmentService *services.FragmentService,
	dialogService *services.DialogService,
	logger *logging.ChanneledLogger,
	perfTracker *performance.Tracker,
) *FragmentHandlers {
	return &FragmentHandlers{
		fragmentService: fragmentService,
		dialogService:   dialogService,
		logger:          logger,
		perfTracker:     perfTracker,
	}
}

// GetDialogFragment handles GET /api/v1/fragments/dialogs/:id
func (h *FragmentHandlers) GetDialogFragment(c *gin.Context) {
	start := time.Now()
	sessionID, _ := middleware.GetSessionID(c)

	marker := h.perfTracker.StartOperation("fragment:generate", sessionID)
	defer marker.Complete()

	dialogID := c.Param("id")
	if dialogID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dialog ID is required"})
		return
	}

	html, err := h.fragmentService.GenerateFragment(dialogID, sessionID)
	if err != nil {
		marker.SetError(err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Get fragment request completed",
		"dialogId", dialogID, "duration", time.Since(start))

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// ListDialogs handles GET /api/v1/dialogs
func (h *FragmentHandlers) ListDialogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dialogs": h.dialogService.List()})
}
