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

// StateHandlers contains all state-related HTTP handlers
type StateHandlers struct {
	stateService *services.StateService
	logger       *logging.ChanneledLogger
	perfTracker  *performance.Tracker
}

// NewStateHandlers creates state handlers with injected dependencies
func NewStateHandlers(stateService *services.StateService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *StateHandlers {
	return &StateHandlers{
		stateService: stateService,
		logger:       logger,
		perfTracker:  perfTracker,
	}
}

// PostState handles POST /api/v1/state - the dispatch target of backdrop
// activations. Responds with the re-rendered dialog fragment so HTMX can swap
// it in place.
func (h *StateHandlers) PostState(c *gin.Context) {
	start := time.Now()

	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		h.logger.Session().Error("State request missing session ID")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID required"})
		return
	}

	marker := h.perfTracker.StartOperation("state:dispatch", sessionID)
	defer marker.Complete()

	req := &services.StateRequest{
		DialogID:  c.PostForm("dialogId"),
		Verb:      c.PostForm("verb"),
		SessionID: sessionID,
	}
	if req.DialogID == "" || req.Verb == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dialogId and verb are required"})
		return
	}

	html, err := h.stateService.ProcessEvent(req)
	if err != nil {
		marker.SetError(err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	h.logger.Session().Info("State dispatch completed",
		"dialogId", req.DialogID, "verb", req.Verb, "duration", time.Since(start))

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
