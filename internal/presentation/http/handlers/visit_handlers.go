package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pullpane/pullpane-go/internal/application/services"
	"github.com/pullpane/pullpane-go/internal/infrastructure/observability/logging"
	"github.com/pullpane/pullpane-go/internal/presentation/http/middleware"
)

// VisitHandlers handles session lifecycle endpoints
type VisitHandlers struct {
	sessionService *services.SessionService
	logger         *logging.ChanneledLogger
}

// NewVisitHandlers creates visit handlers with injected dependencies
func NewVisitHandlers(sessionService *services.SessionService, logger *logging.ChanneledLogger) *VisitHandlers {
	return &VisitHandlers{
		sessionService: sessionService,
		logger:         logger,
	}
}

// PostVisit handles POST /api/v1/visit - mints or refreshes a preview session.
func (h *VisitHandlers) PostVisit(c *gin.Context) {
	existingID, _ := middleware.GetSessionID(c)

	sessionID, err := h.sessionService.TouchSession(existingID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID})
}
