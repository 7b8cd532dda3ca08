package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/pullpane/pullpane-go/internal/infrastructure/messaging"
	"github.com/pullpane/pullpane-go/internal/infrastructure/observability/logging"
	"github.com/pullpane/pullpane-go/internal/presentation/http/middleware"
	"github.com/pullpane/pullpane-go/pkg/config"
)

// PreviewHandlers upgrades preview pages to websocket connections fed by the
// dialog state broadcaster.
type PreviewHandlers struct {
	broadcaster *messaging.PreviewBroadcaster
	logger      *logging.ChanneledLogger
	upgrader    websocket.Upgrader
}

// NewPreviewHandlers creates preview handlers with injected dependencies
func NewPreviewHandlers(broadcaster *messaging.PreviewBroadcaster, logger *logging.ChanneledLogger) *PreviewHandlers {
	return &PreviewHandlers{
		broadcaster: broadcaster,
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range config.AllowedOrigins {
					if origin == allowed {
						return true
					}
				}
				return false
			},
		},
	}
}

// StreamDialogState handles GET /api/v1/preview/ws
func (h *PreviewHandlers) StreamDialogState(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Preview().Error("Websocket upgrade failed", "error", err.Error())
		return
	}

	client := &messaging.PreviewClient{
		Conn:      conn,
		SessionID: sessionID,
		Send:      make(chan []byte, config.PreviewSendBuffer),
	}

	h.broadcaster.Register(client)
	go h.broadcaster.WritePump(client)
	go h.broadcaster.ReadPump(client)
}
