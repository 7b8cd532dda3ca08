// Package messaging pushes dialog state changes to connected preview clients
// over websockets.
package messaging

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pullpane/pullpane-go/internal/infrastructure/observability/logging"
)

// PreviewClient represents a single connected preview page.
type PreviewClient struct {
	Conn      *websocket.Conn
	SessionID string
	Send      chan []byte
}

// DialogStatePayload is sent to preview clients whenever a dialog changes
// state. HTML carries the re-rendered fragment so clients can swap in place.
type DialogStatePayload struct {
	DialogID  string `json:"dialogId"`
	SessionID string `json:"sessionId"`
	IsOpen    bool   `json:"isOpen"`
	HTML      string `json:"html"`
}

// PreviewBroadcaster manages all connected preview clients and fans out
// dialog state payloads.
type PreviewBroadcaster struct {
	clients      map[*PreviewClient]bool
	register     chan *PreviewClient
	unregister   chan *PreviewClient
	broadcast    chan DialogStatePayload
	writeTimeout time.Duration
	logger       *logging.ChanneledLogger
	mu           sync.RWMutex
}

// NewPreviewBroadcaster creates a new broadcaster instance.
func NewPreviewBroadcaster(writeTimeout time.Duration, logger *logging.ChanneledLogger) *PreviewBroadcaster {
	return &PreviewBroadcaster{
		clients:      make(map[*PreviewClient]bool),
		register:     make(chan *PreviewClient),
		unregister:   make(chan *PreviewClient),
		broadcast:    make(chan DialogStatePayload, 64),
		writeTimeout: writeTimeout,
		logger:       logger,
	}
}

// Run starts the broadcaster's main loop. This should be run as a goroutine.
func (b *PreviewBroadcaster) Run() {
	for {
		select {
		case client := <-b.register:
			b.mu.Lock()
			b.clients[client] = true
			b.mu.Unlock()
			b.logger.Preview().Info("Preview client registered", "sessionId", client.SessionID)

		case client := <-b.unregister:
			b.mu.Lock()
			if _, ok := b.clients[client]; ok {
				delete(b.clients, client)
				close(client.Send)
			}
			b.mu.Unlock()
			b.logger.Preview().Info("Preview client unregistered", "sessionId", client.SessionID)

		case payload := <-b.broadcast:
			message, err := json.Marshal(payload)
			if err != nil {
				b.logger.Preview().Error("Failed to marshal dialog state payload", "error", err.Error())
				continue
			}

			b.mu.RLock()
			for client := range b.clients {
				select {
				case client.Send <- message:
				default:
					// Slow client; drop the frame rather than block the loop.
				}
			}
			b.mu.RUnlock()
		}
	}
}

// Register queues a client for registration.
func (b *PreviewBroadcaster) Register(client *PreviewClient) {
	b.register <- client
}

// Unregister queues a client for unregistration.
func (b *PreviewBroadcaster) Unregister(client *PreviewClient) {
	b.unregister <- client
}

// BroadcastDialogState queues a dialog state change for fan-out.
func (b *PreviewBroadcaster) BroadcastDialogState(payload DialogStatePayload) {
	select {
	case b.broadcast <- payload:
	default:
		b.logger.Preview().Warn("Broadcast queue full, dropping dialog state payload", "dialogId", payload.DialogID)
	}
}

// ClientCount returns the number of connected preview clients.
func (b *PreviewBroadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// WritePump drains a client's send channel to its connection. Run as a
// goroutine per client; returns when the send channel closes or a write fails.
func (b *PreviewBroadcaster) WritePump(client *PreviewClient) {
	defer client.Conn.Close()

	for message := range client.Send {
		client.Conn.SetWriteDeadline(time.Now().Add(b.writeTimeout))
		if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			b.logger.Preview().Debug("Preview client write failed", "sessionId", client.SessionID, "error", err.Error())
			return
		}
	}

	client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// ReadPump consumes (and discards) client frames so pings are processed and
// disconnects are noticed. Run as a goroutine per client.
func (b *PreviewBroadcaster) ReadPump(client *PreviewClient) {
	defer func() {
		b.Unregister(client)
		client.Conn.Close()
	}()

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
