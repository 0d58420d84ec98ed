// Package web: live audit feed over WebSocket.
package web

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/PancyStudios/SentinelBotGo/pkg/audit"
	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

const (
	// writeWait is the deadline for one outbound frame.
	writeWait = 10 * time.Second
	// pingPeriod keeps idle connections alive through proxies.
	pingPeriod = 30 * time.Second
	// clientBuffer is how many records a slow client may lag before
	// being dropped.
	clientBuffer = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// AuditStream is a WebSocket hub that broadcasts audit records to every
// connected client. It implements audit.Sink.
type AuditStream struct {
	mu      sync.RWMutex
	clients map[*streamClient]struct{}
}

type streamClient struct {
	conn *websocket.Conn
	send chan []byte
}

// NewAuditStream creates an empty hub.
func NewAuditStream() *AuditStream {
	return &AuditStream{
		clients: make(map[*streamClient]struct{}),
	}
}

// Write broadcasts the record. A client whose buffer is full is
// disconnected instead of blocking the dispatcher.
func (h *AuditStream) Write(rec audit.Record) {
	data, err := json.Marshal(rec)
	if err != nil {
		logger.Warn(fmt.Sprintf("No se pudo serializar el registro de auditoría: %v", err), "AuditStream")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			go h.drop(c)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *AuditStream) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Handler upgrades the request and attaches the client to the hub.
func (h *AuditStream) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn(fmt.Sprintf("Fallo al actualizar a WebSocket: %v", err), "AuditStream")
			return
		}

		client := &streamClient{
			conn: conn,
			send: make(chan []byte, clientBuffer),
		}

		h.mu.Lock()
		h.clients[client] = struct{}{}
		h.mu.Unlock()

		logger.Info(fmt.Sprintf("🔌 Cliente de auditoría conectado: %s", c.ClientIP()), "AuditStream")

		go h.writePump(client)
		go h.readPump(client)
	}
}

// writePump pushes broadcast frames and periodic pings to one client.
func (h *AuditStream) writePump(c *streamClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.drop(c)
	}()

	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames; the stream is one-way. It exists to
// notice the close handshake.
func (h *AuditStream) readPump(c *streamClient) {
	defer h.drop(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// drop removes a client and closes its connection. Safe to call twice.
func (h *AuditStream) drop(c *streamClient) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()

	if ok {
		c.conn.Close()
	}
}
