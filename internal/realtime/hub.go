// Package realtime fans booking change notifications out to connected
// admin dashboards.
package realtime

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Notification is the message pushed to dashboard clients. Alert is set for
// new bookings so the dashboard can play its chime; updates and deletes just
// trigger a silent re-fetch.
type Notification struct {
	Type     string          `json:"type"`
	Alert    bool            `json:"alert"`
	TicketID string          `json:"ticket_id,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// Client is a connected dashboard session. Send is drained by the transport
// goroutine; the hub never blocks on a slow client.
type Client struct {
	ID   string
	Send chan []byte
}

// Hub tracks connected clients and broadcasts notifications to all of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	logger  *zap.Logger
}

// NewHub creates an empty Hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		logger:  logger,
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
}

// Unregister removes a client and closes its send channel. Safe to call for
// a client that was never registered.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client.ID]; !ok {
		return
	}
	delete(h.clients, client.ID)
	close(client.Send)
}

// ClientCount returns the number of connected dashboard sessions.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a notification to every connected client. Messages to
// clients with a full send buffer are dropped; the dashboard re-fetches on
// the next event anyway.
func (h *Hub) Broadcast(n Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		h.logger.Error("failed to marshal notification", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- payload:
		default:
			h.logger.Warn("dropping notification for slow client",
				zap.String("client_id", client.ID),
			)
		}
	}
}
