package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newClient(id string, buffer int) *Client {
	return &Client{ID: id, Send: make(chan []byte, buffer)}
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub(zap.NewNop())
	assert.Equal(t, 0, hub.ClientCount())

	a := newClient("a", 1)
	b := newClient("b", 1)
	hub.Register(a)
	hub.Register(b)
	assert.Equal(t, 2, hub.ClientCount())

	hub.Unregister(a)
	assert.Equal(t, 1, hub.ClientCount())

	// Send channel is closed on unregister so the transport goroutine exits.
	_, open := <-a.Send
	assert.False(t, open)

	// Second unregister is a no-op, not a double close.
	hub.Unregister(a)
	assert.Equal(t, 1, hub.ClientCount())
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(zap.NewNop())

	a := newClient("a", 4)
	b := newClient("b", 4)
	hub.Register(a)
	hub.Register(b)

	hub.Broadcast(Notification{Type: "booking.created", Alert: true, TicketID: "KC-TEST-0001"})

	for _, c := range []*Client{a, b} {
		payload := <-c.Send
		var n Notification
		require.NoError(t, json.Unmarshal(payload, &n))
		assert.Equal(t, "booking.created", n.Type)
		assert.True(t, n.Alert)
		assert.Equal(t, "KC-TEST-0001", n.TicketID)
	}
}

func TestHubBroadcast_DropsWhenBufferFull(t *testing.T) {
	hub := NewHub(zap.NewNop())

	slow := newClient("slow", 1)
	fast := newClient("fast", 4)
	hub.Register(slow)
	hub.Register(fast)

	hub.Broadcast(Notification{Type: "booking.updated"})
	hub.Broadcast(Notification{Type: "booking.deleted"})

	// Slow client keeps only the first message; the hub never blocked.
	assert.Len(t, slow.Send, 1)
	assert.Len(t, fast.Send, 2)
}

func TestHubBroadcast_NoClients(t *testing.T) {
	hub := NewHub(zap.NewNop())
	// Must not panic.
	hub.Broadcast(Notification{Type: "booking.created"})
}
