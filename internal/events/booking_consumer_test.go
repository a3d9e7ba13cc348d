package events

import (
	"context"
	"encoding/json"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kunci-cimahi/service-booking/internal/kafka"
	"github.com/kunci-cimahi/service-booking/internal/realtime"
)

func newConsumerWithHub(t *testing.T) (*BookingEventConsumer, *realtime.Client) {
	t.Helper()
	hub := realtime.NewHub(zap.NewNop())
	client := &realtime.Client{ID: "dashboard", Send: make(chan []byte, 4)}
	hub.Register(client)
	return &BookingEventConsumer{hub: hub, logger: zap.NewNop()}, client
}

func messageFor(t *testing.T, eventType string, evt BookingChangedEvent) kafkago.Message {
	t.Helper()
	cloudEvent, err := kafka.NewCloudEvent("service-booking", eventType, evt)
	require.NoError(t, err)
	payload, err := json.Marshal(cloudEvent)
	require.NoError(t, err)
	return kafkago.Message{Value: payload}
}

func TestHandleMessage_CreatedRaisesAlert(t *testing.T) {
	consumer, client := newConsumerWithHub(t)

	msg := messageFor(t, BookingCreated, BookingChangedEvent{
		TicketID: "KC-ABC123-XY99",
		Status:   "pending",
	})
	require.NoError(t, consumer.handleMessage(context.Background(), msg))

	var n realtime.Notification
	require.NoError(t, json.Unmarshal(<-client.Send, &n))
	assert.Equal(t, BookingCreated, n.Type)
	assert.True(t, n.Alert)
	assert.Equal(t, "KC-ABC123-XY99", n.TicketID)
}

func TestHandleMessage_UpdateAndDeleteAreSilent(t *testing.T) {
	consumer, client := newConsumerWithHub(t)

	for _, eventType := range []string{BookingUpdated, BookingDeleted} {
		msg := messageFor(t, eventType, BookingChangedEvent{TicketID: "KC-ABC123-XY99"})
		require.NoError(t, consumer.handleMessage(context.Background(), msg))

		var n realtime.Notification
		require.NoError(t, json.Unmarshal(<-client.Send, &n))
		assert.Equal(t, eventType, n.Type)
		assert.False(t, n.Alert)
	}
}

func TestHandleMessage_IgnoresUnknownType(t *testing.T) {
	consumer, client := newConsumerWithHub(t)

	msg := messageFor(t, "booking.archived", BookingChangedEvent{TicketID: "KC-ABC123-XY99"})
	require.NoError(t, consumer.handleMessage(context.Background(), msg))
	assert.Empty(t, client.Send)
}

func TestHandleMessage_MalformedPayloadNotRetried(t *testing.T) {
	consumer, client := newConsumerWithHub(t)

	err := consumer.handleMessage(context.Background(), kafkago.Message{Value: []byte("{not json")})
	assert.NoError(t, err, "malformed messages must be committed, not retried")
	assert.Empty(t, client.Send)
}
