package events

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/kunci-cimahi/service-booking/internal/kafka"
	"github.com/kunci-cimahi/service-booking/internal/realtime"
)

// BookingEventConsumer listens to booking change events and relays them to
// connected admin dashboards through the realtime hub.
type BookingEventConsumer struct {
	consumer *kafka.Consumer
	hub      *realtime.Hub
	logger   *zap.Logger
}

// NewBookingEventConsumer creates a consumer for the booking events topic.
func NewBookingEventConsumer(
	brokers []string,
	groupID string,
	hub *realtime.Hub,
	logger *zap.Logger,
) *BookingEventConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, TopicBookingEvents, logger)
	return &BookingEventConsumer{
		consumer: consumer,
		hub:      hub,
		logger:   logger,
	}
}

// Start begins consuming booking events. Blocks until the context is
// cancelled.
func (c *BookingEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *BookingEventConsumer) Close() error {
	return c.consumer.Close()
}

func (c *BookingEventConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	var cloudEvent kafka.CloudEvent
	if err := json.Unmarshal(msg.Value, &cloudEvent); err != nil {
		c.logger.Error("failed to parse cloud event from booking topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case BookingCreated, BookingUpdated, BookingDeleted:
		return c.relay(cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled booking event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

// relay forwards the change to the hub. Only a fresh booking raises an
// alert; updates and deletes just trigger a silent dashboard re-fetch.
func (c *BookingEventConsumer) relay(cloudEvent kafka.CloudEvent) error {
	var evt BookingChangedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse booking changed event data",
			zap.Error(err),
		)
		return nil // Don't retry malformed data
	}

	c.hub.Broadcast(realtime.Notification{
		Type:     cloudEvent.Type,
		Alert:    cloudEvent.Type == BookingCreated,
		TicketID: evt.TicketID,
		Data:     cloudEvent.Data,
	})

	c.logger.Info("booking change relayed to dashboards",
		zap.String("type", cloudEvent.Type),
		zap.String("ticket_id", evt.TicketID),
		zap.Int("clients", c.hub.ClientCount()),
	)
	return nil
}
