// Package events defines the booking change events published to Kafka and
// the consumer that relays them to the realtime hub.
package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicBookingEvents carries every booking change.
const TopicBookingEvents = "booking.events"

// Event types published on TopicBookingEvents.
const (
	BookingCreated = "booking.created"
	BookingUpdated = "booking.updated"
	BookingDeleted = "booking.deleted"
)

// BookingChangedEvent is the payload for every booking change event. Deleted
// bookings carry only the identifiers.
type BookingChangedEvent struct {
	BookingID    uuid.UUID `json:"booking_id"`
	TicketID     string    `json:"ticket_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	Location     string    `json:"location,omitempty"`
	VehicleType  string    `json:"vehicle_type,omitempty"`
	ProblemType  string    `json:"problem_type,omitempty"`
	Status       string    `json:"status,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
