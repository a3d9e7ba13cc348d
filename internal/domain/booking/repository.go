package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ListFilter narrows a booking listing to a created_at time range. Zero
// values mean unbounded; Limit <= 0 means the repository default.
type ListFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// Repository defines the persistence contract for booking aggregates.
type Repository interface {
	// FindByID retrieves a booking by its store-assigned identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindByTicketID retrieves a booking by its customer-facing ticket ID.
	FindByTicketID(ctx context.Context, ticketID string) (*Booking, error)

	// List retrieves bookings matching the filter, ordered by created_at
	// descending.
	List(ctx context.Context, filter ListFilter) ([]*Booking, error)

	// ListAll retrieves every booking, for stats aggregation.
	ListAll(ctx context.Context) ([]*Booking, error)

	// Save persists a new booking.
	Save(ctx context.Context, b *Booking) error

	// Update persists changes to an existing booking. Last write wins.
	Update(ctx context.Context, b *Booking) error

	// Delete permanently removes a booking. Irreversible.
	Delete(ctx context.Context, id uuid.UUID) error
}
