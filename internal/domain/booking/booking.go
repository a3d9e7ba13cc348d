package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kunci-cimahi/service-booking/internal/domain"
)

// VehicleType categorizes what kind of lock the customer needs help with.
type VehicleType string

const (
	VehicleMotor   VehicleType = "motor"
	VehicleMobil   VehicleType = "mobil"
	VehicleRumah   VehicleType = "rumah"
	VehicleLainnya VehicleType = "lainnya"
)

// IsValid returns true if the vehicle type is one of the recognized values.
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleMotor, VehicleMobil, VehicleRumah, VehicleLainnya:
		return true
	}
	return false
}

// Booking is the aggregate root for a customer service request.
type Booking struct {
	id           uuid.UUID
	ticketID     string
	customerName string
	phoneNumber  string
	location     string
	vehicleType  VehicleType
	problemType  string
	status       Status
	price        *int64
	createdAt    time.Time
	updatedAt    time.Time
}

// NewBooking creates a booking from a customer submission with status=pending.
// Required fields are validated before any store call; the ticket ID is
// generated here and immutable afterwards.
func NewBooking(customerName, phoneNumber, location string, vehicleType VehicleType, problemType string) (*Booking, error) {
	if customerName == "" {
		return nil, domain.NewValidationError("customer name is required")
	}
	if phoneNumber == "" {
		return nil, domain.NewValidationError("phone number is required")
	}
	if location == "" {
		return nil, domain.NewValidationError("location is required")
	}
	if problemType == "" {
		return nil, domain.NewValidationError("problem type is required")
	}
	if !vehicleType.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid vehicle type: %s", vehicleType))
	}

	ticketID, err := NewTicketID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Booking{
		id:           uuid.New(),
		ticketID:     ticketID,
		customerName: customerName,
		phoneNumber:  phoneNumber,
		location:     location,
		vehicleType:  vehicleType,
		problemType:  problemType,
		status:       StatusPending,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	ticketID string,
	customerName string,
	phoneNumber string,
	location string,
	vehicleType VehicleType,
	problemType string,
	status Status,
	price *int64,
	createdAt time.Time,
	updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		ticketID:     ticketID,
		customerName: customerName,
		phoneNumber:  phoneNumber,
		location:     location,
		vehicleType:  vehicleType,
		problemType:  problemType,
		status:       status,
		price:        price,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the store-assigned unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// TicketID returns the customer-facing ticket identifier.
func (b *Booking) TicketID() string { return b.ticketID }

// CustomerName returns the customer's name.
func (b *Booking) CustomerName() string { return b.customerName }

// PhoneNumber returns the customer's WhatsApp number as entered.
func (b *Booking) PhoneNumber() string { return b.phoneNumber }

// Location returns the free-text service location.
func (b *Booking) Location() string { return b.location }

// VehicleType returns the vehicle/lock category.
func (b *Booking) VehicleType() VehicleType { return b.vehicleType }

// ProblemType returns the customer's problem description.
func (b *Booking) ProblemType() string { return b.problemType }

// Status returns the current lifecycle status.
func (b *Booking) Status() Status { return b.status }

// Price returns the price set by the admin, or nil if not yet set.
func (b *Booking) Price() *int64 { return b.price }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// SetStatus moves the booking to the given status. Any status is reachable
// from any other; only the value itself is validated.
func (b *Booking) SetStatus(status Status) error {
	if !status.IsValid() {
		return domain.NewValidationError(fmt.Sprintf("invalid booking status: %s", status))
	}
	b.status = status
	b.updatedAt = time.Now().UTC()
	return nil
}

// SetPrice records the amount charged for this booking in rupiah.
func (b *Booking) SetPrice(price int64) error {
	if price < 0 {
		return domain.NewValidationError("price must not be negative")
	}
	b.price = &price
	b.updatedAt = time.Now().UTC()
	return nil
}
