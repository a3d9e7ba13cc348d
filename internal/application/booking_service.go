package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kunci-cimahi/service-booking/internal/domain"
	bookingDomain "github.com/kunci-cimahi/service-booking/internal/domain/booking"
	"github.com/kunci-cimahi/service-booking/internal/events"
	"github.com/kunci-cimahi/service-booking/internal/kafka"
	"github.com/kunci-cimahi/service-booking/internal/notification"
)

// CreateBookingRequest holds the data a customer submits through the
// booking form.
type CreateBookingRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	Location     string `json:"location" binding:"required"`
	VehicleType  string `json:"vehicle_type" binding:"required"`
	ProblemType  string `json:"problem_type" binding:"required"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID           uuid.UUID `json:"id"`
	TicketID     string    `json:"ticket_id"`
	CustomerName string    `json:"customer_name"`
	PhoneNumber  string    `json:"phone_number"`
	Location     string    `json:"location"`
	VehicleType  string    `json:"vehicle_type"`
	ProblemType  string    `json:"problem_type"`
	Status       string    `json:"status"`
	Price        *int64    `json:"price,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateBookingResult is the booking success surface: the created record
// plus the WhatsApp compose links the frontend opens.
type CreateBookingResult struct {
	Booking      BookingDTO `json:"booking"`
	OperatorLink string     `json:"operator_whatsapp_link"`
	CustomerLink string     `json:"customer_whatsapp_link"`
}

// ListBookingsFilter is the optional created_at range for a listing.
type ListBookingsFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// BookingService orchestrates the booking lifecycle use cases.
type BookingService struct {
	repo     bookingDomain.Repository
	notifier *notification.Notifier
	producer *kafka.Producer
	logger   *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	repo bookingDomain.Repository,
	notifier *notification.Notifier,
	producer *kafka.Producer,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		repo:     repo,
		notifier: notifier,
		producer: producer,
		logger:   logger,
	}
}

// CreateBooking validates the submission, persists a pending booking with a
// fresh ticket ID, then fires the best-effort notifications and change
// event. Persistence is the source of truth; notification failures never
// fail the booking.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	bk, err := bookingDomain.NewBooking(
		req.CustomerName,
		req.PhoneNumber,
		req.Location,
		bookingDomain.VehicleType(req.VehicleType),
		req.ProblemType,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, bk); err != nil {
		return nil, err
	}

	operatorLink, customerLink := s.notifier.NotifyNewBooking(notification.BookingSummary{
		TicketID:     bk.TicketID(),
		CustomerName: bk.CustomerName(),
		PhoneNumber:  bk.PhoneNumber(),
		Location:     bk.Location(),
		VehicleType:  string(bk.VehicleType()),
		ProblemType:  bk.ProblemType(),
	})

	s.publishBookingEvent(ctx, events.BookingCreated, bk)

	s.logger.Info("booking created",
		zap.String("ticket_id", bk.TicketID()),
		zap.String("vehicle_type", string(bk.VehicleType())),
	)

	return &CreateBookingResult{
		Booking:      toBookingDTO(bk),
		OperatorLink: operatorLink,
		CustomerLink: customerLink,
	}, nil
}

// UpdateStatus moves a booking to the given status. Values outside the
// enumerated set are rejected without touching the store.
func (s *BookingService) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus string) (*BookingDTO, error) {
	status, err := bookingDomain.ParseStatus(newStatus)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	bk, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := bk.SetStatus(status); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, bk); err != nil {
		return nil, err
	}

	s.publishBookingEvent(ctx, events.BookingUpdated, bk)

	result := toBookingDTO(bk)
	return &result, nil
}

// UpdatePrice records the amount charged for a booking. Negative amounts
// are rejected without touching the store.
func (s *BookingService) UpdatePrice(ctx context.Context, id uuid.UUID, price int64) (*BookingDTO, error) {
	if price < 0 {
		return nil, domain.NewValidationError("price must not be negative")
	}

	bk, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := bk.SetPrice(price); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, bk); err != nil {
		return nil, err
	}

	s.publishBookingEvent(ctx, events.BookingUpdated, bk)

	result := toBookingDTO(bk)
	return &result, nil
}

// DeleteBooking permanently removes a booking. Irreversible; the caller is
// expected to have confirmed with the admin first.
func (s *BookingService) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	bk, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishBookingEvent(ctx, events.BookingDeleted, bk)

	s.logger.Info("booking deleted",
		zap.String("ticket_id", bk.TicketID()),
	)
	return nil
}

// GetBooking retrieves a single booking by store ID.
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toBookingDTO(bk)
	return &result, nil
}

// GetBookingByTicket retrieves a booking by its ticket ID, for the success
// page and customer tracking.
func (s *BookingService) GetBookingByTicket(ctx context.Context, ticketID string) (*BookingDTO, error) {
	bk, err := s.repo.FindByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	result := toBookingDTO(bk)
	return &result, nil
}

// ListBookings retrieves bookings in the optional created_at range, newest
// first.
func (s *BookingService) ListBookings(ctx context.Context, filter ListBookingsFilter) ([]BookingDTO, error) {
	bookings, err := s.repo.List(ctx, bookingDomain.ListFilter{
		From:  filter.From,
		To:    filter.To,
		Limit: filter.Limit,
	})
	if err != nil {
		return nil, err
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos, nil
}

// GetDashboardStats recomputes the dashboard counters over the full booking
// collection at the given instant.
func (s *BookingService) GetDashboardStats(ctx context.Context, now time.Time) (*bookingDomain.DashboardStats, error) {
	bookings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := bookingDomain.ComputeStats(bookings, now)
	return &stats, nil
}

// --- Helpers ---

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:           bk.ID(),
		TicketID:     bk.TicketID(),
		CustomerName: bk.CustomerName(),
		PhoneNumber:  bk.PhoneNumber(),
		Location:     bk.Location(),
		VehicleType:  string(bk.VehicleType()),
		ProblemType:  bk.ProblemType(),
		Status:       string(bk.Status()),
		Price:        bk.Price(),
		CreatedAt:    bk.CreatedAt(),
		UpdatedAt:    bk.UpdatedAt(),
	}
}

// publishBookingEvent is fire-and-forget: a publish failure is logged and
// the operation still succeeds, the dashboard catches up on its next fetch.
func (s *BookingService) publishBookingEvent(ctx context.Context, eventType string, bk *bookingDomain.Booking) {
	if s.producer == nil {
		return
	}

	evt := events.BookingChangedEvent{
		BookingID:    bk.ID(),
		TicketID:     bk.TicketID(),
		CustomerName: bk.CustomerName(),
		Location:     bk.Location(),
		VehicleType:  string(bk.VehicleType()),
		ProblemType:  bk.ProblemType(),
		Status:       string(bk.Status()),
		OccurredAt:   time.Now().UTC(),
	}

	cloudEvent, err := kafka.NewCloudEvent("service-booking", eventType, evt)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.producer.PublishKeyed(ctx, events.TopicBookingEvents, bk.ID().String(), cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", events.TopicBookingEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
