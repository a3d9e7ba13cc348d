package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kunci-cimahi/service-booking/internal/domain"
	bookingDomain "github.com/kunci-cimahi/service-booking/internal/domain/booking"
)

// defaultListLimit caps an unbounded booking listing; the admin dashboard
// shows the 50 most recent.
const defaultListLimit = 50

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TicketID     string    `gorm:"uniqueIndex;not null;size:30"`
	CustomerName string    `gorm:"not null;size:200"`
	PhoneNumber  string    `gorm:"not null;size:30"`
	Location     string    `gorm:"not null;size:500"`
	VehicleType  string    `gorm:"not null;size:20"`
	ProblemType  string    `gorm:"not null;size:500"`
	Status       string    `gorm:"not null;size:20;index"`
	Price        *int64    `gorm:""`
	CreatedAt    time.Time `gorm:"not null;index"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of the booking
// repository contract.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its store-assigned identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", id.String())
		}
		return nil, domain.NewStoreError("find booking by ID", err)
	}
	return toDomainBooking(&model), nil
}

// FindByTicketID retrieves a booking by its customer-facing ticket ID.
func (r *GormBookingRepository) FindByTicketID(ctx context.Context, ticketID string) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", ticketID)
		}
		return nil, domain.NewStoreError("find booking by ticket ID", err)
	}
	return toDomainBooking(&model), nil
}

// List retrieves bookings matching the filter, newest first.
func (r *GormBookingRepository) List(ctx context.Context, filter bookingDomain.ListFilter) ([]*bookingDomain.Booking, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	q := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", *filter.To)
	}

	var models []BookingModel
	if err := q.Find(&models).Error; err != nil {
		return nil, domain.NewStoreError("list bookings", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bookings[i] = toDomainBooking(&m)
	}
	return bookings, nil
}

// ListAll retrieves every booking, for stats aggregation.
func (r *GormBookingRepository) ListAll(ctx context.Context) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, domain.NewStoreError("list all bookings", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bookings[i] = toDomainBooking(&m)
	}
	return bookings, nil
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("ticket ID already exists")
		}
		return domain.NewStoreError("save booking", err)
	}
	return nil
}

// Update persists changes to an existing booking. Last write wins; the
// admin team is small enough that concurrent edits to the same record are
// acceptable.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"price":      model.Price,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return domain.NewStoreError("update booking", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Booking", model.ID.String())
	}
	return nil
}

// Delete permanently removes a booking.
func (r *GormBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&BookingModel{})
	if result.Error != nil {
		return domain.NewStoreError("delete booking", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Booking", id.String())
	}
	return nil
}

// --- Conversion helpers ---

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
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

func toDomainBooking(m *BookingModel) *bookingDomain.Booking {
	return bookingDomain.Reconstruct(
		m.ID,
		m.TicketID,
		m.CustomerName,
		m.PhoneNumber,
		m.Location,
		bookingDomain.VehicleType(m.VehicleType),
		m.ProblemType,
		bookingDomain.Status(m.Status),
		m.Price,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
