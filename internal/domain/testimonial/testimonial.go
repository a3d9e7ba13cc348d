// Package testimonial holds customer reviews shown on the public site.
package testimonial

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kunci-cimahi/service-booking/internal/domain"
)

// Testimonial is a customer review. Only active testimonials appear on the
// public site; the admin toggles visibility rather than editing content.
type Testimonial struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	Location     string    `json:"location"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	ServiceType  string    `json:"service_type"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// New creates a testimonial, active by default.
func New(customerName, location string, rating int, comment, serviceType string) (*Testimonial, error) {
	if customerName == "" {
		return nil, domain.NewValidationError("customer name is required")
	}
	if rating < 1 || rating > 5 {
		return nil, domain.NewValidationError("rating must be between 1 and 5")
	}
	if comment == "" {
		return nil, domain.NewValidationError("comment is required")
	}
	return &Testimonial{
		ID:           uuid.New(),
		CustomerName: customerName,
		Location:     location,
		Rating:       rating,
		Comment:      comment,
		ServiceType:  serviceType,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Repository defines the persistence contract for testimonials.
type Repository interface {
	// List retrieves testimonials, newest first. When activeOnly is set,
	// hidden entries are excluded.
	List(ctx context.Context, activeOnly bool) ([]*Testimonial, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Testimonial, error)
	Save(ctx context.Context, t *Testimonial) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
