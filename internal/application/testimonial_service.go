package application

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	testimonialDomain "github.com/kunci-cimahi/service-booking/internal/domain/testimonial"
)

// CreateTestimonialRequest holds a new customer review.
type CreateTestimonialRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Location     string `json:"location"`
	Rating       int    `json:"rating" binding:"required"`
	Comment      string `json:"comment" binding:"required"`
	ServiceType  string `json:"service_type"`
}

// TestimonialService manages customer reviews.
type TestimonialService struct {
	repo   testimonialDomain.Repository
	logger *zap.Logger
}

// NewTestimonialService creates a new TestimonialService.
func NewTestimonialService(repo testimonialDomain.Repository, logger *zap.Logger) *TestimonialService {
	return &TestimonialService{repo: repo, logger: logger}
}

// ListActive retrieves the testimonials shown on the public site.
func (s *TestimonialService) ListActive(ctx context.Context) ([]*testimonialDomain.Testimonial, error) {
	return s.repo.List(ctx, true)
}

// ListAll retrieves every testimonial, including hidden ones (admin).
func (s *TestimonialService) ListAll(ctx context.Context) ([]*testimonialDomain.Testimonial, error) {
	return s.repo.List(ctx, false)
}

// Create validates and persists a new testimonial.
func (s *TestimonialService) Create(ctx context.Context, req CreateTestimonialRequest) (*testimonialDomain.Testimonial, error) {
	t, err := testimonialDomain.New(req.CustomerName, req.Location, req.Rating, req.Comment, req.ServiceType)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}

	s.logger.Info("testimonial created", zap.String("customer", t.CustomerName))
	return t, nil
}

// SetActive toggles a testimonial's visibility.
func (s *TestimonialService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

// Delete permanently removes a testimonial.
func (s *TestimonialService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
