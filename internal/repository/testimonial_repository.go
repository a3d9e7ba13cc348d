package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kunci-cimahi/service-booking/internal/domain"
	testimonialDomain "github.com/kunci-cimahi/service-booking/internal/domain/testimonial"
)

// TestimonialModel is the GORM model for the testimonials table.
type TestimonialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName string    `gorm:"not null;size:200"`
	Location     string    `gorm:"size:200"`
	Rating       int       `gorm:"not null"`
	Comment      string    `gorm:"not null;size:1000"`
	ServiceType  string    `gorm:"size:100"`
	IsActive     bool      `gorm:"not null;default:true;index"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (TestimonialModel) TableName() string {
	return "testimonials"
}

// GormTestimonialRepository is the GORM-based implementation of the
// testimonial repository contract.
type GormTestimonialRepository struct {
	db *gorm.DB
}

// NewGormTestimonialRepository creates a new GormTestimonialRepository.
func NewGormTestimonialRepository(db *gorm.DB) *GormTestimonialRepository {
	return &GormTestimonialRepository{db: db}
}

// List retrieves testimonials, newest first.
func (r *GormTestimonialRepository) List(ctx context.Context, activeOnly bool) ([]*testimonialDomain.Testimonial, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var models []TestimonialModel
	if err := q.Find(&models).Error; err != nil {
		return nil, domain.NewStoreError("list testimonials", err)
	}

	testimonials := make([]*testimonialDomain.Testimonial, len(models))
	for i, m := range models {
		testimonials[i] = toDomainTestimonial(&m)
	}
	return testimonials, nil
}

// FindByID retrieves a testimonial by its identifier.
func (r *GormTestimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*testimonialDomain.Testimonial, error) {
	var model TestimonialModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Testimonial", id.String())
		}
		return nil, domain.NewStoreError("find testimonial by ID", err)
	}
	return toDomainTestimonial(&model), nil
}

// Save persists a new testimonial.
func (r *GormTestimonialRepository) Save(ctx context.Context, t *testimonialDomain.Testimonial) error {
	model := &TestimonialModel{
		ID:           t.ID,
		CustomerName: t.CustomerName,
		Location:     t.Location,
		Rating:       t.Rating,
		Comment:      t.Comment,
		ServiceType:  t.ServiceType,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return domain.NewStoreError("save testimonial", err)
	}
	return nil
}

// SetActive toggles a testimonial's visibility on the public site.
func (r *GormTestimonialRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&TestimonialModel{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return domain.NewStoreError("set testimonial active", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Testimonial", id.String())
	}
	return nil
}

// Delete permanently removes a testimonial.
func (r *GormTestimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TestimonialModel{})
	if result.Error != nil {
		return domain.NewStoreError("delete testimonial", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Testimonial", id.String())
	}
	return nil
}

func toDomainTestimonial(m *TestimonialModel) *testimonialDomain.Testimonial {
	return &testimonialDomain.Testimonial{
		ID:           m.ID,
		CustomerName: m.CustomerName,
		Location:     m.Location,
		Rating:       m.Rating,
		Comment:      m.Comment,
		ServiceType:  m.ServiceType,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}
