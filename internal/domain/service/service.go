// Package service holds the catalog of offered locksmith tasks.
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kunci-cimahi/service-booking/internal/domain"
)

// Category groups catalog entries for display.
type Category string

const (
	CategoryMotor   Category = "motor"
	CategoryMobil   Category = "mobil"
	CategoryRumah   Category = "rumah"
	CategoryBrankas Category = "brankas"
	CategoryLainnya Category = "lainnya"
)

// IsValid returns true if the category is one of the recognized values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMotor, CategoryMobil, CategoryRumah, CategoryBrankas, CategoryLainnya:
		return true
	}
	return false
}

// Service is a catalog entry describing an offered task, its starting price
// in rupiah, and its estimated duration. Plain CRUD, no lifecycle.
type Service struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Price         int64     `json:"price"`
	EstimatedTime string    `json:"estimated_time"`
	Category      Category  `json:"category"`
	Icon          string    `json:"icon,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Fields holds the writable attributes of a catalog entry. Description and
// Icon may be empty; everything else is required.
type Fields struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	EstimatedTime string   `json:"estimated_time"`
	Category      Category `json:"category"`
	Icon          string   `json:"icon"`
}

// Validate checks field presence and value ranges.
func (f Fields) Validate() error {
	if f.Title == "" {
		return domain.NewValidationError("title is required")
	}
	if f.Price < 0 {
		return domain.NewValidationError("price must not be negative")
	}
	if f.EstimatedTime == "" {
		return domain.NewValidationError("estimated time is required")
	}
	if !f.Category.IsValid() {
		return domain.NewValidationError(fmt.Sprintf("invalid category: %s", f.Category))
	}
	return nil
}

// New creates a catalog entry from validated fields.
func New(f Fields) (*Service, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Service{
		ID:            uuid.New(),
		Title:         f.Title,
		Description:   f.Description,
		Price:         f.Price,
		EstimatedTime: f.EstimatedTime,
		Category:      f.Category,
		Icon:          f.Icon,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Apply overwrites the entry's writable attributes with validated fields.
func (s *Service) Apply(f Fields) error {
	if err := f.Validate(); err != nil {
		return err
	}
	s.Title = f.Title
	s.Description = f.Description
	s.Price = f.Price
	s.EstimatedTime = f.EstimatedTime
	s.Category = f.Category
	s.Icon = f.Icon
	s.UpdatedAt = time.Now().UTC()
	return nil
}
