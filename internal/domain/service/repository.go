package service

import (
	"context"

	"github.com/google/uuid"
)

// Ordering selects how a catalog listing is sorted.
type Ordering string

const (
	// OrderByCategoryPrice sorts by category, then price ascending.
	OrderByCategoryPrice Ordering = "category_price"
	// OrderByTitle sorts alphabetically by title.
	OrderByTitle Ordering = "title"
)

// Repository defines the persistence contract for catalog entries.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Service, error)
	List(ctx context.Context, ordering Ordering) ([]*Service, error)
	Save(ctx context.Context, s *Service) error
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}
