package application

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	serviceDomain "github.com/kunci-cimahi/service-booking/internal/domain/service"
)

// CatalogService manages the price list of offered locksmith tasks.
type CatalogService struct {
	repo   serviceDomain.Repository
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo serviceDomain.Repository, logger *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// List retrieves all catalog entries with the requested ordering.
func (s *CatalogService) List(ctx context.Context, ordering serviceDomain.Ordering) ([]*serviceDomain.Service, error) {
	return s.repo.List(ctx, ordering)
}

// Get retrieves a single catalog entry.
func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*serviceDomain.Service, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates and persists a new catalog entry.
func (s *CatalogService) Create(ctx context.Context, fields serviceDomain.Fields) (*serviceDomain.Service, error) {
	svc, err := serviceDomain.New(fields)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, svc); err != nil {
		return nil, err
	}

	s.logger.Info("catalog entry created",
		zap.String("title", svc.Title),
		zap.String("category", string(svc.Category)),
	)
	return svc, nil
}

// Update validates and overwrites an existing catalog entry's fields.
func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, fields serviceDomain.Fields) (*serviceDomain.Service, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := svc.Apply(fields); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Delete permanently removes a catalog entry.
func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("catalog entry deleted", zap.String("id", id.String()))
	return nil
}
