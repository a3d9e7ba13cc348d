package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kunci-cimahi/service-booking/internal/domain"
	serviceDomain "github.com/kunci-cimahi/service-booking/internal/domain/service"
)

// ServiceModel is the GORM model for the services table.
type ServiceModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string    `gorm:"not null;size:200"`
	Description   string    `gorm:"size:1000"`
	Price         int64     `gorm:"not null"`
	EstimatedTime string    `gorm:"not null;size:50"`
	Category      string    `gorm:"not null;size:20;index"`
	Icon          string    `gorm:"size:50"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ServiceModel) TableName() string {
	return "services"
}

// GormServiceRepository is the GORM-based implementation of the catalog
// repository contract.
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GormServiceRepository.
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// FindByID retrieves a catalog entry by its identifier.
func (r *GormServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*serviceDomain.Service, error) {
	var model ServiceModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Service", id.String())
		}
		return nil, domain.NewStoreError("find service by ID", err)
	}
	return toDomainService(&model), nil
}

// List retrieves all catalog entries with the requested ordering.
func (r *GormServiceRepository) List(ctx context.Context, ordering serviceDomain.Ordering) ([]*serviceDomain.Service, error) {
	q := r.db.WithContext(ctx)
	switch ordering {
	case serviceDomain.OrderByTitle:
		q = q.Order("title ASC")
	default:
		q = q.Order("category ASC").Order("price ASC")
	}

	var models []ServiceModel
	if err := q.Find(&models).Error; err != nil {
		return nil, domain.NewStoreError("list services", err)
	}

	services := make([]*serviceDomain.Service, len(models))
	for i, m := range models {
		services[i] = toDomainService(&m)
	}
	return services, nil
}

// Save persists a new catalog entry.
func (r *GormServiceRepository) Save(ctx context.Context, s *serviceDomain.Service) error {
	if err := r.db.WithContext(ctx).Create(toServiceModel(s)).Error; err != nil {
		return domain.NewStoreError("save service", err)
	}
	return nil
}

// Update persists changes to an existing catalog entry.
func (r *GormServiceRepository) Update(ctx context.Context, s *serviceDomain.Service) error {
	model := toServiceModel(s)
	result := r.db.WithContext(ctx).
		Model(&ServiceModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":          model.Title,
			"description":    model.Description,
			"price":          model.Price,
			"estimated_time": model.EstimatedTime,
			"category":       model.Category,
			"icon":           model.Icon,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		return domain.NewStoreError("update service", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Service", model.ID.String())
	}
	return nil
}

// Delete permanently removes a catalog entry.
func (r *GormServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ServiceModel{})
	if result.Error != nil {
		return domain.NewStoreError("delete service", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Service", id.String())
	}
	return nil
}

// --- Conversion helpers ---

func toServiceModel(s *serviceDomain.Service) *ServiceModel {
	return &ServiceModel{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		Price:         s.Price,
		EstimatedTime: s.EstimatedTime,
		Category:      string(s.Category),
		Icon:          s.Icon,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toDomainService(m *ServiceModel) *serviceDomain.Service {
	return &serviceDomain.Service{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		Price:         m.Price,
		EstimatedTime: m.EstimatedTime,
		Category:      serviceDomain.Category(m.Category),
		Icon:          m.Icon,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
