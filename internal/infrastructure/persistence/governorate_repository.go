package persistence

import (
	"context"

	"github.com/alshbh/storefront/internal/domain/shipping"
	"github.com/alshbh/storefront/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormGovernorateRepository implements GovernorateRepository using GORM
type GormGovernorateRepository struct {
	db *gorm.DB
}

// NewGormGovernorateRepository creates a new GormGovernorateRepository
func NewGormGovernorateRepository(db *gorm.DB) *GormGovernorateRepository {
	return &GormGovernorateRepository{db: db}
}

func (r *GormGovernorateRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.Governorate, error) {
	return findOne[shipping.Governorate, models.GovernorateModel](r.db.WithContext(ctx).Where("id = ?", id))
}

// FindAll returns governorates ordered by Arabic name. The byte order of the
// database is only a starting point; callers apply locale collation.
func (r *GormGovernorateRepository) FindAll(ctx context.Context, activeOnly bool) ([]shipping.Governorate, error) {
	q := r.db.WithContext(ctx).Order("name_ar ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	return findAll[shipping.Governorate, models.GovernorateModel](q)
}

// Save creates or updates a governorate
func (r *GormGovernorateRepository) Save(ctx context.Context, governorate *shipping.Governorate) error {
	var model models.GovernorateModel
	model.FromDomain(governorate)
	return translateError(r.db.WithContext(ctx).Save(&model).Error)
}

// Delete deletes a governorate. Orders keep their snapshot and lose the reference.
func (r *GormGovernorateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.OrderModel{}).
			Where("governorate_id = ?", id).
			Update("governorate_id", nil).Error; err != nil {
			return err
		}
		return deleteWhere(tx, &models.GovernorateModel{}, "id = ?", id)
	})
}

var _ shipping.GovernorateRepository = (*GormGovernorateRepository)(nil)
