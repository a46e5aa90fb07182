package persistence

import (
	"context"

	"github.com/alshbh/storefront/internal/domain/marketing"
	"github.com/alshbh/storefront/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAdvertisementRepository implements AdvertisementRepository using GORM
type GormAdvertisementRepository struct {
	db *gorm.DB
}

// NewGormAdvertisementRepository creates a new GormAdvertisementRepository
func NewGormAdvertisementRepository(db *gorm.DB) *GormAdvertisementRepository {
	return &GormAdvertisementRepository{db: db}
}

func (r *GormAdvertisementRepository) FindByID(ctx context.Context, id uuid.UUID) (*marketing.Advertisement, error) {
	return findOne[marketing.Advertisement, models.AdvertisementModel](r.db.WithContext(ctx).Where("id = ?", id))
}

// FindAll returns advertisements ordered by sort order
func (r *GormAdvertisementRepository) FindAll(ctx context.Context, activeOnly bool) ([]marketing.Advertisement, error) {
	q := r.db.WithContext(ctx).Order("sort_order ASC").Order("created_at DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	return findAll[marketing.Advertisement, models.AdvertisementModel](q)
}

// Save creates or updates an advertisement
func (r *GormAdvertisementRepository) Save(ctx context.Context, ad *marketing.Advertisement) error {
	var model models.AdvertisementModel
	model.FromDomain(ad)
	return translateError(r.db.WithContext(ctx).Save(&model).Error)
}

// Delete deletes an advertisement
func (r *GormAdvertisementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteWhere(r.db.WithContext(ctx), &models.AdvertisementModel{}, "id = ?", id)
}

var _ marketing.AdvertisementRepository = (*GormAdvertisementRepository)(nil)
