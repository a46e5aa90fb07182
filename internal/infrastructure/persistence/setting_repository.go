package persistence

import (
	"context"
	"time"

	"github.com/alshbh/storefront/internal/domain/identity"
	"github.com/alshbh/storefront/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingRepository implements SettingRepository using GORM
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// FindByKey returns shared.ErrNotFound when the key is absent
func (r *GormSettingRepository) FindByKey(ctx context.Context, key string) (*identity.AdminSetting, error) {
	return findOne[identity.AdminSetting, models.AdminSettingModel](r.db.WithContext(ctx).Where("key = ?", key))
}

// FindAll returns every setting ordered by key
func (r *GormSettingRepository) FindAll(ctx context.Context) ([]identity.AdminSetting, error) {
	return findAll[identity.AdminSetting, models.AdminSettingModel](r.db.WithContext(ctx).Order("key ASC"))
}

// Upsert inserts the setting or updates the value of an existing key
func (r *GormSettingRepository) Upsert(ctx context.Context, setting *identity.AdminSetting) error {
	var model models.AdminSettingModel
	model.FromDomain(setting)
	if model.UpdatedAt.IsZero() {
		model.UpdatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model).Error
}

// DeleteByKey removes a setting
func (r *GormSettingRepository) DeleteByKey(ctx context.Context, key string) error {
	return deleteWhere(r.db.WithContext(ctx), &models.AdminSettingModel{}, "key = ?", key)
}

var _ identity.SettingRepository = (*GormSettingRepository)(nil)
