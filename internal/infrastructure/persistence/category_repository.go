package persistence

import (
	"context"
	"strings"

	"github.com/alshbh/storefront/internal/domain/catalog"
	"github.com/alshbh/storefront/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCategoryRepository stores categories in the categories table
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	return findOne[catalog.Category, models.CategoryModel](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	return findAll[catalog.Category, models.CategoryModel](r.db.WithContext(ctx).Order("name ASC"))
}

func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	return translateError(r.db.WithContext(ctx).Save(models.CategoryModelFromDomain(category)).Error)
}

// Delete removes the row only; products are detached by the service first
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteWhere(r.db.WithContext(ctx), &models.CategoryModel{}, "id = ?", id)
}

// NameTaken compares trimmed names case-insensitively
func (r *GormCategoryRepository) NameTaken(ctx context.Context, name string, except *uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.CategoryModel{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))
	if except != nil {
		q = q.Where("id <> ?", *except)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)
