package persistence

import (
	"context"

	"github.com/alshbh/storefront/internal/domain/catalog"
	"github.com/alshbh/storefront/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormColorRepository stores colors, listed by name
type GormColorRepository struct {
	db *gorm.DB
}

func NewGormColorRepository(db *gorm.DB) *GormColorRepository {
	return &GormColorRepository{db: db}
}

func (r *GormColorRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Color, error) {
	return findOne[catalog.Color, models.ColorModel](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *GormColorRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Color, error) {
	if len(ids) == 0 {
		return []catalog.Color{}, nil
	}
	return r.list(r.db.WithContext(ctx).Where("id IN ?", ids))
}

func (r *GormColorRepository) FindAll(ctx context.Context) ([]catalog.Color, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *GormColorRepository) list(q *gorm.DB) ([]catalog.Color, error) {
	return findAll[catalog.Color, models.ColorModel](q.Order("name ASC"))
}

func (r *GormColorRepository) Save(ctx context.Context, color *catalog.Color) error {
	var row models.ColorModel
	row.FromDomain(color)
	return translateError(r.db.WithContext(ctx).Save(&row).Error)
}

// Delete also removes the color from every product
func (r *GormColorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("color_id = ?", id).Delete(&models.ProductColorModel{}).Error; err != nil {
			return err
		}
		return deleteWhere(tx, &models.ColorModel{}, "id = ?", id)
	})
}

// GormSizeRepository stores sizes, listed by sort order then name
type GormSizeRepository struct {
	db *gorm.DB
}

func NewGormSizeRepository(db *gorm.DB) *GormSizeRepository {
	return &GormSizeRepository{db: db}
}

func (r *GormSizeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Size, error) {
	return findOne[catalog.Size, models.SizeModel](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *GormSizeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Size, error) {
	if len(ids) == 0 {
		return []catalog.Size{}, nil
	}
	return r.list(r.db.WithContext(ctx).Where("id IN ?", ids))
}

func (r *GormSizeRepository) FindAll(ctx context.Context) ([]catalog.Size, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *GormSizeRepository) list(q *gorm.DB) ([]catalog.Size, error) {
	return findAll[catalog.Size, models.SizeModel](q.Order("sort_order ASC").Order("name ASC"))
}

func (r *GormSizeRepository) Save(ctx context.Context, size *catalog.Size) error {
	var row models.SizeModel
	row.FromDomain(size)
	return translateError(r.db.WithContext(ctx).Save(&row).Error)
}

// Delete also removes the size from every product
func (r *GormSizeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("size_id = ?", id).Delete(&models.ProductSizeModel{}).Error; err != nil {
			return err
		}
		return deleteWhere(tx, &models.SizeModel{}, "id = ?", id)
	})
}

var (
	_ catalog.ColorRepository = (*GormColorRepository)(nil)
	_ catalog.SizeRepository  = (*GormSizeRepository)(nil)
)
