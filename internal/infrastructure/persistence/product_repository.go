package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/alshbh/storefront/internal/domain/catalog"
	"github.com/alshbh/storefront/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	db := r.db.WithContext(ctx)
	var model models.ProductModel
	if err := db.First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	products, err := r.hydrate(db, []models.ProductModel{model})
	if err != nil {
		return nil, err
	}
	return &products[0], nil
}

// FindByIDs finds multiple products by their IDs
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}
	db := r.db.WithContext(ctx)
	var rows []models.ProductModel
	if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.hydrate(db, rows)
}

// Find returns a page of products and the total match count
func (r *GormProductRepository) Find(ctx context.Context, query catalog.ProductQuery) ([]catalog.Product, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := r.applyQuery(db.Model(&models.ProductModel{}), query).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []catalog.Product{}, 0, nil
	}

	listQuery := r.applyOrder(r.applyQuery(db.Model(&models.ProductModel{}), query), query)
	if query.PageSize > 0 {
		listQuery = listQuery.Offset(query.Offset()).Limit(query.PageSize)
	}

	var rows []models.ProductModel
	if err := listQuery.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	products, err := r.hydrate(db, rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Save creates or updates a product together with its images, colors and sizes.
// Associations are replaced wholesale.
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.ProductModelFromDomain(product)
		if err := tx.Save(model).Error; err != nil {
			return translateError(err)
		}

		if err := r.deleteAssociations(tx, product.ID); err != nil {
			return err
		}

		if len(product.Images) > 0 {
			images := make([]models.ProductImageModel, len(product.Images))
			for i := range product.Images {
				images[i].FromDomain(product.ID, product.Images[i])
				product.Images[i].ID = images[i].ID
				product.Images[i].ProductID = product.ID
			}
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}

		if len(product.ColorIDs) > 0 {
			colors := make([]models.ProductColorModel, len(product.ColorIDs))
			for i, colorID := range product.ColorIDs {
				colors[i] = models.ProductColorModel{ProductID: product.ID, ColorID: colorID}
			}
			if err := tx.Create(&colors).Error; err != nil {
				return err
			}
		}

		if len(product.Sizes) > 0 {
			sizes := make([]models.ProductSizeModel, len(product.Sizes))
			for i, s := range product.Sizes {
				sizes[i] = models.ProductSizeModel{
					ProductID:       product.ID,
					SizeID:          s.SizeID,
					PriceAdjustment: s.PriceAdjustment,
				}
			}
			if err := tx.Create(&sizes).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete deletes a product and its associations
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.deleteAssociations(tx, id); err != nil {
			return err
		}
		result := tx.Delete(&models.ProductModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return translateError(gorm.ErrRecordNotFound)
		}
		return nil
	})
}

// DetachCategory clears the category of every product in it
func (r *GormProductRepository) DetachCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("category_id = ?", categoryID).
		Updates(map[string]interface{}{
			"category_id": nil,
			"updated_at":  time.Now(),
		})
	return result.RowsAffected, result.Error
}

// CountByCategory counts products in a specific category
func (r *GormProductRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormProductRepository) deleteAssociations(tx *gorm.DB, productID uuid.UUID) error {
	for _, model := range []interface{}{
		&models.ProductImageModel{},
		&models.ProductColorModel{},
		&models.ProductSizeModel{},
	} {
		if err := tx.Where("product_id = ?", productID).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// hydrate converts rows to domain products and attaches images, colors and
// sizes with one query per association
func (r *GormProductRepository) hydrate(db *gorm.DB, rows []models.ProductModel) ([]catalog.Product, error) {
	products := make([]catalog.Product, len(rows))
	if len(rows) == 0 {
		return products, nil
	}

	ids := make([]uuid.UUID, len(rows))
	index := make(map[uuid.UUID]int, len(rows))
	for i := range rows {
		products[i] = *rows[i].ToDomain()
		ids[i] = rows[i].ID
		index[rows[i].ID] = i
	}

	var images []models.ProductImageModel
	if err := db.Where("product_id IN ?", ids).Order("sort_order ASC").Find(&images).Error; err != nil {
		return nil, err
	}
	for i := range images {
		p := &products[index[images[i].ProductID]]
		p.Images = append(p.Images, images[i].ToDomain())
	}

	var colors []models.ProductColorModel
	if err := db.Where("product_id IN ?", ids).Find(&colors).Error; err != nil {
		return nil, err
	}
	for _, c := range colors {
		p := &products[index[c.ProductID]]
		p.ColorIDs = append(p.ColorIDs, c.ColorID)
	}

	var sizes []models.ProductSizeModel
	if err := db.Where("product_id IN ?", ids).Find(&sizes).Error; err != nil {
		return nil, err
	}
	for i := range sizes {
		p := &products[index[sizes[i].ProductID]]
		p.Sizes = append(p.Sizes, sizes[i].ToDomain())
	}

	return products, nil
}

// applyQuery applies the listing filters without ordering or pagination
func (r *GormProductRepository) applyQuery(query *gorm.DB, q catalog.ProductQuery) *gorm.DB {
	if q.Active != nil {
		query = query.Where("is_active = ?", *q.Active)
	}
	if q.CategoryID != nil {
		query = query.Where("category_id = ?", *q.CategoryID)
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := containsPattern(search)
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(name_ar) LIKE ? ESCAPE '\'`, pattern, pattern)
	}
	if q.MinPrice != nil {
		query = query.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		query = query.Where("price <= ?", *q.MaxPrice)
	}
	if q.Featured != nil {
		query = query.Where("is_featured = ?", *q.Featured)
	}
	if q.Discounted {
		query = query.Where("discount_price IS NOT NULL")
	}
	return query
}

func (r *GormProductRepository) applyOrder(query *gorm.DB, q catalog.ProductQuery) *gorm.DB {
	switch q.Sort {
	case catalog.SortPriceLow:
		query = query.Order("price ASC")
	case catalog.SortPriceHigh:
		query = query.Order("price DESC")
	case catalog.SortRating:
		// NULL ratings last on every dialect
		query = query.Order("rating IS NULL").Order("rating DESC")
	case catalog.SortNewest:
		query = query.Order("created_at DESC")
	default:
		query = query.Order(productSortColumns.orderBy(q.OrderBy, q.OrderDir))
	}
	return query.Order("id ASC")
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
