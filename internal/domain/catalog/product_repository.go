package catalog

import (
	"context"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSort is a storefront sort option
type ProductSort string

const (
	SortNewest    ProductSort = "newest"
	SortPriceLow  ProductSort = "price-low"
	SortPriceHigh ProductSort = "price-high"
	SortRating    ProductSort = "rating"
)

// IsValid reports whether s is a known sort option
func (s ProductSort) IsValid() bool {
	switch s {
	case SortNewest, SortPriceLow, SortPriceHigh, SortRating:
		return true
	}
	return false
}

// ProductQuery narrows a product listing
type ProductQuery struct {
	shared.Filter
	// Active filters on IsActive when set
	Active     *bool
	CategoryID *uuid.UUID
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Featured   *bool
	Discounted bool
	Sort       ProductSort
}

// ProductRepository defines the interface for product persistence.
// Loaded products carry their images, color ids and size assignments.
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// Find returns a page of products and the total match count
	Find(ctx context.Context, query ProductQuery) ([]Product, int64, error)

	// Save creates or updates a product together with its images, colors and sizes
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product and its associations
	Delete(ctx context.Context, id uuid.UUID) error

	// DetachCategory clears the category of every product in it
	DetachCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// CountByCategory counts products in a specific category
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
