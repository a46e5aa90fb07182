package catalog

import (
	"time"

	"github.com/alshbh/storefront/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSizeInput assigns a size with an optional price adjustment
type ProductSizeInput struct {
	SizeID          uuid.UUID        `json:"size_id" binding:"required"`
	PriceAdjustment *decimal.Decimal `json:"price_adjustment"`
}

// ProductInput holds the editable fields of a product. Update replaces all of them.
type ProductInput struct {
	Name          string             `json:"name" binding:"required,min=1,max=200"`
	NameAr        string             `json:"name_ar" binding:"required,min=1,max=200"`
	Description   string             `json:"description" binding:"max=5000"`
	DescriptionAr string             `json:"description_ar" binding:"max=5000"`
	Price         decimal.Decimal    `json:"price"`
	DiscountPrice *decimal.Decimal   `json:"discount_price"`
	CategoryID    *uuid.UUID         `json:"category_id"`
	IsActive      *bool              `json:"is_active"`
	IsFeatured    bool               `json:"is_featured"`
	Rating        *decimal.Decimal   `json:"rating"`
	Images        []string           `json:"images" binding:"max=20,dive,required,max=2048"`
	ColorIDs      []uuid.UUID        `json:"color_ids"`
	Sizes         []ProductSizeInput `json:"sizes" binding:"dive"`
}

// CreateProductRequest represents a request to create a new product
type CreateProductRequest = ProductInput

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest = ProductInput

// SetFeaturedRequest flags or unflags a product for the home page
type SetFeaturedRequest struct {
	Featured bool `json:"featured"`
}

// ProductListFilter is the query of the storefront product listing
type ProductListFilter struct {
	Search     string   `form:"search" binding:"max=100"`
	CategoryID string   `form:"category_id" binding:"omitempty,uuid"`
	MinPrice   *float64 `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice   *float64 `form:"max_price" binding:"omitempty,min=0"`
	Featured   *bool    `form:"featured"`
	Discounted bool     `form:"discounted"`
	Sort       string   `form:"sort" binding:"omitempty,oneof=newest price-low price-high rating"`
	Page       int      `form:"page" binding:"omitempty,min=1"`
	PageSize   int      `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// AdminProductListFilter is the query of the back-office product listing
type AdminProductListFilter struct {
	Search     string `form:"search" binding:"max=100"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=active inactive"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=name name_ar price discount_price rating created_at updated_at"`
	SortDir    string `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ProductImageResponse is a gallery image
type ProductImageResponse struct {
	ID        uuid.UUID `json:"id"`
	ImageURL  string    `json:"image_url"`
	IsPrimary bool      `json:"is_primary"`
	SortOrder int       `json:"sort_order"`
}

// ProductSizeResponse is a size offered for a product with its final price
type ProductSizeResponse struct {
	SizeID          uuid.UUID       `json:"size_id"`
	Name            string          `json:"name"`
	SortOrder       int             `json:"sort_order"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
	FinalPrice      decimal.Decimal `json:"final_price"`
}

// ProductListItem is a product card in listings
type ProductListItem struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name"`
	NameAr             string           `json:"name_ar"`
	Price              decimal.Decimal  `json:"price"`
	DiscountPrice      *decimal.Decimal `json:"discount_price,omitempty"`
	DiscountPercentage int              `json:"discount_percentage"`
	CategoryID         *uuid.UUID       `json:"category_id,omitempty"`
	IsActive           bool             `json:"is_active"`
	IsFeatured         bool             `json:"is_featured"`
	Rating             *decimal.Decimal `json:"rating,omitempty"`
	ImageURL           string           `json:"image_url"`
	CreatedAt          time.Time        `json:"created_at"`
}

// ProductResponse is the full product detail
type ProductResponse struct {
	ProductListItem
	Description   string                 `json:"description"`
	DescriptionAr string                 `json:"description_ar"`
	Category      *CategoryResponse      `json:"category,omitempty"`
	Images        []ProductImageResponse `json:"images"`
	Colors        []ColorResponse        `json:"colors"`
	Sizes         []ProductSizeResponse  `json:"sizes"`
	UpdatedAt     time.Time              `json:"updated_at"`
	Version       int                    `json:"version"`
}

// CategoryRequest creates or renames a category
type CategoryRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=100"`
	NameAr string `json:"name_ar" binding:"required,min=1,max=100"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	NameAr    string    `json:"name_ar"`
	CreatedAt time.Time `json:"created_at"`
}

// ColorRequest creates or updates a color
type ColorRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=50"`
	NameAr  string `json:"name_ar" binding:"required,min=1,max=50"`
	HexCode string `json:"hex_code" binding:"required,max=7"`
}

// ColorResponse represents a color in API responses
type ColorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	NameAr    string    `json:"name_ar"`
	HexCode   string    `json:"hex_code"`
	CreatedAt time.Time `json:"created_at"`
}

// SizeRequest creates or updates a size
type SizeRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=20"`
	SortOrder int    `json:"sort_order"`
}

// SizeResponse represents a size in API responses
type SizeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// ToProductListItem converts a domain product to a listing card
func ToProductListItem(p *catalog.Product) ProductListItem {
	return ProductListItem{
		ID:                 p.ID,
		Name:               p.Name,
		NameAr:             p.NameAr,
		Price:              p.Price,
		DiscountPrice:      p.DiscountPrice,
		DiscountPercentage: p.DiscountPercentage(),
		CategoryID:         p.CategoryID,
		IsActive:           p.IsActive,
		IsFeatured:         p.IsFeatured,
		Rating:             p.Rating,
		ImageURL:           p.PrimaryImageURL(),
		CreatedAt:          p.CreatedAt,
	}
}

// ToProductListItems converts a slice of domain products
func ToProductListItems(products []catalog.Product) []ProductListItem {
	items := make([]ProductListItem, len(products))
	for i := range products {
		items[i] = ToProductListItem(&products[i])
	}
	return items
}

// ToProductResponse converts a product with its resolved attributes.
// Sizes must be ordered by sort order; unknown ids are skipped.
func ToProductResponse(p *catalog.Product, category *catalog.Category, colors []catalog.Color, sizes []catalog.Size) *ProductResponse {
	resp := &ProductResponse{
		ProductListItem: ToProductListItem(p),
		Description:     p.Description,
		DescriptionAr:   p.DescriptionAr,
		Images:          make([]ProductImageResponse, 0, len(p.Images)),
		Colors:          make([]ColorResponse, 0, len(colors)),
		Sizes:           make([]ProductSizeResponse, 0, len(sizes)),
		UpdatedAt:       p.UpdatedAt,
		Version:         p.Version,
	}
	if category != nil {
		c := ToCategoryResponse(category)
		resp.Category = &c
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, ProductImageResponse{
			ID:        img.ID,
			ImageURL:  img.ImageURL,
			IsPrimary: img.IsPrimary,
			SortOrder: img.SortOrder,
		})
	}
	for i := range colors {
		if p.HasColor(colors[i].ID) {
			resp.Colors = append(resp.Colors, ToColorResponse(&colors[i]))
		}
	}
	for _, size := range sizes {
		adj, ok := p.SizeAdjustment(size.ID)
		if !ok {
			continue
		}
		final, _ := p.PriceForSize(size.ID)
		resp.Sizes = append(resp.Sizes, ProductSizeResponse{
			SizeID:          size.ID,
			Name:            size.Name,
			SortOrder:       size.SortOrder,
			PriceAdjustment: adj,
			FinalPrice:      final,
		})
	}
	return resp
}

// ToCategoryResponse converts a domain category
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, NameAr: c.NameAr, CreatedAt: c.CreatedAt}
}

// ToColorResponse converts a domain color
func ToColorResponse(c *catalog.Color) ColorResponse {
	return ColorResponse{ID: c.ID, Name: c.Name, NameAr: c.NameAr, HexCode: c.HexCode, CreatedAt: c.CreatedAt}
}

// ToSizeResponse converts a domain size
func ToSizeResponse(s *catalog.Size) SizeResponse {
	return SizeResponse{ID: s.ID, Name: s.Name, SortOrder: s.SortOrder, CreatedAt: s.CreatedAt}
}
