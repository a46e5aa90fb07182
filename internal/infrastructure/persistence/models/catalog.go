package models

import (
	"time"

	"github.com/alshbh/storefront/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
// Images, colors and sizes live in their own tables and are loaded separately.
type ProductModel struct {
	AggregateColumns
	Name          string           `gorm:"type:varchar(200);not null"`
	NameAr        string           `gorm:"type:varchar(200);not null"`
	Description   string           `gorm:"type:text"`
	DescriptionAr string           `gorm:"type:text"`
	Price         decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	DiscountPrice *decimal.Decimal `gorm:"type:decimal(10,2)"`
	CategoryID    *uuid.UUID       `gorm:"type:uuid;index"`
	IsActive      bool             `gorm:"not null;default:true;index"`
	IsFeatured    bool             `gorm:"not null;default:false"`
	Rating        *decimal.Decimal `gorm:"type:decimal(2,1)"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
// The caller attaches images, colors and sizes.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: m.Root(),
		Name:              m.Name,
		NameAr:            m.NameAr,
		Description:       m.Description,
		DescriptionAr:     m.DescriptionAr,
		Price:             m.Price,
		DiscountPrice:     m.DiscountPrice,
		CategoryID:        m.CategoryID,
		IsActive:          m.IsActive,
		IsFeatured:        m.IsFeatured,
		Rating:            m.Rating,
		Images:            make([]catalog.ProductImage, 0),
		ColorIDs:          make([]uuid.UUID, 0),
		Sizes:             make([]catalog.ProductSize, 0),
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.SetRoot(p.BaseAggregateRoot)
	m.Name = p.Name
	m.NameAr = p.NameAr
	m.Description = p.Description
	m.DescriptionAr = p.DescriptionAr
	m.Price = p.Price
	m.DiscountPrice = p.DiscountPrice
	m.CategoryID = p.CategoryID
	m.IsActive = p.IsActive
	m.IsFeatured = p.IsFeatured
	m.Rating = p.Rating
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// ProductImageModel is the persistence model for a product gallery image
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL  string    `gorm:"type:text;not null"`
	IsPrimary bool      `gorm:"not null;default:false"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

// TableName returns the table name for GORM
func (ProductImageModel) TableName() string {
	return "product_images"
}

// ToDomain converts the persistence model to a domain ProductImage
func (m *ProductImageModel) ToDomain() catalog.ProductImage {
	return catalog.ProductImage{
		ID:        m.ID,
		ProductID: m.ProductID,
		ImageURL:  m.ImageURL,
		IsPrimary: m.IsPrimary,
		SortOrder: m.SortOrder,
	}
}

// FromDomain populates the persistence model from a domain ProductImage
func (m *ProductImageModel) FromDomain(productID uuid.UUID, img catalog.ProductImage) {
	m.ID = img.ID
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.ProductID = productID
	m.ImageURL = img.ImageURL
	m.IsPrimary = img.IsPrimary
	m.SortOrder = img.SortOrder
}

// ProductColorModel links a product to an available color
type ProductColorModel struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ColorID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName returns the table name for GORM
func (ProductColorModel) TableName() string {
	return "product_colors"
}

// ProductSizeModel links a product to an available size with its price adjustment
type ProductSizeModel struct {
	ProductID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SizeID          uuid.UUID       `gorm:"type:uuid;primaryKey;index"`
	PriceAdjustment decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductSizeModel) TableName() string {
	return "product_sizes"
}

// ToDomain converts the persistence model to a domain ProductSize
func (m *ProductSizeModel) ToDomain() catalog.ProductSize {
	return catalog.ProductSize{
		SizeID:          m.SizeID,
		PriceAdjustment: m.PriceAdjustment,
	}
}

// CategoryModel is the persistence model for the Category domain entity.
type CategoryModel struct {
	AggregateColumns
	Name   string `gorm:"type:varchar(100);not null;uniqueIndex"`
	NameAr string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category entity.
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseAggregateRoot: m.Root(),
		Name:              m.Name,
		NameAr:            m.NameAr,
	}
}

// FromDomain populates the persistence model from a domain Category entity.
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.SetRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.NameAr = c.NameAr
}

// CategoryModelFromDomain creates a new persistence model from a domain Category entity.
func CategoryModelFromDomain(c *catalog.Category) *CategoryModel {
	m := &CategoryModel{}
	m.FromDomain(c)
	return m
}

// ColorModel is the persistence model for the Color entity.
type ColorModel struct {
	EntityColumns
	Name    string `gorm:"type:varchar(50);not null"`
	NameAr  string `gorm:"type:varchar(50);not null"`
	HexCode string `gorm:"type:varchar(7);not null"`
}

// TableName returns the table name for GORM
func (ColorModel) TableName() string {
	return "colors"
}

// ToDomain converts the persistence model to a domain Color entity.
func (m *ColorModel) ToDomain() *catalog.Color {
	return &catalog.Color{
		BaseEntity: m.Entity(),
		Name:       m.Name,
		NameAr:     m.NameAr,
		HexCode:    m.HexCode,
	}
}

// FromDomain populates the persistence model from a domain Color entity.
func (m *ColorModel) FromDomain(c *catalog.Color) {
	m.SetEntity(c.BaseEntity)
	m.Name = c.Name
	m.NameAr = c.NameAr
	m.HexCode = c.HexCode
}

// SizeModel is the persistence model for the Size entity.
type SizeModel struct {
	EntityColumns
	Name      string `gorm:"type:varchar(20);not null"`
	SortOrder int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (SizeModel) TableName() string {
	return "sizes"
}

// ToDomain converts the persistence model to a domain Size entity.
func (m *SizeModel) ToDomain() *catalog.Size {
	return &catalog.Size{
		BaseEntity: m.Entity(),
		Name:       m.Name,
		SortOrder:  m.SortOrder,
	}
}

// FromDomain populates the persistence model from a domain Size entity.
func (m *SizeModel) FromDomain(s *catalog.Size) {
	m.SetEntity(s.BaseEntity)
	m.Name = s.Name
	m.SortOrder = s.SortOrder
}
