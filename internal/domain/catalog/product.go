package catalog

import (
	"strings"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxRating is the upper bound of a product rating
var MaxRating = decimal.NewFromInt(5)

// ProductImage is an image in a product gallery
type ProductImage struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	ImageURL  string
	IsPrimary bool
	SortOrder int
}

// ProductSize assigns a size to a product with an optional price adjustment
type ProductSize struct {
	SizeID          uuid.UUID
	PriceAdjustment decimal.Decimal
}

// Product is a garment offered in the store.
// It is the aggregate root for its images, color and size assignments.
type Product struct {
	shared.BaseAggregateRoot
	Name          string
	NameAr        string
	Description   string
	DescriptionAr string
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal
	CategoryID    *uuid.UUID
	IsActive      bool
	IsFeatured    bool
	Rating        *decimal.Decimal
	Images        []ProductImage
	ColorIDs      []uuid.UUID
	Sizes         []ProductSize
}

// NewProduct creates a new active product
func NewProduct(name, nameAr string, price decimal.Decimal) (*Product, error) {
	if err := validateProductNames(name, nameAr); err != nil {
		return nil, err
	}
	if err := validatePricing(price, nil); err != nil {
		return nil, err
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		NameAr:            strings.TrimSpace(nameAr),
		Price:             price.Round(2),
		IsActive:          true,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// UpdateDetails updates the product's names and descriptions
func (p *Product) UpdateDetails(name, nameAr, description, descriptionAr string) error {
	if err := validateProductNames(name, nameAr); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.NameAr = strings.TrimSpace(nameAr)
	p.Description = description
	p.DescriptionAr = descriptionAr
	p.touch()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetDescriptions sets both descriptions without raising an update event
func (p *Product) SetDescriptions(description, descriptionAr string) {
	p.Description = description
	p.DescriptionAr = descriptionAr
}

// SetPricing sets the base price and the optional discount price
func (p *Product) SetPricing(price decimal.Decimal, discountPrice *decimal.Decimal) error {
	if err := validatePricing(price, discountPrice); err != nil {
		return err
	}

	p.Price = price.Round(2)
	if discountPrice != nil {
		d := discountPrice.Round(2)
		p.DiscountPrice = &d
	} else {
		p.DiscountPrice = nil
	}
	p.touch()

	return nil
}

// SetCategory sets or clears the product category
func (p *Product) SetCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.touch()
}

// SetRating sets or clears the product rating
func (p *Product) SetRating(rating *decimal.Decimal) error {
	if rating != nil && (rating.IsNegative() || rating.GreaterThan(MaxRating)) {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 0 and 5")
	}
	p.Rating = rating
	p.touch()
	return nil
}

// Activate makes the product visible in the storefront
func (p *Product) Activate() error {
	if p.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}
	p.IsActive = true
	p.touch()
	p.AddDomainEvent(NewProductStatusChangedEvent(p))
	return nil
}

// Deactivate hides the product from the storefront
func (p *Product) Deactivate() error {
	if !p.IsActive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}
	p.IsActive = false
	p.touch()
	p.AddDomainEvent(NewProductStatusChangedEvent(p))
	return nil
}

// SetFeatured flags the product for the home page
func (p *Product) SetFeatured(featured bool) {
	if p.IsFeatured == featured {
		return
	}
	p.IsFeatured = featured
	p.touch()
}

// ReplaceImages replaces the gallery. The first image becomes primary and
// sort order follows slice order.
func (p *Product) ReplaceImages(urls []string) error {
	images := make([]ProductImage, 0, len(urls))
	for i, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			return shared.NewDomainError("INVALID_IMAGE", "Image URL cannot be empty")
		}
		images = append(images, ProductImage{
			ID:        uuid.New(),
			ProductID: p.ID,
			ImageURL:  u,
			IsPrimary: i == 0,
			SortOrder: i,
		})
	}
	p.Images = images
	p.touch()
	return nil
}

// SetColors replaces the color assignments
func (p *Product) SetColors(colorIDs []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(colorIDs))
	for _, id := range colorIDs {
		if _, dup := seen[id]; dup {
			return shared.NewDomainError("DUPLICATE_COLOR", "Color is assigned more than once")
		}
		seen[id] = struct{}{}
	}
	p.ColorIDs = append([]uuid.UUID(nil), colorIDs...)
	p.touch()
	return nil
}

// SetSizes replaces the size assignments
func (p *Product) SetSizes(sizes []ProductSize) error {
	seen := make(map[uuid.UUID]struct{}, len(sizes))
	for _, s := range sizes {
		if _, dup := seen[s.SizeID]; dup {
			return shared.NewDomainError("DUPLICATE_SIZE", "Size is assigned more than once")
		}
		seen[s.SizeID] = struct{}{}
	}
	p.Sizes = append([]ProductSize(nil), sizes...)
	p.touch()
	return nil
}

// PrimaryImageURL returns the primary image, falling back to the first one
func (p *Product) PrimaryImageURL() string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.ImageURL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].ImageURL
	}
	return ""
}

// HasColor reports whether the color is assigned to the product
func (p *Product) HasColor(colorID uuid.UUID) bool {
	for _, id := range p.ColorIDs {
		if id == colorID {
			return true
		}
	}
	return false
}

// HasSize reports whether the size is assigned to the product
func (p *Product) HasSize(sizeID uuid.UUID) bool {
	_, ok := p.SizeAdjustment(sizeID)
	return ok
}

// HasCategory returns true if the product has a category assigned
func (p *Product) HasCategory() bool {
	return p.CategoryID != nil
}

func (p *Product) touch() {
	p.MarkModified()
}

func validateProductNames(name, nameAr string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(nameAr) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len([]rune(name)) > 200 || len([]rune(nameAr)) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validatePricing(price decimal.Decimal, discountPrice *decimal.Decimal) error {
	if !price.IsPositive() {
		return shared.NewDomainError("INVALID_PRICE", "Price must be greater than zero")
	}
	if discountPrice == nil {
		return nil
	}
	if !discountPrice.IsPositive() {
		return shared.NewDomainError("INVALID_PRICE", "Discount price must be greater than zero")
	}
	if !discountPrice.LessThan(price) {
		return shared.NewDomainError("INVALID_PRICE", "Discount price must be lower than the price")
	}
	return nil
}
