package catalog

import (
	"context"
	"errors"

	"github.com/alshbh/storefront/internal/domain/catalog"
	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrProductNotFound is returned for missing products and, in the storefront,
// for inactive ones
var ErrProductNotFound = shared.NewDomainError("NOT_FOUND", "Product not found")

// ProductService handles product-related business operations
type ProductService struct {
	productRepo    catalog.ProductRepository
	categoryRepo   catalog.CategoryRepository
	colorRepo      catalog.ColorRepository
	sizeRepo       catalog.SizeRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	colorRepo catalog.ColorRepository,
	sizeRepo catalog.SizeRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		colorRepo:    colorRepo,
		sizeRepo:     sizeRepo,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// ListStorefront lists active products for shoppers
func (s *ProductService) ListStorefront(ctx context.Context, filter ProductListFilter) ([]ProductListItem, int64, error) {
	active := true
	query := catalog.ProductQuery{
		Filter:     shared.NewFilter(filter.Page, filter.PageSize),
		Active:     &active,
		Featured:   filter.Featured,
		Discounted: filter.Discounted,
		Sort:       catalog.ProductSort(filter.Sort),
	}
	query.Search = filter.Search
	if query.Sort == "" {
		query.Sort = catalog.SortNewest
	}
	if filter.CategoryID != "" {
		id, err := uuid.Parse(filter.CategoryID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Invalid category id")
		}
		query.CategoryID = &id
	}
	if filter.MinPrice != nil {
		d := decimal.NewFromFloat(*filter.MinPrice)
		query.MinPrice = &d
	}
	if filter.MaxPrice != nil {
		d := decimal.NewFromFloat(*filter.MaxPrice)
		query.MaxPrice = &d
	}
	if query.MinPrice != nil && query.MaxPrice != nil && query.MinPrice.GreaterThan(*query.MaxPrice) {
		return nil, 0, shared.NewDomainError("INVALID_INPUT", "min_price cannot exceed max_price")
	}

	products, total, err := s.productRepo.Find(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return ToProductListItems(products), total, nil
}

// GetStorefrontProduct returns an active product with resolved colors and sizes
func (s *ProductService) GetStorefrontProduct(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, ErrProductNotFound
	}
	return s.toDetail(ctx, product)
}

// List lists every product for the back-office, newest first
func (s *ProductService) List(ctx context.Context, filter AdminProductListFilter) ([]ProductListItem, int64, error) {
	query := catalog.ProductQuery{
		Filter: shared.NewFilter(filter.Page, filter.PageSize).Sorted(filter.SortBy, filter.SortDir),
	}
	if filter.SortBy == "" {
		query.Sort = catalog.SortNewest
	}
	query.Search = filter.Search
	switch filter.Status {
	case "active":
		v := true
		query.Active = &v
	case "inactive":
		v := false
		query.Active = &v
	}
	if filter.CategoryID != "" {
		id, err := uuid.Parse(filter.CategoryID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Invalid category id")
		}
		query.CategoryID = &id
	}

	products, total, err := s.productRepo.Find(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return ToProductListItems(products), total, nil
}

// GetByID returns a product regardless of its status
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDetail(ctx, product)
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.NameAr, req.Price)
	if err != nil {
		return nil, err
	}
	product.SetDescriptions(req.Description, req.DescriptionAr)
	if err := s.apply(ctx, product, req); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.publish(ctx, product)

	return s.toDetail(ctx, product)
}

// Update replaces the editable fields of a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.UpdateDetails(req.Name, req.NameAr, req.Description, req.DescriptionAr); err != nil {
		return nil, err
	}
	if err := s.apply(ctx, product, req); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.publish(ctx, product)

	return s.toDetail(ctx, product)
}

// Delete deletes a product with its images and attribute assignments.
// Order lines keep their copied product name.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	product.AddDomainEvent(catalog.NewProductDeletedEvent(product))
	s.publish(ctx, product)
	return nil
}

// Activate makes a product visible in the storefront
func (s *ProductService) Activate(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	return s.mutate(ctx, id, func(p *catalog.Product) error { return p.Activate() })
}

// Deactivate hides a product from the storefront
func (s *ProductService) Deactivate(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	return s.mutate(ctx, id, func(p *catalog.Product) error { return p.Deactivate() })
}

// SetFeatured flags a product for the home page
func (s *ProductService) SetFeatured(ctx context.Context, id uuid.UUID, req SetFeaturedRequest) (*ProductResponse, error) {
	return s.mutate(ctx, id, func(p *catalog.Product) error {
		p.SetFeatured(req.Featured)
		return nil
	})
}

func (s *ProductService) mutate(ctx context.Context, id uuid.UUID, fn func(*catalog.Product) error) (*ProductResponse, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(product); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.publish(ctx, product)
	return s.toDetail(ctx, product)
}

// apply copies everything but names and descriptions onto the product after
// checking referenced categories, colors and sizes exist
func (s *ProductService) apply(ctx context.Context, product *catalog.Product, req ProductInput) error {
	if err := product.SetPricing(req.Price, req.DiscountPrice); err != nil {
		return err
	}
	if err := product.SetRating(req.Rating); err != nil {
		return err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return err
		}
	}
	product.SetCategory(req.CategoryID)

	if len(req.ColorIDs) > 0 {
		colors, err := s.colorRepo.FindByIDs(ctx, req.ColorIDs)
		if err != nil {
			return err
		}
		if len(colors) != len(uniqueIDs(req.ColorIDs)) {
			return shared.NewDomainError("INVALID_COLOR", "One or more colors not found")
		}
	}
	if err := product.SetColors(req.ColorIDs); err != nil {
		return err
	}

	sizes := make([]catalog.ProductSize, 0, len(req.Sizes))
	sizeIDs := make([]uuid.UUID, 0, len(req.Sizes))
	for _, in := range req.Sizes {
		ps := catalog.ProductSize{SizeID: in.SizeID, PriceAdjustment: decimal.Zero}
		if in.PriceAdjustment != nil {
			ps.PriceAdjustment = in.PriceAdjustment.Round(2)
		}
		sizes = append(sizes, ps)
		sizeIDs = append(sizeIDs, in.SizeID)
	}
	if len(sizeIDs) > 0 {
		found, err := s.sizeRepo.FindByIDs(ctx, sizeIDs)
		if err != nil {
			return err
		}
		if len(found) != len(uniqueIDs(sizeIDs)) {
			return shared.NewDomainError("INVALID_SIZE", "One or more sizes not found")
		}
	}
	if err := product.SetSizes(sizes); err != nil {
		return err
	}

	if err := product.ReplaceImages(req.Images); err != nil {
		return err
	}
	product.SetFeatured(req.IsFeatured)

	if req.IsActive != nil && *req.IsActive != product.IsActive {
		if *req.IsActive {
			return product.Activate()
		}
		return product.Deactivate()
	}
	return nil
}

func (s *ProductService) findProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// toDetail resolves the category, colors and sizes of a product
func (s *ProductService) toDetail(ctx context.Context, product *catalog.Product) (*ProductResponse, error) {
	var category *catalog.Category
	if product.CategoryID != nil {
		c, err := s.categoryRepo.FindByID(ctx, *product.CategoryID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		category = c
	}

	var colors []catalog.Color
	if len(product.ColorIDs) > 0 {
		var err error
		if colors, err = s.colorRepo.FindByIDs(ctx, product.ColorIDs); err != nil {
			return nil, err
		}
	}

	var sizes []catalog.Size
	if len(product.Sizes) > 0 {
		ids := make([]uuid.UUID, len(product.Sizes))
		for i, ps := range product.Sizes {
			ids[i] = ps.SizeID
		}
		var err error
		if sizes, err = s.sizeRepo.FindByIDs(ctx, ids); err != nil {
			return nil, err
		}
	}

	return ToProductResponse(product, category, colors, sizes), nil
}

func (s *ProductService) publish(ctx context.Context, product *catalog.Product) {
	events := product.PopDomainEvents()
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	// Publish errors do not fail the write
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish product events",
			zap.String("product_id", product.ID.String()), zap.Error(err))
	}
}

func uniqueIDs(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
