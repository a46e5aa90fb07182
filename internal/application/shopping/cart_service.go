package shopping

import (
	"context"
	"errors"

	"github.com/alshbh/storefront/internal/domain/catalog"
	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/alshbh/storefront/internal/domain/shopping"
)

var (
	// ErrProductUnavailable is returned when a product is missing or inactive
	ErrProductUnavailable = shared.NewDomainError("PRODUCT_UNAVAILABLE", "Product is not available")
	// ErrColorRequired is returned when a product with colors is added without one
	ErrColorRequired = shared.NewDomainError("COLOR_REQUIRED", "Please choose a color")
	// ErrSizeRequired is returned when a product with sizes is added without one
	ErrSizeRequired = shared.NewDomainError("SIZE_REQUIRED", "Please choose a size")
)

// CartService manages the session cart
type CartService struct {
	store       shopping.CartStore
	productRepo catalog.ProductRepository
	colorRepo   catalog.ColorRepository
	sizeRepo    catalog.SizeRepository
}

// NewCartService creates a new CartService
func NewCartService(
	store shopping.CartStore,
	productRepo catalog.ProductRepository,
	colorRepo catalog.ColorRepository,
	sizeRepo catalog.SizeRepository,
) *CartService {
	return &CartService{
		store:       store,
		productRepo: productRepo,
		colorRepo:   colorRepo,
		sizeRepo:    sizeRepo,
	}
}

// Get returns the session cart, empty when none is stored
func (s *CartService) Get(ctx context.Context, sessionID string) (*CartResponse, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return ToCartResponse(cart), nil
}

// Load returns the domain cart for checkout
func (s *CartService) Load(ctx context.Context, sessionID string) (*shopping.Cart, error) {
	return s.load(ctx, sessionID)
}

// AddItem captures the product variant at its current price and adds it
func (s *CartService) AddItem(ctx context.Context, sessionID string, req AddCartItemRequest) (*CartResponse, error) {
	item, err := s.snapshot(ctx, req)
	if err != nil {
		return nil, err
	}

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := cart.AddItem(item); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return ToCartResponse(cart), nil
}

// UpdateQuantity sets the quantity of one line
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, req UpdateCartItemRequest) (*CartResponse, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := cart.UpdateQuantity(itemID, req.Quantity); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return ToCartResponse(cart), nil
}

// RemoveItem drops one line; unknown ids leave the cart as is
func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*CartResponse, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.RemoveItem(itemID) {
		if err := s.store.Save(ctx, sessionID, cart); err != nil {
			return nil, err
		}
	}
	return ToCartResponse(cart), nil
}

// Clear empties the cart
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

func (s *CartService) load(ctx context.Context, sessionID string) (*shopping.Cart, error) {
	cart, found, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return shopping.NewCart(sessionID), nil
	}
	return cart, nil
}

// snapshot resolves the product, color and size into a cart line
func (s *CartService) snapshot(ctx context.Context, req AddCartItemRequest) (shopping.CartItem, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shopping.CartItem{}, ErrProductUnavailable
		}
		return shopping.CartItem{}, err
	}
	if !product.IsActive {
		return shopping.CartItem{}, ErrProductUnavailable
	}

	item := shopping.CartItem{
		ProductID:     product.ID,
		Name:          product.Name,
		NameAr:        product.NameAr,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		Image:         product.PrimaryImageURL(),
		Quantity:      req.Quantity,
	}

	switch {
	case req.ColorID != nil:
		if !product.HasColor(*req.ColorID) {
			return shopping.CartItem{}, catalog.ErrColorNotOffered
		}
		color, err := s.colorRepo.FindByID(ctx, *req.ColorID)
		if err != nil {
			return shopping.CartItem{}, err
		}
		item.Color = color.NameAr
		item.ColorHex = color.HexCode
	case len(product.ColorIDs) > 0:
		return shopping.CartItem{}, ErrColorRequired
	}

	switch {
	case req.SizeID != nil:
		quote, err := product.Quote(*req.SizeID)
		if err != nil {
			return shopping.CartItem{}, err
		}
		size, err := s.sizeRepo.FindByID(ctx, *req.SizeID)
		if err != nil {
			return shopping.CartItem{}, err
		}
		item.Size = size.Name
		item.Price = quote.Price
		item.DiscountPrice = quote.DiscountPrice
	case len(product.Sizes) > 0:
		return shopping.CartItem{}, ErrSizeRequired
	}

	return item, nil
}
