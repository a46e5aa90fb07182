package shopping

import (
	"github.com/alshbh/storefront/internal/domain/shopping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddCartItemRequest adds a product variant to the cart
type AddCartItemRequest struct {
	ProductID uuid.UUID  `json:"product_id" binding:"required"`
	ColorID   *uuid.UUID `json:"color_id"`
	SizeID    *uuid.UUID `json:"size_id"`
	Quantity  int        `json:"quantity" binding:"required,min=1,max=99"`
}

// UpdateCartItemRequest sets the quantity of a cart line
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=99"`
}

// CartItemResponse is a cart line with computed prices
type CartItemResponse struct {
	shopping.CartItem
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartResponse is the cart with its totals
type CartResponse struct {
	SessionID string             `json:"session_id"`
	Items     []CartItemResponse `json:"items"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
	ItemCount int                `json:"item_count"`
}

// ToCartResponse converts a domain cart
func ToCartResponse(cart *shopping.Cart) *CartResponse {
	items := make([]CartItemResponse, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = CartItemResponse{
			CartItem:  item,
			UnitPrice: item.UnitPrice(),
			LineTotal: item.LineTotal().Round(2),
		}
	}
	return &CartResponse{
		SessionID: cart.SessionID,
		Items:     items,
		Subtotal:  cart.Subtotal(),
		ItemCount: cart.ItemCount(),
	}
}

// AddFavoriteRequest saves a product
type AddFavoriteRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// FavoritesResponse lists saved products
type FavoritesResponse struct {
	Items []shopping.FavoriteItem `json:"items"`
	Count int                     `json:"count"`
}

// FavoriteStateResponse tells whether one product is saved
type FavoriteStateResponse struct {
	ProductID  uuid.UUID `json:"product_id"`
	IsFavorite bool      `json:"is_favorite"`
}

// DarkModeRequest stores an explicit dark mode choice
type DarkModeRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// DarkModeResponse is the stored dark mode flag; null means follow the system
type DarkModeResponse struct {
	Enabled *bool `json:"enabled"`
}
