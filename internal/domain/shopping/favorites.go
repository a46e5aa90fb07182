package shopping

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FavoriteItem is a saved product snapshot
type FavoriteItem struct {
	ProductID     uuid.UUID        `json:"product_id"`
	Name          string           `json:"name"`
	NameAr        string           `json:"name_ar"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	Image         string           `json:"image"`
	Rating        *decimal.Decimal `json:"rating,omitempty"`
}

// Favorites is the wishlist of one session, deduplicated by product id
type Favorites struct {
	SessionID string         `json:"session_id"`
	Items     []FavoriteItem `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewFavorites creates an empty wishlist
func NewFavorites(sessionID string) *Favorites {
	return &Favorites{SessionID: sessionID, Items: []FavoriteItem{}, UpdatedAt: time.Now()}
}

// Add saves a product. It returns false when the product was already saved.
func (f *Favorites) Add(item FavoriteItem) bool {
	if f.Contains(item.ProductID) {
		return false
	}
	f.Items = append(f.Items, item)
	f.UpdatedAt = time.Now()
	return true
}

// Remove drops a product. It returns false when it was not saved.
func (f *Favorites) Remove(productID uuid.UUID) bool {
	for i := range f.Items {
		if f.Items[i].ProductID == productID {
			f.Items = append(f.Items[:i], f.Items[i+1:]...)
			f.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// Toggle adds or removes a product and returns whether it is now saved
func (f *Favorites) Toggle(item FavoriteItem) bool {
	if f.Remove(item.ProductID) {
		return false
	}
	f.Add(item)
	return true
}

// Contains reports whether the product is saved
func (f *Favorites) Contains(productID uuid.UUID) bool {
	for _, item := range f.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Count returns the number of saved products
func (f *Favorites) Count() int {
	return len(f.Items)
}
