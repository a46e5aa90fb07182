package shopping

import (
	"time"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxLineQuantity caps the quantity of a single cart line
const MaxLineQuantity = 99

var (
	ErrInvalidQuantity  = shared.NewDomainError("INVALID_QUANTITY", "Quantity must be between 1 and 99")
	ErrCartItemNotFound = shared.NewDomainError("NOT_FOUND", "Cart item not found")
	ErrCartEmpty        = shared.NewDomainError("CART_EMPTY", "Cart is empty")
)

// CartItem is a product line in a cart. Prices are captured when the line is
// first added and do not follow later catalog changes.
type CartItem struct {
	ID            string           `json:"id"`
	ProductID     uuid.UUID        `json:"product_id"`
	Name          string           `json:"name"`
	NameAr        string           `json:"name_ar"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	Image         string           `json:"image"`
	Color         string           `json:"color"`
	ColorHex      string           `json:"color_hex"`
	Size          string           `json:"size"`
	Quantity      int              `json:"quantity"`
}

// UnitPrice is the discount price when captured, otherwise the price
func (i CartItem) UnitPrice() decimal.Decimal {
	if i.DiscountPrice != nil && i.DiscountPrice.IsPositive() {
		return *i.DiscountPrice
	}
	return i.Price
}

// LineTotal is unit price times quantity
func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// sameVariant reports whether two lines refer to the same product, color and size
func (i CartItem) sameVariant(other CartItem) bool {
	return i.ProductID == other.ProductID && i.Color == other.Color && i.Size == other.Size
}

// Cart is the shopping cart of one session
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart creates an empty cart
func NewCart(sessionID string) *Cart {
	return &Cart{SessionID: sessionID, Items: []CartItem{}, UpdatedAt: time.Now()}
}

// AddItem adds a line. A line with the same product, color and size has its
// quantity increased instead; the merged quantity is capped at MaxLineQuantity.
func (c *Cart) AddItem(item CartItem) (CartItem, error) {
	if item.Quantity < 1 || item.Quantity > MaxLineQuantity {
		return CartItem{}, ErrInvalidQuantity
	}

	for i := range c.Items {
		if c.Items[i].sameVariant(item) {
			c.Items[i].Quantity = min(c.Items[i].Quantity+item.Quantity, MaxLineQuantity)
			c.touch()
			return c.Items[i], nil
		}
	}

	item.ID = uuid.NewString()
	c.Items = append(c.Items, item)
	c.touch()
	return item, nil
}

// UpdateQuantity sets the quantity of a line. Quantities below one are
// rejected and leave the line untouched.
func (c *Cart) UpdateQuantity(itemID string, quantity int) error {
	if quantity < 1 || quantity > MaxLineQuantity {
		return ErrInvalidQuantity
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = quantity
			c.touch()
			return nil
		}
	}
	return ErrCartItemNotFound
}

// RemoveItem drops a line. Unknown ids are ignored.
func (c *Cart) RemoveItem(itemID string) bool {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return true
		}
	}
	return false
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.touch()
}

// Subtotal sums unit price times quantity over all lines
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total.Round(2)
}

// ItemCount sums quantities over all lines
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now()
}
