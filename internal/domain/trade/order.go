package trade

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/alshbh/storefront/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,18}[0-9]$`)

// maxPhoneLength matches the phone columns and counts the leading plus
const maxPhoneLength = 20

// OrderItem is a denormalized order line. Product details are copied so the
// line survives product edits and deletion.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   *uuid.UUID
	ProductName string
	Color       string
	Size        string
	Price       decimal.Decimal
	Quantity    int
	CreatedAt   time.Time
}

// Amount is price times quantity
func (i OrderItem) Amount() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CustomerInfo is the delivery contact captured at checkout
type CustomerInfo struct {
	Name           string
	PhonePrimary   string
	PhoneSecondary string
	Address        string
	Notes          string
}

// Order is a customer purchase submitted from the storefront
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber    int64
	CustomerName   string
	PhonePrimary   string
	PhoneSecondary string
	Address        string
	GovernorateID  *uuid.UUID
	Notes          string
	Subtotal       decimal.Decimal
	ShippingPrice  decimal.Decimal
	TotalPrice     decimal.Decimal
	Status         OrderStatus
	Items          []OrderItem
}

// NewOrder creates a pending order without items
func NewOrder(customer CustomerInfo, governorateID *uuid.UUID, shippingPrice decimal.Decimal) (*Order, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}
	if shippingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Shipping price cannot be negative")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerName:      strings.TrimSpace(customer.Name),
		PhonePrimary:      strings.TrimSpace(customer.PhonePrimary),
		PhoneSecondary:    strings.TrimSpace(customer.PhoneSecondary),
		Address:           strings.TrimSpace(customer.Address),
		Notes:             strings.TrimSpace(customer.Notes),
		GovernorateID:     governorateID,
		ShippingPrice:     shippingPrice.Round(2),
		Status:            OrderStatusPending,
		Items:             make([]OrderItem, 0),
	}
	order.recalculateTotals()
	return order, nil
}

// AddItem appends a line and refreshes totals
func (o *Order) AddItem(productID *uuid.UUID, productName, color, size string, price decimal.Decimal, quantity int) (*OrderItem, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, shared.NewDomainError("INVALID_ITEM", "Product name cannot be empty")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Item price cannot be negative")
	}

	item := OrderItem{
		ID:          uuid.New(),
		OrderID:     o.ID,
		ProductID:   productID,
		ProductName: productName,
		Color:       color,
		Size:        size,
		Price:       price.Round(2),
		Quantity:    quantity,
		CreatedAt:   time.Now(),
	}
	o.Items = append(o.Items, item)
	o.recalculateTotals()
	return &o.Items[len(o.Items)-1], nil
}

// Place checks that a new order can be stored. The OrderPlaced event waits
// for MarkPlaced, once the repository has numbered the order.
func (o *Order) Place() error {
	if len(o.Items) == 0 {
		return shared.NewDomainError("NO_ITEMS", "Order must contain at least one item")
	}
	return nil
}

// MarkPlaced records the OrderPlaced event for a stored order
func (o *Order) MarkPlaced() error {
	if o.OrderNumber == 0 {
		return shared.NewDomainError("INVALID_STATE", "Order has not been numbered yet")
	}
	o.AddDomainEvent(NewOrderPlacedEvent(o))
	return nil
}

// UpdateStatus moves the order to another status
func (o *Order) UpdateStatus(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", target))
	}
	if o.Status == target {
		return nil
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot change order from %s to %s", o.Status, target))
	}

	old := o.Status
	o.Status = target
	o.MarkModified()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, old))
	return nil
}

// MarkDeleted records the OrderDeleted event before removal
func (o *Order) MarkDeleted() {
	o.AddDomainEvent(NewOrderDeletedEvent(o))
}

// ItemCount sums quantities over all lines
func (o *Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

// Totals returns subtotal, shipping and total as money
func (o *Order) Totals() Totals {
	return NewTotals(o.Subtotal, o.ShippingPrice)
}

func (o *Order) recalculateTotals() {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.Amount())
	}
	o.Subtotal = subtotal.Round(2)
	o.TotalPrice = o.Subtotal.Add(o.ShippingPrice)
}

// Totals is a checkout price summary
type Totals struct {
	Subtotal valueobject.Money `json:"subtotal"`
	Shipping valueobject.Money `json:"shipping"`
	Total    valueobject.Money `json:"total"`
}

// NewTotals builds a summary where total = subtotal + shipping
func NewTotals(subtotal, shipping decimal.Decimal) Totals {
	s := valueobject.NewMoneyEGP(subtotal.Round(2))
	sh := valueobject.NewMoneyEGP(shipping.Round(2))
	return Totals{Subtotal: s, Shipping: sh, Total: s.MustAdd(sh)}
}

func validateCustomer(c CustomerInfo) error {
	if strings.TrimSpace(c.Name) == "" {
		return shared.NewDomainError("INVALID_CUSTOMER", "Customer name is required")
	}
	if len([]rune(c.Name)) > 200 {
		return shared.NewDomainError("INVALID_CUSTOMER", "Customer name cannot exceed 200 characters")
	}
	if !ValidPhone(c.PhonePrimary) {
		return shared.NewDomainError("INVALID_PHONE", "Primary phone number is invalid")
	}
	if strings.TrimSpace(c.PhoneSecondary) != "" && !ValidPhone(c.PhoneSecondary) {
		return shared.NewDomainError("INVALID_PHONE", "Secondary phone number is invalid")
	}
	if strings.TrimSpace(c.Address) == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Address is required")
	}
	return nil
}

// ValidPhone accepts 7 to 20 characters of digits with an optional leading
// plus and inner spaces or dashes
func ValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	return len(phone) <= maxPhoneLength && phonePattern.MatchString(phone)
}
