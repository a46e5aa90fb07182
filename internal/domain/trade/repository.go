package trade

import (
	"context"
	"time"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderQuery narrows the admin order listing
type OrderQuery struct {
	shared.Filter
	Status *OrderStatus
	From   *time.Time
	To     *time.Time
}

// OrderStats summarizes orders for the dashboard
type OrderStats struct {
	Total    int64
	ByStatus map[OrderStatus]int64
	// Revenue is the summed total of orders that were not canceled
	Revenue decimal.Decimal
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID loads an order with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// Find returns a page of orders (without items) and the total count
	Find(ctx context.Context, query OrderQuery) ([]Order, int64, error)

	// Create inserts the order and its items in one transaction and assigns
	// the sequential order number
	Create(ctx context.Context, order *Order) error

	// UpdateStatus persists a status change with optimistic locking
	UpdateStatus(ctx context.Context, order *Order) error

	// Delete removes the order and its items
	Delete(ctx context.Context, id uuid.UUID) error

	// Stats aggregates order counts and revenue
	Stats(ctx context.Context) (*OrderStats, error)
}
