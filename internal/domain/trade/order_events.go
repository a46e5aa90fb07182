package trade

import (
	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	EventTypeOrderPlaced        = "trade.order.placed"
	EventTypeOrderStatusChanged = "trade.order.status_changed"
	EventTypeOrderDeleted       = "trade.order.deleted"
)

// OrderPlacedEvent is raised when checkout creates an order
type OrderPlacedEvent struct {
	shared.EventHeader
	OrderNumber  int64           `json:"order_number"`
	CustomerName string          `json:"customer_name"`
	ItemCount    int             `json:"item_count"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

func NewOrderPlacedEvent(o *Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		EventHeader:  shared.NewEventHeader(EventTypeOrderPlaced, o.ID),
		OrderNumber:  o.OrderNumber,
		CustomerName: o.CustomerName,
		ItemCount:    o.ItemCount(),
		TotalPrice:   o.TotalPrice,
	}
}

// OrderStatusChangedEvent is raised when staff move an order to a new status
type OrderStatusChangedEvent struct {
	shared.EventHeader
	OrderNumber int64       `json:"order_number"`
	From        OrderStatus `json:"from"`
	To          OrderStatus `json:"to"`
}

func NewOrderStatusChangedEvent(o *Order, from OrderStatus) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		EventHeader: shared.NewEventHeader(EventTypeOrderStatusChanged, o.ID),
		OrderNumber: o.OrderNumber,
		From:        from,
		To:          o.Status,
	}
}

type OrderDeletedEvent struct {
	shared.EventHeader
	OrderNumber int64 `json:"order_number"`
}

func NewOrderDeletedEvent(o *Order) *OrderDeletedEvent {
	return &OrderDeletedEvent{
		EventHeader: shared.NewEventHeader(EventTypeOrderDeleted, o.ID),
		OrderNumber: o.OrderNumber,
	}
}
