package trade

import (
	"time"

	"github.com/alshbh/storefront/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutRequest is the delivery form submitted from the storefront
type CheckoutRequest struct {
	CustomerName   string    `json:"customer_name" binding:"required,min=1,max=200"`
	PhonePrimary   string    `json:"phone_primary" binding:"required,min=7,max=20"`
	PhoneSecondary string    `json:"phone_secondary" binding:"omitempty,min=7,max=20"`
	Address        string    `json:"address" binding:"required,min=1,max=500"`
	GovernorateID  uuid.UUID `json:"governorate_id" binding:"required"`
	Notes          string    `json:"notes" binding:"max=1000"`
}

// PreviewRequest prices the session cart, optionally with shipping
type PreviewRequest struct {
	GovernorateID *uuid.UUID `json:"governorate_id"`
}

// CheckoutPreview is the price summary shown before placing an order
type CheckoutPreview struct {
	GovernorateID *uuid.UUID      `json:"governorate_id,omitempty"`
	ItemCount     int             `json:"item_count"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ShippingPrice decimal.Decimal `json:"shipping_price"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
}

// OrderListFilter is the query of the admin order listing.
// Dates are calendar days; To is inclusive.
type OrderListFilter struct {
	Search   string     `form:"search" binding:"max=100"`
	Status   string     `form:"status" binding:"omitempty,oneof=pending preparing shipped delivered canceled"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	SortBy   string     `form:"sort_by" binding:"omitempty,oneof=created_at order_number customer_name total status"`
	SortDir  string     `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// UpdateOrderStatusRequest sets the status of an order
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending preparing shipped delivered canceled"`
}

// OrderItemResponse is an order line
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Color       string          `json:"color"`
	Size        string          `json:"size"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// OrderListItem is an order row without items
type OrderListItem struct {
	ID            uuid.UUID       `json:"id"`
	OrderNumber   int64           `json:"order_number"`
	CustomerName  string          `json:"customer_name"`
	PhonePrimary  string          `json:"phone_primary"`
	GovernorateID *uuid.UUID      `json:"governorate_id,omitempty"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ShippingPrice decimal.Decimal `json:"shipping_price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderResponse is the full order with items
type OrderResponse struct {
	OrderListItem
	PhoneSecondary  string              `json:"phone_secondary,omitempty"`
	Address         string              `json:"address"`
	GovernorateName string              `json:"governorate_name,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	ItemCount       int                 `json:"item_count"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Version         int                 `json:"version"`
}

// OrderStatsResponse summarizes orders for the dashboard
type OrderStatsResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
	Revenue  decimal.Decimal  `json:"revenue"`
}

// ToOrderListItem converts a domain order to a listing row
func ToOrderListItem(o *trade.Order) OrderListItem {
	return OrderListItem{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		PhonePrimary:  o.PhonePrimary,
		GovernorateID: o.GovernorateID,
		Subtotal:      o.Subtotal,
		ShippingPrice: o.ShippingPrice,
		TotalPrice:    o.TotalPrice,
		Status:        o.Status.String(),
		CreatedAt:     o.CreatedAt,
	}
}

// ToOrderResponse converts a domain order with its items
func ToOrderResponse(o *trade.Order, governorateName string) *OrderResponse {
	resp := &OrderResponse{
		OrderListItem:   ToOrderListItem(o),
		PhoneSecondary:  o.PhoneSecondary,
		Address:         o.Address,
		GovernorateName: governorateName,
		Notes:           o.Notes,
		Items:           make([]OrderItemResponse, len(o.Items)),
		ItemCount:       o.ItemCount(),
		UpdatedAt:       o.UpdatedAt,
		Version:         o.Version,
	}
	for i, item := range o.Items {
		resp.Items[i] = OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Color:       item.Color,
			Size:        item.Size,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Amount:      item.Amount(),
		}
	}
	return resp
}

// ToOrderStatsResponse lists every status, including those without orders
func ToOrderStatsResponse(stats *trade.OrderStats) *OrderStatsResponse {
	resp := &OrderStatsResponse{
		Total:    stats.Total,
		ByStatus: make(map[string]int64, len(trade.AllOrderStatuses)),
		Revenue:  stats.Revenue,
	}
	for _, status := range trade.AllOrderStatuses {
		resp.ByStatus[status.String()] = stats.ByStatus[status]
	}
	return resp
}
