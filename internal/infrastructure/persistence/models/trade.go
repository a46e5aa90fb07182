package models

import (
	"time"

	"github.com/alshbh/storefront/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	AggregateColumns
	OrderNumber    int64             `gorm:"not null;uniqueIndex"`
	CustomerName   string            `gorm:"type:varchar(200);not null"`
	PhonePrimary   string            `gorm:"type:varchar(20);not null"`
	PhoneSecondary string            `gorm:"type:varchar(20)"`
	Address        string            `gorm:"type:text;not null"`
	GovernorateID  *uuid.UUID        `gorm:"type:uuid;index"`
	Notes          string            `gorm:"type:text"`
	Subtotal       decimal.Decimal   `gorm:"type:decimal(10,2);not null"`
	ShippingPrice  decimal.Decimal   `gorm:"type:decimal(10,2);not null;default:0"`
	TotalPrice     decimal.Decimal   `gorm:"type:decimal(10,2);not null"`
	Status         trade.OrderStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Items          []OrderItemModel  `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *trade.Order {
	order := &trade.Order{
		BaseAggregateRoot: m.Root(),
		OrderNumber:       m.OrderNumber,
		CustomerName:      m.CustomerName,
		PhonePrimary:      m.PhonePrimary,
		PhoneSecondary:    m.PhoneSecondary,
		Address:           m.Address,
		GovernorateID:     m.GovernorateID,
		Notes:             m.Notes,
		Subtotal:          m.Subtotal,
		ShippingPrice:     m.ShippingPrice,
		TotalPrice:        m.TotalPrice,
		Status:            m.Status,
		Items:             make([]trade.OrderItem, len(m.Items)),
	}
	for i := range m.Items {
		order.Items[i] = m.Items[i].ToDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.SetRoot(o.BaseAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.CustomerName = o.CustomerName
	m.PhonePrimary = o.PhonePrimary
	m.PhoneSecondary = o.PhoneSecondary
	m.Address = o.Address
	m.GovernorateID = o.GovernorateID
	m.Notes = o.Notes
	m.Subtotal = o.Subtotal
	m.ShippingPrice = o.ShippingPrice
	m.TotalPrice = o.TotalPrice
	m.Status = o.Status
	m.Items = make([]OrderItemModel, len(o.Items))
	for i := range o.Items {
		m.Items[i].FromDomain(&o.Items[i])
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is the persistence model for a denormalized order line.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   *uuid.UUID      `gorm:"type:uuid"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Color       string          `gorm:"type:varchar(50)"`
	Size        string          `gorm:"type:varchar(20)"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem
func (m *OrderItemModel) ToDomain() trade.OrderItem {
	return trade.OrderItem{
		ID:          m.ID,
		OrderID:     m.OrderID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Color:       m.Color,
		Size:        m.Size,
		Price:       m.Price,
		Quantity:    m.Quantity,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain OrderItem
func (m *OrderItemModel) FromDomain(i *trade.OrderItem) {
	m.ID = i.ID
	m.OrderID = i.OrderID
	m.ProductID = i.ProductID
	m.ProductName = i.ProductName
	m.Color = i.Color
	m.Size = i.Size
	m.Price = i.Price
	m.Quantity = i.Quantity
	m.CreatedAt = i.CreatedAt
}
