package models

import (
	"github.com/alshbh/storefront/internal/domain/shipping"
	"github.com/shopspring/decimal"
)

// GovernorateModel is the persistence model for the Governorate aggregate root.
type GovernorateModel struct {
	AggregateColumns
	Name          string          `gorm:"type:varchar(100);not null"`
	NameAr        string          `gorm:"type:varchar(100);not null"`
	ShippingPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	IsActive      bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (GovernorateModel) TableName() string {
	return "governorates"
}

// ToDomain converts the persistence model to a domain Governorate entity.
func (m *GovernorateModel) ToDomain() *shipping.Governorate {
	return &shipping.Governorate{
		BaseAggregateRoot: m.Root(),
		Name:              m.Name,
		NameAr:            m.NameAr,
		ShippingPrice:     m.ShippingPrice,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Governorate entity.
func (m *GovernorateModel) FromDomain(g *shipping.Governorate) {
	m.SetRoot(g.BaseAggregateRoot)
	m.Name = g.Name
	m.NameAr = g.NameAr
	m.ShippingPrice = g.ShippingPrice
	m.IsActive = g.IsActive
}
