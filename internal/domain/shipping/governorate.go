package shipping

import (
	"strings"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Governorate is a shipping zone with a flat delivery fee
type Governorate struct {
	shared.BaseAggregateRoot
	Name          string
	NameAr        string
	ShippingPrice decimal.Decimal
	IsActive      bool
}

// NewGovernorate creates a new active governorate
func NewGovernorate(name, nameAr string, shippingPrice decimal.Decimal) (*Governorate, error) {
	g := &Governorate{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		IsActive:          true,
	}
	if err := g.apply(name, nameAr, shippingPrice); err != nil {
		return nil, err
	}
	return g, nil
}

// Update changes names and shipping fee
func (g *Governorate) Update(name, nameAr string, shippingPrice decimal.Decimal) error {
	if err := g.apply(name, nameAr, shippingPrice); err != nil {
		return err
	}
	g.touch()
	return nil
}

// Activate makes the governorate selectable at checkout
func (g *Governorate) Activate() error {
	if g.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Governorate is already active")
	}
	g.IsActive = true
	g.touch()
	return nil
}

// Deactivate stops shipping to the governorate
func (g *Governorate) Deactivate() error {
	if !g.IsActive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Governorate is already inactive")
	}
	g.IsActive = false
	g.touch()
	return nil
}

func (g *Governorate) apply(name, nameAr string, shippingPrice decimal.Decimal) error {
	name, nameAr = strings.TrimSpace(name), strings.TrimSpace(nameAr)
	if name == "" || nameAr == "" {
		return shared.NewDomainError("INVALID_NAME", "Governorate name cannot be empty")
	}
	if len([]rune(name)) > 100 || len([]rune(nameAr)) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Governorate name cannot exceed 100 characters")
	}
	if shippingPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Shipping price cannot be negative")
	}
	g.Name, g.NameAr, g.ShippingPrice = name, nameAr, shippingPrice.Round(2)
	return nil
}

func (g *Governorate) touch() {
	g.MarkModified()
}
