package catalog

import (
	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrSizeNotOffered is returned when a size is not assigned to the product
var ErrSizeNotOffered = shared.NewDomainError("SIZE_NOT_OFFERED", "Size is not available for this product")

// ErrColorNotOffered is returned when a color is not assigned to the product
var ErrColorNotOffered = shared.NewDomainError("COLOR_NOT_OFFERED", "Color is not available for this product")

// PriceQuote is the price of one unit of a product in a given size
type PriceQuote struct {
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal
}

// UnitPrice is what the customer pays per unit
func (q PriceQuote) UnitPrice() decimal.Decimal {
	if q.DiscountPrice != nil {
		return *q.DiscountPrice
	}
	return q.Price
}

// HasDiscount reports whether a discount price is set
func (p *Product) HasDiscount() bool {
	return p.DiscountPrice != nil
}

// EffectivePrice is the discount price when set, otherwise the base price
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// DiscountPercentage is round((price - discount) / price * 100), 0 without discount
func (p *Product) DiscountPercentage() int {
	if p.DiscountPrice == nil || p.Price.IsZero() {
		return 0
	}
	pct := p.Price.Sub(*p.DiscountPrice).Div(p.Price).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

// SizeAdjustment returns the price adjustment for an assigned size
func (p *Product) SizeAdjustment(sizeID uuid.UUID) (decimal.Decimal, bool) {
	for _, s := range p.Sizes {
		if s.SizeID == sizeID {
			return s.PriceAdjustment, true
		}
	}
	return decimal.Zero, false
}

// PriceForSize is the effective price plus the size adjustment, never below zero
func (p *Product) PriceForSize(sizeID uuid.UUID) (decimal.Decimal, error) {
	adj, ok := p.SizeAdjustment(sizeID)
	if !ok {
		return decimal.Zero, ErrSizeNotOffered
	}
	return floorZero(p.EffectivePrice().Add(adj)), nil
}

// Quote prices one unit in the given size. Both the base and the discount
// price carry the size adjustment.
func (p *Product) Quote(sizeID uuid.UUID) (PriceQuote, error) {
	adj, ok := p.SizeAdjustment(sizeID)
	if !ok {
		return PriceQuote{}, ErrSizeNotOffered
	}
	q := PriceQuote{Price: floorZero(p.Price.Add(adj))}
	if p.DiscountPrice != nil {
		d := floorZero(p.DiscountPrice.Add(adj))
		q.DiscountPrice = &d
	}
	return q, nil
}

// LinePrice multiplies a unit price by a quantity
func LinePrice(unit decimal.Decimal, quantity int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d.Round(2)
}
