package trade

import (
	"context"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/alshbh/storefront/internal/domain/trade"
	"github.com/google/uuid"
)

// Document is a rendered file ready to be sent to the client
type Document struct {
	ContentType string
	Filename    string
	Body        []byte
}

// PackingSlip is the data printed on an order's packing slip
type PackingSlip struct {
	Order           *trade.Order
	GovernorateName string
}

// SlipRenderer turns a packing slip into a printable document
type SlipRenderer interface {
	RenderPackingSlip(ctx context.Context, slip PackingSlip) (*Document, error)
}

// ErrPrintingUnavailable is returned when no slip renderer is configured
var ErrPrintingUnavailable = shared.NewDomainError("PRINTING_UNAVAILABLE", "Packing slip printing is not configured")

// PackingSlipService renders packing slips for stored orders
type PackingSlipService struct {
	orders   *OrderService
	renderer SlipRenderer
}

// NewPackingSlipService creates a PackingSlipService
func NewPackingSlipService(orders *OrderService, renderer SlipRenderer) *PackingSlipService {
	return &PackingSlipService{orders: orders, renderer: renderer}
}

// Render loads the order and renders its slip
func (s *PackingSlipService) Render(ctx context.Context, orderID uuid.UUID) (*Document, error) {
	if s.renderer == nil {
		return nil, ErrPrintingUnavailable
	}
	order, governorate, err := s.orders.Load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderPackingSlip(ctx, PackingSlip{Order: order, GovernorateName: governorate})
}
