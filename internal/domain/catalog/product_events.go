package catalog

import (
	"github.com/alshbh/storefront/internal/domain/shared"
)

const (
	EventTypeProductCreated       = "catalog.product.created"
	EventTypeProductUpdated       = "catalog.product.updated"
	EventTypeProductStatusChanged = "catalog.product.status_changed"
	EventTypeProductDeleted       = "catalog.product.deleted"
)

// ProductEvent covers every product lifecycle change. The payload is a
// snapshot of the fields a storefront cache would need to invalidate.
type ProductEvent struct {
	shared.EventHeader
	Name       string `json:"name"`
	NameAr     string `json:"name_ar"`
	IsActive   bool   `json:"is_active"`
	IsFeatured bool   `json:"is_featured"`
}

func newProductEvent(eventType string, p *Product) *ProductEvent {
	return &ProductEvent{
		EventHeader: shared.NewEventHeader(eventType, p.ID),
		Name:        p.Name,
		NameAr:      p.NameAr,
		IsActive:    p.IsActive,
		IsFeatured:  p.IsFeatured,
	}
}

func NewProductCreatedEvent(p *Product) *ProductEvent {
	return newProductEvent(EventTypeProductCreated, p)
}

func NewProductUpdatedEvent(p *Product) *ProductEvent {
	return newProductEvent(EventTypeProductUpdated, p)
}

// NewProductStatusChangedEvent is raised on activate and deactivate
func NewProductStatusChangedEvent(p *Product) *ProductEvent {
	return newProductEvent(EventTypeProductStatusChanged, p)
}

func NewProductDeletedEvent(p *Product) *ProductEvent {
	return newProductEvent(EventTypeProductDeleted, p)
}
