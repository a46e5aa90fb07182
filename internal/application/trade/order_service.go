package trade

import (
	"context"
	"errors"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/alshbh/storefront/internal/domain/shipping"
	"github.com/alshbh/storefront/internal/domain/trade"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrOrderNotFound is returned for unknown order ids
var ErrOrderNotFound = shared.NewDomainError("NOT_FOUND", "Order not found")

// OrderService handles back-office order operations
type OrderService struct {
	orderRepo       trade.OrderRepository
	governorateRepo shipping.GovernorateRepository
	eventPublisher  shared.EventPublisher
	logger          *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository, governorateRepo shipping.GovernorateRepository, logger *zap.Logger) *OrderService {
	return &OrderService{orderRepo: orderRepo, governorateRepo: governorateRepo, logger: logger}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// List returns a page of orders, newest first
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderListItem, int64, error) {
	query := trade.OrderQuery{
		Filter: shared.NewFilter(filter.Page, filter.PageSize).Sorted(filter.SortBy, filter.SortDir),
	}
	query.Search = filter.Search
	if filter.Status != "" {
		status := trade.OrderStatus(filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown order status")
		}
		query.Status = &status
	}
	query.From = filter.From
	if filter.To != nil {
		// exclusive upper bound at the start of the following day
		end := filter.To.AddDate(0, 0, 1)
		query.To = &end
	}
	if query.From != nil && query.To != nil && !query.From.Before(*query.To) {
		return nil, 0, shared.NewDomainError("INVALID_INPUT", "from must not be after to")
	}

	orders, total, err := s.orderRepo.Find(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	items := make([]OrderListItem, len(orders))
	for i := range orders {
		items[i] = ToOrderListItem(&orders[i])
	}
	return items, total, nil
}

// GetByID returns an order with its items
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order, s.governorateName(ctx, order)), nil
}

// Load returns the domain order, used by packing slip rendering
func (s *OrderService) Load(ctx context.Context, id uuid.UUID) (*trade.Order, string, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return order, s.governorateName(ctx, order), nil
}

// UpdateStatus moves an order to another status
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	before := order.Version
	if err := order.UpdateStatus(trade.OrderStatus(req.Status)); err != nil {
		return nil, err
	}
	if order.Version != before {
		if err := s.orderRepo.UpdateStatus(ctx, order); err != nil {
			return nil, err
		}
		s.publish(ctx, order)
	}
	return ToOrderResponse(order, s.governorateName(ctx, order)), nil
}

// Delete removes an order with its items
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}
	order.MarkDeleted()
	s.publish(ctx, order)
	return nil
}

// Stats returns order counts by status and revenue
func (s *OrderService) Stats(ctx context.Context) (*OrderStatsResponse, error) {
	stats, err := s.orderRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return ToOrderStatsResponse(stats), nil
}

func (s *OrderService) find(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// governorateName resolves the Arabic governorate name; deleted ones yield ""
func (s *OrderService) governorateName(ctx context.Context, order *trade.Order) string {
	if order.GovernorateID == nil || s.governorateRepo == nil {
		return ""
	}
	gov, err := s.governorateRepo.FindByID(ctx, *order.GovernorateID)
	if err != nil {
		return ""
	}
	return gov.NameAr
}

func (s *OrderService) publish(ctx context.Context, order *trade.Order) {
	events := order.PopDomainEvents()
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	// Publish errors do not fail the write
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish order events",
			zap.String("order_id", order.ID.String()), zap.Error(err))
	}
}
