package trade

import (
	"context"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/alshbh/storefront/internal/domain/trade"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// OrderEventLogger records order lifecycle events in the application log
type OrderEventLogger struct {
	logger *zap.Logger
}

// NewOrderEventLogger creates a new OrderEventLogger
func NewOrderEventLogger(logger *zap.Logger) *OrderEventLogger {
	return &OrderEventLogger{logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *OrderEventLogger) EventTypes() []string {
	return []string{
		trade.EventTypeOrderPlaced,
		trade.EventTypeOrderStatusChanged,
		trade.EventTypeOrderDeleted,
	}
}

// Handle logs the event
func (h *OrderEventLogger) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *trade.OrderPlacedEvent:
		h.logger.Info("Order placed event",
			zap.String("event_id", e.EventID().String()),
			zap.String("order_id", e.AggregateID().String()),
			zap.Int64("order_number", e.OrderNumber),
			zap.String("customer_name", e.CustomerName),
			zap.Int("item_count", e.ItemCount),
			zap.String("total_price", e.TotalPrice.StringFixed(2)),
		)
	case *trade.OrderStatusChangedEvent:
		h.logger.Info("Order status changed event",
			zap.String("event_id", e.EventID().String()),
			zap.String("order_id", e.AggregateID().String()),
			zap.Int64("order_number", e.OrderNumber),
			zap.String("old_status", string(e.From)),
			zap.String("new_status", string(e.To)),
		)
	case *trade.OrderDeletedEvent:
		h.logger.Info("Order deleted event",
			zap.String("event_id", e.EventID().String()),
			zap.String("order_id", e.AggregateID().String()),
			zap.Int64("order_number", e.OrderNumber),
		)
	default:
		h.logger.Debug("Ignoring unexpected event", zap.String("event_type", event.EventType()))
	}
	return nil
}

// OrderMetrics counts placed orders, their revenue and status changes
type OrderMetrics struct {
	placed  metric.Int64Counter
	revenue metric.Float64Counter
	changes metric.Int64Counter
}

func NewOrderMetrics(meter metric.Meter) (*OrderMetrics, error) {
	placed, err := meter.Int64Counter("shop.orders.placed",
		metric.WithDescription("Orders placed at checkout"),
		metric.WithUnit("{order}"))
	if err != nil {
		return nil, err
	}
	revenue, err := meter.Float64Counter("shop.orders.revenue",
		metric.WithDescription("Order totals including shipping"),
		metric.WithUnit("EGP"))
	if err != nil {
		return nil, err
	}
	changes, err := meter.Int64Counter("shop.orders.status_changes",
		metric.WithDescription("Order status transitions"),
		metric.WithUnit("{change}"))
	if err != nil {
		return nil, err
	}
	return &OrderMetrics{placed: placed, revenue: revenue, changes: changes}, nil
}

func (m *OrderMetrics) EventTypes() []string {
	return []string{trade.EventTypeOrderPlaced, trade.EventTypeOrderStatusChanged}
}

func (m *OrderMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *trade.OrderPlacedEvent:
		m.placed.Add(ctx, 1)
		m.revenue.Add(ctx, e.TotalPrice.InexactFloat64())
	case *trade.OrderStatusChangedEvent:
		m.changes.Add(ctx, 1, metric.WithAttributes(
			attribute.String("from", string(e.From)),
			attribute.String("to", string(e.To)),
		))
	}
	return nil
}

var (
	_ shared.EventHandler = (*OrderEventLogger)(nil)
	_ shared.EventHandler = (*OrderMetrics)(nil)
)
