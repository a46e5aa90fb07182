package trade

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/alshbh/storefront/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newOrder(t *testing.T, govID *uuid.UUID) *trade.Order {
	t.Helper()
	order, err := trade.NewOrder(trade.CustomerInfo{
		Name: "Sara Hassan", PhonePrimary: "01001234567", Address: "5 Nile St",
	}, govID, dec("50"))
	require.NoError(t, err)
	_, err = order.AddItem(nil, "فستان", "أزرق", "M", dec("700"), 1)
	require.NoError(t, err)
	order.OrderNumber = 42
	return order
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("persists change and publishes event", func(t *testing.T) {
		order := newOrder(t, nil)
		repo := new(MockOrderRepository)
		publisher := new(MockEventPublisher)
		repo.On("FindByID", ctx, order.ID).Return(order, nil)
		repo.On("UpdateStatus", ctx, order).Return(nil)
		publisher.On("Publish", ctx, mock.Anything).Return(nil)

		svc := NewOrderService(repo, nil, zap.NewNop())
		svc.SetEventPublisher(publisher)

		resp, err := svc.UpdateStatus(ctx, order.ID, UpdateOrderStatusRequest{Status: "shipped"})
		require.NoError(t, err)
		assert.Equal(t, "shipped", resp.Status)
		repo.AssertExpectations(t)
		publisher.AssertNumberOfCalls(t, "Publish", 1)
	})

	t.Run("publish failure is logged, not returned", func(t *testing.T) {
		order := newOrder(t, nil)
		repo := new(MockOrderRepository)
		publisher := new(MockEventPublisher)
		repo.On("FindByID", ctx, order.ID).Return(order, nil)
		repo.On("UpdateStatus", ctx, order).Return(nil)
		publisher.On("Publish", ctx, mock.Anything).Return(errors.New("bus stopped"))
		core, logs := observer.New(zap.WarnLevel)

		svc := NewOrderService(repo, nil, zap.New(core))
		svc.SetEventPublisher(publisher)

		_, err := svc.UpdateStatus(ctx, order.ID, UpdateOrderStatusRequest{Status: "shipped"})
		require.NoError(t, err)
		require.Equal(t, 1, logs.FilterMessage("Failed to publish order events").Len())
		assert.Equal(t, order.ID.String(), logs.All()[0].ContextMap()["order_id"])
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		order := newOrder(t, nil)
		repo := new(MockOrderRepository)
		repo.On("FindByID", ctx, order.ID).Return(order, nil)

		resp, err := NewOrderService(repo, nil, zap.NewNop()).UpdateStatus(ctx, order.ID, UpdateOrderStatusRequest{Status: "pending"})
		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("final status cannot change", func(t *testing.T) {
		order := newOrder(t, nil)
		require.NoError(t, order.UpdateStatus(trade.OrderStatusCanceled))
		repo := new(MockOrderRepository)
		repo.On("FindByID", ctx, order.ID).Return(order, nil)

		_, err := NewOrderService(repo, nil, zap.NewNop()).UpdateStatus(ctx, order.ID, UpdateOrderStatusRequest{Status: "pending"})
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})

	t.Run("missing order", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockOrderRepository)
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := NewOrderService(repo, nil, zap.NewNop()).UpdateStatus(ctx, id, UpdateOrderStatusRequest{Status: "shipped"})
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	repo := new(MockOrderRepository)
	repo.On("Find", ctx, mock.MatchedBy(func(q trade.OrderQuery) bool {
		return q.Status != nil && *q.Status == trade.OrderStatusShipped &&
			q.Search == "0100" && q.Page == 2 && q.PageSize == 10 &&
			q.OrderBy == "total" && q.OrderDir == "asc" &&
			q.From.Equal(from) && q.To.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]trade.Order{*newOrder(t, nil)}, int64(11), nil)

	items, total, err := NewOrderService(repo, nil, zap.NewNop()).List(ctx, OrderListFilter{
		Search: "0100", Status: "shipped", From: &from, To: &to, Page: 2, PageSize: 10,
		SortBy: "total", SortDir: "asc",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	require.Len(t, items, 1)
	assert.Equal(t, int64(42), items[0].OrderNumber)

	_, _, err = NewOrderService(repo, nil, zap.NewNop()).List(ctx, OrderListFilter{From: &to, To: &from})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestOrderService_GetByIDResolvesGovernorate(t *testing.T) {
	ctx := context.Background()
	gov := newGovernorate(t, "50")
	order := newOrder(t, &gov.ID)

	repo := new(MockOrderRepository)
	repo.On("FindByID", ctx, order.ID).Return(order, nil)
	govRepo := new(MockGovernorateRepository)
	govRepo.On("FindByID", ctx, gov.ID).Return(gov, nil)

	resp, err := NewOrderService(repo, govRepo, zap.NewNop()).GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "القاهرة", resp.GovernorateName)
	assert.Equal(t, 1, resp.ItemCount)
	assert.True(t, resp.TotalPrice.Equal(dec("750")))
}

func TestOrderService_Delete(t *testing.T) {
	ctx := context.Background()
	order := newOrder(t, nil)
	repo := new(MockOrderRepository)
	repo.On("FindByID", ctx, order.ID).Return(order, nil)
	repo.On("Delete", ctx, order.ID).Return(nil)
	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, mock.MatchedBy(func(events []shared.DomainEvent) bool {
		return len(events) == 1 && events[0].EventType() == trade.EventTypeOrderDeleted
	})).Return(nil)

	svc := NewOrderService(repo, nil, zap.NewNop())
	svc.SetEventPublisher(publisher)
	require.NoError(t, svc.Delete(ctx, order.ID))
	publisher.AssertExpectations(t)
}

func TestOrderService_StatsListsEveryStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOrderRepository)
	repo.On("Stats", ctx).Return(&trade.OrderStats{
		Total:    3,
		ByStatus: map[trade.OrderStatus]int64{trade.OrderStatusPending: 2, trade.OrderStatusCanceled: 1},
		Revenue:  dec("1500"),
	}, nil)

	stats, err := NewOrderService(repo, nil, zap.NewNop()).Stats(ctx)
	require.NoError(t, err)
	assert.Len(t, stats.ByStatus, len(trade.AllOrderStatuses))
	assert.Equal(t, int64(2), stats.ByStatus["pending"])
	assert.Equal(t, int64(0), stats.ByStatus["delivered"])
	assert.True(t, stats.Revenue.Equal(dec("1500")))
}

func TestOrderEventLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := NewOrderEventLogger(zap.New(core))

	order := newOrder(t, nil)
	require.NoError(t, order.UpdateStatus(trade.OrderStatusPreparing))
	for _, event := range order.PopDomainEvents() {
		require.NoError(t, handler.Handle(context.Background(), event))
	}

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Order status changed event", entry.Message)
	assert.Equal(t, "preparing", entry.ContextMap()["new_status"])
	assert.Len(t, handler.EventTypes(), 3)
}

func TestOrderMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	handler, err := NewOrderMetrics(mp.Meter("trade"))
	require.NoError(t, err)

	order := newOrder(t, nil)
	order.TotalPrice = dec("750")
	require.NoError(t, order.UpdateStatus(trade.OrderStatusPreparing))
	events := append(order.PopDomainEvents(), trade.NewOrderPlacedEvent(order))
	for _, event := range events {
		require.NoError(t, handler.Handle(context.Background(), event))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	got := make(map[string]metricdata.Aggregation)
	for _, m := range rm.ScopeMetrics[0].Metrics {
		got[m.Name] = m.Data
	}

	placed := got["shop.orders.placed"].(metricdata.Sum[int64])
	assert.Equal(t, int64(1), placed.DataPoints[0].Value)
	revenue := got["shop.orders.revenue"].(metricdata.Sum[float64])
	assert.InDelta(t, 750.0, revenue.DataPoints[0].Value, 0.001)
	changes := got["shop.orders.status_changes"].(metricdata.Sum[int64])
	require.Len(t, changes.DataPoints, 1)
	to, _ := changes.DataPoints[0].Attributes.Value("to")
	assert.Equal(t, "preparing", to.AsString())
}
