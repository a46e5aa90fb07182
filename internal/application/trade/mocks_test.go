package trade

import (
	"context"
	"time"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/alshbh/storefront/internal/domain/shipping"
	"github.com/alshbh/storefront/internal/domain/shopping"
	"github.com/alshbh/storefront/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) Find(ctx context.Context, query trade.OrderQuery) ([]trade.Order, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]trade.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Stats(ctx context.Context) (*trade.OrderStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.OrderStats), args.Error(1)
}

// MockGovernorateRepository is a mock implementation of GovernorateRepository
type MockGovernorateRepository struct {
	mock.Mock
}

func (m *MockGovernorateRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.Governorate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.Governorate), args.Error(1)
}

func (m *MockGovernorateRepository) FindAll(ctx context.Context, activeOnly bool) ([]shipping.Governorate, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.Governorate), args.Error(1)
}

func (m *MockGovernorateRepository) Save(ctx context.Context, g *shipping.Governorate) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGovernorateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore
type MockIdempotencyStore struct {
	mock.Mock
}

func (m *MockIdempotencyStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Claimed(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockIdempotencyStore) Close() error { return nil }

// MockEventPublisher records published events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// memoryCartStore is a map-backed CartStore
type memoryCartStore struct {
	carts   map[string]*shopping.Cart
	deleted []string
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{carts: make(map[string]*shopping.Cart)}
}

func (s *memoryCartStore) Load(_ context.Context, sessionID string) (*shopping.Cart, bool, error) {
	cart, ok := s.carts[sessionID]
	return cart, ok, nil
}

func (s *memoryCartStore) Save(_ context.Context, sessionID string, cart *shopping.Cart) error {
	s.carts[sessionID] = cart
	return nil
}

func (s *memoryCartStore) Delete(_ context.Context, sessionID string) error {
	delete(s.carts, sessionID)
	s.deleted = append(s.deleted, sessionID)
	return nil
}
