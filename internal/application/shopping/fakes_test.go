package shopping

import (
	"context"
	"sync"

	"github.com/alshbh/storefront/internal/domain/catalog"
	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// memoryStore is a map-backed SessionStore
type memoryStore[T any] struct {
	mu    sync.Mutex
	items map[string]*T
	saves int
}

func newMemoryStore[T any]() *memoryStore[T] {
	return &memoryStore[T]{items: make(map[string]*T)}
}

func (s *memoryStore[T]) Load(_ context.Context, sessionID string) (*T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[sessionID]
	return v, ok, nil
}

func (s *memoryStore[T]) Save(_ context.Context, sessionID string, value *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[sessionID] = value
	s.saves++
	return nil
}

func (s *memoryStore[T]) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, sessionID)
	return nil
}

// fakeProducts serves products by id; the listing methods are unused here
type fakeProducts struct {
	catalog.ProductRepository
	byID map[uuid.UUID]*catalog.Product
}

func (f *fakeProducts) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

type fakeColors struct {
	catalog.ColorRepository
	byID map[uuid.UUID]*catalog.Color
}

func (f *fakeColors) FindByID(_ context.Context, id uuid.UUID) (*catalog.Color, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

type fakeSizes struct {
	catalog.SizeRepository
	byID map[uuid.UUID]*catalog.Size
}

func (f *fakeSizes) FindByID(_ context.Context, id uuid.UUID) (*catalog.Size, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, shared.ErrNotFound
}
