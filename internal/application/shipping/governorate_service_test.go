package shipping

import (
	"context"
	"testing"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/alshbh/storefront/internal/domain/shipping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func governorate(t *testing.T, nameAr string) shipping.Governorate {
	t.Helper()
	g, err := shipping.NewGovernorate("Gov", nameAr, decimal.NewFromInt(50))
	require.NoError(t, err)
	return *g
}

func TestSortByArabicName(t *testing.T) {
	govs := []shipping.Governorate{
		governorate(t, "بنها"),
		governorate(t, "أسوان"),
		governorate(t, "ابشواي"),
		governorate(t, "إسنا"),
	}

	SortByArabicName(govs)

	var names []string
	for _, g := range govs {
		names = append(names, g.NameAr)
	}
	// hamza forms of alef sort as plain alef
	assert.Equal(t, []string{"ابشواي", "إسنا", "أسوان", "بنها"}, names)
}

func TestGovernorateService_ListActive(t *testing.T) {
	ctx := context.Background()
	repo := new(MockGovernorateRepository)
	repo.On("FindAll", ctx, true).Return([]shipping.Governorate{
		governorate(t, "القاهرة"),
		governorate(t, "الإسكندرية"),
	}, nil)

	items, err := NewGovernorateService(repo).ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "الإسكندرية", items[0].NameAr)
}

func TestGovernorateService_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(MockGovernorateRepository)
	repo.On("Save", ctx, mock.AnythingOfType("*shipping.Governorate")).Return(nil)
	svc := NewGovernorateService(repo)

	inactive := false
	resp, err := svc.Create(ctx, GovernorateRequest{
		Name: "Matrouh", NameAr: "مطروح", ShippingPrice: decimal.RequireFromString("95.5"), IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.True(t, resp.ShippingPrice.Equal(decimal.RequireFromString("95.5")))

	_, err = svc.Create(ctx, GovernorateRequest{Name: "X", NameAr: "س", ShippingPrice: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, shared.NewDomainError("INVALID_PRICE", ""))
}

func TestGovernorateService_Deactivate(t *testing.T) {
	ctx := context.Background()
	g := governorate(t, "الجيزة")
	repo := new(MockGovernorateRepository)
	repo.On("FindByID", ctx, g.ID).Return(&g, nil)
	repo.On("Save", ctx, &g).Return(nil)
	svc := NewGovernorateService(repo)

	resp, err := svc.Deactivate(ctx, g.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	_, err = svc.Deactivate(ctx, g.ID)
	assert.ErrorIs(t, err, shared.NewDomainError("ALREADY_INACTIVE", ""))
}
