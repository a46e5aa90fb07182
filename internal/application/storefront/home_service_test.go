package storefront

import (
	"context"
	"errors"
	"testing"

	"github.com/alshbh/storefront/internal/domain/catalog"
	"github.com/alshbh/storefront/internal/domain/marketing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubProducts struct {
	catalog.ProductRepository
	featured   []catalog.Product
	discounted []catalog.Product
	err        error
}

func (s *stubProducts) Find(_ context.Context, q catalog.ProductQuery) ([]catalog.Product, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	if q.Active == nil || !*q.Active || q.PageSize != HomeSectionLimit || q.Sort != catalog.SortNewest {
		return nil, 0, errors.New("unexpected query")
	}
	switch {
	case q.Featured != nil && *q.Featured:
		return s.featured, int64(len(s.featured)), nil
	case q.Discounted:
		return s.discounted, int64(len(s.discounted)), nil
	}
	return nil, 0, errors.New("unexpected section")
}

type stubCategories struct {
	catalog.CategoryRepository
	items []catalog.Category
}

func (s *stubCategories) FindAll(context.Context) ([]catalog.Category, error) {
	return s.items, nil
}

type stubAds struct {
	marketing.AdvertisementRepository
	items []marketing.Advertisement
}

func (s *stubAds) FindAll(_ context.Context, activeOnly bool) ([]marketing.Advertisement, error) {
	if !activeOnly {
		return nil, errors.New("home must only show active banners")
	}
	return s.items, nil
}

func TestHomeService_Home(t *testing.T) {
	featured, err := catalog.NewProduct("Abaya", "عباية", decimal.NewFromInt(900))
	require.NoError(t, err)
	featured.SetFeatured(true)
	discounted, err := catalog.NewProduct("Scarf", "وشاح", decimal.NewFromInt(200))
	require.NoError(t, err)
	cut := decimal.NewFromInt(150)
	require.NoError(t, discounted.SetPricing(decimal.NewFromInt(200), &cut))
	category, err := catalog.NewCategory("Abayas", "عبايات")
	require.NoError(t, err)
	ad, err := marketing.NewAdvertisement(marketing.AdvertisementContent{Title: "Eid", ImageURL: "https://cdn/eid.jpg"})
	require.NoError(t, err)

	svc := NewHomeService(
		&stubProducts{featured: []catalog.Product{*featured}, discounted: []catalog.Product{*discounted}},
		&stubCategories{items: []catalog.Category{*category}},
		&stubAds{items: []marketing.Advertisement{*ad}},
	)

	home, err := svc.Home(context.Background())
	require.NoError(t, err)
	require.Len(t, home.Advertisements, 1)
	require.Len(t, home.Categories, 1)
	require.Len(t, home.Featured, 1)
	require.Len(t, home.Discounted, 1)
	assert.Equal(t, "عباية", home.Featured[0].NameAr)
	assert.Equal(t, 25, home.Discounted[0].DiscountPercentage)
}

func TestHomeService_FailingSectionFailsPage(t *testing.T) {
	boom := errors.New("db down")
	svc := NewHomeService(&stubProducts{err: boom}, &stubCategories{}, &stubAds{})

	_, err := svc.Home(context.Background())
	assert.ErrorIs(t, err, boom)
}
