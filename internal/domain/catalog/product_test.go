package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func newTestProduct(t *testing.T) *Product {
	t.Helper()
	p, err := NewProduct("Linen Shirt", "قميص كتان", dec("450"))
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("creates active product", func(t *testing.T) {
		p := newTestProduct(t)

		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.Equal(t, "Linen Shirt", p.Name)
		assert.Equal(t, "قميص كتان", p.NameAr)
		assert.True(t, p.Price.Equal(dec("450")))
		assert.True(t, p.IsActive)
		assert.False(t, p.IsFeatured)
		assert.Nil(t, p.DiscountPrice)
		assert.Equal(t, 1, p.GetVersion())
	})

	t.Run("publishes ProductCreated event", func(t *testing.T) {
		p := newTestProduct(t)
		events := p.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductCreated, events[0].EventType())
		assert.Equal(t, p.ID, events[0].AggregateID())
	})

	t.Run("fails with empty names", func(t *testing.T) {
		_, err := NewProduct("", "قميص", dec("10"))
		require.Error(t, err)
		_, err = NewProduct("Shirt", "  ", dec("10"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with non-positive price", func(t *testing.T) {
		_, err := NewProduct("Shirt", "قميص", decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "greater than zero")
	})
}

func TestProduct_SetPricing(t *testing.T) {
	p := newTestProduct(t)

	t.Run("accepts discount below price", func(t *testing.T) {
		require.NoError(t, p.SetPricing(dec("500"), decPtr("400")))
		assert.True(t, p.Price.Equal(dec("500")))
		require.NotNil(t, p.DiscountPrice)
		assert.True(t, p.DiscountPrice.Equal(dec("400")))
	})

	t.Run("rejects discount equal to price", func(t *testing.T) {
		err := p.SetPricing(dec("500"), decPtr("500"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lower than the price")
	})

	t.Run("rejects zero discount", func(t *testing.T) {
		require.Error(t, p.SetPricing(dec("500"), decPtr("0")))
	})

	t.Run("clears discount", func(t *testing.T) {
		require.NoError(t, p.SetPricing(dec("500"), nil))
		assert.Nil(t, p.DiscountPrice)
	})
}

func TestProduct_PriceComputation(t *testing.T) {
	small, large := uuid.New(), uuid.New()

	p := newTestProduct(t)
	require.NoError(t, p.SetSizes([]ProductSize{
		{SizeID: small, PriceAdjustment: decimal.Zero},
		{SizeID: large, PriceAdjustment: dec("25")},
	}))

	t.Run("without discount", func(t *testing.T) {
		assert.True(t, p.EffectivePrice().Equal(dec("450")))
		assert.Equal(t, 0, p.DiscountPercentage())

		price, err := p.PriceForSize(large)
		require.NoError(t, err)
		assert.True(t, price.Equal(dec("475")))
	})

	t.Run("with discount", func(t *testing.T) {
		require.NoError(t, p.SetPricing(dec("450"), decPtr("300")))
		assert.True(t, p.EffectivePrice().Equal(dec("300")))
		// (450-300)/450 = 33.33%
		assert.Equal(t, 33, p.DiscountPercentage())

		price, err := p.PriceForSize(large)
		require.NoError(t, err)
		assert.True(t, price.Equal(dec("325")))

		q, err := p.Quote(large)
		require.NoError(t, err)
		assert.True(t, q.Price.Equal(dec("475")))
		require.NotNil(t, q.DiscountPrice)
		assert.True(t, q.DiscountPrice.Equal(dec("325")))
		assert.True(t, q.UnitPrice().Equal(dec("325")))
	})

	t.Run("unknown size", func(t *testing.T) {
		_, err := p.PriceForSize(uuid.New())
		assert.ErrorIs(t, err, ErrSizeNotOffered)
		_, err = p.Quote(uuid.New())
		assert.ErrorIs(t, err, ErrSizeNotOffered)
	})

	t.Run("negative adjustment floors at zero", func(t *testing.T) {
		tiny := uuid.New()
		require.NoError(t, p.SetSizes([]ProductSize{{SizeID: tiny, PriceAdjustment: dec("-1000")}}))
		price, err := p.PriceForSize(tiny)
		require.NoError(t, err)
		assert.True(t, price.IsZero())
	})

	t.Run("line price", func(t *testing.T) {
		assert.True(t, LinePrice(dec("99.99"), 3).Equal(dec("299.97")))
	})
}

func TestProduct_DiscountPercentageRounding(t *testing.T) {
	p := newTestProduct(t)
	require.NoError(t, p.SetPricing(dec("200"), decPtr("149")))
	// 25.5% rounds half up
	assert.Equal(t, 26, p.DiscountPercentage())
}

func TestProduct_ReplaceImages(t *testing.T) {
	p := newTestProduct(t)

	require.NoError(t, p.ReplaceImages([]string{"https://cdn/a.jpg", "https://cdn/b.jpg"}))
	require.Len(t, p.Images, 2)
	assert.True(t, p.Images[0].IsPrimary)
	assert.False(t, p.Images[1].IsPrimary)
	assert.Equal(t, 1, p.Images[1].SortOrder)
	assert.Equal(t, p.ID, p.Images[0].ProductID)
	assert.Equal(t, "https://cdn/a.jpg", p.PrimaryImageURL())

	require.Error(t, p.ReplaceImages([]string{""}))

	require.NoError(t, p.ReplaceImages(nil))
	assert.Empty(t, p.PrimaryImageURL())
}

func TestProduct_PrimaryImageFallsBackToFirst(t *testing.T) {
	p := newTestProduct(t)
	p.Images = []ProductImage{{ImageURL: "first.jpg"}, {ImageURL: "second.jpg"}}
	assert.Equal(t, "first.jpg", p.PrimaryImageURL())
}

func TestProduct_ColorsAndSizes(t *testing.T) {
	p := newTestProduct(t)
	red := uuid.New()

	require.NoError(t, p.SetColors([]uuid.UUID{red}))
	assert.True(t, p.HasColor(red))
	assert.False(t, p.HasColor(uuid.New()))

	err := p.SetColors([]uuid.UUID{red, red})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than once")

	m := uuid.New()
	err = p.SetSizes([]ProductSize{{SizeID: m}, {SizeID: m}})
	require.Error(t, err)
	require.NoError(t, p.SetSizes([]ProductSize{{SizeID: m}}))
	assert.True(t, p.HasSize(m))
}

func TestProduct_StatusChanges(t *testing.T) {
	p := newTestProduct(t)
	p.PopDomainEvents()

	err := p.Activate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already active")

	require.NoError(t, p.Deactivate())
	assert.False(t, p.IsActive)
	require.Error(t, p.Deactivate())

	require.NoError(t, p.Activate())
	assert.True(t, p.IsActive)

	events := p.DomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, EventTypeProductStatusChanged, events[0].EventType())

	p.SetFeatured(true)
	assert.True(t, p.IsFeatured)
}

func TestProduct_SetRating(t *testing.T) {
	p := newTestProduct(t)
	require.NoError(t, p.SetRating(decPtr("4.5")))
	require.Error(t, p.SetRating(decPtr("5.1")))
	require.Error(t, p.SetRating(decPtr("-1")))
	require.NoError(t, p.SetRating(nil))
	assert.Nil(t, p.Rating)
}

func TestProductSort_IsValid(t *testing.T) {
	assert.True(t, SortNewest.IsValid())
	assert.True(t, SortRating.IsValid())
	assert.False(t, ProductSort("cheapest").IsValid())
}
