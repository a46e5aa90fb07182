package persistence

import (
	"context"
	"testing"

	"github.com/alshbh/storefront/internal/domain/catalog"
	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormCategoryRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCategoryRepository(db)
	ctx := context.Background()

	dresses, err := catalog.NewCategory("Dresses", "فساتين")
	require.NoError(t, err)
	abayas, err := catalog.NewCategory("Abayas", "عبايات")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, dresses))
	require.NoError(t, repo.Save(ctx, abayas))

	t.Run("find all ordered by name", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Abayas", all[0].Name)
		assert.Equal(t, "Dresses", all[1].Name)
	})

	t.Run("exists by name ignores case", func(t *testing.T) {
		exists, err := repo.NameTaken(ctx, "  dresses ", nil)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.NameTaken(ctx, "Dresses", &dresses.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("duplicate name maps to already exists", func(t *testing.T) {
		dup, err := catalog.NewCategory("Dresses", "فساتين ٢")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Save(ctx, dup), shared.ErrAlreadyExists)
	})

	t.Run("update", func(t *testing.T) {
		require.NoError(t, dresses.Update("Evening Dresses", "فساتين سهرة"))
		require.NoError(t, repo.Save(ctx, dresses))

		found, err := repo.FindByID(ctx, dresses.ID)
		require.NoError(t, err)
		assert.Equal(t, "Evening Dresses", found.Name)
		assert.Equal(t, "فساتين سهرة", found.NameAr)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, abayas.ID))
		_, err := repo.FindByID(ctx, abayas.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, abayas.ID), shared.ErrNotFound)
	})
}

func TestGormColorRepository_DeleteRemovesAssignments(t *testing.T) {
	db := setupTestDB(t)
	colors := NewGormColorRepository(db)
	products := NewGormProductRepository(db)
	ctx := context.Background()

	red, err := catalog.NewColor("Red", "أحمر", "#ff0000")
	require.NoError(t, err)
	black, err := catalog.NewColor("Black", "أسود", "000")
	require.NoError(t, err)
	require.NoError(t, colors.Save(ctx, red))
	require.NoError(t, colors.Save(ctx, black))

	all, err := colors.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Black", all[0].Name)
	assert.Equal(t, "#000", all[0].HexCode)

	byIDs, err := colors.FindByIDs(ctx, []uuid.UUID{red.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, byIDs, 1)
	assert.Equal(t, "#FF0000", byIDs[0].HexCode)

	p, err := catalog.NewProduct("Kaftan", "قفطان", decimal.NewFromInt(700))
	require.NoError(t, err)
	require.NoError(t, p.SetColors([]uuid.UUID{red.ID, black.ID}))
	require.NoError(t, products.Save(ctx, p))

	require.NoError(t, colors.Delete(ctx, red.ID))

	reloaded, err := products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{black.ID}, reloaded.ColorIDs)

	assert.ErrorIs(t, colors.Delete(ctx, red.ID), shared.ErrNotFound)
}

func TestGormSizeRepository(t *testing.T) {
	db := setupTestDB(t)
	sizes := NewGormSizeRepository(db)
	products := NewGormProductRepository(db)
	ctx := context.Background()

	xl, err := catalog.NewSize("XL", 4)
	require.NoError(t, err)
	s, err := catalog.NewSize("S", 1)
	require.NoError(t, err)
	m, err := catalog.NewSize("M", 2)
	require.NoError(t, err)
	for _, size := range []*catalog.Size{xl, s, m} {
		require.NoError(t, sizes.Save(ctx, size))
	}

	t.Run("ordered by sort order", func(t *testing.T) {
		all, err := sizes.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"S", "M", "XL"}, []string{all[0].Name, all[1].Name, all[2].Name})

		some, err := sizes.FindByIDs(ctx, []uuid.UUID{xl.ID, s.ID})
		require.NoError(t, err)
		require.Len(t, some, 2)
		assert.Equal(t, "S", some[0].Name)
	})

	t.Run("empty id list", func(t *testing.T) {
		none, err := sizes.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("delete removes product sizes", func(t *testing.T) {
		p, err := catalog.NewProduct("Jeans", "جينز", decimal.NewFromInt(600))
		require.NoError(t, err)
		require.NoError(t, p.SetSizes([]catalog.ProductSize{
			{SizeID: m.ID},
			{SizeID: xl.ID, PriceAdjustment: decimal.NewFromInt(50)},
		}))
		require.NoError(t, products.Save(ctx, p))

		require.NoError(t, sizes.Delete(ctx, xl.ID))

		reloaded, err := products.FindByID(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, reloaded.Sizes, 1)
		assert.Equal(t, m.ID, reloaded.Sizes[0].SizeID)
	})
}
