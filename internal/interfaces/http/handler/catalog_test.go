package handler

import (
	"net/http"
	"testing"

	catalogapp "github.com/alshbh/storefront/internal/application/catalog"
	marketingapp "github.com/alshbh/storefront/internal/application/marketing"
	shippingapp "github.com/alshbh/storefront/internal/application/shipping"
	"github.com/alshbh/storefront/internal/application/storefront"
	"github.com/alshbh/storefront/internal/interfaces/http/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerPublicRoutes(env *testEnv) {
	catalog := NewCatalogHandler(env.products, env.categories, env.attributes)
	env.engine.GET("/catalog/products", catalog.ListProducts)
	env.engine.GET("/catalog/products/:id", catalog.GetProduct)
	env.engine.GET("/catalog/categories", catalog.ListCategories)
	env.engine.GET("/catalog/colors", catalog.ListColors)
	env.engine.GET("/catalog/sizes", catalog.ListSizes)
	env.engine.GET("/storefront/home", NewStorefrontHandler(env.home).Home)
	env.engine.GET("/shipping/governorates", NewGovernorateHandler(env.governorates).ListActive)
	env.engine.GET("/marketing/advertisements", NewAdvertisementHandler(env.ads).ListActive)
}

func productNames(items []catalogapp.ProductListItem) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	env := newTestEnv(t)
	registerPublicRoutes(env)
	env.seedProduct(t, "Kaftan", "800")
	env.seedProduct(t, "Hijab", "90")
	hidden := env.seedProduct(t, "Old Coat", "400")
	_, err := env.products.Deactivate(t.Context(), hidden.ID)
	require.NoError(t, err)

	w := env.do(http.MethodGet, "/catalog/products?sort=price-low", nil)
	requireStatus(t, w, http.StatusOK)
	env1 := decode[[]catalogapp.ProductListItem](t, w)
	assert.Equal(t, []string{"Hijab", "Kaftan"}, productNames(env1.Data))
	require.NotNil(t, env1.Meta)
	assert.Equal(t, int64(2), env1.Meta.Total)
	assert.Equal(t, 1, env1.Meta.Page)

	w = env.do(http.MethodGet, "/catalog/products?sort=price-high&page_size=1&page=2", nil)
	requireStatus(t, w, http.StatusOK)
	page := decode[[]catalogapp.ProductListItem](t, w)
	assert.Equal(t, []string{"Hijab"}, productNames(page.Data))
	assert.Equal(t, 2, page.Meta.TotalPages)

	w = env.do(http.MethodGet, "/catalog/products?min_price=100&max_price=1000", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, []string{"Kaftan"}, productNames(decode[[]catalogapp.ProductListItem](t, w).Data))
}

func TestCatalogHandler_ListProductsRejectsBadQuery(t *testing.T) {
	env := newTestEnv(t)
	registerPublicRoutes(env)

	for _, query := range []string{"sort=cheapest", "page_size=500", "category_id=abc", "min_price=-1"} {
		t.Run(query, func(t *testing.T) {
			w := env.do(http.MethodGet, "/catalog/products?"+query, nil)
			requireStatus(t, w, http.StatusBadRequest)
			assert.Equal(t, dto.ErrCodeValidation, errorCode(t, w))
		})
	}

	w := env.do(http.MethodGet, "/catalog/products?min_price=500&max_price=100", nil)
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, w))
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	env := newTestEnv(t)
	registerPublicRoutes(env)
	visible := env.seedProduct(t, "Maxi Dress", "650.50")
	hidden := env.seedProduct(t, "Draft", "10")
	_, err := env.products.Deactivate(t.Context(), hidden.ID)
	require.NoError(t, err)

	w := env.do(http.MethodGet, "/catalog/products/"+visible.ID.String(), nil)
	requireStatus(t, w, http.StatusOK)
	product := decode[catalogapp.ProductResponse](t, w).Data
	assert.Equal(t, "Maxi Dress", product.Name)
	assert.True(t, decimal.RequireFromString("650.50").Equal(product.Price))

	tests := []struct {
		name   string
		id     string
		status int
		code   string
	}{
		{"inactive is hidden", hidden.ID.String(), http.StatusNotFound, dto.ErrCodeNotFound},
		{"unknown", uuid.NewString(), http.StatusNotFound, dto.ErrCodeNotFound},
		{"malformed id", "dress-1", http.StatusBadRequest, dto.ErrCodeInvalidID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodGet, "/catalog/products/"+tt.id, nil)
			requireStatus(t, w, tt.status)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}

func TestCatalogHandler_Attributes(t *testing.T) {
	env := newTestEnv(t)
	registerPublicRoutes(env)
	_, err := env.categories.Create(t.Context(), catalogapp.CategoryRequest{Name: "Dresses", NameAr: "فساتين"})
	require.NoError(t, err)
	_, err = env.attributes.CreateColor(t.Context(), catalogapp.ColorRequest{Name: "Black", NameAr: "أسود", HexCode: "#000000"})
	require.NoError(t, err)
	_, err = env.attributes.CreateSize(t.Context(), catalogapp.SizeRequest{Name: "L", SortOrder: 3})
	require.NoError(t, err)
	_, err = env.attributes.CreateSize(t.Context(), catalogapp.SizeRequest{Name: "S", SortOrder: 1})
	require.NoError(t, err)

	w := env.do(http.MethodGet, "/catalog/categories", nil)
	requireStatus(t, w, http.StatusOK)
	categories := decode[[]catalogapp.CategoryResponse](t, w).Data
	require.Len(t, categories, 1)
	assert.Equal(t, "فساتين", categories[0].NameAr)

	w = env.do(http.MethodGet, "/catalog/colors", nil)
	requireStatus(t, w, http.StatusOK)
	colors := decode[[]catalogapp.ColorResponse](t, w).Data
	require.Len(t, colors, 1)
	assert.Equal(t, "#000000", colors[0].HexCode)

	w = env.do(http.MethodGet, "/catalog/sizes", nil)
	requireStatus(t, w, http.StatusOK)
	sizes := decode[[]catalogapp.SizeResponse](t, w).Data
	require.Len(t, sizes, 2)
	assert.Equal(t, "S", sizes[0].Name, "sizes are ordered by sort order")
}

func TestStorefrontHandler_Home(t *testing.T) {
	env := newTestEnv(t)
	registerPublicRoutes(env)

	featured := env.seedProduct(t, "Evening Gown", "1200")
	_, err := env.products.SetFeatured(t.Context(), featured.ID, catalogapp.SetFeaturedRequest{Featured: true})
	require.NoError(t, err)
	env.seedProduct(t, "Plain Tee", "150")

	_, err = env.ads.Create(t.Context(), marketingapp.AdvertisementRequest{
		Title:    "Summer Sale",
		ImageURL: "https://cdn.example.com/banners/summer.jpg",
	})
	require.NoError(t, err)
	inactive := false
	_, err = env.ads.Create(t.Context(), marketingapp.AdvertisementRequest{
		Title:    "Hidden",
		ImageURL: "https://cdn.example.com/banners/hidden.jpg",
		IsActive: &inactive,
	})
	require.NoError(t, err)

	w := env.do(http.MethodGet, "/storefront/home", nil)
	requireStatus(t, w, http.StatusOK)
	home := decode[storefront.HomeResponse](t, w).Data
	assert.Equal(t, []string{"Evening Gown"}, productNames(home.Featured))
	require.Len(t, home.Advertisements, 1)
	assert.Equal(t, "Summer Sale", home.Advertisements[0].Title)
	assert.Empty(t, home.Discounted)

	w = env.do(http.MethodGet, "/marketing/advertisements", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decode[[]marketingapp.AdvertisementResponse](t, w).Data, 1)
}

func TestGovernorateHandler_ListActive(t *testing.T) {
	env := newTestEnv(t)
	registerPublicRoutes(env)
	env.seedGovernorate(t, "Cairo", "30")
	closed := env.seedGovernorate(t, "Matrouh", "150")
	_, err := env.governorates.Deactivate(t.Context(), closed.ID)
	require.NoError(t, err)

	w := env.do(http.MethodGet, "/shipping/governorates", nil)
	requireStatus(t, w, http.StatusOK)
	govs := decode[[]shippingapp.GovernorateResponse](t, w).Data
	require.Len(t, govs, 1)
	assert.Equal(t, "Cairo", govs[0].Name)
	assert.True(t, decimal.RequireFromString("30").Equal(govs[0].ShippingPrice))
}
