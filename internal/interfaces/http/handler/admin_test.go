package handler

import (
	"net/http"
	"testing"

	catalogapp "github.com/alshbh/storefront/internal/application/catalog"
	marketingapp "github.com/alshbh/storefront/internal/application/marketing"
	shippingapp "github.com/alshbh/storefront/internal/application/shipping"
	"github.com/alshbh/storefront/internal/interfaces/http/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAdminCatalogRoutes(env *testEnv) {
	products := NewProductHandler(env.products)
	p := env.adminGroup("/admin/products")
	p.GET("", products.List)
	p.POST("", products.Create)
	p.GET("/:id", products.GetByID)
	p.PUT("/:id", products.Update)
	p.DELETE("/:id", products.Delete)
	p.POST("/:id/activate", products.Activate)
	p.POST("/:id/deactivate", products.Deactivate)
	p.PUT("/:id/featured", products.SetFeatured)

	categories := NewCategoryHandler(env.categories)
	c := env.adminGroup("/admin/categories")
	c.GET("", categories.List)
	c.POST("", categories.Create)
	c.GET("/:id", categories.GetByID)
	c.PUT("/:id", categories.Update)
	c.DELETE("/:id", categories.Delete)

	attributes := NewAttributeHandler(env.attributes)
	a := env.adminGroup("/admin")
	a.GET("/colors", attributes.ListColors)
	a.POST("/colors", attributes.CreateColor)
	a.PUT("/colors/:id", attributes.UpdateColor)
	a.DELETE("/colors/:id", attributes.DeleteColor)
	a.GET("/sizes", attributes.ListSizes)
	a.POST("/sizes", attributes.CreateSize)
	a.PUT("/sizes/:id", attributes.UpdateSize)
	a.DELETE("/sizes/:id", attributes.DeleteSize)

	governorates := NewGovernorateHandler(env.governorates)
	g := env.adminGroup("/admin/governorates")
	g.GET("", governorates.List)
	g.POST("", governorates.Create)
	g.GET("/:id", governorates.GetByID)
	g.PUT("/:id", governorates.Update)
	g.DELETE("/:id", governorates.Delete)
	g.POST("/:id/activate", governorates.Activate)
	g.POST("/:id/deactivate", governorates.Deactivate)

	ads := NewAdvertisementHandler(env.ads)
	m := env.adminGroup("/admin/advertisements")
	m.GET("", ads.List)
	m.POST("", ads.Create)
	m.GET("/:id", ads.GetByID)
	m.PUT("/:id", ads.Update)
	m.DELETE("/:id", ads.Delete)
	m.POST("/:id/activate", ads.Activate)
	m.POST("/:id/deactivate", ads.Deactivate)
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	env := newTestEnv(t)
	registerAdminCatalogRoutes(env)

	for _, path := range []string{"/admin/products", "/admin/categories", "/admin/colors", "/admin/sizes", "/admin/governorates", "/admin/advertisements"} {
		t.Run(path, func(t *testing.T) {
			w := env.do(http.MethodGet, path, nil)
			requireStatus(t, w, http.StatusUnauthorized)
		})
	}
}

func TestProductHandler_CRUD(t *testing.T) {
	env := newTestEnv(t)
	registerAdminCatalogRoutes(env)
	auth := []string{"Authorization", "Bearer " + env.accessToken(t)}

	category, err := env.categories.Create(t.Context(), catalogapp.CategoryRequest{Name: "Dresses", NameAr: "فساتين"})
	require.NoError(t, err)
	color, err := env.attributes.CreateColor(t.Context(), catalogapp.ColorRequest{Name: "Red", NameAr: "أحمر", HexCode: "#FF0000"})
	require.NoError(t, err)
	size, err := env.attributes.CreateSize(t.Context(), catalogapp.SizeRequest{Name: "XL", SortOrder: 4})
	require.NoError(t, err)

	w := env.do(http.MethodPost, "/admin/products", map[string]any{
		"name":           "Satin Dress",
		"name_ar":        "فستان ساتان",
		"price":          "900",
		"discount_price": "750",
		"category_id":    category.ID,
		"images":         []string{"https://cdn.example.com/p/satin-1.jpg", "https://cdn.example.com/p/satin-2.jpg"},
		"color_ids":      []uuid.UUID{color.ID},
		"sizes":          []map[string]any{{"size_id": size.ID, "price_adjustment": "50"}},
	}, auth...)
	requireStatus(t, w, http.StatusCreated)
	created := decode[catalogapp.ProductResponse](t, w).Data
	assert.True(t, created.IsActive)
	assert.Equal(t, 17, created.DiscountPercentage)
	assert.Equal(t, "https://cdn.example.com/p/satin-1.jpg", created.ImageURL)
	require.NotNil(t, created.Category)
	assert.Equal(t, "Dresses", created.Category.Name)
	require.Len(t, created.Colors, 1)
	require.Len(t, created.Sizes, 1)
	assert.True(t, decimal.RequireFromString("800").Equal(created.Sizes[0].FinalPrice), created.Sizes[0].FinalPrice.String())

	id := created.ID.String()

	w = env.do(http.MethodPut, "/admin/products/"+id, map[string]any{
		"name":    "Satin Dress",
		"name_ar": "فستان ساتان",
		"price":   "950",
	}, auth...)
	requireStatus(t, w, http.StatusOK)
	updated := decode[catalogapp.ProductResponse](t, w).Data
	assert.True(t, decimal.RequireFromString("950").Equal(updated.Price))
	assert.Nil(t, updated.DiscountPrice)
	assert.Empty(t, updated.Colors, "update replaces every field")

	w = env.do(http.MethodPost, "/admin/products/"+id+"/deactivate", nil, auth...)
	requireStatus(t, w, http.StatusOK)
	assert.False(t, decode[catalogapp.ProductResponse](t, w).Data.IsActive)

	w = env.do(http.MethodPost, "/admin/products/"+id+"/deactivate", nil, auth...)
	requireStatus(t, w, http.StatusUnprocessableEntity)
	assert.Equal(t, "ALREADY_INACTIVE", errorCode(t, w))

	w = env.do(http.MethodGet, "/admin/products?status=inactive", nil, auth...)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decode[[]catalogapp.ProductListItem](t, w).Data, 1, "admins see inactive products")

	w = env.do(http.MethodPost, "/admin/products/"+id+"/activate", nil, auth...)
	requireStatus(t, w, http.StatusOK)

	w = env.do(http.MethodPut, "/admin/products/"+id+"/featured", map[string]any{"featured": true}, auth...)
	requireStatus(t, w, http.StatusOK)
	assert.True(t, decode[catalogapp.ProductResponse](t, w).Data.IsFeatured)

	w = env.do(http.MethodDelete, "/admin/products/"+id, nil, auth...)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(http.MethodGet, "/admin/products/"+id, nil, auth...)
	requireStatus(t, w, http.StatusNotFound)
}

func TestProductHandler_CreateErrors(t *testing.T) {
	env := newTestEnv(t)
	registerAdminCatalogRoutes(env)
	auth := []string{"Authorization", "Bearer " + env.accessToken(t)}

	tests := []struct {
		name   string
		body   map[string]any
		status int
		code   string
	}{
		{"missing names", map[string]any{"price": "10"}, http.StatusBadRequest, dto.ErrCodeValidation},
		{"zero price", map[string]any{"name": "Tee", "name_ar": "تيشيرت", "price": "0"}, http.StatusBadRequest, "INVALID_PRICE"},
		{"unknown category", map[string]any{"name": "Tee", "name_ar": "تيشيرت", "price": "10", "category_id": uuid.NewString()}, http.StatusBadRequest, "INVALID_CATEGORY"},
		{"unknown color", map[string]any{"name": "Tee", "name_ar": "تيشيرت", "price": "10", "color_ids": []string{uuid.NewString()}}, http.StatusBadRequest, "INVALID_COLOR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/admin/products", tt.body, auth...)
			requireStatus(t, w, tt.status)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}

func TestCategoryHandler_DeleteDetachesProducts(t *testing.T) {
	env := newTestEnv(t)
	registerAdminCatalogRoutes(env)
	auth := []string{"Authorization", "Bearer " + env.accessToken(t)}

	w := env.do(http.MethodPost, "/admin/categories", map[string]any{"name": "Abayas", "name_ar": "عبايات"}, auth...)
	requireStatus(t, w, http.StatusCreated)
	category := decode[catalogapp.CategoryResponse](t, w).Data

	w = env.do(http.MethodPost, "/admin/categories", map[string]any{"name": "Abayas", "name_ar": "عبايات"}, auth...)
	requireStatus(t, w, http.StatusConflict)
	assert.Equal(t, "ALREADY_EXISTS", errorCode(t, w))

	product, err := env.products.Create(t.Context(), catalogapp.CreateProductRequest{
		Name:       "Black Abaya",
		NameAr:     "عباية سوداء",
		Price:      decimal.RequireFromString("1100"),
		CategoryID: &category.ID,
	})
	require.NoError(t, err)

	w = env.do(http.MethodDelete, "/admin/categories/"+category.ID.String(), nil, auth...)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(http.MethodGet, "/admin/products/"+product.ID.String(), nil, auth...)
	requireStatus(t, w, http.StatusOK)
	detached := decode[catalogapp.ProductResponse](t, w).Data
	assert.Nil(t, detached.CategoryID)
	assert.Nil(t, detached.Category)
}

func TestAttributeHandler(t *testing.T) {
	env := newTestEnv(t)
	registerAdminCatalogRoutes(env)
	auth := []string{"Authorization", "Bearer " + env.accessToken(t)}

	w := env.do(http.MethodPost, "/admin/colors", map[string]any{"name": "Navy", "name_ar": "كحلي", "hex_code": "#000080"}, auth...)
	requireStatus(t, w, http.StatusCreated)
	color := decode[catalogapp.ColorResponse](t, w).Data

	w = env.do(http.MethodPost, "/admin/colors", map[string]any{"name": "Bad", "name_ar": "سيء", "hex_code": "blue"}, auth...)
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "INVALID_HEX_CODE", errorCode(t, w))

	w = env.do(http.MethodPut, "/admin/colors/"+color.ID.String(), map[string]any{"name": "Navy Blue", "name_ar": "كحلي", "hex_code": "#000080"}, auth...)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "Navy Blue", decode[catalogapp.ColorResponse](t, w).Data.Name)

	w = env.do(http.MethodDelete, "/admin/colors/"+color.ID.String(), nil, auth...)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(http.MethodPost, "/admin/sizes", map[string]any{"name": "M", "sort_order": 2}, auth...)
	requireStatus(t, w, http.StatusCreated)
	size := decode[catalogapp.SizeResponse](t, w).Data

	w = env.do(http.MethodPost, "/admin/sizes", map[string]any{"name": "S", "sort_order": -1}, auth...)
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "INVALID_SORT_ORDER", errorCode(t, w))

	w = env.do(http.MethodGet, "/admin/sizes", nil, auth...)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decode[[]catalogapp.SizeResponse](t, w).Data, 1)

	w = env.do(http.MethodDelete, "/admin/sizes/"+size.ID.String(), nil, auth...)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGovernorateHandler_Admin(t *testing.T) {
	env := newTestEnv(t)
	registerAdminCatalogRoutes(env)
	auth := []string{"Authorization", "Bearer " + env.accessToken(t)}

	w := env.do(http.MethodPost, "/admin/governorates", map[string]any{
		"name": "Qena", "name_ar": "قنا", "shipping_price": "85",
	}, auth...)
	requireStatus(t, w, http.StatusCreated)
	gov := decode[shippingapp.GovernorateResponse](t, w).Data
	assert.True(t, gov.IsActive)
	id := gov.ID.String()

	w = env.do(http.MethodPost, "/admin/governorates/"+id+"/deactivate", nil, auth...)
	requireStatus(t, w, http.StatusOK)
	assert.False(t, decode[shippingapp.GovernorateResponse](t, w).Data.IsActive)

	w = env.do(http.MethodGet, "/admin/governorates", nil, auth...)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decode[[]shippingapp.GovernorateResponse](t, w).Data, 1, "admin listing includes inactive governorates")

	w = env.do(http.MethodPut, "/admin/governorates/"+id, map[string]any{
		"name": "Qena", "name_ar": "قنا", "shipping_price": "95",
	}, auth...)
	requireStatus(t, w, http.StatusOK)
	assert.True(t, decimal.RequireFromString("95").Equal(decode[shippingapp.GovernorateResponse](t, w).Data.ShippingPrice))

	w = env.do(http.MethodDelete, "/admin/governorates/"+id, nil, auth...)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(http.MethodGet, "/admin/governorates/"+id, nil, auth...)
	requireStatus(t, w, http.StatusNotFound)
}

func TestAdvertisementHandler_Admin(t *testing.T) {
	env := newTestEnv(t)
	registerAdminCatalogRoutes(env)
	auth := []string{"Authorization", "Bearer " + env.accessToken(t)}

	w := env.do(http.MethodPost, "/admin/advertisements", map[string]any{
		"title":      "Eid Collection",
		"image_url":  "https://cdn.example.com/banners/eid.jpg",
		"sort_order": 1,
	}, auth...)
	requireStatus(t, w, http.StatusCreated)
	ad := decode[marketingapp.AdvertisementResponse](t, w).Data
	id := ad.ID.String()

	w = env.do(http.MethodPost, "/admin/advertisements", map[string]any{"title": "No image"}, auth...)
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, dto.ErrCodeValidation, errorCode(t, w))

	w = env.do(http.MethodPost, "/admin/advertisements/"+id+"/deactivate", nil, auth...)
	requireStatus(t, w, http.StatusOK)
	assert.False(t, decode[marketingapp.AdvertisementResponse](t, w).Data.IsActive)

	w = env.do(http.MethodPost, "/admin/advertisements/"+id+"/activate", nil, auth...)
	requireStatus(t, w, http.StatusOK)
	assert.True(t, decode[marketingapp.AdvertisementResponse](t, w).Data.IsActive)

	w = env.do(http.MethodDelete, "/admin/advertisements/"+id, nil, auth...)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(http.MethodGet, "/admin/advertisements", nil, auth...)
	requireStatus(t, w, http.StatusOK)
	assert.Empty(t, decode[[]marketingapp.AdvertisementResponse](t, w).Data)
}
