package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	shoppingapp "github.com/alshbh/storefront/internal/application/shopping"
	"github.com/alshbh/storefront/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerShopRoutes(env *testEnv) {
	cart := NewCartHandler(env.cart)
	env.engine.GET("/shop/cart", cart.Get)
	env.engine.DELETE("/shop/cart", cart.Clear)
	env.engine.POST("/shop/cart/items", cart.AddItem)
	env.engine.PUT("/shop/cart/items/:item_id", cart.UpdateItem)
	env.engine.DELETE("/shop/cart/items/:item_id", cart.RemoveItem)

	favorites := NewFavoritesHandler(env.favorites)
	env.engine.GET("/shop/favorites", favorites.List)
	env.engine.POST("/shop/favorites", favorites.Add)
	env.engine.POST("/shop/favorites/:product_id/toggle", favorites.Toggle)
	env.engine.GET("/shop/favorites/:product_id", favorites.Contains)
	env.engine.DELETE("/shop/favorites/:product_id", favorites.Remove)

	preferences := NewPreferenceHandler(env.preferences)
	env.engine.GET("/shop/preferences/dark-mode", preferences.GetDarkMode)
	env.engine.PUT("/shop/preferences/dark-mode", preferences.SetDarkMode)
	env.engine.POST("/shop/preferences/dark-mode/toggle", preferences.ToggleDarkMode)
}

func TestCartHandler_Lifecycle(t *testing.T) {
	env := newTestEnv(t)
	registerShopRoutes(env)
	product := env.seedProduct(t, "Linen Shirt", "350.00")

	w := env.do(http.MethodGet, "/shop/cart", nil)
	requireStatus(t, w, http.StatusOK)
	empty := decode[shoppingapp.CartResponse](t, w).Data
	assert.Equal(t, testSessionID, empty.SessionID)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 0, empty.ItemCount)

	body := map[string]any{"product_id": product.ID, "quantity": 2}
	requireStatus(t, env.do(http.MethodPost, "/shop/cart/items", body), http.StatusOK)
	w = env.do(http.MethodPost, "/shop/cart/items", body)
	requireStatus(t, w, http.StatusOK)

	cart := decode[shoppingapp.CartResponse](t, w).Data
	require.Len(t, cart.Items, 1, "same variant merges into one line")
	line := cart.Items[0]
	assert.Equal(t, 4, line.Quantity)
	assert.Equal(t, "Linen Shirt", line.Name)
	assert.True(t, decimal.RequireFromString("1400").Equal(cart.Subtotal), cart.Subtotal.String())
	assert.Equal(t, 4, cart.ItemCount)

	w = env.do(http.MethodPut, "/shop/cart/items/"+line.ID, map[string]any{"quantity": 1})
	requireStatus(t, w, http.StatusOK)
	cart = decode[shoppingapp.CartResponse](t, w).Data
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("350").Equal(cart.Subtotal))

	w = env.do(http.MethodDelete, "/shop/cart/items/"+line.ID, nil)
	requireStatus(t, w, http.StatusOK)
	assert.Empty(t, decode[shoppingapp.CartResponse](t, w).Data.Items)

	w = env.do(http.MethodDelete, "/shop/cart/items/"+line.ID, nil)
	requireStatus(t, w, http.StatusOK)

	w = env.do(http.MethodPut, "/shop/cart/items/"+line.ID, map[string]any{"quantity": 3})
	requireStatus(t, w, http.StatusNotFound)
	assert.Equal(t, dto.ErrCodeNotFound, errorCode(t, w))
}

func TestCartHandler_Clear(t *testing.T) {
	env := newTestEnv(t)
	registerShopRoutes(env)
	product := env.seedProduct(t, "Abaya", "900")

	requireStatus(t, env.do(http.MethodPost, "/shop/cart/items",
		map[string]any{"product_id": product.ID, "quantity": 1}), http.StatusOK)

	w := env.do(http.MethodDelete, "/shop/cart", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(http.MethodGet, "/shop/cart", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Empty(t, decode[shoppingapp.CartResponse](t, w).Data.Items)
}

func TestCartHandler_AddItemErrors(t *testing.T) {
	env := newTestEnv(t)
	registerShopRoutes(env)
	product := env.seedProduct(t, "Scarf", "120")
	_, err := env.products.Deactivate(t.Context(), product.ID)
	require.NoError(t, err)

	tests := []struct {
		name   string
		body   map[string]any
		status int
		code   string
	}{
		{"quantity zero", map[string]any{"product_id": product.ID, "quantity": 0}, http.StatusBadRequest, dto.ErrCodeValidation},
		{"quantity above limit", map[string]any{"product_id": product.ID, "quantity": 100}, http.StatusBadRequest, dto.ErrCodeValidation},
		{"missing product", map[string]any{"quantity": 1}, http.StatusBadRequest, dto.ErrCodeValidation},
		{"inactive product", map[string]any{"product_id": product.ID, "quantity": 1}, http.StatusUnprocessableEntity, "PRODUCT_UNAVAILABLE"},
		{"unknown product", map[string]any{"product_id": testSessionID, "quantity": 1}, http.StatusUnprocessableEntity, "PRODUCT_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/shop/cart/items", tt.body)
			requireStatus(t, w, tt.status)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}

func TestCartHandler_SessionsAreIsolated(t *testing.T) {
	env := newTestEnv(t)
	registerShopRoutes(env)
	product := env.seedProduct(t, "Dress", "700")

	requireStatus(t, env.do(http.MethodPost, "/shop/cart/items",
		map[string]any{"product_id": product.ID, "quantity": 1}), http.StatusOK)

	w := env.do(http.MethodGet, "/shop/cart", nil, "X-Session-ID", "6f1d2c3b-4a5e-4f60-8a7b-9c0d1e2f3a4b")
	requireStatus(t, w, http.StatusOK)
	assert.Empty(t, decode[shoppingapp.CartResponse](t, w).Data.Items)
}

func TestCartHandler_IssuesSessionCookie(t *testing.T) {
	env := newTestEnv(t)
	registerShopRoutes(env)

	req := httptest.NewRequest(http.MethodGet, "/shop/cart", nil)
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)

	requireStatus(t, w, http.StatusOK)
	sid := decode[shoppingapp.CartResponse](t, w).Data.SessionID
	assert.NotEmpty(t, sid)
	assert.Equal(t, sid, w.Header().Get("X-Session-ID"))
}

func TestFavoritesHandler(t *testing.T) {
	env := newTestEnv(t)
	registerShopRoutes(env)
	first := env.seedProduct(t, "Blouse", "250")
	second := env.seedProduct(t, "Skirt", "300")

	w := env.do(http.MethodPost, "/shop/favorites", map[string]any{"product_id": first.ID})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, 1, decode[shoppingapp.FavoritesResponse](t, w).Data.Count)

	w = env.do(http.MethodPost, "/shop/favorites", map[string]any{"product_id": first.ID})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, 1, decode[shoppingapp.FavoritesResponse](t, w).Data.Count, "adding twice keeps one entry")

	w = env.do(http.MethodPost, "/shop/favorites/"+second.ID.String()+"/toggle", nil)
	requireStatus(t, w, http.StatusOK)
	assert.True(t, decode[shoppingapp.FavoriteStateResponse](t, w).Data.IsFavorite)

	w = env.do(http.MethodGet, "/shop/favorites", nil)
	requireStatus(t, w, http.StatusOK)
	list := decode[shoppingapp.FavoritesResponse](t, w).Data
	require.Len(t, list.Items, 2)

	w = env.do(http.MethodPost, "/shop/favorites/"+second.ID.String()+"/toggle", nil)
	requireStatus(t, w, http.StatusOK)
	assert.False(t, decode[shoppingapp.FavoriteStateResponse](t, w).Data.IsFavorite)

	w = env.do(http.MethodGet, "/shop/favorites/"+first.ID.String(), nil)
	requireStatus(t, w, http.StatusOK)
	assert.True(t, decode[shoppingapp.FavoriteStateResponse](t, w).Data.IsFavorite)

	w = env.do(http.MethodDelete, "/shop/favorites/"+first.ID.String(), nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, 0, decode[shoppingapp.FavoritesResponse](t, w).Data.Count)

	w = env.do(http.MethodPost, "/shop/favorites/not-a-uuid/toggle", nil)
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, dto.ErrCodeInvalidID, errorCode(t, w))
}

func TestPreferenceHandler_DarkMode(t *testing.T) {
	env := newTestEnv(t)
	registerShopRoutes(env)

	w := env.do(http.MethodGet, "/shop/preferences/dark-mode", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Nil(t, decode[shoppingapp.DarkModeResponse](t, w).Data.Enabled, "unset follows the system")

	w = env.do(http.MethodPut, "/shop/preferences/dark-mode", map[string]any{"enabled": true})
	requireStatus(t, w, http.StatusOK)
	enabled := decode[shoppingapp.DarkModeResponse](t, w).Data.Enabled
	require.NotNil(t, enabled)
	assert.True(t, *enabled)

	w = env.do(http.MethodPost, "/shop/preferences/dark-mode/toggle", nil)
	requireStatus(t, w, http.StatusOK)
	enabled = decode[shoppingapp.DarkModeResponse](t, w).Data.Enabled
	require.NotNil(t, enabled)
	assert.False(t, *enabled)

	w = env.do(http.MethodPut, "/shop/preferences/dark-mode", map[string]any{})
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, dto.ErrCodeValidation, errorCode(t, w))
}
