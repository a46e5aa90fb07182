package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/alshbh/storefront/internal/application/trade"
	"github.com/alshbh/storefront/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSlipRenderer renders the order number as plain text
type stubSlipRenderer struct {
	slips []trade.PackingSlip
}

func (r *stubSlipRenderer) RenderPackingSlip(_ context.Context, slip trade.PackingSlip) (*trade.Document, error) {
	r.slips = append(r.slips, slip)
	return &trade.Document{
		ContentType: "text/html; charset=utf-8",
		Filename:    "order-1.html",
		Body:        []byte("<h1>Order 1</h1>"),
	}, nil
}

func registerOrderRoutes(env *testEnv, renderer trade.SlipRenderer) {
	registerCheckoutRoutes(env)
	orders := NewOrderHandler(env.orders, trade.NewPackingSlipService(env.orders, renderer))
	admin := env.adminGroup("/admin/orders")
	admin.GET("", orders.List)
	admin.GET("/stats", orders.Stats)
	admin.GET("/:id", orders.GetByID)
	admin.PUT("/:id/status", orders.UpdateStatus)
	admin.DELETE("/:id", orders.Delete)
	admin.GET("/:id/packing-slip", orders.PackingSlip)
}

func (e *testEnv) placeOrder(t *testing.T, price string) *trade.OrderResponse {
	t.Helper()
	gov := e.seedGovernorate(t, "Giza", "40")
	e.fillCart(t, price, 1)
	w := e.do(http.MethodPost, "/checkout", checkoutBody(gov.ID))
	requireStatus(t, w, http.StatusCreated)
	order := decode[trade.OrderResponse](t, w).Data
	return &order
}

func TestOrderHandler_RequiresToken(t *testing.T) {
	env := newTestEnv(t)
	registerOrderRoutes(env, nil)

	w := env.do(http.MethodGet, "/admin/orders", nil)
	requireStatus(t, w, http.StatusUnauthorized)

	w = env.do(http.MethodGet, "/admin/orders", nil, "Authorization", "Bearer not-a-jwt")
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestOrderHandler_ListAndGet(t *testing.T) {
	env := newTestEnv(t)
	registerOrderRoutes(env, nil)
	placed := env.placeOrder(t, "300")
	auth := []string{"Authorization", "Bearer " + env.accessToken(t)}

	w := env.do(http.MethodGet, "/admin/orders?status=pending", nil, auth...)
	requireStatus(t, w, http.StatusOK)
	list := decode[[]trade.OrderListItem](t, w)
	require.Len(t, list.Data, 1)
	assert.Equal(t, placed.ID, list.Data[0].ID)
	require.NotNil(t, list.Meta)
	assert.Equal(t, int64(1), list.Meta.Total)

	w = env.do(http.MethodGet, "/admin/orders?status=shipped", nil, auth...)
	requireStatus(t, w, http.StatusOK)
	assert.Empty(t, decode[[]trade.OrderListItem](t, w).Data)

	w = env.do(http.MethodGet, "/admin/orders?status=lost", nil, auth...)
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, dto.ErrCodeValidation, errorCode(t, w))

	w = env.do(http.MethodGet, "/admin/orders/"+placed.ID.String(), nil, auth...)
	requireStatus(t, w, http.StatusOK)
	order := decode[trade.OrderResponse](t, w).Data
	assert.Equal(t, placed.OrderNumber, order.OrderNumber)
	assert.Len(t, order.Items, 1)

	w = env.do(http.MethodGet, "/admin/orders/"+testSessionID, nil, auth...)
	requireStatus(t, w, http.StatusNotFound)
}

func TestOrderHandler_StatusAndStats(t *testing.T) {
	env := newTestEnv(t)
	registerOrderRoutes(env, nil)
	kept := env.placeOrder(t, "300")
	canceled := env.placeOrder(t, "500")
	auth := []string{"Authorization", "Bearer " + env.accessToken(t)}

	w := env.do(http.MethodPut, "/admin/orders/"+kept.ID.String()+"/status", map[string]any{"status": "shipped"}, auth...)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "shipped", decode[trade.OrderResponse](t, w).Data.Status)

	w = env.do(http.MethodPut, "/admin/orders/"+canceled.ID.String()+"/status", map[string]any{"status": "canceled"}, auth...)
	requireStatus(t, w, http.StatusOK)

	w = env.do(http.MethodPut, "/admin/orders/"+canceled.ID.String()+"/status", map[string]any{"status": "pending"}, auth...)
	requireStatus(t, w, http.StatusUnprocessableEntity)
	assert.Equal(t, "INVALID_STATE", errorCode(t, w))

	w = env.do(http.MethodGet, "/admin/orders/stats", nil, auth...)
	requireStatus(t, w, http.StatusOK)
	stats := decode[trade.OrderStatsResponse](t, w).Data
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.ByStatus["shipped"])
	assert.Equal(t, int64(1), stats.ByStatus["canceled"])
	assert.True(t, decimal.RequireFromString("340").Equal(stats.Revenue), stats.Revenue.String())
}

func TestOrderHandler_Delete(t *testing.T) {
	env := newTestEnv(t)
	registerOrderRoutes(env, nil)
	placed := env.placeOrder(t, "120")
	auth := []string{"Authorization", "Bearer " + env.accessToken(t)}

	w := env.do(http.MethodDelete, "/admin/orders/"+placed.ID.String(), nil, auth...)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(http.MethodGet, "/admin/orders/"+placed.ID.String(), nil, auth...)
	requireStatus(t, w, http.StatusNotFound)
}

func TestOrderHandler_PackingSlip(t *testing.T) {
	renderer := &stubSlipRenderer{}
	env := newTestEnv(t)
	registerOrderRoutes(env, renderer)
	placed := env.placeOrder(t, "220")
	auth := []string{"Authorization", "Bearer " + env.accessToken(t)}

	w := env.do(http.MethodGet, "/admin/orders/"+placed.ID.String()+"/packing-slip", nil, auth...)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "inline; filename=order-1.html", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, "<h1>Order 1</h1>", w.Body.String())

	require.Len(t, renderer.slips, 1)
	assert.Equal(t, placed.ID, renderer.slips[0].Order.ID)
	assert.Equal(t, "Giza ar", renderer.slips[0].GovernorateName)

	w = env.do(http.MethodGet, "/admin/orders/"+placed.ID.String()+"/packing-slip?download=true", nil, auth...)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "attachment; filename=order-1.html", w.Header().Get("Content-Disposition"))

	w = env.do(http.MethodGet, "/admin/orders/"+testSessionID+"/packing-slip", nil, auth...)
	requireStatus(t, w, http.StatusNotFound)
}

func TestOrderHandler_PackingSlipWithoutRenderer(t *testing.T) {
	env := newTestEnv(t)
	registerOrderRoutes(env, nil)
	placed := env.placeOrder(t, "220")

	w := env.do(http.MethodGet, "/admin/orders/"+placed.ID.String()+"/packing-slip", nil,
		"Authorization", "Bearer "+env.accessToken(t))
	requireStatus(t, w, http.StatusServiceUnavailable)
	assert.Equal(t, "PRINTING_UNAVAILABLE", errorCode(t, w))
}
