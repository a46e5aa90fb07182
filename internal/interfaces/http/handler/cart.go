package handler

import (
	"github.com/alshbh/storefront/internal/application/shopping"
	"github.com/gin-gonic/gin"
)

// CartHandler handles the session cart
type CartHandler struct {
	BaseHandler
	cartService *shopping.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *shopping.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get godoc
// @ID           getShopCart
// @Summary      Get the cart
// @Description  Returns the cart of the current session, empty when nothing was added yet
// @Tags         shop
// @Produce      json
// @Param        X-Session-ID header string false "Shopping session ID"
// @Success      200 {object} dto.Response{data=shopping.CartResponse}
// @Router       /shop/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	sid, ok := h.SessionID(c)
	if !ok {
		return
	}
	cart, err := h.cartService.Get(c.Request.Context(), sid)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// AddItem godoc
// @ID           addShopCartItem
// @Summary      Add an item to the cart
// @Description  Captures the current price of the chosen variant. Adding the same variant again increases its quantity.
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string                      false "Shopping session ID"
// @Param        request      body   shopping.AddCartItemRequest true  "Item"
// @Success      200 {object} dto.Response{data=shopping.CartResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sid, ok := h.SessionID(c)
	if !ok {
		return
	}
	var req shopping.AddCartItemRequest
	if !h.BindJSON(c, &req) {
		return
	}
	cart, err := h.cartService.AddItem(c.Request.Context(), sid, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// UpdateItem godoc
// @ID           updateShopCartItem
// @Summary      Change the quantity of a cart item
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string                         false "Shopping session ID"
// @Param        item_id      path   string                         true  "Cart item ID"
// @Param        request      body   shopping.UpdateCartItemRequest true  "Quantity"
// @Success      200 {object} dto.Response{data=shopping.CartResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/cart/items/{item_id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sid, ok := h.SessionID(c)
	if !ok {
		return
	}
	var req shopping.UpdateCartItemRequest
	if !h.BindJSON(c, &req) {
		return
	}
	cart, err := h.cartService.UpdateQuantity(c.Request.Context(), sid, c.Param("item_id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// RemoveItem godoc
// @ID           removeShopCartItem
// @Summary      Remove a cart item
// @Tags         shop
// @Produce      json
// @Param        X-Session-ID header string false "Shopping session ID"
// @Param        item_id      path   string true  "Cart item ID"
// @Success      200 {object} dto.Response{data=shopping.CartResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/cart/items/{item_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sid, ok := h.SessionID(c)
	if !ok {
		return
	}
	cart, err := h.cartService.RemoveItem(c.Request.Context(), sid, c.Param("item_id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// Clear godoc
// @ID           clearShopCart
// @Summary      Empty the cart
// @Tags         shop
// @Param        X-Session-ID header string false "Shopping session ID"
// @Success      204
// @Router       /shop/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	sid, ok := h.SessionID(c)
	if !ok {
		return
	}
	if err := h.cartService.Clear(c.Request.Context(), sid); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
