package handler

import (
	"net/http"

	"github.com/alshbh/storefront/internal/application/trade"
	"github.com/alshbh/storefront/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader deduplicates checkout submissions
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLength = 128

// CheckoutHandler turns the session cart into an order
type CheckoutHandler struct {
	BaseHandler
	checkoutService *trade.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *trade.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Preview godoc
// @ID           previewCheckout
// @Summary      Price the cart
// @Description  Subtotal, shipping and total of the session cart. Shipping is zero until a governorate is chosen.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string               false "Shopping session ID"
// @Param        request      body   trade.PreviewRequest false "Chosen governorate"
// @Success      200 {object} dto.Response{data=trade.CheckoutPreview}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /checkout/preview [post]
func (h *CheckoutHandler) Preview(c *gin.Context) {
	sid, ok := h.SessionID(c)
	if !ok {
		return
	}
	var req trade.PreviewRequest
	if c.Request.ContentLength != 0 && !h.BindJSON(c, &req) {
		return
	}

	preview, err := h.checkoutService.Preview(c.Request.Context(), sid, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, preview)
}

// Checkout godoc
// @ID           placeOrder
// @Summary      Place an order
// @Description  Creates a pending order from the session cart and empties the cart. A repeated Idempotency-Key is rejected with DUPLICATE_REQUEST.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        X-Session-ID    header string                false "Shopping session ID"
// @Param        Idempotency-Key header string                false "Client generated key for safe retries"
// @Param        request         body   trade.CheckoutRequest true  "Delivery details"
// @Success      201 {object} dto.Response{data=trade.OrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sid, ok := h.SessionID(c)
	if !ok {
		return
	}
	key := c.GetHeader(IdempotencyKeyHeader)
	if len(key) > maxIdempotencyKeyLength {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, "Idempotency-Key is too long")
		return
	}
	var req trade.CheckoutRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.checkoutService.Checkout(c.Request.Context(), trade.CheckoutInput{
		SessionID:      sid,
		IdempotencyKey: key,
		Request:        req,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}
