package handler

import (
	"mime"
	"net/http"

	"github.com/alshbh/storefront/internal/application/trade"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles back-office order management
type OrderHandler struct {
	BaseHandler
	orderService *trade.OrderService
	slipService  *trade.PackingSlipService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *trade.OrderService, slipService *trade.PackingSlipService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		slipService:  slipService,
	}
}

// List godoc
// @ID           listAdminOrders
// @Summary      List orders
// @Description  Newest first. search matches customer name, phone and order number.
// @Tags         admin-orders
// @Produce      json
// @Param        search    query string false "Search term"
// @Param        status    query string false "Status" Enums(pending, preparing, shipped, delivered, canceled)
// @Param        from      query string false "First day (YYYY-MM-DD)"
// @Param        to        query string false "Last day, inclusive (YYYY-MM-DD)"
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]trade.OrderListItem,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var filter trade.OrderListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	items, total, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// Stats godoc
// @ID           getAdminOrderStats
// @Summary      Order statistics
// @Description  Order counts per status and revenue of orders that were not canceled
// @Tags         admin-orders
// @Produce      json
// @Success      200 {object} dto.Response{data=trade.OrderStatsResponse}
// @Security     BearerAuth
// @Router       /admin/orders/stats [get]
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.orderService.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// GetByID godoc
// @ID           getAdminOrder
// @Summary      Get order by ID
// @Tags         admin-orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} dto.Response{data=trade.OrderResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/orders/{id} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// UpdateStatus godoc
// @ID           updateAdminOrderStatus
// @Summary      Change the status of an order
// @Description  Delivered and canceled orders are final
// @Tags         admin-orders
// @Accept       json
// @Produce      json
// @Param        id      path string                         true "Order ID" format(uuid)
// @Param        request body trade.UpdateOrderStatusRequest true "New status"
// @Success      200 {object} dto.Response{data=trade.OrderResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req trade.UpdateOrderStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}
	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Delete godoc
// @ID           deleteAdminOrder
// @Summary      Delete an order
// @Tags         admin-orders
// @Param        id path string true "Order ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// PackingSlip godoc
// @ID           getAdminOrderPackingSlip
// @Summary      Print the packing slip
// @Description  Returns a PDF when PDF printing is enabled, otherwise a printable HTML page
// @Tags         admin-orders
// @Produce      application/pdf
// @Produce      text/html
// @Param        id       path  string true  "Order ID" format(uuid)
// @Param        download query bool   false "Send as attachment instead of inline"
// @Success      200 {file} file
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      503 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      504 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/orders/{id}/packing-slip [get]
func (h *OrderHandler) PackingSlip(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	doc, err := h.slipService.Render(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	disposition := "inline"
	if c.Query("download") == "true" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": doc.Filename}))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
