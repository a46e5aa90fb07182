package handler

import (
	catalogapp "github.com/alshbh/storefront/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// AttributeHandler manages the color and size lists
type AttributeHandler struct {
	BaseHandler
	attributeService *catalogapp.AttributeService
}

// NewAttributeHandler creates a new AttributeHandler
func NewAttributeHandler(attributeService *catalogapp.AttributeService) *AttributeHandler {
	return &AttributeHandler{attributeService: attributeService}
}

// ListColors godoc
// @ID           listAdminColors
// @Summary      List colors
// @Tags         admin-attributes
// @Produce      json
// @Success      200 {object} dto.Response{data=[]catalogapp.ColorResponse}
// @Security     BearerAuth
// @Router       /admin/colors [get]
func (h *AttributeHandler) ListColors(c *gin.Context) {
	colors, err := h.attributeService.ListColors(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, colors)
}

// CreateColor godoc
// @ID           createAdminColor
// @Summary      Create a color
// @Tags         admin-attributes
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.ColorRequest true "Color"
// @Success      201 {object} dto.Response{data=catalogapp.ColorResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/colors [post]
func (h *AttributeHandler) CreateColor(c *gin.Context) {
	var req catalogapp.ColorRequest
	if !h.BindJSON(c, &req) {
		return
	}
	color, err := h.attributeService.CreateColor(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, color)
}

// UpdateColor godoc
// @ID           updateAdminColor
// @Summary      Update a color
// @Tags         admin-attributes
// @Accept       json
// @Produce      json
// @Param        id      path string                  true "Color ID" format(uuid)
// @Param        request body catalogapp.ColorRequest true "Color"
// @Success      200 {object} dto.Response{data=catalogapp.ColorResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/colors/{id} [put]
func (h *AttributeHandler) UpdateColor(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req catalogapp.ColorRequest
	if !h.BindJSON(c, &req) {
		return
	}
	color, err := h.attributeService.UpdateColor(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, color)
}

// DeleteColor godoc
// @ID           deleteAdminColor
// @Summary      Delete a color
// @Tags         admin-attributes
// @Param        id path string true "Color ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/colors/{id} [delete]
func (h *AttributeHandler) DeleteColor(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.attributeService.DeleteColor(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListSizes godoc
// @ID           listAdminSizes
// @Summary      List sizes
// @Tags         admin-attributes
// @Produce      json
// @Success      200 {object} dto.Response{data=[]catalogapp.SizeResponse}
// @Security     BearerAuth
// @Router       /admin/sizes [get]
func (h *AttributeHandler) ListSizes(c *gin.Context) {
	sizes, err := h.attributeService.ListSizes(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sizes)
}

// CreateSize godoc
// @ID           createAdminSize
// @Summary      Create a size
// @Tags         admin-attributes
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.SizeRequest true "Size"
// @Success      201 {object} dto.Response{data=catalogapp.SizeResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/sizes [post]
func (h *AttributeHandler) CreateSize(c *gin.Context) {
	var req catalogapp.SizeRequest
	if !h.BindJSON(c, &req) {
		return
	}
	size, err := h.attributeService.CreateSize(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, size)
}

// UpdateSize godoc
// @ID           updateAdminSize
// @Summary      Update a size
// @Tags         admin-attributes
// @Accept       json
// @Produce      json
// @Param        id      path string                 true "Size ID" format(uuid)
// @Param        request body catalogapp.SizeRequest true "Size"
// @Success      200 {object} dto.Response{data=catalogapp.SizeResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/sizes/{id} [put]
func (h *AttributeHandler) UpdateSize(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req catalogapp.SizeRequest
	if !h.BindJSON(c, &req) {
		return
	}
	size, err := h.attributeService.UpdateSize(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, size)
}

// DeleteSize godoc
// @ID           deleteAdminSize
// @Summary      Delete a size
// @Tags         admin-attributes
// @Param        id path string true "Size ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/sizes/{id} [delete]
func (h *AttributeHandler) DeleteSize(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.attributeService.DeleteSize(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
