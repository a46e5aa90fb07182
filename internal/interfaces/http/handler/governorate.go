package handler

import (
	shippingapp "github.com/alshbh/storefront/internal/application/shipping"
	"github.com/gin-gonic/gin"
)

// GovernorateHandler handles shipping zones
type GovernorateHandler struct {
	BaseHandler
	governorateService *shippingapp.GovernorateService
}

// NewGovernorateHandler creates a new GovernorateHandler
func NewGovernorateHandler(governorateService *shippingapp.GovernorateService) *GovernorateHandler {
	return &GovernorateHandler{governorateService: governorateService}
}

// ListActive godoc
// @ID           listShippingGovernorates
// @Summary      List governorates for checkout
// @Description  Active governorates ordered by Arabic name
// @Tags         shipping
// @Produce      json
// @Success      200 {object} dto.Response{data=[]shippingapp.GovernorateResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shipping/governorates [get]
func (h *GovernorateHandler) ListActive(c *gin.Context) {
	governorates, err := h.governorateService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, governorates)
}

// List godoc
// @ID           listAdminGovernorates
// @Summary      List all governorates
// @Tags         admin-governorates
// @Produce      json
// @Success      200 {object} dto.Response{data=[]shippingapp.GovernorateResponse}
// @Security     BearerAuth
// @Router       /admin/governorates [get]
func (h *GovernorateHandler) List(c *gin.Context) {
	governorates, err := h.governorateService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, governorates)
}

// GetByID godoc
// @ID           getAdminGovernorate
// @Summary      Get governorate by ID
// @Tags         admin-governorates
// @Produce      json
// @Param        id path string true "Governorate ID" format(uuid)
// @Success      200 {object} dto.Response{data=shippingapp.GovernorateResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/governorates/{id} [get]
func (h *GovernorateHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	governorate, err := h.governorateService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, governorate)
}

// Create godoc
// @ID           createAdminGovernorate
// @Summary      Create a governorate
// @Tags         admin-governorates
// @Accept       json
// @Produce      json
// @Param        request body shippingapp.GovernorateRequest true "Governorate"
// @Success      201 {object} dto.Response{data=shippingapp.GovernorateResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/governorates [post]
func (h *GovernorateHandler) Create(c *gin.Context) {
	var req shippingapp.GovernorateRequest
	if !h.BindJSON(c, &req) {
		return
	}
	governorate, err := h.governorateService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, governorate)
}

// Update godoc
// @ID           updateAdminGovernorate
// @Summary      Update a governorate
// @Tags         admin-governorates
// @Accept       json
// @Produce      json
// @Param        id      path string                         true "Governorate ID" format(uuid)
// @Param        request body shippingapp.GovernorateRequest true "Governorate"
// @Success      200 {object} dto.Response{data=shippingapp.GovernorateResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/governorates/{id} [put]
func (h *GovernorateHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req shippingapp.GovernorateRequest
	if !h.BindJSON(c, &req) {
		return
	}
	governorate, err := h.governorateService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, governorate)
}

// Activate godoc
// @ID           activateAdminGovernorate
// @Summary      Activate a governorate
// @Tags         admin-governorates
// @Produce      json
// @Param        id path string true "Governorate ID" format(uuid)
// @Success      200 {object} dto.Response{data=shippingapp.GovernorateResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/governorates/{id}/activate [post]
func (h *GovernorateHandler) Activate(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	governorate, err := h.governorateService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, governorate)
}

// Deactivate godoc
// @ID           deactivateAdminGovernorate
// @Summary      Deactivate a governorate
// @Description  Deactivated governorates cannot be chosen at checkout
// @Tags         admin-governorates
// @Produce      json
// @Param        id path string true "Governorate ID" format(uuid)
// @Success      200 {object} dto.Response{data=shippingapp.GovernorateResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/governorates/{id}/deactivate [post]
func (h *GovernorateHandler) Deactivate(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	governorate, err := h.governorateService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, governorate)
}

// Delete godoc
// @ID           deleteAdminGovernorate
// @Summary      Delete a governorate
// @Tags         admin-governorates
// @Param        id path string true "Governorate ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/governorates/{id} [delete]
func (h *GovernorateHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.governorateService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
