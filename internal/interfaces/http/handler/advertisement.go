package handler

import (
	marketingapp "github.com/alshbh/storefront/internal/application/marketing"
	"github.com/gin-gonic/gin"
)

// AdvertisementHandler handles home page banners
type AdvertisementHandler struct {
	BaseHandler
	adService *marketingapp.AdvertisementService
}

// NewAdvertisementHandler creates a new AdvertisementHandler
func NewAdvertisementHandler(adService *marketingapp.AdvertisementService) *AdvertisementHandler {
	return &AdvertisementHandler{adService: adService}
}

// ListActive godoc
// @ID           listMarketingAdvertisements
// @Summary      List active banners
// @Tags         marketing
// @Produce      json
// @Success      200 {object} dto.Response{data=[]marketingapp.AdvertisementResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /marketing/advertisements [get]
func (h *AdvertisementHandler) ListActive(c *gin.Context) {
	ads, err := h.adService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ads)
}

// List godoc
// @ID           listAdminAdvertisements
// @Summary      List all banners
// @Tags         admin-advertisements
// @Produce      json
// @Success      200 {object} dto.Response{data=[]marketingapp.AdvertisementResponse}
// @Security     BearerAuth
// @Router       /admin/advertisements [get]
func (h *AdvertisementHandler) List(c *gin.Context) {
	ads, err := h.adService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ads)
}

// GetByID godoc
// @ID           getAdminAdvertisement
// @Summary      Get banner by ID
// @Tags         admin-advertisements
// @Produce      json
// @Param        id path string true "Advertisement ID" format(uuid)
// @Success      200 {object} dto.Response{data=marketingapp.AdvertisementResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/advertisements/{id} [get]
func (h *AdvertisementHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	ad, err := h.adService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ad)
}

// Create godoc
// @ID           createAdminAdvertisement
// @Summary      Create a banner
// @Tags         admin-advertisements
// @Accept       json
// @Produce      json
// @Param        request body marketingapp.AdvertisementRequest true "Advertisement"
// @Success      201 {object} dto.Response{data=marketingapp.AdvertisementResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/advertisements [post]
func (h *AdvertisementHandler) Create(c *gin.Context) {
	var req marketingapp.AdvertisementRequest
	if !h.BindJSON(c, &req) {
		return
	}
	ad, err := h.adService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, ad)
}

// Update godoc
// @ID           updateAdminAdvertisement
// @Summary      Update a banner
// @Tags         admin-advertisements
// @Accept       json
// @Produce      json
// @Param        id      path string                            true "Advertisement ID" format(uuid)
// @Param        request body marketingapp.AdvertisementRequest true "Advertisement"
// @Success      200 {object} dto.Response{data=marketingapp.AdvertisementResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/advertisements/{id} [put]
func (h *AdvertisementHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req marketingapp.AdvertisementRequest
	if !h.BindJSON(c, &req) {
		return
	}
	ad, err := h.adService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ad)
}

// Activate godoc
// @ID           activateAdminAdvertisement
// @Summary      Activate a banner
// @Tags         admin-advertisements
// @Produce      json
// @Param        id path string true "Advertisement ID" format(uuid)
// @Success      200 {object} dto.Response{data=marketingapp.AdvertisementResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/advertisements/{id}/activate [post]
func (h *AdvertisementHandler) Activate(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	ad, err := h.adService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ad)
}

// Deactivate godoc
// @ID           deactivateAdminAdvertisement
// @Summary      Deactivate a banner
// @Tags         admin-advertisements
// @Produce      json
// @Param        id path string true "Advertisement ID" format(uuid)
// @Success      200 {object} dto.Response{data=marketingapp.AdvertisementResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/advertisements/{id}/deactivate [post]
func (h *AdvertisementHandler) Deactivate(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	ad, err := h.adService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ad)
}

// Delete godoc
// @ID           deleteAdminAdvertisement
// @Summary      Delete a banner
// @Tags         admin-advertisements
// @Param        id path string true "Advertisement ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/advertisements/{id} [delete]
func (h *AdvertisementHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.adService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
