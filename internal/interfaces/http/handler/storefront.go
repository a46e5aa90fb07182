package handler

import (
	"github.com/alshbh/storefront/internal/application/storefront"
	"github.com/gin-gonic/gin"
)

// StorefrontHandler serves the landing page
type StorefrontHandler struct {
	BaseHandler
	homeService *storefront.HomeService
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(homeService *storefront.HomeService) *StorefrontHandler {
	return &StorefrontHandler{homeService: homeService}
}

// Home godoc
// @ID           getStorefrontHome
// @Summary      Get the home page
// @Description  Active banners, categories, featured products and discounted products in one response
// @Tags         storefront
// @Produce      json
// @Success      200 {object} dto.Response{data=storefront.HomeResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /storefront/home [get]
func (h *StorefrontHandler) Home(c *gin.Context) {
	home, err := h.homeService.Home(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, home)
}
