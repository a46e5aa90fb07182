package handler

import (
	"github.com/alshbh/storefront/internal/application/shopping"
	"github.com/gin-gonic/gin"
)

// PreferenceHandler handles per-session display preferences
type PreferenceHandler struct {
	BaseHandler
	preferenceService *shopping.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler
func NewPreferenceHandler(preferenceService *shopping.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// GetDarkMode godoc
// @ID           getShopDarkMode
// @Summary      Get the dark mode choice
// @Description  enabled is null until the shopper makes a choice
// @Tags         shop
// @Produce      json
// @Param        X-Session-ID header string false "Shopping session ID"
// @Success      200 {object} dto.Response{data=shopping.DarkModeResponse}
// @Router       /shop/preferences/dark-mode [get]
func (h *PreferenceHandler) GetDarkMode(c *gin.Context) {
	sid, ok := h.SessionID(c)
	if !ok {
		return
	}
	pref, err := h.preferenceService.DarkMode(c.Request.Context(), sid)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pref)
}

// SetDarkMode godoc
// @ID           setShopDarkMode
// @Summary      Set the dark mode choice
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string                   false "Shopping session ID"
// @Param        request      body   shopping.DarkModeRequest true  "Choice"
// @Success      200 {object} dto.Response{data=shopping.DarkModeResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/preferences/dark-mode [put]
func (h *PreferenceHandler) SetDarkMode(c *gin.Context) {
	sid, ok := h.SessionID(c)
	if !ok {
		return
	}
	var req shopping.DarkModeRequest
	if !h.BindJSON(c, &req) {
		return
	}
	pref, err := h.preferenceService.SetDarkMode(c.Request.Context(), sid, *req.Enabled)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pref)
}

// ToggleDarkMode godoc
// @ID           toggleShopDarkMode
// @Summary      Flip the dark mode choice
// @Description  With no stored choice the first toggle turns dark mode on
// @Tags         shop
// @Produce      json
// @Param        X-Session-ID header string false "Shopping session ID"
// @Success      200 {object} dto.Response{data=shopping.DarkModeResponse}
// @Router       /shop/preferences/dark-mode/toggle [post]
func (h *PreferenceHandler) ToggleDarkMode(c *gin.Context) {
	sid, ok := h.SessionID(c)
	if !ok {
		return
	}
	pref, err := h.preferenceService.ToggleDarkMode(c.Request.Context(), sid)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pref)
}
