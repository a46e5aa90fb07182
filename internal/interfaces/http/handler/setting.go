package handler

import (
	"github.com/alshbh/storefront/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// SettingHandler handles the admin key/value settings
type SettingHandler struct {
	BaseHandler
	settingService *identity.SettingService
}

// NewSettingHandler creates a new SettingHandler
func NewSettingHandler(settingService *identity.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// List godoc
// @ID           listAdminSettings
// @Summary      List settings
// @Description  Internal keys such as the password hash are never listed
// @Tags         admin-settings
// @Produce      json
// @Success      200 {object} dto.Response{data=[]identity.SettingResponse}
// @Security     BearerAuth
// @Router       /admin/settings [get]
func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.settingService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// Get godoc
// @ID           getAdminSetting
// @Summary      Get a setting
// @Tags         admin-settings
// @Produce      json
// @Param        key path string true "Setting key"
// @Success      200 {object} dto.Response{data=identity.SettingResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/settings/{key} [get]
func (h *SettingHandler) Get(c *gin.Context) {
	setting, err := h.settingService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, setting)
}

// Set godoc
// @ID           setAdminSetting
// @Summary      Create or replace a setting
// @Tags         admin-settings
// @Accept       json
// @Produce      json
// @Param        key     path string                  true "Setting key"
// @Param        request body identity.SettingRequest true "Value"
// @Success      200 {object} dto.Response{data=identity.SettingResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/settings/{key} [put]
func (h *SettingHandler) Set(c *gin.Context) {
	var req identity.SettingRequest
	if !h.BindJSON(c, &req) {
		return
	}
	setting, err := h.settingService.Set(c.Request.Context(), c.Param("key"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, setting)
}

// Delete godoc
// @ID           deleteAdminSetting
// @Summary      Delete a setting
// @Tags         admin-settings
// @Param        key path string true "Setting key"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/settings/{key} [delete]
func (h *SettingHandler) Delete(c *gin.Context) {
	if err := h.settingService.Delete(c.Request.Context(), c.Param("key")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
