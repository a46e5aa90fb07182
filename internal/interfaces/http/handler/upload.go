package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/alshbh/storefront/internal/application/upload"
	"github.com/alshbh/storefront/internal/infrastructure/storage"
	"github.com/alshbh/storefront/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// UploadHandler hands out presigned upload URLs
type UploadHandler struct {
	BaseHandler
	uploadService *upload.Service
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService *upload.Service) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Presign godoc
// @ID           presignAdminUpload
// @Summary      Get an image upload URL
// @Description  Returns a short-lived URL the browser PUTs the image to, and the public URL to store on the product or banner
// @Tags         admin-uploads
// @Accept       json
// @Produce      json
// @Param        request body upload.PresignRequest true "File details"
// @Success      200 {object} dto.Response{data=upload.PresignResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      502 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/uploads/presign [post]
func (h *UploadHandler) Presign(c *gin.Context) {
	var req upload.PresignRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.uploadService.Presign(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// LocalUploadHandler receives the PUT requests of presigned local URLs
type LocalUploadHandler struct {
	BaseHandler
	store    *storage.LocalStorage
	maxBytes int64
}

// NewLocalUploadHandler creates a LocalUploadHandler accepting at most maxBytes per file
func NewLocalUploadHandler(store *storage.LocalStorage, maxBytes int64) *LocalUploadHandler {
	return &LocalUploadHandler{store: store, maxBytes: maxBytes}
}

// Put stores the request body under the key in the path. The token query
// parameter must have been issued for that key and Content-Type.
func (h *LocalUploadHandler) Put(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	token := c.Query("token")
	if token == "" {
		h.Error(c, http.StatusForbidden, dto.ErrCodeForbidden, "Upload token is required")
		return
	}
	if err := h.store.Verify(token, key, c.ContentType()); err != nil {
		h.Error(c, http.StatusForbidden, dto.ErrCodeForbidden, "Invalid or expired upload token")
		return
	}

	if err := h.store.Save(key, c.Request.Body, h.maxBytes); err != nil {
		if errors.Is(err, storage.ErrUploadTooLarge) {
			h.ErrorWithCode(c, dto.ErrCodeRequestTooLarge, "File is too large")
			return
		}
		h.HandleError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}
