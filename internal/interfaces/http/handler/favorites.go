package handler

import (
	"github.com/alshbh/storefront/internal/application/shopping"
	"github.com/gin-gonic/gin"
)

// FavoritesHandler handles the saved products of a session
type FavoritesHandler struct {
	BaseHandler
	favoritesService *shopping.FavoritesService
}

// NewFavoritesHandler creates a new FavoritesHandler
func NewFavoritesHandler(favoritesService *shopping.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favoritesService: favoritesService}
}

// List godoc
// @ID           listShopFavorites
// @Summary      List saved products
// @Tags         shop
// @Produce      json
// @Param        X-Session-ID header string false "Shopping session ID"
// @Success      200 {object} dto.Response{data=shopping.FavoritesResponse}
// @Router       /shop/favorites [get]
func (h *FavoritesHandler) List(c *gin.Context) {
	sid, ok := h.SessionID(c)
	if !ok {
		return
	}
	favorites, err := h.favoritesService.List(c.Request.Context(), sid)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, favorites)
}

// Add godoc
// @ID           addShopFavorite
// @Summary      Save a product
// @Description  Saving a product twice keeps one entry
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string                      false "Shopping session ID"
// @Param        request      body   shopping.AddFavoriteRequest true  "Product"
// @Success      200 {object} dto.Response{data=shopping.FavoritesResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/favorites [post]
func (h *FavoritesHandler) Add(c *gin.Context) {
	sid, ok := h.SessionID(c)
	if !ok {
		return
	}
	var req shopping.AddFavoriteRequest
	if !h.BindJSON(c, &req) {
		return
	}
	favorites, err := h.favoritesService.Add(c.Request.Context(), sid, req.ProductID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, favorites)
}

// Toggle godoc
// @ID           toggleShopFavorite
// @Summary      Save or unsave a product
// @Tags         shop
// @Produce      json
// @Param        X-Session-ID header string false "Shopping session ID"
// @Param        product_id   path   string true  "Product ID" format(uuid)
// @Success      200 {object} dto.Response{data=shopping.FavoriteStateResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/favorites/{product_id}/toggle [post]
func (h *FavoritesHandler) Toggle(c *gin.Context) {
	sid, ok := h.SessionID(c)
	if !ok {
		return
	}
	productID, ok := h.ParseID(c, "product_id")
	if !ok {
		return
	}
	state, err := h.favoritesService.Toggle(c.Request.Context(), sid, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, state)
}

// Remove godoc
// @ID           removeShopFavorite
// @Summary      Unsave a product
// @Tags         shop
// @Produce      json
// @Param        X-Session-ID header string false "Shopping session ID"
// @Param        product_id   path   string true  "Product ID" format(uuid)
// @Success      200 {object} dto.Response{data=shopping.FavoritesResponse}
// @Router       /shop/favorites/{product_id} [delete]
func (h *FavoritesHandler) Remove(c *gin.Context) {
	sid, ok := h.SessionID(c)
	if !ok {
		return
	}
	productID, ok := h.ParseID(c, "product_id")
	if !ok {
		return
	}
	favorites, err := h.favoritesService.Remove(c.Request.Context(), sid, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, favorites)
}

// Contains godoc
// @ID           getShopFavorite
// @Summary      Check whether a product is saved
// @Tags         shop
// @Produce      json
// @Param        X-Session-ID header string false "Shopping session ID"
// @Param        product_id   path   string true  "Product ID" format(uuid)
// @Success      200 {object} dto.Response{data=shopping.FavoriteStateResponse}
// @Router       /shop/favorites/{product_id} [get]
func (h *FavoritesHandler) Contains(c *gin.Context) {
	sid, ok := h.SessionID(c)
	if !ok {
		return
	}
	productID, ok := h.ParseID(c, "product_id")
	if !ok {
		return
	}
	state, err := h.favoritesService.Contains(c.Request.Context(), sid, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, state)
}
