package handler

import (
	catalogapp "github.com/alshbh/storefront/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only storefront catalog
type CatalogHandler struct {
	BaseHandler
	productService   *catalogapp.ProductService
	categoryService  *catalogapp.CategoryService
	attributeService *catalogapp.AttributeService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(
	productService *catalogapp.ProductService,
	categoryService *catalogapp.CategoryService,
	attributeService *catalogapp.AttributeService,
) *CatalogHandler {
	return &CatalogHandler{
		productService:   productService,
		categoryService:  categoryService,
		attributeService: attributeService,
	}
}

// ListProducts godoc
// @ID           listCatalogProducts
// @Summary      List products
// @Description  Lists active products with search, category, price, featured and discount filters
// @Tags         catalog
// @Produce      json
// @Param        search      query string false "Search in English and Arabic names and descriptions"
// @Param        category_id query string false "Category ID" format(uuid)
// @Param        min_price   query number false "Minimum effective price"
// @Param        max_price   query number false "Maximum effective price"
// @Param        featured    query bool   false "Only featured products"
// @Param        discounted  query bool   false "Only discounted products"
// @Param        sort        query string false "Sort order" Enums(newest, price-low, price-high, rating)
// @Param        page        query int    false "Page number" default(1)
// @Param        page_size   query int    false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]catalogapp.ProductListItem,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	items, total, err := h.productService.ListStorefront(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// GetProduct godoc
// @ID           getCatalogProduct
// @Summary      Get product details
// @Description  Returns an active product with its images, colors and sizes
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.ProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetStorefrontProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// ListCategories godoc
// @ID           listCatalogCategories
// @Summary      List categories
// @Tags         catalog
// @Produce      json
// @Success      200 {object} dto.Response{data=[]catalogapp.CategoryResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// ListColors godoc
// @ID           listCatalogColors
// @Summary      List colors
// @Tags         catalog
// @Produce      json
// @Success      200 {object} dto.Response{data=[]catalogapp.ColorResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/colors [get]
func (h *CatalogHandler) ListColors(c *gin.Context) {
	colors, err := h.attributeService.ListColors(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, colors)
}

// ListSizes godoc
// @ID           listCatalogSizes
// @Summary      List sizes
// @Description  Sizes in display order
// @Tags         catalog
// @Produce      json
// @Success      200 {object} dto.Response{data=[]catalogapp.SizeResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/sizes [get]
func (h *CatalogHandler) ListSizes(c *gin.Context) {
	sizes, err := h.attributeService.ListSizes(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sizes)
}
