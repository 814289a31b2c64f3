package handler

import (
	catalogapp "github.com/compras/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:id", h.GetByID)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

// Create registers a new product
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, product)
}

// List returns products, paginated
func (h *ProductHandler) List(c *gin.Context) {
	filter, err := listFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetByID returns a product by id
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Update edits a product's name and base price
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
