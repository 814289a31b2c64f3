package handler

import (
	partnerapp "github.com/compras/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles operations on individual pricing categories
type CategoryHandler struct {
	BaseHandler
	categoryService *partnerapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *partnerapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// RegisterRoutes registers category routes
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.PUT("/:id", h.Rename)
		categories.DELETE("/:id", h.Delete)
		categories.PUT("/:id/adjustments", h.UpsertAdjustment)
		categories.GET("/:id/price-table", h.PriceTable)
	}
}

// Rename renames a category
func (h *CategoryHandler) Rename(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	var req partnerapp.RenameCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Rename(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, category)
}

// Delete removes a supplier-owned category and its adjustments
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// UpsertAdjustment writes the price adjustment for a product under the category
func (h *CategoryHandler) UpsertAdjustment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	var req partnerapp.UpsertAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.categoryService.UpsertAdjustment(c.Request.Context(), id, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// PriceTable returns the effective price of every product under the category
func (h *CategoryHandler) PriceTable(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	table, err := h.categoryService.PriceTable(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, table)
}
