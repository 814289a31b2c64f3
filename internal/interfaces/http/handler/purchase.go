package handler

import (
	purchasingapp "github.com/compras/backend/internal/application/purchasing"
	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles purchase API endpoints
type PurchaseHandler struct {
	BaseHandler
	purchaseService *purchasingapp.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(purchaseService *purchasingapp.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// RegisterRoutes registers purchase routes
func (h *PurchaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.Create)
		purchases.GET("", h.List)
		purchases.GET("/:id", h.GetByID)
		purchases.GET("/:id/detail", h.Detail)
		purchases.GET("/:id/linked-entry", h.LinkedEntry)
		purchases.PUT("/:id", h.Update)
		purchases.PATCH("/:id/status", h.ChangeStatus)
		purchases.DELETE("/:id", h.Delete)
	}
}

// Create finalizes a new purchase
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req purchasingapp.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	purchase, err := h.purchaseService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, purchase)
}

// List returns purchases filtered by supplier, bucket and date range
func (h *PurchaseHandler) List(c *gin.Context) {
	var filter purchasingapp.PurchaseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.purchaseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetByID returns a purchase with its computed values
func (h *PurchaseHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	purchase, err := h.purchaseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, purchase)
}

// Detail returns the purchase with supplier, payment account and
// ledger context resolved
func (h *PurchaseHandler) Detail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	detail, err := h.purchaseService.Detail(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, detail)
}

// LinkedEntry reports whether the purchase carries a ledger entry
func (h *PurchaseHandler) LinkedEntry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	linked, err := h.purchaseService.HasLinkedEntry(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, linked)
}

// Update replaces the full financial shape of a purchase
func (h *PurchaseHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	var req purchasingapp.UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	purchase, err := h.purchaseService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, purchase)
}

// ChangeStatus moves a purchase to another lifecycle stage
func (h *PurchaseHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	var req purchasingapp.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	purchase, err := h.purchaseService.ChangeStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, purchase)
}

// Delete removes a purchase together with its ledger effect
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid purchase ID")
		return
	}

	if err := h.purchaseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
