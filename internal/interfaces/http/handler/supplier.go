package handler

import (
	partnerapp "github.com/compras/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// SupplierHandler handles supplier API endpoints, including the nested
// bank account and category collections.
type SupplierHandler struct {
	BaseHandler
	supplierService *partnerapp.SupplierService
	accountService  *partnerapp.BankAccountService
	categoryService *partnerapp.CategoryService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(
	supplierService *partnerapp.SupplierService,
	accountService *partnerapp.BankAccountService,
	categoryService *partnerapp.CategoryService,
) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
		accountService:  accountService,
		categoryService: categoryService,
	}
}

// RegisterRoutes registers supplier routes
func (h *SupplierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.Create)
		suppliers.GET("", h.List)
		suppliers.GET("/by-scale/:number", h.GetByScaleNumber)
		suppliers.GET("/:id", h.GetByID)
		suppliers.PUT("/:id", h.Update)
		suppliers.DELETE("/:id", h.Delete)

		suppliers.GET("/:id/bank-accounts", h.ListBankAccounts)
		suppliers.POST("/:id/bank-accounts", h.CreateBankAccount)

		suppliers.GET("/:id/categories", h.ListCategories)
		suppliers.POST("/:id/categories", h.CreateCategory)
	}
}

// Create registers a new supplier
func (h *SupplierHandler) Create(c *gin.Context) {
	var req partnerapp.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	supplier, err := h.supplierService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, supplier)
}

// List returns suppliers with their balances, paginated
func (h *SupplierHandler) List(c *gin.Context) {
	filter, err := listFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.supplierService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetByID returns a supplier by id
func (h *SupplierHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	supplier, err := h.supplierService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, supplier)
}

// GetByScaleNumber looks a supplier up by its scale number
func (h *SupplierHandler) GetByScaleNumber(c *gin.Context) {
	number := c.Param("number")

	supplier, err := h.supplierService.GetByScaleNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, supplier)
}

// Update edits a supplier
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req partnerapp.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	supplier, err := h.supplierService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, supplier)
}

// Delete removes a supplier that no purchase references
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ListBankAccounts lists the supplier's payment accounts
func (h *SupplierHandler) ListBankAccounts(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	accounts, err := h.accountService.ListBySupplier(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, accounts)
}

// CreateBankAccount registers a payment account for the supplier
func (h *SupplierHandler) CreateBankAccount(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req partnerapp.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	account, err := h.accountService.Create(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, account)
}

// ListCategories lists the supplier's pricing categories
func (h *SupplierHandler) ListCategories(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	categories, err := h.categoryService.ListBySupplier(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, categories)
}

// CreateCategory creates a pricing category owned by the supplier
func (h *SupplierHandler) CreateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req partnerapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, category)
}
