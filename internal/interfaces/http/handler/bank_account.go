package handler

import (
	partnerapp "github.com/compras/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BankAccountHandler handles operations on individual bank accounts
type BankAccountHandler struct {
	BaseHandler
	accountService *partnerapp.BankAccountService
}

// NewBankAccountHandler creates a new BankAccountHandler
func NewBankAccountHandler(accountService *partnerapp.BankAccountService) *BankAccountHandler {
	return &BankAccountHandler{accountService: accountService}
}

// RegisterRoutes registers bank account routes
func (h *BankAccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/bank-accounts")
	{
		accounts.PUT("/:id", h.Update)
		accounts.DELETE("/:id", h.Delete)
		accounts.POST("/:id/default", h.SetDefault)
		accounts.GET("/:id/payment-text", h.PaymentText)
	}
}

// Update edits a bank account
func (h *BankAccountHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid bank account ID")
		return
	}

	var req partnerapp.UpdateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	account, err := h.accountService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, account)
}

// Delete removes a bank account
func (h *BankAccountHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid bank account ID")
		return
	}

	if err := h.accountService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// SetDefault flags the account as its supplier's default
func (h *BankAccountHandler) SetDefault(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid bank account ID")
		return
	}

	account, err := h.accountService.SetDefault(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, account)
}

// paymentTextQuery carries the amount rendered into the payment block
type paymentTextQuery struct {
	Amount decimal.Decimal `form:"amount"`
}

// PaymentText renders the copyable payment block for the account
func (h *BankAccountHandler) PaymentText(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid bank account ID")
		return
	}

	var query paymentTextQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	text, err := h.accountService.PaymentText(c.Request.Context(), id, query.Amount)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"text": text})
}
