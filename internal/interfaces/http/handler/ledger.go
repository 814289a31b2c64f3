package handler

import (
	ledgerapp "github.com/compras/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles supplier ledger API endpoints
type LedgerHandler struct {
	BaseHandler
	ledgerService *ledgerapp.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService *ledgerapp.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// RegisterRoutes registers ledger routes
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ledger := rg.Group("/ledger")
	{
		ledger.POST("/entries", h.CreateEntry)
		ledger.DELETE("/entries/:id", h.DeleteEntry)
	}

	suppliers := rg.Group("/suppliers")
	{
		suppliers.GET("/:id/ledger", h.History)
		suppliers.GET("/:id/balance", h.Balance)
	}
}

// CreateEntry records a manual advance or discount
func (h *LedgerHandler) CreateEntry(c *gin.Context) {
	var req ledgerapp.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, entry)
}

// DeleteEntry removes a manual entry. Purchase-linked entries are
// managed through their purchase and cannot be deleted here.
func (h *LedgerHandler) DeleteEntry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid entry ID")
		return
	}

	if err := h.ledgerService.DeleteEntry(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// History returns the supplier's ledger history, optionally bounded by
// a date window
func (h *LedgerHandler) History(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	var filter ledgerapp.HistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	history, err := h.ledgerService.History(c.Request.Context(), id, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, history)
}

// Balance returns the supplier's running balance
func (h *LedgerHandler) Balance(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	balance, err := h.ledgerService.Balance(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, balance)
}
