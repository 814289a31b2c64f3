package ledger

import (
	"time"

	"github.com/compras/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest records a manual advance or discount. The supplier
// may be addressed by id or by its scale number; exactly one must be
// set.
type CreateEntryRequest struct {
	SupplierID  *uuid.UUID       `json:"supplier_id"`
	ScaleNumber string           `json:"scale_number"`
	Date        time.Time        `json:"date"`
	Description string           `json:"description"`
	Value       decimal.Decimal  `json:"value" binding:"required"`
	Type        ledger.EntryType `json:"type" binding:"required,oneof=ADVANCE DISCOUNT"`
}

// HistoryFilter bounds the ledger history query
type HistoryFilter struct {
	DateFrom *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"date_to" time_format:"2006-01-02"`
}

// EntryResponse represents one ledger entry
type EntryResponse struct {
	ID          uuid.UUID        `json:"id"`
	SupplierID  uuid.UUID        `json:"supplier_id"`
	PurchaseID  *uuid.UUID       `json:"purchase_id,omitempty"`
	Manual      bool             `json:"manual"`
	Date        time.Time        `json:"date"`
	Description string           `json:"description"`
	Value       decimal.Decimal  `json:"value"`
	Signed      decimal.Decimal  `json:"signed"`
	Type        ledger.EntryType `json:"type"`
	CreatedAt   time.Time        `json:"created_at"`
}

// HistoryResponse is the supplier's ledger history plus the balance
// over the filtered window and the overall running balance.
type HistoryResponse struct {
	SupplierID    uuid.UUID       `json:"supplier_id"`
	Entries       []EntryResponse `json:"entries"`
	WindowBalance decimal.Decimal `json:"window_balance"`
	Balance       decimal.Decimal `json:"balance"`
}

// BalanceResponse is a supplier's running balance
type BalanceResponse struct {
	SupplierID uuid.UUID       `json:"supplier_id"`
	Balance    decimal.Decimal `json:"balance"`
	// Settled is true when the balance is exactly zero
	Settled bool `json:"settled"`
	// Debtor is true when the supplier owes the buyer
	Debtor bool `json:"debtor"`
}

// ToEntryResponse maps a domain entry
func ToEntryResponse(e *ledger.LedgerEntry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		SupplierID:  e.SupplierID,
		PurchaseID:  e.PurchaseID,
		Manual:      e.IsManual(),
		Date:        e.Date,
		Description: e.Description,
		Value:       e.Value,
		Signed:      e.Signed(),
		Type:        e.Type,
		CreatedAt:   e.CreatedAt,
	}
}
