package purchasing

import (
	"time"

	"github.com/compras/backend/internal/domain/ledger"
	"github.com/compras/backend/internal/domain/purchasing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Requests ====================

// PurchaseItemInput represents one line item in a create or edit request.
// UnitPrice, when set, overrides the resolved category price; CategoryID,
// when set, overrides the purchase-level category for this line only.
type PurchaseItemInput struct {
	ProductID  uuid.UUID        `json:"product_id" binding:"required"`
	Quantity   int64            `json:"quantity" binding:"required,gt=0"`
	CategoryID *uuid.UUID       `json:"category_id"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
}

// AdjustmentInput is the single advance-or-discount value attached to a purchase
type AdjustmentInput struct {
	Type        ledger.EntryType `json:"type" binding:"required,oneof=ADVANCE DISCOUNT"`
	Value       decimal.Decimal  `json:"value"`
	Description string           `json:"description"`
}

// CreatePurchaseRequest represents a request to finalize a new purchase
type CreatePurchaseRequest struct {
	SupplierID    uuid.UUID           `json:"supplier_id" binding:"required"`
	Date          time.Time           `json:"date"`
	Status        purchasing.Status   `json:"status"`
	CategoryID    *uuid.UUID          `json:"category_id"`
	BankAccountID *uuid.UUID          `json:"bank_account_id"`
	Items         []PurchaseItemInput `json:"items" binding:"required,min=1,dive"`
	Adjustment    *AdjustmentInput    `json:"adjustment"`
}

// UpdatePurchaseRequest replaces the full financial shape of a purchase
type UpdatePurchaseRequest struct {
	SupplierID    uuid.UUID           `json:"supplier_id" binding:"required"`
	Date          time.Time           `json:"date"`
	Status        purchasing.Status   `json:"status" binding:"required"`
	CategoryID    *uuid.UUID          `json:"category_id"`
	BankAccountID *uuid.UUID          `json:"bank_account_id"`
	Items         []PurchaseItemInput `json:"items" binding:"required,min=1,dive"`
	Adjustment    *AdjustmentInput    `json:"adjustment"`
}

// ChangeStatusRequest moves a purchase to another lifecycle stage
type ChangeStatusRequest struct {
	Status purchasing.Status `json:"status" binding:"required"`
}

// PurchaseListFilter represents filter options for the purchase list
type PurchaseListFilter struct {
	SupplierID *uuid.UUID `form:"supplier_id"`
	Bucket     string     `form:"bucket" binding:"omitempty,oneof=open closed"`
	DateFrom   *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo     *time.Time `form:"date_to" time_format:"2006-01-02"`
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ==================== Responses ====================

// PurchaseItemResponse represents one line item of a purchase
type PurchaseItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// AdjustmentResponse describes the purchase-linked ledger entry, if any
type AdjustmentResponse struct {
	EntryID     uuid.UUID        `json:"entry_id"`
	Type        ledger.EntryType `json:"type"`
	Value       decimal.Decimal  `json:"value"`
	Description string           `json:"description"`
}

// PurchaseResponse represents a purchase with its computed values
type PurchaseResponse struct {
	ID             uuid.UUID              `json:"id"`
	SupplierID     uuid.UUID              `json:"supplier_id"`
	Date           time.Time              `json:"date"`
	Status         purchasing.Status      `json:"status"`
	StatusLabel    string                 `json:"status_label"`
	Closed         bool                   `json:"closed"`
	BankAccountID  *uuid.UUID             `json:"bank_account_id,omitempty"`
	Items          []PurchaseItemResponse `json:"items"`
	Total          decimal.Decimal        `json:"total"`
	AbatementValue decimal.Decimal        `json:"abatement_value"`
	AdjustedTotal  decimal.Decimal        `json:"adjusted_total"`
	Adjustment     *AdjustmentResponse    `json:"adjustment,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// PurchaseListRow is the compact shape used by the purchase list
type PurchaseListRow struct {
	ID             uuid.UUID         `json:"id"`
	SupplierID     uuid.UUID         `json:"supplier_id"`
	Date           time.Time         `json:"date"`
	Status         purchasing.Status `json:"status"`
	StatusLabel    string            `json:"status_label"`
	Closed         bool              `json:"closed"`
	Total          decimal.Decimal   `json:"total"`
	AdjustedTotal  decimal.Decimal   `json:"adjusted_total"`
	AbatementValue decimal.Decimal   `json:"abatement_value"`
}

// LinkedEntryResponse answers the pre-delete warning query
type LinkedEntryResponse struct {
	Exists bool              `json:"exists"`
	Type   *ledger.EntryType `json:"type,omitempty"`
	Value  *decimal.Decimal  `json:"value,omitempty"`
}

// BankAccountDetail carries the payment account shown on the purchase detail
type BankAccountDetail struct {
	ID            uuid.UUID `json:"id"`
	Nickname      string    `json:"nickname"`
	Bank          string    `json:"bank"`
	Agency        string    `json:"agency"`
	AccountNumber string    `json:"account_number"`
	Document      string    `json:"document"`
	DocumentKind  string    `json:"document_kind"`
	IsDefault     bool      `json:"is_default"`
}

// PurchaseDetailResponse is the structured data handed to the external
// document exporter: header, supplier identification, line items, the
// linked ledger entry, the payment account and the running balance.
type PurchaseDetailResponse struct {
	Purchase        PurchaseResponse   `json:"purchase"`
	SupplierName    string             `json:"supplier_name"`
	ScaleNumber     string             `json:"scale_number"`
	SupplierBalance decimal.Decimal    `json:"supplier_balance"`
	BankAccount     *BankAccountDetail `json:"bank_account,omitempty"`
	PaymentText     string             `json:"payment_text,omitempty"`
}

// ==================== Mapping helpers ====================

// ToPurchaseResponse maps the aggregate plus its linked ledger entry
func ToPurchaseResponse(p *purchasing.Purchase, entry *ledger.LedgerEntry) PurchaseResponse {
	items := make([]PurchaseItemResponse, 0, len(p.Items))
	for i := range p.Items {
		item := &p.Items[i]
		items = append(items, PurchaseItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal(),
		})
	}

	resp := PurchaseResponse{
		ID:             p.ID,
		SupplierID:     p.SupplierID,
		Date:           p.Date,
		Status:         p.Status,
		StatusLabel:    p.Status.Label(),
		Closed:         p.IsClosed(),
		BankAccountID:  p.BankAccountID,
		Items:          items,
		Total:          p.Total,
		AbatementValue: p.AbatementValue,
		AdjustedTotal:  AdjustedTotal(p.Total, entry),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if entry != nil {
		resp.Adjustment = &AdjustmentResponse{
			EntryID:     entry.ID,
			Type:        entry.Type,
			Value:       entry.Value,
			Description: entry.Description,
		}
	}
	return resp
}

// ToPurchaseListRow maps a purchase to its list shape
func ToPurchaseListRow(p *purchasing.Purchase, entry *ledger.LedgerEntry) PurchaseListRow {
	return PurchaseListRow{
		ID:             p.ID,
		SupplierID:     p.SupplierID,
		Date:           p.Date,
		Status:         p.Status,
		StatusLabel:    p.Status.Label(),
		Closed:         p.IsClosed(),
		Total:          p.Total,
		AdjustedTotal:  AdjustedTotal(p.Total, entry),
		AbatementValue: p.AbatementValue,
	}
}

// AdjustedTotal applies the purchase's single ledger effect to its
// total: plus the advance when one exists, minus the discount
// otherwise. The two cases are mutually exclusive because a purchase
// carries at most one linked entry.
func AdjustedTotal(total decimal.Decimal, entry *ledger.LedgerEntry) decimal.Decimal {
	if entry == nil {
		return total
	}
	if entry.IsAdvance() {
		return total.Add(entry.Value)
	}
	return total.Sub(entry.Value)
}
