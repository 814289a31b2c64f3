package partner

import (
	"time"

	"github.com/compras/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Supplier DTOs ====================

// CreateSupplierRequest represents a request to register a supplier
type CreateSupplierRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Address     string `json:"address" binding:"max=500"`
	ScaleNumber string `json:"scale_number" binding:"required,min=1,max=50"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Address     string `json:"address" binding:"max=500"`
	ScaleNumber string `json:"scale_number" binding:"required,min=1,max=50"`
}

// SupplierResponse represents a supplier
type SupplierResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	ScaleNumber string          `json:"scale_number"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToSupplierResponse maps a supplier with its computed balance
func ToSupplierResponse(s *partner.Supplier, balance decimal.Decimal) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		ScaleNumber: s.ScaleNumber,
		Balance:     balance,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ==================== Bank account DTOs ====================

// CreateBankAccountRequest registers a payment account for a supplier
type CreateBankAccountRequest struct {
	Nickname      string `json:"nickname" binding:"required,min=1,max=100"`
	Bank          string `json:"bank" binding:"required,min=1,max=200"`
	Agency        string `json:"agency" binding:"max=50"`
	AccountNumber string `json:"account_number" binding:"required,min=1,max=100"`
	Document      string `json:"document" binding:"max=30"`
	SetDefault    bool   `json:"set_default"`
}

// UpdateBankAccountRequest updates a payment account
type UpdateBankAccountRequest struct {
	Nickname      string `json:"nickname" binding:"required,min=1,max=100"`
	Bank          string `json:"bank" binding:"required,min=1,max=200"`
	Agency        string `json:"agency" binding:"max=50"`
	AccountNumber string `json:"account_number" binding:"required,min=1,max=100"`
	Document      string `json:"document" binding:"max=30"`
}

// BankAccountResponse represents a payment account
type BankAccountResponse struct {
	ID            uuid.UUID `json:"id"`
	SupplierID    uuid.UUID `json:"supplier_id"`
	Nickname      string    `json:"nickname"`
	Bank          string    `json:"bank"`
	Agency        string    `json:"agency"`
	AccountNumber string    `json:"account_number"`
	Document      string    `json:"document"`
	DocumentKind  string    `json:"document_kind"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToBankAccountResponse maps a bank account
func ToBankAccountResponse(a *partner.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:            a.ID,
		SupplierID:    a.SupplierID,
		Nickname:      a.Nickname,
		Bank:          a.Bank,
		Agency:        a.Agency,
		AccountNumber: a.AccountNumber,
		Document:      a.Document,
		DocumentKind:  a.DocumentKind(),
		IsDefault:     a.IsDefault,
		CreatedAt:     a.CreatedAt,
	}
}

// ==================== Category DTOs ====================

// CreateCategoryRequest creates a pricing category for a supplier
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// RenameCategoryRequest renames a category
type RenameCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CategoryResponse represents a pricing category
type CategoryResponse struct {
	ID            uuid.UUID  `json:"id"`
	SupplierID    *uuid.UUID `json:"supplier_id,omitempty"`
	Name          string     `json:"name"`
	SystemDefault bool       `json:"system_default"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ToCategoryResponse maps a category
func ToCategoryResponse(c *partner.PriceCategory) CategoryResponse {
	return CategoryResponse{
		ID:            c.ID,
		SupplierID:    c.SupplierID,
		Name:          c.Name,
		SystemDefault: c.IsSystemDefault(),
		CreatedAt:     c.CreatedAt,
	}
}

// UpsertAdjustmentRequest writes the price adjustment for a
// (product, category) pair, overwriting any prior value
type UpsertAdjustmentRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

// PriceTableRow is one product's pricing under a category
type PriceTableRow struct {
	ProductID      uuid.UUID       `json:"product_id"`
	ProductName    string          `json:"product_name"`
	BasePrice      decimal.Decimal `json:"base_price"`
	Adjustment     decimal.Decimal `json:"adjustment"`
	EffectivePrice decimal.Decimal `json:"effective_price"`
}

// PriceTableResponse is the full price table of a category
type PriceTableResponse struct {
	Category CategoryResponse `json:"category"`
	Rows     []PriceTableRow  `json:"rows"`
}
