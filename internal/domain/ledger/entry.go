package ledger

import (
	"strings"
	"time"

	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType tags the direction of a ledger entry
type EntryType string

const (
	// EntryTypeAdvance increases what the supplier owes back to the buyer
	EntryTypeAdvance EntryType = "ADVANCE"
	// EntryTypeDiscount decreases what the supplier owes back
	EntryTypeDiscount EntryType = "DISCOUNT"
)

// IsValid reports whether the entry type is known
func (t EntryType) IsValid() bool {
	return t == EntryTypeAdvance || t == EntryTypeDiscount
}

// LedgerEntry is one debt or credit movement on a supplier's account.
// Value is always a positive magnitude; direction is carried by Type.
// A nil PurchaseID marks a manually entered, standalone entry.
type LedgerEntry struct {
	shared.BaseEntity
	SupplierID  uuid.UUID
	PurchaseID  *uuid.UUID
	Date        time.Time
	Description string
	Value       decimal.Decimal
	Type        EntryType
}

// NewLedgerEntry creates a ledger entry. purchaseID may be nil for a
// manual entry.
func NewLedgerEntry(supplierID uuid.UUID, purchaseID *uuid.UUID, date time.Time, description string, value decimal.Decimal, entryType EntryType) (*LedgerEntry, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Ledger entry requires a supplier")
	}
	if !value.IsPositive() {
		return nil, shared.NewDomainError("INVALID_ENTRY_VALUE", "Ledger entry value must be positive")
	}
	if !entryType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ENTRY_TYPE", "Ledger entry type must be ADVANCE or DISCOUNT")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &LedgerEntry{
		BaseEntity:  shared.NewBaseEntity(),
		SupplierID:  supplierID,
		PurchaseID:  purchaseID,
		Date:        date,
		Description: strings.TrimSpace(description),
		Value:       value,
		Type:        entryType,
	}, nil
}

// IsManual reports whether the entry was created by an operator rather
// than by a purchase
func (e *LedgerEntry) IsManual() bool {
	return e.PurchaseID == nil
}

// IsAdvance reports whether the entry increases the supplier's debt
func (e *LedgerEntry) IsAdvance() bool {
	return e.Type == EntryTypeAdvance
}

// IsDiscount reports whether the entry decreases the supplier's debt
func (e *LedgerEntry) IsDiscount() bool {
	return e.Type == EntryTypeDiscount
}

// Signed returns the value with the sign implied by the type: positive
// for advances, negative for discounts.
func (e *LedgerEntry) Signed() decimal.Decimal {
	if e.IsDiscount() {
		return e.Value.Neg()
	}
	return e.Value
}
