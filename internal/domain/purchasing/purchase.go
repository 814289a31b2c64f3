package purchasing

import (
	"time"

	"github.com/compras/backend/internal/domain/ledger"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one product line of a purchase. The unit price is frozen
// at the moment the item is added; later price changes never alter it.
type LineItem struct {
	shared.BaseEntity
	PurchaseID  uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// LineTotal returns quantity times the frozen unit price
func (i *LineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// ItemInput carries the data for one line item of a create or edit
type ItemInput struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// Purchase is the aggregate root of the purchasing context. It owns the
// header, the line items and the denormalized total, and decides the
// single ledger entry a purchase may produce.
type Purchase struct {
	shared.BaseEntity
	SupplierID     uuid.UUID
	Date           time.Time
	Status         Status
	BankAccountID  *uuid.UUID
	Items          []LineItem
	Total          decimal.Decimal
	AbatementValue decimal.Decimal
}

// NewPurchase creates a purchase with at least one line item. An empty
// status defaults to Created; the caller may choose any valid initial
// status.
func NewPurchase(supplierID uuid.UUID, date time.Time, status Status, items []ItemInput, bankAccountID *uuid.UUID) (*Purchase, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Purchase requires a supplier")
	}
	if status == "" {
		status = StatusCreated
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown purchase status: "+string(status))
	}
	if date.IsZero() {
		date = time.Now()
	}

	p := &Purchase{
		BaseEntity:     shared.NewBaseEntity(),
		SupplierID:     supplierID,
		Date:           date,
		Status:         status,
		BankAccountID:  bankAccountID,
		Total:          decimal.Zero,
		AbatementValue: decimal.Zero,
	}
	if err := p.ReplaceItems(items); err != nil {
		return nil, err
	}
	return p, nil
}

// ReplaceItems swaps the full set of line items and recomputes the
// total. Line items are never patched individually; every edit replaces
// the whole financial shape of the purchase.
func (p *Purchase) ReplaceItems(items []ItemInput) error {
	if len(items) == 0 {
		return shared.NewDomainError("EMPTY_ITEMS", "Purchase must have at least one line item")
	}

	lineItems := make([]LineItem, 0, len(items))
	for _, in := range items {
		if in.ProductID == uuid.Nil {
			return shared.NewDomainError("INVALID_ITEM", "Line item requires a product")
		}
		if in.Quantity <= 0 {
			return shared.NewDomainError("INVALID_QUANTITY", "Line item quantity must be positive")
		}
		if in.UnitPrice.IsNegative() {
			return shared.NewDomainError("INVALID_UNIT_PRICE", "Line item unit price cannot be negative")
		}
		lineItems = append(lineItems, LineItem{
			BaseEntity:  shared.NewBaseEntity(),
			PurchaseID:  p.ID,
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
		})
	}

	p.Items = lineItems
	p.recalculateTotal()
	p.UpdatedAt = time.Now()
	return nil
}

// UpdateHeader updates supplier, date and payment account during an edit
func (p *Purchase) UpdateHeader(supplierID uuid.UUID, date time.Time, bankAccountID *uuid.UUID) error {
	if supplierID == uuid.Nil {
		return shared.NewDomainError("INVALID_SUPPLIER", "Purchase requires a supplier")
	}
	if date.IsZero() {
		date = time.Now()
	}

	p.SupplierID = supplierID
	p.Date = date
	p.BankAccountID = bankAccountID
	p.UpdatedAt = time.Now()
	return nil
}

// ChangeStatus moves the purchase to another lifecycle stage
func (p *Purchase) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown purchase status: "+string(status))
	}
	if !p.Status.CanTransitionTo(status) {
		return shared.NewDomainError("INVALID_STATE", "Purchase cannot move from "+string(p.Status)+" to "+string(status))
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	return nil
}

// ApplyAdjustment resolves the purchase's single ledger effect. A zero
// value produces no entry; a positive value produces exactly one entry
// of the given type linked to this purchase. The abatement snapshot on
// the header tracks the active discount for quick display.
func (p *Purchase) ApplyAdjustment(entryType ledger.EntryType, value decimal.Decimal, description string) (*ledger.LedgerEntry, error) {
	if value.IsNegative() {
		return nil, shared.NewDomainError("INVALID_ADJUSTMENT", "Adjustment value cannot be negative")
	}

	p.AbatementValue = decimal.Zero
	p.UpdatedAt = time.Now()
	if value.IsZero() {
		return nil, nil
	}

	entry, err := ledger.NewLedgerEntry(p.SupplierID, &p.ID, p.Date, description, value, entryType)
	if err != nil {
		return nil, err
	}
	if entry.IsDiscount() {
		p.AbatementValue = value
	}
	return entry, nil
}

// IsClosed reports whether the purchase belongs to the closed bucket
func (p *Purchase) IsClosed() bool {
	return p.Status.IsClosed()
}

func (p *Purchase) recalculateTotal() {
	total := decimal.Zero
	for i := range p.Items {
		total = total.Add(p.Items[i].LineTotal())
	}
	p.Total = total
}
