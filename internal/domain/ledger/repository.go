package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LedgerEntryRepository defines persistence operations for ledger entries
type LedgerEntryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LedgerEntry, error)
	// FindBySupplier returns the supplier's entries ordered by date
	// ascending. from and to bound the date range when non-nil.
	FindBySupplier(ctx context.Context, supplierID uuid.UUID, from, to *time.Time) ([]LedgerEntry, error)
	FindByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]LedgerEntry, error)
	Save(ctx context.Context, entry *LedgerEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteForPurchase removes every entry linked to the purchase.
	// Deleting zero rows is not an error.
	DeleteForPurchase(ctx context.Context, purchaseID uuid.UUID) error
}
