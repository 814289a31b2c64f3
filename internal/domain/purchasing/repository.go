package purchasing

import (
	"context"

	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Filter keys understood by PurchaseRepository.FindAll:
// "supplier_id" (uuid string), "bucket" ("open" or "closed"),
// "date_from" and "date_to" (RFC 3339 dates).
const (
	FilterSupplierID = "supplier_id"
	FilterBucket     = "bucket"
	FilterDateFrom   = "date_from"
	FilterDateTo     = "date_to"

	BucketOpen   = "open"
	BucketClosed = "closed"
)

// PurchaseRepository defines persistence operations for purchases.
// FindByID and FindAll load line items together with the header.
type PurchaseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Purchase, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, purchase *Purchase) error
	// Update rewrites the header and replaces the stored line items
	// with the aggregate's current set.
	Update(ctx context.Context, purchase *Purchase) error
	// Delete removes the header and its line items
	Delete(ctx context.Context, id uuid.UUID) error
	// ExistsForSupplier reports whether any purchase references the
	// supplier. Used to guard supplier deletion.
	ExistsForSupplier(ctx context.Context, supplierID uuid.UUID) (bool, error)
}
