package partner

import (
	"context"

	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierRepository defines persistence operations for suppliers
type SupplierRepository interface {
	shared.Repository[Supplier]
	// FindByScaleNumber looks a supplier up by its external scale number
	FindByScaleNumber(ctx context.Context, scaleNumber string) (*Supplier, error)
}

// BankAccountRepository defines persistence operations for bank accounts
type BankAccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BankAccount, error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]BankAccount, error)
	FindDefaultForSupplier(ctx context.Context, supplierID uuid.UUID) (*BankAccount, error)
	Save(ctx context.Context, account *BankAccount) error
	// ClearDefaultForSupplier removes the default flag from every account
	// of the supplier. Called before flagging a new default.
	ClearDefaultForSupplier(ctx context.Context, supplierID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PriceCategoryRepository defines persistence operations for categories
type PriceCategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PriceCategory, error)
	// FindBySupplier returns the supplier's own categories ordered by
	// name ascending, id ascending.
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]PriceCategory, error)
	// FindSystemDefault returns the shared fallback category, or
	// shared.ErrNotFound when it has not been seeded.
	FindSystemDefault(ctx context.Context) (*PriceCategory, error)
	Save(ctx context.Context, category *PriceCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PriceAdjustmentRepository defines persistence operations for adjustments
type PriceAdjustmentRepository interface {
	// FindByProductAndCategory returns the adjustment for the pair, or
	// shared.ErrNotFound when none exists.
	FindByProductAndCategory(ctx context.Context, productID, categoryID uuid.UUID) (*PriceAdjustment, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]PriceAdjustment, error)
	// Upsert writes the adjustment, overwriting any existing row for the
	// same (product, category) pair.
	Upsert(ctx context.Context, adjustment *PriceAdjustment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
