package pricing

import (
	"context"
	"errors"

	"github.com/compras/backend/internal/domain/catalog"
	"github.com/compras/backend/internal/domain/partner"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceResolver computes the effective unit price of a product under a
// pricing category: base price plus the category's fixed adjustment.
type PriceResolver struct {
	adjustmentRepo partner.PriceAdjustmentRepository
}

// NewPriceResolver creates a new price resolver
func NewPriceResolver(adjustmentRepo partner.PriceAdjustmentRepository) *PriceResolver {
	return &PriceResolver{adjustmentRepo: adjustmentRepo}
}

// ResolvePrice returns product.BasePrice plus the adjustment registered
// for (product, category). A missing adjustment row means zero, not an
// error.
func (r *PriceResolver) ResolvePrice(ctx context.Context, product *catalog.Product, category *partner.PriceCategory) (decimal.Decimal, error) {
	adjustment, err := r.adjustmentRepo.FindByProductAndCategory(ctx, product.ID, category.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return product.BasePrice, nil
		}
		return decimal.Zero, err
	}
	return product.BasePrice.Add(adjustment.Amount), nil
}

// CategoryResolver picks the pricing category that applies to a
// supplier. Resolution order: the requested category when it is owned
// by the supplier (or is the system default), then the supplier's first
// own category by name ascending with id as tie-break, then the system
// default category. When none of those exist the system is
// misconfigured and resolution fails.
type CategoryResolver struct {
	categoryRepo partner.PriceCategoryRepository
}

// NewCategoryResolver creates a new category resolver
func NewCategoryResolver(categoryRepo partner.PriceCategoryRepository) *CategoryResolver {
	return &CategoryResolver{categoryRepo: categoryRepo}
}

// ResolveCategory resolves the category for a supplier. requestedID may
// be nil to skip straight to the fallback chain.
func (r *CategoryResolver) ResolveCategory(ctx context.Context, supplierID uuid.UUID, requestedID *uuid.UUID) (*partner.PriceCategory, error) {
	if requestedID != nil {
		category, err := r.categoryRepo.FindByID(ctx, *requestedID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if category != nil && (category.BelongsTo(supplierID) || category.IsSystemDefault()) {
			return category, nil
		}
	}

	own, err := r.categoryRepo.FindBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if len(own) > 0 {
		return &own[0], nil
	}

	fallback, err := r.categoryRepo.FindSystemDefault(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CONFIGURATION_ERROR", "No pricing category available: supplier has no categories and the system default is missing")
		}
		return nil, err
	}
	return fallback, nil
}
