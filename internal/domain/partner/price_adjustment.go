package partner

import (
	"time"

	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceAdjustment is a signed amount added to a product's base price
// when bought under a given category. The (product, category) pair is
// unique; a missing row means zero adjustment.
type PriceAdjustment struct {
	shared.BaseEntity
	ProductID  uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
}

// NewPriceAdjustment creates an adjustment for a (product, category) pair
func NewPriceAdjustment(productID, categoryID uuid.UUID, amount decimal.Decimal) (*PriceAdjustment, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Price adjustment requires a product")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Price adjustment requires a category")
	}

	return &PriceAdjustment{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		CategoryID: categoryID,
		Amount:     amount,
	}, nil
}

// SetAmount overwrites the adjustment value
func (a *PriceAdjustment) SetAmount(amount decimal.Decimal) {
	a.Amount = amount
	a.UpdatedAt = time.Now()
}
