package partner

import (
	"strings"
	"time"

	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DefaultCategoryName is the name of the shared system-wide fallback
// category used when a supplier has no category of its own.
const DefaultCategoryName = "Padrão"

// PriceCategory is a pricing tier a supplier's products are bought
// under. A nil SupplierID marks the shared system default category.
type PriceCategory struct {
	shared.BaseEntity
	SupplierID *uuid.UUID
	Name       string
}

// NewPriceCategory creates a category owned by a supplier
func NewPriceCategory(supplierID uuid.UUID, name string) (*PriceCategory, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Price category requires a supplier")
	}
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	sid := supplierID
	return &PriceCategory{
		BaseEntity: shared.NewBaseEntity(),
		SupplierID: &sid,
		Name:       name,
	}, nil
}

// NewSystemDefaultCategory creates the shared fallback category
func NewSystemDefaultCategory() *PriceCategory {
	return &PriceCategory{
		BaseEntity: shared.NewBaseEntity(),
		SupplierID: nil,
		Name:       DefaultCategoryName,
	}
}

// IsSystemDefault reports whether this is the shared fallback category
func (c *PriceCategory) IsSystemDefault() bool {
	return c.SupplierID == nil
}

// Rename changes the category name
func (c *PriceCategory) Rename(name string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

// BelongsTo reports whether the category is owned by the given supplier
func (c *PriceCategory) BelongsTo(supplierID uuid.UUID) bool {
	return c.SupplierID != nil && *c.SupplierID == supplierID
}

func validateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}
