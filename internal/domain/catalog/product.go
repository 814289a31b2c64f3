package catalog

import (
	"strings"
	"time"

	"github.com/compras/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a purchasable product in the catalog context
type Product struct {
	shared.BaseEntity
	Name      string
	BasePrice decimal.Decimal
}

// NewProduct creates a new product with a non-negative base price
func NewProduct(name string, basePrice decimal.Decimal) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if basePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_BASE_PRICE", "Base price cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		BasePrice:  basePrice,
	}, nil
}

// Update updates the product's name and base price
func (p *Product) Update(name string, basePrice decimal.Decimal) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if basePrice.IsNegative() {
		return shared.NewDomainError("INVALID_BASE_PRICE", "Base price cannot be negative")
	}

	p.Name = name
	p.BasePrice = basePrice
	p.UpdatedAt = time.Now()

	return nil
}

func validateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
