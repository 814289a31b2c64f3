package partner

import (
	"strings"
	"time"

	"github.com/compras/backend/internal/domain/shared"
)

// Supplier represents a supplier in the partner context
// It is the aggregate root for supplier-related operations
type Supplier struct {
	shared.BaseEntity
	Name        string
	Address     string
	ScaleNumber string // external lookup key printed on the weighing scale
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(name, address, scaleNumber string) (*Supplier, error) {
	if err := validateSupplierName(name); err != nil {
		return nil, err
	}
	if err := validateScaleNumber(scaleNumber); err != nil {
		return nil, err
	}

	return &Supplier{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Address:     address,
		ScaleNumber: strings.TrimSpace(scaleNumber),
	}, nil
}

// Update updates the supplier's information
func (s *Supplier) Update(name, address, scaleNumber string) error {
	if err := validateSupplierName(name); err != nil {
		return err
	}
	if err := validateScaleNumber(scaleNumber); err != nil {
		return err
	}

	s.Name = name
	s.Address = address
	s.ScaleNumber = strings.TrimSpace(scaleNumber)
	s.UpdatedAt = time.Now()

	return nil
}

func validateSupplierName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot exceed 200 characters")
	}
	return nil
}

func validateScaleNumber(scaleNumber string) error {
	if strings.TrimSpace(scaleNumber) == "" {
		return shared.NewDomainError("INVALID_SCALE_NUMBER", "Scale number cannot be empty")
	}
	if len(scaleNumber) > 50 {
		return shared.NewDomainError("INVALID_SCALE_NUMBER", "Scale number cannot exceed 50 characters")
	}
	return nil
}
