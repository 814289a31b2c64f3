package partner

import (
	"context"

	"github.com/compras/backend/internal/domain/ledger"
	"github.com/compras/backend/internal/domain/partner"
	"github.com/compras/backend/internal/domain/purchasing"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierService handles supplier registration and lookup
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	purchaseRepo purchasing.PurchaseRepository
	balanceCalc  *ledger.BalanceCalculator
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, purchaseRepo purchasing.PurchaseRepository, balanceCalc *ledger.BalanceCalculator) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		purchaseRepo: purchaseRepo,
		balanceCalc:  balanceCalc,
	}
}

// Create registers a new supplier. The scale number must be unique;
// the repository surfaces ALREADY_EXISTS on collision.
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(req.Name, req.Address, req.ScaleNumber)
	if err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier, decimal.Zero)
	return &resp, nil
}

// Update edits a supplier's registration data
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := supplier.Update(req.Name, req.Address, req.ScaleNumber); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return s.withBalance(ctx, supplier)
}

// GetByID returns a supplier with its running balance
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withBalance(ctx, supplier)
}

// GetByScaleNumber looks a supplier up by its external scale number
func (s *SupplierService) GetByScaleNumber(ctx context.Context, scaleNumber string) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByScaleNumber(ctx, scaleNumber)
	if err != nil {
		return nil, err
	}
	return s.withBalance(ctx, supplier)
}

// List returns suppliers with their balances
func (s *SupplierService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[SupplierResponse], error) {
	suppliers, err := s.supplierRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.supplierRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		balance, err := s.balanceCalc.Balance(ctx, suppliers[i].ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, ToSupplierResponse(&suppliers[i], balance))
	}

	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Delete removes a supplier. Deletion is forbidden while any purchase
// references it.
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return err
	}
	referenced, err := s.purchaseRepo.ExistsForSupplier(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return shared.ErrSupplierReferenced
	}
	return s.supplierRepo.Delete(ctx, id)
}

func (s *SupplierService) withBalance(ctx context.Context, supplier *partner.Supplier) (*SupplierResponse, error) {
	balance, err := s.balanceCalc.Balance(ctx, supplier.ID)
	if err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier, balance)
	return &resp, nil
}
