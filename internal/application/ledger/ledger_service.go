package ledger

import (
	"context"

	"github.com/compras/backend/internal/domain/ledger"
	"github.com/compras/backend/internal/domain/partner"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LedgerService manages manual ledger entries and the derived views of
// a supplier's debt/credit history. Purchase-linked entries are owned
// by the purchasing service and only read here.
type LedgerService struct {
	entryRepo    ledger.LedgerEntryRepository
	supplierRepo partner.SupplierRepository
	balanceCalc  *ledger.BalanceCalculator
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(entryRepo ledger.LedgerEntryRepository, supplierRepo partner.SupplierRepository, balanceCalc *ledger.BalanceCalculator) *LedgerService {
	return &LedgerService{
		entryRepo:    entryRepo,
		supplierRepo: supplierRepo,
		balanceCalc:  balanceCalc,
	}
}

// CreateEntry records a manual advance or discount for a supplier
// addressed by id or scale number
func (s *LedgerService) CreateEntry(ctx context.Context, req CreateEntryRequest) (*EntryResponse, error) {
	supplier, err := s.resolveSupplier(ctx, req)
	if err != nil {
		return nil, err
	}

	entry, err := ledger.NewLedgerEntry(supplier.ID, nil, req.Date, req.Description, req.Value, req.Type)
	if err != nil {
		return nil, err
	}
	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	resp := ToEntryResponse(entry)
	return &resp, nil
}

// DeleteEntry removes a manual entry by id. Purchase-linked entries are
// replaced through purchase edits, never removed here.
func (s *LedgerService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	entry, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !entry.IsManual() {
		return shared.NewDomainError("ENTRY_LINKED", "Entry is linked to a purchase; edit the purchase instead")
	}
	return s.entryRepo.Delete(ctx, id)
}

// History returns the supplier's entries inside the date window, the
// balance of that window and the overall running balance
func (s *LedgerService) History(ctx context.Context, supplierID uuid.UUID, filter HistoryFilter) (*HistoryResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.FindBySupplier(ctx, supplierID, filter.DateFrom, filter.DateTo)
	if err != nil {
		return nil, err
	}
	balance, err := s.balanceCalc.Balance(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	responses := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, ToEntryResponse(&entries[i]))
	}

	return &HistoryResponse{
		SupplierID:    supplierID,
		Entries:       responses,
		WindowBalance: ledger.Sum(entries),
		Balance:       balance,
	}, nil
}

// Balance returns the supplier's running balance
func (s *LedgerService) Balance(ctx context.Context, supplierID uuid.UUID) (*BalanceResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}
	balance, err := s.balanceCalc.Balance(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return &BalanceResponse{
		SupplierID: supplierID,
		Balance:    balance,
		Settled:    balance.IsZero(),
		Debtor:     balance.IsPositive(),
	}, nil
}

func (s *LedgerService) resolveSupplier(ctx context.Context, req CreateEntryRequest) (*partner.Supplier, error) {
	switch {
	case req.SupplierID != nil:
		return s.supplierRepo.FindByID(ctx, *req.SupplierID)
	case req.ScaleNumber != "":
		return s.supplierRepo.FindByScaleNumber(ctx, req.ScaleNumber)
	default:
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Either supplier_id or scale_number must be provided")
	}
}
