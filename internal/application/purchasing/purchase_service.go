package purchasing

import (
	"context"

	"github.com/compras/backend/internal/domain/catalog"
	"github.com/compras/backend/internal/domain/ledger"
	"github.com/compras/backend/internal/domain/partner"
	"github.com/compras/backend/internal/domain/pricing"
	"github.com/compras/backend/internal/domain/purchasing"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/compras/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseService orchestrates the purchase lifecycle: finalize, edit,
// delete, status changes and the read views built on top of them.
type PurchaseService struct {
	purchaseRepo     purchasing.PurchaseRepository
	entryRepo        ledger.LedgerEntryRepository
	supplierRepo     partner.SupplierRepository
	productRepo      catalog.ProductRepository
	accountRepo      partner.BankAccountRepository
	categoryResolver *pricing.CategoryResolver
	priceResolver    *pricing.PriceResolver
	balanceCalc      *ledger.BalanceCalculator
	txScope          TransactionScope
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(
	purchaseRepo purchasing.PurchaseRepository,
	entryRepo ledger.LedgerEntryRepository,
	supplierRepo partner.SupplierRepository,
	productRepo catalog.ProductRepository,
	accountRepo partner.BankAccountRepository,
	categoryResolver *pricing.CategoryResolver,
	priceResolver *pricing.PriceResolver,
	balanceCalc *ledger.BalanceCalculator,
	txScope TransactionScope,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo:     purchaseRepo,
		entryRepo:        entryRepo,
		supplierRepo:     supplierRepo,
		productRepo:      productRepo,
		accountRepo:      accountRepo,
		categoryResolver: categoryResolver,
		priceResolver:    priceResolver,
		balanceCalc:      balanceCalc,
		txScope:          txScope,
	}
}

// Create finalizes a new purchase. Unit prices are resolved through the
// supplier's category at this moment and frozen on the line items; when
// the adjustment value is positive exactly one ledger entry is written
// together with the purchase.
func (s *PurchaseService) Create(ctx context.Context, req CreatePurchaseRequest) (*PurchaseResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	items, err := s.resolveItems(ctx, req.SupplierID, req.CategoryID, req.Items)
	if err != nil {
		return nil, err
	}

	purchase, err := purchasing.NewPurchase(req.SupplierID, req.Date, req.Status, items, req.BankAccountID)
	if err != nil {
		return nil, err
	}

	entry, err := applyAdjustment(purchase, req.Adjustment)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.PurchaseRepo().Save(ctx, purchase); err != nil {
			return err
		}
		if entry != nil {
			return repos.LedgerRepo().Save(ctx, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := ToPurchaseResponse(purchase, entry)
	return &resp, nil
}

// Update atomically replaces the purchase's financial shape: the prior
// ledger effect and line items are dropped, the new items are priced
// and inserted, the header is rewritten and at most one new ledger
// entry is created.
func (s *PurchaseService) Update(ctx context.Context, id uuid.UUID, req UpdatePurchaseRequest) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	items, err := s.resolveItems(ctx, req.SupplierID, req.CategoryID, req.Items)
	if err != nil {
		return nil, err
	}

	if err := purchase.UpdateHeader(req.SupplierID, req.Date, req.BankAccountID); err != nil {
		return nil, err
	}
	if err := purchase.ChangeStatus(req.Status); err != nil {
		return nil, err
	}
	if err := purchase.ReplaceItems(items); err != nil {
		return nil, err
	}

	entry, err := applyAdjustment(purchase, req.Adjustment)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.LedgerRepo().DeleteForPurchase(ctx, id); err != nil {
			return err
		}
		if err := repos.PurchaseRepo().Update(ctx, purchase); err != nil {
			return err
		}
		if entry != nil {
			return repos.LedgerRepo().Save(ctx, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := ToPurchaseResponse(purchase, entry)
	return &resp, nil
}

// Delete removes the purchase, its line items and any ledger entries
// linked to it, as one unit of work.
func (s *PurchaseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.purchaseRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.LedgerRepo().DeleteForPurchase(ctx, id); err != nil {
			return err
		}
		return repos.PurchaseRepo().Delete(ctx, id)
	})
}

// ChangeStatus moves the purchase to another lifecycle stage
func (s *PurchaseService) ChangeStatus(ctx context.Context, id uuid.UUID, req ChangeStatusRequest) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := purchase.ChangeStatus(req.Status); err != nil {
		return nil, err
	}
	if err := s.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, err
	}

	entry, err := s.linkedEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToPurchaseResponse(purchase, entry)
	return &resp, nil
}

// GetByID returns a purchase with its computed totals
func (s *PurchaseService) GetByID(ctx context.Context, id uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entry, err := s.linkedEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToPurchaseResponse(purchase, entry)
	return &resp, nil
}

// List returns purchases filtered by supplier, open/closed bucket and
// date range, each row carrying the total and the adjusted value.
func (s *PurchaseService) List(ctx context.Context, filter PurchaseListFilter) (*shared.Paginated[PurchaseListRow], error) {
	repoFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		repoFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		repoFilter.OrderDir = filter.OrderDir
	}
	if filter.SupplierID != nil {
		repoFilter.Filters[purchasing.FilterSupplierID] = filter.SupplierID.String()
	}
	if filter.Bucket != "" {
		repoFilter.Filters[purchasing.FilterBucket] = filter.Bucket
	}
	if filter.DateFrom != nil {
		repoFilter.Filters[purchasing.FilterDateFrom] = *filter.DateFrom
	}
	if filter.DateTo != nil {
		repoFilter.Filters[purchasing.FilterDateTo] = *filter.DateTo
	}

	purchases, err := s.purchaseRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.purchaseRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	rows := make([]PurchaseListRow, 0, len(purchases))
	for i := range purchases {
		entry, err := s.linkedEntry(ctx, purchases[i].ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ToPurchaseListRow(&purchases[i], entry))
	}

	result := shared.NewPaginated(rows, total, repoFilter.Page, repoFilter.PageSize)
	return &result, nil
}

// HasLinkedEntry answers the pre-delete warning query: whether a ledger
// entry is linked to the purchase and, if so, its type and value.
func (s *PurchaseService) HasLinkedEntry(ctx context.Context, id uuid.UUID) (*LinkedEntryResponse, error) {
	if _, err := s.purchaseRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	entry, err := s.linkedEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return &LinkedEntryResponse{Exists: false}, nil
	}
	return &LinkedEntryResponse{
		Exists: true,
		Type:   &entry.Type,
		Value:  &entry.Value,
	}, nil
}

// Detail assembles the structured data consumed by the external
// document exporter: header, supplier identification, line items,
// linked ledger entry, payment account and running balance.
func (s *PurchaseService) Detail(ctx context.Context, id uuid.UUID) (*PurchaseDetailResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	supplier, err := s.supplierRepo.FindByID(ctx, purchase.SupplierID)
	if err != nil {
		return nil, err
	}
	entry, err := s.linkedEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	balance, err := s.balanceCalc.Balance(ctx, purchase.SupplierID)
	if err != nil {
		return nil, err
	}

	detail := &PurchaseDetailResponse{
		Purchase:        ToPurchaseResponse(purchase, entry),
		SupplierName:    supplier.Name,
		ScaleNumber:     supplier.ScaleNumber,
		SupplierBalance: balance,
	}

	account, err := s.paymentAccount(ctx, purchase)
	if err != nil {
		return nil, err
	}
	if account != nil {
		detail.BankAccount = &BankAccountDetail{
			ID:            account.ID,
			Nickname:      account.Nickname,
			Bank:          account.Bank,
			Agency:        account.Agency,
			AccountNumber: account.AccountNumber,
			Document:      account.Document,
			DocumentKind:  account.DocumentKind(),
			IsDefault:     account.IsDefault,
		}
		detail.PaymentText = account.PaymentText(valueobject.NewMoneyBRL(detail.Purchase.AdjustedTotal))
	}
	return detail, nil
}

// paymentAccount picks the purchase's override account when set, the
// supplier's default otherwise. A supplier without accounts yields nil.
func (s *PurchaseService) paymentAccount(ctx context.Context, purchase *purchasing.Purchase) (*partner.BankAccount, error) {
	if purchase.BankAccountID != nil {
		account, err := s.accountRepo.FindByID(ctx, *purchase.BankAccountID)
		if err == nil {
			return account, nil
		}
		if !isNotFound(err) {
			return nil, err
		}
	}
	account, err := s.accountRepo.FindDefaultForSupplier(ctx, purchase.SupplierID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}

// linkedEntry returns the purchase's single linked ledger entry, or nil
func (s *PurchaseService) linkedEntry(ctx context.Context, purchaseID uuid.UUID) (*ledger.LedgerEntry, error) {
	entries, err := s.entryRepo.FindByPurchase(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// resolveItems turns request items into priced line items. The
// purchase-level category is resolved once and reused; a line may
// request a different category, and an explicit unit price skips
// resolution entirely.
func (s *PurchaseService) resolveItems(ctx context.Context, supplierID uuid.UUID, requestedCategoryID *uuid.UUID, inputs []PurchaseItemInput) ([]purchasing.ItemInput, error) {
	defaultCategory, err := s.categoryResolver.ResolveCategory(ctx, supplierID, requestedCategoryID)
	if err != nil {
		return nil, err
	}

	items := make([]purchasing.ItemInput, 0, len(inputs))
	for _, in := range inputs {
		product, err := s.productRepo.FindByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}

		item := purchasing.ItemInput{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    in.Quantity,
		}
		switch {
		case in.UnitPrice != nil:
			item.UnitPrice = *in.UnitPrice
		default:
			category := defaultCategory
			if in.CategoryID != nil {
				category, err = s.categoryResolver.ResolveCategory(ctx, supplierID, in.CategoryID)
				if err != nil {
					return nil, err
				}
			}
			item.UnitPrice, err = s.priceResolver.ResolvePrice(ctx, product, category)
			if err != nil {
				return nil, err
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func applyAdjustment(purchase *purchasing.Purchase, in *AdjustmentInput) (*ledger.LedgerEntry, error) {
	if in == nil {
		return purchase.ApplyAdjustment(ledger.EntryTypeAdvance, decimal.Zero, "")
	}
	return purchase.ApplyAdjustment(in.Type, in.Value, in.Description)
}

func isNotFound(err error) bool {
	domainErr, ok := err.(*shared.DomainError)
	return ok && domainErr.Code == shared.ErrNotFound.Code
}
