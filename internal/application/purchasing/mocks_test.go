package purchasing

import (
	"context"
	"time"

	"github.com/compras/backend/internal/domain/catalog"
	"github.com/compras/backend/internal/domain/ledger"
	"github.com/compras/backend/internal/domain/partner"
	"github.com/compras/backend/internal/domain/purchasing"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPurchaseRepository is a mock implementation of purchasing.PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

var _ purchasing.PurchaseRepository = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchasing.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]purchasing.Purchase, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]purchasing.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseRepository) Save(ctx context.Context, purchase *purchasing.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Update(ctx context.Context, purchase *purchasing.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPurchaseRepository) ExistsForSupplier(ctx context.Context, supplierID uuid.UUID) (bool, error) {
	args := m.Called(ctx, supplierID)
	return args.Bool(0), args.Error(1)
}

// MockLedgerEntryRepository is a mock implementation of ledger.LedgerEntryRepository
type MockLedgerEntryRepository struct {
	mock.Mock
}

var _ ledger.LedgerEntryRepository = (*MockLedgerEntryRepository)(nil)

func (m *MockLedgerEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.LedgerEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, from, to *time.Time) ([]ledger.LedgerEntry, error) {
	args := m.Called(ctx, supplierID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) FindByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]ledger.LedgerEntry, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) Save(ctx context.Context, entry *ledger.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedgerEntryRepository) DeleteForPurchase(ctx context.Context, purchaseID uuid.UUID) error {
	args := m.Called(ctx, purchaseID)
	return args.Error(0)
}

// MockSupplierRepository is a mock implementation of partner.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

var _ partner.SupplierRepository = (*MockSupplierRepository)(nil)

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) FindByScaleNumber(ctx context.Context, scaleNumber string) (*partner.Supplier, error) {
	args := m.Called(ctx, scaleNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

var _ catalog.ProductRepository = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockBankAccountRepository is a mock implementation of partner.BankAccountRepository
type MockBankAccountRepository struct {
	mock.Mock
}

var _ partner.BankAccountRepository = (*MockBankAccountRepository)(nil)

func (m *MockBankAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.BankAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]partner.BankAccount, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) FindDefaultForSupplier(ctx context.Context, supplierID uuid.UUID) (*partner.BankAccount, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) Save(ctx context.Context, account *partner.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) ClearDefaultForSupplier(ctx context.Context, supplierID uuid.UUID) error {
	args := m.Called(ctx, supplierID)
	return args.Error(0)
}

func (m *MockBankAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPriceCategoryRepository is a mock implementation of partner.PriceCategoryRepository
type MockPriceCategoryRepository struct {
	mock.Mock
}

var _ partner.PriceCategoryRepository = (*MockPriceCategoryRepository)(nil)

func (m *MockPriceCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.PriceCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.PriceCategory), args.Error(1)
}

func (m *MockPriceCategoryRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]partner.PriceCategory, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.PriceCategory), args.Error(1)
}

func (m *MockPriceCategoryRepository) FindSystemDefault(ctx context.Context) (*partner.PriceCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.PriceCategory), args.Error(1)
}

func (m *MockPriceCategoryRepository) Save(ctx context.Context, category *partner.PriceCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockPriceCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPriceAdjustmentRepository is a mock implementation of partner.PriceAdjustmentRepository
type MockPriceAdjustmentRepository struct {
	mock.Mock
}

var _ partner.PriceAdjustmentRepository = (*MockPriceAdjustmentRepository)(nil)

func (m *MockPriceAdjustmentRepository) FindByProductAndCategory(ctx context.Context, productID, categoryID uuid.UUID) (*partner.PriceAdjustment, error) {
	args := m.Called(ctx, productID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.PriceAdjustment), args.Error(1)
}

func (m *MockPriceAdjustmentRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]partner.PriceAdjustment, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.PriceAdjustment), args.Error(1)
}

func (m *MockPriceAdjustmentRepository) Upsert(ctx context.Context, adjustment *partner.PriceAdjustment) error {
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

func (m *MockPriceAdjustmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
