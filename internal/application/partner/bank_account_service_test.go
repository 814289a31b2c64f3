package partner

import (
	"context"
	"testing"

	"github.com/compras/backend/internal/domain/partner"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountFixture(t *testing.T) (*BankAccountService, *MockBankAccountRepository, *MockSupplierRepository, *partner.Supplier) {
	t.Helper()
	accountRepo := new(MockBankAccountRepository)
	supplierRepo := new(MockSupplierRepository)
	service := NewBankAccountService(accountRepo, supplierRepo)

	supplier, err := partner.NewSupplier("Sítio Boa Vista", "", "42")
	require.NoError(t, err)
	return service, accountRepo, supplierRepo, supplier
}

func TestBankAccountService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("plain account", func(t *testing.T) {
		service, accountRepo, supplierRepo, supplier := newAccountFixture(t)
		supplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
		accountRepo.On("Save", ctx, mock.AnythingOfType("*partner.BankAccount")).Return(nil)

		resp, err := service.Create(ctx, supplier.ID, CreateBankAccountRequest{
			Nickname:      "Conta da feira",
			Bank:          "Itaú",
			Agency:        "0001",
			AccountNumber: "12345-6",
			Document:      "12.345.678/0001-90",
		})
		require.NoError(t, err)
		assert.False(t, resp.IsDefault)
		assert.Equal(t, "CNPJ", resp.DocumentKind)
		accountRepo.AssertNotCalled(t, "ClearDefaultForSupplier", mock.Anything, mock.Anything)
	})

	t.Run("set_default clears the previous default first", func(t *testing.T) {
		service, accountRepo, supplierRepo, supplier := newAccountFixture(t)
		supplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
		accountRepo.On("ClearDefaultForSupplier", ctx, supplier.ID).Return(nil)
		accountRepo.On("Save", ctx, mock.Anything).Return(nil)

		resp, err := service.Create(ctx, supplier.ID, CreateBankAccountRequest{
			Nickname:      "Principal",
			Bank:          "Bradesco",
			AccountNumber: "999",
			SetDefault:    true,
		})
		require.NoError(t, err)
		assert.True(t, resp.IsDefault)
		accountRepo.AssertCalled(t, "ClearDefaultForSupplier", ctx, supplier.ID)
	})

	t.Run("unknown supplier rejected", func(t *testing.T) {
		service, accountRepo, supplierRepo, _ := newAccountFixture(t)
		missing := uuid.New()
		supplierRepo.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, missing, CreateBankAccountRequest{
			Nickname: "x", Bank: "y", AccountNumber: "z",
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		accountRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestBankAccountService_SetDefault(t *testing.T) {
	ctx := context.Background()
	service, accountRepo, _, supplier := newAccountFixture(t)

	account, err := partner.NewBankAccount(supplier.ID, "Nova", "Caixa", "", "777", "")
	require.NoError(t, err)

	accountRepo.On("FindByID", ctx, account.ID).Return(account, nil)
	accountRepo.On("ClearDefaultForSupplier", ctx, supplier.ID).Return(nil)
	accountRepo.On("Save", ctx, account).Return(nil)

	resp, err := service.SetDefault(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsDefault)
	accountRepo.AssertExpectations(t)
}

func TestBankAccountService_PaymentText(t *testing.T) {
	ctx := context.Background()
	service, accountRepo, _, supplier := newAccountFixture(t)

	account, err := partner.NewBankAccount(supplier.ID, "Conta da feira", "Itaú", "0001", "12345-6", "123.456.789-00")
	require.NoError(t, err)
	accountRepo.On("FindByID", ctx, account.ID).Return(account, nil)

	text, err := service.PaymentText(ctx, account.ID, decimal.NewFromFloat(85))
	require.NoError(t, err)
	assert.Contains(t, text, "R$ 85.00")
	assert.Contains(t, text, "CPF: 123.456.789-00")
}

func TestBankAccountService_ListBySupplier(t *testing.T) {
	ctx := context.Background()
	service, accountRepo, supplierRepo, supplier := newAccountFixture(t)

	account, err := partner.NewBankAccount(supplier.ID, "Única", "Itaú", "", "1", "")
	require.NoError(t, err)

	supplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
	accountRepo.On("FindBySupplier", ctx, supplier.ID).Return([]partner.BankAccount{*account}, nil)

	accounts, err := service.ListBySupplier(ctx, supplier.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Única", accounts[0].Nickname)
}
