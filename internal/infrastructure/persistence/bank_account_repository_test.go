package persistence

import (
	"context"
	"testing"

	"github.com/compras/backend/internal/domain/partner"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormBankAccountRepository_SaveAndFindBySupplier(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBankAccountRepository(db)
	ctx := context.Background()
	supplierID := uuid.New()

	first, err := partner.NewBankAccount(supplierID, "Conta principal", "Banco do Brasil", "1234", "56789-0", "123.456.789-09")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := partner.NewBankAccount(supplierID, "Conta poupança", "Caixa", "4321", "98765-0", "")
	require.NoError(t, err)
	second.MarkDefault()
	require.NoError(t, repo.Save(ctx, second))

	accounts, err := repo.FindBySupplier(ctx, supplierID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	// Default account comes first
	assert.Equal(t, "Conta poupança", accounts[0].Nickname)
	assert.True(t, accounts[0].IsDefault)
}

func TestGormBankAccountRepository_FindDefaultForSupplier(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBankAccountRepository(db)
	ctx := context.Background()
	supplierID := uuid.New()

	_, err := repo.FindDefaultForSupplier(ctx, supplierID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	account, err := partner.NewBankAccount(supplierID, "Conta principal", "Itaú", "0001", "11111-1", "")
	require.NoError(t, err)
	account.MarkDefault()
	require.NoError(t, repo.Save(ctx, account))

	found, err := repo.FindDefaultForSupplier(ctx, supplierID)
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
}

func TestGormBankAccountRepository_ClearDefaultForSupplier(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBankAccountRepository(db)
	ctx := context.Background()
	supplierID := uuid.New()
	otherSupplierID := uuid.New()

	mine, err := partner.NewBankAccount(supplierID, "Conta principal", "Itaú", "0001", "11111-1", "")
	require.NoError(t, err)
	mine.MarkDefault()
	require.NoError(t, repo.Save(ctx, mine))

	other, err := partner.NewBankAccount(otherSupplierID, "Conta principal", "Bradesco", "0002", "22222-2", "")
	require.NoError(t, err)
	other.MarkDefault()
	require.NoError(t, repo.Save(ctx, other))

	require.NoError(t, repo.ClearDefaultForSupplier(ctx, supplierID))

	_, err = repo.FindDefaultForSupplier(ctx, supplierID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// Other suppliers keep their default
	found, err := repo.FindDefaultForSupplier(ctx, otherSupplierID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, found.ID)
}

func TestGormBankAccountRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBankAccountRepository(db)
	ctx := context.Background()

	account, err := partner.NewBankAccount(uuid.New(), "Conta principal", "Itaú", "0001", "11111-1", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, account))

	require.NoError(t, repo.Delete(ctx, account.ID))
	assert.ErrorIs(t, repo.Delete(ctx, account.ID), shared.ErrNotFound)
}
