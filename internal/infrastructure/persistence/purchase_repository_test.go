package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/compras/backend/internal/domain/purchasing"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPurchase(t *testing.T, supplierID uuid.UUID, date time.Time, status purchasing.Status) *purchasing.Purchase {
	t.Helper()
	purchase, err := purchasing.NewPurchase(supplierID, date, status, []purchasing.ItemInput{
		{ProductID: uuid.New(), ProductName: "Tomate", Quantity: 3, UnitPrice: decimal.RequireFromString("12.00")},
		{ProductID: uuid.New(), ProductName: "Alface", Quantity: 2, UnitPrice: decimal.RequireFromString("2.50")},
	}, nil)
	require.NoError(t, err)
	return purchase
}

func TestGormPurchaseRepository_SaveAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseRepository(db)
	ctx := context.Background()

	purchase := newTestPurchase(t, uuid.New(), time.Now(), purchasing.StatusCreated)
	require.NoError(t, repo.Save(ctx, purchase))

	found, err := repo.FindByID(ctx, purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, purchase.SupplierID, found.SupplierID)
	assert.Equal(t, purchasing.StatusCreated, found.Status)
	require.Len(t, found.Items, 2)
	assert.True(t, found.Total.Equal(decimal.RequireFromString("41.00")))
}

func TestGormPurchaseRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormPurchaseRepository_Update_ReplacesItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseRepository(db)
	ctx := context.Background()

	purchase := newTestPurchase(t, uuid.New(), time.Now(), purchasing.StatusCreated)
	require.NoError(t, repo.Save(ctx, purchase))

	require.NoError(t, purchase.ReplaceItems([]purchasing.ItemInput{
		{ProductID: uuid.New(), ProductName: "Cenoura", Quantity: 5, UnitPrice: decimal.RequireFromString("4.00")},
	}))
	require.NoError(t, repo.Update(ctx, purchase))

	found, err := repo.FindByID(ctx, purchase.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Cenoura", found.Items[0].ProductName)
	assert.True(t, found.Total.Equal(decimal.RequireFromString("20.00")))

	// No orphaned rows remain
	var itemCount int64
	require.NoError(t, db.Table("purchase_items").Count(&itemCount).Error)
	assert.Equal(t, int64(1), itemCount)
}

func TestGormPurchaseRepository_FindAll_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseRepository(db)
	ctx := context.Background()

	supplierID := uuid.New()
	otherSupplierID := uuid.New()

	january := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	march := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	open := newTestPurchase(t, supplierID, january, purchasing.StatusCreated)
	require.NoError(t, repo.Save(ctx, open))

	closed := newTestPurchase(t, supplierID, march, purchasing.StatusCompleted)
	require.NoError(t, repo.Save(ctx, closed))

	other := newTestPurchase(t, otherSupplierID, march, purchasing.StatusCreated)
	require.NoError(t, repo.Save(ctx, other))

	bySupplier, err := repo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 10, Filters: map[string]interface{}{
		purchasing.FilterSupplierID: supplierID,
	}})
	require.NoError(t, err)
	assert.Len(t, bySupplier, 2)

	openOnly, err := repo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 10, Filters: map[string]interface{}{
		purchasing.FilterSupplierID: supplierID,
		purchasing.FilterBucket:     purchasing.BucketOpen,
	}})
	require.NoError(t, err)
	require.Len(t, openOnly, 1)
	assert.Equal(t, open.ID, openOnly[0].ID)

	closedOnly, err := repo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 10, Filters: map[string]interface{}{
		purchasing.FilterBucket: purchasing.BucketClosed,
	}})
	require.NoError(t, err)
	require.Len(t, closedOnly, 1)
	assert.Equal(t, closed.ID, closedOnly[0].ID)

	february := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	recent, err := repo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 10, Filters: map[string]interface{}{
		purchasing.FilterDateFrom: february,
	}})
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	count, err := repo.Count(ctx, shared.Filter{Filters: map[string]interface{}{
		purchasing.FilterSupplierID: supplierID,
	}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormPurchaseRepository_FindAll_DefaultOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseRepository(db)
	ctx := context.Background()
	supplierID := uuid.New()

	older := newTestPurchase(t, supplierID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), purchasing.StatusCreated)
	require.NoError(t, repo.Save(ctx, older))

	newer := newTestPurchase(t, supplierID, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), purchasing.StatusCreated)
	require.NoError(t, repo.Save(ctx, newer))

	purchases, err := repo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, purchases, 2)
	assert.Equal(t, newer.ID, purchases[0].ID)
}

func TestGormPurchaseRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseRepository(db)
	ctx := context.Background()

	purchase := newTestPurchase(t, uuid.New(), time.Now(), purchasing.StatusCreated)
	require.NoError(t, repo.Save(ctx, purchase))

	require.NoError(t, repo.Delete(ctx, purchase.ID))

	_, err := repo.FindByID(ctx, purchase.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	var itemCount int64
	require.NoError(t, db.Table("purchase_items").Count(&itemCount).Error)
	assert.Equal(t, int64(0), itemCount)

	assert.ErrorIs(t, repo.Delete(ctx, purchase.ID), shared.ErrNotFound)
}

func TestGormPurchaseRepository_ExistsForSupplier(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseRepository(db)
	ctx := context.Background()
	supplierID := uuid.New()

	exists, err := repo.ExistsForSupplier(ctx, supplierID)
	require.NoError(t, err)
	assert.False(t, exists)

	purchase := newTestPurchase(t, supplierID, time.Now(), purchasing.StatusCreated)
	require.NoError(t, repo.Save(ctx, purchase))

	exists, err = repo.ExistsForSupplier(ctx, supplierID)
	require.NoError(t, err)
	assert.True(t, exists)
}
