package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/compras/backend/internal/domain/ledger"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/compras/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLedgerEntryRepository implements LedgerEntryRepository using GORM
type GormLedgerEntryRepository struct {
	db *gorm.DB
}

// NewGormLedgerEntryRepository creates a new GormLedgerEntryRepository
func NewGormLedgerEntryRepository(db *gorm.DB) *GormLedgerEntryRepository {
	return &GormLedgerEntryRepository{db: db}
}

// FindByID finds a ledger entry by its ID
func (r *GormLedgerEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.LedgerEntry, error) {
	var model models.LedgerEntryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySupplier returns the supplier's entries ordered by date
// ascending, optionally bounded by the date range
func (r *GormLedgerEntryRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, from, to *time.Time) ([]ledger.LedgerEntry, error) {
	query := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID)
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	var rows []models.LedgerEntryModel
	if err := query.Order("date ASC, created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]ledger.LedgerEntry, len(rows))
	for i := range rows {
		entries[i] = *rows[i].ToDomain()
	}
	return entries, nil
}

// FindByPurchase lists the entries linked to a purchase
func (r *GormLedgerEntryRepository) FindByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]ledger.LedgerEntry, error) {
	var rows []models.LedgerEntryModel
	if err := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]ledger.LedgerEntry, len(rows))
	for i := range rows {
		entries[i] = *rows[i].ToDomain()
	}
	return entries, nil
}

// Save creates or updates a ledger entry
func (r *GormLedgerEntryRepository) Save(ctx context.Context, entry *ledger.LedgerEntry) error {
	model := models.LedgerEntryModelFromDomain(entry)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	entry.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Delete deletes a ledger entry
func (r *GormLedgerEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.LedgerEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteForPurchase removes every entry linked to the purchase.
// Deleting zero rows is fine, the purchase may carry no adjustment.
func (r *GormLedgerEntryRepository) DeleteForPurchase(ctx context.Context, purchaseID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.LedgerEntryModel{}, "purchase_id = ?", purchaseID).Error
}

// Ensure GormLedgerEntryRepository implements LedgerEntryRepository
var _ ledger.LedgerEntryRepository = (*GormLedgerEntryRepository)(nil)
