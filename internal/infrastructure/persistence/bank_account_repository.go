package persistence

import (
	"context"
	"errors"

	"github.com/compras/backend/internal/domain/partner"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/compras/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBankAccountRepository implements BankAccountRepository using GORM
type GormBankAccountRepository struct {
	db *gorm.DB
}

// NewGormBankAccountRepository creates a new GormBankAccountRepository
func NewGormBankAccountRepository(db *gorm.DB) *GormBankAccountRepository {
	return &GormBankAccountRepository{db: db}
}

// FindByID finds a bank account by its ID
func (r *GormBankAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.BankAccount, error) {
	var model models.BankAccountModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySupplier lists the supplier's bank accounts, default first
func (r *GormBankAccountRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]partner.BankAccount, error) {
	var rows []models.BankAccountModel
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("is_default DESC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	accounts := make([]partner.BankAccount, len(rows))
	for i := range rows {
		accounts[i] = *rows[i].ToDomain()
	}
	return accounts, nil
}

// FindDefaultForSupplier returns the supplier's default account
func (r *GormBankAccountRepository) FindDefaultForSupplier(ctx context.Context, supplierID uuid.UUID) (*partner.BankAccount, error) {
	var model models.BankAccountModel
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ? AND is_default = ?", supplierID, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a bank account
func (r *GormBankAccountRepository) Save(ctx context.Context, account *partner.BankAccount) error {
	model := models.BankAccountModelFromDomain(account)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	account.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// ClearDefaultForSupplier removes the default flag from all of the
// supplier's accounts
func (r *GormBankAccountRepository) ClearDefaultForSupplier(ctx context.Context, supplierID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.BankAccountModel{}).
		Where("supplier_id = ? AND is_default = ?", supplierID, true).
		Update("is_default", false).Error
}

// Delete deletes a bank account
func (r *GormBankAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BankAccountModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormBankAccountRepository implements BankAccountRepository
var _ partner.BankAccountRepository = (*GormBankAccountRepository)(nil)
