package persistence

import (
	"context"
	"errors"

	"github.com/compras/backend/internal/domain/partner"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/compras/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPriceAdjustmentRepository implements PriceAdjustmentRepository using GORM
type GormPriceAdjustmentRepository struct {
	db *gorm.DB
}

// NewGormPriceAdjustmentRepository creates a new GormPriceAdjustmentRepository
func NewGormPriceAdjustmentRepository(db *gorm.DB) *GormPriceAdjustmentRepository {
	return &GormPriceAdjustmentRepository{db: db}
}

// FindByProductAndCategory returns the adjustment for the pair
func (r *GormPriceAdjustmentRepository) FindByProductAndCategory(ctx context.Context, productID, categoryID uuid.UUID) (*partner.PriceAdjustment, error) {
	var model models.PriceAdjustmentModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND category_id = ?", productID, categoryID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCategory lists all adjustments of a category
func (r *GormPriceAdjustmentRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]partner.PriceAdjustment, error) {
	var rows []models.PriceAdjustmentModel
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	adjustments := make([]partner.PriceAdjustment, len(rows))
	for i := range rows {
		adjustments[i] = *rows[i].ToDomain()
	}
	return adjustments, nil
}

// Upsert writes the adjustment, overwriting the amount of an existing
// row for the same (product, category) pair
func (r *GormPriceAdjustmentRepository) Upsert(ctx context.Context, adjustment *partner.PriceAdjustment) error {
	model := models.PriceAdjustmentModelFromDomain(adjustment)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "category_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).
		Create(model).Error; err != nil {
		return err
	}

	// On conflict the stored row keeps its original id, so read the
	// authoritative record back.
	stored, err := r.FindByProductAndCategory(ctx, adjustment.ProductID, adjustment.CategoryID)
	if err != nil {
		return err
	}
	adjustment.BaseEntity = stored.BaseEntity
	return nil
}

// Delete deletes a price adjustment
func (r *GormPriceAdjustmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PriceAdjustmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPriceAdjustmentRepository implements PriceAdjustmentRepository
var _ partner.PriceAdjustmentRepository = (*GormPriceAdjustmentRepository)(nil)
