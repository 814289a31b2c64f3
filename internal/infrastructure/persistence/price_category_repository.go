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

// GormPriceCategoryRepository implements PriceCategoryRepository using GORM
type GormPriceCategoryRepository struct {
	db *gorm.DB
}

// NewGormPriceCategoryRepository creates a new GormPriceCategoryRepository
func NewGormPriceCategoryRepository(db *gorm.DB) *GormPriceCategoryRepository {
	return &GormPriceCategoryRepository{db: db}
}

// FindByID finds a price category by its ID
func (r *GormPriceCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.PriceCategory, error) {
	var model models.PriceCategoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySupplier returns the supplier's own categories. The ordering is
// what makes fallback resolution deterministic, so it stays fixed here
// rather than being caller supplied.
func (r *GormPriceCategoryRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]partner.PriceCategory, error) {
	var rows []models.PriceCategoryModel
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("name ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	categories := make([]partner.PriceCategory, len(rows))
	for i := range rows {
		categories[i] = *rows[i].ToDomain()
	}
	return categories, nil
}

// FindSystemDefault returns the shared category with no supplier
func (r *GormPriceCategoryRepository) FindSystemDefault(ctx context.Context) (*partner.PriceCategory, error) {
	var model models.PriceCategoryModel
	if err := r.db.WithContext(ctx).
		Where("supplier_id IS NULL").
		Order("created_at ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a price category
func (r *GormPriceCategoryRepository) Save(ctx context.Context, category *partner.PriceCategory) error {
	model := models.PriceCategoryModelFromDomain(category)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	category.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Delete deletes a price category and its adjustments
func (r *GormPriceCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PriceAdjustmentModel{}, "category_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.PriceCategoryModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormPriceCategoryRepository implements PriceCategoryRepository
var _ partner.PriceCategoryRepository = (*GormPriceCategoryRepository)(nil)
