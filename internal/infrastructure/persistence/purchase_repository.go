package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/compras/backend/internal/domain/purchasing"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/compras/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPurchaseRepository implements PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// FindByID finds a purchase with its line items
func (r *GormPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.Purchase, error) {
	var model models.PurchaseModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all purchases matching the filter, items included
func (r *GormPurchaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]purchasing.Purchase, error) {
	var rows []models.PurchaseModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PurchaseModel{}), filter)

	if err := query.Preload("Items").Find(&rows).Error; err != nil {
		return nil, err
	}

	purchases := make([]purchasing.Purchase, len(rows))
	for i := range rows {
		purchases[i] = *rows[i].ToDomain()
	}
	return purchases, nil
}

// Count counts purchases matching the filter
func (r *GormPurchaseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.PurchaseModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates a purchase together with its line items
func (r *GormPurchaseRepository) Save(ctx context.Context, purchase *purchasing.Purchase) error {
	model := models.PurchaseModelFromDomain(purchase)
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model).Error
	}); err != nil {
		return err
	}
	purchase.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Update rewrites the header and replaces the stored line items with
// the aggregate's current set
func (r *GormPurchaseRepository) Update(ctx context.Context, purchase *purchasing.Purchase) error {
	model := models.PurchaseModelFromDomain(purchase)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit("Items").Save(model)
		if result.Error != nil {
			return result.Error
		}
		if err := tx.Delete(&models.PurchaseItemModel{}, "purchase_id = ?", model.ID).Error; err != nil {
			return err
		}
		if len(model.Items) == 0 {
			return nil
		}
		return tx.Create(&model.Items).Error
	})
}

// Delete removes the header and its line items
func (r *GormPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PurchaseItemModel{}, "purchase_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.PurchaseModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// ExistsForSupplier reports whether any purchase references the supplier
func (r *GormPurchaseRepository) ExistsForSupplier(ctx context.Context, supplierID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PurchaseModel{}).
		Where("supplier_id = ?", supplierID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormPurchaseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderBy := ValidateSortField(filter.OrderBy, PurchaseSortFields, "date")
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("date DESC, created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPurchaseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case purchasing.FilterSupplierID:
			query = query.Where("supplier_id = ?", value)
		case purchasing.FilterBucket:
			switch value {
			case purchasing.BucketOpen:
				query = query.Where("status <> ?", purchasing.StatusCompleted)
			case purchasing.BucketClosed:
				query = query.Where("status = ?", purchasing.StatusCompleted)
			}
		case purchasing.FilterDateFrom:
			if t, ok := value.(time.Time); ok {
				query = query.Where("date >= ?", t)
			} else {
				query = query.Where("date >= ?", value)
			}
		case purchasing.FilterDateTo:
			if t, ok := value.(time.Time); ok {
				query = query.Where("date <= ?", t)
			} else {
				query = query.Where("date <= ?", value)
			}
		}
	}

	return query
}

// Ensure GormPurchaseRepository implements PurchaseRepository
var _ purchasing.PurchaseRepository = (*GormPurchaseRepository)(nil)
