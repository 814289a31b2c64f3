package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/compras/backend/internal/domain/partner"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/compras/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	var model models.SupplierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByScaleNumber finds a supplier by its scale number
func (r *GormSupplierRepository) FindByScaleNumber(ctx context.Context, scaleNumber string) (*partner.Supplier, error) {
	if scaleNumber == "" {
		return nil, shared.ErrNotFound
	}
	var model models.SupplierModel
	if err := r.db.WithContext(ctx).
		Where("scale_number = ?", scaleNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all suppliers matching the filter
func (r *GormSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	var rows []models.SupplierModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.SupplierModel{}), filter)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	suppliers := make([]partner.Supplier, len(rows))
	for i := range rows {
		suppliers[i] = *rows[i].ToDomain()
	}
	return suppliers, nil
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	model := models.SupplierModelFromDomain(supplier)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateKey(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	supplier.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Delete deletes a supplier
func (r *GormSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SupplierModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts suppliers matching the filter
func (r *GormSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.SupplierModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormSupplierRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderBy := ValidateSortField(filter.OrderBy, SupplierSortFields, "created_at")
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("name ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormSupplierRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("name ILIKE ? OR scale_number ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "scale_number":
			query = query.Where("scale_number = ?", value)
		}
	}

	return query
}

// Ensure GormSupplierRepository implements SupplierRepository
var _ partner.SupplierRepository = (*GormSupplierRepository)(nil)
