package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/compras/backend/internal/domain/identity"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/compras/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by its ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Where("username = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all users matching the filter
func (r *GormUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	var rows []models.UserModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.UserModel{}), filter)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]identity.User, len(rows))
	for i := range rows {
		users[i] = *rows[i].ToDomain()
	}
	return users, nil
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateKey(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	user.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Delete deletes a user
func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts users matching the filter
func (r *GormUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.UserModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormUserRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderBy := ValidateSortField(filter.OrderBy, UserSortFields, "created_at")
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("username ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormUserRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("username ILIKE ? OR display_name ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "role":
			query = query.Where("role = ?", value)
		case "active":
			query = query.Where("active = ?", value)
		}
	}

	return query
}

// Ensure GormUserRepository implements UserRepository
var _ identity.UserRepository = (*GormUserRepository)(nil)
