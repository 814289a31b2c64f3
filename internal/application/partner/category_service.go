package partner

import (
	"context"
	"errors"

	"github.com/compras/backend/internal/domain/catalog"
	"github.com/compras/backend/internal/domain/partner"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryService manages pricing categories and their adjustment tables
type CategoryService struct {
	categoryRepo   partner.PriceCategoryRepository
	adjustmentRepo partner.PriceAdjustmentRepository
	productRepo    catalog.ProductRepository
	supplierRepo   partner.SupplierRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo partner.PriceCategoryRepository,
	adjustmentRepo partner.PriceAdjustmentRepository,
	productRepo catalog.ProductRepository,
	supplierRepo partner.SupplierRepository,
) *CategoryService {
	return &CategoryService{
		categoryRepo:   categoryRepo,
		adjustmentRepo: adjustmentRepo,
		productRepo:    productRepo,
		supplierRepo:   supplierRepo,
	}
}

// Create adds a pricing category to a supplier
func (s *CategoryService) Create(ctx context.Context, supplierID uuid.UUID, req CreateCategoryRequest) (*CategoryResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}
	category, err := partner.NewPriceCategory(supplierID, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Rename changes a category's name
func (s *CategoryService) Rename(ctx context.Context, id uuid.UUID, req RenameCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := category.Rename(req.Name); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// ListBySupplier returns a supplier's categories in resolution order
func (s *CategoryService) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]CategoryResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.FindBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, ToCategoryResponse(&categories[i]))
	}
	return responses, nil
}

// Delete removes a category. The system default cannot be deleted.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category.IsSystemDefault() {
		return shared.NewDomainError("DEFAULT_CATEGORY", "The system default category cannot be deleted")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// EnsureSystemDefault seeds the shared fallback category when missing
// and returns it. Called at startup so category resolution always has a
// last resort.
func (s *CategoryService) EnsureSystemDefault(ctx context.Context) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindSystemDefault(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		category = partner.NewSystemDefaultCategory()
		if err := s.categoryRepo.Save(ctx, category); err != nil {
			return nil, err
		}
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// UpsertAdjustment writes the adjustment for a (product, category)
// pair, overwriting any existing value
func (s *CategoryService) UpsertAdjustment(ctx context.Context, categoryID uuid.UUID, req UpsertAdjustmentRequest) error {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return err
	}
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return err
	}
	adjustment, err := partner.NewPriceAdjustment(req.ProductID, categoryID, req.Amount)
	if err != nil {
		return err
	}
	return s.adjustmentRepo.Upsert(ctx, adjustment)
}

// PriceTable lists every product with its base price, the category's
// adjustment and the resulting effective price
func (s *CategoryService) PriceTable(ctx context.Context, categoryID uuid.UUID) (*PriceTableResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 1000, OrderBy: "name", OrderDir: "asc"})
	if err != nil {
		return nil, err
	}
	adjustments, err := s.adjustmentRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[uuid.UUID]*partner.PriceAdjustment, len(adjustments))
	for i := range adjustments {
		byProduct[adjustments[i].ProductID] = &adjustments[i]
	}

	rows := make([]PriceTableRow, 0, len(products))
	for i := range products {
		product := &products[i]
		row := PriceTableRow{
			ProductID:      product.ID,
			ProductName:    product.Name,
			BasePrice:      product.BasePrice,
			EffectivePrice: product.BasePrice,
		}
		if adj, ok := byProduct[product.ID]; ok {
			row.Adjustment = adj.Amount
			row.EffectivePrice = product.BasePrice.Add(adj.Amount)
		}
		rows = append(rows, row)
	}

	return &PriceTableResponse{
		Category: ToCategoryResponse(category),
		Rows:     rows,
	}, nil
}
