package catalog

import (
	"context"

	"github.com/compras/backend/internal/domain/catalog"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles the product catalog
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create adds a product to the catalog
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.BasePrice)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Update edits a product's name and base price. Purchases keep the
// name and price captured at purchase time.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.Update(req.Name, req.BasePrice); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID returns a single product
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// List returns products matching the filter
func (s *ProductService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}

	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
