package catalog

import (
	"context"
	"testing"

	"github.com/compras/backend/internal/domain/catalog"
	"github.com/compras/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

var _ catalog.ProductRepository = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		repo.On("Save", ctx, mock.MatchedBy(func(p *catalog.Product) bool {
			return p.Name == "Tomate" && p.BasePrice.Equal(decimal.NewFromFloat(10))
		})).Return(nil)

		resp, err := service.Create(ctx, CreateProductRequest{
			Name:      "Tomate",
			BasePrice: decimal.NewFromFloat(10),
		})
		require.NoError(t, err)
		assert.Equal(t, "Tomate", resp.Name)
		repo.AssertExpectations(t)
	})

	t.Run("negative base price rejected", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		_, err := service.Create(ctx, CreateProductRequest{
			Name:      "Tomate",
			BasePrice: decimal.NewFromFloat(-1),
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("zero base price allowed", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := service.Create(ctx, CreateProductRequest{Name: "Brinde"})
		require.NoError(t, err)
		assert.True(t, resp.BasePrice.IsZero())
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	service := NewProductService(repo)

	product, err := catalog.NewProduct("Tomate", decimal.NewFromFloat(10))
	require.NoError(t, err)

	repo.On("FindByID", ctx, product.ID).Return(product, nil)
	repo.On("Save", ctx, product).Return(nil)

	resp, err := service.Update(ctx, product.ID, UpdateProductRequest{
		Name:      "Tomate Italiano",
		BasePrice: decimal.NewFromFloat(12.50),
	})
	require.NoError(t, err)
	assert.Equal(t, "Tomate Italiano", resp.Name)
	assert.Equal(t, "12.50", resp.BasePrice.StringFixed(2))
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	service := NewProductService(repo)

	tomato, err := catalog.NewProduct("Tomate", decimal.NewFromFloat(10))
	require.NoError(t, err)
	lettuce, err := catalog.NewProduct("Alface", decimal.NewFromFloat(2.50))
	require.NoError(t, err)

	filter := shared.DefaultFilter()
	repo.On("FindAll", ctx, filter).Return([]catalog.Product{*lettuce, *tomato}, nil)
	repo.On("Count", ctx, filter).Return(int64(2), nil)

	result, err := service.List(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Alface", result.Items[0].Name)
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		product, err := catalog.NewProduct("Tomate", decimal.NewFromFloat(10))
		require.NoError(t, err)

		repo.On("FindByID", ctx, product.ID).Return(product, nil)
		repo.On("Delete", ctx, product.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, product.ID))
	})

	t.Run("unknown product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		err := service.Delete(ctx, id)
		require.Error(t, err)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
