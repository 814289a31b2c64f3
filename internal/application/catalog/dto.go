package catalog

import (
	"time"

	"github.com/compras/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents the request to create a product
type CreateProductRequest struct {
	Name      string          `json:"name" binding:"required,max=200"`
	BasePrice decimal.Decimal `json:"base_price"`
}

// UpdateProductRequest represents the request to update a product
type UpdateProductRequest struct {
	Name      string          `json:"name" binding:"required,max=200"`
	BasePrice decimal.Decimal `json:"base_price"`
}

// ProductResponse represents a product in responses
type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToProductResponse maps a product to its response form
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		BasePrice: p.BasePrice,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
