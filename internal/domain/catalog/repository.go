package catalog

import (
	"github.com/compras/backend/internal/domain/shared"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	shared.Repository[Product]
}
