package models

import (
	"github.com/compras/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product entity.
type ProductModel struct {
	BaseModel
	Name      string          `gorm:"type:varchar(200);not null"`
	BasePrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		BasePrice:  m.BasePrice,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.BasePrice = p.BasePrice
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
