package models

import (
	"time"

	"github.com/compras/backend/internal/domain/purchasing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseModel is the persistence model for the Purchase aggregate root.
type PurchaseModel struct {
	BaseModel
	SupplierID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	Date           time.Time           `gorm:"not null;index"`
	Status         purchasing.Status   `gorm:"type:varchar(20);not null;default:'CREATED'"`
	BankAccountID  *uuid.UUID          `gorm:"type:uuid"`
	Items          []PurchaseItemModel `gorm:"foreignKey:PurchaseID;references:ID"`
	Total          decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	AbatementValue decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (PurchaseModel) TableName() string {
	return "purchases"
}

// ToDomain converts the persistence model to a domain Purchase entity.
func (m *PurchaseModel) ToDomain() *purchasing.Purchase {
	purchase := &purchasing.Purchase{
		BaseEntity:     m.BaseModel.ToDomain(),
		SupplierID:     m.SupplierID,
		Date:           m.Date,
		Status:         m.Status,
		BankAccountID:  m.BankAccountID,
		Total:          m.Total,
		AbatementValue: m.AbatementValue,
		Items:          make([]purchasing.LineItem, len(m.Items)),
	}
	for i, item := range m.Items {
		purchase.Items[i] = *item.ToDomain()
	}
	return purchase
}

// FromDomain populates the persistence model from a domain Purchase entity.
func (m *PurchaseModel) FromDomain(p *purchasing.Purchase) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.SupplierID = p.SupplierID
	m.Date = p.Date
	m.Status = p.Status
	m.BankAccountID = p.BankAccountID
	m.Total = p.Total
	m.AbatementValue = p.AbatementValue
	m.Items = make([]PurchaseItemModel, len(p.Items))
	for i := range p.Items {
		m.Items[i] = *PurchaseItemModelFromDomain(&p.Items[i])
	}
}

// PurchaseModelFromDomain creates a new persistence model from a domain Purchase entity.
func PurchaseModelFromDomain(p *purchasing.Purchase) *PurchaseModel {
	m := &PurchaseModel{}
	m.FromDomain(p)
	return m
}

// PurchaseItemModel is the persistence model for the LineItem entity.
type PurchaseItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	PurchaseID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int64           `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseItemModel) TableName() string {
	return "purchase_items"
}

// ToDomain converts the persistence model to a domain LineItem entity.
func (m *PurchaseItemModel) ToDomain() *purchasing.LineItem {
	item := &purchasing.LineItem{
		PurchaseID:  m.PurchaseID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
	}
	item.ID = m.ID
	item.CreatedAt = m.CreatedAt
	item.UpdatedAt = m.UpdatedAt
	return item
}

// FromDomain populates the persistence model from a domain LineItem entity.
func (m *PurchaseItemModel) FromDomain(i *purchasing.LineItem) {
	m.ID = i.ID
	m.PurchaseID = i.PurchaseID
	m.ProductID = i.ProductID
	m.ProductName = i.ProductName
	m.Quantity = i.Quantity
	m.UnitPrice = i.UnitPrice
	m.CreatedAt = i.CreatedAt
	m.UpdatedAt = i.UpdatedAt
}

// PurchaseItemModelFromDomain creates a new persistence model from a domain LineItem entity.
func PurchaseItemModelFromDomain(i *purchasing.LineItem) *PurchaseItemModel {
	m := &PurchaseItemModel{}
	m.FromDomain(i)
	return m
}
