package models

import (
	"github.com/compras/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierModel is the persistence model for the Supplier aggregate root.
type SupplierModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null"`
	Address     string `gorm:"type:text"`
	ScaleNumber string `gorm:"type:varchar(50);uniqueIndex:idx_suppliers_scale_number,where:scale_number <> ''"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Address:     m.Address,
		ScaleNumber: m.ScaleNumber,
	}
}

// FromDomain populates the persistence model from a domain Supplier entity.
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Name = s.Name
	m.Address = s.Address
	m.ScaleNumber = s.ScaleNumber
}

// SupplierModelFromDomain creates a new persistence model from a domain Supplier entity.
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	m := &SupplierModel{}
	m.FromDomain(s)
	return m
}

// BankAccountModel is the persistence model for the BankAccount entity.
type BankAccountModel struct {
	BaseModel
	SupplierID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Nickname      string    `gorm:"type:varchar(100);not null"`
	Bank          string    `gorm:"type:varchar(100);not null"`
	Agency        string    `gorm:"type:varchar(20)"`
	AccountNumber string    `gorm:"type:varchar(30);not null"`
	Document      string    `gorm:"type:varchar(20)"`
	IsDefault     bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (BankAccountModel) TableName() string {
	return "bank_accounts"
}

// ToDomain converts the persistence model to a domain BankAccount entity.
func (m *BankAccountModel) ToDomain() *partner.BankAccount {
	return &partner.BankAccount{
		BaseEntity:    m.BaseModel.ToDomain(),
		SupplierID:    m.SupplierID,
		Nickname:      m.Nickname,
		Bank:          m.Bank,
		Agency:        m.Agency,
		AccountNumber: m.AccountNumber,
		Document:      m.Document,
		IsDefault:     m.IsDefault,
	}
}

// FromDomain populates the persistence model from a domain BankAccount entity.
func (m *BankAccountModel) FromDomain(a *partner.BankAccount) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.SupplierID = a.SupplierID
	m.Nickname = a.Nickname
	m.Bank = a.Bank
	m.Agency = a.Agency
	m.AccountNumber = a.AccountNumber
	m.Document = a.Document
	m.IsDefault = a.IsDefault
}

// BankAccountModelFromDomain creates a new persistence model from a domain BankAccount entity.
func BankAccountModelFromDomain(a *partner.BankAccount) *BankAccountModel {
	m := &BankAccountModel{}
	m.FromDomain(a)
	return m
}

// PriceCategoryModel is the persistence model for the PriceCategory entity.
// The shared system default has a NULL supplier_id.
type PriceCategoryModel struct {
	BaseModel
	SupplierID *uuid.UUID `gorm:"type:uuid;index"`
	Name       string     `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (PriceCategoryModel) TableName() string {
	return "price_categories"
}

// ToDomain converts the persistence model to a domain PriceCategory entity.
func (m *PriceCategoryModel) ToDomain() *partner.PriceCategory {
	return &partner.PriceCategory{
		BaseEntity: m.BaseModel.ToDomain(),
		SupplierID: m.SupplierID,
		Name:       m.Name,
	}
}

// FromDomain populates the persistence model from a domain PriceCategory entity.
func (m *PriceCategoryModel) FromDomain(c *partner.PriceCategory) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.SupplierID = c.SupplierID
	m.Name = c.Name
}

// PriceCategoryModelFromDomain creates a new persistence model from a domain PriceCategory entity.
func PriceCategoryModelFromDomain(c *partner.PriceCategory) *PriceCategoryModel {
	m := &PriceCategoryModel{}
	m.FromDomain(c)
	return m
}

// PriceAdjustmentModel is the persistence model for the PriceAdjustment entity.
type PriceAdjustmentModel struct {
	BaseModel
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_price_adjustments_product_category,priority:1"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_price_adjustments_product_category,priority:2"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (PriceAdjustmentModel) TableName() string {
	return "price_adjustments"
}

// ToDomain converts the persistence model to a domain PriceAdjustment entity.
func (m *PriceAdjustmentModel) ToDomain() *partner.PriceAdjustment {
	return &partner.PriceAdjustment{
		BaseEntity: m.BaseModel.ToDomain(),
		ProductID:  m.ProductID,
		CategoryID: m.CategoryID,
		Amount:     m.Amount,
	}
}

// FromDomain populates the persistence model from a domain PriceAdjustment entity.
func (m *PriceAdjustmentModel) FromDomain(a *partner.PriceAdjustment) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.ProductID = a.ProductID
	m.CategoryID = a.CategoryID
	m.Amount = a.Amount
}

// PriceAdjustmentModelFromDomain creates a new persistence model from a domain PriceAdjustment entity.
func PriceAdjustmentModelFromDomain(a *partner.PriceAdjustment) *PriceAdjustmentModel {
	m := &PriceAdjustmentModel{}
	m.FromDomain(a)
	return m
}
