package models

import (
	"time"

	"github.com/compras/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntryModel is the persistence model for the LedgerEntry entity.
// Entries linked to a purchase carry its id; manual entries have NULL.
type LedgerEntryModel struct {
	BaseModel
	SupplierID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	PurchaseID  *uuid.UUID       `gorm:"type:uuid;index"`
	Date        time.Time        `gorm:"not null;index"`
	Description string           `gorm:"type:varchar(500)"`
	Value       decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	Type        ledger.EntryType `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToDomain converts the persistence model to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToDomain() *ledger.LedgerEntry {
	return &ledger.LedgerEntry{
		BaseEntity:  m.BaseModel.ToDomain(),
		SupplierID:  m.SupplierID,
		PurchaseID:  m.PurchaseID,
		Date:        m.Date,
		Description: m.Description,
		Value:       m.Value,
		Type:        m.Type,
	}
}

// FromDomain populates the persistence model from a domain LedgerEntry entity.
func (m *LedgerEntryModel) FromDomain(e *ledger.LedgerEntry) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.SupplierID = e.SupplierID
	m.PurchaseID = e.PurchaseID
	m.Date = e.Date
	m.Description = e.Description
	m.Value = e.Value
	m.Type = e.Type
}

// LedgerEntryModelFromDomain creates a new persistence model from a domain LedgerEntry entity.
func LedgerEntryModelFromDomain(e *ledger.LedgerEntry) *LedgerEntryModel {
	m := &LedgerEntryModel{}
	m.FromDomain(e)
	return m
}
