package persistence

import (
	"context"

	appPurchasing "github.com/compras/backend/internal/application/purchasing"
	"github.com/compras/backend/internal/domain/ledger"
	"github.com/compras/backend/internal/domain/purchasing"
	"gorm.io/gorm"
)

// GormTransactionScope runs purchase writes inside one database
// transaction, handing the caller repositories bound to that
// transaction.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a transaction. Any error rolls back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appPurchasing.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&transactionalRepositories{tx: tx})
	})
}

type transactionalRepositories struct {
	tx *gorm.DB
}

// PurchaseRepo returns a purchase repository bound to the transaction
func (r *transactionalRepositories) PurchaseRepo() purchasing.PurchaseRepository {
	return NewGormPurchaseRepository(r.tx)
}

// LedgerRepo returns a ledger entry repository bound to the transaction
func (r *transactionalRepositories) LedgerRepo() ledger.LedgerEntryRepository {
	return NewGormLedgerEntryRepository(r.tx)
}

var _ appPurchasing.TransactionScope = (*GormTransactionScope)(nil)
