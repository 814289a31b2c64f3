package purchasing

import (
	"context"

	"github.com/compras/backend/internal/domain/ledger"
	"github.com/compras/backend/internal/domain/purchasing"
)

// TransactionScope provides transactional access to the repositories a
// purchase write touches. Everything executed within one scope commits
// or rolls back atomically; a purchase is never persisted with a stale
// ledger effect or half-replaced line items.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the purchasing
// repositories within a transaction. All repositories returned share
// the same underlying database transaction.
type TransactionalRepositories interface {
	// PurchaseRepo returns the purchase repository scoped to the current transaction
	PurchaseRepo() purchasing.PurchaseRepository
	// LedgerRepo returns the ledger entry repository scoped to the current transaction
	LedgerRepo() ledger.LedgerEntryRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests.
type NoOpTransactionScope struct {
	purchaseRepo purchasing.PurchaseRepository
	ledgerRepo   ledger.LedgerEntryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(purchaseRepo purchasing.PurchaseRepository, ledgerRepo ledger.LedgerEntryRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		purchaseRepo: purchaseRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// Execute runs the function directly against the wrapped repositories
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PurchaseRepo returns the purchase repository
func (s *NoOpTransactionScope) PurchaseRepo() purchasing.PurchaseRepository {
	return s.purchaseRepo
}

// LedgerRepo returns the ledger entry repository
func (s *NoOpTransactionScope) LedgerRepo() ledger.LedgerEntryRepository {
	return s.ledgerRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
