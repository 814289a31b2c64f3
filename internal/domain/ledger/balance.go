package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceCalculator derives a supplier's running balance from its full
// ledger history. The balance is recomputed on every call; ledger
// mutations are rare compared to reads and a stale cache would be worse
// than the recomputation cost.
type BalanceCalculator struct {
	entryRepo LedgerEntryRepository
}

// NewBalanceCalculator creates a new balance calculator
func NewBalanceCalculator(entryRepo LedgerEntryRepository) *BalanceCalculator {
	return &BalanceCalculator{entryRepo: entryRepo}
}

// Balance returns the sum of advances minus the sum of discounts over
// all of the supplier's entries. Positive means the supplier owes the
// buyer.
func (c *BalanceCalculator) Balance(ctx context.Context, supplierID uuid.UUID) (decimal.Decimal, error) {
	entries, err := c.entryRepo.FindBySupplier(ctx, supplierID, nil, nil)
	if err != nil {
		return decimal.Zero, err
	}
	return Sum(entries), nil
}

// Sum folds a set of entries into a signed balance
func Sum(entries []LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for i := range entries {
		total = total.Add(entries[i].Signed())
	}
	return total
}
