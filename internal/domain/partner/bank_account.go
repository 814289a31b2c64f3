package partner

import (
	"fmt"
	"strings"
	"time"

	"github.com/compras/backend/internal/domain/shared"
	"github.com/compras/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// BankAccount represents a supplier's payment account.
// At most one account per supplier carries the default flag; the
// repository clears the previous default when a new one is set.
type BankAccount struct {
	shared.BaseEntity
	SupplierID    uuid.UUID
	Nickname      string
	Bank          string
	Agency        string
	AccountNumber string
	Document      string // CPF or CNPJ of the account holder
	IsDefault     bool
}

// NewBankAccount creates a new bank account for a supplier
func NewBankAccount(supplierID uuid.UUID, nickname, bank, agency, accountNumber, document string) (*BankAccount, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Bank account requires a supplier")
	}
	if strings.TrimSpace(nickname) == "" {
		return nil, shared.NewDomainError("INVALID_BANK_ACCOUNT", "Account nickname cannot be empty")
	}
	if strings.TrimSpace(bank) == "" {
		return nil, shared.NewDomainError("INVALID_BANK_ACCOUNT", "Bank name cannot be empty")
	}
	if strings.TrimSpace(accountNumber) == "" {
		return nil, shared.NewDomainError("INVALID_BANK_ACCOUNT", "Account number cannot be empty")
	}

	return &BankAccount{
		BaseEntity:    shared.NewBaseEntity(),
		SupplierID:    supplierID,
		Nickname:      nickname,
		Bank:          bank,
		Agency:        agency,
		AccountNumber: accountNumber,
		Document:      strings.TrimSpace(document),
	}, nil
}

// Update updates the account's information
func (a *BankAccount) Update(nickname, bank, agency, accountNumber, document string) error {
	if strings.TrimSpace(nickname) == "" {
		return shared.NewDomainError("INVALID_BANK_ACCOUNT", "Account nickname cannot be empty")
	}
	if strings.TrimSpace(bank) == "" {
		return shared.NewDomainError("INVALID_BANK_ACCOUNT", "Bank name cannot be empty")
	}
	if strings.TrimSpace(accountNumber) == "" {
		return shared.NewDomainError("INVALID_BANK_ACCOUNT", "Account number cannot be empty")
	}

	a.Nickname = nickname
	a.Bank = bank
	a.Agency = agency
	a.AccountNumber = accountNumber
	a.Document = strings.TrimSpace(document)
	a.UpdatedAt = time.Now()

	return nil
}

// MarkDefault flags this account as the supplier's default
func (a *BankAccount) MarkDefault() {
	a.IsDefault = true
	a.UpdatedAt = time.Now()
}

// UnmarkDefault removes the default flag
func (a *BankAccount) UnmarkDefault() {
	a.IsDefault = false
	a.UpdatedAt = time.Now()
}

// DocumentKind returns "CNPJ" for company documents and "CPF" otherwise.
// Formatted CNPJs (00.000.000/0000-00) are longer than 14 characters,
// formatted CPFs (000.000.000-00) are not.
func (a *BankAccount) DocumentKind() string {
	if len(a.Document) > 14 {
		return "CNPJ"
	}
	return "CPF"
}

// PaymentText renders the copyable payment block shown next to a
// purchase awaiting payment.
func (a *BankAccount) PaymentText(amount valueobject.Money) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", a.Nickname)
	fmt.Fprintf(&b, "R$ %s\n", amount.StringFixed(2))
	fmt.Fprintf(&b, "Banco: %s\n", a.Bank)
	if a.Agency != "" {
		fmt.Fprintf(&b, "Agência: %s\n", a.Agency)
	}
	fmt.Fprintf(&b, "Conta: %s", a.AccountNumber)
	if a.Document != "" {
		fmt.Fprintf(&b, "\n%s: %s", a.DocumentKind(), a.Document)
	}
	return b.String()
}
