package partner

import (
	"context"

	"github.com/compras/backend/internal/domain/partner"
	"github.com/compras/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankAccountService manages the payment accounts of suppliers
type BankAccountService struct {
	accountRepo  partner.BankAccountRepository
	supplierRepo partner.SupplierRepository
}

// NewBankAccountService creates a new BankAccountService
func NewBankAccountService(accountRepo partner.BankAccountRepository, supplierRepo partner.SupplierRepository) *BankAccountService {
	return &BankAccountService{
		accountRepo:  accountRepo,
		supplierRepo: supplierRepo,
	}
}

// Create registers a payment account for a supplier, optionally
// flagging it as the default
func (s *BankAccountService) Create(ctx context.Context, supplierID uuid.UUID, req CreateBankAccountRequest) (*BankAccountResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}

	account, err := partner.NewBankAccount(supplierID, req.Nickname, req.Bank, req.Agency, req.AccountNumber, req.Document)
	if err != nil {
		return nil, err
	}

	if req.SetDefault {
		if err := s.accountRepo.ClearDefaultForSupplier(ctx, supplierID); err != nil {
			return nil, err
		}
		account.MarkDefault()
	}
	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	resp := ToBankAccountResponse(account)
	return &resp, nil
}

// Update edits a payment account
func (s *BankAccountService) Update(ctx context.Context, id uuid.UUID, req UpdateBankAccountRequest) (*BankAccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := account.Update(req.Nickname, req.Bank, req.Agency, req.AccountNumber, req.Document); err != nil {
		return nil, err
	}
	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}
	resp := ToBankAccountResponse(account)
	return &resp, nil
}

// SetDefault flags an account as the supplier's default, clearing the
// previous default first
func (s *BankAccountService) SetDefault(ctx context.Context, id uuid.UUID) (*BankAccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.accountRepo.ClearDefaultForSupplier(ctx, account.SupplierID); err != nil {
		return nil, err
	}
	account.MarkDefault()
	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}
	resp := ToBankAccountResponse(account)
	return &resp, nil
}

// ListBySupplier returns all accounts of a supplier
func (s *BankAccountService) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]BankAccountResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.FindBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	responses := make([]BankAccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, ToBankAccountResponse(&accounts[i]))
	}
	return responses, nil
}

// Delete removes a payment account
func (s *BankAccountService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.accountRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.accountRepo.Delete(ctx, id)
}

// PaymentText renders the copyable payment block for an account and an
// amount
func (s *BankAccountService) PaymentText(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (string, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return account.PaymentText(valueobject.NewMoneyBRL(amount)), nil
}
