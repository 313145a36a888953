package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/iho/gowallet/internal/domain"
)

// BankAccountUseCase handles funding source linking and lookup.
type BankAccountUseCase struct {
	bankAccountRepo BankAccountRepository
	walletRepo      WalletRepository
	idGen           IDGenerator
}

// NewBankAccountUseCase creates a new BankAccountUseCase.
func NewBankAccountUseCase(bankAccountRepo BankAccountRepository, walletRepo WalletRepository, idGen IDGenerator) *BankAccountUseCase {
	return &BankAccountUseCase{
		bankAccountRepo: bankAccountRepo,
		walletRepo:      walletRepo,
		idGen:           idGen,
	}
}

// LinkBankAccountInput represents input for linking a bank account.
type LinkBankAccountInput struct {
	WalletID      string
	AccountNumber string
	AccountName   string
	Bank          string
}

// LinkBankAccount links an external bank account to a wallet. The pair
// (account number, bank) is unique across all wallets.
func (uc *BankAccountUseCase) LinkBankAccount(ctx context.Context, input LinkBankAccountInput) (*domain.BankAccount, error) {
	if _, err := uc.walletRepo.GetByID(ctx, input.WalletID); err != nil {
		return nil, err
	}

	_, err := uc.bankAccountRepo.GetByNumberAndBank(ctx, input.AccountNumber, input.Bank)
	if err == nil {
		return nil, domain.ErrDuplicateBankAccount
	}
	if !errors.Is(err, domain.ErrBankAccountNotFound) {
		return nil, err
	}

	account := &domain.BankAccount{
		ID:            uc.idGen.Generate(),
		WalletID:      input.WalletID,
		AccountNumber: input.AccountNumber,
		AccountName:   input.AccountName,
		Bank:          input.Bank,
		CreatedAt:     time.Now().UTC(),
	}

	if err := uc.bankAccountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// ListBankAccounts lists all funding sources linked to a wallet.
func (uc *BankAccountUseCase) ListBankAccounts(ctx context.Context, walletID string) ([]*domain.BankAccount, error) {
	if _, err := uc.walletRepo.GetByID(ctx, walletID); err != nil {
		return nil, err
	}

	return uc.bankAccountRepo.ListByWallet(ctx, walletID)
}
