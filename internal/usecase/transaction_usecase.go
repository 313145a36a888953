package usecase

import (
	"context"

	"github.com/iho/gowallet/internal/domain"
)

// TransactionUseCase handles transaction history queries.
type TransactionUseCase struct {
	transactionRepo TransactionRepository
	walletRepo      WalletRepository
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(transactionRepo TransactionRepository, walletRepo WalletRepository) *TransactionUseCase {
	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
	}
}

// ListTransactionsInput represents input for listing transactions.
type ListTransactionsInput struct {
	WalletID string
	Limit    int
	Offset   int
}

// ListTransactions lists a wallet's transaction records, newest first.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	if _, err := uc.walletRepo.GetByID(ctx, input.WalletID); err != nil {
		return nil, err
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.transactionRepo.ListByWallet(ctx, input.WalletID, limit, offset)
}
