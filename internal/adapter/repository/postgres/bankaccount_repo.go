package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/postgres/generated"
	"github.com/iho/gowallet/internal/usecase"
)

// BankAccountRepository implements usecase.BankAccountRepository.
type BankAccountRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewBankAccountRepository creates a new BankAccountRepository.
func NewBankAccountRepository(pool *pgxpool.Pool) *BankAccountRepository {
	return &BankAccountRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create links a bank account to a wallet.
func (r *BankAccountRepository) Create(ctx context.Context, account *domain.BankAccount) error {
	_, err := r.queries.CreateBankAccount(ctx, generated.CreateBankAccountParams{
		ID:            account.ID,
		WalletID:      account.WalletID,
		AccountNumber: account.AccountNumber,
		AccountName:   account.AccountName,
		Bank:          account.Bank,
		CreatedAt:     timeToPgTimestamptz(account.CreatedAt),
	})
	if isUniqueViolation(err) {
		return domain.ErrDuplicateBankAccount
	}

	return err
}

// GetByNumberAndBank retrieves a bank account by its (account number, bank) pair.
func (r *BankAccountRepository) GetByNumberAndBank(ctx context.Context, accountNumber, bank string) (*domain.BankAccount, error) {
	row, err := r.queries.GetBankAccountByNumberAndBank(ctx, generated.GetBankAccountByNumberAndBankParams{
		AccountNumber: accountNumber,
		Bank:          bank,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBankAccountNotFound
		}

		return nil, err
	}

	return rowToBankAccount(row), nil
}

// GetByNumberAndWallet retrieves a bank account by number within a wallet,
// inside the caller's transaction.
func (r *BankAccountRepository) GetByNumberAndWallet(ctx context.Context, tx usecase.Transaction, accountNumber, walletID string) (*domain.BankAccount, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetBankAccountByNumberAndWallet(ctx, generated.GetBankAccountByNumberAndWalletParams{
		AccountNumber: accountNumber,
		WalletID:      walletID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBankAccountNotFound
		}

		return nil, err
	}

	return rowToBankAccount(row), nil
}

// ListByWallet lists the bank accounts linked to a wallet.
func (r *BankAccountRepository) ListByWallet(ctx context.Context, walletID string) ([]*domain.BankAccount, error) {
	rows, err := r.queries.ListBankAccountsByWallet(ctx, walletID)
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.BankAccount, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, rowToBankAccount(row))
	}

	return accounts, nil
}

func rowToBankAccount(row generated.BankAccount) *domain.BankAccount {
	return &domain.BankAccount{
		ID:            row.ID,
		WalletID:      row.WalletID,
		AccountNumber: row.AccountNumber,
		AccountName:   row.AccountName,
		Bank:          row.Bank,
		CreatedAt:     row.CreatedAt.Time,
	}
}
