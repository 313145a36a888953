package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/postgres/generated"
	"github.com/iho/gowallet/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create appends a transaction record inside the caller's transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateTransaction(ctx, generated.CreateTransactionParams{
		ID:          txn.ID,
		WalletID:    txn.WalletID,
		Amount:      decimalToNumeric(txn.Amount),
		Direction:   string(txn.Direction),
		Description: txn.Description,
		Gateway:     txn.Gateway.String(),
		Status:      string(txn.Status),
		CreatedAt:   timeToPgTimestamptz(txn.CreatedAt),
	})

	return err
}

// ListByWallet lists a wallet's transaction records, newest first.
func (r *TransactionRepository) ListByWallet(ctx context.Context, walletID string, limit, offset int) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactionsByWallet(ctx, generated.ListTransactionsByWalletParams{
		WalletID: walletID,
		Limit:    int32(limit),
		Offset:   int32(offset),
	})
	if err != nil {
		return nil, err
	}

	txns := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, rowToTransaction(row))
	}

	return txns, nil
}

func rowToTransaction(row generated.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:          row.ID,
		WalletID:    row.WalletID,
		Amount:      numericToDecimal(row.Amount),
		Direction:   domain.TransactionDirection(row.Direction),
		Description: row.Description,
		Gateway:     domain.Gateway(row.Gateway),
		Status:      domain.TransactionStatus(row.Status),
		CreatedAt:   row.CreatedAt.Time,
	}
}
