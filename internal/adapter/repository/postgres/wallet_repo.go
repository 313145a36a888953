package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/postgres/generated"
	"github.com/iho/gowallet/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// WalletRepository implements usecase.WalletRepository.
type WalletRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository(pool *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new wallet.
func (r *WalletRepository) Create(ctx context.Context, wallet *domain.Wallet) error {
	_, err := r.queries.CreateWallet(ctx, generated.CreateWalletParams{
		ID:          wallet.ID,
		Email:       wallet.Email,
		PhoneNumber: wallet.PhoneNumber,
		Balance:     decimalToNumeric(wallet.Balance),
		Version:     wallet.Version,
		CreatedAt:   timeToPgTimestamptz(wallet.CreatedAt),
		UpdatedAt:   timeToPgTimestamptz(wallet.UpdatedAt),
	})
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}

	return err
}

// GetByID retrieves a wallet by ID.
func (r *WalletRepository) GetByID(ctx context.Context, id string) (*domain.Wallet, error) {
	row, err := r.queries.GetWalletByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}

		return nil, err
	}

	return rowToWallet(row), nil
}

// GetByEmail retrieves a wallet by email.
func (r *WalletRepository) GetByEmail(ctx context.Context, email string) (*domain.Wallet, error) {
	row, err := r.queries.GetWalletByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}

		return nil, err
	}

	return rowToWallet(row), nil
}

// ExistsByEmail reports whether a wallet with the email already exists.
func (r *WalletRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.queries.WalletExistsByEmail(ctx, email)
}

// GetByIDForUpdate retrieves a wallet by ID with a FOR UPDATE lock.
func (r *WalletRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Wallet, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetWalletByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}

		return nil, err
	}

	return rowToWallet(row), nil
}

// UpdateBalance updates the balance of a wallet.
func (r *WalletRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateWalletBalance(ctx, generated.UpdateWalletBalanceParams{
		ID:        id,
		Balance:   decimalToNumeric(balance),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
}

func rowToWallet(row generated.Wallet) *domain.Wallet {
	return &domain.Wallet{
		ID:          row.ID,
		Email:       row.Email,
		PhoneNumber: row.PhoneNumber,
		Balance:     numericToDecimal(row.Balance),
		Version:     row.Version,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
