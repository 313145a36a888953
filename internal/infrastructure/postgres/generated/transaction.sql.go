
package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countTransactionsByWallet = `-- name: CountTransactionsByWallet :one
SELECT COUNT(*) FROM transactions WHERE wallet_id = $1
`

func (q *Queries) CountTransactionsByWallet(ctx context.Context, walletID string) (int64, error) {
	row := q.db.QueryRow(ctx, countTransactionsByWallet, walletID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createTransaction = `-- name: CreateTransaction :one
INSERT INTO transactions (id, wallet_id, amount, direction, description, gateway, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, wallet_id, amount, direction, description, gateway, status, created_at
`

type CreateTransactionParams struct {
	ID          string             `json:"id"`
	WalletID    string             `json:"wallet_id"`
	Amount      pgtype.Numeric     `json:"amount"`
	Direction   string             `json:"direction"`
	Description string             `json:"description"`
	Gateway     string             `json:"gateway"`
	Status      string             `json:"status"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Transaction, error) {
	row := q.db.QueryRow(ctx, createTransaction,
		arg.ID,
		arg.WalletID,
		arg.Amount,
		arg.Direction,
		arg.Description,
		arg.Gateway,
		arg.Status,
		arg.CreatedAt,
	)
	var i Transaction
	err := row.Scan(
		&i.ID,
		&i.WalletID,
		&i.Amount,
		&i.Direction,
		&i.Description,
		&i.Gateway,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

const listTransactionsByWallet = `-- name: ListTransactionsByWallet :many
SELECT id, wallet_id, amount, direction, description, gateway, status, created_at FROM transactions
WHERE wallet_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3
`

type ListTransactionsByWalletParams struct {
	WalletID string `json:"wallet_id"`
	Limit    int32  `json:"limit"`
	Offset   int32  `json:"offset"`
}

func (q *Queries) ListTransactionsByWallet(ctx context.Context, arg ListTransactionsByWalletParams) ([]Transaction, error) {
	rows, err := q.db.Query(ctx, listTransactionsByWallet, arg.WalletID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Transaction{}
	for rows.Next() {
		var i Transaction
		if err := rows.Scan(
			&i.ID,
			&i.WalletID,
			&i.Amount,
			&i.Direction,
			&i.Description,
			&i.Gateway,
			&i.Status,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
