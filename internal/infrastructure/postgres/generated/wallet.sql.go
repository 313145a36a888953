
package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createWallet = `-- name: CreateWallet :one
INSERT INTO wallets (id, email, phone_number, balance, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, email, phone_number, balance, version, created_at, updated_at
`

type CreateWalletParams struct {
	ID          string             `json:"id"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phone_number"`
	Balance     pgtype.Numeric     `json:"balance"`
	Version     int64              `json:"version"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateWallet(ctx context.Context, arg CreateWalletParams) (Wallet, error) {
	row := q.db.QueryRow(ctx, createWallet,
		arg.ID,
		arg.Email,
		arg.PhoneNumber,
		arg.Balance,
		arg.Version,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i Wallet
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PhoneNumber,
		&i.Balance,
		&i.Version,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getWalletByEmail = `-- name: GetWalletByEmail :one
SELECT id, email, phone_number, balance, version, created_at, updated_at FROM wallets WHERE email = $1
`

func (q *Queries) GetWalletByEmail(ctx context.Context, email string) (Wallet, error) {
	row := q.db.QueryRow(ctx, getWalletByEmail, email)
	var i Wallet
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PhoneNumber,
		&i.Balance,
		&i.Version,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getWalletByID = `-- name: GetWalletByID :one
SELECT id, email, phone_number, balance, version, created_at, updated_at FROM wallets WHERE id = $1
`

func (q *Queries) GetWalletByID(ctx context.Context, id string) (Wallet, error) {
	row := q.db.QueryRow(ctx, getWalletByID, id)
	var i Wallet
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PhoneNumber,
		&i.Balance,
		&i.Version,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getWalletByIDForUpdate = `-- name: GetWalletByIDForUpdate :one
SELECT id, email, phone_number, balance, version, created_at, updated_at FROM wallets WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetWalletByIDForUpdate(ctx context.Context, id string) (Wallet, error) {
	row := q.db.QueryRow(ctx, getWalletByIDForUpdate, id)
	var i Wallet
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PhoneNumber,
		&i.Balance,
		&i.Version,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const walletExistsByEmail = `-- name: WalletExistsByEmail :one
SELECT EXISTS(SELECT 1 FROM wallets WHERE email = $1)
`

func (q *Queries) WalletExistsByEmail(ctx context.Context, email string) (bool, error) {
	row := q.db.QueryRow(ctx, walletExistsByEmail, email)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const updateWalletBalance = `-- name: UpdateWalletBalance :exec
UPDATE wallets
SET balance = $2, version = version + 1, updated_at = $3
WHERE id = $1
`

type UpdateWalletBalanceParams struct {
	ID        string             `json:"id"`
	Balance   pgtype.Numeric     `json:"balance"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateWalletBalance(ctx context.Context, arg UpdateWalletBalanceParams) error {
	_, err := q.db.Exec(ctx, updateWalletBalance, arg.ID, arg.Balance, arg.UpdatedAt)
	return err
}
