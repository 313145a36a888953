
package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createBankAccount = `-- name: CreateBankAccount :one
INSERT INTO bank_accounts (id, wallet_id, account_number, account_name, bank, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, wallet_id, account_number, account_name, bank, created_at
`

type CreateBankAccountParams struct {
	ID            string             `json:"id"`
	WalletID      string             `json:"wallet_id"`
	AccountNumber string             `json:"account_number"`
	AccountName   string             `json:"account_name"`
	Bank          string             `json:"bank"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateBankAccount(ctx context.Context, arg CreateBankAccountParams) (BankAccount, error) {
	row := q.db.QueryRow(ctx, createBankAccount,
		arg.ID,
		arg.WalletID,
		arg.AccountNumber,
		arg.AccountName,
		arg.Bank,
		arg.CreatedAt,
	)
	var i BankAccount
	err := row.Scan(
		&i.ID,
		&i.WalletID,
		&i.AccountNumber,
		&i.AccountName,
		&i.Bank,
		&i.CreatedAt,
	)
	return i, err
}

const getBankAccountByNumberAndBank = `-- name: GetBankAccountByNumberAndBank :one
SELECT id, wallet_id, account_number, account_name, bank, created_at FROM bank_accounts
WHERE account_number = $1 AND bank = $2
`

type GetBankAccountByNumberAndBankParams struct {
	AccountNumber string `json:"account_number"`
	Bank          string `json:"bank"`
}

func (q *Queries) GetBankAccountByNumberAndBank(ctx context.Context, arg GetBankAccountByNumberAndBankParams) (BankAccount, error) {
	row := q.db.QueryRow(ctx, getBankAccountByNumberAndBank, arg.AccountNumber, arg.Bank)
	var i BankAccount
	err := row.Scan(
		&i.ID,
		&i.WalletID,
		&i.AccountNumber,
		&i.AccountName,
		&i.Bank,
		&i.CreatedAt,
	)
	return i, err
}

const getBankAccountByNumberAndWallet = `-- name: GetBankAccountByNumberAndWallet :one
SELECT id, wallet_id, account_number, account_name, bank, created_at FROM bank_accounts
WHERE account_number = $1 AND wallet_id = $2
`

type GetBankAccountByNumberAndWalletParams struct {
	AccountNumber string `json:"account_number"`
	WalletID      string `json:"wallet_id"`
}

func (q *Queries) GetBankAccountByNumberAndWallet(ctx context.Context, arg GetBankAccountByNumberAndWalletParams) (BankAccount, error) {
	row := q.db.QueryRow(ctx, getBankAccountByNumberAndWallet, arg.AccountNumber, arg.WalletID)
	var i BankAccount
	err := row.Scan(
		&i.ID,
		&i.WalletID,
		&i.AccountNumber,
		&i.AccountName,
		&i.Bank,
		&i.CreatedAt,
	)
	return i, err
}

const listBankAccountsByWallet = `-- name: ListBankAccountsByWallet :many
SELECT id, wallet_id, account_number, account_name, bank, created_at FROM bank_accounts
WHERE wallet_id = $1
ORDER BY created_at
`

func (q *Queries) ListBankAccountsByWallet(ctx context.Context, walletID string) ([]BankAccount, error) {
	rows, err := q.db.Query(ctx, listBankAccountsByWallet, walletID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []BankAccount{}
	for rows.Next() {
		var i BankAccount
		if err := rows.Scan(
			&i.ID,
			&i.WalletID,
			&i.AccountNumber,
			&i.AccountName,
			&i.Bank,
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
