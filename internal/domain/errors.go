package domain

import "errors"

var (
	// Wallet errors
	ErrWalletNotFound = errors.New("wallet not found")
	ErrDuplicateEmail = errors.New("wallet already exists for email")

	// Bank account errors
	ErrBankAccountNotFound  = errors.New("bank account not found")
	ErrBankAccountNotLinked = errors.New("bank account is not linked to this wallet")
	ErrDuplicateBankAccount = errors.New("bank account is already linked")

	// Funding errors
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidDirection  = errors.New("invalid transaction direction")
	ErrUnknownGateway    = errors.New("unknown payment gateway")
	ErrPaymentProcessing = errors.New("payment processing failed")
)
