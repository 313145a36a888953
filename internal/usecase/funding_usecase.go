package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// FundingUseCase orchestrates the wallet funding transaction: lock the
// wallet row, validate the funding source, charge the payment gateway,
// credit the balance and append the transaction record, all inside one
// database transaction that commits or rolls back as a unit.
type FundingUseCase struct {
	txManager       TransactionManager
	walletRepo      WalletRepository
	bankAccountRepo BankAccountRepository
	transactionRepo TransactionRepository
	gateways        GatewaySelector
	idGen           IDGenerator
	cache           Cache
}

// NewFundingUseCase creates a new FundingUseCase. cache may be nil.
func NewFundingUseCase(
	txManager TransactionManager,
	walletRepo WalletRepository,
	bankAccountRepo BankAccountRepository,
	transactionRepo TransactionRepository,
	gateways GatewaySelector,
	idGen IDGenerator,
	cache Cache,
) *FundingUseCase {
	return &FundingUseCase{
		txManager:       txManager,
		walletRepo:      walletRepo,
		bankAccountRepo: bankAccountRepo,
		transactionRepo: transactionRepo,
		gateways:        gateways,
		idGen:           idGen,
		cache:           cache,
	}
}

// FundWalletInput represents input for funding a wallet. Amount must be
// strictly positive; the HTTP boundary validates it before the use case
// runs, so it is a precondition here, not a re-checked input.
type FundWalletInput struct {
	WalletID      string
	AccountNumber string
	Amount        decimal.Decimal
	Gateway       domain.Gateway
}

// FundWallet credits a wallet from a linked bank account via a payment
// gateway.
//
// Steps:
//  1. Lock the wallet row (FOR UPDATE); concurrent funders of the same
//     wallet serialize here, funders of other wallets are unaffected.
//  2. Confirm the account number is a funding source linked to this wallet.
//  3. Charge the gateway strategy selected for the provider. The external
//     call runs while the lock is held, so gateway latency extends the
//     lock-hold time for this wallet.
//  4. Credit the balance.
//  5. Append the CREDIT/SUCCESS transaction record.
//  6. Commit.
//
// Any error after step 1 rolls the whole unit of work back: the balance is
// untouched and no record is written.
func (uc *FundingUseCase) FundWallet(ctx context.Context, input FundWalletInput) (*domain.Transaction, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	wallet, err := uc.walletRepo.GetByIDForUpdate(ctx, tx, input.WalletID)
	if err != nil {
		return nil, err
	}

	account, err := uc.bankAccountRepo.GetByNumberAndWallet(ctx, tx, input.AccountNumber, wallet.ID)
	if err != nil {
		if errors.Is(err, domain.ErrBankAccountNotFound) {
			return nil, domain.ErrBankAccountNotLinked
		}
		return nil, uc.wrapInternal(err)
	}

	strategy := uc.gateways.Resolve(input.Gateway)
	if err := strategy.ProcessPayment(ctx, account.AccountNumber, input.Amount); err != nil {
		return nil, uc.wrapInternal(err)
	}

	now := time.Now().UTC()
	newBalance := wallet.ApplyCredit(input.Amount)

	if err := uc.walletRepo.UpdateBalance(ctx, tx, wallet.ID, newBalance, now); err != nil {
		return nil, uc.wrapInternal(err)
	}

	txn := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		WalletID:    wallet.ID,
		Amount:      input.Amount,
		Direction:   domain.DirectionCredit,
		Description: fmt.Sprintf("Wallet funded via %s from account %s", input.Gateway, account.AccountNumber),
		Gateway:     input.Gateway,
		Status:      domain.StatusSuccess,
		CreatedAt:   now,
	}

	if err := txn.Validate(); err != nil {
		return nil, uc.wrapInternal(err)
	}

	if err := uc.transactionRepo.Create(ctx, tx, txn); err != nil {
		return nil, uc.wrapInternal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, uc.wrapInternal(err)
	}

	// The cached wallet is stale after a commit. Best effort: a failed
	// delete only means readers see the pre-funding balance until the TTL
	// expires, which the read path already permits.
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, WalletCacheKey(wallet.ID))
	}

	return txn, nil
}

// wrapInternal folds unclassified errors raised mid-transaction into the
// payment-processing failure. Once the unit of work is underway the only
// safe answer to the caller is "the funding attempt failed, nothing
// changed".
func (uc *FundingUseCase) wrapInternal(err error) error {
	if errors.Is(err, domain.ErrPaymentProcessing) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrPaymentProcessing, err)
}
