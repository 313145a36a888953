package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// walletCacheTTL bounds how stale a cached wallet read may be. Reads are
// allowed to observe the pre-funding balance, so a short TTL is safe.
const walletCacheTTL = 30 * time.Second

// WalletUseCase handles wallet business logic.
type WalletUseCase struct {
	walletRepo WalletRepository
	idGen      IDGenerator
	cache      Cache
}

// NewWalletUseCase creates a new WalletUseCase. cache may be nil.
func NewWalletUseCase(walletRepo WalletRepository, idGen IDGenerator, cache Cache) *WalletUseCase {
	return &WalletUseCase{
		walletRepo: walletRepo,
		idGen:      idGen,
		cache:      cache,
	}
}

// CreateWalletInput represents input for creating a wallet.
type CreateWalletInput struct {
	Email       string
	PhoneNumber string
}

// CreateWallet creates a new wallet with a zero balance. Email is unique
// across wallets.
func (uc *WalletUseCase) CreateWallet(ctx context.Context, input CreateWalletInput) (*domain.Wallet, error) {
	exists, err := uc.walletRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	now := time.Now().UTC()

	wallet := &domain.Wallet{
		ID:          uc.idGen.Generate(),
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Balance:     decimal.Zero,
		Version:     0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.walletRepo.Create(ctx, wallet); err != nil {
		return nil, err
	}

	return wallet, nil
}

// GetWallet retrieves a wallet by ID, consulting the cache first.
func (uc *WalletUseCase) GetWallet(ctx context.Context, id string) (*domain.Wallet, error) {
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, WalletCacheKey(id)); err == nil && data != nil {
			var wallet domain.Wallet
			if err := json.Unmarshal(data, &wallet); err == nil {
				return &wallet, nil
			}
		}
	}

	wallet, err := uc.walletRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(wallet); err == nil {
			_ = uc.cache.Set(ctx, WalletCacheKey(id), data, walletCacheTTL)
		}
	}

	return wallet, nil
}

// GetWalletByEmail retrieves a wallet by its owner's email.
func (uc *WalletUseCase) GetWalletByEmail(ctx context.Context, email string) (*domain.Wallet, error) {
	return uc.walletRepo.GetByEmail(ctx, email)
}
