package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
	"github.com/iho/gowallet/internal/usecase/mocks"
)

func TestWalletUseCase_CreateWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("creates wallet with zero balance", func(t *testing.T) {
		walletRepo := mocks.NewMockWalletRepository()
		uc := usecase.NewWalletUseCase(walletRepo, mocks.NewMockIDGenerator(), nil)

		wallet, err := uc.CreateWallet(ctx, usecase.CreateWalletInput{
			Email:       "ada@example.com",
			PhoneNumber: "+2348012345678",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if wallet.ID == "" {
			t.Error("expected generated ID")
		}

		if !wallet.Balance.Equal(decimal.Zero) {
			t.Errorf("expected zero balance, got %s", wallet.Balance)
		}

		if wallet.Email != "ada@example.com" {
			t.Errorf("unexpected email %s", wallet.Email)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		walletRepo := mocks.NewMockWalletRepository()
		uc := usecase.NewWalletUseCase(walletRepo, mocks.NewMockIDGenerator(), nil)

		if _, err := uc.CreateWallet(ctx, usecase.CreateWalletInput{Email: "ada@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.CreateWallet(ctx, usecase.CreateWalletInput{Email: "ada@example.com"})
		if !errors.Is(err, domain.ErrDuplicateEmail) {
			t.Fatalf("expected ErrDuplicateEmail, got %v", err)
		}
	})
}

func TestWalletUseCase_GetWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		uc := usecase.NewWalletUseCase(mocks.NewMockWalletRepository(), mocks.NewMockIDGenerator(), nil)

		_, err := uc.GetWallet(ctx, "missing")
		if !errors.Is(err, domain.ErrWalletNotFound) {
			t.Fatalf("expected ErrWalletNotFound, got %v", err)
		}
	})

	t.Run("cache miss populates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockCache(ctrl)

		walletRepo := mocks.NewMockWalletRepository()
		walletRepo.Create(ctx, &domain.Wallet{ID: "w-1", Email: "ada@example.com", Balance: decimal.NewFromInt(100)})

		cache.EXPECT().Get(gomock.Any(), usecase.WalletCacheKey("w-1")).Return(nil, nil)
		cache.EXPECT().Set(gomock.Any(), usecase.WalletCacheKey("w-1"), gomock.Any(), gomock.Any()).Return(nil)

		uc := usecase.NewWalletUseCase(walletRepo, mocks.NewMockIDGenerator(), cache)

		wallet, err := uc.GetWallet(ctx, "w-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wallet.ID != "w-1" {
			t.Errorf("expected w-1, got %s", wallet.ID)
		}
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockCache(ctrl)

		cached, _ := json.Marshal(&domain.Wallet{ID: "w-1", Email: "ada@example.com", Balance: decimal.NewFromInt(100)})
		cache.EXPECT().Get(gomock.Any(), usecase.WalletCacheKey("w-1")).Return(cached, nil)

		walletRepo := mocks.NewMockWalletRepository()
		walletRepo.GetByIDFunc = func(ctx context.Context, id string) (*domain.Wallet, error) {
			t.Fatal("repository should not be called on cache hit")
			return nil, nil
		}

		uc := usecase.NewWalletUseCase(walletRepo, mocks.NewMockIDGenerator(), cache)

		wallet, err := uc.GetWallet(ctx, "w-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !wallet.Balance.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected cached balance 100, got %s", wallet.Balance)
		}
	})
}

func TestWalletUseCase_GetWalletByEmail(t *testing.T) {
	ctx := context.Background()

	walletRepo := mocks.NewMockWalletRepository()
	walletRepo.Create(ctx, &domain.Wallet{ID: "w-1", Email: "ada@example.com"})

	uc := usecase.NewWalletUseCase(walletRepo, mocks.NewMockIDGenerator(), nil)

	wallet, err := uc.GetWalletByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wallet.ID != "w-1" {
		t.Errorf("expected w-1, got %s", wallet.ID)
	}

	if _, err := uc.GetWalletByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrWalletNotFound) {
		t.Fatalf("expected ErrWalletNotFound, got %v", err)
	}
}
