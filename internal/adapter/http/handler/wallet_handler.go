package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// WalletService defines the behavior needed by WalletHandler.
type WalletService interface {
	CreateWallet(ctx context.Context, input usecase.CreateWalletInput) (*domain.Wallet, error)
	GetWallet(ctx context.Context, id string) (*domain.Wallet, error)
	GetWalletByEmail(ctx context.Context, email string) (*domain.Wallet, error)
}

// WalletHandler handles wallet-related HTTP requests.
type WalletHandler struct {
	walletUC WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletUC WalletService) *WalletHandler {
	return &WalletHandler{walletUC: walletUC}
}

// Create creates a new wallet.
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	wallet, err := h.walletUC.CreateWallet(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create wallet", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.WalletFromDomain(wallet))
}

// Get retrieves a wallet by ID.
func (h *WalletHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	wallet, err := h.walletUC.GetWallet(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get wallet", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.WalletFromDomain(wallet))
}

// GetByEmail retrieves a wallet by the email query parameter.
func (h *WalletHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "missing email query parameter", "")
		return
	}

	wallet, err := h.walletUC.GetWalletByEmail(r.Context(), email)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get wallet", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.WalletFromDomain(wallet))
}
