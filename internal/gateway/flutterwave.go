package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// Flutterwave is a simulated Flutterwave integration, analogous to Paystack
// but with its own failure reason.
type Flutterwave struct {
	delay  time.Duration
	policy FailurePolicy
	logger zerolog.Logger
}

// NewFlutterwave creates a simulated Flutterwave gateway.
func NewFlutterwave(delay time.Duration, policy FailurePolicy, logger zerolog.Logger) *Flutterwave {
	return &Flutterwave{
		delay:  delay,
		policy: policy,
		logger: logger.With().Str("gateway", domain.GatewayFlutterwave.String()).Logger(),
	}
}

// ProcessPayment charges the given account.
func (g *Flutterwave) ProcessPayment(ctx context.Context, accountNumber string, amount decimal.Decimal) (err error) {
	start := time.Now()
	defer func() { observePayment(domain.GatewayFlutterwave.String(), start, err) }()

	g.logger.Info().
		Str("account_number", accountNumber).
		Str("amount", amount.String()).
		Msg("processing payment")

	time.Sleep(g.delay)

	if g.policy.ShouldFail() {
		g.logger.Error().Str("account_number", accountNumber).Msg("payment failed")
		return fmt.Errorf("%w: Flutterwave payment failed: insufficient funds or network error", domain.ErrPaymentProcessing)
	}

	g.logger.Info().Str("account_number", accountNumber).Msg("payment processed")

	return nil
}
