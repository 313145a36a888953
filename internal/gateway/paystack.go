package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// Paystack is a simulated Paystack integration. It introduces an artificial
// processing delay and fails according to its failure policy; a production
// implementation would perform the real API call and translate Paystack's
// error taxonomy into domain.ErrPaymentProcessing.
type Paystack struct {
	delay  time.Duration
	policy FailurePolicy
	logger zerolog.Logger
}

// NewPaystack creates a simulated Paystack gateway.
func NewPaystack(delay time.Duration, policy FailurePolicy, logger zerolog.Logger) *Paystack {
	return &Paystack{
		delay:  delay,
		policy: policy,
		logger: logger.With().Str("gateway", domain.GatewayPaystack.String()).Logger(),
	}
}

// ProcessPayment charges the given account. The call is synchronous and
// runs for the configured delay before resolving.
func (g *Paystack) ProcessPayment(ctx context.Context, accountNumber string, amount decimal.Decimal) (err error) {
	start := time.Now()
	defer func() { observePayment(domain.GatewayPaystack.String(), start, err) }()

	g.logger.Info().
		Str("account_number", accountNumber).
		Str("amount", amount.String()).
		Msg("processing payment")

	time.Sleep(g.delay)

	if g.policy.ShouldFail() {
		g.logger.Error().Str("account_number", accountNumber).Msg("payment failed")
		return fmt.Errorf("%w: Paystack payment failed: transaction declined by bank", domain.ErrPaymentProcessing)
	}

	g.logger.Info().Str("account_number", accountNumber).Msg("payment processed")

	return nil
}
