package gateway

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// DefaultFailureRate is the 1-in-10 failure chance of the simulated
// providers, kept to exercise the rollback path.
const DefaultFailureRate = 10

// Selector maps each provider in the closed domain.Gateway enumeration to
// its strategy. Registering a new provider is the only change needed to
// support it; the funding orchestrator never changes.
type Selector struct {
	strategies map[domain.Gateway]usecase.PaymentGateway
}

// NewSelector creates a selector over an explicit strategy table.
func NewSelector(strategies map[domain.Gateway]usecase.PaymentGateway) *Selector {
	return &Selector{strategies: strategies}
}

// NewSimulatedSelector registers the simulated strategies for every known
// provider with a shared delay and failure policy.
func NewSimulatedSelector(delay time.Duration, policy FailurePolicy, logger zerolog.Logger) *Selector {
	return NewSelector(map[domain.Gateway]usecase.PaymentGateway{
		domain.GatewayPaystack:    NewPaystack(delay, policy, logger),
		domain.GatewayFlutterwave: NewFlutterwave(delay, policy, logger),
	})
}

// Resolve returns the strategy for a provider. Membership in the
// enumeration is established at the API boundary by domain.ParseGateway,
// so there is no error path here.
func (s *Selector) Resolve(gateway domain.Gateway) usecase.PaymentGateway {
	return s.strategies[gateway]
}
