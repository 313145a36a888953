package domain

import "strings"

// Gateway identifies a payment provider. The set is closed: adding a
// provider means adding a constant here and registering a strategy for it
// in the gateway selector. Nothing else changes.
type Gateway string

const (
	GatewayPaystack    Gateway = "PAYSTACK"
	GatewayFlutterwave Gateway = "FLUTTERWAVE"
)

// Gateways lists every supported provider.
func Gateways() []Gateway {
	return []Gateway{GatewayPaystack, GatewayFlutterwave}
}

// ParseGateway parses a provider identifier from the API boundary. This is
// the only membership check for the enumeration; code past the boundary
// treats Gateway values as valid.
func ParseGateway(s string) (Gateway, error) {
	switch Gateway(strings.ToUpper(strings.TrimSpace(s))) {
	case GatewayPaystack:
		return GatewayPaystack, nil
	case GatewayFlutterwave:
		return GatewayFlutterwave, nil
	default:
		return "", ErrUnknownGateway
	}
}

func (g Gateway) String() string {
	return string(g)
}
