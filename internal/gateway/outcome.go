package gateway

import "math/rand/v2"

// FailurePolicy decides whether a simulated payment attempt fails. It is
// injectable so tests can force deterministic outcomes instead of relying
// on real randomness.
type FailurePolicy interface {
	ShouldFail() bool
}

// RandomFailure fails one attempt in Rate, matching how a flaky external
// processor exercises the rollback path.
type RandomFailure struct {
	rate int
}

// NewRandomFailure creates a policy that fails with probability 1/rate.
// A rate below 1 never fails.
func NewRandomFailure(rate int) *RandomFailure {
	return &RandomFailure{rate: rate}
}

func (p *RandomFailure) ShouldFail() bool {
	if p.rate < 1 {
		return false
	}
	return rand.IntN(p.rate) == 0
}

// FailurePolicyFunc adapts a function to a FailurePolicy.
type FailurePolicyFunc func() bool

func (f FailurePolicyFunc) ShouldFail() bool { return f() }

// AlwaysSucceed never fails.
var AlwaysSucceed = FailurePolicyFunc(func() bool { return false })

// AlwaysFail fails every attempt.
var AlwaysFail = FailurePolicyFunc(func() bool { return true })
