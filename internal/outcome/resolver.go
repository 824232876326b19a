// Package outcome decides whether the participant gets an envelope.
package outcome

import (
	"math"

	"github.com/shopspring/decimal"

	"red-envelope-sim/internal/model"
	"red-envelope-sim/internal/random"
)

// slowPenaltyDivisor converts surplus group members into failure percent.
const slowPenaltyDivisor = 7.0

// Resolution is the result of one grab attempt.
type Resolution struct {
	Success bool
	// FailureRate is the failure probability used, in percent [0, 100].
	FailureRate float64
	Privileged  bool
}

type Resolver struct {
	privilege Privilege
}

// NewResolver builds a resolver; a nil privilege means nobody is privileged.
func NewResolver(p Privilege) *Resolver {
	if p == nil {
		p = NoPrivilege
	}
	return &Resolver{privilege: p}
}

// Privileged reports whether name gets the privileged treatment.
func (r *Resolver) Privileged(name string) bool {
	return r.privilege.IsPrivileged(name)
}

// FailureRate returns the chance, in percent, of missing every envelope.
// Only slow grabbers are at risk: each 7 members beyond the share count add
// one percent.
func FailureRate(mode model.GrabMode, groupSize, shareCount int) float64 {
	if mode != model.ModeSlow {
		return 0
	}
	rate := float64(groupSize-shareCount) / slowPenaltyDivisor
	return math.Max(0, math.Min(100, rate))
}

// Resolve decides success for one round. Privileged participants skip the draw.
func (r *Resolver) Resolve(rng random.Source, mode model.GrabMode, groupSize, shareCount int, privileged bool) Resolution {
	rate := FailureRate(mode, groupSize, shareCount)
	if privileged {
		return Resolution{Success: true, FailureRate: rate, Privileged: true}
	}
	return Resolution{
		Success:     rng.Float64()*100 > rate,
		FailureRate: rate,
	}
}

// PromoteMax swaps the first largest amount into the 1-based position, in place.
func PromoteMax(amounts []decimal.Decimal, position int) {
	if len(amounts) == 0 || position < 1 || position > len(amounts) {
		return
	}
	maxIdx := 0
	for i, a := range amounts {
		if a.GreaterThan(amounts[maxIdx]) {
			maxIdx = i
		}
	}
	user := position - 1
	amounts[maxIdx], amounts[user] = amounts[user], amounts[maxIdx]
}
