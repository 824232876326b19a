package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FailReasonTooLate is recorded when the participant misses every envelope.
const FailReasonTooLate = "arrived too late"

// Share is one envelope of a round.
type Share struct {
	Holder     string
	Amount     decimal.Decimal
	Position   int // 1-based
	IsBestLuck bool
}

// UserOutcome is what happened to the named participant in one round.
// FailReason is empty on success; Amount is zero on failure.
type UserOutcome struct {
	Position   int
	Success    bool
	Amount     decimal.Decimal
	FailReason string
	IsBestLuck bool
}

// RoundRecord is one row of per-round output.
type RoundRecord struct {
	Round  int // 1-based
	Shares []Share
	User   UserOutcome
}

// PlaceholderHolder labels a position not taken by the participant.
func PlaceholderHolder(position int) string {
	return fmt.Sprintf("User%d", position)
}

// Total sums every share of the round.
func (r RoundRecord) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range r.Shares {
		sum = sum.Add(s.Amount)
	}
	return sum
}

// MaxAmount returns the largest share of the round.
func (r RoundRecord) MaxAmount() decimal.Decimal {
	if len(r.Shares) == 0 {
		return decimal.Zero
	}
	return MaxOf(amountsOf(r.Shares))
}

// MaxOf returns the largest value; amounts must not be empty.
func MaxOf(amounts []decimal.Decimal) decimal.Decimal {
	m := amounts[0]
	for _, a := range amounts[1:] {
		if a.GreaterThan(m) {
			m = a
		}
	}
	return m
}

func amountsOf(shares []Share) []decimal.Decimal {
	out := make([]decimal.Decimal, len(shares))
	for i, s := range shares {
		out[i] = s.Amount
	}
	return out
}
