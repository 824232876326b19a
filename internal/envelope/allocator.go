// Package envelope splits a red envelope total into random shares.
package envelope

import (
	"errors"

	"github.com/shopspring/decimal"

	"red-envelope-sim/internal/model"
	"red-envelope-sim/internal/random"
)

var (
	// ErrInvalidCount is returned when fewer than one share is requested.
	ErrInvalidCount = errors.New("share count must be >= 1")
	// ErrAllocationInfeasible is returned when the total cannot give every
	// share at least model.MinShare.
	ErrAllocationInfeasible = errors.New("total amount too small for share count")
)

var two = decimal.NewFromInt(2)

// Allocate splits total into count shares with the double-average method.
//
// Every share but the last is drawn uniformly from (0, 2 * remaining/left],
// then clamped so each later share can still get one cent. The last share
// takes whatever remains, so the shares always sum to the (cent-rounded) total.
func Allocate(rng random.Source, total decimal.Decimal, count int) ([]decimal.Decimal, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	total = model.RoundAmount(total)
	if total.LessThan(model.MinTotal(count)) {
		return nil, ErrAllocationInfeasible
	}

	shares := make([]decimal.Decimal, 0, count)
	remaining := total
	for left := count; left > 1; left-- {
		amount := nextShare(rng, remaining, left)
		shares = append(shares, amount)
		remaining = remaining.Sub(amount)
	}
	shares = append(shares, model.RoundAmount(remaining))
	return shares, nil
}

// nextShare draws one non-final share given what is left to hand out.
func nextShare(rng random.Source, remaining decimal.Decimal, left int) decimal.Decimal {
	upper := remaining.Div(decimal.NewFromInt(int64(left))).Mul(two)
	// 1-Float64 is in (0, 1], matching the half-open draw interval.
	draw := decimal.NewFromFloat(1 - rng.Float64()).Mul(upper)

	// Reserve one cent for each share still to come.
	ceiling := remaining.Sub(model.MinTotal(left - 1))
	return model.RoundAmount(clamp(draw, model.MinShare, ceiling))
}

func clamp(x, lo, hi decimal.Decimal) decimal.Decimal {
	if x.GreaterThan(hi) {
		x = hi
	}
	if x.LessThan(lo) {
		x = lo
	}
	return x
}
