package outcome

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"red-envelope-sim/internal/model"
	"red-envelope-sim/internal/random"
)

type fixedSource struct{ f float64 }

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) IntN(int) int     { return 0 }

func TestFailureRate(t *testing.T) {
	assert.InDelta(t, 40.0/7.0, FailureRate(model.ModeSlow, 50, 10), 1e-12)
	assert.InDelta(t, 5.714, FailureRate(model.ModeSlow, 50, 10), 0.001)

	assert.Equal(t, 0.0, FailureRate(model.ModeSlow, 10, 10))
	assert.Equal(t, 100.0, FailureRate(model.ModeSlow, 1000, 1))
	assert.Equal(t, 100.0, FailureRate(model.ModeSlow, 701, 1))

	for _, group := range []int{1, 10, 500, 100000} {
		assert.Equal(t, 0.0, FailureRate(model.ModeFast, group, 1))
		assert.Equal(t, 0.0, FailureRate(model.ModeNormal, group, 1))
		assert.Equal(t, 0.0, FailureRate(model.GrabMode("other"), group, 1))
	}
}

func TestResolve_FastAndNormalAlwaysSucceed(t *testing.T) {
	r := NewResolver(nil)
	for _, mode := range []model.GrabMode{model.ModeFast, model.ModeNormal} {
		for seed := uint64(0); seed < 100; seed++ {
			res := r.Resolve(random.New(seed), mode, 1000, 1, false)
			require.True(t, res.Success, "mode=%s seed=%d", mode, seed)
			require.Equal(t, 0.0, res.FailureRate)
		}
	}
}

func TestResolve_SlowUsesDraw(t *testing.T) {
	r := NewResolver(nil)

	// rate = 40/7 ~ 5.71%; a draw of 5% fails, 6% succeeds.
	res := r.Resolve(fixedSource{f: 0.05}, model.ModeSlow, 50, 10, false)
	assert.False(t, res.Success)
	res = r.Resolve(fixedSource{f: 0.06}, model.ModeSlow, 50, 10, false)
	assert.True(t, res.Success)

	// Full failure rate can never be beaten.
	res = r.Resolve(fixedSource{f: 0.999999}, model.ModeSlow, 2000, 1, false)
	assert.False(t, res.Success)
	assert.Equal(t, 100.0, res.FailureRate)
}

func TestResolve_SlowFrequency(t *testing.T) {
	r := NewResolver(nil)
	rng := random.New(11)
	const n = 20000
	fails := 0
	for i := 0; i < n; i++ {
		if !r.Resolve(rng, model.ModeSlow, 360, 10, false).Success {
			fails++
		}
	}
	// rate = 350/7 = 50%
	assert.InDelta(t, 0.5, float64(fails)/n, 0.02)
}

func TestResolve_PrivilegedAlwaysSucceeds(t *testing.T) {
	r := NewResolver(DefaultAllowList())
	require.True(t, r.Privileged("YiSheng"))

	res := r.Resolve(fixedSource{f: 0}, model.ModeSlow, 5000, 1, true)
	assert.True(t, res.Success)
	assert.True(t, res.Privileged)
	assert.Equal(t, 100.0, res.FailureRate)
}

func TestPromoteMax(t *testing.T) {
	amounts := decimals("1.00", "5.00", "2.00", "5.00")
	PromoteMax(amounts, 3)
	assert.Equal(t, []string{"1.00", "2.00", "5.00", "5.00"}, strs(amounts))

	amounts = decimals("9.00", "1.00")
	PromoteMax(amounts, 1)
	assert.Equal(t, []string{"9.00", "1.00"}, strs(amounts))

	// Out-of-range positions are ignored.
	amounts = decimals("1.00", "2.00")
	PromoteMax(amounts, 3)
	assert.Equal(t, []string{"1.00", "2.00"}, strs(amounts))
}

func decimals(vals ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vals))
	for i, v := range vals {
		out[i] = decimal.RequireFromString(v)
	}
	return out
}

func strs(ds []decimal.Decimal) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.StringFixed(2)
	}
	return out
}
