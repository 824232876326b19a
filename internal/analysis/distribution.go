package analysis

import (
	"math"
	"sort"

	"red-envelope-sim/internal/model"
)

// Distribution describes the amounts the participant actually received.
// Only successful rounds count. Values are floats; they are for display
// and ranking, never for money arithmetic.
type Distribution struct {
	Count int

	Min  float64
	Max  float64
	Mean float64
	P05  float64
	P50  float64
	P95  float64

	SpreadP95P05 float64
}

func ComputeDistribution(records []model.RoundRecord) Distribution {
	vals := make([]float64, 0, len(records))
	for _, r := range records {
		if r.User.Success {
			vals = append(vals, r.User.Amount.InexactFloat64())
		}
	}
	d := Distribution{Count: len(vals)}
	if len(vals) == 0 {
		return d
	}

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	for _, v := range vals {
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	sort.Float64s(vals)
	d.Min = minv
	d.Max = maxv
	d.Mean = sum / float64(len(vals))
	d.P05 = percentileSorted(vals, 0.05)
	d.P50 = percentileSorted(vals, 0.50)
	d.P95 = percentileSorted(vals, 0.95)
	d.SpreadP95P05 = d.P95 - d.P05
	return d
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
