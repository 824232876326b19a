package analysis

import (
	"sort"

	"red-envelope-sim/internal/model"
)

// RankedMode is one mode's summary within a comparison.
type RankedMode struct {
	Mode    model.GrabMode
	Summary Summary
}

// RankModes sorts summaries by total received, then success count, both
// descending. Ties keep model.Modes() order.
func RankModes(byMode map[model.GrabMode]Summary) []RankedMode {
	out := make([]RankedMode, 0, len(byMode))
	for _, m := range model.Modes() {
		if s, ok := byMode[m]; ok {
			out = append(out, RankedMode{Mode: m, Summary: s})
		}
	}
	var other []model.GrabMode
	for m := range byMode {
		if !m.Known() {
			other = append(other, m)
		}
	}
	sort.Slice(other, func(i, j int) bool { return other[i] < other[j] })
	for _, m := range other {
		out = append(out, RankedMode{Mode: m, Summary: byMode[m]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Summary, out[j].Summary
		if !a.TotalReceived.Equal(b.TotalReceived) {
			return a.TotalReceived.GreaterThan(b.TotalReceived)
		}
		return a.SuccessCount > b.SuccessCount
	})
	return out
}
