package simulation

import (
	"fmt"

	"red-envelope-sim/internal/analysis"
	"red-envelope-sim/internal/model"
)

// Comparison is the same batch played once per timing mode.
type Comparison struct {
	Seed    uint64
	Reports map[model.GrabMode]*Report
	Ranking []analysis.RankedMode
}

// Compare runs cfg under every mode with the same seed; cfg.Mode is ignored.
func (e *Engine) Compare(cfg model.SimulationConfig, seed uint64) (*Comparison, error) {
	cmp := &Comparison{
		Seed:    seed,
		Reports: make(map[model.GrabMode]*Report, len(model.Modes())),
	}
	summaries := make(map[model.GrabMode]analysis.Summary, len(model.Modes()))
	for _, m := range model.Modes() {
		variant := cfg
		variant.Mode = m
		report, err := e.Simulate(variant, seed)
		if err != nil {
			return nil, fmt.Errorf("mode %s: %w", m, err)
		}
		cmp.Reports[m] = report
		summaries[m] = report.Summary
	}
	cmp.Ranking = analysis.RankModes(summaries)
	return cmp, nil
}
