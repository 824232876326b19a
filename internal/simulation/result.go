package simulation

import (
	"time"

	"red-envelope-sim/internal/analysis"
	"red-envelope-sim/internal/model"
)

// Result is the primary artifact of a batch: every round, in order.
type Result struct {
	Seed   uint64
	Config model.SimulationConfig
	Rounds []model.RoundRecord

	// FailureRate is the per-round failure probability in percent.
	FailureRate float64
	Privileged  bool

	Duration time.Duration
}

// Report is a Result plus the participant's summary.
type Report struct {
	*Result
	Summary analysis.Summary
}
