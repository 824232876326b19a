package strategy

import (
	"red-envelope-sim/internal/model"
	"red-envelope-sim/internal/random"
)

// Queue segments for a round of count shares:
// - fast:   first quarter      [1, quarter]
// - normal: the middle half    [quarter+1, quarter+half]
// - slow:   last quarter       [count-quarter+1, count]
func segments(count int) (quarter, half int) {
	return count / 4, count / 2
}

// FastStrategy lands in the first quarter of the queue.
type FastStrategy struct{}

func (FastStrategy) Name() string         { return "fast" }
func (FastStrategy) Mode() model.GrabMode { return model.ModeFast }

func (FastStrategy) Window(count int) (int, int) {
	quarter, _ := segments(count)
	return clampWindow(1, quarter, count)
}

func (s FastStrategy) Position(rng random.Source, count int) int {
	return draw(rng, s, count)
}

// NormalStrategy lands in the middle half of the queue.
type NormalStrategy struct{}

func (NormalStrategy) Name() string         { return "normal" }
func (NormalStrategy) Mode() model.GrabMode { return model.ModeNormal }

func (NormalStrategy) Window(count int) (int, int) {
	quarter, half := segments(count)
	return clampWindow(quarter+1, quarter+half, count)
}

func (s NormalStrategy) Position(rng random.Source, count int) int {
	return draw(rng, s, count)
}

// SlowStrategy lands in the last quarter of the queue.
type SlowStrategy struct{}

func (SlowStrategy) Name() string         { return "slow" }
func (SlowStrategy) Mode() model.GrabMode { return model.ModeSlow }

func (SlowStrategy) Window(count int) (int, int) {
	quarter, _ := segments(count)
	return clampWindow(count-quarter+1, count, count)
}

func (s SlowStrategy) Position(rng random.Source, count int) int {
	return draw(rng, s, count)
}

// AnywhereStrategy is the fallback for unrecognized modes: the whole queue.
type AnywhereStrategy struct {
	mode model.GrabMode
}

func (AnywhereStrategy) Name() string           { return "anywhere" }
func (s AnywhereStrategy) Mode() model.GrabMode { return s.mode }

func (AnywhereStrategy) Window(count int) (int, int) {
	return clampWindow(1, count, count)
}

func (s AnywhereStrategy) Position(rng random.Source, count int) int {
	return draw(rng, s, count)
}

func draw(rng random.Source, s Strategy, count int) int {
	lo, hi := s.Window(count)
	return lo + rng.IntN(hi-lo+1)
}

// clampWindow forces [lo, hi] into [1, count]. A window that is empty after
// clamping (e.g. a zero-width quarter) collapses onto its lower bound.
func clampWindow(lo, hi, count int) (int, int) {
	if count < 1 {
		count = 1
	}
	lo = clampInt(lo, 1, count)
	hi = clampInt(hi, 1, count)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
