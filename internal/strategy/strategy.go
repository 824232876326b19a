// Package strategy maps a grab mode to where in the draw queue the
// participant lands.
package strategy

import (
	"red-envelope-sim/internal/model"
	"red-envelope-sim/internal/random"
)

// Strategy places the participant in the draw queue for one timing mode.
type Strategy interface {
	Name() string
	Mode() model.GrabMode
	// Window returns the inclusive 1-based position range for a round of
	// count shares. Bounds are always within [1, count] and lo <= hi.
	Window(count int) (lo, hi int)
	// Position draws a position uniformly from Window(count).
	Position(rng random.Source, count int) int
}

// ForMode returns the strategy for mode. Unknown modes may land anywhere.
func ForMode(mode model.GrabMode) Strategy {
	switch mode {
	case model.ModeFast:
		return FastStrategy{}
	case model.ModeNormal:
		return NormalStrategy{}
	case model.ModeSlow:
		return SlowStrategy{}
	default:
		return AnywhereStrategy{mode: mode}
	}
}

// FromName parses name and returns its strategy.
func FromName(name string) Strategy {
	return ForMode(model.ParseGrabMode(name))
}

// GeneratePosition is a shorthand for ForMode(mode).Position(rng, count).
func GeneratePosition(rng random.Source, mode model.GrabMode, count int) int {
	return ForMode(mode).Position(rng, count)
}
