package model

import "strings"

// GrabMode describes when a participant reaches for the envelope.
// Keep these values stable; they are used in config files, CSV and JSON output.
type GrabMode string

const (
	ModeFast   GrabMode = "fast"
	ModeNormal GrabMode = "normal"
	ModeSlow   GrabMode = "slow"
)

// Modes lists the known grab modes in draw-queue order.
func Modes() []GrabMode {
	return []GrabMode{ModeFast, ModeNormal, ModeSlow}
}

// ParseGrabMode normalizes s. Unknown values are kept as-is so that callers
// fall through to the full-range draw instead of failing.
func ParseGrabMode(s string) GrabMode {
	return GrabMode(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether m is one of the named modes.
func (m GrabMode) Known() bool {
	switch m {
	case ModeFast, ModeNormal, ModeSlow:
		return true
	default:
		return false
	}
}

func (m GrabMode) String() string { return string(m) }
