package models

import "github.com/shopspring/decimal"

// SimulateRequest represents the request body for running a simulation.
// Fields left zero are taken from the preset when PresetID is set.
type SimulateRequest struct {
	PresetID    string          `json:"preset_id,omitempty"`
	Participant string          `json:"participant"`
	TotalAmount decimal.Decimal `json:"total_amount"` // number or string, e.g. 100 or "88.88"
	GroupSize   int             `json:"group_size"`
	ShareCount  int             `json:"share_count"`
	Rounds      int             `json:"rounds"`
	Mode        string          `json:"mode"` // "fast", "normal", "slow"

	Privileged    []string `json:"privileged,omitempty"` // replaces the default list
	Seed          *uint64  `json:"seed,omitempty"`
	IncludeRounds bool     `json:"include_rounds,omitempty"` // default: false
}
