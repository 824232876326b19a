package models

import "github.com/shopspring/decimal"

// Amounts are decimal strings ("12.34") so no precision is lost in transit.

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	Status      string           `json:"status"`
	Seed        uint64           `json:"seed"`
	Config      SimulationConfig `json:"config"`
	FailureRate float64          `json:"failure_rate"` // percent, per round
	Privileged  bool             `json:"privileged"`
	DurationMS  float64          `json:"duration_ms"`
	Summary     Summary          `json:"summary"`
	Rounds      []Round          `json:"rounds,omitempty"`
}

// SimulationConfig echoes the normalized input.
type SimulationConfig struct {
	Participant   string          `json:"participant"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	GroupSize     int             `json:"group_size"`
	ShareCount    int             `json:"share_count"`
	Rounds        int             `json:"rounds"`
	Mode          string          `json:"mode,omitempty"`
	ExpectedShare decimal.Decimal `json:"expected_share"`
}

// Summary contains the participant's aggregated results
type Summary struct {
	Rounds          int             `json:"rounds"`
	SuccessCount    int             `json:"success_count"`
	SuccessRate     float64         `json:"success_rate"` // 0..1
	TotalReceived   decimal.Decimal `json:"total_received"`
	AverageReceived decimal.Decimal `json:"average_received"`
	BestLuckCount   int             `json:"best_luck_count"`
	LuckPercentage  decimal.Decimal `json:"luck_percentage"`
	Rating          Rating          `json:"rating"`
	BestRound       int             `json:"best_round,omitempty"`
	WorstRound      int             `json:"worst_round,omitempty"`
	Distribution    Distribution    `json:"distribution"`
}

// Distribution summarizes the amounts received in successful rounds
type Distribution struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	P05   float64 `json:"p05"`
	P50   float64 `json:"p50"`
	P95   float64 `json:"p95"`
}

// CompareResponse represents the response from a mode comparison
type CompareResponse struct {
	Seed       uint64             `json:"seed"`
	Config     SimulationConfig   `json:"config"`
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one mode, best first
type ComparisonResult struct {
	Rank        int     `json:"rank"`
	Mode        string  `json:"mode"`
	FailureRate float64 `json:"failure_rate"`
	Summary     Summary `json:"summary"`
}

// Rating is one luck tier
type Rating struct {
	Tier        string   `json:"tier"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	UpperBound  *float64 `json:"upper_bound,omitempty"`
}

// Round represents one simulated round
type Round struct {
	Round  int         `json:"round"`
	Shares []Share     `json:"shares"`
	User   UserOutcome `json:"user"`
}

// Share is one envelope of a round
type Share struct {
	Position   int             `json:"position"`
	Holder     string          `json:"holder"`
	Amount     decimal.Decimal `json:"amount"`
	IsBestLuck bool            `json:"is_best_luck"`
}

// UserOutcome is the participant's result in one round
type UserOutcome struct {
	Position   int             `json:"position"`
	Success    bool            `json:"success"`
	Amount     decimal.Decimal `json:"amount"`
	IsBestLuck bool            `json:"is_best_luck"`
	FailReason string          `json:"fail_reason,omitempty"`
}

// ModeInfo describes a timing mode
type ModeInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Example     ModeExample `json:"example"`
}

// ModeExample shows the position window and failure rate for a sample round.
type ModeExample struct {
	GroupSize   int     `json:"group_size"`
	ShareCount  int     `json:"share_count"`
	WindowStart int     `json:"window_start"`
	WindowEnd   int     `json:"window_end"`
	FailureRate float64 `json:"failure_rate"`
}

// PresetInfo represents information about a simulation preset
type PresetInfo struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	File        string          `json:"file"`
	Participant string          `json:"participant,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	GroupSize   int             `json:"group_size"`
	ShareCount  int             `json:"share_count"`
	Rounds      int             `json:"rounds"`
	Mode        string          `json:"mode"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
