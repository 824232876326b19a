package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is wrapped by every ValidationError.
var ErrInvalidInput = errors.New("invalid simulation input")

// SimulationConfig is everything one batch of rounds needs.
// Units:
// - TotalAmount: currency units, cent resolution
// - GroupSize: participants eligible to grab
// - ShareCount: envelopes the total is split into (the packet quota)
type SimulationConfig struct {
	Participant string
	TotalAmount decimal.Decimal
	GroupSize   int
	ShareCount  int
	Rounds      int
	Mode        GrabMode
}

// ValidationError collects every problem found in a config.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Normalize returns a copy with the participant name trimmed, the mode
// lowercased and the total rounded to cents.
func (c SimulationConfig) Normalize() SimulationConfig {
	out := c
	out.Participant = strings.TrimSpace(c.Participant)
	out.Mode = ParseGrabMode(string(c.Mode))
	out.TotalAmount = RoundAmount(c.TotalAmount)
	return out
}

// Validate checks the config as given; call Normalize first for user input.
func (c SimulationConfig) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Participant) == "" {
		problems = append(problems, "participant name is required")
	}
	if !c.TotalAmount.IsPositive() {
		problems = append(problems, "total amount must be > 0")
	}
	if c.GroupSize <= 0 {
		problems = append(problems, "group size must be > 0")
	}
	if c.ShareCount <= 0 {
		problems = append(problems, "share count must be > 0")
	}
	if c.Rounds <= 0 {
		problems = append(problems, "round count must be > 0")
	}
	if c.ShareCount > 0 && c.GroupSize > 0 && c.ShareCount > c.GroupSize {
		problems = append(problems, "share count must not exceed group size")
	}
	if c.ShareCount > 0 && c.TotalAmount.IsPositive() && c.TotalAmount.LessThan(MinTotal(c.ShareCount)) {
		problems = append(problems, fmt.Sprintf("total amount %s cannot give %d shares at least %s each",
			c.TotalAmount.StringFixed(AmountPlaces), c.ShareCount, MinShare.StringFixed(AmountPlaces)))
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// ExpectedShare is the average share of one round.
func (c SimulationConfig) ExpectedShare() decimal.Decimal {
	if c.ShareCount <= 0 {
		return decimal.Zero
	}
	return c.TotalAmount.Div(decimal.NewFromInt(int64(c.ShareCount)))
}
