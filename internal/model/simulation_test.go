package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() SimulationConfig {
	return SimulationConfig{
		Participant: "alice",
		TotalAmount: decimal.NewFromInt(100),
		GroupSize:   20,
		ShareCount:  5,
		Rounds:      3,
		Mode:        ModeFast,
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.ShareCount = cfg.GroupSize
	require.NoError(t, cfg.Validate())
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SimulationConfig)
		want   string
	}{
		{"blank name", func(c *SimulationConfig) { c.Participant = "  " }, "participant name is required"},
		{"zero total", func(c *SimulationConfig) { c.TotalAmount = decimal.Zero }, "total amount must be > 0"},
		{"negative total", func(c *SimulationConfig) { c.TotalAmount = decimal.NewFromInt(-1) }, "total amount must be > 0"},
		{"zero group", func(c *SimulationConfig) { c.GroupSize = 0 }, "group size must be > 0"},
		{"zero shares", func(c *SimulationConfig) { c.ShareCount = 0 }, "share count must be > 0"},
		{"zero rounds", func(c *SimulationConfig) { c.Rounds = 0 }, "round count must be > 0"},
		{"quota above group", func(c *SimulationConfig) { c.ShareCount = 21 }, "share count must not exceed group size"},
		{"infeasible", func(c *SimulationConfig) { c.TotalAmount = decimal.RequireFromString("0.04") }, "cannot give 5 shares"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsEverythingAtOnce(t *testing.T) {
	err := SimulationConfig{}.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 5)
}

func TestNormalize(t *testing.T) {
	cfg := SimulationConfig{
		Participant: "  bob ",
		TotalAmount: decimal.RequireFromString("10.005"),
		Mode:        " SLOW",
	}
	got := cfg.Normalize()

	assert.Equal(t, "bob", got.Participant)
	assert.Equal(t, ModeSlow, got.Mode)
	assert.Equal(t, "10.01", got.TotalAmount.String(), "half away from zero")
	assert.Equal(t, "  bob ", cfg.Participant, "receiver untouched")

	// Rounds to zero, then fails validation.
	tiny := validConfig()
	tiny.TotalAmount = decimal.RequireFromString("0.004")
	assert.Error(t, tiny.Normalize().Validate())
}

func TestExpectedShare(t *testing.T) {
	assert.Equal(t, "20", validConfig().ExpectedShare().String())
	assert.True(t, SimulationConfig{}.ExpectedShare().IsZero())
}
