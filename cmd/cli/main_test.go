package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"red-envelope-sim/internal/model"
	"red-envelope-sim/internal/simulation"
)

func TestSplitNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, splitNames(" a, ,b c ,"))
	assert.Empty(t, splitNames(""))
}

func TestResolveSeed(t *testing.T) {
	fixed := uint64(9)
	got, err := resolveSeed(&fixed)
	require.NoError(t, err)
	assert.Equal(t, fixed, got)

	_, err = resolveSeed(nil)
	require.NoError(t, err)
}

func TestNewJSONReport(t *testing.T) {
	cfg := model.SimulationConfig{
		Participant: "alice",
		TotalAmount: decimal.NewFromInt(50),
		GroupSize:   10,
		ShareCount:  5,
		Rounds:      3,
		Mode:        model.ModeNormal,
	}
	report, err := simulation.New(simulation.Options{}).Simulate(cfg, 11)
	require.NoError(t, err)

	out := newJSONReport(report, true)
	assert.Equal(t, uint64(11), out.Seed)
	assert.Equal(t, "normal", out.Mode)
	assert.Equal(t, 3, out.SuccessCount)
	require.Len(t, out.RoundRecords, 3)
	for _, r := range out.RoundRecords {
		assert.Len(t, r.ShareAmounts, 5)
		assert.True(t, r.Success)
	}

	assert.Empty(t, newJSONReport(report, false).RoundRecords)
}

func TestSimulationFlags_Defaults(t *testing.T) {
	f := newSimulationFlags("simulate")
	require.NoError(t, f.fs.Parse([]string{"--name", "alice", "--seed", "0"}))

	cfg, err := f.config()
	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.Simulation.Participant)
	assert.Equal(t, "100", cfg.Simulation.TotalAmount.String())
	assert.Equal(t, 50, cfg.Simulation.GroupSize)
	assert.Equal(t, 10, cfg.Simulation.ShareCount)
	assert.Equal(t, "normal", cfg.Simulation.Mode)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(0), *cfg.Seed)
	assert.Equal(t, 1, cfg.Workers)
	assert.Nil(t, cfg.Privilege())
}

func TestSimulationFlags_ConfigWithOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
simulation:
  participant: carol
  total_amount: 20
  group_size: 8
  share_count: 4
  rounds: 3
  mode: fast
seed: 9
`), 0o644))

	f := newSimulationFlags("simulate")
	require.NoError(t, f.fs.Parse([]string{"--config", path, "--mode", "slow", "--privileged", "carol, dan"}))
	cfg, err := f.config()
	require.NoError(t, err)
	assert.Equal(t, "carol", cfg.Simulation.Participant)
	assert.Equal(t, "slow", cfg.Simulation.Mode)
	assert.Equal(t, 4, cfg.Simulation.ShareCount)
	assert.Equal(t, uint64(9), *cfg.Seed)
	assert.True(t, cfg.Privilege().IsPrivileged("Dan"))
}

func TestSimulationFlags_Invalid(t *testing.T) {
	f := newSimulationFlags("simulate")
	require.NoError(t, f.fs.Parse([]string{"--name", "alice", "--quota", "80"}))
	_, err := f.config()
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	f = newSimulationFlags("simulate")
	require.NoError(t, f.fs.Parse([]string{"--name", "alice", "--total", "lots"}))
	_, err = f.config()
	require.Error(t, err)
}
