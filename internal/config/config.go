package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"red-envelope-sim/internal/model"
	"red-envelope-sim/internal/outcome"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load simulation parameters from a preset (e.g. examples/presets/*.yaml).
	// Fields set under Simulation override the preset.
	PresetFile string           `yaml:"preset_file"`
	Simulation SimulationConfig `yaml:"simulation"`

	// Privileged replaces the built-in privileged names when non-empty.
	Privileged []string `yaml:"privileged"`
	// Seed makes a run reproducible; nil draws a fresh seed.
	Seed    *uint64 `yaml:"seed"`
	Workers int     `yaml:"workers"`
}

type SimulationConfig struct {
	Name        string          `yaml:"name"`
	Participant string          `yaml:"participant"`
	TotalAmount decimal.Decimal `yaml:"total_amount"`
	GroupSize   int             `yaml:"group_size"`
	ShareCount  int             `yaml:"share_count"`
	Rounds      int             `yaml:"rounds"`
	Mode        string          `yaml:"mode"`
}

// ErrNoConfig is returned by Validate on a nil config.
var ErrNoConfig = errors.New("config is nil")

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.PresetFile != "" {
		presetPath := c.PresetFile
		if !filepath.IsAbs(presetPath) {
			// Prefer paths relative to the config file, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), presetPath)
			if _, err := os.Stat(cand); err == nil {
				presetPath = cand
			}
		}
		loaded, err := loadPresetFile(presetPath)
		if err != nil {
			return nil, err
		}
		c.Simulation = MergeSimulation(loaded, c.Simulation)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return ErrNoConfig
	}
	if c.Workers < 0 {
		return errors.New("workers must be >= 0")
	}
	if err := c.Simulation.ToModel().Normalize().Validate(); err != nil {
		return fmt.Errorf("simulation config invalid: %w", err)
	}
	return nil
}

// Privilege returns the configured privileged names, or nil for the defaults.
func (c *Config) Privilege() outcome.Privilege {
	if c == nil || len(c.Privileged) == 0 {
		return nil
	}
	return outcome.NewAllowList(c.Privileged...)
}

func (s SimulationConfig) ToModel() model.SimulationConfig {
	return model.SimulationConfig{
		Participant: s.Participant,
		TotalAmount: s.TotalAmount,
		GroupSize:   s.GroupSize,
		ShareCount:  s.ShareCount,
		Rounds:      s.Rounds,
		Mode:        model.ParseGrabMode(s.Mode),
	}
}

type presetFileWrapper struct {
	Simulation SimulationConfig `yaml:"simulation"`
}

func loadPresetFile(path string) (SimulationConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SimulationConfig{}, err
	}
	var w presetFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return SimulationConfig{}, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return w.Simulation, nil
}

// MergeSimulation overlays non-zero fields from override onto base.
// Used when loading a preset and then applying overrides from a config or request.
func MergeSimulation(base, override SimulationConfig) SimulationConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Participant != "" {
		out.Participant = override.Participant
	}
	if !override.TotalAmount.IsZero() {
		out.TotalAmount = override.TotalAmount
	}
	if override.GroupSize != 0 {
		out.GroupSize = override.GroupSize
	}
	if override.ShareCount != 0 {
		out.ShareCount = override.ShareCount
	}
	if override.Rounds != 0 {
		out.Rounds = override.Rounds
	}
	if override.Mode != "" {
		out.Mode = override.Mode
	}
	return out
}
