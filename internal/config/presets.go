package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Preset is a named simulation setup stored as YAML in a presets directory.
type Preset struct {
	ID         string
	Name       string
	File       string
	Simulation SimulationConfig
}

// LoadPresets reads every *.yaml file in dir. Files that fail to parse are
// returned in skipped rather than failing the whole listing.
func LoadPresets(dir string) (presets []Preset, skipped map[string]error, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	skipped = map[string]error{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		p, err := LoadPreset(path)
		if err != nil {
			skipped[entry.Name()] = err
			continue
		}
		presets = append(presets, p)
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].ID < presets[j].ID })
	return presets, skipped, nil
}

// LoadPreset reads one preset file. The ID is the file name without
// extension (e.g. "office_party.yaml" -> "office_party").
func LoadPreset(path string) (Preset, error) {
	sim, err := loadPresetFile(path)
	if err != nil {
		return Preset{}, err
	}
	id := strings.TrimSuffix(filepath.Base(path), ".yaml")
	name := sim.Name
	if name == "" {
		name = id
	}
	return Preset{ID: id, Name: name, File: path, Simulation: sim}, nil
}

// PresetPath resolves a preset ID inside dir.
func PresetPath(dir, id string) string {
	return filepath.Join(dir, filepath.Base(id)+".yaml")
}
