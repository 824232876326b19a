package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"red-envelope-sim/internal/api/models"
	"red-envelope-sim/internal/config"
)

// PresetHandler handles preset-related requests
type PresetHandler struct {
	presetDir string
	logger    zerolog.Logger
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler(dir string, logger zerolog.Logger) *PresetHandler {
	// Convert to absolute path for reliability
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	logger.Info().Str("dir", dir).Msg("using preset directory")
	return &PresetHandler{presetDir: dir, logger: logger}
}

// PresetDir returns the preset directory path.
func (h *PresetHandler) PresetDir() string {
	return h.presetDir
}

// ListPresets handles GET /api/v1/presets
func (h *PresetHandler) ListPresets(c *gin.Context) {
	out := []models.PresetInfo{}

	presets, skipped, err := config.LoadPresets(h.presetDir)
	if err != nil {
		// A missing directory just means no presets.
		h.logger.Warn().Err(err).Str("dir", h.presetDir).Msg("failed to read preset directory")
		c.JSON(http.StatusOK, gin.H{"presets": out})
		return
	}
	for name, err := range skipped {
		h.logger.Warn().Err(err).Str("file", name).Msg("skipping preset")
	}

	for _, p := range presets {
		out = append(out, models.PresetInfo{
			ID:          p.ID,
			Name:        p.Name,
			File:        filepath.Base(p.File),
			Participant: p.Simulation.Participant,
			TotalAmount: p.Simulation.TotalAmount,
			GroupSize:   p.Simulation.GroupSize,
			ShareCount:  p.Simulation.ShareCount,
			Rounds:      p.Simulation.Rounds,
			Mode:        p.Simulation.Mode,
		})
	}
	c.JSON(http.StatusOK, gin.H{"presets": out})
}
