package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"red-envelope-sim/internal/api/models"
	"red-envelope-sim/internal/model"
	"red-envelope-sim/internal/outcome"
	"red-envelope-sim/internal/strategy"
)

// Sample round used to illustrate each mode's window and failure rate.
const (
	exampleGroupSize  = 50
	exampleShareCount = 10
)

var modeDescriptions = map[model.GrabMode]string{
	model.ModeFast:   "Grab as soon as the envelope lands. Lands in the first quarter of positions and never misses.",
	model.ModeNormal: "Grab at a relaxed pace. Lands in the middle half of positions and never misses.",
	model.ModeSlow:   "Grab late. Lands in the last quarter of positions and may miss entirely in a large group.",
}

// ModeHandler handles timing mode requests
type ModeHandler struct{}

// NewModeHandler creates a new mode handler
func NewModeHandler() *ModeHandler {
	return &ModeHandler{}
}

// ListModes handles GET /api/v1/modes
func (h *ModeHandler) ListModes(c *gin.Context) {
	modes := make([]models.ModeInfo, 0, len(model.Modes()))
	for _, m := range model.Modes() {
		lo, hi := strategy.ForMode(m).Window(exampleShareCount)
		modes = append(modes, models.ModeInfo{
			Name:        m.String(),
			Description: modeDescriptions[m],
			Example: models.ModeExample{
				GroupSize:   exampleGroupSize,
				ShareCount:  exampleShareCount,
				WindowStart: lo,
				WindowEnd:   hi,
				FailureRate: outcome.FailureRate(m, exampleGroupSize, exampleShareCount),
			},
		})
	}
	c.JSON(http.StatusOK, gin.H{"modes": modes})
}
