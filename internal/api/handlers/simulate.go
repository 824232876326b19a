package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"red-envelope-sim/internal/api/models"
	"red-envelope-sim/internal/config"
	"red-envelope-sim/internal/model"
	"red-envelope-sim/internal/observability"
	"red-envelope-sim/internal/outcome"
	"red-envelope-sim/internal/random"
	"red-envelope-sim/internal/simulation"
)

// SimulationHandler handles simulation requests
type SimulationHandler struct {
	presetDir string
	maxRounds int
	workers   int
	logger    zerolog.Logger
	metrics   *observability.Metrics
}

// NewSimulationHandler creates a new simulation handler. metrics may be nil.
func NewSimulationHandler(cfg config.ServerConfig, logger zerolog.Logger, metrics *observability.Metrics) *SimulationHandler {
	return &SimulationHandler{
		presetDir: cfg.PresetDir,
		maxRounds: cfg.MaxRounds,
		workers:   cfg.Workers,
		logger:    logger,
		metrics:   metrics,
	}
}

// simulationRun is a validated request, ready for the engine.
type simulationRun struct {
	req    models.SimulateRequest
	cfg    model.SimulationConfig
	seed   uint64
	engine *simulation.Engine
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	run, ok := h.prepare(c, 1)
	if !ok {
		return
	}

	start := time.Now()
	report, err := run.engine.Simulate(run.cfg, run.seed)
	h.observe(run.cfg.Mode, time.Since(start), err)
	if err != nil {
		respondSimulationError(c, err)
		return
	}

	c.JSON(http.StatusOK, buildResponse(report, run.req.IncludeRounds))
}

// CompareModes handles POST /api/v1/simulate/compare
// The request's mode is ignored; every mode is played with the same seed.
func (h *SimulationHandler) CompareModes(c *gin.Context) {
	run, ok := h.prepare(c, len(model.Modes()))
	if !ok {
		return
	}

	start := time.Now()
	cmp, err := run.engine.Compare(run.cfg, run.seed)
	h.observe(model.GrabMode("compare"), time.Since(start), err)
	if err != nil {
		respondSimulationError(c, err)
		return
	}

	c.JSON(http.StatusOK, buildCompareResponse(cmp))
}

// prepare binds and validates the request. batches is how many times the
// rounds will be played, for the MAX_ROUNDS check. On failure the error
// response has already been written.
func (h *SimulationHandler) prepare(c *gin.Context, batches int) (simulationRun, bool) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return simulationRun{}, false
	}

	cfg, err := h.buildConfig(req)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_CONFIG", err.Error(), nil)
		return simulationRun{}, false
	}
	if err := cfg.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_CONFIG", err.Error(), validationDetails(err))
		return simulationRun{}, false
	}
	// Divide rather than multiply: Rounds*batches can overflow.
	if cfg.Rounds > h.maxRounds/batches {
		respondError(c, http.StatusBadRequest, "INVALID_CONFIG", "too many rounds", map[string]interface{}{
			"rounds":     cfg.Rounds,
			"batches":    batches,
			"max_rounds": h.maxRounds,
		})
		return simulationRun{}, false
	}

	var seed uint64
	if req.Seed != nil {
		seed = *req.Seed
	} else if seed, err = random.NewSeed(); err != nil {
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return simulationRun{}, false
	}

	opts := simulation.Options{Logger: h.logger, Workers: h.workers}
	if len(req.Privileged) > 0 {
		opts.Privilege = outcome.NewAllowList(req.Privileged...)
	}
	if h.metrics != nil {
		opts.Observer = h.metrics
	}

	return simulationRun{
		req:    req,
		cfg:    cfg,
		seed:   seed,
		engine: simulation.New(opts),
	}, true
}

// buildConfig merges the request onto the named preset, if any.
func (h *SimulationHandler) buildConfig(req models.SimulateRequest) (model.SimulationConfig, error) {
	sim := config.SimulationConfig{
		Participant: req.Participant,
		TotalAmount: req.TotalAmount,
		GroupSize:   req.GroupSize,
		ShareCount:  req.ShareCount,
		Rounds:      req.Rounds,
		Mode:        req.Mode,
	}
	if req.PresetID != "" {
		preset, err := config.LoadPreset(config.PresetPath(h.presetDir, req.PresetID))
		if err != nil {
			h.logger.Warn().Err(err).Str("preset_id", req.PresetID).Msg("preset not loaded")
			return model.SimulationConfig{}, errors.New("unknown preset: " + req.PresetID)
		}
		sim = config.MergeSimulation(preset.Simulation, sim)
	}
	return sim.ToModel().Normalize(), nil
}

func (h *SimulationHandler) observe(mode model.GrabMode, d time.Duration, err error) {
	if h.metrics != nil {
		h.metrics.ObserveSimulation(mode, d, err)
	}
}

func respondSimulationError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "SIMULATION_ERROR"
	if errors.Is(err, model.ErrInvalidInput) {
		status, code = http.StatusBadRequest, "INVALID_CONFIG"
	}
	respondError(c, status, code, err.Error(), nil)
}

func validationDetails(err error) map[string]interface{} {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return map[string]interface{}{"problems": verr.Problems}
	}
	return nil
}

func respondError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
