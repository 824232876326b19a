// Package api wires the HTTP surface of the simulator.
package api

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"red-envelope-sim/internal/api/handlers"
	"red-envelope-sim/internal/api/middleware"
	"red-envelope-sim/internal/config"
	"red-envelope-sim/internal/observability"
)

// NewRouter builds the gin engine with every route registered.
func NewRouter(cfg config.ServerConfig, logger zerolog.Logger, metrics *observability.Metrics) *gin.Engine {
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))

	// Initialize handlers
	simulationHandler := handlers.NewSimulationHandler(cfg, logger, metrics)
	presetHandler := handlers.NewPresetHandler(cfg.PresetDir, logger)
	modeHandler := handlers.NewModeHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// API routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/simulate", simulationHandler.RunSimulation)
		v1.POST("/simulate/compare", simulationHandler.CompareModes)
		v1.GET("/modes", modeHandler.ListModes)
		v1.GET("/ratings", handlers.ListRatings)
		v1.GET("/presets", presetHandler.ListPresets)
	}

	serveStatic(router, cfg.StaticDir, logger)
	return router
}

// serveStatic serves a built SPA from dir, if it exists.
func serveStatic(router *gin.Engine, dir string, logger zerolog.Logger) {
	if dir == "" {
		return
	}
	if _, err := os.Stat(dir); err != nil {
		logger.Info().Str("dir", dir).Msg("static directory not found, skipping static file serving")
		return
	}

	router.Static("/assets", dir+"/assets")
	router.StaticFile("/favicon.ico", dir+"/favicon.ico")

	// Serve index.html for all non-API routes (SPA routing)
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(404, gin.H{"error": "Not found"})
			return
		}
		c.File(dir + "/index.html")
	})
	logger.Info().Str("dir", dir).Msg("serving static files")
}
