package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"red-envelope-sim/internal/api"
	"red-envelope-sim/internal/config"
	"red-envelope-sim/internal/observability"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "red-envelope-api").Logger()

	// Get configuration from environment
	cfg, err := config.LoadServer()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid server configuration")
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if wd, err := os.Getwd(); err == nil {
		logger.Info().Str("working_directory", wd).Msg("starting")
	}

	metrics := observability.NewMetrics("")
	router := api.NewRouter(cfg, logger, metrics)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info().
		Str("addr", addr).
		Int("max_rounds", cfg.MaxRounds).
		Int("workers", cfg.Workers).
		Msg("starting API server")
	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
