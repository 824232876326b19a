package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"red-envelope-sim/internal/config"
	"red-envelope-sim/internal/model"
	"red-envelope-sim/internal/outcome"
	"red-envelope-sim/internal/simulation"
	"red-envelope-sim/internal/strategy"
)

// Demo:
// - Load a preset (or fall back to built-in defaults)
// - Play a few rounds one at a time
// - Print every share so the pieces are visible
func main() {
	presetPath := flag.String("preset", "examples/presets/office_party.yaml", "Path to a preset YAML (optional)")
	n := flag.Int("n", 3, "Number of rounds to play")
	seed := flag.Uint64("seed", 2024, "Random seed")
	outCSV := flag.String("out", "", "Optional path to write the round CSV (e.g. results/demo.csv)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Defaults (can be overridden via --preset).
	sim := config.SimulationConfig{
		Participant: "alice",
		TotalAmount: decimal.NewFromInt(100),
		GroupSize:   20,
		ShareCount:  8,
		Mode:        "normal",
	}
	if *presetPath != "" {
		preset, err := config.LoadPreset(*presetPath)
		if err != nil {
			logger.Warn().Err(err).Msg("preset not loaded, using defaults")
		} else {
			sim = config.MergeSimulation(sim, preset.Simulation)
			fmt.Printf("Preset: %s\n", preset.Name)
		}
	}
	sim.Rounds = *n

	cfg := sim.ToModel().Normalize()
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid demo config")
	}

	lo, hi := strategy.FromName(sim.Mode).Window(cfg.ShareCount)
	fmt.Printf("%s grabs %s among %d people, %d shares, mode %s\n",
		cfg.Participant, cfg.TotalAmount.StringFixed(2), cfg.GroupSize, cfg.ShareCount, cfg.Mode)
	fmt.Printf("Position window [%d, %d], failure rate %.2f%%, expected share %s\n\n",
		lo, hi, outcome.FailureRate(cfg.Mode, cfg.GroupSize, cfg.ShareCount), cfg.ExpectedShare().StringFixed(2))

	engine := simulation.New(simulation.Options{Logger: logger})
	res, err := engine.Run(cfg, *seed)
	if err != nil {
		logger.Fatal().Err(err).Msg("simulation failed")
	}

	for _, r := range res.Rounds {
		printRound(cfg, r)
	}

	if *outCSV != "" {
		if err := simulation.WriteRoundsCSV(*outCSV, res.Rounds); err != nil {
			logger.Fatal().Err(err).Msg("write csv")
		}
		fmt.Printf("Wrote %d rounds to %s\n", len(res.Rounds), *outCSV)
	}
}

func printRound(cfg model.SimulationConfig, r model.RoundRecord) {
	fmt.Printf("Round %d (total %s)\n", r.Round, r.Total().StringFixed(2))
	for _, s := range r.Shares {
		line := fmt.Sprintf("  #%-3d %-12s %8s", s.Position, s.Holder, s.Amount.StringFixed(2))
		if s.IsBestLuck {
			line += "  best luck"
		}
		fmt.Println(line)
	}
	if r.User.Success {
		fmt.Printf("  -> %s took position %d and got %s\n\n", cfg.Participant, r.User.Position, r.User.Amount.StringFixed(2))
	} else {
		fmt.Printf("  -> %s aimed for position %d: %s\n\n", cfg.Participant, r.User.Position, r.User.FailReason)
	}
}
