package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"red-envelope-sim/internal/analysis"
	"red-envelope-sim/internal/config"
	"red-envelope-sim/internal/random"
	"red-envelope-sim/internal/simulation"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var err error
	switch os.Args[1] {
	case "simulate":
		err = cmdSimulate(os.Args[2:], logger)
	case "compare":
		err = cmdCompare(os.Args[2:], logger)
	case "tiers":
		cmdTiers()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg(os.Args[1] + " failed")
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --name alice --total 100 --group 50 --quota 10 --rounds 20 --mode slow")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/rounds.csv")
	fmt.Println("  cli compare --name alice --group 200 --quota 10 --rounds 100")
	fmt.Println("  cli tiers")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - flags given explicitly override values from --config")
	fmt.Println("  - the seed is printed so any run can be replayed with --seed")
}

// Used when neither --config nor the flag supplies a value.
var defaultSimulation = config.SimulationConfig{
	TotalAmount: decimal.NewFromInt(100),
	GroupSize:   50,
	ShareCount:  10,
	Rounds:      20,
	Mode:        "normal",
}

// simulationFlags are shared by simulate and compare.
type simulationFlags struct {
	fs         *flag.FlagSet
	cfgPath    *string
	name       *string
	total      *string
	group      *int
	quota      *int
	rounds     *int
	mode       *string
	seed       *uint64
	workers    *int
	privileged *string
	verbose    *bool
}

func newSimulationFlags(name string) *simulationFlags {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return &simulationFlags{
		fs:         fs,
		cfgPath:    fs.String("config", "", "Path to YAML config (optional)"),
		name:       fs.String("name", "", "Participant name"),
		total:      fs.String("total", "100", "Total amount per round, e.g. 88.88"),
		group:      fs.Int("group", 50, "Group size"),
		quota:      fs.Int("quota", 10, "Number of shares per round"),
		rounds:     fs.Int("rounds", 20, "Number of rounds"),
		mode:       fs.String("mode", "normal", "Timing mode: fast, normal, slow"),
		seed:       fs.Uint64("seed", 0, "Random seed (default: random)"),
		workers:    fs.Int("workers", 1, "Worker goroutines"),
		privileged: fs.String("privileged", "", "Comma-separated privileged names (replaces the defaults)"),
		verbose:    fs.Bool("v", false, "Log engine progress"),
	}
}

// config loads --config, if any, and applies the flags that were set
// explicitly on top of it.
func (f *simulationFlags) config() (*config.Config, error) {
	set := map[string]bool{}
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	cfg := &config.Config{Simulation: defaultSimulation}
	if *f.cfgPath != "" {
		loaded, err := config.LoadUnchecked(*f.cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	var override config.SimulationConfig
	if set["name"] {
		override.Participant = *f.name
	}
	if set["total"] {
		amount, err := decimal.NewFromString(*f.total)
		if err != nil {
			return nil, fmt.Errorf("--total: %w", err)
		}
		override.TotalAmount = amount
	}
	if set["group"] {
		override.GroupSize = *f.group
	}
	if set["quota"] {
		override.ShareCount = *f.quota
	}
	if set["rounds"] {
		override.Rounds = *f.rounds
	}
	if set["mode"] {
		override.Mode = *f.mode
	}
	cfg.Simulation = config.MergeSimulation(cfg.Simulation, override)
	if set["seed"] {
		cfg.Seed = f.seed
	}
	if set["workers"] || cfg.Workers == 0 {
		cfg.Workers = *f.workers
	}
	if set["privileged"] {
		cfg.Privileged = splitNames(*f.privileged)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (f *simulationFlags) engine(cfg *config.Config, logger zerolog.Logger) *simulation.Engine {
	engineLogger := zerolog.Nop()
	if *f.verbose {
		engineLogger = logger
	}
	return simulation.New(simulation.Options{
		Privilege: cfg.Privilege(),
		Logger:    engineLogger,
		Workers:   cfg.Workers,
	})
}

func cmdSimulate(args []string, logger zerolog.Logger) error {
	f := newSimulationFlags("simulate")
	outPath := f.fs.String("out", "", "Optional path to write the round CSV")
	asJSON := f.fs.Bool("json", false, "Print the report as JSON")
	showRounds := f.fs.Bool("show-rounds", false, "Print every round")
	_ = f.fs.Parse(args)

	cfg, err := f.config()
	if err != nil {
		return err
	}
	seed, err := resolveSeed(cfg.Seed)
	if err != nil {
		return err
	}

	report, err := f.engine(cfg, logger).Simulate(cfg.Simulation.ToModel(), seed)
	if err != nil {
		return err
	}

	if *outPath != "" {
		// ensure output dir exists
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			return err
		}
		if err := simulation.WriteRoundsCSV(*outPath, report.Rounds); err != nil {
			return err
		}
		logger.Info().Str("path", *outPath).Int("rounds", len(report.Rounds)).Msg("wrote round ledger")
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(newJSONReport(report, *showRounds))
	}
	if *showRounds {
		printRounds(report)
	}
	printSummary(report)
	return nil
}

func cmdCompare(args []string, logger zerolog.Logger) error {
	f := newSimulationFlags("compare")
	_ = f.fs.Parse(args)

	cfg, err := f.config()
	if err != nil {
		return err
	}
	seed, err := resolveSeed(cfg.Seed)
	if err != nil {
		return err
	}

	cmp, err := f.engine(cfg, logger).Compare(cfg.Simulation.ToModel(), seed)
	if err != nil {
		return err
	}

	fmt.Printf("seed %d\n", cmp.Seed)
	fmt.Printf("%-4s %-8s %-8s %-10s %-10s %-10s %-8s %s\n", "rank", "mode", "fail%", "success", "received", "average", "luck%", "rating")
	for i, r := range cmp.Ranking {
		s := r.Summary
		fmt.Printf("%-4d %-8s %-8.2f %-10s %-10s %-10s %-8s %s\n",
			i+1,
			r.Mode,
			cmp.Reports[r.Mode].FailureRate,
			fmt.Sprintf("%d/%d", s.SuccessCount, s.Rounds),
			s.TotalReceived.StringFixed(2),
			s.AverageReceived.StringFixed(2),
			s.Percentage.StringFixed(1),
			s.Rating.Label,
		)
	}
	return nil
}

func resolveSeed(seed *uint64) (uint64, error) {
	if seed != nil {
		return *seed, nil
	}
	s, err := random.NewSeed()
	if err != nil {
		return 0, fmt.Errorf("draw seed: %w", err)
	}
	return s, nil
}

func printRounds(report *simulation.Report) {
	for _, r := range report.Rounds {
		status := "got " + r.User.Amount.StringFixed(2)
		if !r.User.Success {
			status = r.User.FailReason
		} else if r.User.IsBestLuck {
			status += " (best luck)"
		}
		fmt.Printf("round %-4d position %-4d %s\n", r.Round, r.User.Position, status)
		for _, s := range r.Shares {
			marker := ""
			if s.IsBestLuck {
				marker = " *"
			}
			fmt.Printf("    #%-4d %-16s %10s%s\n", s.Position, s.Holder, s.Amount.StringFixed(2), marker)
		}
	}
}

func printSummary(report *simulation.Report) {
	s := report.Summary
	cfg := report.Config
	fmt.Printf("Participant:    %s\n", s.Participant)
	fmt.Printf("Setup:          %s x %d shares, group of %d, mode %s\n",
		cfg.TotalAmount.StringFixed(2), cfg.ShareCount, cfg.GroupSize, cfg.Mode)
	fmt.Printf("Seed:           %d\n", report.Seed)
	fmt.Printf("Failure rate:   %.2f%%\n", report.FailureRate)
	fmt.Printf("Successes:      %d/%d (%.1f%%)\n", s.SuccessCount, s.Rounds, s.SuccessRate*100)
	fmt.Printf("Total received: %s\n", s.TotalReceived.StringFixed(2))
	fmt.Printf("Average:        %s (expected %s)\n", s.AverageReceived.StringFixed(2), cfg.ExpectedShare().StringFixed(2))
	fmt.Printf("Best luck:      %d\n", s.BestLuckCount)
	if s.SuccessCount > 0 {
		fmt.Printf("Best round:     %d\n", s.BestRound)
		fmt.Printf("Worst round:    %d\n", s.WorstRound)
	}
	if d := s.Distribution; d.Count > 0 {
		fmt.Printf("Received p05/p50/p95: %.2f / %.2f / %.2f\n", d.P05, d.P50, d.P95)
	}
	fmt.Printf("Luck:           %s%%\n", s.Percentage.StringFixed(2))
	fmt.Printf("Rating:         %s (%s) %s\n", s.Rating.Label, s.Rating.Tier, s.Rating.Description)
}

func cmdTiers() {
	fmt.Printf("%-12s %-10s %-8s %s\n", "tier", "label", "upto%", "description")
	for _, t := range analysis.Tiers() {
		upTo := "-"
		if t.UpperBound != nil {
			upTo = fmt.Sprintf("%.0f", *t.UpperBound)
		}
		fmt.Printf("%-12s %-10s %-8s %s\n", t.Tier, t.Label, upTo, t.Description)
	}
}

func splitNames(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
