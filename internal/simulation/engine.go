// Package simulation runs red envelope rounds.
package simulation

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"red-envelope-sim/internal/analysis"
	"red-envelope-sim/internal/model"
	"red-envelope-sim/internal/outcome"
	"red-envelope-sim/internal/random"
)

// Observer is notified after every simulated round. With Workers > 1 it is
// called from several goroutines at once.
type Observer interface {
	ObserveRound(mode model.GrabMode, rec model.RoundRecord)
}

type Options struct {
	// Privilege selects privileged participants. Nil uses outcome.DefaultAllowList.
	Privilege outcome.Privilege
	// Logger is optional; the zero value discards everything.
	Logger zerolog.Logger
	// Workers > 1 spreads rounds across goroutines. Output is unchanged.
	Workers  int
	Observer Observer
}

type Engine struct {
	resolver *outcome.Resolver
	logger   zerolog.Logger
	workers  int
	observer Observer
}

func New(opts Options) *Engine {
	p := opts.Privilege
	if p == nil {
		p = outcome.DefaultAllowList()
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	return &Engine{
		resolver: outcome.NewResolver(p),
		logger:   opts.Logger,
		workers:  workers,
		observer: opts.Observer,
	}
}

// Run validates cfg and simulates cfg.Rounds independent rounds. Round i
// draws from random.ForRound(seed, i), so the result depends only on cfg and seed.
func (e *Engine) Run(cfg model.SimulationConfig, seed uint64) (*Result, error) {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	privileged := e.resolver.Privileged(cfg.Participant)
	e.logger.Info().
		Str("mode", cfg.Mode.String()).
		Int("rounds", cfg.Rounds).
		Int("share_count", cfg.ShareCount).
		Int("group_size", cfg.GroupSize).
		Uint64("seed", seed).
		Int("workers", e.workers).
		Bool("privileged", privileged).
		Msg("starting simulation")

	rounds := make([]model.RoundRecord, cfg.Rounds)
	var err error
	if e.workers == 1 || cfg.Rounds == 1 {
		err = e.runSequential(cfg, seed, privileged, rounds)
	} else {
		err = e.runParallel(cfg, seed, privileged, rounds)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{
		Seed:        seed,
		Config:      cfg,
		Rounds:      rounds,
		FailureRate: outcome.FailureRate(cfg.Mode, cfg.GroupSize, cfg.ShareCount),
		Privileged:  privileged,
		Duration:    time.Since(start),
	}
	e.logger.Info().
		Int("rounds", len(rounds)).
		Dur("duration", res.Duration).
		Msg("simulation finished")
	return res, nil
}

// Simulate runs the batch and summarizes it for the participant.
func (e *Engine) Simulate(cfg model.SimulationConfig, seed uint64) (*Report, error) {
	res, err := e.Run(cfg, seed)
	if err != nil {
		return nil, err
	}
	summary := analysis.Summarize(res.Config.Participant, res.Rounds, res.Config.TotalAmount, res.Config.ShareCount)
	return &Report{Result: res, Summary: summary}, nil
}

func (e *Engine) runSequential(cfg model.SimulationConfig, seed uint64, privileged bool, rounds []model.RoundRecord) error {
	for i := range rounds {
		rec, err := e.runRound(cfg, seed, i+1, privileged)
		if err != nil {
			return err
		}
		rounds[i] = rec
	}
	return nil
}

func (e *Engine) runParallel(cfg model.SimulationConfig, seed uint64, privileged bool, rounds []model.RoundRecord) error {
	workers := min(e.workers, len(rounds))
	jobs := make(chan int)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range jobs {
				if errs[w] != nil {
					continue
				}
				rec, err := e.runRound(cfg, seed, i+1, privileged)
				if err != nil {
					errs[w] = err
					continue
				}
				rounds[i] = rec
			}
		}(w)
	}
	for i := range rounds {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return errors.Join(errs...)
}

func (e *Engine) runRound(cfg model.SimulationConfig, seed uint64, round int, privileged bool) (model.RoundRecord, error) {
	rec, err := e.simulateRound(cfg, round, random.ForRound(seed, round), privileged)
	if err != nil {
		return model.RoundRecord{}, fmt.Errorf("round %d: %w", round, err)
	}
	if e.observer != nil {
		e.observer.ObserveRound(cfg.Mode, rec)
	}
	return rec, nil
}
