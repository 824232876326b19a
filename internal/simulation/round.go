package simulation

import (
	"github.com/shopspring/decimal"

	"red-envelope-sim/internal/envelope"
	"red-envelope-sim/internal/model"
	"red-envelope-sim/internal/outcome"
	"red-envelope-sim/internal/random"
	"red-envelope-sim/internal/strategy"
)

// SimulateRound plays a single round of cfg using rng. cfg is expected to be
// normalized and valid; Run takes care of that for whole batches.
func (e *Engine) SimulateRound(cfg model.SimulationConfig, round int, rng random.Source) (model.RoundRecord, error) {
	return e.simulateRound(cfg, round, rng, e.resolver.Privileged(cfg.Participant))
}

// simulateRound draws, in order: the share amounts, the participant's
// position, then the success roll.
func (e *Engine) simulateRound(cfg model.SimulationConfig, round int, rng random.Source, privileged bool) (model.RoundRecord, error) {
	amounts, err := envelope.Allocate(rng, cfg.TotalAmount, cfg.ShareCount)
	if err != nil {
		return model.RoundRecord{}, err
	}

	position := strategy.GeneratePosition(rng, cfg.Mode, cfg.ShareCount)
	res := e.resolver.Resolve(rng, cfg.Mode, cfg.GroupSize, cfg.ShareCount, privileged)
	if res.Privileged && res.Success {
		outcome.PromoteMax(amounts, position)
	}

	maxAmount := model.MaxOf(amounts)
	shares := make([]model.Share, len(amounts))
	for i, amount := range amounts {
		pos := i + 1
		holder := model.PlaceholderHolder(pos)
		if res.Success && pos == position {
			holder = cfg.Participant
		}
		shares[i] = model.Share{
			Holder:     holder,
			Amount:     amount,
			Position:   pos,
			IsBestLuck: amount.Equal(maxAmount),
		}
	}

	user := model.UserOutcome{
		Position: position,
		Success:  res.Success,
		Amount:   decimal.Zero,
	}
	if res.Success {
		user.Amount = amounts[position-1]
		user.IsBestLuck = user.Amount.Equal(maxAmount)
	} else {
		user.FailReason = model.FailReasonTooLate
	}

	return model.RoundRecord{
		Round:  round,
		Shares: shares,
		User:   user,
	}, nil
}
