// Package analysis summarizes a participant's results over many rounds.
package analysis

import (
	"github.com/shopspring/decimal"

	"red-envelope-sim/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Summary is the participant's aggregate over a batch.
type Summary struct {
	Participant string
	Rounds      int

	SuccessCount  int
	TotalReceived decimal.Decimal
	BestLuckCount int

	// SuccessRate is SuccessCount/Rounds in [0, 1].
	SuccessRate     float64
	AverageReceived decimal.Decimal
	// Percentage is the actual average share as a percent of the expected
	// average share; zero when nothing was received.
	Percentage decimal.Decimal
	Rating     RatingResult

	// BestRound and WorstRound are the first rounds with the largest and
	// smallest received amount. Zero when there was no success.
	BestRound  int
	WorstRound int

	Distribution Distribution
}

// Summarize aggregates the participant's successful outcomes in records.
// total and shareCount describe a single round.
func Summarize(participant string, records []model.RoundRecord, total decimal.Decimal, shareCount int) Summary {
	s := Summary{
		Participant:     participant,
		Rounds:          len(records),
		TotalReceived:   decimal.Zero,
		AverageReceived: decimal.Zero,
		Percentage:      decimal.Zero,
	}

	var best, worst decimal.Decimal
	for _, r := range records {
		if !r.User.Success {
			continue
		}
		amount := r.User.Amount
		s.SuccessCount++
		s.TotalReceived = s.TotalReceived.Add(amount)
		if r.User.IsBestLuck {
			s.BestLuckCount++
		}
		if s.BestRound == 0 || amount.GreaterThan(best) {
			best, s.BestRound = amount, r.Round
		}
		if s.WorstRound == 0 || amount.LessThan(worst) {
			worst, s.WorstRound = amount, r.Round
		}
	}

	s.Distribution = ComputeDistribution(records)
	if s.Rounds > 0 {
		s.SuccessRate = float64(s.SuccessCount) / float64(s.Rounds)
	}
	if s.SuccessCount == 0 {
		s.Rating = NeverSucceeded()
		return s
	}

	s.AverageReceived = model.RoundAmount(s.TotalReceived.Div(decimal.NewFromInt(int64(s.SuccessCount))))
	s.Percentage = LuckPercentage(s.TotalReceived, s.SuccessCount, total, shareCount)
	s.Rating = Rate(s.Percentage)
	return s
}

// LuckPercentage computes (received/successes) / (total/shareCount) * 100.
// Multiplying before the single division keeps exact boundaries exact.
func LuckPercentage(received decimal.Decimal, successes int, total decimal.Decimal, shareCount int) decimal.Decimal {
	if successes <= 0 || shareCount <= 0 || !total.IsPositive() {
		return decimal.Zero
	}
	num := received.Mul(decimal.NewFromInt(int64(shareCount))).Mul(hundred)
	den := total.Mul(decimal.NewFromInt(int64(successes)))
	return num.Div(den)
}
