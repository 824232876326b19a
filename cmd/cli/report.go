package main

import (
	"github.com/shopspring/decimal"

	"red-envelope-sim/internal/model"
	"red-envelope-sim/internal/simulation"
)

type jsonReport struct {
	Seed        uint64          `json:"seed"`
	Participant string          `json:"participant"`
	Mode        string          `json:"mode"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	GroupSize   int             `json:"group_size"`
	ShareCount  int             `json:"share_count"`
	FailureRate float64         `json:"failure_rate"`
	Privileged  bool            `json:"privileged"`

	Rounds          int             `json:"rounds"`
	SuccessCount    int             `json:"success_count"`
	SuccessRate     float64         `json:"success_rate"`
	TotalReceived   decimal.Decimal `json:"total_received"`
	AverageReceived decimal.Decimal `json:"average_received"`
	BestLuckCount   int             `json:"best_luck_count"`
	LuckPercentage  decimal.Decimal `json:"luck_percentage"`
	Tier            string          `json:"tier"`
	Label           string          `json:"label"`
	Description     string          `json:"description"`
	BestRound       int             `json:"best_round,omitempty"`
	WorstRound      int             `json:"worst_round,omitempty"`

	RoundRecords []jsonRound `json:"round_records,omitempty"`
}

type jsonRound struct {
	Round        int               `json:"round"`
	Position     int               `json:"position"`
	Success      bool              `json:"success"`
	Amount       decimal.Decimal   `json:"amount"`
	IsBestLuck   bool              `json:"is_best_luck"`
	FailReason   string            `json:"fail_reason,omitempty"`
	ShareAmounts []decimal.Decimal `json:"shares"`
}

func newJSONReport(r *simulation.Report, withRounds bool) jsonReport {
	s := r.Summary
	out := jsonReport{
		Seed:            r.Seed,
		Participant:     r.Config.Participant,
		Mode:            r.Config.Mode.String(),
		TotalAmount:     r.Config.TotalAmount,
		GroupSize:       r.Config.GroupSize,
		ShareCount:      r.Config.ShareCount,
		FailureRate:     r.FailureRate,
		Privileged:      r.Privileged,
		Rounds:          s.Rounds,
		SuccessCount:    s.SuccessCount,
		SuccessRate:     s.SuccessRate,
		TotalReceived:   s.TotalReceived,
		AverageReceived: s.AverageReceived,
		BestLuckCount:   s.BestLuckCount,
		LuckPercentage:  s.Percentage.Round(2),
		Tier:            string(s.Rating.Tier),
		Label:           s.Rating.Label,
		Description:     s.Rating.Description,
		BestRound:       s.BestRound,
		WorstRound:      s.WorstRound,
	}
	if withRounds {
		out.RoundRecords = make([]jsonRound, len(r.Rounds))
		for i, rec := range r.Rounds {
			out.RoundRecords[i] = toJSONRound(rec)
		}
	}
	return out
}

func toJSONRound(rec model.RoundRecord) jsonRound {
	amounts := make([]decimal.Decimal, len(rec.Shares))
	for i, s := range rec.Shares {
		amounts[i] = s.Amount
	}
	return jsonRound{
		Round:        rec.Round,
		Position:     rec.User.Position,
		Success:      rec.User.Success,
		Amount:       rec.User.Amount,
		IsBestLuck:   rec.User.IsBestLuck,
		FailReason:   rec.User.FailReason,
		ShareAmounts: amounts,
	}
}
