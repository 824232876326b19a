package handlers

import (
	"red-envelope-sim/internal/analysis"
	"red-envelope-sim/internal/api/models"
	"red-envelope-sim/internal/model"
	"red-envelope-sim/internal/simulation"
)

func buildResponse(report *simulation.Report, includeRounds bool) models.SimulateResponse {
	resp := models.SimulateResponse{
		Status:      "completed",
		Seed:        report.Seed,
		Config:      configView(report.Config),
		FailureRate: report.FailureRate,
		Privileged:  report.Privileged,
		DurationMS:  float64(report.Duration.Microseconds()) / 1000,
		Summary:     buildSummary(report.Summary),
	}
	if includeRounds {
		resp.Rounds = convertRounds(report.Rounds)
	}
	return resp
}

func buildSummary(s analysis.Summary) models.Summary {
	return models.Summary{
		Rounds:          s.Rounds,
		SuccessCount:    s.SuccessCount,
		SuccessRate:     s.SuccessRate,
		TotalReceived:   s.TotalReceived,
		AverageReceived: s.AverageReceived,
		BestLuckCount:   s.BestLuckCount,
		LuckPercentage:  s.Percentage.Round(2),
		Rating:          convertRating(s.Rating, nil),
		BestRound:       s.BestRound,
		WorstRound:      s.WorstRound,
		Distribution: models.Distribution{
			Count: s.Distribution.Count,
			Min:   s.Distribution.Min,
			Max:   s.Distribution.Max,
			Mean:  s.Distribution.Mean,
			P05:   s.Distribution.P05,
			P50:   s.Distribution.P50,
			P95:   s.Distribution.P95,
		},
	}
}

func buildCompareResponse(cmp *simulation.Comparison) models.CompareResponse {
	resp := models.CompareResponse{
		Seed:       cmp.Seed,
		Comparison: make([]models.ComparisonResult, 0, len(cmp.Ranking)),
	}
	for i, r := range cmp.Ranking {
		report := cmp.Reports[r.Mode]
		if i == 0 {
			resp.Config = configView(report.Config)
			resp.Config.Mode = ""
		}
		resp.Comparison = append(resp.Comparison, models.ComparisonResult{
			Rank:        i + 1,
			Mode:        r.Mode.String(),
			FailureRate: report.FailureRate,
			Summary:     buildSummary(r.Summary),
		})
	}
	return resp
}

func configView(cfg model.SimulationConfig) models.SimulationConfig {
	return models.SimulationConfig{
		Participant:   cfg.Participant,
		TotalAmount:   cfg.TotalAmount,
		GroupSize:     cfg.GroupSize,
		ShareCount:    cfg.ShareCount,
		Rounds:        cfg.Rounds,
		Mode:          cfg.Mode.String(),
		ExpectedShare: cfg.ExpectedShare(),
	}
}

func convertRating(r analysis.RatingResult, upper *float64) models.Rating {
	return models.Rating{
		Tier:        string(r.Tier),
		Label:       r.Label,
		Description: r.Description,
		UpperBound:  upper,
	}
}

func convertRounds(rounds []model.RoundRecord) []models.Round {
	out := make([]models.Round, len(rounds))
	for i, r := range rounds {
		shares := make([]models.Share, len(r.Shares))
		for j, s := range r.Shares {
			shares[j] = models.Share{
				Position:   s.Position,
				Holder:     s.Holder,
				Amount:     s.Amount,
				IsBestLuck: s.IsBestLuck,
			}
		}
		out[i] = models.Round{
			Round:  r.Round,
			Shares: shares,
			User: models.UserOutcome{
				Position:   r.User.Position,
				Success:    r.User.Success,
				Amount:     r.User.Amount,
				IsBestLuck: r.User.IsBestLuck,
				FailReason: r.User.FailReason,
			},
		}
	}
	return out
}
