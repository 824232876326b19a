package simulation

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"red-envelope-sim/internal/model"
)

var ledgerHeader = []string{
	"round",
	"position",
	"holder",
	"amount",
	"best_luck",
	"user_position",
	"user_success",
	"user_amount",
	"fail_reason",
}

// WriteRoundsCSV writes one row per share to path.
func WriteRoundsCSV(path string, rounds []model.RoundRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteRounds(f, rounds); err != nil {
		return err
	}
	return f.Close()
}

func WriteRounds(out io.Writer, rounds []model.RoundRecord) error {
	w := csv.NewWriter(out)
	if err := w.Write(ledgerHeader); err != nil {
		return err
	}

	for _, r := range rounds {
		for _, s := range r.Shares {
			row := []string{
				strconv.Itoa(r.Round),
				strconv.Itoa(s.Position),
				s.Holder,
				s.Amount.StringFixed(model.AmountPlaces),
				strconv.FormatBool(s.IsBestLuck),
				strconv.Itoa(r.User.Position),
				strconv.FormatBool(r.User.Success),
				r.User.Amount.StringFixed(model.AmountPlaces),
				r.User.FailReason,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
