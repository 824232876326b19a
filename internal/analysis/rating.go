package analysis

import "github.com/shopspring/decimal"

// Tier identifies a luck rating. Keep these values stable; they are part of
// the JSON output.
type Tier string

const (
	TierForsaken   Tier = "FORSAKEN"
	TierMeager     Tier = "MEAGER"
	TierOrdinary   Tier = "ORDINARY"
	TierLuckyStar  Tier = "LUCKY_STAR"
	TierProsperous Tier = "PROSPEROUS"
	TierKoi        Tier = "KOI"
)

// RatingResult is the luck rating shown to the participant.
type RatingResult struct {
	Tier        Tier
	Label       string
	Description string
}

var neverSucceeded = RatingResult{
	Tier:        TierForsaken,
	Label:       "命运弃子",
	Description: "红包与君无缘，天意弄人啊！",
}

// ratingBand rates every percentage <= upTo that no earlier band claimed.
// Only the last band is open-ended (nil upTo).
type ratingBand struct {
	upTo   *decimal.Decimal
	rating RatingResult
}

var bands = []ratingBand{
	{upTo: bound(50), rating: RatingResult{TierMeager, "寒酸散修", "蜗角虚名，蝇头小利，来日方长！"}},
	{upTo: bound(80), rating: RatingResult{TierOrdinary, "平平散人", "不温不火，中规中矩，尚需努力。"}},
	{upTo: bound(100), rating: RatingResult{TierLuckyStar, "福星高照", "时运不错，颇有手气，可喜可贺！"}},
	{upTo: bound(120), rating: RatingResult{TierProsperous, "财运亨通", "红包之神眷顾，福缘深厚！"}},
	{upTo: nil, rating: RatingResult{TierKoi, "锦鲤附体", "气运滔天，财源滚滚，红包之王非你莫属！"}},
}

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// NeverSucceeded is the rating for a participant who never got an envelope.
func NeverSucceeded() RatingResult { return neverSucceeded }

// Rate maps the actual-to-expected average share percentage onto a tier.
// Percentages above every bound fall through to the open-ended last band.
func Rate(percentage decimal.Decimal) RatingResult {
	bounded, top := bands[:len(bands)-1], bands[len(bands)-1]
	for _, b := range bounded {
		if percentage.LessThanOrEqual(*b.upTo) {
			return b.rating
		}
	}
	return top.rating
}

// TierInfo describes one row of the rating table. UpperBound is nil for the
// open-ended top band and for the never-succeeded tier.
type TierInfo struct {
	RatingResult
	UpperBound *float64
}

// Tiers returns the full rating table, never-succeeded first.
func Tiers() []TierInfo {
	out := make([]TierInfo, 0, len(bands)+1)
	out = append(out, TierInfo{RatingResult: neverSucceeded})
	for _, b := range bands {
		info := TierInfo{RatingResult: b.rating}
		if b.upTo != nil {
			f := b.upTo.InexactFloat64()
			info.UpperBound = &f
		}
		out = append(out, info)
	}
	return out
}
