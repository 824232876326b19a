package model

import "github.com/shopspring/decimal"

// Amounts are currency units with cent resolution.
const AmountPlaces int32 = 2

// MinShare is the smallest amount a single share may hold (one cent).
var MinShare = decimal.New(1, -AmountPlaces)

// RoundAmount rounds d to cent resolution, half away from zero.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPlaces)
}

// MinTotal is the smallest total that still gives every one of count shares MinShare.
func MinTotal(count int) decimal.Decimal {
	return MinShare.Mul(decimal.NewFromInt(int64(count)))
}
