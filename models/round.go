package models

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	GreekPlaces    = 3
	CurrencyPlaces = 2
	PercentPlaces  = 1
)

// Round rounds v half away from zero to places decimals. NaN and Inf become
// 0 so they never reach a caller.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	r := decimal.NewFromFloat(v).Round(places).InexactFloat64()
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

func RoundGreek(v float64) float64    { return Round(v, GreekPlaces) }
func RoundCurrency(v float64) float64 { return Round(v, CurrencyPlaces) }
func RoundPercent(v float64) float64  { return Round(v, PercentPlaces) }
