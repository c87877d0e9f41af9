package positions

import (
	"math"

	"github.com/bcdannyboy/optionspro/models"
)

func calculateIntrinsicValue(in models.MarketInputs) float64 {
	if in.OptionType == models.Call {
		return math.Max(0, in.UnderlyingPrice-in.StrikePrice)
	}
	return math.Max(0, in.StrikePrice-in.UnderlyingPrice)
}

func calculateTimeValue(optionPrice, intrinsic float64) float64 {
	return math.Max(0, optionPrice-intrinsic)
}

func sanitizeFloat(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
