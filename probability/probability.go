// Package probability estimates where a single long option finishes at
// expiry.
package probability

import (
	"fmt"
	"math"

	"github.com/bcdannyboy/optionspro/models"
	"github.com/bcdannyboy/optionspro/normal"
)

// ComputeProbability returns the chance, in percent, that the option expires
// in or out of the money, and the breakeven for a buyer paying optionPrice.
//
// d2 drops the rate term: ln(S/K)/(σ√T) - σ√T/2. This is a drift-free
// estimate and intentionally differs from the pricing d2.
func ComputeProbability(in models.MarketInputs, optionPrice float64) (models.ProbabilityResult, error) {
	if err := in.Validate(); err != nil {
		return models.ProbabilityResult{}, fmt.Errorf("computing probability: %w", err)
	}

	itm := itmProbability(in)
	breakeven := in.StrikePrice + optionPrice
	if in.OptionType == models.Put {
		breakeven = in.StrikePrice - optionPrice
	}

	return models.ProbabilityResult{
		ITMProbability: models.RoundPercent(itm * 100),
		OTMProbability: models.RoundPercent((1 - itm) * 100),
		BreakevenPrice: models.RoundCurrency(breakeven),
	}, nil
}

func itmProbability(in models.MarketInputs) float64 {
	S, K := in.UnderlyingPrice, in.StrikePrice
	isCall := in.OptionType == models.Call

	if in.Degenerate() {
		// price stays at S; at the money counts as out of the money
		if (isCall && S > K) || (!isCall && S < K) {
			return 1
		}
		return 0
	}

	T := in.YearFraction()
	sigma := in.Sigma()
	volSqrtT := sigma * math.Sqrt(T)
	d1 := (math.Log(S/K) + 0.5*sigma*sigma*T) / volSqrtT
	d2 := d1 - volSqrtT

	if isCall {
		return normal.CDF(d2)
	}
	return normal.CDF(-d2)
}
