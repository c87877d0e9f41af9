// Package positions prices single European options with Black-Scholes and
// reports their sensitivities.
package positions

import (
	"fmt"

	"github.com/bcdannyboy/optionspro/models"
)

// ComputeGreeks returns delta, gamma, theta, vega and rho for one option,
// plus intrinsic and time value relative to optionPrice. Theta is per year;
// vega and rho are per percentage point.
//
// With zero days to expiry or zero volatility the distribution is a point
// mass: delta is 1, 0 or -1 by the sign of S-K and the other Greeks are 0.
func ComputeGreeks(in models.MarketInputs, optionPrice float64) (models.GreekResult, error) {
	if err := in.Validate(); err != nil {
		return models.GreekResult{}, fmt.Errorf("computing greeks: %w", err)
	}

	b := newBSMInputs(in)
	g := calculateBSM(b)
	intrinsic := calculateIntrinsicValue(in)

	return models.GreekResult{
		Delta:            models.RoundGreek(sanitizeFloat(g.delta)),
		Gamma:            models.RoundGreek(sanitizeFloat(g.gamma)),
		Theta:            models.RoundGreek(sanitizeFloat(g.theta)),
		Vega:             models.RoundGreek(sanitizeFloat(g.vega)),
		Rho:              models.RoundGreek(sanitizeFloat(g.rho)),
		Intrinsic:        models.RoundCurrency(intrinsic),
		TimeValue:        models.RoundCurrency(sanitizeFloat(calculateTimeValue(optionPrice, intrinsic))),
		TheoreticalPrice: models.RoundCurrency(sanitizeFloat(calculateOptionPrice(b))),
	}, nil
}

// TheoreticalPrice is the unrounded Black-Scholes value of the option.
func TheoreticalPrice(in models.MarketInputs) (float64, error) {
	if err := in.Validate(); err != nil {
		return 0, fmt.Errorf("pricing option: %w", err)
	}
	return sanitizeFloat(calculateOptionPrice(newBSMInputs(in))), nil
}
