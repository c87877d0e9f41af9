// Package payoff builds profit/loss curves at expiration for the strategies
// in the catalog.
package payoff

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/bcdannyboy/optionspro/models"
)

var ErrInvalidSweep = errors.New("sweep needs at least two points and low < high")

// Sweep spans underlying prices from Low*S to High*S in Points evenly spaced
// steps, endpoints included.
type Sweep struct {
	Points int
	Low    float64
	High   float64
}

// DefaultSweep is 0.5*S to 1.5*S in 50 steps.
var DefaultSweep = Sweep{Points: 51, Low: 0.5, High: 1.5}

// GeneratePayoff sweeps DefaultSweep for kind. StrategyUnknown yields a flat
// zero curve.
func GeneratePayoff(kind models.StrategyKind, params models.PayoffParams) (models.PayoffCurve, error) {
	return DefaultSweep.Generate(kind, params)
}

func (s Sweep) Generate(kind models.StrategyKind, params models.PayoffParams) (models.PayoffCurve, error) {
	if s.Points < 2 || s.Low >= s.High || s.Low <= 0 {
		return nil, ErrInvalidSweep
	}
	if err := params.Validate(kind); err != nil {
		return nil, fmt.Errorf("generating %s payoff: %w", kind, err)
	}

	prices := floats.Span(make([]float64, s.Points), s.Low*params.StockPrice, s.High*params.StockPrice)

	f := func(float64, models.PayoffParams) float64 { return 0 }
	if e, ok := lookup(kind); ok {
		f = e.payoff
	}

	curve := make(models.PayoffCurve, len(prices))
	for i, P := range prices {
		curve[i] = models.PayoffPoint{
			Price:  P,
			Payoff: models.RoundCurrency(f(P, params)),
		}
	}
	return curve, nil
}

// Summarize reports the extremes of curve and the prices where it crosses
// zero, linearly interpolated between points. A flat zero curve has no
// breakevens.
func Summarize(curve models.PayoffCurve) models.PayoffSummary {
	if len(curve) == 0 {
		return models.PayoffSummary{}
	}

	x, y := curve.Prices(), curve.Payoffs()
	summary := models.PayoffSummary{
		MaxProfit: floats.Max(y),
		MaxLoss:   floats.Min(y),
	}
	if summary.MaxProfit == 0 && summary.MaxLoss == 0 {
		return summary
	}

	for i := range y {
		if y[i] == 0 {
			// one breakeven per run of zeros
			if i == 0 || y[i-1] != 0 {
				summary.Breakevens = append(summary.Breakevens, models.RoundCurrency(x[i]))
			}
			continue
		}
		if i+1 < len(y) && y[i+1] != 0 && (y[i] < 0) != (y[i+1] < 0) {
			frac := y[i] / (y[i] - y[i+1])
			summary.Breakevens = append(summary.Breakevens, models.RoundCurrency(x[i]+frac*(x[i+1]-x[i])))
		}
	}
	return summary
}
