package models

// GreekResult holds display-rounded sensitivities for one option. Greeks are
// rounded to 3 places, currency values to 2.
type GreekResult struct {
	Delta            float64 `json:"delta"`
	Gamma            float64 `json:"gamma"`
	Theta            float64 `json:"theta"`
	Vega             float64 `json:"vega"`
	Rho              float64 `json:"rho"`
	Intrinsic        float64 `json:"intrinsic"`
	TimeValue        float64 `json:"timeValue"`
	TheoreticalPrice float64 `json:"theoreticalPrice"`
}

// ProbabilityResult holds percentages rounded to 1 place and a breakeven
// rounded to 2.
type ProbabilityResult struct {
	ITMProbability float64 `json:"itmProbability"`
	OTMProbability float64 `json:"otmProbability"`
	BreakevenPrice float64 `json:"breakevenPrice"`
}

type PayoffPoint struct {
	Price  float64 `json:"price"`
	Payoff float64 `json:"payoff"`
}

// PayoffCurve is ordered by strictly increasing Price.
type PayoffCurve []PayoffPoint

// Prices returns the swept prices.
func (c PayoffCurve) Prices() []float64 {
	out := make([]float64, len(c))
	for i, pt := range c {
		out[i] = pt.Price
	}
	return out
}

// Payoffs returns the profit/loss column.
func (c PayoffCurve) Payoffs() []float64 {
	out := make([]float64, len(c))
	for i, pt := range c {
		out[i] = pt.Payoff
	}
	return out
}

// PayoffSummary describes a curve over its swept range only.
type PayoffSummary struct {
	MaxProfit  float64   `json:"maxProfit"`
	MaxLoss    float64   `json:"maxLoss"`
	Breakevens []float64 `json:"breakevens"`
}
