// Package normal provides the standard normal distribution functions used by
// the pricing and probability code.
package normal

import "math"

// Abramowitz & Stegun 7.1.26 coefficients.
const (
	a1 = 0.254829592
	a2 = -0.284496736
	a3 = 1.421413741
	a4 = -1.453152027
	a5 = 1.061405429
	p  = 0.3275911
)

// CDF returns P(Z <= x) for a standard normal Z using the A&S 7.1.26 rational
// approximation of erf. Absolute error is below 1.5e-7.
func CDF(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1
	}
	x = math.Abs(x) / math.Sqrt(2.0)

	t := 1.0 / (1.0 + p*x)
	y := 1.0 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)

	return 0.5 * (1.0 + sign*y)
}

// PDF returns the standard normal density at x.
func PDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}
