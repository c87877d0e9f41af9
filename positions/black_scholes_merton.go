package positions

import (
	"math"

	"github.com/bcdannyboy/optionspro/models"
	"github.com/bcdannyboy/optionspro/normal"
)

// bsmInputs are MarketInputs converted to decimal annualised units.
type bsmInputs struct {
	S, K, T, r, sigma float64
	isCall            bool
}

func newBSMInputs(in models.MarketInputs) bsmInputs {
	return bsmInputs{
		S:      in.UnderlyingPrice,
		K:      in.StrikePrice,
		T:      in.YearFraction(),
		r:      in.Rate(),
		sigma:  in.Sigma(),
		isCall: in.OptionType == models.Call,
	}
}

// degenerate is true when sigma*sqrt(T) is zero and d1/d2 are undefined.
func (b bsmInputs) degenerate() bool {
	return b.T == 0 || b.sigma == 0
}

func (b bsmInputs) d1d2() (float64, float64) {
	volSqrtT := b.sigma * math.Sqrt(b.T)
	d1 := (math.Log(b.S/b.K) + (b.r+0.5*b.sigma*b.sigma)*b.T) / volSqrtT
	return d1, d1 - volSqrtT
}

// greeks holds unrounded sensitivities.
type greeks struct {
	delta, gamma, theta, vega, rho float64
}

func calculateBSM(b bsmInputs) greeks {
	if b.degenerate() {
		return greeks{delta: degenerateDelta(b)}
	}

	d1, d2 := b.d1d2()
	sqrtT := math.Sqrt(b.T)
	discount := math.Exp(-b.r * b.T)

	// theta and rho share N(d2) for calls and N(-d2) for puts
	nd2 := normal.CDF(d2)
	delta := normal.CDF(d1)
	if !b.isCall {
		delta = delta - 1
		nd2 = normal.CDF(-d2)
	}

	pdf := normal.PDF(d1)
	return greeks{
		delta: delta,
		gamma: pdf / (b.S * b.sigma * sqrtT),
		theta: -(b.S*pdf*b.sigma)/(2*sqrtT) - b.r*b.K*discount*nd2,
		vega:  b.S * pdf * sqrtT / 100,
		rho:   b.K * b.T * discount * nd2 / 100,
	}
}

// degenerateDelta collapses delta to the sign of S-K: 1/0 for calls, -1/0
// for puts. At the money is 0.
func degenerateDelta(b bsmInputs) float64 {
	switch {
	case b.isCall && b.S > b.K:
		return 1
	case !b.isCall && b.S < b.K:
		return -1
	}
	return 0
}

func calculateOptionPrice(b bsmInputs) float64 {
	if b.degenerate() {
		// no diffusion left: discounted intrinsic against the forward
		forward := b.S * math.Exp(b.r*b.T)
		discount := math.Exp(-b.r * b.T)
		if b.isCall {
			return discount * math.Max(0, forward-b.K)
		}
		return discount * math.Max(0, b.K-forward)
	}

	d1, d2 := b.d1d2()
	if b.isCall {
		return b.S*normal.CDF(d1) - b.K*math.Exp(-b.r*b.T)*normal.CDF(d2)
	}
	return b.K*math.Exp(-b.r*b.T)*normal.CDF(-d2) - b.S*normal.CDF(-d1)
}
