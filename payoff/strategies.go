package payoff

import (
	"math"

	"github.com/bcdannyboy/optionspro/models"
	"github.com/bcdannyboy/optionspro/positions"
)

// formula returns profit/loss at expiry price P.
type formula func(P float64, p models.PayoffParams) float64

type catalogEntry struct {
	strategy models.Strategy
	payoff   formula
}

func callPayoff(P, K float64) float64 { return math.Max(0, P-K) }
func putPayoff(P, K float64) float64  { return math.Max(0, K-P) }

// catalog is indexed by StrategyKind. Every kind in models.AllStrategyKinds
// has an entry.
var catalog = [...]catalogEntry{
	models.CoveredCall: {
		strategy: models.Strategy{
			Name:          "Covered Call",
			Difficulty:    models.Beginner,
			Description:   "A covered call involves holding a long position in a stock and selling call options on the same stock to generate income.",
			MarketOutlook: "Neutral to Bullish",
			MaxProfit:     "Limited",
			MaxLoss:       "Significant",
			Setup:         []string{"Buy 100 shares of stock", "Sell 1 call option (usually OTM)", "Collect premium from option sale"},
		},
		payoff: func(P float64, p models.PayoffParams) float64 {
			return (P - p.StockPrice) + math.Max(0, math.Min(p.StrikePrice-P, p.OptionPrice))
		},
	},
	models.ProtectivePut: {
		strategy: models.Strategy{
			Name:          "Protective Put",
			Difficulty:    models.Beginner,
			Description:   "A protective put involves buying a put option to hedge against potential losses in a long stock position.",
			MarketOutlook: "Bullish with Protection",
			MaxProfit:     "Unlimited",
			MaxLoss:       "Limited",
			Setup:         []string{"Buy 100 shares of stock", "Buy 1 put option (usually ATM or OTM)", "Pay premium for put protection"},
		},
		payoff: func(P float64, p models.PayoffParams) float64 {
			return (P - p.StockPrice) + putPayoff(P, p.StrikePrice) - p.OptionPrice
		},
	},
	models.Straddle: {
		strategy: models.Strategy{
			Name:          "Straddle",
			Difficulty:    models.Intermediate,
			Description:   "A straddle involves buying both a call and a put option with the same strike price and expiration date.",
			MarketOutlook: "Volatile",
			MaxProfit:     "Unlimited",
			MaxLoss:       "Limited to Premium",
			Setup:         []string{"Buy 1 call option", "Buy 1 put option", "Same strike price and expiration"},
		},
		payoff: func(P float64, p models.PayoffParams) float64 {
			return callPayoff(P, p.StrikePrice) + putPayoff(P, p.StrikePrice) - 2*p.OptionPrice
		},
	},
	models.Strangle: {
		strategy: models.Strategy{
			Name:          "Strangle",
			Difficulty:    models.Intermediate,
			Description:   "A strangle involves buying a call and a put option with different strike prices but same expiration.",
			MarketOutlook: "Volatile",
			MaxProfit:     "Unlimited",
			MaxLoss:       "Limited to Premium",
			Setup:         []string{"Buy 1 OTM call option", "Buy 1 OTM put option", "Same expiration date"},
		},
		// put at K-W, call at K+W, OptionPrice paid per leg
		payoff: func(P float64, p models.PayoffParams) float64 {
			K, W := p.StrikePrice, p.StrikeWidth
			return callPayoff(P, K+W) + putPayoff(P, K-W) - 2*p.OptionPrice
		},
	},
	models.IronCondor: {
		strategy: models.Strategy{
			Name:          "Iron Condor",
			Difficulty:    models.Advanced,
			Description:   "An iron condor combines a bull put spread and a bear call spread to profit from low volatility.",
			MarketOutlook: "Neutral",
			MaxProfit:     "Limited",
			MaxLoss:       "Limited",
			Setup:         []string{"Sell 1 OTM put option", "Buy 1 further OTM put option", "Sell 1 OTM call option", "Buy 1 further OTM call option"},
		},
		// wings at K±2W, shorts at K±W, OptionPrice is the net credit
		payoff: func(P float64, p models.PayoffParams) float64 {
			K, W := p.StrikePrice, p.StrikeWidth
			return p.OptionPrice +
				putPayoff(P, K-2*W) - putPayoff(P, K-W) -
				callPayoff(P, K+W) + callPayoff(P, K+2*W)
		},
	},
	models.Butterfly: {
		strategy: models.Strategy{
			Name:          "Butterfly Spread",
			Difficulty:    models.Advanced,
			Description:   "A butterfly spread uses three strike prices to profit from minimal price movement.",
			MarketOutlook: "Neutral",
			MaxProfit:     "Limited",
			MaxLoss:       "Limited",
			Setup:         []string{"Buy 1 ITM option", "Sell 2 ATM options", "Buy 1 OTM option"},
		},
		// long calls at K±W, two short calls at K, OptionPrice is the net debit
		payoff: func(P float64, p models.PayoffParams) float64 {
			K, W := p.StrikePrice, p.StrikeWidth
			return callPayoff(P, K-W) - 2*callPayoff(P, K) + callPayoff(P, K+W) - p.OptionPrice
		},
	},
	models.Calendar: {
		strategy: models.Strategy{
			Name:          "Calendar Spread",
			Difficulty:    models.Intermediate,
			Description:   "A calendar spread involves options with the same strike price but different expiration dates.",
			MarketOutlook: "Neutral",
			MaxProfit:     "Limited",
			MaxLoss:       "Limited",
			Setup:         []string{"Sell near-term option", "Buy longer-term option", "Same strike price"},
		},
		payoff: calendarPayoff,
	},
	models.VerticalSpread: {
		strategy: models.Strategy{
			Name:          "Vertical Spread",
			Difficulty:    models.Beginner,
			Description:   "A vertical spread involves buying and selling options of the same type and expiration but different strikes.",
			MarketOutlook: "Directional",
			MaxProfit:     "Limited",
			MaxLoss:       "Limited",
			Setup:         []string{"Buy 1 option", "Sell 1 option", "Same type and expiration, different strikes"},
		},
		// bull call: long K, short K+W, OptionPrice is the net debit
		payoff: func(P float64, p models.PayoffParams) float64 {
			K, W := p.StrikePrice, p.StrikeWidth
			return callPayoff(P, K) - callPayoff(P, K+W) - p.OptionPrice
		},
	},
	models.LongCall: {
		strategy: models.Strategy{
			Name:          "Long Call",
			Difficulty:    models.Beginner,
			Description:   "Buying a call option gives the right to buy the underlying at the strike price before expiration.",
			MarketOutlook: "Bullish",
			MaxProfit:     "Unlimited",
			MaxLoss:       "Limited to Premium",
			Setup:         []string{"Buy 1 call option"},
		},
		payoff: func(P float64, p models.PayoffParams) float64 {
			return callPayoff(P, p.StrikePrice) - p.OptionPrice
		},
	},
	models.LongPut: {
		strategy: models.Strategy{
			Name:          "Long Put",
			Difficulty:    models.Beginner,
			Description:   "Buying a put option gives the right to sell the underlying at the strike price before expiration.",
			MarketOutlook: "Bearish",
			MaxProfit:     "Substantial",
			MaxLoss:       "Limited to Premium",
			Setup:         []string{"Buy 1 put option"},
		},
		payoff: func(P float64, p models.PayoffParams) float64 {
			return putPayoff(P, p.StrikePrice) - p.OptionPrice
		},
	},
}

// calendarPayoff values the position when the short front-month call
// expires. The long back-month call still has BackDaysToExpiry to run and is
// marked with Black-Scholes. OptionPrice is the net debit.
func calendarPayoff(P float64, p models.PayoffParams) float64 {
	back, err := positions.TheoreticalPrice(models.MarketInputs{
		UnderlyingPrice: P,
		StrikePrice:     p.StrikePrice,
		DaysToExpiry:    p.BackDaysToExpiry,
		Volatility:      p.Volatility,
		InterestRate:    p.InterestRate,
		OptionType:      models.Call,
	})
	if err != nil {
		// params are validated before the sweep; fall back to intrinsic
		back = callPayoff(P, p.StrikePrice)
	}
	return back - callPayoff(P, p.StrikePrice) - p.OptionPrice
}

var recommendations = map[models.Outlook][]models.StrategyKind{
	models.Bullish:  {models.CoveredCall, models.VerticalSpread},
	models.Bearish:  {models.ProtectivePut, models.LongPut},
	models.Neutral:  {models.IronCondor, models.Calendar, models.Butterfly},
	models.Volatile: {models.Straddle, models.Strangle},
}

func lookup(kind models.StrategyKind) (catalogEntry, bool) {
	if kind <= models.StrategyUnknown || int(kind) >= len(catalog) {
		return catalogEntry{}, false
	}
	e := catalog[kind]
	if e.payoff == nil {
		return catalogEntry{}, false
	}
	return e, true
}

// Lookup returns the metadata for kind.
func Lookup(kind models.StrategyKind) (models.Strategy, bool) {
	e, ok := lookup(kind)
	if !ok {
		return models.Strategy{}, false
	}
	return withIdentity(kind, e.strategy), true
}

// Strategies returns the whole catalog in models.AllStrategyKinds order.
func Strategies() []models.Strategy {
	kinds := models.AllStrategyKinds()
	out := make([]models.Strategy, 0, len(kinds))
	for _, k := range kinds {
		if s, ok := Lookup(k); ok {
			out = append(out, s)
		}
	}
	return out
}

func StrategiesByDifficulty(d models.Difficulty) []models.Strategy {
	var out []models.Strategy
	for _, s := range Strategies() {
		if s.Difficulty == d {
			out = append(out, s)
		}
	}
	return out
}

// RecommendedStrategies returns the catalog entries suited to outlook, or
// nil for an unrecognised outlook.
func RecommendedStrategies(outlook models.Outlook) []models.Strategy {
	var out []models.Strategy
	for _, k := range recommendations[outlook] {
		if s, ok := Lookup(k); ok {
			out = append(out, s)
		}
	}
	return out
}

func withIdentity(kind models.StrategyKind, s models.Strategy) models.Strategy {
	s.ID = kind.String()
	s.Kind = kind
	s.Setup = append([]string(nil), s.Setup...)
	return s
}
