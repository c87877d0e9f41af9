package models

import (
	"fmt"
	"math"
	"strings"
)

// StrategyKind is the closed set of strategies the payoff generator knows.
type StrategyKind int

const (
	StrategyUnknown StrategyKind = iota
	CoveredCall
	ProtectivePut
	Straddle
	Strangle
	IronCondor
	Butterfly
	Calendar
	VerticalSpread
	LongCall
	LongPut
)

var strategyIDs = [...]string{
	StrategyUnknown: "unknown",
	CoveredCall:     "covered-call",
	ProtectivePut:   "protective-put",
	Straddle:        "straddle",
	Strangle:        "strangle",
	IronCondor:      "iron-condor",
	Butterfly:       "butterfly",
	Calendar:        "calendar",
	VerticalSpread:  "vertical-spread",
	LongCall:        "long-call",
	LongPut:         "long-put",
}

// AllStrategyKinds lists every known kind in catalog order.
func AllStrategyKinds() []StrategyKind {
	return []StrategyKind{
		CoveredCall, ProtectivePut, Straddle, Strangle, IronCondor,
		Butterfly, Calendar, VerticalSpread, LongCall, LongPut,
	}
}

func (k StrategyKind) String() string {
	if k < 0 || int(k) >= len(strategyIDs) {
		return strategyIDs[StrategyUnknown]
	}
	return strategyIDs[k]
}

// ParseStrategyKind maps an id such as "iron-condor" to its kind. Unknown ids
// yield StrategyUnknown rather than an error.
func ParseStrategyKind(id string) StrategyKind {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, k := range AllStrategyKinds() {
		if strategyIDs[k] == id {
			return k
		}
	}
	return StrategyUnknown
}

// MultiLeg reports whether the kind needs StrikeWidth.
func (k StrategyKind) MultiLeg() bool {
	switch k {
	case Strangle, IronCondor, Butterfly, VerticalSpread:
		return true
	}
	return false
}

type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

type Outlook string

const (
	Bullish  Outlook = "bullish"
	Bearish  Outlook = "bearish"
	Neutral  Outlook = "neutral"
	Volatile Outlook = "volatile"
)

// Strategy is the descriptive metadata for a StrategyKind.
type Strategy struct {
	ID            string       `json:"id"`
	Kind          StrategyKind `json:"-"`
	Name          string       `json:"name"`
	Difficulty    Difficulty   `json:"difficulty"`
	Description   string       `json:"description"`
	MarketOutlook string       `json:"marketOutlook"`
	MaxProfit     string       `json:"maxProfit"`
	MaxLoss       string       `json:"maxLoss"`
	Setup         []string     `json:"setup"`
}

// PayoffParams are the inputs to a payoff sweep. StrikeWidth is only read by
// multi-leg strategies; Volatility, InterestRate and BackDaysToExpiry only by
// calendar.
type PayoffParams struct {
	StockPrice       float64 `json:"stockPrice"`
	StrikePrice      float64 `json:"strikePrice"`
	OptionPrice      float64 `json:"optionPrice"`
	StrikeWidth      float64 `json:"strikeWidth"`
	Volatility       float64 `json:"volatility"`
	InterestRate     float64 `json:"interestRate"`
	BackDaysToExpiry int     `json:"backDaysToExpiry"`
}

// Validate checks the params needed by kind.
func (p PayoffParams) Validate(kind StrategyKind) error {
	for _, f := range []float64{p.StockPrice, p.StrikePrice, p.OptionPrice, p.StrikeWidth, p.Volatility, p.InterestRate} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ErrNonFiniteInput
		}
	}
	if p.StockPrice <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveUnderlying, p.StockPrice)
	}
	if p.StrikePrice <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveStrike, p.StrikePrice)
	}

	var lowest float64
	switch kind {
	case Strangle, Butterfly:
		lowest = p.StrikePrice - p.StrikeWidth
	case IronCondor:
		lowest = p.StrikePrice - 2*p.StrikeWidth
	case VerticalSpread:
		lowest = p.StrikePrice
	case Calendar:
		if p.BackDaysToExpiry < 0 {
			return fmt.Errorf("%w: got %d", ErrNegativeDaysToExpiry, p.BackDaysToExpiry)
		}
		if p.Volatility < 0 {
			return fmt.Errorf("%w: got %v", ErrNegativeVolatility, p.Volatility)
		}
		return nil
	default:
		return nil
	}
	if p.StrikeWidth <= 0 || lowest <= 0 {
		return fmt.Errorf("%w: strike %v width %v", ErrInvalidStrikeWidth, p.StrikePrice, p.StrikeWidth)
	}
	return nil
}
