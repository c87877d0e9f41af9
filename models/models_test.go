package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionType(t *testing.T) {
	for in, want := range map[string]OptionType{"": Call, "CALL": Call, " c ": Call, "put": Put, "P": Put} {
		got, err := ParseOptionType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseOptionType("straddle")
	assert.ErrorIs(t, err, ErrInvalidOptionType)
}

func TestMarketInputsValidate(t *testing.T) {
	ok := MarketInputs{UnderlyingPrice: 100, StrikePrice: 100, DaysToExpiry: 0, Volatility: 0, InterestRate: -0.5, OptionType: Put}
	assert.NoError(t, ok.Validate())
	assert.True(t, ok.Degenerate())

	bad := ok
	bad.Volatility = math.NaN()
	assert.ErrorIs(t, bad.Validate(), ErrNonFiniteInput)

	bad = ok
	bad.UnderlyingPrice = math.Inf(1)
	assert.ErrorIs(t, bad.Validate(), ErrNonFiniteInput)
}

func TestMarketInputsUnits(t *testing.T) {
	m := MarketInputs{DaysToExpiry: 73, Volatility: 25, InterestRate: 2}
	assert.InDelta(t, 0.2, m.YearFraction(), 1e-15)
	assert.InDelta(t, 0.25, m.Sigma(), 1e-15)
	assert.InDelta(t, 0.02, m.Rate(), 1e-15)
	assert.False(t, m.Degenerate())
}

func TestStrategyKindRoundTrip(t *testing.T) {
	for _, k := range AllStrategyKinds() {
		assert.Equal(t, k, ParseStrategyKind(k.String()))
	}
	assert.Equal(t, IronCondor, ParseStrategyKind(" Iron-Condor "))
	assert.Equal(t, StrategyUnknown, ParseStrategyKind("collar"))
	assert.Equal(t, "unknown", StrategyKind(99).String())
}

func TestStrategyKindMultiLeg(t *testing.T) {
	assert.True(t, Strangle.MultiLeg())
	assert.True(t, VerticalSpread.MultiLeg())
	assert.False(t, Calendar.MultiLeg())
	assert.False(t, CoveredCall.MultiLeg())
}

func TestPayoffParamsValidate(t *testing.T) {
	p := PayoffParams{StockPrice: 100, StrikePrice: 100, OptionPrice: 1, StrikeWidth: 10}
	assert.NoError(t, p.Validate(Butterfly))
	assert.NoError(t, p.Validate(IronCondor)) // lowest leg 80

	p.StrikeWidth = 60
	assert.ErrorIs(t, p.Validate(IronCondor), ErrInvalidStrikeWidth)
	assert.NoError(t, p.Validate(LongCall))

	p.BackDaysToExpiry = -1
	assert.ErrorIs(t, p.Validate(Calendar), ErrNegativeDaysToExpiry)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.267, RoundGreek(0.266982938729037))
	assert.Equal(t, -14.847, RoundGreek(-14.84670538810571))
	assert.Equal(t, 2.68, RoundCurrency(2.675))
	assert.Equal(t, 23.7, RoundPercent(23.68192355779801))
	assert.Equal(t, 0.0, Round(math.NaN(), 2))
	assert.False(t, math.Signbit(RoundGreek(-0.0001)))
}

func TestPayoffCurveColumns(t *testing.T) {
	c := PayoffCurve{{Price: 1, Payoff: -1}, {Price: 2, Payoff: 3}}
	assert.Equal(t, []float64{1, 2}, c.Prices())
	assert.Equal(t, []float64{-1, 3}, c.Payoffs())
}
