package positions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcdannyboy/optionspro/models"
)

func newInputs(s, k float64, days int, vol, rate float64, typ models.OptionType) models.MarketInputs {
	return models.MarketInputs{
		UnderlyingPrice: s,
		StrikePrice:     k,
		DaysToExpiry:    days,
		Volatility:      vol,
		InterestRate:    rate,
		OptionType:      typ,
	}
}

func TestComputeGreeks_ReferenceValues(t *testing.T) {
	tests := []struct {
		name  string
		in    models.MarketInputs
		price float64
		want  models.GreekResult
	}{
		{
			name:  "OTM call",
			in:    newInputs(100, 105, 30, 25, 2.0, models.Call),
			price: 2.50,
			want: models.GreekResult{
				Delta: 0.267, Gamma: 0.046, Theta: -14.847, Vega: 0.094, Rho: 0.021,
				Intrinsic: 0, TimeValue: 2.50, TheoreticalPrice: 1.13,
			},
		},
		{
			name:  "ITM put",
			in:    newInputs(100, 105, 30, 25, 2.0, models.Put),
			price: 2.50,
			want: models.GreekResult{
				Delta: -0.733, Gamma: 0.046, Theta: -15.920, Vega: 0.094, Rho: 0.065,
				Intrinsic: 5, TimeValue: 0, TheoreticalPrice: 5.95,
			},
		},
		{
			name:  "OTM put",
			in:    newInputs(110, 100, 60, 30, 5, models.Put),
			price: 1.0,
			want: models.GreekResult{
				Delta: -0.181, Gamma: 0.020, Theta: -11.776, Vega: 0.117, Rho: 0.035,
				Intrinsic: 0, TimeValue: 1.0, TheoreticalPrice: 1.39,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeGreeks(tt.in, tt.price)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Delta, got.Delta, 1e-9)
			assert.InDelta(t, tt.want.Gamma, got.Gamma, 1e-9)
			assert.InDelta(t, tt.want.Theta, got.Theta, 1e-9)
			assert.InDelta(t, tt.want.Vega, got.Vega, 1e-9)
			assert.InDelta(t, tt.want.Rho, got.Rho, 1e-9)
			assert.InDelta(t, tt.want.Intrinsic, got.Intrinsic, 1e-9)
			assert.InDelta(t, tt.want.TimeValue, got.TimeValue, 1e-9)
			assert.InDelta(t, tt.want.TheoreticalPrice, got.TheoreticalPrice, 1e-9)
		})
	}
}

func TestComputeGreeks_DeltaBoundsAndSymmetry(t *testing.T) {
	for _, s := range []float64{50, 95, 100, 105, 200} {
		for _, days := range []int{1, 30, 365, 1000} {
			for _, vol := range []float64{1, 25, 80} {
				for _, rate := range []float64{-1, 0, 5} {
					call, err := ComputeGreeks(newInputs(s, 100, days, vol, rate, models.Call), 1)
					require.NoError(t, err)
					put, err := ComputeGreeks(newInputs(s, 100, days, vol, rate, models.Put), 1)
					require.NoError(t, err)

					assert.GreaterOrEqual(t, call.Delta, 0.0)
					assert.LessOrEqual(t, call.Delta, 1.0)
					assert.GreaterOrEqual(t, put.Delta, -1.0)
					assert.LessOrEqual(t, put.Delta, 0.0)
					assert.Equal(t, call.Gamma, put.Gamma, "gamma s=%v days=%d vol=%v", s, days, vol)
					assert.Equal(t, call.Vega, put.Vega, "vega s=%v days=%d vol=%v", s, days, vol)
				}
			}
		}
	}
}

func TestComputeGreeks_AtExpiry(t *testing.T) {
	tests := []struct {
		s         float64
		typ       models.OptionType
		wantDelta float64
	}{
		{110, models.Call, 1},
		{90, models.Call, 0},
		{100, models.Call, 0},
		{90, models.Put, -1},
		{110, models.Put, 0},
		{100, models.Put, 0},
	}
	for _, tt := range tests {
		got, err := ComputeGreeks(newInputs(tt.s, 100, 0, 25, 2, tt.typ), 3)
		require.NoError(t, err)
		assert.Equal(t, tt.wantDelta, got.Delta, "s=%v %s", tt.s, tt.typ)
		assert.Equal(t, 0.0, got.Gamma)
		assert.Equal(t, 0.0, got.Theta)
		assert.Equal(t, 0.0, got.Vega)
		assert.Equal(t, 0.0, got.Rho)
	}

	got, err := ComputeGreeks(newInputs(110, 100, 0, 25, 2, models.Call), 12)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Intrinsic)
	assert.Equal(t, 2.0, got.TimeValue)
	assert.Equal(t, 10.0, got.TheoreticalPrice)
}

func TestComputeGreeks_ZeroVolatility(t *testing.T) {
	got, err := ComputeGreeks(newInputs(90, 100, 30, 0, 2, models.Put), 10)
	require.NoError(t, err)
	assert.Equal(t, -1.0, got.Delta)
	assert.Equal(t, 0.0, got.Gamma)
	assert.Equal(t, 0.0, got.Vega)
	assert.Equal(t, 0.0, got.Theta)
	assert.Equal(t, 0.0, got.Rho)
	assert.Equal(t, 10.0, got.Intrinsic)
	assert.Equal(t, 0.0, got.TimeValue)
}

func TestComputeGreeks_IntrinsicPlusTimeValue(t *testing.T) {
	for _, price := range []float64{5.0, 7.25, 12.4} {
		got, err := ComputeGreeks(newInputs(105, 100, 45, 30, 1.5, models.Call), price)
		require.NoError(t, err)
		assert.InDelta(t, price, got.Intrinsic+got.TimeValue, 0.01)
	}

	// premium below intrinsic floors time value at zero
	got, err := ComputeGreeks(newInputs(105, 100, 45, 30, 1.5, models.Call), 3)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Intrinsic)
	assert.Equal(t, 0.0, got.TimeValue)
}

func TestComputeGreeks_Idempotent(t *testing.T) {
	in := newInputs(123.45, 120, 17, 42.5, 3.1, models.Put)
	a, err := ComputeGreeks(in, 4.2)
	require.NoError(t, err)
	b, err := ComputeGreeks(in, 4.2)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComputeGreeks_DomainViolations(t *testing.T) {
	tests := []struct {
		name string
		in   models.MarketInputs
		want error
	}{
		{"zero underlying", newInputs(0, 100, 30, 25, 2, models.Call), models.ErrNonPositiveUnderlying},
		{"negative strike", newInputs(100, -5, 30, 25, 2, models.Call), models.ErrNonPositiveStrike},
		{"negative days", newInputs(100, 100, -1, 25, 2, models.Call), models.ErrNegativeDaysToExpiry},
		{"negative vol", newInputs(100, 100, 30, -25, 2, models.Call), models.ErrNegativeVolatility},
		{"bad type", newInputs(100, 100, 30, 25, 2, "straddle"), models.ErrInvalidOptionType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeGreeks(tt.in, 1)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTheoreticalPrice_PutCallParity(t *testing.T) {
	call, err := TheoreticalPrice(newInputs(100, 95, 90, 20, 3, models.Call))
	require.NoError(t, err)
	put, err := TheoreticalPrice(newInputs(100, 95, 90, 20, 3, models.Put))
	require.NoError(t, err)

	T := 90.0 / 365
	// C - P = S - K e^{-rT}; the A&S approximation keeps this within 1e-4
	assert.InDelta(t, 100-95*expNeg(0.03*T), call-put, 1e-4)
}
