package normal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestCDFMatchesExactNormal(t *testing.T) {
	for x := -6.0; x <= 6.0; x += 0.05 {
		assert.InDelta(t, distuv.UnitNormal.CDF(x), CDF(x), 1.5e-7, "x=%v", x)
	}
}

func TestCDFReferenceValues(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 0.5000000005},
		{1, 0.8413447361676363},
		{-1, 0.15865526383236372},
		{1.96, 0.9750021738917761},
		{-3, 0.0013499672813147567},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, CDF(tt.x), 1e-12, "x=%v", tt.x)
	}
}

func TestCDFSaturates(t *testing.T) {
	assert.InDelta(t, 1.0, CDF(40), 1e-12)
	assert.InDelta(t, 0.0, CDF(-40), 1e-12)
	assert.False(t, math.IsNaN(CDF(math.MaxFloat64)))
}

func TestCDFMonotone(t *testing.T) {
	prev := CDF(-8)
	for x := -7.9; x <= 8; x += 0.1 {
		cur := CDF(x)
		assert.GreaterOrEqual(t, cur, prev, "x=%v", x)
		prev = cur
	}
}

func TestPDF(t *testing.T) {
	assert.InDelta(t, 0.3989422804014327, PDF(0), 1e-15)
	assert.Equal(t, PDF(1.3), PDF(-1.3))
	for x := -5.0; x <= 5.0; x += 0.25 {
		assert.InDelta(t, distuv.UnitNormal.Prob(x), PDF(x), 1e-12, "x=%v", x)
	}
	assert.Equal(t, 0.0, PDF(1e6))
}
