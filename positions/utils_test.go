package positions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bcdannyboy/optionspro/models"
)

func expNeg(x float64) float64 { return math.Exp(-x) }

func TestCalculateIntrinsicValue(t *testing.T) {
	assert.Equal(t, 5.0, calculateIntrinsicValue(newInputs(105, 100, 1, 1, 0, models.Call)))
	assert.Equal(t, 0.0, calculateIntrinsicValue(newInputs(95, 100, 1, 1, 0, models.Call)))
	assert.Equal(t, 5.0, calculateIntrinsicValue(newInputs(95, 100, 1, 1, 0, models.Put)))
	assert.Equal(t, 0.0, calculateIntrinsicValue(newInputs(105, 100, 1, 1, 0, models.Put)))
}

func TestSanitizeFloat(t *testing.T) {
	assert.Equal(t, 0.0, sanitizeFloat(math.NaN()))
	assert.Equal(t, 0.0, sanitizeFloat(math.Inf(-1)))
	assert.Equal(t, 1.5, sanitizeFloat(1.5))
}
