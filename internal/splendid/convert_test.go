package splendid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimmingToPercent(t *testing.T) {
	t.Run("maps the splendid range onto 0-100", func(t *testing.T) {
		assert.Equal(t, int32(0), DimmingToPercent(40))
		assert.Equal(t, int32(50), DimmingToPercent(70))
		assert.Equal(t, int32(100), DimmingToPercent(100))
	})

	t.Run("clamps out-of-range input", func(t *testing.T) {
		assert.Equal(t, int32(0), DimmingToPercent(0))
		assert.Equal(t, int32(0), DimmingToPercent(39))
		assert.Equal(t, int32(100), DimmingToPercent(130))
	})
}

func TestPercentToDimming(t *testing.T) {
	assert.Equal(t, int32(40), PercentToDimming(0))
	assert.Equal(t, int32(70), PercentToDimming(50))
	assert.Equal(t, int32(100), PercentToDimming(100))
}

func TestConversionRoundTrip(t *testing.T) {
	// The forward direction is lossy through rounding, so a single round
	// trip must be a fixed point for every percentage.
	for p := int32(0); p <= 100; p++ {
		units := PercentToDimming(p)
		again := PercentToDimming(DimmingToPercent(units))
		assert.Equal(t, units, again, "percent %d", p)
	}
}

func TestConversionMonotonic(t *testing.T) {
	prev := PercentToDimming(0)
	for p := int32(1); p <= 100; p++ {
		units := PercentToDimming(p)
		assert.GreaterOrEqual(t, units, prev, "percent %d", p)
		prev = units
	}
}
