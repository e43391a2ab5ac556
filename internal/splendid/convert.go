package splendid

import "math"

// Panel dimming bounds in splendid units.
const (
	DimmingMin = 40
	DimmingMax = 100
)

// DimmingToPercent converts a dimming level from splendid units (40-100) to
// a percentage (0-100). Out-of-range input is clamped first.
func DimmingToPercent(units int32) int32 {
	c := clamp(units, DimmingMin, DimmingMax)
	return int32(math.Round(float64(c-DimmingMin) / 60.0 * 100.0))
}

// PercentToDimming converts a percentage (0-100) to splendid units (40-100).
func PercentToDimming(percent int32) int32 {
	return DimmingMin + int32(math.Round(float64(percent)/100.0*60.0))
}

func clamp(v, lo, hi int32) int32 {
	return min(max(v, lo), hi)
}
