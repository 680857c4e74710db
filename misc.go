package cubeworld

import "math"

// sqrtSafe guards against tiny negative arguments produced by floating point
// cancellation.
func sqrtSafe(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
