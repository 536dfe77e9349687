package common

import "math"

// Approach moves v toward zero by delta without crossing it.
func Approach(v, delta float64) float64 {
	if v < 0 {
		return math.Min(v+delta, 0)
	}
	return math.Max(v-delta, 0)
}

// Sign returns -1 when left is set and 1 otherwise.
func Sign(left bool) float64 {
	if left {
		return -1
	}
	return 1
}
