package rng

import "math"

// Fractional turns a real-valued average into an integer count using one
// uniform draw: floor(avg), plus one when draw < avg-floor(avg).
// Over many draws the mean of the result converges to avg.
// Averages that are not positive finite numbers yield 0.
func Fractional(avg, draw float64) int {
	if math.IsNaN(avg) || math.IsInf(avg, 0) || avg <= 0 {
		return 0
	}
	base := math.Floor(avg)
	n := int(base)
	if draw < avg-base {
		n++
	}
	return n
}
