package planner

import "math"

// intensityFor maps a target band to the scalar that scales every session
// length. Band 6.0 is the 1.0 baseline; the multiplier is capped to
// [0.85, 1.35] at the band extremes.
func intensityFor(targetBand float64) float64 {
	m := 1 + (targetBand-6)*0.15
	if m < 0.85 {
		return 0.85
	}
	if m > 1.35 {
		return 1.35
	}
	return m
}

// roundTo5 snaps minutes to the nearest multiple of 5, with a floor of 5 for
// any positive amount. Non-positive amounts round to 0.
func roundTo5(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	r := int(math.Round(float64(minutes)/5)) * 5
	if r < 5 {
		return 5
	}
	return r
}

// scaled applies the intensity multiplier to a base minute amount and snaps
// the result to a multiple of 5.
func scaled(base int, intensity float64) int {
	return roundTo5(int(math.Round(float64(base) * intensity)))
}
