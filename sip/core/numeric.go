package core

import "math"

// AngularFrequency converts a frequency in Hz to rad/s.
func AngularFrequency(f float64) float64 {
	return 2 * math.Pi * f
}

// RadToMrad converts a phase angle from radians to milliradians.
func RadToMrad(rad float64) float64 {
	return rad * 1000
}
