package testutil

import "math"

// LogFrequencies returns n frequencies spaced evenly in log10 between
// 10^lo and 10^hi (inclusive).
func LogFrequencies(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = math.Pow(10, lo)
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, lo+step*float64(i))
	}
	return out
}

// DeterministicChargeabilities returns n reproducible chargeabilities in
// [0, scale) derived from a fixed quadratic sequence.
func DeterministicChargeabilities(n int, scale float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		v := math.Mod(float64(i*i+3*i+1)*0.618033988749895, 1)
		out[i] = v * scale
	}
	return out
}
