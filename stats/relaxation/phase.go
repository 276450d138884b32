// Package relaxation computes descriptors of SIP phase spectra and of Debye
// decomposition results.
package relaxation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sip/sip/core"
)

// Errors returned by the descriptor functions.
var (
	ErrEmptyInput       = errors.New("relaxation: empty input")
	ErrLengthMismatch   = errors.New("relaxation: length mismatch")
	ErrNoChargeability  = errors.New("relaxation: total chargeability is zero")
	ErrInvalidFrequency = errors.New("relaxation: frequencies must be positive and increasing")

	ErrInvalidRelaxationTime = errors.New("relaxation: relaxation times must be positive and finite")
)

// PhaseStats holds descriptors of a negative-phase spectrum (radians).
type PhaseStats struct {
	Count    int
	Max      float64
	MaxIndex int
	Min      float64
	Mean     float64
	RMS      float64

	// PeakFrequency is the frequency of the phase maximum in Hz, refined by
	// a parabola through the three samples around the maximum in log10(f).
	PeakFrequency float64

	// WidthDecades is the full width in decades of frequency over which the
	// phase stays above half its maximum.
	WidthDecades float64
}

// CalculatePhase computes [PhaseStats] for a phase spectrum sampled at the
// frequencies f. f must be positive and strictly increasing.
func CalculatePhase(f, phase []float64) (PhaseStats, error) {
	if len(phase) == 0 {
		return PhaseStats{}, ErrEmptyInput
	}
	if len(f) != len(phase) {
		return PhaseStats{}, fmt.Errorf("%w: %d frequencies, %d phases", ErrLengthMismatch, len(f), len(phase))
	}
	if !(f[0] > 0) {
		return PhaseStats{}, fmt.Errorf("%w: f[0] = %g", ErrInvalidFrequency, f[0])
	}
	for i := 1; i < len(f); i++ {
		if !(f[i] > f[i-1]) {
			return PhaseStats{}, fmt.Errorf("%w: f[%d] = %g after %g", ErrInvalidFrequency, i, f[i], f[i-1])
		}
	}

	n := len(phase)
	s := PhaseStats{
		Count:    n,
		Max:      floats.Max(phase),
		MaxIndex: floats.MaxIdx(phase),
		Min:      floats.Min(phase),
		Mean:     floats.Sum(phase) / float64(n),
		RMS:      math.Sqrt(floats.Dot(phase, phase) / float64(n)),
	}
	s.PeakFrequency = peakFrequency(f, phase, s.MaxIndex)
	s.WidthDecades = widthDecades(f, phase, s.MaxIndex)
	return s, nil
}

func peakFrequency(f, phase []float64, k int) float64 {
	if k == 0 || k == len(phase)-1 {
		return f[k]
	}
	x0, x1, x2 := math.Log10(f[k-1]), math.Log10(f[k]), math.Log10(f[k+1])
	y0, y1, y2 := phase[k-1], phase[k], phase[k+1]

	// vertex of the parabola through (x0,y0), (x1,y1), (x2,y2)
	d01 := (y1 - y0) / (x1 - x0)
	d12 := (y2 - y1) / (x2 - x1)
	curv := (d12 - d01) / (x2 - x0)
	if curv >= 0 || math.IsNaN(curv) {
		return f[k]
	}
	xv := (x0+x1)/2 - d01/(2*curv)
	return math.Pow(10, xv)
}

func widthDecades(f, phase []float64, k int) float64 {
	half := phase[k] / 2
	if half <= 0 {
		return 0
	}

	lower := math.Log10(f[0])
	for i := k; i >= 1; i-- {
		if phase[i-1] <= half && phase[i] > half {
			lower = crossing(f[i-1], f[i], phase[i-1], phase[i], half)
			break
		}
	}

	upper := math.Log10(f[len(f)-1])
	for i := k; i < len(phase)-1; i++ {
		if phase[i+1] <= half && phase[i] > half {
			upper = crossing(f[i], f[i+1], phase[i], phase[i+1], half)
			break
		}
	}

	if upper < lower {
		return 0
	}
	return upper - lower
}

// crossing interpolates log10(f) where the phase crosses level.
func crossing(fLow, fHigh, pLow, pHigh, level float64) float64 {
	xl, xh := math.Log10(fLow), math.Log10(fHigh)
	denom := pHigh - pLow
	if denom == 0 {
		return (xl + xh) / 2
	}
	return xl + (level-pLow)/denom*(xh-xl)
}

// TauFromPhasePeak estimates the resistivity-form relaxation time of a Debye
// impedance from the frequency of its phase maximum. The phase of
// 1 - m*(1 - 1/(1+i*w*tau)) peaks at w*tau = 1/sqrt(1-m).
func TauFromPhasePeak(fPeak, m float64) float64 {
	return 1 / (core.AngularFrequency(fPeak) * math.Sqrt(1-m))
}
