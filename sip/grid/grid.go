// Package grid builds and checks the frequency and relaxation-time vectors
// that forward operators are constructed with.
package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sip/sip/core"
)

// Errors returned by grid construction and validation.
var (
	ErrEmpty         = errors.New("grid: empty vector")
	ErrNegativeValue = errors.New("grid: negative or non-finite entry")
	ErrInvalidRange  = errors.New("grid: invalid range")
)

// Validate checks that values is non-empty and that every entry is finite and
// non-negative. Zero entries are accepted. name labels the vector in errors.
func Validate(name string, values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("%s: %w", name, ErrEmpty)
	}
	for i, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s[%d]=%g: %w", name, i, v, ErrNegativeValue)
		}
	}
	return nil
}

// LogSpace returns n values spaced evenly on a log scale between lo and hi,
// both included. lo and hi must be positive; n must be positive.
func LogSpace(lo, hi float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("grid: point count must be > 0: %d: %w", n, ErrInvalidRange)
	}
	if !(lo > 0) || !(hi > 0) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("grid: bounds must be positive and finite: [%g, %g]: %w", lo, hi, ErrInvalidRange)
	}
	if n == 1 {
		return []float64{lo}, nil
	}
	return floats.LogSpan(make([]float64, n), lo, hi), nil
}

// Frequencies returns n log-spaced frequencies in Hz from fmin to fmax.
func Frequencies(fmin, fmax float64, n int) ([]float64, error) {
	if fmin > fmax {
		return nil, fmt.Errorf("grid: fmin %g > fmax %g: %w", fmin, fmax, ErrInvalidRange)
	}
	return LogSpace(fmin, fmax, n)
}

// DebyeTaus returns n log-spaced relaxation times covering the frequency
// range of f, from 1/(2*pi*max(f)) to 1/(2*pi*min(f)), widened by the given
// number of decades on each side. The result runs from the shortest to the
// longest relaxation time.
func DebyeTaus(f []float64, n int, decades float64) ([]float64, error) {
	if err := Validate("f", f); err != nil {
		return nil, err
	}
	fmin := floats.Min(f)
	fmax := floats.Max(f)
	if fmin <= 0 {
		return nil, fmt.Errorf("grid: frequencies must be positive to derive relaxation times: %w", ErrInvalidRange)
	}
	if decades < 0 || math.IsNaN(decades) {
		return nil, fmt.Errorf("grid: decades must be >= 0: %g: %w", decades, ErrInvalidRange)
	}
	ext := math.Pow(10, decades)
	tmin := 1 / core.AngularFrequency(fmax) / ext
	tmax := 1 / core.AngularFrequency(fmin) * ext
	return LogSpace(tmin, tmax, n)
}
