package relaxation

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Decomposition holds integral parameters of a Debye decomposition result
// after Nordsiek & Weller (2008).
type Decomposition struct {
	// TotalChargeability is the sum of all chargeabilities.
	TotalChargeability float64

	// MeanTau is the chargeability-weighted logarithmic mean relaxation time.
	MeanTau float64

	// Tau10, Tau50 and Tau60 are the relaxation times at which the
	// cumulative chargeability reaches 10, 50 and 60 percent.
	Tau10 float64
	Tau50 float64
	Tau60 float64

	// Uniformity is Tau60/Tau10; larger values mean a broader distribution.
	Uniformity float64
}

// NormalizedChargeability returns TotalChargeability/rho0, the total
// chargeability scaled by the DC resistivity.
func (d Decomposition) NormalizedChargeability(rho0 float64) float64 {
	return d.TotalChargeability / rho0
}

// Decompose computes [Decomposition] for the chargeabilities m attributed to
// the relaxation times taus. taus need not be sorted but must be positive
// and finite.
func Decompose(taus, m []float64) (Decomposition, error) {
	if len(taus) == 0 {
		return Decomposition{}, ErrEmptyInput
	}
	if len(taus) != len(m) {
		return Decomposition{}, fmt.Errorf("%w: %d relaxation times, %d chargeabilities", ErrLengthMismatch, len(taus), len(m))
	}
	for i, tk := range taus {
		if !(tk > 0) || math.IsInf(tk, 1) {
			return Decomposition{}, fmt.Errorf("%w: taus[%d] = %g", ErrInvalidRelaxationTime, i, tk)
		}
	}

	total := floats.Sum(m)
	if total == 0 {
		return Decomposition{}, ErrNoChargeability
	}

	order := make([]int, len(taus))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return taus[order[a]] < taus[order[b]] })

	logTau := make([]float64, len(taus))
	weights := make([]float64, len(taus))
	for i, k := range order {
		logTau[i] = math.Log(taus[k])
		weights[i] = m[k]
	}

	weighted := make([]float64, len(taus))
	vecmath.MulBlock(weighted, weights, logTau)

	d := Decomposition{
		TotalChargeability: total,
		MeanTau:            math.Exp(floats.Sum(weighted) / total),
	}

	cum := make([]float64, len(weights))
	floats.CumSum(cum, weights)
	floats.Scale(1/total, cum)

	d.Tau10 = math.Exp(percentile(logTau, cum, 0.1))
	d.Tau50 = math.Exp(percentile(logTau, cum, 0.5))
	d.Tau60 = math.Exp(percentile(logTau, cum, 0.6))
	d.Uniformity = d.Tau60 / d.Tau10
	return d, nil
}

// percentile interpolates logTau where the normalized cumulative
// chargeability cum first reaches p.
func percentile(logTau, cum []float64, p float64) float64 {
	for k, c := range cum {
		if c < p {
			continue
		}
		if k == 0 || c == cum[k-1] {
			return logTau[k]
		}
		frac := (p - cum[k-1]) / (c - cum[k-1])
		return logTau[k-1] + frac*(logTau[k]-logTau[k-1])
	}
	return logTau[len(logTau)-1]
}
