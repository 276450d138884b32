package relaxation

import (
	"errors"
	"math"
	"testing"
)

func nearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestDecomposeTwoPeaks(t *testing.T) {
	taus := []float64{0.01, 0.1, 1, 10}
	m := []float64{0, 1, 1, 0}

	d, err := Decompose(taus, m)
	if err != nil {
		t.Fatalf("Decompose error: %v", err)
	}

	checks := []struct {
		name      string
		got, want float64
	}{
		{"TotalChargeability", d.TotalChargeability, 2},
		{"MeanTau", d.MeanTau, math.Sqrt(0.1)},
		{"Tau10", d.Tau10, 0.01 * math.Pow(10, 0.2)},
		{"Tau50", d.Tau50, 0.1},
		{"Tau60", d.Tau60, 0.1 * math.Pow(10, 0.2)},
		{"Uniformity", d.Uniformity, 10},
	}
	for _, c := range checks {
		if !nearlyEqual(c.got, c.want, 1e-12) {
			t.Fatalf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if got := d.NormalizedChargeability(100); !nearlyEqual(got, 0.02, 1e-15) {
		t.Fatalf("NormalizedChargeability = %v, want 0.02", got)
	}
}

func TestDecomposeUnsortedInput(t *testing.T) {
	sorted, err := Decompose([]float64{0.01, 0.1, 1, 10}, []float64{0.1, 0.4, 0.3, 0.2})
	if err != nil {
		t.Fatalf("Decompose error: %v", err)
	}
	shuffled, err := Decompose([]float64{1, 0.01, 10, 0.1}, []float64{0.3, 0.1, 0.2, 0.4})
	if err != nil {
		t.Fatalf("Decompose error: %v", err)
	}

	if !nearlyEqual(sorted.Tau50, shuffled.Tau50, 1e-12) || !nearlyEqual(sorted.MeanTau, shuffled.MeanTau, 1e-12) {
		t.Fatalf("order dependence: %+v vs %+v", sorted, shuffled)
	}
}

func TestDecomposeErrors(t *testing.T) {
	if _, err := Decompose(nil, nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
	if _, err := Decompose([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
	if _, err := Decompose([]float64{1, 2}, []float64{0, 0}); !errors.Is(err, ErrNoChargeability) {
		t.Fatalf("error = %v, want ErrNoChargeability", err)
	}
}

func TestDecomposeRejectsInvalidRelaxationTimes(t *testing.T) {
	m := []float64{0, 0.05, 0.05}
	tests := []struct {
		name string
		taus []float64
	}{
		{"zero", []float64{0, 0.01, 1}},
		{"negative", []float64{0.001, -0.01, 1}},
		{"NaN", []float64{0.001, math.NaN(), 1}},
		{"Inf", []float64{0.001, 0.01, math.Inf(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Decompose(tt.taus, m)
			if !errors.Is(err, ErrInvalidRelaxationTime) {
				t.Fatalf("error = %v, want ErrInvalidRelaxationTime (result %+v)", err, d)
			}
		})
	}
}
