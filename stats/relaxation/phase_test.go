package relaxation

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sip/internal/testutil"
	"github.com/cwbudde/algo-sip/sip/forward"
)

func colePhase(t *testing.T, f []float64, m, tau, c float64) []float64 {
	t.Helper()
	op, err := forward.NewColeColePhi(f)
	if err != nil {
		t.Fatalf("NewColeColePhi error: %v", err)
	}
	phi, err := op.Response([]float64{m, tau, c})
	if err != nil {
		t.Fatalf("Response error: %v", err)
	}
	return phi
}

func TestCalculatePhasePeak(t *testing.T) {
	f := testutil.LogFrequencies(-2, 4, 61)
	m, tau := 0.5, 0.01
	s, err := CalculatePhase(f, colePhase(t, f, m, tau, 1))
	if err != nil {
		t.Fatalf("CalculatePhase error: %v", err)
	}

	want := 1 / (2 * math.Pi * tau * math.Sqrt(1-m))
	if d := math.Abs(math.Log10(s.PeakFrequency / want)); d > 0.02 {
		t.Fatalf("PeakFrequency = %v, want ~%v (%v decades off)", s.PeakFrequency, want, d)
	}

	if got := TauFromPhasePeak(s.PeakFrequency, m); math.Abs(got-tau)/tau > 0.05 {
		t.Fatalf("TauFromPhasePeak = %v, want ~%v", got, tau)
	}

	if s.Count != len(f) || s.Max < s.Mean || s.Min > s.Mean || s.RMS < s.Mean {
		t.Fatalf("inconsistent stats: %+v", s)
	}
}

func TestCalculatePhaseWidthGrowsWithBroadening(t *testing.T) {
	f := testutil.LogFrequencies(-4, 6, 201)

	narrow, err := CalculatePhase(f, colePhase(t, f, 0.3, 0.01, 1))
	if err != nil {
		t.Fatalf("CalculatePhase error: %v", err)
	}
	broad, err := CalculatePhase(f, colePhase(t, f, 0.3, 0.01, 0.4))
	if err != nil {
		t.Fatalf("CalculatePhase error: %v", err)
	}

	if narrow.WidthDecades <= 0 || narrow.WidthDecades >= 10 {
		t.Fatalf("narrow width = %v decades", narrow.WidthDecades)
	}
	if broad.WidthDecades <= narrow.WidthDecades {
		t.Fatalf("broad width %v <= narrow width %v", broad.WidthDecades, narrow.WidthDecades)
	}
}

func TestCalculatePhaseEdgePeak(t *testing.T) {
	f := []float64{1, 10, 100}
	s, err := CalculatePhase(f, []float64{0.3, 0.2, 0.1})
	if err != nil {
		t.Fatalf("CalculatePhase error: %v", err)
	}
	if s.MaxIndex != 0 || s.PeakFrequency != 1 {
		t.Fatalf("edge peak = (%d, %v), want (0, 1)", s.MaxIndex, s.PeakFrequency)
	}
}

func TestCalculatePhaseErrors(t *testing.T) {
	if _, err := CalculatePhase(nil, nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
	if _, err := CalculatePhase([]float64{1}, []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
	if _, err := CalculatePhase([]float64{0, 1}, []float64{1, 2}); !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("error = %v, want ErrInvalidFrequency", err)
	}
}

func TestCalculatePhaseRejectsUnorderedFrequencies(t *testing.T) {
	phase := []float64{0.1, 0.3, 0.2}
	tests := []struct {
		name string
		f    []float64
	}{
		{"descending", []float64{100, 10, 1}},
		{"shuffled", []float64{1, 100, 10}},
		{"duplicate", []float64{1, 10, 10}},
		{"NaN", []float64{1, math.NaN(), 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CalculatePhase(tt.f, phase); !errors.Is(err, ErrInvalidFrequency) {
				t.Fatalf("error = %v, want ErrInvalidFrequency", err)
			}
		})
	}
}
