package grid

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantErr error
	}{
		{name: "valid", values: []float64{0.1, 1, 10}},
		{name: "zero entry allowed", values: []float64{0, 1}},
		{name: "empty", values: nil, wantErr: ErrEmpty},
		{name: "negative", values: []float64{1, -1}, wantErr: ErrNegativeValue},
		{name: "nan", values: []float64{math.NaN()}, wantErr: ErrNegativeValue},
		{name: "inf", values: []float64{math.Inf(1)}, wantErr: ErrNegativeValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate("f", tt.values)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogSpace(t *testing.T) {
	got, err := LogSpace(0.01, 1e5, 8)
	if err != nil {
		t.Fatalf("LogSpace error: %v", err)
	}
	for i, v := range got {
		want := math.Pow(10, float64(i-2))
		if math.Abs(v-want) > 1e-9*want {
			t.Fatalf("got[%d] = %v, want %v", i, v, want)
		}
	}

	single, err := LogSpace(3, 7, 1)
	if err != nil || len(single) != 1 || single[0] != 3 {
		t.Fatalf("LogSpace(n=1) = %v, %v", single, err)
	}
}

func TestLogSpaceInvalid(t *testing.T) {
	cases := []struct {
		lo, hi float64
		n      int
	}{
		{0, 1, 4},
		{-1, 1, 4},
		{1, math.Inf(1), 4},
		{1, 10, 0},
	}
	for _, c := range cases {
		if _, err := LogSpace(c.lo, c.hi, c.n); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("LogSpace(%v, %v, %d) error = %v, want ErrInvalidRange", c.lo, c.hi, c.n, err)
		}
	}
}

func TestFrequenciesRejectsReversedRange(t *testing.T) {
	if _, err := Frequencies(10, 1, 5); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("error = %v, want ErrInvalidRange", err)
	}
}

func TestDebyeTausCoversFrequencyRange(t *testing.T) {
	f := []float64{1000, 0.1, 10}
	taus, err := DebyeTaus(f, 20, 1)
	if err != nil {
		t.Fatalf("DebyeTaus error: %v", err)
	}
	if len(taus) != 20 {
		t.Fatalf("len = %d, want 20", len(taus))
	}

	wantMin := 1 / (2 * math.Pi * 1000) / 10
	wantMax := 1 / (2 * math.Pi * 0.1) * 10
	if math.Abs(taus[0]-wantMin) > 1e-12*wantMin {
		t.Fatalf("taus[0] = %v, want %v", taus[0], wantMin)
	}
	if math.Abs(taus[19]-wantMax) > 1e-9*wantMax {
		t.Fatalf("taus[19] = %v, want %v", taus[19], wantMax)
	}
	for i := 1; i < len(taus); i++ {
		if taus[i] <= taus[i-1] {
			t.Fatalf("taus not increasing at %d", i)
		}
	}
}

func TestDebyeTausErrors(t *testing.T) {
	if _, err := DebyeTaus(nil, 10, 0); !errors.Is(err, ErrEmpty) {
		t.Fatalf("error = %v, want ErrEmpty", err)
	}
	if _, err := DebyeTaus([]float64{0, 1}, 10, 0); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("error = %v, want ErrInvalidRange", err)
	}
	if _, err := DebyeTaus([]float64{1, 10}, 10, -1); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("error = %v, want ErrInvalidRange", err)
	}
}
