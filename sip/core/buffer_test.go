package core

import "testing"

func TestEnsureLen(t *testing.T) {
	tests := []struct {
		name    string
		buf     []float64
		n       int
		wantCap int
	}{
		{"reuse", make([]float64, 4, 8), 6, 8},
		{"grow", make([]float64, 2), 5, 5},
		{"nil grow", nil, 3, 3},
		{"empty", make([]float64, 4), 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := EnsureLen(tt.buf, tt.n)
			if len(out) != tt.n {
				t.Fatalf("len = %d, want %d", len(out), tt.n)
			}
			if cap(out) != tt.wantCap {
				t.Fatalf("cap = %d, want %d", cap(out), tt.wantCap)
			}
		})
	}
}

func TestCloneDetached(t *testing.T) {
	src := []float64{1, 2, 3}
	dst := Clone(src)
	src[0] = 42

	if dst[0] != 1 {
		t.Fatalf("clone shares storage: dst[0] = %v", dst[0])
	}

	if Clone(nil) != nil {
		t.Fatal("Clone(nil) should be nil")
	}
}
