package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sip/sip/core"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Amplitude returns |Z(f)| for each value of a complex spectrum.
//
// Scratch buffers are pooled, so in steady state this allocates only the
// output slice. The magnitude kernel is SIMD-accelerated where available.
func Amplitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	return AmplitudeInto(nil, in)
}

// AmplitudeInto writes |Z(f)| into dst, reusing its capacity, and returns
// the len(in) result.
func AmplitudeInto(dst []float64, in []complex128) []float64 {
	dst = core.EnsureLen(dst, len(in))
	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
	return dst
}

// Phase returns arg(Z(f)) in radians, in (-pi, pi].
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// NegativePhase returns -arg(Z(f)) in radians, the SIP phase convention.
func NegativePhase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	return NegativePhaseInto(nil, in)
}

// NegativePhaseInto writes -arg(Z(f)) into dst, reusing its capacity, and
// returns the len(in) result.
func NegativePhaseInto(dst []float64, in []complex128) []float64 {
	dst = core.EnsureLen(dst, len(in))
	for i, c := range in {
		dst[i] = -cmplx.Phase(c)
	}
	return dst
}

// Parts splits a complex spectrum into its real and imaginary parts.
func Parts(in []complex128) (re, im []float64) {
	if len(in) == 0 {
		return nil, nil
	}
	re = make([]float64, len(in))
	im = make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}

// Concat stacks channels into one data vector in argument order.
func Concat(channels ...[]float64) []float64 {
	n := 0
	for _, ch := range channels {
		n += len(ch)
	}
	if n == 0 {
		return nil
	}
	out := make([]float64, 0, n)
	for _, ch := range channels {
		out = append(out, ch...)
	}
	return out
}

// AmplitudePhase returns [|Z|; -arg(Z)] as a single 2*len(in) data vector.
func AmplitudePhase(in []complex128) []float64 {
	n := len(in)
	if n == 0 {
		return nil
	}
	out := make([]float64, 2*n)
	AmplitudeInto(out[:n], in)
	NegativePhaseInto(out[n:], in)
	return out
}

// RealImag returns [Re(Z); Im(Z)] as a single 2*len(in) data vector.
func RealImag(in []complex128) []float64 {
	return Concat(Parts(in))
}

// Unwrap returns a copy of phase with jumps larger than pi between
// neighbouring frequencies removed by adding multiples of 2*pi. The first
// value is kept as is.
func Unwrap(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		if math.Abs(d) > math.Pi {
			offset -= 2 * math.Pi * math.Round(d/(2*math.Pi))
		}
		out[i] = phase[i] + offset
	}
	return out
}
