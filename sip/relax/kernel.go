package relax

import (
	"math/cmplx"

	"github.com/cwbudde/algo-sip/sip/core"
)

// Term evaluates the elementary relaxation term
//
//	1 / (1 + (i*2*pi*f*tau)^c)^a
//
// at a single frequency f (Hz). The complex power uses the principal branch,
// so (i*w*tau)^c = (w*tau)^c * exp(i*c*pi/2) for w*tau > 0.
func Term(f, tau, c, a float64) complex128 {
	iwt := complex(0, core.AngularFrequency(f)*tau)

	var p complex128
	if c == 1 {
		p = iwt
	} else {
		p = cmplx.Pow(iwt, complex(c, 0))
	}

	d := 1 + p
	if a != 1 {
		d = cmplx.Pow(d, complex(a, 0))
	}
	return 1 / d
}

// RelaxationTerm evaluates [Term] for every frequency in f.
// The result has len(f) entries in the order of f.
func RelaxationTerm(f []float64, tau, c, a float64) []complex128 {
	if len(f) == 0 {
		return nil
	}
	out := make([]complex128, len(f))
	for i, fi := range f {
		out[i] = Term(fi, tau, c, a)
	}
	return out
}

// DebyeTerm is [RelaxationTerm] with c=1 and a=1.
func DebyeTerm(f []float64, tau float64) []complex128 {
	return RelaxationTerm(f, tau, 1, 1)
}

// CharacteristicFrequency returns 1/(2*pi*tau), the frequency where a Debye
// relaxation (c=1) reaches its imaginary-part extremum.
func CharacteristicFrequency(tau float64) float64 {
	return 1 / core.AngularFrequency(tau)
}
