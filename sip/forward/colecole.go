package forward

import (
	"github.com/cwbudde/algo-sip/sip/relax"
	"github.com/cwbudde/algo-sip/sip/spectrum"
)

// ColeColePhi models the negative phase of a Cole-Cole impedance with
// rho=1 after Pelton et al. (1978). Parameters: m, tau, c.
type ColeColePhi struct {
	binding
}

// NewColeColePhi binds the frequency vector f (Hz).
func NewColeColePhi(f []float64, opts ...Option) (*ColeColePhi, error) {
	b, err := newBinding(f, NewMesh1D(1, 3), opts)
	if err != nil {
		return nil, err
	}
	return &ColeColePhi{binding: b}, nil
}

// DataCount returns len(f).
func (o *ColeColePhi) DataCount() int { return len(o.f) }

// Response returns -angle(ColeCole(f, 1, m, tau, c)).
func (o *ColeColePhi) Response(par []float64) ([]float64, error) {
	if err := o.checkLen(par, 3); err != nil {
		return nil, err
	}
	if o.cfg.validate {
		if err := validateColeCole("", par[0], par[1], par[2]); err != nil {
			return nil, err
		}
	}
	spec := relax.ColeCole(o.f, 1, par[0], par[1], par[2], 1)
	return spectrum.NegativePhase(spec), nil
}

// DoubleColeColePhi models the negative phase of the product of two
// Cole-Cole impedances with rho=1. Parameters: m1, tau1, c1, m2, tau2, c2.
type DoubleColeColePhi struct {
	binding
}

// NewDoubleColeColePhi binds the frequency vector f (Hz).
func NewDoubleColeColePhi(f []float64, opts ...Option) (*DoubleColeColePhi, error) {
	b, err := newBinding(f, NewMesh1D(1, 6), opts)
	if err != nil {
		return nil, err
	}
	return &DoubleColeColePhi{binding: b}, nil
}

// DataCount returns len(f).
func (o *DoubleColeColePhi) DataCount() int { return len(o.f) }

// Response returns -angle(Z1*Z2).
func (o *DoubleColeColePhi) Response(par []float64) ([]float64, error) {
	if err := o.checkLen(par, 6); err != nil {
		return nil, err
	}
	if o.cfg.validate {
		if err := validateColeCole("1", par[0], par[1], par[2]); err != nil {
			return nil, err
		}
		if err := validateColeCole("2", par[3], par[4], par[5]); err != nil {
			return nil, err
		}
	}
	spec := relax.ColeCole(o.f, 1, par[0], par[1], par[2], 1)
	spec2 := relax.ColeCole(o.f, 1, par[3], par[4], par[5], 1)
	for i := range spec {
		spec[i] *= spec2[i]
	}
	return spectrum.NegativePhase(spec), nil
}

// ColeColeAbs models the amplitude of a Cole-Cole impedance.
// Parameters: rho, m, tau, c.
type ColeColeAbs struct {
	binding
}

// NewColeColeAbs binds the frequency vector f (Hz).
func NewColeColeAbs(f []float64, opts ...Option) (*ColeColeAbs, error) {
	b, err := newBinding(f, NewMesh1D(1, 4), opts)
	if err != nil {
		return nil, err
	}
	return &ColeColeAbs{binding: b}, nil
}

// DataCount returns len(f).
func (o *ColeColeAbs) DataCount() int { return len(o.f) }

// Response returns |ColeCole(f, rho, m, tau, c)|.
func (o *ColeColeAbs) Response(par []float64) ([]float64, error) {
	if err := o.checkLen(par, 4); err != nil {
		return nil, err
	}
	if o.cfg.validate {
		if err := relax.ValidatePositive("rho", par[0]); err != nil {
			return nil, err
		}
		if err := validateColeCole("", par[1], par[2], par[3]); err != nil {
			return nil, err
		}
	}
	spec := relax.ColeCole(o.f, par[0], par[1], par[2], par[3], 1)
	return spectrum.Amplitude(spec), nil
}

// ColeColeComplex models a complex Cole-Cole impedance as stacked amplitude
// and negative phase. Parameters: rho, m, tau, c and optionally a (default 1).
type ColeColeComplex struct {
	binding
}

// NewColeColeComplex binds the frequency vector f (Hz).
func NewColeColeComplex(f []float64, opts ...Option) (*ColeColeComplex, error) {
	b, err := newBinding(f, NewMesh1D(1, 4), opts)
	if err != nil {
		return nil, err
	}
	return &ColeColeComplex{binding: b}, nil
}

// DataCount returns 2*len(f).
func (o *ColeColeComplex) DataCount() int { return 2 * len(o.f) }

// Response returns [|Z|; -angle(Z)] with Z = ColeColeRho(f, rho, m, tau, c, a).
func (o *ColeColeComplex) Response(par []float64) ([]float64, error) {
	rho, m, tau, c, a, err := o.unpack(par, "rho")
	if err != nil {
		return nil, err
	}
	return spectrum.AmplitudePhase(relax.ColeColeRho(o.f, rho, m, tau, c, a)), nil
}

// ColeColeComplexSigma models a complex Cole-Cole conductivity as stacked
// real and imaginary parts. Parameters: sigma, m, tau, c and optionally a
// (default 1).
type ColeColeComplexSigma struct {
	binding
}

// NewColeColeComplexSigma binds the frequency vector f (Hz).
func NewColeColeComplexSigma(f []float64, opts ...Option) (*ColeColeComplexSigma, error) {
	b, err := newBinding(f, NewMesh1D(1, 4), opts)
	if err != nil {
		return nil, err
	}
	return &ColeColeComplexSigma{binding: b}, nil
}

// DataCount returns 2*len(f).
func (o *ColeColeComplexSigma) DataCount() int { return 2 * len(o.f) }

// Response returns [Re(sigma(f)); Im(sigma(f))] with
// sigma(f) = ColeColeSigma(f, sigma, m, tau, c, a).
func (o *ColeColeComplexSigma) Response(par []float64) ([]float64, error) {
	sigma, m, tau, c, a, err := o.unpack(par, "sigma")
	if err != nil {
		return nil, err
	}
	return spectrum.RealImag(relax.ColeColeSigma(o.f, sigma, m, tau, c, a)), nil
}

// unpack splits a 4- or 5-entry parameter vector of the complex operators.
func (b *binding) unpack(par []float64, scaleName string) (scale, m, tau, c, a float64, err error) {
	if err = b.checkLen(par, 4, 5); err != nil {
		return
	}
	scale, m, tau, c, a = par[0], par[1], par[2], par[3], 1
	if len(par) == 5 {
		a = par[4]
	}
	if b.cfg.validate {
		if err = relax.ValidatePositive(scaleName, scale); err != nil {
			return
		}
		if err = validateColeCole("", m, tau, c); err != nil {
			return
		}
		err = relax.ValidatePositive("a", a)
	}
	return
}

// PeltonPhiEM models the negative phase of a Cole-Cole impedance with rho=1
// multiplied by a Debye term for inductive electromagnetic coupling.
// Parameters: m, tau, c, tauEM.
type PeltonPhiEM struct {
	binding
}

// NewPeltonPhiEM binds the frequency vector f (Hz).
func NewPeltonPhiEM(f []float64, opts ...Option) (*PeltonPhiEM, error) {
	b, err := newBinding(f, NewMesh1D(1, 4), opts)
	if err != nil {
		return nil, err
	}
	return &PeltonPhiEM{binding: b}, nil
}

// DataCount returns len(f).
func (o *PeltonPhiEM) DataCount() int { return len(o.f) }

// Response returns -angle(ColeCole(f, 1, m, tau, c) * T(f, tauEM, 1, 1)).
func (o *PeltonPhiEM) Response(par []float64) ([]float64, error) {
	if err := o.checkLen(par, 4); err != nil {
		return nil, err
	}
	if o.cfg.validate {
		if err := validateColeCole("", par[0], par[1], par[2]); err != nil {
			return nil, err
		}
		if err := relax.ValidatePositive("tauEM", par[3]); err != nil {
			return nil, err
		}
	}
	spec := make([]complex128, len(o.f))
	for i, fi := range o.f {
		// pure EM coupling has c=1
		spec[i] = relax.ColeColeRhoAt(fi, 1, par[0], par[1], par[2], 1) * relax.Term(fi, par[3], 1, 1)
	}
	return spectrum.NegativePhase(spec), nil
}

func validateColeCole(suffix string, m, tau, c float64) error {
	if err := relax.ValidateChargeability("m"+suffix, m); err != nil {
		return err
	}
	if err := relax.ValidatePositive("tau"+suffix, tau); err != nil {
		return err
	}
	return relax.ValidateExponent("c"+suffix, c)
}
