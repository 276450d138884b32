package relax

import "math"

// ColeColeRhoAt evaluates the Cole-Cole resistivity model after Pelton et al.
// (1978) at a single frequency:
//
//	Z(f) = rho * (1 - m*(1 - T(f, tau, c, a)))
//
// T(0) = 1, so Z tends to rho for f -> 0 and to rho*(1-m) for f -> inf.
func ColeColeRhoAt(f, rho, m, tau, c, a float64) complex128 {
	return complex(rho, 0) * (1 - complex(m, 0)*(1-Term(f, tau, c, a)))
}

// ColeColeSigmaAt evaluates the complex conductivity Cole-Cole model at a
// single frequency:
//
//	sigma(f) = sigma * (1 + m/(1-m)*(1 - T(f, tau, c, a)))
//
// m == 1 divides by zero and yields non-finite values.
func ColeColeSigmaAt(f, sigma, m, tau, c, a float64) complex128 {
	k := m / (1 - m)
	return complex(sigma, 0) * (1 + complex(k, 0)*(1-Term(f, tau, c, a)))
}

// ColeColeRho evaluates [ColeColeRhoAt] for every frequency in f.
// Use a=1 for the standard Cole-Cole model.
func ColeColeRho(f []float64, rho, m, tau, c, a float64) []complex128 {
	if len(f) == 0 {
		return nil
	}
	out := make([]complex128, len(f))
	for i, fi := range f {
		out[i] = ColeColeRhoAt(fi, rho, m, tau, c, a)
	}
	return out
}

// ColeColeSigma evaluates [ColeColeSigmaAt] for every frequency in f.
// Use a=1 for the standard Cole-Cole model.
func ColeColeSigma(f []float64, sigma, m, tau, c, a float64) []complex128 {
	if len(f) == 0 {
		return nil
	}
	out := make([]complex128, len(f))
	for i, fi := range f {
		out[i] = ColeColeSigmaAt(fi, sigma, m, tau, c, a)
	}
	return out
}

// TauRhoToTauSigma converts the resistivity-form time constant to the
// conductivity form:
//
//	tauSigma = tauRho * (1-m)^(1/c)
//
// With this conversion 1/ColeColeSigma(f, 1/rho, m, tauSigma, c, 1) equals
// ColeColeRho(f, rho, m, tauRho, c, 1) exactly.
func TauRhoToTauSigma(tRho, m, c float64) float64 {
	return tRho * math.Pow(1-m, 1/c)
}

// TauSigmaToTauRho is the inverse of [TauRhoToTauSigma].
func TauSigmaToTauRho(tSigma, m, c float64) float64 {
	return tSigma / math.Pow(1-m, 1/c)
}

// DebyeRelaxation returns the normalized single Debye relaxation
// 1 - (1 - T(f, tau, 1, 1))*m for every frequency in f.
func DebyeRelaxation(f []float64, tau, m float64) []complex128 {
	return chargeableTerm(f, tau, m, 1)
}

// WarbugRelaxation returns the normalized Warburg relaxation, a Cole-Cole
// term with c=0.5: 1 - (1 - T(f, tau, 0.5, 1))*m.
func WarbugRelaxation(f []float64, tau, m float64) []complex128 {
	return chargeableTerm(f, tau, m, 0.5)
}

func chargeableTerm(f []float64, tau, m, c float64) []complex128 {
	if len(f) == 0 {
		return nil
	}
	mc := complex(m, 0)
	out := make([]complex128, len(f))
	for i, fi := range f {
		out[i] = 1 - (1-Term(fi, tau, c, 1))*mc
	}
	return out
}

// ColeColeEpsilon evaluates the original complex permittivity formulation of
// Cole & Cole (1941):
//
//	eps(f) = (e0 - eInf) * T(f, tau, 1/alpha, 1) + eInf
func ColeColeEpsilon(f []float64, e0, eInf, tau, alpha float64) []complex128 {
	if len(f) == 0 {
		return nil
	}
	c := 1 / alpha
	de := complex(e0-eInf, 0)
	out := make([]complex128, len(f))
	for i, fi := range f {
		out[i] = de*Term(fi, tau, c, 1) + complex(eInf, 0)
	}
	return out
}

// ColeCole is an alias of [ColeColeRho] kept for compatibility.
func ColeCole(f []float64, rho, m, tau, c, a float64) []complex128 {
	return ColeColeRho(f, rho, m, tau, c, a)
}

// ColeDavidson is [ColeCole] with the exponent fixed to c=1, leaving the
// asymmetry exponent a as the shape parameter.
func ColeDavidson(f []float64, rho, m, tau, a float64) []complex128 {
	return ColeCole(f, rho, m, tau, 1, a)
}
