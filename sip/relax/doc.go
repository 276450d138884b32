// Package relax provides frequency-domain relaxation models for spectral
// induced polarisation (SIP).
//
// Every model is built from a single complex power-law kernel
//
//	T(f) = 1 / (1 + (i*2*pi*f*tau)^c)^a
//
// evaluated with the principal branch of the complex power. On top of it the
// package offers:
//
//   - Cole-Cole resistivity form after Pelton et al. (1978): [ColeColeRho]
//   - Cole-Cole conductivity form: [ColeColeSigma]
//   - exact conversion of time constants between both forms: [TauRhoToTauSigma]
//   - single Debye and Warburg relaxations: [DebyeRelaxation], [WarbugRelaxation]
//   - the original permittivity form of Cole & Cole (1941): [ColeColeEpsilon]
//   - compatibility aliases [ColeCole] and [ColeDavidson]
//
// Spectrum functions take a frequency vector in Hz and return one complex
// value per frequency in the same order. Scalar *At variants evaluate a single
// frequency.
//
// # Out-of-range parameters
//
// The models do not validate their inputs. A chargeability of 1 in the
// conductivity form divides by zero and a zero exponent or non-positive time
// constant yields non-finite values; these propagate as NaN or Inf so that an
// inversion driver can reject the proposal. Callers that prefer an explicit
// failure can run [ValidateColeCole] first, which returns an
// [*InvalidParameterError] naming the violated bound.
package relax
