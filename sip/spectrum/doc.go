// Package spectrum reduces complex SIP spectra to the real-valued observables
// consumed by an inversion driver.
//
// A complex impedance or conductivity spectrum carries one value per
// frequency. Inversion works on real data vectors, so the spectrum is reduced
// to amplitude, phase, or real and imaginary channels. Phase follows the SIP
// convention of reporting the negative argument, so that chargeable,
// phase-lagging media give positive values. Multi-channel data vectors are
// stacked with [Concat], first channel first, keeping the frequency order in
// each block.
package spectrum
