// Package forward wraps the relaxation models of package relax as forward
// operators for a gradient-based inversion driver.
//
// Every operator implements [Operator]: it binds a frequency vector at
// construction and maps a parameter vector to a real data vector with
// Response. Operators differ only in parameterization and observable:
//
//	Operator               parameters                 data (nf = len(f))
//	ColeColePhi            m, tau, c                  -phase, nf
//	DoubleColeColePhi      m1, tau1, c1, m2, tau2, c2 -phase of Z1*Z2, nf
//	ColeColeAbs            rho, m, tau, c             amplitude, nf
//	ColeColeComplex        rho, m, tau, c [, a]       amplitude; -phase, 2nf
//	ColeColeComplexSigma   sigma, m, tau, c [, a]     real; imag, 2nf
//	PeltonPhiEM            m, tau, c, tauEM           -phase with EM coupling, nf
//	DebyePhi               m_k per relaxation time    -phase, nf
//	DebyeComplex           m_k per relaxation time    [A; B]*m, 2nf
//
// # Driver hook
//
// An inversion driver participates through [Modelling]. At construction each
// operator registers a [Mesh1D] sized to its parameter count, and
// [DebyeComplex] additionally registers its sensitivity matrix. Without
// [WithModelling] an internal [Base] records both.
//
// # Jacobians
//
// Only [DebyeComplex] carries an analytic Jacobian. Its data are linear in the
// chargeabilities, so the matrix is built once from the frequency and
// relaxation-time grids and Response is the matrix-vector product with it.
// The other operators expose an inert CreateJacobian; the driver is expected
// to differentiate them numerically.
//
// # Errors
//
// Empty or negative grids fail construction and a parameter vector of the
// wrong length fails Response, both with [ErrInvalidArgument]. Parameter
// values are not checked unless [WithValidation] is given, so out-of-range
// values propagate as NaN or Inf.
//
// Operators are immutable after construction and safe for concurrent
// Response calls.
package forward
