package forward

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-sip/sip/core"
	"github.com/cwbudde/algo-sip/sip/grid"
)

// ErrInvalidArgument reports an invalid grid or a parameter vector of the
// wrong length.
var ErrInvalidArgument = errors.New("forward: invalid argument")

// Operator maps model parameters to a synthetic data vector.
type Operator interface {
	// Response returns the data vector for par. It does not retain par.
	Response(par []float64) ([]float64, error)

	// CreateJacobian refreshes the sensitivity matrix for par. Operators
	// without an analytic Jacobian return nil and leave differentiation to
	// the driver.
	CreateJacobian(par []float64) error

	// ParameterCount returns the expected length of par.
	ParameterCount() int

	// DataCount returns the length of the data vector.
	DataCount() int

	// Frequencies returns a copy of the frequency vector in Hz.
	Frequencies() []float64
}

// Mesh1D describes the one-dimensional parameter discretization registered
// with the driver: Cells cells carrying Properties values each.
type Mesh1D struct {
	Cells      int
	Properties int
}

// NewMesh1D returns a mesh of cells cells with properties values each.
func NewMesh1D(cells, properties int) Mesh1D {
	return Mesh1D{Cells: cells, Properties: properties}
}

// ParameterCount returns Cells*Properties.
func (m Mesh1D) ParameterCount() int {
	return m.Cells * m.Properties
}

// Modelling is the registration hook of an inversion driver.
type Modelling interface {
	SetMesh(mesh Mesh1D)
	SetJacobian(j mat.Matrix)
}

// Base is the default [Modelling] implementation. It records the registered
// mesh and Jacobian.
type Base struct {
	mesh     Mesh1D
	jacobian mat.Matrix
}

// SetMesh records mesh.
func (b *Base) SetMesh(mesh Mesh1D) { b.mesh = mesh }

// SetJacobian records j.
func (b *Base) SetJacobian(j mat.Matrix) { b.jacobian = j }

// Mesh returns the registered mesh.
func (b *Base) Mesh() Mesh1D { return b.mesh }

// Jacobian returns the registered Jacobian, or nil.
func (b *Base) Jacobian() mat.Matrix { return b.jacobian }

type config struct {
	modelling Modelling
	validate  bool
	workers   int
}

// Option configures an operator at construction.
type Option func(*config)

// WithModelling attaches the driver hook that receives the mesh and, for
// [DebyeComplex], the Jacobian.
func WithModelling(m Modelling) Option {
	return func(cfg *config) {
		if m != nil {
			cfg.modelling = m
		}
	}
}

// WithValidation makes Response reject physically invalid parameter values
// with a *relax.InvalidParameterError instead of returning NaN or Inf.
func WithValidation() Option {
	return func(cfg *config) {
		cfg.validate = true
	}
}

// WithWorkers sets the number of goroutines used to build Debye sensitivity
// kernels. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{workers: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.modelling == nil {
		cfg.modelling = &Base{}
	}
	return cfg
}

// binding holds the construction-time state shared by all operators.
type binding struct {
	f    []float64
	mesh Mesh1D
	cfg  config
}

func newBinding(f []float64, mesh Mesh1D, opts []Option) (binding, error) {
	if err := grid.Validate("f", f); err != nil {
		return binding{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	b := binding{
		f:    core.Clone(f),
		mesh: mesh,
		cfg:  applyOptions(opts),
	}
	b.cfg.modelling.SetMesh(mesh)
	return b, nil
}

// Frequencies returns a copy of the frequency vector.
func (b *binding) Frequencies() []float64 { return core.Clone(b.f) }

// ParameterCount returns the parameter count of the registered mesh.
func (b *binding) ParameterCount() int { return b.mesh.ParameterCount() }

// CreateJacobian is a no-op; the driver differentiates numerically.
func (b *binding) CreateJacobian([]float64) error { return nil }

func (b *binding) checkLen(par []float64, allowed ...int) error {
	for _, n := range allowed {
		if len(par) == n {
			return nil
		}
	}
	return fmt.Errorf("%w: got %d parameters, want %v", ErrInvalidArgument, len(par), allowed)
}
