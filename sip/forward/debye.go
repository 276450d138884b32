package forward

import (
	"fmt"
	"math/cmplx"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-sip/sip/core"
	"github.com/cwbudde/algo-sip/sip/grid"
	"github.com/cwbudde/algo-sip/sip/relax"
)

// debyeKernel returns the (2*nf) x nt matrix [A; B] with
//
//	A[i,k] = wt^2 / (wt^2 + 1)
//	B[i,k] = wt   / (wt^2 + 1),  wt = 2*pi*f[i]*t[k]
//
// A + iB is 1 - T(f[i], t[k], 1, 1), the contribution of a unit chargeability
// at t[k] to a Debye decomposition. Rows i and nf+i are filled together, so
// the frequency axis splits across workers without synchronization.
func debyeKernel(f, t []float64, workers int) *mat.Dense {
	nf, nt := len(f), len(t)
	k := mat.NewDense(2*nf, nt, nil)

	fill := func(i int) {
		a := k.RawRowView(i)
		b := k.RawRowView(nf + i)
		w := core.AngularFrequency(f[i])
		for j, tj := range t {
			wt := w * tj
			wt2 := wt * wt
			a[j] = wt2 / (wt2 + 1)
			b[j] = wt / (wt2 + 1)
		}
	}

	if workers <= 1 || nf == 1 {
		for i := range nf {
			fill(i)
		}
		return k
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range nf {
		g.Go(func() error {
			fill(i)
			return nil
		})
	}
	_ = g.Wait()
	return k
}

// readOnly exposes a matrix through the mat.Matrix methods only, so holders
// of the Jacobian cannot reach its backing storage.
type readOnly struct {
	m *mat.Dense
}

func (r readOnly) Dims() (int, int) { return r.m.Dims() }
func (r readOnly) At(i, j int) float64 { return r.m.At(i, j) }
func (r readOnly) T() mat.Matrix { return mat.Transpose{Matrix: r} }

// debyeBinding is the shared state of the Debye decomposition operators.
type debyeBinding struct {
	binding
	t      []float64
	kernel *mat.Dense
}

func newDebyeBinding(f, t []float64, opts []Option) (debyeBinding, error) {
	if err := grid.Validate("t", t); err != nil {
		return debyeBinding{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	b, err := newBinding(f, NewMesh1D(len(t), 1), opts)
	if err != nil {
		return debyeBinding{}, err
	}
	return debyeBinding{
		binding: b,
		t:       core.Clone(t),
		kernel:  debyeKernel(b.f, t, b.cfg.workers),
	}, nil
}

// RelaxationTimes returns a copy of the relaxation-time grid in seconds.
func (d *debyeBinding) RelaxationTimes() []float64 { return core.Clone(d.t) }

func (d *debyeBinding) check(par []float64) error {
	if err := d.checkLen(par, len(d.t)); err != nil {
		return err
	}
	if d.cfg.validate {
		for k, m := range par {
			if err := relax.ValidateChargeability(fmt.Sprintf("m[%d]", k), m); err != nil {
				return err
			}
		}
	}
	return nil
}

// apply returns kernel*par.
func (d *debyeBinding) apply(par []float64) []float64 {
	var y mat.VecDense
	y.MulVec(d.kernel, mat.NewVecDense(len(par), par))
	return y.RawVector().Data
}

// DebyePhi models the negative phase of a smooth Debye decomposition
// (Nordsiek & Weller, 2008):
//
//	phi(f) = -angle(1 - sum_k (1 - T(f, t[k], 1, 1)) * m[k])
//
// Parameters: one chargeability per relaxation time.
type DebyePhi struct {
	debyeBinding
}

// NewDebyePhi binds the frequency vector f (Hz) and the relaxation-time grid
// t (s). Both must be non-empty and non-negative.
func NewDebyePhi(f, t []float64, opts ...Option) (*DebyePhi, error) {
	d, err := newDebyeBinding(f, t, opts)
	if err != nil {
		return nil, err
	}
	return &DebyePhi{debyeBinding: d}, nil
}

// DataCount returns len(f).
func (o *DebyePhi) DataCount() int { return len(o.f) }

// Response returns the negative phase for the chargeabilities par.
func (o *DebyePhi) Response(par []float64) ([]float64, error) {
	if err := o.check(par); err != nil {
		return nil, err
	}
	nf := len(o.f)
	y := o.apply(par)
	out := make([]float64, nf)
	for i := range nf {
		out[i] = -cmplx.Phase(complex(1-y[i], -y[nf+i]))
	}
	return out, nil
}

// DebyeComplex is the linear Debye decomposition operator with an analytic
// Jacobian. Its data vector is J*m, where J is the (2*nf) x nt matrix of
// [debyeKernel]: the first nf rows are the real (amplitude) block, the next
// nf rows the imaginary (phase) block, and column k belongs to t[k].
//
// J is built once at construction and registered with the driver. Because
// the data are linear in m, J does not depend on the parameters.
type DebyeComplex struct {
	debyeBinding
	jacobian readOnly
}

// NewDebyeComplex binds the frequency vector f (Hz) and the relaxation-time
// grid t (s), builds the Jacobian and registers it with the driver.
func NewDebyeComplex(f, t []float64, opts ...Option) (*DebyeComplex, error) {
	d, err := newDebyeBinding(f, t, opts)
	if err != nil {
		return nil, err
	}
	o := &DebyeComplex{debyeBinding: d, jacobian: readOnly{m: d.kernel}}
	o.cfg.modelling.SetJacobian(o.jacobian)
	return o, nil
}

// DataCount returns 2*len(f).
func (o *DebyeComplex) DataCount() int { return 2 * len(o.f) }

// Response returns J*par.
func (o *DebyeComplex) Response(par []float64) ([]float64, error) {
	if err := o.check(par); err != nil {
		return nil, err
	}
	return o.apply(par), nil
}

// CreateJacobian leaves the Jacobian unchanged; it does not depend on par.
func (o *DebyeComplex) CreateJacobian([]float64) error { return nil }

// Jacobian returns a read-only view of the sensitivity matrix. The same view
// is registered with the driver.
func (o *DebyeComplex) Jacobian() mat.Matrix { return o.jacobian }
