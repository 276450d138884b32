package forward

import (
	"fmt"

	"github.com/cwbudde/algo-sip/sip/spectrum"
)

// Joint evaluates several operators on one shared parameter vector and
// stacks their data vectors in construction order, as used for joint
// inversion of different data types over the same model.
type Joint struct {
	ops  []Operator
	nPar int
}

// NewJoint combines ops. All operators must expect the same parameter count,
// and each operator's data count must be a whole multiple of its frequency
// count (one block of data per frequency vector).
func NewJoint(ops ...Operator) (*Joint, error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("%w: joint operator needs at least one operator", ErrInvalidArgument)
	}
	n := ops[0].ParameterCount()
	for i, op := range ops {
		if op.ParameterCount() != n {
			return nil, fmt.Errorf("%w: operator %d expects %d parameters, operator 0 expects %d",
				ErrInvalidArgument, i, op.ParameterCount(), n)
		}
		nf, nd := len(op.Frequencies()), op.DataCount()
		if nf == 0 || nd%nf != 0 {
			return nil, fmt.Errorf("%w: operator %d has %d data for %d frequencies",
				ErrInvalidArgument, i, nd, nf)
		}
	}
	return &Joint{ops: append([]Operator(nil), ops...), nPar: n}, nil
}

// Response concatenates the responses of all operators.
func (j *Joint) Response(par []float64) ([]float64, error) {
	parts := make([][]float64, len(j.ops))
	for i, op := range j.ops {
		d, err := op.Response(par)
		if err != nil {
			return nil, fmt.Errorf("forward: joint operator %d: %w", i, err)
		}
		parts[i] = d
	}
	return spectrum.Concat(parts...), nil
}

// CreateJacobian forwards par to every operator.
func (j *Joint) CreateJacobian(par []float64) error {
	for i, op := range j.ops {
		if err := op.CreateJacobian(par); err != nil {
			return fmt.Errorf("forward: joint operator %d: %w", i, err)
		}
	}
	return nil
}

// ParameterCount returns the shared parameter count.
func (j *Joint) ParameterCount() int { return j.nPar }

// DataCount returns the sum of the operators' data counts.
func (j *Joint) DataCount() int {
	n := 0
	for _, op := range j.ops {
		n += op.DataCount()
	}
	return n
}

// Frequencies returns the frequency of every datum of Response, so that
// len(Frequencies()) == DataCount(). An operator with two data blocks per
// frequency, such as [DebyeComplex], contributes its frequency vector twice.
func (j *Joint) Frequencies() []float64 {
	var parts [][]float64
	for _, op := range j.ops {
		f := op.Frequencies()
		for range op.DataCount() / len(f) {
			parts = append(parts, f)
		}
	}
	return spectrum.Concat(parts...)
}
