package relax

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is wrapped by every [*InvalidParameterError].
var ErrInvalidParameter = errors.New("relax: invalid parameter")

// InvalidParameterError reports a model parameter outside its physical range.
type InvalidParameterError struct {
	Name  string
	Value float64
	Bound string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("relax: parameter %s=%g violates %s", e.Name, e.Value, e.Bound)
}

func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }

// ValidateChargeability checks 0 <= m < 1.
func ValidateChargeability(name string, m float64) error {
	if math.IsNaN(m) || m < 0 || m >= 1 {
		return &InvalidParameterError{Name: name, Value: m, Bound: "0 <= m < 1"}
	}
	return nil
}

// ValidatePositive checks v > 0 and finite.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &InvalidParameterError{Name: name, Value: v, Bound: "0 < v < inf"}
	}
	return nil
}

// ValidateExponent checks 0 < c <= 1.
func ValidateExponent(name string, c float64) error {
	if math.IsNaN(c) || c <= 0 || c > 1 {
		return &InvalidParameterError{Name: name, Value: c, Bound: "0 < c <= 1"}
	}
	return nil
}

// ValidateColeCole checks the chargeability, time constant and exponent of a
// single Cole-Cole relaxation and returns the first violation.
func ValidateColeCole(m, tau, c float64) error {
	if err := ValidateChargeability("m", m); err != nil {
		return err
	}
	if err := ValidatePositive("tau", tau); err != nil {
		return err
	}
	return ValidateExponent("c", c)
}
