package noise

import "fmt"

import "github.com/mvprog/prognostics/matrix"

// None is the absence of a noise channel: zero-length mean, zero-size
// covariance. Used by models that declare no process or sensor noise at
// all, as distinct from Zero's "noise channel exists but always draws 0".
type None struct{}

// NewNone creates None noise.
func NewNone() (*None, error) {
	return &None{}, nil
}

// Sample returns a zero-length column vector.
func (e *None) Sample() matrix.Matrix {
	return matrix.New(0, 1)
}

// Cov returns a zero-size covariance matrix.
func (e *None) Cov() matrix.Matrix {
	return matrix.New(0, 0)
}

// Mean returns a zero-length mean.
func (e *None) Mean() []float64 {
	return nil
}

// Reset is a no-op: None has no state to reset.
func (e *None) Reset() error { return nil }

// String implements the Stringer interface.
func (e *None) String() string {
	return fmt.Sprintf("None{Mean=%v Cov=0x0}", e.Mean())
}
