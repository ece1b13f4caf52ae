package noise

import "fmt"

import (
	"github.com/mvprog/prognostics/matrix"
	"github.com/mvprog/prognostics/progerr"
)

// Zero is a noise channel that always draws zero: zero mean, zero
// covariance, fixed dimension. Useful for exercising an observer or
// predictor deterministically in tests without disabling the noise channel
// entirely.
type Zero struct {
	mean []float64
	cov  matrix.Matrix
}

// NewZero creates Zero noise of the given dimension. It fails with
// DomainError if size is negative.
func NewZero(size int) (*Zero, error) {
	if size < 0 {
		return nil, progerr.NewDomainError("invalid noise dimension: %d", size)
	}
	return &Zero{mean: make([]float64, size), cov: matrix.New(size, size)}, nil
}

// Sample returns a zero-valued column vector of the configured dimension.
func (e *Zero) Sample() matrix.Matrix {
	return matrix.New(len(e.mean), 1)
}

// Cov returns the (all-zero) covariance matrix.
func (e *Zero) Cov() matrix.Matrix {
	return e.cov.Clone()
}

// Mean returns the (all-zero) mean.
func (e *Zero) Mean() []float64 {
	mean := make([]float64, len(e.mean))
	copy(mean, e.mean)
	return mean
}

// Reset is a no-op: Zero has no generator state to reset.
func (e *Zero) Reset() error { return nil }

// String implements the Stringer interface.
func (e *Zero) String() string {
	return fmt.Sprintf("Zero{Mean=%v Cov=%dx%d}", e.Mean(), e.cov.Rows(), e.cov.Cols())
}
