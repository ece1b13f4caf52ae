package fixture

import (
	"github.com/mvprog/prognostics/matrix"
	"github.com/mvprog/prognostics/model"
)

// RandomWalk is the simplest possible non-trivial model: a single scalar
// state observed directly, x' = x + n, z = x + n. It exists purely to give
// the observer packages a cheap, analytically predictable system to check
// one-step convergence against (spec section 8's UKF seed scenario).
type RandomWalk struct {
	fd model.FiniteDifference
}

// NewRandomWalk returns a RandomWalk fixture.
func NewRandomWalk() *RandomWalk {
	r := &RandomWalk{}
	r.fd = model.FiniteDifference{StateFn: r.StateEqn, OutputFn: r.OutputEqn}
	return r
}

// StateSize is 1: a single scalar state.
func (r *RandomWalk) StateSize() int { return 1 }

// InputSize is 0: the random walk has no control input.
func (r *RandomWalk) InputSize() int { return 0 }

// OutputSize is 1: the state is observed directly.
func (r *RandomWalk) OutputSize() int { return 1 }

// StateEqn holds the state constant plus additive process noise.
func (r *RandomWalk) StateEqn(t float64, x, u, n matrix.Matrix, dt float64) (matrix.Matrix, error) {
	return x.Add(n)
}

// OutputEqn observes the state directly plus additive sensor noise.
func (r *RandomWalk) OutputEqn(t float64, x, u, n matrix.Matrix) (matrix.Matrix, error) {
	return x.Add(n)
}

// Initialize returns the first measurement as the initial state estimate.
func (r *RandomWalk) Initialize(u, z matrix.Matrix) (matrix.Matrix, error) {
	return z.Clone(), nil
}

// StateJacobian delegates to the embedded finite-difference helper.
func (r *RandomWalk) StateJacobian(t float64, x, u matrix.Matrix, dt float64) (matrix.Matrix, error) {
	return r.fd.StateJacobian(t, x, u)
}

// OutputJacobian delegates to the embedded finite-difference helper.
func (r *RandomWalk) OutputJacobian(t float64, x, u matrix.Matrix) (matrix.Matrix, error) {
	return r.fd.OutputJacobian(t, x, u)
}
