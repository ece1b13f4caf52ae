// Package model defines the state-space model contract that observers and
// the Monte-Carlo predictor are built against, plus a finite-difference
// Jacobian helper models can embed instead of hand-deriving analytic ones.
package model

import (
	"github.com/mvprog/prognostics/matrix"
)

// Model is a discrete-time, generally non-linear state-space system. Every
// method is a pure function of its arguments plus the supplied noise
// vector; implementations must not carry hidden mutable state across calls.
type Model interface {
	// StateEqn advances state x at time t to time t+dt given input u and
	// additive process noise n.
	StateEqn(t float64, x, u, n matrix.Matrix, dt float64) (matrix.Matrix, error)
	// OutputEqn predicts a measurement from state x, input u and additive
	// sensor noise n.
	OutputEqn(t float64, x, u, n matrix.Matrix) (matrix.Matrix, error)
	// Initialize produces an initial state estimate from a first input and
	// measurement pair, by closed-form or iterative inversion.
	Initialize(u, z matrix.Matrix) (matrix.Matrix, error)
	// StateSize, InputSize and OutputSize report the fixed dimensions this
	// model was constructed for.
	StateSize() int
	InputSize() int
	OutputSize() int
}

// JacobianModel is implemented by models that provide Jacobians, either
// analytically or via the embedded FiniteDifference helper.
type JacobianModel interface {
	Model
	// StateJacobian returns d(StateEqn)/dx evaluated at (t, x, u, dt).
	StateJacobian(t float64, x, u matrix.Matrix, dt float64) (matrix.Matrix, error)
	// OutputJacobian returns d(OutputEqn)/dx evaluated at (t, x, u).
	OutputJacobian(t float64, x, u matrix.Matrix) (matrix.Matrix, error)
}

// PrognosticsModel augments Model with the event and predicted-output
// machinery the Monte-Carlo predictor needs: a boolean threshold equation,
// a continuous health indicator, and a vector of quantities to report at
// each save point.
type PrognosticsModel interface {
	Model
	// ThresholdEqn reports whether the tracked failure event has occurred
	// in state x under input u at time t.
	ThresholdEqn(t float64, x, u matrix.Matrix) (bool, error)
	// EventStateEqn returns a monotonic health indicator in [0,1], 1 being
	// "no degradation observed" and 0 being "threshold reached".
	EventStateEqn(x matrix.Matrix) (float64, error)
	// PredictedOutputEqn computes the reportable quantities of interest at
	// a save point, distinct from the sensor-facing OutputEqn.
	PredictedOutputEqn(t float64, x, u matrix.Matrix) (matrix.Matrix, error)
	// Events names the tracked failure events, in TOE/ProgEvent order.
	Events() []string
	// PredictedOutputs names the rows of PredictedOutputEqn's result.
	PredictedOutputs() []string
}

// defaultEpsilon is the step size FiniteDifference uses when the embedding
// model doesn't override it.
const defaultEpsilon = 0.01

// defaultDt is the step size FiniteDifference uses for StateJacobian when
// the embedding model doesn't override it.
const defaultDt = 1.0

// FiniteDifference is an embeddable helper that implements StateJacobian
// and OutputJacobian by central difference, so a model only has to supply
// StateEqn/OutputEqn to become a JacobianModel. Embed it by value and wire
// its StateFn/OutputFn fields to the host model's own equations.
type FiniteDifference struct {
	// StateFn and OutputFn close over the host model so FiniteDifference
	// can perturb state without depending on the Model interface directly
	// (avoids an import cycle between the helper and its host).
	StateFn  func(t float64, x, u, n matrix.Matrix, dt float64) (matrix.Matrix, error)
	OutputFn func(t float64, x, u, n matrix.Matrix) (matrix.Matrix, error)
	// Epsilon is the perturbation step; defaults to 0.01 if zero.
	Epsilon float64
	// Dt is the propagation step used by StateJacobian; defaults to 1.0 if
	// zero.
	Dt float64
}

func (fd FiniteDifference) epsilon() float64 {
	if fd.Epsilon == 0 {
		return defaultEpsilon
	}
	return fd.Epsilon
}

func (fd FiniteDifference) dt() float64 {
	if fd.Dt == 0 {
		return defaultDt
	}
	return fd.Dt
}

// StateJacobian returns d(StateFn)/dx by central difference: each state
// dimension is perturbed by +-epsilon/2, StateFn is evaluated at both
// perturbed states with zero process noise, and the scaled difference
// becomes one column of the Jacobian.
func (fd FiniteDifference) StateJacobian(t float64, x, u matrix.Matrix) (matrix.Matrix, error) {
	n := x.Rows()
	zeroNoise := matrix.New(n, 1)
	eps := fd.epsilon()
	jac := matrix.New(n, n)
	for j := 0; j < n; j++ {
		plus := x.Clone()
		plus.Set(j, 0, plus.At(j, 0)+eps/2)
		minus := x.Clone()
		minus.Set(j, 0, minus.At(j, 0)-eps/2)

		xPlus, err := fd.StateFn(t, plus, u, zeroNoise, fd.dt())
		if err != nil {
			return matrix.Matrix{}, err
		}
		xMinus, err := fd.StateFn(t, minus, u, zeroNoise, fd.dt())
		if err != nil {
			return matrix.Matrix{}, err
		}
		diff, err := xPlus.Sub(xMinus)
		if err != nil {
			return matrix.Matrix{}, err
		}
		for i := 0; i < n; i++ {
			jac.Set(i, j, diff.At(i, 0)/eps)
		}
	}
	return jac, nil
}

// OutputJacobian returns d(OutputFn)/dx by the same central-difference
// recipe as StateJacobian, but against OutputFn and with output-sized zero
// noise.
func (fd FiniteDifference) OutputJacobian(t float64, x, u matrix.Matrix) (matrix.Matrix, error) {
	n := x.Rows()
	eps := fd.epsilon()

	probe, err := fd.OutputFn(t, x, u, matrix.New(1, 1))
	if err != nil {
		return matrix.Matrix{}, err
	}
	ny := probe.Rows()
	zeroNoise := matrix.New(ny, 1)

	jac := matrix.New(ny, n)
	for j := 0; j < n; j++ {
		plus := x.Clone()
		plus.Set(j, 0, plus.At(j, 0)+eps/2)
		minus := x.Clone()
		minus.Set(j, 0, minus.At(j, 0)-eps/2)

		zPlus, err := fd.OutputFn(t, plus, u, zeroNoise)
		if err != nil {
			return matrix.Matrix{}, err
		}
		zMinus, err := fd.OutputFn(t, minus, u, zeroNoise)
		if err != nil {
			return matrix.Matrix{}, err
		}
		diff, err := zPlus.Sub(zMinus)
		if err != nil {
			return matrix.Matrix{}, err
		}
		for i := 0; i < ny; i++ {
			jac.Set(i, j, diff.At(i, 0)/eps)
		}
	}
	return jac, nil
}
