// Package observer defines the state-observer contract shared by the
// Unscented Kalman Filter (package ukf) and Particle Filter (package pf):
// a single-consumer, strictly-monotonic-time state estimator that fuses a
// model's predictions with incoming measurements.
package observer

import (
	"github.com/mvprog/prognostics/matrix"
	"github.com/mvprog/prognostics/udata"
)

// Observer is the lifecycle every state estimator in this module follows:
// Uninitialized until Initialize succeeds, then Running until destroyed.
// There is no terminal state.
type Observer interface {
	// Initialize seeds the observer's internal state from an initial state
	// x0 and input u0 at time t0.
	Initialize(t0 float64, x0, u0 matrix.Matrix) error
	// Step fuses one new (t, u, z) triple into the observer's state
	// estimate. It fails with NotInitialized if called before Initialize,
	// and with BadInput if t does not strictly advance past the last
	// accepted time.
	Step(t float64, u, z matrix.Matrix) error
	// StateEstimate exports the current state estimate as one UData per
	// state dimension, shaped per the concrete observer's convention
	// (MeanCovar for the UKF, WeightedSamples for the particle filter).
	StateEstimate() ([]udata.UData, error)
}
