// Package predictor defines the forward-projection contract and result
// envelopes shared by every long-horizon predictor: given a state estimate
// exported by an observer, project forward to one or more failure events and
// report the trajectories sampled along the way.
package predictor

import (
	"github.com/mvprog/prognostics/udata"
)

// SavePointProvider supplies the ascending times at which a predictor must
// snapshot per-sample system state, independent of the predictor's own
// internal integration step. An empty result means "report nothing besides
// the final time-of-event".
type SavePointProvider interface {
	SavePoints() []float64
}

// FixedSavePoints is a SavePointProvider that always returns the same
// caller-supplied, already-sorted list of times.
type FixedSavePoints []float64

// SavePoints returns the fixed list of save-point times.
func (f FixedSavePoints) SavePoints() []float64 { return []float64(f) }

// ProgEvent is the per-event result of a prediction: a time-of-event
// distribution across samples, plus the health-indicator distribution
// recorded at each save point.
type ProgEvent struct {
	// EventID names the tracked event, per model.PrognosticsModel.Events().
	EventID string
	// TOE is a Samples UData of length sampleCount: the per-sample
	// predicted time of event, or +Inf for samples that didn't cross the
	// threshold within the horizon.
	TOE udata.UData
	// EventState holds one Samples UData per save point, each of length
	// sampleCount: the event-state (health indicator) distribution at that
	// save point.
	EventState []udata.UData
}

// DataPoint is a named predicted-output trajectory: one Samples UData per
// save point, each of length sampleCount.
type DataPoint struct {
	Name   string
	Values []udata.UData
}

// Prediction is the complete result of one predictor.Predict call.
type Prediction struct {
	Events       []ProgEvent
	SavePoints   []float64
	Trajectories []DataPoint
}

// Predictor projects a current state estimate forward to the tracked
// failure events.
type Predictor interface {
	// Predict runs a forward projection starting from (t0, state), where
	// state holds one UData per state dimension in MeanCovar form.
	Predict(t0 float64, state []udata.UData) (Prediction, error)
}
