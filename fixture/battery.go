// Package fixture provides concrete model.Model / model.PrognosticsModel
// implementations used as test and demo fixtures: a small linear system
// for observer convergence tests, and a simplified equivalent-circuit
// battery model for the end-to-end Monte-Carlo prognosis scenario.
package fixture

import (
	"math"

	"github.com/mvprog/prognostics/matrix"
	"github.com/mvprog/prognostics/model"
	"github.com/mvprog/prognostics/progerr"
)

// Battery is a simplified equivalent-circuit discharge model with three
// states (internal resistance, state of charge, critical energy), one
// input (load power draw) and one output (terminal voltage). It tracks a
// single event, end-of-discharge, defined as terminal voltage dropping to
// a cutoff.
type Battery struct {
	fd model.FiniteDifference

	vL, gamma, beta, lambda, mu float64
	veod                        float64
	minRint, maxRint            float64
	minSOC, maxSOC               float64
	minEcrit, maxEcrit          float64
}

// NewBattery returns a Battery fixture parameterized with the reference
// cell constants used by the single-cell discharge scenario (spec section
// 8, scenario 6).
func NewBattery() *Battery {
	b := &Battery{
		vL:       11.1484939314367,
		gamma:    3.35528174473004,
		beta:     8.48265208876828,
		lambda:   0.0463517799905509,
		mu:       2.75931102946793,
		veod:     10.3,
		minRint:  0,
		maxRint:  math.Inf(1),
		minSOC:   0,
		maxSOC:   1,
		minEcrit: 0,
		maxEcrit: 203796,
	}
	b.fd = model.FiniteDifference{StateFn: b.StateEqn, OutputFn: b.OutputEqn}
	return b
}

// StateSize reports the 3 battery states: Rint, SOC, Ecrit.
func (b *Battery) StateSize() int { return 3 }

// InputSize reports the single load-power input.
func (b *Battery) InputSize() int { return 1 }

// OutputSize reports the single terminal-voltage output.
func (b *Battery) OutputSize() int { return 1 }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// StateEqn advances (Rint, SOC, Ecrit) by dt under load power u[0]: Rint
// and Ecrit are held constant, SOC is drawn down proportional to power
// over remaining energy, and additive process noise n is scaled by dt.
func (b *Battery) StateEqn(t float64, x, u, n matrix.Matrix, dt float64) (matrix.Matrix, error) {
	if x.Rows() != 3 || x.Cols() != 1 {
		return matrix.Matrix{}, progerr.NewBadInput("battery state must be 3x1, got %dx%d", x.Rows(), x.Cols())
	}
	rint, soc, ecrit := x.At(0, 0), x.At(1, 0), x.At(2, 0)
	p := u.At(0, 0)

	next := matrix.New(3, 1)
	next.Set(0, 0, rint+dt*n.At(0, 0))
	next.Set(1, 0, soc-p*dt/ecrit+dt*n.At(1, 0))
	next.Set(2, 0, ecrit+dt*n.At(2, 0))

	next.Set(0, 0, clamp(next.At(0, 0), b.minRint, b.maxRint))
	next.Set(1, 0, clamp(next.At(1, 0), b.minSOC, b.maxSOC))
	next.Set(2, 0, clamp(next.At(2, 0), b.minEcrit, b.maxEcrit))
	return next, nil
}

// openCircuitVoltage returns the open-circuit voltage at the given state
// of charge.
func (b *Battery) openCircuitVoltage(soc float64) float64 {
	return b.vL + b.lambda*math.Exp(b.gamma*soc) - b.mu*math.Exp(-b.beta*math.Sqrt(soc))
}

// OutputEqn predicts terminal voltage from state x and load power u[0],
// solving the internal-resistance quadratic for discharge current.
func (b *Battery) OutputEqn(t float64, x, u, n matrix.Matrix) (matrix.Matrix, error) {
	if x.Rows() != 3 || x.Cols() != 1 {
		return matrix.Matrix{}, progerr.NewBadInput("battery state must be 3x1, got %dx%d", x.Rows(), x.Cols())
	}
	rint, soc := x.At(0, 0), x.At(1, 0)
	p := u.At(0, 0)

	voc := b.openCircuitVoltage(soc)
	a, bb, c := rint, -voc, p
	current := -(bb + math.Sqrt(bb*bb-4*a*c)) / (2 * a)
	vm := voc - current*rint

	z := matrix.New(1, 1)
	z.Set(0, 0, vm+n.At(0, 0))
	return z, nil
}

// Initialize infers an initial state from a first load/voltage pair by
// scanning state of charge downward from full charge until the implied
// open-circuit voltage matches the observed terminal voltage, matching the
// reference implementation's closed-form-by-search initialization.
func (b *Battery) Initialize(u, z matrix.Matrix) (matrix.Matrix, error) {
	p, vm := u.At(0, 0), z.At(0, 0)
	rint0 := 0.0273193836397481
	ecrit0 := 202426.858437571

	current := p / vm
	vDrop := current * rint0

	soc := 1.0
	const step = 1e-4
	for s := 1.0; s >= 0; s -= step {
		voc := b.openCircuitVoltage(s)
		if voc-vDrop <= vm {
			soc = s
			break
		}
	}

	x0 := matrix.New(3, 1)
	x0.Set(0, 0, rint0)
	x0.Set(1, 0, soc)
	x0.Set(2, 0, ecrit0)
	return x0, nil
}

// StateJacobian delegates to the embedded finite-difference helper.
func (b *Battery) StateJacobian(t float64, x, u matrix.Matrix, dt float64) (matrix.Matrix, error) {
	b.fd.Dt = dt
	return b.fd.StateJacobian(t, x, u)
}

// OutputJacobian delegates to the embedded finite-difference helper.
func (b *Battery) OutputJacobian(t float64, x, u matrix.Matrix) (matrix.Matrix, error) {
	return b.fd.OutputJacobian(t, x, u)
}

// ThresholdEqn reports end-of-discharge: terminal voltage at or below the
// configured cutoff.
func (b *Battery) ThresholdEqn(t float64, x, u matrix.Matrix) (bool, error) {
	z, err := b.OutputEqn(t, x, u, matrix.New(1, 1))
	if err != nil {
		return false, err
	}
	return z.At(0, 0) <= b.veod, nil
}

// EventStateEqn returns state of charge directly: it is already a [0,1]
// health indicator where 1 means fully charged and 0 means depleted.
func (b *Battery) EventStateEqn(x matrix.Matrix) (float64, error) {
	return x.At(1, 0), nil
}

// PredictedOutputEqn reports state of charge and terminal voltage as the
// quantities of interest at a save point.
func (b *Battery) PredictedOutputEqn(t float64, x, u matrix.Matrix) (matrix.Matrix, error) {
	z, err := b.OutputEqn(t, x, u, matrix.New(1, 1))
	if err != nil {
		return matrix.Matrix{}, err
	}
	out := matrix.New(2, 1)
	out.Set(0, 0, x.At(1, 0))
	out.Set(1, 0, z.At(0, 0))
	return out, nil
}

// Events names the single tracked failure event.
func (b *Battery) Events() []string { return []string{"EOD"} }

// PredictedOutputs names the rows of PredictedOutputEqn's result.
func (b *Battery) PredictedOutputs() []string { return []string{"SOC", "Voltage"} }

// InitialState returns the reference initial state mean used when no
// measurement-based initialization is available, e.g. synthetic test
// scenarios.
func (b *Battery) InitialState() matrix.Matrix {
	x0 := matrix.New(3, 1)
	x0.Set(0, 0, 0.0273193836397481)
	x0.Set(1, 0, 1.0)
	x0.Set(2, 0, 202426.858437571)
	return x0
}
