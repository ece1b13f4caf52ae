package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvprog/prognostics/matrix"
)

func TestRandomWalkStateEqnAddsNoise(t *testing.T) {
	rw := NewRandomWalk()
	x, err := matrix.NewFromData(1, 1, []float64{5})
	require.NoError(t, err)
	n, err := matrix.NewFromData(1, 1, []float64{0.5})
	require.NoError(t, err)
	u := matrix.New(0, 1)

	next, err := rw.StateEqn(0, x, u, n, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.5, next.At(0, 0))
}

func TestRandomWalkInitializeUsesMeasurement(t *testing.T) {
	rw := NewRandomWalk()
	u := matrix.New(0, 1)
	z, err := matrix.NewFromData(1, 1, []float64{3.2})
	require.NoError(t, err)

	x0, err := rw.Initialize(u, z)
	require.NoError(t, err)
	assert.Equal(t, 3.2, x0.At(0, 0))
}

func TestBatteryDims(t *testing.T) {
	b := NewBattery()
	assert.Equal(t, 3, b.StateSize())
	assert.Equal(t, 1, b.InputSize())
	assert.Equal(t, 1, b.OutputSize())
}

func TestBatteryOutputEqnProducesPlausibleVoltage(t *testing.T) {
	b := NewBattery()
	x := b.InitialState()
	u, err := matrix.NewFromData(1, 1, []float64{8})
	require.NoError(t, err)

	z, err := b.OutputEqn(0, x, u, matrix.New(1, 1))
	require.NoError(t, err)
	assert.Greater(t, z.At(0, 0), 10.0)
	assert.Less(t, z.At(0, 0), 14.0)
}

func TestBatteryEventStateIsStateOfCharge(t *testing.T) {
	b := NewBattery()
	x := b.InitialState()
	es, err := b.EventStateEqn(x)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, es, 1e-9)
}

func TestBatteryThresholdEqnFalseAtFullCharge(t *testing.T) {
	b := NewBattery()
	x := b.InitialState()
	u, err := matrix.NewFromData(1, 1, []float64{8})
	require.NoError(t, err)

	crossed, err := b.ThresholdEqn(0, x, u)
	require.NoError(t, err)
	assert.False(t, crossed)
}

func TestBatteryDischargesSOCOverTime(t *testing.T) {
	b := NewBattery()
	x := b.InitialState()
	u, err := matrix.NewFromData(1, 1, []float64{8})
	require.NoError(t, err)

	next, err := b.StateEqn(0, x, u, matrix.New(3, 1), 100)
	require.NoError(t, err)
	assert.Less(t, next.At(1, 0), x.At(1, 0))
}
