package ukf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvprog/prognostics/fixture"
	"github.com/mvprog/prognostics/matrix"
	"github.com/mvprog/prognostics/progerr"
	"github.com/mvprog/prognostics/udata"
)

func diag(v float64) matrix.Matrix {
	m, _ := matrix.NewFromData(1, 1, []float64{v})
	return m
}

func TestNewRejectsMismatchedQ(t *testing.T) {
	rw := fixture.NewRandomWalk()
	badQ := matrix.New(2, 2)
	_, err := New(rw, badQ, diag(0.01), Config{})
	require.Error(t, err)
	var bc *progerr.BadConfig
	assert.ErrorAs(t, err, &bc)
}

func TestNewRejectsMismatchedR(t *testing.T) {
	rw := fixture.NewRandomWalk()
	badR := matrix.New(2, 2)
	_, err := New(rw, diag(0.01), badR, Config{})
	require.Error(t, err)
	var bc *progerr.BadConfig
	assert.ErrorAs(t, err, &bc)
}

func TestStepBeforeInitializeFails(t *testing.T) {
	rw := fixture.NewRandomWalk()
	k, err := New(rw, diag(0.01), diag(0.01), Config{})
	require.NoError(t, err)

	u := matrix.New(0, 1)
	z := diag(1.0)
	err = k.Step(1, u, z)
	require.Error(t, err)
	var ni *progerr.NotInitialized
	assert.ErrorAs(t, err, &ni)
}

func TestStepRejectsNonAdvancingTime(t *testing.T) {
	rw := fixture.NewRandomWalk()
	k, err := New(rw, diag(0.01), diag(0.01), Config{})
	require.NoError(t, err)

	u := matrix.New(0, 1)
	z0 := diag(1.0)
	require.NoError(t, k.Initialize(0, z0, u))

	err = k.Step(0, u, z0)
	require.Error(t, err)
	var bi *progerr.BadInput
	assert.ErrorAs(t, err, &bi)
}

func TestConvergesOnRandomWalk(t *testing.T) {
	rw := fixture.NewRandomWalk()
	k, err := New(rw, diag(0.001), diag(0.05), Config{})
	require.NoError(t, err)

	u := matrix.New(0, 1)
	z0 := diag(0.0)
	require.NoError(t, k.Initialize(0, z0, u))

	target := 5.0
	for i := 1; i <= 200; i++ {
		z := diag(target)
		require.NoError(t, k.Step(float64(i), u, z))
	}

	est, err := k.StateEstimate()
	require.NoError(t, err)
	require.Len(t, est, 1)
	mean, err := est[0].Get(udata.MEAN)
	require.NoError(t, err)
	assert.InDelta(t, target, mean, 0.5)
}

func TestStateEstimateShapeIsMeanCovar(t *testing.T) {
	rw := fixture.NewRandomWalk()
	k, err := New(rw, diag(0.01), diag(0.01), Config{})
	require.NoError(t, err)

	u := matrix.New(0, 1)
	z0 := diag(1.0)
	require.NoError(t, k.Initialize(0, z0, u))
	require.NoError(t, k.Step(1, u, diag(1.1)))

	est, err := k.StateEstimate()
	require.NoError(t, err)
	require.Len(t, est, 1)
	assert.Equal(t, udata.MeanCovar, est[0].Kind())
	cov, err := est[0].Get(udata.COVAR(0))
	require.NoError(t, err)
	assert.False(t, math.IsNaN(cov))
}

func TestStateEstimateBeforeInitializeFails(t *testing.T) {
	rw := fixture.NewRandomWalk()
	k, err := New(rw, diag(0.01), diag(0.01), Config{})
	require.NoError(t, err)

	_, err = k.StateEstimate()
	require.Error(t, err)
	var ni *progerr.NotInitialized
	assert.ErrorAs(t, err, &ni)
}

func TestConfigDefaultsKappaToThreeMinusNx(t *testing.T) {
	rw := fixture.NewRandomWalk()
	k, err := New(rw, diag(0.01), diag(0.01), Config{})
	require.NoError(t, err)
	assert.Equal(t, 2.0, k.kappa)
	assert.Equal(t, 1.0, k.alpha)
}
