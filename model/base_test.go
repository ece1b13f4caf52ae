package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvprog/prognostics/matrix"
)

// linearStateFn and linearOutputFn implement a trivial 2-state linear
// system x' = [[1,1],[0,1]]x + [0.5,1]u, z = [1,0]x, used only to exercise
// FiniteDifference against a Jacobian we can check by hand (it should
// recover the constant A and C matrices exactly, since the system is
// linear).
func linearStateFn(t float64, x, u, n matrix.Matrix, dt float64) (matrix.Matrix, error) {
	a, err := matrix.NewFromData(2, 2, []float64{1, 1, 0, 1})
	if err != nil {
		return matrix.Matrix{}, err
	}
	b, err := matrix.NewFromData(2, 1, []float64{0.5, 1})
	if err != nil {
		return matrix.Matrix{}, err
	}
	ax, err := a.Mul(x)
	if err != nil {
		return matrix.Matrix{}, err
	}
	bu, err := b.Mul(u)
	if err != nil {
		return matrix.Matrix{}, err
	}
	sum, err := ax.Add(bu)
	if err != nil {
		return matrix.Matrix{}, err
	}
	return sum.Add(n)
}

func linearOutputFn(t float64, x, u, n matrix.Matrix) (matrix.Matrix, error) {
	c, err := matrix.NewFromData(1, 2, []float64{1, 0})
	if err != nil {
		return matrix.Matrix{}, err
	}
	cx, err := c.Mul(x)
	if err != nil {
		return matrix.Matrix{}, err
	}
	return cx.Add(n)
}

func TestFiniteDifferenceStateJacobianRecoversLinearA(t *testing.T) {
	fd := FiniteDifference{StateFn: linearStateFn, OutputFn: linearOutputFn}
	x, err := matrix.NewFromData(2, 1, []float64{0.5, 0.6})
	require.NoError(t, err)
	u, err := matrix.NewFromData(1, 1, []float64{-1.0})
	require.NoError(t, err)

	jac, err := fd.StateJacobian(0, x, u)
	require.NoError(t, err)

	want, err := matrix.NewFromData(2, 2, []float64{1, 1, 0, 1})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, want.At(i, j), jac.At(i, j), 1e-6)
		}
	}
}

func TestFiniteDifferenceOutputJacobianRecoversLinearC(t *testing.T) {
	fd := FiniteDifference{StateFn: linearStateFn, OutputFn: linearOutputFn}
	x, err := matrix.NewFromData(2, 1, []float64{0.5, 0.6})
	require.NoError(t, err)
	u, err := matrix.NewFromData(1, 1, []float64{-1.0})
	require.NoError(t, err)

	jac, err := fd.OutputJacobian(0, x, u)
	require.NoError(t, err)

	want, err := matrix.NewFromData(1, 2, []float64{1, 0})
	require.NoError(t, err)
	for j := 0; j < 2; j++ {
		assert.InDelta(t, want.At(0, j), jac.At(0, j), 1e-6)
	}
}

func TestFiniteDifferenceDefaultsEpsilonAndDt(t *testing.T) {
	fd := FiniteDifference{StateFn: linearStateFn, OutputFn: linearOutputFn}
	assert.Equal(t, defaultEpsilon, fd.epsilon())
	assert.Equal(t, defaultDt, fd.dt())
}
