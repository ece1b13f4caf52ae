package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvprog/prognostics/matrix"
)

func mustCov(t *testing.T, data []float64, n int) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewFromData(n, n, data)
	require.NoError(t, err)
	return m
}

func TestNewGaussian(t *testing.T) {
	g, err := NewGaussian([]float64{2, 3}, mustCov(t, []float64{1, 0.1, 0.1, 1}, 2))
	require.NoError(t, err)
	assert.NotNil(t, g)
}

func TestNewGaussianRejectsNonSquareCov(t *testing.T) {
	cov, err := matrix.NewFromData(1, 2, []float64{1, 0})
	require.NoError(t, err)
	_, err = NewGaussian([]float64{2, 3}, cov)
	assert.Error(t, err)
}

func TestGaussianMeanAndCov(t *testing.T) {
	mean := []float64{2, 3}
	cov := mustCov(t, []float64{1, 0.1, 0.1, 1}, 2)

	g, err := NewGaussian(mean, cov)
	require.NoError(t, err)

	assert.True(t, g.Cov().Equal(cov))
	assert.Equal(t, mean, g.Mean())
}

func TestGaussianSampleHasMeanDimension(t *testing.T) {
	mean := []float64{2, 3}
	g, err := NewGaussian(mean, mustCov(t, []float64{1, 0.1, 0.1, 1}, 2))
	require.NoError(t, err)

	sample := g.Sample()
	assert.Equal(t, len(mean), sample.Rows())
	assert.Equal(t, 1, sample.Cols())
}

func TestGaussianResetProducesFreshDraws(t *testing.T) {
	g, err := NewGaussian([]float64{0, 0}, mustCov(t, []float64{1, 0, 0, 1}, 2))
	require.NoError(t, err)

	s1 := g.Sample()
	require.NoError(t, g.Reset())
	s2 := g.Sample()
	assert.False(t, s1.Equal(s2))
}

func TestGaussianString(t *testing.T) {
	g, err := NewGaussian([]float64{2, 3}, mustCov(t, []float64{1, 0.1, 0.1, 1}, 2))
	require.NoError(t, err)
	assert.Contains(t, g.String(), "Gaussian{")
}
