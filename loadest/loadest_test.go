package loadest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvprog/prognostics/config"
	"github.com/mvprog/prognostics/matrix"
)

func TestConstantDeterministic(t *testing.T) {
	c := NewConstant([]float64{8.0})
	assert.False(t, c.IsSampleBased())
	assert.False(t, c.UsesHistoricalLoading())

	load, err := c.EstimateLoad(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 8.0, load.At(0, 0))
}

func TestConstantFromConfigRequiresLoading(t *testing.T) {
	_, err := NewConstantFromConfig(config.New())
	assert.Error(t, err)
}

func TestConstantGaussianMemoizesPerSample(t *testing.T) {
	cfg := config.New()
	cfg.Set("LoadEstimator.Loading", "8.0")
	cfg.Set("LoadEstimator.noise_sigma", "0.5")

	c, err := NewConstantFromConfig(cfg)
	require.NoError(t, err)
	assert.True(t, c.IsSampleBased())

	a, err := c.EstimateLoad(0, 3)
	require.NoError(t, err)
	b, err := c.EstimateLoad(10, 3)
	require.NoError(t, err)
	assert.Equal(t, a.At(0, 0), b.At(0, 0))

	other, err := c.EstimateLoad(0, 4)
	require.NoError(t, err)
	_ = other
}

func TestMovingAverageRejectsNonPositiveWindow(t *testing.T) {
	_, err := NewMovingAverage(0)
	assert.Error(t, err)
}

func TestMovingAverageDefaultsWindowTo10(t *testing.T) {
	m, err := NewMovingAverageFromConfig(config.New())
	require.NoError(t, err)
	assert.Equal(t, defaultWindow, m.window)
}

func TestMovingAverageFailsBeforeFirstLoad(t *testing.T) {
	m, err := NewMovingAverage(3)
	require.NoError(t, err)
	_, err = m.EstimateLoad(0, 0)
	assert.Error(t, err)
}

func TestMovingAverageReturnsMeanOfWindow(t *testing.T) {
	m, err := NewMovingAverage(2)
	require.NoError(t, err)

	l1, err := matrix.NewFromData(1, 1, []float64{4})
	require.NoError(t, err)
	l2, err := matrix.NewFromData(1, 1, []float64{6})
	require.NoError(t, err)

	m.AddLoad(l1)
	m.AddLoad(l2)

	avg, err := m.EstimateLoad(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, avg.At(0, 0))
}

func TestMovingAverageEvictsOldestBeyondWindow(t *testing.T) {
	m, err := NewMovingAverage(2)
	require.NoError(t, err)

	for _, v := range []float64{1, 2, 100} {
		l, err := matrix.NewFromData(1, 1, []float64{v})
		require.NoError(t, err)
		m.AddLoad(l)
	}

	avg, err := m.EstimateLoad(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 51.0, avg.At(0, 0))
}
