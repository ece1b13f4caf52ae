package rnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvprog/prognostics/matrix"
)

func TestNewReturnsUsableGenerator(t *testing.T) {
	src := New()
	require.NotNil(t, src)
	assert.NotPanics(t, func() { src.NormFloat64() })
}

func TestSampleMeanCovarShape(t *testing.T) {
	src := New()
	mean, err := matrix.NewFromData(2, 1, []float64{1, 2})
	require.NoError(t, err)
	cov, err := matrix.NewFromData(2, 2, []float64{1, 0, 0, 1})
	require.NoError(t, err)
	l, err := cov.Cholesky()
	require.NoError(t, err)

	sample, err := SampleMeanCovar(src, mean, l)
	require.NoError(t, err)
	assert.Equal(t, 2, sample.Rows())
	assert.Equal(t, 1, sample.Cols())
}

func TestSystematicResampleRejectsEmptyWeights(t *testing.T) {
	src := New()
	_, err := SystematicResample(src, nil, 10)
	assert.Error(t, err)
}

func TestSystematicResampleReturnsRequestedCount(t *testing.T) {
	src := New()
	w := []float64{0.1, 0.7, 0.1, 0.1}
	indices, err := SystematicResample(src, w, 10)
	require.NoError(t, err)
	assert.Len(t, indices, 10)
	for _, idx := range indices {
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(w))
	}
}

func TestSystematicResampleFavorsHeavyWeight(t *testing.T) {
	src := New()
	w := []float64{0.01, 0.97, 0.01, 0.01}
	indices, err := SystematicResample(src, w, 100)
	require.NoError(t, err)
	count := 0
	for _, idx := range indices {
		if idx == 1 {
			count++
		}
	}
	assert.Greater(t, count, 80)
}
