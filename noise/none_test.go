package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNone(t *testing.T) {
	e, err := NewNone()
	require.NoError(t, err)
	assert.NotNil(t, e)
}

func TestNoneMeanCov(t *testing.T) {
	e, err := NewNone()
	require.NoError(t, err)

	assert.Equal(t, 0, e.Cov().Rows())
	assert.Equal(t, 0, len(e.Mean()))
}

func TestNoneSample(t *testing.T) {
	e, err := NewNone()
	require.NoError(t, err)

	sample := e.Sample()
	assert.Equal(t, 0, sample.Rows())
}

func TestNoneReset(t *testing.T) {
	e, err := NewNone()
	require.NoError(t, err)
	assert.NoError(t, e.Reset())
}

func TestNoneString(t *testing.T) {
	e, err := NewNone()
	require.NoError(t, err)
	assert.Contains(t, e.String(), "None{")
}
