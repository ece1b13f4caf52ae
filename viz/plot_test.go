package viz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestTrackingPlotRejectsMismatchedSeriesLengths(t *testing.T) {
	series := []Series{{Name: "truth", T: []float64{0, 1, 2}, V: []float64{1, 2}}}
	err := TrackingPlot("t", "x", "y", series, 4*vg.Inch, 4*vg.Inch, filepath.Join(t.TempDir(), "out.png"))
	require.Error(t, err)
}

func TestTrackingPlotWritesFile(t *testing.T) {
	series := []Series{
		{Name: "truth", T: []float64{0, 1, 2}, V: []float64{1, 2, 3}},
		{Name: "measured", T: []float64{0, 1, 2}, V: []float64{1.1, 1.9, 3.2}},
	}
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, TrackingPlot("t", "x", "y", series, 4*vg.Inch, 4*vg.Inch, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestHistogramWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.png")
	require.NoError(t, Histogram("toe", "seconds", []float64{1, 2, 2, 3, 3, 3, 4}, 5, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
