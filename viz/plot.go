// Package viz renders PNG plots: scatter overlays of named time series
// (e.g. ground truth vs. noisy measurement vs. filtered estimate), and
// sample histograms such as a predictor's time-of-event distribution.
package viz

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mvprog/prognostics/progerr"
)

// Series is one named (time, value) trace to overlay on a TrackingPlot.
type Series struct {
	Name string
	T    []float64
	V    []float64
}

func (s Series) points() (plotter.XYs, error) {
	if len(s.T) != len(s.V) {
		return nil, progerr.NewBadInput("series %q: time and value lengths differ (%d vs %d)", s.Name, len(s.T), len(s.V))
	}
	pts := make(plotter.XYs, len(s.T))
	for i := range s.T {
		pts[i].X = s.T[i]
		pts[i].Y = s.V[i]
	}
	return pts, nil
}

// seriesStyle associates a glyph shape and color with a series's position in
// the overlay, cycling for any series beyond the first three.
var seriesStyle = []struct {
	color color.RGBA
	shape draw.GlyphDrawer
}{
	{color.RGBA{R: 255, B: 128, A: 255}, draw.PyramidGlyph{}},
	{color.RGBA{G: 255, A: 128}, draw.CircleGlyph{}},
	{color.RGBA{R: 169, G: 169, B: 169, A: 255}, draw.CrossGlyph{}},
}

// TrackingPlot overlays one or more named time series (e.g. ground truth,
// noisy measurement, filtered estimate) as scatter plots and saves the
// result as a PNG at path.
func TrackingPlot(title, xLabel, yLabel string, series []Series, width, height vg.Length, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	for i, s := range series {
		pts, err := s.points()
		if err != nil {
			return err
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		style := seriesStyle[i%len(seriesStyle)]
		scatter.GlyphStyle.Color = style.color
		scatter.GlyphStyle.Shape = style.shape
		scatter.GlyphStyle.Radius = vg.Points(3)

		p.Add(scatter)
		p.Legend.Add(s.Name, scatter)
	}

	return p.Save(width, height, path)
}

// Histogram buckets values into n bins and saves the result as a PNG at
// path.
func Histogram(title, xLabel string, values []float64, bins int, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "samples"

	hist, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return err
	}
	p.Add(hist)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}
