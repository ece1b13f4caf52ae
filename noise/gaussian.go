// Package noise implements additive noise sources behind a common Source
// interface: Gaussian, Zero (for deterministic testing), and None
// (zero-length, for models with no modeled noise channel at all). The
// observers and the Monte-Carlo predictor draw their noise through package
// rnd, not through this package.
package noise

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/mvprog/prognostics/matrix"
	"github.com/mvprog/prognostics/progerr"
	"github.com/mvprog/prognostics/rnd"
)

// Source is the sampling contract shared by every noise variant: a draw, a
// covariance, a mean, and a way to reseed.
type Source interface {
	Sample() matrix.Matrix
	Cov() matrix.Matrix
	Mean() []float64
	Reset() error
	fmt.Stringer
}

// Gaussian is zero- or nonzero-mean Gaussian noise with an arbitrary
// covariance, sampled via a multivariate normal distribution.
type Gaussian struct {
	dist *distmv.Normal
	mean []float64
	cov  matrix.Matrix
	src  *rand.Rand
}

// NewGaussian creates Gaussian noise with the given mean and covariance,
// seeding its internal generator from a non-deterministic source. It fails
// with BadConfig if cov is not square or its size doesn't match len(mean).
func NewGaussian(mean []float64, cov matrix.Matrix) (*Gaussian, error) {
	if !cov.IsSquare() || cov.Rows() != len(mean) {
		return nil, progerr.NewBadConfig("gaussian noise covariance must be %dx%d, got %dx%d", len(mean), len(mean), cov.Rows(), cov.Cols())
	}
	src := rnd.New()
	dist, ok := newGaussianDist(mean, cov, src)
	if !ok {
		return nil, progerr.NewBadConfig("failed to construct gaussian noise distribution (covariance not positive definite)")
	}
	return &Gaussian{dist: dist, mean: mean, cov: cov, src: src}, nil
}

// Sample draws one realization of the noise.
func (g *Gaussian) Sample() matrix.Matrix {
	r := g.dist.Rand(nil)
	m := matrix.New(len(r), 1)
	for i, v := range r {
		m.Set(i, 0, v)
	}
	return m
}

// Cov returns the noise covariance.
func (g *Gaussian) Cov() matrix.Matrix { return g.cov }

// Mean returns the noise mean.
func (g *Gaussian) Mean() []float64 {
	mean := make([]float64, len(g.mean))
	copy(mean, g.mean)
	return mean
}

// Reset rebuilds the underlying distribution with a freshly seeded
// generator. It fails with BadConfig if the covariance has since become
// invalid.
func (g *Gaussian) Reset() error {
	src := rnd.New()
	dist, ok := newGaussianDist(g.mean, g.cov, src)
	if !ok {
		return progerr.NewBadConfig("failed to reset gaussian noise distribution")
	}
	g.dist = dist
	g.src = src
	return nil
}

func newGaussianDist(mean []float64, cov matrix.Matrix, src *rand.Rand) (*distmv.Normal, bool) {
	gonumCov := toGonumSym(cov)
	return distmv.NewNormal(mean, gonumCov, src)
}

// String implements the Stringer interface.
func (g *Gaussian) String() string {
	return fmt.Sprintf("Gaussian{Mean=%v Cov=%dx%d}", g.mean, g.cov.Rows(), g.cov.Cols())
}
