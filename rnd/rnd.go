// Package rnd provides per-worker random number sources and the sampling
// routines built on top of them: Cholesky-based multivariate Gaussian draws
// and systematic resampling of a weighted particle set.
//
// golang.org/x/exp/rand's generator is not safe for concurrent use, so every
// observer and every Monte-Carlo worker goroutine owns its own *rand.Rand,
// seeded from crypto/rand entropy rather than a shared global source.
package rnd

import (
	cryptorand "crypto/rand"
	"encoding/binary"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/mvprog/prognostics/matrix"
	"github.com/mvprog/prognostics/progerr"
)

// New returns a *rand.Rand seeded from a non-deterministic entropy source.
// Call it once per observer instance and once per Monte-Carlo worker
// goroutine; never share the result across goroutines.
func New() *rand.Rand {
	var seed [8]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		// crypto/rand.Read failing means the platform's entropy source is
		// broken; there is no sane numeric fallback, but the caller still
		// needs a usable generator, so fall back to a fixed seed rather
		// than panic.
		return rand.New(rand.NewSource(1))
	}
	return rand.New(rand.NewSource(binary.LittleEndian.Uint64(seed[:])))
}

// StandardNormalVec draws an n-length vector of iid N(0,1) samples from src.
func StandardNormalVec(src *rand.Rand, n int) matrix.Matrix {
	v := matrix.New(n, 1)
	for i := 0; i < n; i++ {
		v.Set(i, 0, src.NormFloat64())
	}
	return v
}

// SampleMeanCovar draws one sample from N(mean, cov) using a precomputed
// Cholesky factor l of cov: x = mean + l*xi, xi ~ N(0, I). mean and the
// result are n x 1 column matrices.
func SampleMeanCovar(src *rand.Rand, mean, l matrix.Matrix) (matrix.Matrix, error) {
	n := l.Rows()
	xi := StandardNormalVec(src, n)
	offset, err := l.Mul(xi)
	if err != nil {
		return matrix.Matrix{}, err
	}
	return mean.Add(offset)
}

// SystematicResample draws n indices into the weight vector w using
// systematic resampling: a single uniform offset u1 in [0, 1/n) positions
// n evenly spaced draws along the cumulative weight distribution, which
// (unlike independent roulette-wheel draws) minimizes the variance of the
// resulting particle counts. It fails with DomainError if w is empty.
func SystematicResample(src *rand.Rand, w []float64, n int) ([]int, error) {
	if len(w) == 0 {
		return nil, progerr.NewDomainError("systematic resample requires a non-empty weight vector")
	}
	cdf := make([]float64, len(w))
	floats.CumSum(cdf, w)
	total := cdf[len(cdf)-1]

	u1 := src.Float64() / float64(n)
	indices := make([]int, n)
	j := 0
	for p := 0; p < n; p++ {
		target := (u1 + float64(p)/float64(n)) * total
		for j < len(cdf)-1 && cdf[j] < target {
			j++
		}
		indices[p] = j
	}
	return indices, nil
}
