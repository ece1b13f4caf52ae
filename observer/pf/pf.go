// Package pf implements a bootstrap (SIR) particle filter observer: a
// non-parametric state estimator that represents the state distribution as
// a weighted particle cloud instead of a Gaussian summary, propagates each
// particle through the model's own process noise, reweights by measurement
// likelihood, and resamples once the particle set degenerates.
package pf

import (
	"math"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/mvprog/prognostics/matrix"
	"github.com/mvprog/prognostics/model"
	"github.com/mvprog/prognostics/progerr"
	"github.com/mvprog/prognostics/rnd"
	"github.com/mvprog/prognostics/udata"
)

// defaultEffectiveFraction is the fraction of the particle count below which
// the effective sample size triggers a resample, absent an explicit
// MinEffective in Config.
const defaultEffectiveFraction = 1.0 / 3.0

// Config holds the particle filter's tuning parameters. NumParticles must be
// positive; MinEffective defaults to NumParticles/3 when zero.
type Config struct {
	NumParticles int
	MinEffective float64
}

func resolveConfig(cfg Config) Config {
	if cfg.MinEffective == 0 {
		cfg.MinEffective = defaultEffectiveFraction * float64(cfg.NumParticles)
	}
	return cfg
}

// Option configures optional PF behavior at construction time.
type Option func(*PF)

// WithLogger attaches a zerolog logger; resample events are logged at debug
// level. The default is a disabled logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *PF) { p.log = l }
}

// PF is the bootstrap particle filter observer.
type PF struct {
	model model.Model
	q, r  matrix.Matrix
	qChol matrix.Matrix

	n            int
	minEffective float64

	nx, ny int
	src    *rand.Rand

	initialized bool
	lastTime    float64
	uPrev       matrix.Matrix
	x           matrix.Matrix // nx x n particle states
	w           []float64     // n particle weights, sums to 1

	log zerolog.Logger
}

// New constructs a particle filter for the given model with process-noise
// covariance q and measurement-noise covariance r. It fails with BadConfig
// if q or r are shaped wrong, or cfg.NumParticles is not positive.
func New(m model.Model, q, r matrix.Matrix, cfg Config, opts ...Option) (*PF, error) {
	nx, ny := m.StateSize(), m.OutputSize()
	if !q.IsSquare() || q.Rows() != nx {
		return nil, progerr.NewBadConfig("Q must be %dx%d, got %dx%d", nx, nx, q.Rows(), q.Cols())
	}
	if !r.IsSquare() || r.Rows() != ny {
		return nil, progerr.NewBadConfig("R must be %dx%d, got %dx%d", ny, ny, r.Rows(), r.Cols())
	}
	if cfg.NumParticles <= 0 {
		return nil, progerr.NewBadConfig("particle count must be positive, got %d", cfg.NumParticles)
	}
	qChol, err := q.Cholesky()
	if err != nil {
		return nil, progerr.NewBadConfig("process noise covariance must be positive semi-definite: %v", err)
	}
	cfg = resolveConfig(cfg)

	p := &PF{
		model:        m,
		q:            q,
		r:            r,
		qChol:        qChol,
		n:            cfg.NumParticles,
		minEffective: cfg.MinEffective,
		nx:           nx,
		ny:           ny,
		src:          rnd.New(),
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log.Debug().Int("nx", nx).Int("ny", ny).Int("particles", p.n).
		Float64("minEffective", p.minEffective).Msg("particle filter configured")
	return p, nil
}

// Initialize seeds every particle at x0 with uniform weight; no process
// noise is added at this step, since the prior is a single point, not a
// distribution to sample from.
func (p *PF) Initialize(t0 float64, x0, u0 matrix.Matrix) error {
	p.x = matrix.New(p.nx, p.n)
	p.w = make([]float64, p.n)
	for c := 0; c < p.n; c++ {
		if err := p.x.SetCol(c, x0); err != nil {
			return err
		}
		p.w[c] = 1.0 / float64(p.n)
	}
	p.uPrev = u0.Clone()
	p.lastTime = t0
	p.initialized = true
	return nil
}

// Step propagates every particle through the model's process noise,
// reweights by measurement likelihood under N(predicted output, R), and
// resamples via systematic resampling once the effective sample size drops
// below the configured threshold.
func (p *PF) Step(t float64, u, z matrix.Matrix) error {
	if !p.initialized {
		return progerr.NewNotInitialized("pf: Step called before Initialize")
	}
	if t <= p.lastTime {
		return progerr.NewBadInput("pf: time must strictly advance, got t=%v <= lastTime=%v", t, p.lastTime)
	}
	dt := t - p.lastTime

	xNext := matrix.New(p.nx, p.n)
	for c := 0; c < p.n; c++ {
		col, err := p.x.Col(c)
		if err != nil {
			return err
		}
		noise, err := rnd.SampleMeanCovar(p.src, matrix.New(p.nx, 1), p.qChol)
		if err != nil {
			return err
		}
		propagated, err := p.model.StateEqn(t, col, p.uPrev, noise, dt)
		if err != nil {
			return err
		}
		if err := xNext.SetCol(c, propagated); err != nil {
			return err
		}
	}
	p.x = xNext

	rCov := toGonumSym(p.r)
	likelihood, ok := distmv.NewNormal(make([]float64, p.ny), rCov, nil)
	if !ok {
		return progerr.NewDomainError("measurement noise covariance is not positive definite")
	}

	zVec := make([]float64, p.ny)
	for i := 0; i < p.ny; i++ {
		zVec[i] = z.At(i, 0)
	}

	zeroOutputNoise := matrix.New(p.ny, 1)
	for c := 0; c < p.n; c++ {
		col, err := p.x.Col(c)
		if err != nil {
			return err
		}
		predicted, err := p.model.OutputEqn(t, col, u, zeroOutputNoise)
		if err != nil {
			return err
		}
		innovation := make([]float64, p.ny)
		for i := 0; i < p.ny; i++ {
			innovation[i] = zVec[i] - predicted.At(i, 0)
		}
		p.w[c] *= math.Exp(likelihood.LogProb(innovation))
	}

	total := floats.Sum(p.w)
	if total <= 0 {
		return progerr.NewDomainError("pf: all particle weights collapsed to zero")
	}
	floats.Scale(1/total, p.w)

	neff := effectiveSampleSize(p.w)
	if neff < p.minEffective {
		p.log.Debug().Float64("neff", neff).Float64("threshold", p.minEffective).Msg("resampling particles")
		if err := p.resample(); err != nil {
			return err
		}
	}

	p.uPrev = u.Clone()
	p.lastTime = t
	return nil
}

// effectiveSampleSize returns N_eff = 1 / sum(w_i^2), the standard measure
// of particle-set degeneracy.
func effectiveSampleSize(w []float64) float64 {
	sumSq := 0.0
	for _, wi := range w {
		sumSq += wi * wi
	}
	if sumSq == 0 {
		return 0
	}
	return 1 / sumSq
}

func (p *PF) resample() error {
	indices, err := rnd.SystematicResample(p.src, p.w, p.n)
	if err != nil {
		return err
	}
	next := matrix.New(p.nx, p.n)
	for c, idx := range indices {
		col, err := p.x.Col(idx)
		if err != nil {
			return err
		}
		if err := next.SetCol(c, col); err != nil {
			return err
		}
	}
	p.x = next
	for i := range p.w {
		p.w[i] = 1.0 / float64(p.n)
	}
	return nil
}

// StateEstimate exports the current particle cloud: for each state
// dimension i, a WeightedSamples UData with SAMPLE(c)=X[i][c] and
// WEIGHT(c)=w[c] for every particle c.
func (p *PF) StateEstimate() ([]udata.UData, error) {
	if !p.initialized {
		return nil, progerr.NewNotInitialized("pf: StateEstimate called before Initialize")
	}
	out := make([]udata.UData, p.nx)
	for i := 0; i < p.nx; i++ {
		u := udata.New(udata.WeightedSamples, p.n)
		for c := 0; c < p.n; c++ {
			if err := u.Set(udata.SAMPLE(c), p.x.At(i, c)); err != nil {
				return nil, err
			}
			if err := u.Set(udata.WEIGHT(c), p.w[c]); err != nil {
				return nil, err
			}
		}
		out[i] = u
	}
	return out, nil
}

// toGonumSym converts a square matrix.Matrix to a gonum SymDense, the
// boundary type distmv.NewNormal requires for the measurement-likelihood
// evaluation below. Mirrors the same conversion seam used by package noise,
// duplicated here rather than shared since the two packages' covariances
// play different roles (measurement likelihood here, process/sensor noise
// sampling there).
func toGonumSym(m matrix.Matrix) *mat.SymDense {
	n := m.Rows()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, m.At(i, j))
		}
	}
	return sym
}
