// Package ukf implements the Unscented (sigma-point) Kalman Filter
// observer: a non-augmented variant that regenerates sigma points from the
// process-noise covariance Q rather than the posterior covariance P on
// every step, with covariance regrowth coming from the additive +Q term in
// the predict stage.
package ukf

import (
	"github.com/rs/zerolog"

	"github.com/mvprog/prognostics/matrix"
	"github.com/mvprog/prognostics/model"
	"github.com/mvprog/prognostics/progerr"
	"github.com/mvprog/prognostics/udata"
)

// Config holds the UKF's unitless tuning parameters. A zero value for any
// field selects the spec-mandated default for that field given the model's
// state dimension: Kappa = 3-n_x, Alpha = 1, Beta = 0.
type Config struct {
	Alpha float64
	Beta  float64
	Kappa float64

	kappaSet bool
}

// WithKappa returns a Config with Kappa explicitly set to k, so that k == 0
// is kept as "I want exactly zero" instead of "use the default". Most
// callers don't need this; New's defaulting covers the common case.
func (c Config) WithKappa(k float64) Config {
	c.Kappa = k
	c.kappaSet = true
	return c
}

func resolveConfig(cfg Config, nx int) Config {
	if cfg.Alpha == 0 {
		cfg.Alpha = 1
	}
	if !cfg.kappaSet && cfg.Kappa == 0 {
		cfg.Kappa = 3 - float64(nx)
	}
	return cfg
}

// Option configures optional UKF behavior at construction time.
type Option func(*UKF)

// WithLogger attaches a zerolog logger; construction-time configuration is
// logged at debug level. The default is a disabled logger so library
// consumers aren't forced into any particular sink.
func WithLogger(l zerolog.Logger) Option {
	return func(k *UKF) { k.log = l }
}

// UKF is the Unscented Kalman Filter observer.
type UKF struct {
	model model.Model
	q, r  matrix.Matrix

	alpha, beta, kappa float64
	nx, ny             int

	initialized bool
	lastTime    float64
	uPrev       matrix.Matrix
	xEstimated  matrix.Matrix
	zEstimated  matrix.Matrix
	p           matrix.Matrix
	gain        matrix.Matrix

	log zerolog.Logger
}

// New constructs a UKF for the given model with process-noise covariance q
// and measurement-noise covariance r. It fails with BadConfig if q or r are
// not square or don't match the model's state/output dimensions.
func New(m model.Model, q, r matrix.Matrix, cfg Config, opts ...Option) (*UKF, error) {
	nx, ny := m.StateSize(), m.OutputSize()
	if !q.IsSquare() || q.Rows() != nx {
		return nil, progerr.NewBadConfig("Q must be %dx%d, got %dx%d", nx, nx, q.Rows(), q.Cols())
	}
	if !r.IsSquare() || r.Rows() != ny {
		return nil, progerr.NewBadConfig("R must be %dx%d, got %dx%d", ny, ny, r.Rows(), r.Cols())
	}
	cfg = resolveConfig(cfg, nx)

	k := &UKF{
		model: m,
		q:     q,
		r:     r,
		alpha: cfg.Alpha,
		beta:  cfg.Beta,
		kappa: cfg.Kappa,
		nx:    nx,
		ny:    ny,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(k)
	}
	k.log.Debug().Int("nx", nx).Int("ny", ny).Float64("alpha", cfg.Alpha).
		Float64("beta", cfg.Beta).Float64("kappa", cfg.Kappa).Msg("ukf configured")
	return k, nil
}

// sigmaPoints builds the 2n+1 sigma points and weight vector of (mu, cov)
// per the scaled unscented transform: column 0 is mu, columns 1..n and
// n+1..2n straddle it along +-sqrt((n+kappa)*cov), then alpha re-centers
// the off-center columns and rescales the weights.
func sigmaPoints(mu, cov matrix.Matrix, kappa, alpha float64) (matrix.Matrix, []float64, error) {
	n := mu.Rows()
	scaled := cov.MulScalar(float64(n) + kappa)
	s, err := scaled.Cholesky()
	if err != nil {
		return matrix.Matrix{}, nil, err
	}

	x := matrix.New(n, 2*n+1)
	if err := x.SetCol(0, mu); err != nil {
		return matrix.Matrix{}, nil, err
	}
	for i := 1; i <= n; i++ {
		col, err := s.Col(i - 1)
		if err != nil {
			return matrix.Matrix{}, nil, err
		}
		plus, err := mu.Add(col)
		if err != nil {
			return matrix.Matrix{}, nil, err
		}
		if err := x.SetCol(i, plus); err != nil {
			return matrix.Matrix{}, nil, err
		}
		minus, err := mu.Sub(col)
		if err != nil {
			return matrix.Matrix{}, nil, err
		}
		if err := x.SetCol(n+i, minus); err != nil {
			return matrix.Matrix{}, nil, err
		}
	}

	w := make([]float64, 2*n+1)
	w[0] = kappa / (float64(n) + kappa)
	for i := 1; i < len(w); i++ {
		w[i] = 0.5 / (float64(n) + kappa)
	}

	x0, err := x.Col(0)
	if err != nil {
		return matrix.Matrix{}, nil, err
	}
	for i := 1; i <= 2*n; i++ {
		xi, err := x.Col(i)
		if err != nil {
			return matrix.Matrix{}, nil, err
		}
		diff, err := xi.Sub(x0)
		if err != nil {
			return matrix.Matrix{}, nil, err
		}
		rescaled, err := x0.Add(diff.MulScalar(alpha))
		if err != nil {
			return matrix.Matrix{}, nil, err
		}
		if err := x.SetCol(i, rescaled); err != nil {
			return matrix.Matrix{}, nil, err
		}
	}
	w[0] = w[0]/(alpha*alpha) + (1/(alpha*alpha) - 1)
	for i := 1; i < len(w); i++ {
		w[i] = w[i] / (alpha * alpha)
	}

	return x, w, nil
}

func weightsCol(w []float64) (matrix.Matrix, error) {
	return matrix.NewFromData(len(w), 1, w)
}

// Initialize seeds the filter from a first (t0, x0, u0): the covariance
// starts at Q, an initial sigma-point set is generated (discarded except
// as the spec-mandated construction step), and the initial output estimate
// is predicted with zero measurement noise.
func (k *UKF) Initialize(t0 float64, x0, u0 matrix.Matrix) error {
	k.xEstimated = x0.Clone()
	k.p = k.q.Clone()
	k.uPrev = u0.Clone()
	k.lastTime = t0

	if _, _, err := sigmaPoints(k.xEstimated, k.p, k.kappa, k.alpha); err != nil {
		return err
	}

	z0, err := k.model.OutputEqn(t0, k.xEstimated, u0, matrix.New(k.ny, 1))
	if err != nil {
		return err
	}
	k.zEstimated = z0
	k.initialized = true
	return nil
}

// Step fuses one new (t, u, z) measurement triple into the filter's state
// estimate following the non-augmented unscented Kalman filter recursion.
func (k *UKF) Step(t float64, u, z matrix.Matrix) error {
	if !k.initialized {
		return progerr.NewNotInitialized("ukf: Step called before Initialize")
	}
	if t <= k.lastTime {
		return progerr.NewBadInput("ukf: time must strictly advance, got t=%v <= lastTime=%v", t, k.lastTime)
	}
	dt := t - k.lastTime

	x, w, err := sigmaPoints(k.xEstimated, k.q, k.kappa, k.alpha)
	if err != nil {
		return err
	}
	wCol, err := weightsCol(w)
	if err != nil {
		return err
	}

	zeroStateNoise := matrix.New(k.nx, 1)
	xkk1 := matrix.New(k.nx, x.Cols())
	for c := 0; c < x.Cols(); c++ {
		col, err := x.Col(c)
		if err != nil {
			return err
		}
		propagated, err := k.model.StateEqn(t, col, k.uPrev, zeroStateNoise, dt)
		if err != nil {
			return err
		}
		if err := xkk1.SetCol(c, propagated); err != nil {
			return err
		}
	}

	xHat, err := xkk1.WeightedMean(wCol)
	if err != nil {
		return err
	}
	pHat, err := xkk1.WeightedCovariance(wCol, k.alpha, k.beta)
	if err != nil {
		return err
	}
	pHat, err = pHat.Add(k.q)
	if err != nil {
		return err
	}

	zeroOutputNoise := matrix.New(k.ny, 1)
	zkk1 := matrix.New(k.ny, xkk1.Cols())
	for c := 0; c < xkk1.Cols(); c++ {
		col, err := xkk1.Col(c)
		if err != nil {
			return err
		}
		predicted, err := k.model.OutputEqn(t, col, u, zeroOutputNoise)
		if err != nil {
			return err
		}
		if err := zkk1.SetCol(c, predicted); err != nil {
			return err
		}
	}

	zHat, err := zkk1.WeightedMean(wCol)
	if err != nil {
		return err
	}
	pzz, err := zkk1.WeightedCovariance(wCol, k.alpha, k.beta)
	if err != nil {
		return err
	}
	pzz, err = pzz.Add(k.r)
	if err != nil {
		return err
	}

	pxz := matrix.New(k.nx, k.ny)
	for c := 0; c < xkk1.Cols(); c++ {
		xCol, err := xkk1.Col(c)
		if err != nil {
			return err
		}
		zCol, err := zkk1.Col(c)
		if err != nil {
			return err
		}
		xDiff, err := xCol.Sub(xHat)
		if err != nil {
			return err
		}
		zDiff, err := zCol.Sub(zHat)
		if err != nil {
			return err
		}
		outer, err := xDiff.Mul(zDiff.Transpose())
		if err != nil {
			return err
		}
		scaled := outer.MulScalar(w[c])
		pxz, err = pxz.Add(scaled)
		if err != nil {
			return err
		}
	}

	pzzInv, err := pzz.Inverse()
	if err != nil {
		return err
	}
	gain, err := pxz.Mul(pzzInv)
	if err != nil {
		return err
	}

	innovation, err := z.Sub(zHat)
	if err != nil {
		return err
	}
	correction, err := gain.Mul(innovation)
	if err != nil {
		return err
	}
	xNew, err := xHat.Add(correction)
	if err != nil {
		return err
	}

	kpzz, err := gain.Mul(pzz)
	if err != nil {
		return err
	}
	kpzzkt, err := kpzz.Mul(gain.Transpose())
	if err != nil {
		return err
	}
	pNew, err := pHat.Sub(kpzzkt)
	if err != nil {
		return err
	}

	zNew, err := k.model.OutputEqn(t, xNew, u, zeroOutputNoise)
	if err != nil {
		return err
	}

	k.xEstimated = xNew
	k.p = pNew
	k.zEstimated = zNew
	k.gain = gain
	k.uPrev = u.Clone()
	k.lastTime = t
	return nil
}

// StateEstimate exports the current estimate: for each state dimension i,
// a MeanCovar UData of size 1+n_x with MEAN=xEstimated[i] and COVAR slots
// filled from P's i-th row.
func (k *UKF) StateEstimate() ([]udata.UData, error) {
	if !k.initialized {
		return nil, progerr.NewNotInitialized("ukf: StateEstimate called before Initialize")
	}
	out := make([]udata.UData, k.nx)
	for i := 0; i < k.nx; i++ {
		u := udata.New(udata.MeanCovar, k.nx)
		if err := u.Set(udata.MEAN, k.xEstimated.At(i, 0)); err != nil {
			return nil, err
		}
		for j := 0; j < k.nx; j++ {
			if err := u.Set(udata.COVAR(j), k.p.At(i, j)); err != nil {
				return nil, err
			}
		}
		out[i] = u
	}
	return out, nil
}

// Cov returns a copy of the filter's current state covariance P.
func (k *UKF) Cov() matrix.Matrix { return k.p.Clone() }

// Gain returns a copy of the most recently computed Kalman gain.
func (k *UKF) Gain() matrix.Matrix { return k.gain.Clone() }
