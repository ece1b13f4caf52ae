// Package loadest implements the load estimators the Monte-Carlo predictor
// queries at every simulation step for the input vector a model should see
// at a given future time and sample index.
package loadest

import (
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mvprog/prognostics/config"
	"github.com/mvprog/prognostics/matrix"
	"github.com/mvprog/prognostics/progerr"
	"github.com/mvprog/prognostics/rnd"
)

// LoadEstimator supplies the input vector a model should see at time t for
// Monte-Carlo sample sampleIndex.
type LoadEstimator interface {
	// EstimateLoad returns the load vector for time t and sample index.
	EstimateLoad(t float64, sampleIndex int) (matrix.Matrix, error)
	// IsSampleBased reports whether the caller must set a sample count
	// before calling EstimateLoad (true for a stochastic estimator whose
	// realizations vary per sample, memoized per sampleIndex).
	IsSampleBased() bool
	// UsesHistoricalLoading reports whether the caller must feed observed
	// loads via AddLoad before EstimateLoad produces meaningful output.
	UsesHistoricalLoading() bool
}

// HistoricalLoadEstimator is implemented by estimators that need past
// observed loads pushed into them (UsesHistoricalLoading() == true).
type HistoricalLoadEstimator interface {
	LoadEstimator
	AddLoad(load matrix.Matrix)
}

// Constant returns a fixed base load profile, optionally perturbed by
// zero-mean Gaussian noise. When perturbed, realizations are memoized per
// sample index so repeated calls for the same sample within one prediction
// see a coherent draw, matching the Monte-Carlo predictor's per-sample
// load-query contract (spec 4.7).
type Constant struct {
	base       []float64
	sigma      []float64
	src        *rand.Rand
	mu         sync.Mutex
	byIndex    map[int]matrix.Matrix
}

// NewConstant builds a deterministic Constant load estimator returning
// base on every call.
func NewConstant(base []float64) *Constant {
	return &Constant{base: base, byIndex: make(map[int]matrix.Matrix)}
}

// NewConstantFromConfig builds a Constant estimator from config keys
// LoadEstimator.Loading (required) and LoadEstimator.noise_sigma
// (optional; enables gaussian mode when present).
func NewConstantFromConfig(cfg config.Map) (*Constant, error) {
	base, err := cfg.Floats("LoadEstimator.Loading")
	if err != nil {
		return nil, err
	}
	c := NewConstant(base)
	if cfg.Has("LoadEstimator.noise_sigma") {
		sigma, err := cfg.Floats("LoadEstimator.noise_sigma")
		if err != nil {
			return nil, err
		}
		if len(sigma) != len(base) {
			return nil, progerr.NewBadConfig("LoadEstimator.noise_sigma length %d != base load length %d", len(sigma), len(base))
		}
		c.sigma = sigma
		c.src = rnd.New()
	}
	return c, nil
}

// IsSampleBased reports true when gaussian noise is enabled (deterministic
// mode needs no sample count).
func (c *Constant) IsSampleBased() bool { return c.sigma != nil }

// UsesHistoricalLoading is always false: Constant never looks at the past.
func (c *Constant) UsesHistoricalLoading() bool { return false }

// EstimateLoad returns the base profile in deterministic mode, or a
// per-sample-index memoized Gaussian perturbation of it in gaussian mode.
func (c *Constant) EstimateLoad(t float64, sampleIndex int) (matrix.Matrix, error) {
	if c.sigma == nil {
		return columnOf(c.base), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.byIndex[sampleIndex]; ok {
		return m, nil
	}
	m := matrix.New(len(c.base), 1)
	for i, b := range c.base {
		m.Set(i, 0, b+c.sigma[i]*distuv.Normal{Mu: 0, Sigma: 1, Src: c.src}.Rand())
	}
	c.byIndex[sampleIndex] = m
	return m, nil
}

func columnOf(v []float64) matrix.Matrix {
	m := matrix.New(len(v), 1)
	for i, x := range v {
		m.Set(i, 0, x)
	}
	return m
}

// defaultWindow is the moving-average window size used when config omits
// LoadEstimator.Window.
const defaultWindow = 10

// MovingAverage returns the element-wise mean of the last W loads pushed
// via AddLoad, a ring buffer of fixed window size W.
type MovingAverage struct {
	mu      sync.Mutex
	window  int
	buffer  []matrix.Matrix
	next    int
	filled  int
	lastAvg matrix.Matrix
}

// NewMovingAverage builds a MovingAverage estimator with the given window
// size. It fails with BadConfig if window is non-positive.
func NewMovingAverage(window int) (*MovingAverage, error) {
	if window <= 0 {
		return nil, progerr.NewBadConfig("moving average window must be positive, got %d", window)
	}
	return &MovingAverage{window: window, buffer: make([]matrix.Matrix, window)}, nil
}

// NewMovingAverageFromConfig builds a MovingAverage estimator, defaulting
// the window to 10 samples when LoadEstimator.Window is absent.
func NewMovingAverageFromConfig(cfg config.Map) (*MovingAverage, error) {
	window, err := cfg.IntDefault("LoadEstimator.Window", defaultWindow)
	if err != nil {
		return nil, err
	}
	return NewMovingAverage(window)
}

// IsSampleBased is always false: the moving average is shared across
// samples, driven only by real observed history.
func (m *MovingAverage) IsSampleBased() bool { return false }

// UsesHistoricalLoading is always true.
func (m *MovingAverage) UsesHistoricalLoading() bool { return true }

// AddLoad pushes a newly observed load into the ring buffer, evicting the
// oldest entry once the buffer is full.
func (m *MovingAverage) AddLoad(load matrix.Matrix) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buffer[m.next] = load
	m.next = (m.next + 1) % m.window
	if m.filled < m.window {
		m.filled++
	}
	m.lastAvg = matrix.Matrix{}
}

// EstimateLoad returns the element-wise mean of every load currently in the
// ring buffer. It fails with NotInitialized if AddLoad has never been
// called.
func (m *MovingAverage) EstimateLoad(t float64, sampleIndex int) (matrix.Matrix, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.filled == 0 {
		return matrix.Matrix{}, progerr.NewNotInitialized("moving average load estimator has no observed loads yet")
	}
	if m.lastAvg.Rows() != 0 {
		return m.lastAvg, nil
	}
	sum := m.buffer[0].Clone()
	for i := 1; i < m.filled; i++ {
		var err error
		sum, err = sum.Add(m.buffer[i])
		if err != nil {
			return matrix.Matrix{}, err
		}
	}
	avg := sum.DivScalar(float64(m.filled))
	m.lastAvg = avg
	return avg, nil
}
