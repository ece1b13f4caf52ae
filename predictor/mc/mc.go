// Package mc implements the Monte-Carlo predictor: a fork-join forward
// projection that draws sampleCount independent particles from the
// observer's MeanCovar state estimate, simulates each one to the configured
// horizon with its own process-noise draws, and reports the resulting
// time-of-event and save-point trajectory distributions.
package mc

import (
	"math"
	"runtime"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mvprog/prognostics/config"
	"github.com/mvprog/prognostics/loadest"
	"github.com/mvprog/prognostics/matrix"
	"github.com/mvprog/prognostics/model"
	"github.com/mvprog/prognostics/predictor"
	"github.com/mvprog/prognostics/progerr"
	"github.com/mvprog/prognostics/rnd"
	"github.com/mvprog/prognostics/udata"
)

// defaultDt is the internal integration step used when Config.Dt is zero.
const defaultDt = 1.0

// Config holds the Monte-Carlo predictor's tuning parameters.
type Config struct {
	// SampleCount is the number of independent particles drawn per predict
	// call (Predictor.SampleCount).
	SampleCount int
	// Horizon is the maximum simulated time past t0 (Predictor.Horizon).
	Horizon float64
	// Dt is the internal integration step; defaults to 1.0 if zero. Not a
	// named config key in the external interface list, since the reference
	// scenario fixes it at 1 second, but exposed here so callers running at
	// a different fidelity aren't stuck.
	Dt float64
	// ProcessNoise is the length-n_x variance vector used to draw each
	// state dimension's per-step process noise (Model.ProcessNoise).
	ProcessNoise []float64
}

// NewConfigFromConfig reads Predictor.SampleCount, Predictor.Horizon and
// Model.ProcessNoise from cfg. It fails with BadConfig if any required key
// is missing or ProcessNoise's length doesn't match nx.
func NewConfigFromConfig(cfg config.Map, nx int) (Config, error) {
	k, err := cfg.Int("Predictor.SampleCount")
	if err != nil {
		return Config{}, err
	}
	h, err := cfg.Float64("Predictor.Horizon")
	if err != nil {
		return Config{}, err
	}
	pn, err := cfg.Floats("Model.ProcessNoise")
	if err != nil {
		return Config{}, err
	}
	if len(pn) != nx {
		return Config{}, progerr.NewBadConfig("Model.ProcessNoise length %d != state size %d", len(pn), nx)
	}
	return Config{SampleCount: k, Horizon: h, ProcessNoise: pn}, nil
}

func resolveConfig(cfg Config) Config {
	if cfg.Dt == 0 {
		cfg.Dt = defaultDt
	}
	return cfg
}

// Option configures optional MonteCarloPredictor behavior at construction.
type Option func(*MonteCarloPredictor)

// WithLogger attaches a zerolog logger; per-sample failures are logged at
// warn level rather than aborting the prediction. The default is a disabled
// logger.
func WithLogger(l zerolog.Logger) Option {
	return func(mc *MonteCarloPredictor) { mc.log = l }
}

// MonteCarloPredictor is the fork-join Monte-Carlo predictor.
type MonteCarloPredictor struct {
	model      model.PrognosticsModel
	loadEst    loadest.LoadEstimator
	savePoints predictor.SavePointProvider
	cfg        Config
	workers    int
	log        zerolog.Logger
}

// New constructs a MonteCarloPredictor. It fails with BadConfig if
// cfg.SampleCount is non-positive or len(cfg.ProcessNoise) doesn't match the
// model's state size.
func New(m model.PrognosticsModel, loadEst loadest.LoadEstimator, savePoints predictor.SavePointProvider, cfg Config, opts ...Option) (*MonteCarloPredictor, error) {
	if cfg.SampleCount <= 0 {
		return nil, progerr.NewBadConfig("sample count must be positive, got %d", cfg.SampleCount)
	}
	if len(cfg.ProcessNoise) != m.StateSize() {
		return nil, progerr.NewBadConfig("process noise length %d != state size %d", len(cfg.ProcessNoise), m.StateSize())
	}
	if savePoints == nil {
		savePoints = predictor.FixedSavePoints(nil)
	}
	cfg = resolveConfig(cfg)

	mc := &MonteCarloPredictor{
		model:      m,
		loadEst:    loadEst,
		savePoints: savePoints,
		cfg:        cfg,
		workers:    runtime.GOMAXPROCS(0),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(mc)
	}
	return mc, nil
}

// sampleOutputs accumulates one Monte-Carlo sample's contribution to the
// shared, pre-allocated result slices. Every field is written at exactly one
// index per sample (index == the sample's own k), so concurrent writes from
// distinct workers never touch the same memory.
type sampleOutputs struct {
	toe         []float64
	eventState  [][]float64 // [savePointIdx][sampleIdx]
	systemState map[string][][]float64
}

// Predict runs the fork-join Monte-Carlo projection starting from (t0,
// state), where state holds one MeanCovar UData per state dimension.
func (mc *MonteCarloPredictor) Predict(t0 float64, state []udata.UData) (predictor.Prediction, error) {
	nx := len(state)
	mu := matrix.New(nx, 1)
	sigma := matrix.New(nx, nx)
	for i, s := range state {
		mean, err := s.Get(udata.MEAN)
		if err != nil {
			return predictor.Prediction{}, err
		}
		mu.Set(i, 0, mean)
		row, err := s.GetVec(udata.COVAR(0))
		if err != nil {
			return predictor.Prediction{}, err
		}
		if len(row) != nx {
			return predictor.Prediction{}, progerr.NewBadConfig("state[%d] covariance row length %d != nx %d", i, len(row), nx)
		}
		for j, v := range row {
			sigma.Set(i, j, v)
		}
	}
	l, err := sigma.Cholesky()
	if err != nil {
		return predictor.Prediction{}, err
	}

	savePts := mc.savePoints.SavePoints()
	k := mc.cfg.SampleCount
	outputNames := mc.model.PredictedOutputs()

	out := sampleOutputs{
		toe:         make([]float64, k),
		eventState:  make([][]float64, len(savePts)),
		systemState: make(map[string][][]float64, len(outputNames)),
	}
	for j := range out.eventState {
		out.eventState[j] = make([]float64, k)
		for s := 0; s < k; s++ {
			out.eventState[j][s] = math.NaN()
		}
	}
	for _, name := range outputNames {
		cols := make([][]float64, len(savePts))
		for j := range cols {
			cols[j] = make([]float64, k)
			for s := 0; s < k; s++ {
				cols[j][s] = math.NaN()
			}
		}
		out.systemState[name] = cols
	}
	for i := range out.toe {
		out.toe[i] = math.Inf(1)
	}

	sem := make(chan struct{}, mc.workers)
	var wg sync.WaitGroup
	for sampleIdx := 0; sampleIdx < k; sampleIdx++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()
			mc.runSample(idx, t0, mu, l, savePts, outputNames, &out)
		}(sampleIdx)
	}
	wg.Wait()

	toeUData := udata.New(udata.Samples, k)
	for i, v := range out.toe {
		if err := toeUData.Set(i, v); err != nil {
			return predictor.Prediction{}, err
		}
	}

	eventStateUData := make([]udata.UData, len(savePts))
	for j, vals := range out.eventState {
		u := udata.New(udata.Samples, k)
		for i, v := range vals {
			if err := u.Set(i, v); err != nil {
				return predictor.Prediction{}, err
			}
		}
		eventStateUData[j] = u
	}

	trajectories := make([]predictor.DataPoint, 0, len(outputNames))
	for _, name := range outputNames {
		values := make([]udata.UData, len(savePts))
		for j, vals := range out.systemState[name] {
			u := udata.New(udata.Samples, k)
			for i, v := range vals {
				if err := u.Set(i, v); err != nil {
					return predictor.Prediction{}, err
				}
			}
			values[j] = u
		}
		trajectories = append(trajectories, predictor.DataPoint{Name: name, Values: values})
	}

	events := mc.model.Events()
	eventID := ""
	if len(events) > 0 {
		eventID = events[0]
	}

	return predictor.Prediction{
		Events: []predictor.ProgEvent{{
			EventID:    eventID,
			TOE:        toeUData,
			EventState: eventStateUData,
		}},
		SavePoints:   savePts,
		Trajectories: trajectories,
	}, nil
}

// runSample simulates one particle to the horizon, writing only into index
// idx of every shared output slice. On error it logs and leaves the
// sample's TOE at +Inf rather than propagating, per the predictor's
// per-sample error policy.
func (mc *MonteCarloPredictor) runSample(idx int, t0 float64, mu, l matrix.Matrix, savePts []float64, outputNames []string, out *sampleOutputs) {
	src := rnd.New()
	x, err := rnd.SampleMeanCovar(src, mu, l)
	if err != nil {
		mc.log.Warn().Err(err).Int("sample", idx).Msg("failed to draw initial state")
		return
	}

	nx := mu.Rows()
	savePointIdx := 0
	for t := t0; t <= t0+mc.cfg.Horizon; t += mc.cfg.Dt {
		u, err := mc.loadEst.EstimateLoad(t, idx)
		if err != nil {
			mc.log.Warn().Err(err).Int("sample", idx).Float64("t", t).Msg("load estimate failed")
			return
		}

		crossed, err := mc.model.ThresholdEqn(t, x, u)
		if err != nil {
			mc.log.Warn().Err(err).Int("sample", idx).Float64("t", t).Msg("threshold evaluation failed")
			return
		}
		if crossed {
			out.toe[idx] = t
			return
		}

		if savePointIdx < len(savePts) && t >= savePts[savePointIdx] {
			es, err := mc.model.EventStateEqn(x)
			if err != nil {
				mc.log.Warn().Err(err).Int("sample", idx).Float64("t", t).Msg("event state evaluation failed")
				return
			}
			out.eventState[savePointIdx][idx] = es

			po, err := mc.model.PredictedOutputEqn(t, x, u)
			if err != nil {
				mc.log.Warn().Err(err).Int("sample", idx).Float64("t", t).Msg("predicted output evaluation failed")
				return
			}
			for oi, name := range outputNames {
				out.systemState[name][savePointIdx][idx] = po.At(oi, 0)
			}
			savePointIdx++
		}

		noise := matrix.New(nx, 1)
		for i := 0; i < nx; i++ {
			noise.Set(i, 0, src.NormFloat64()*math.Sqrt(mc.cfg.ProcessNoise[i]))
		}
		xNext, err := mc.model.StateEqn(t, x, u, noise, mc.cfg.Dt)
		if err != nil {
			mc.log.Warn().Err(err).Int("sample", idx).Float64("t", t).Msg("state propagation failed")
			return
		}
		x = xNext
	}
}
