// SPDX-License-Identifier: MIT

package job

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtopo/filtration"
	"github.com/katalvlaran/lvtopo/metric"
	"github.com/katalvlaran/lvtopo/persistence"
	"github.com/katalvlaran/lvtopo/progress"
	"github.com/katalvlaran/lvtopo/rips"
)

// distanceTol bounds asymmetry and diagonal drift of a YAML distance matrix.
const distanceTol = 1e-9

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	log           *zap.Logger
	runID         uuid.UUID
	progressEvery int
}

// WithLogger routes stage checkpoints and job events to log.
func WithLogger(log *zap.Logger) RunOption {
	return func(c *runConfig) { c.log = log }
}

// WithRunID fixes the run id instead of generating one.
func WithRunID(id uuid.UUID) RunOption {
	return func(c *runConfig) { c.runID = id }
}

// WithProgressEvery sets the reduction tick period in simplices.
func WithProgressEvery(n int) RunOption {
	return func(c *runConfig) { c.progressEvery = n }
}

// Run builds the complex named by s, computes its persistence and evaluates
// the requested Betti numbers.
//
// Errors are those of the underlying packages (simplex, filtration, rips,
// metric, persistence), wrapped with the job name.
func Run(s *Spec, opts ...RunOption) (*Result, error) {
	cfg := runConfig{
		log:           zap.NewNop(),
		runID:         uuid.New(),
		progressEvery: persistence.DefaultOptions().ProgressEvery,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = zap.NewNop()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	log := cfg.log.With(zap.String("run_id", cfg.runID.String()), zap.String("job", s.Name))
	rep := progress.NewZap(log)
	start := time.Now()
	log.Info("job started")

	c, err := build(s, rep)
	if err != nil {
		log.Warn("job failed", zap.Error(err))
		return nil, fmt.Errorf("job %s: %w", s.Name, err)
	}

	popts := []persistence.Option{
		persistence.WithField(s.FieldOrDefault()),
		persistence.WithReporter(rep),
		persistence.WithProgressEvery(cfg.progressEvery),
	}
	if s.Strict {
		popts = append(popts, persistence.WithStrict())
	}
	eng, err := persistence.New(c, popts...)
	if err != nil {
		log.Warn("job failed", zap.Error(err))
		return nil, fmt.Errorf("job %s: %w", s.Name, err)
	}
	eng.ComputeIntervals()

	res, err := collect(s, eng)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", s.Name, err)
	}
	res.RunID = cfg.runID.String()

	log.Info("job finished",
		zap.Int("simplices", res.Simplices),
		zap.Int("dimension", res.Dimension),
		zap.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}

// build turns the job input into a filtered complex.
func build(s *Spec, rep progress.Reporter) (*filtration.Complex, error) {
	if s.Rips == nil {
		c := filtration.New(filtration.WithReporter(rep))
		for _, e := range s.Complex {
			if err := c.InsertVertices(e.Simplex, e.Degree); err != nil {
				return nil, err
			}
		}

		return c, nil
	}

	r := s.Rips
	ropts := []rips.Option{rips.WithReporter(rep)}
	if r.Threshold != nil {
		ropts = append(ropts, rips.WithThreshold(*r.Threshold))
	}

	var (
		b   *rips.Builder
		err error
	)
	if len(r.Distances) > 0 {
		m, merr := metric.FromRows(r.Distances, distanceTol)
		if merr != nil {
			return nil, merr
		}
		b, err = rips.FromDistances(m, ropts...)
	} else {
		fn, ok := metric.ByName(r.Distance)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDistance, r.Distance)
		}
		b, err = rips.New(r.Points, append(ropts, rips.WithDistance(fn))...)
	}
	if err != nil {
		return nil, err
	}

	return b.ComputeSkeleton(r.MaxSize)
}

// collect copies the requested diagrams and Betti numbers out of eng.
func collect(s *Spec, eng *persistence.Engine) (*Result, error) {
	res := &Result{
		Name:      s.Name,
		Field:     eng.Field().Size(),
		Strict:    s.Strict,
		Simplices: eng.Len(),
		Dimension: eng.Dimension(),
		Diagrams:  []Diagram{},
	}

	dims := s.Dimensions
	if len(dims) == 0 {
		for k := 0; k <= eng.Dimension(); k++ {
			dims = append(dims, k)
		}
	}
	for _, k := range dims {
		ivs, err := eng.Intervals(k)
		if err != nil {
			return nil, err
		}
		d := Diagram{Dim: k, Intervals: make([]Bar, 0, len(ivs))}
		for _, iv := range ivs {
			d.Intervals = append(d.Intervals, Bar(iv))
		}
		res.Diagrams = append(res.Diagrams, d)
	}

	for _, q := range s.Betti {
		n, err := eng.BettiNumber(q.Dim, q.At, q.Persistence)
		if err != nil {
			return nil, err
		}
		res.Betti = append(res.Betti, BettiValue{Dim: q.Dim, At: q.At, Persistence: q.Persistence, Value: n})
	}

	return res, nil
}
