// Package bench runs a synthetic workload against a shared profiler
// and reports the resulting latency statistics.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hotloop/tickprof"
	"github.com/hotloop/tickprof/clock"
)

// Runner executes the configured benchmark workload.
type Runner struct {
	log logrus.FieldLogger
	cfg *Config
}

// Result holds the outcome of a completed benchmark run.
type Result struct {
	// SourceName is the timestamp source that was used
	// (counter or wall).
	SourceName string
	// FrequencyHz is the source's tick rate, 0 when unknown.
	FrequencyHz uint64
	// Elapsed is the wall time of the whole run.
	Elapsed time.Duration
	// Profiler holds the accumulated statistics.
	Profiler *tickprof.Profiler
}

// New creates a benchmark Runner.
func New(log logrus.FieldLogger, cfg *Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &Runner{
		log: log.WithField("component", "bench"),
		cfg: cfg,
	}, nil
}

// Run executes the workload: Workers goroutines each bracket
// Iterations spin-loop executions with Start/Stop on one shared
// profiler. Cancelling ctx stops the run between iterations.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	src, name, err := r.resolveSource()
	if err != nil {
		return nil, err
	}

	r.log.WithFields(logrus.Fields{
		"source":       name,
		"frequency_hz": src.Frequency(),
		"workers":      r.cfg.Workers,
		"iterations":   r.cfg.Iterations,
	}).Info("Starting benchmark run")

	prof := tickprof.New(src)
	begin := time.Now()

	g, ctx := errgroup.WithContext(ctx)

	for range r.cfg.Workers {
		g.Go(func() error {
			for i := 0; i < r.cfg.Iterations; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				t := prof.Start()
				spin(r.cfg.WorkSize)
				prof.Stop(t)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("running workload: %w", err)
	}

	elapsed := time.Since(begin)

	r.log.WithFields(logrus.Fields{
		"events":  prof.TotalEvents(),
		"elapsed": elapsed,
	}).Info("Benchmark run complete")

	return &Result{
		SourceName:  name,
		FrequencyHz: src.Frequency(),
		Elapsed:     elapsed,
		Profiler:    prof,
	}, nil
}

// resolveSource maps the configured source name to a clock.Source.
func (r *Runner) resolveSource() (clock.Source, string, error) {
	switch r.cfg.Source {
	case SourceCounter:
		c, err := clock.NewCounter()
		if err != nil {
			return nil, "", fmt.Errorf("opening hardware counter: %w", err)
		}

		return c, SourceCounter, nil

	case SourceWall:
		return clock.NewWall(), SourceWall, nil

	default: // auto
		info := clock.Detect()

		if info.Available && info.Invariant {
			c, err := clock.NewCounter()
			if err == nil {
				return c, SourceCounter, nil
			}

			r.log.WithError(err).
				Warn("Hardware counter detected but unusable")
		} else {
			r.log.WithFields(logrus.Fields{
				"available": info.Available,
				"invariant": info.Invariant,
			}).Info("No invariant hardware counter, using wall clock")
		}

		return clock.NewWall(), SourceWall, nil
	}
}

// spinSink keeps the spin loop observable so it is not optimized away.
var spinSink int32

// spin burns CPU for a roughly fixed number of iterations so measured
// durations stay comparable between events.
func spin(n int) {
	x := int32(1)
	for i := 0; i < n; i++ {
		x += int32(i)
	}

	spinSink = x
}
