package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/internal/parallel"
)

// Stream is a named source of a freshly built generator. Open is called
// once per run, from the goroutine that will own the generator.
type Stream struct {
	Name string
	Open func() (*mt19937.MT19937, error)
}

// Result pairs a stream with its report and the generator in the state it
// was left in after sampling.
type Result struct {
	Stream    string
	Report    Report
	Generator *mt19937.MT19937
}

// Summary is the outcome of one Runner.Run call.
type Summary struct {
	Results []Result
	Started time.Time
	Elapsed time.Duration
}

// Runner draws doubles from several streams concurrently and reports on
// each. The zero value is not usable; set Samples and Buckets.
type Runner struct {
	Samples int
	Buckets int
	Workers int

	Clock  quartz.Clock
	Logger *log.Logger
}

// checkEvery is how many samples are drawn between context checks.
const checkEvery = 1 << 14

// Run samples every stream. Results are in the order of streams.
func (r *Runner) Run(ctx context.Context, streams []Stream) (*Summary, error) {
	if r.Samples <= 0 {
		return nil, fmt.Errorf("stats: samples must be positive, got %d", r.Samples)
	}
	clock := r.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	workers := r.Workers
	if workers <= 0 {
		workers = parallel.NumWorkers()
	}

	started := clock.Now()
	logger.Debug("Sampling streams", "streams", len(streams), "samples", r.Samples, "workers", workers)

	results, err := parallel.Map(ctx, len(streams), workers, func(ctx context.Context, i int) (Result, error) {
		s := streams[i]
		g, err := s.Open()
		if err != nil {
			return Result{}, fmt.Errorf("stream %q: %w", s.Name, err)
		}

		samples := make([]float64, r.Samples)
		for j := range samples {
			if j%checkEvery == 0 {
				if err := ctx.Err(); err != nil {
					return Result{}, err
				}
			}
			samples[j] = g.Float64()
		}

		rep, err := Uniformity(samples, r.Buckets)
		if err != nil {
			return Result{}, fmt.Errorf("stream %q: %w", s.Name, err)
		}
		logger.Debug("Stream sampled", "stream", s.Name, "mean", rep.Mean, "chi2", rep.ChiSquare, "p", rep.PValue)
		return Result{Stream: s.Name, Report: rep, Generator: g}, nil
	})
	if err != nil {
		return nil, err
	}

	return &Summary{
		Results: results,
		Started: started,
		Elapsed: clock.Since(started),
	}, nil
}
