// Package calibration benchmarks worker counts for a division scheme and
// reports the fastest one.
package calibration

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/primefind/internal/config"
	"github.com/agbru/primefind/internal/logging"
	"github.com/agbru/primefind/internal/search"
)

// MaxCalibrationBound caps the bound searched by each benchmark run.
const MaxCalibrationBound = 1 << 18

// DefaultRepeats is the number of timed runs per worker count.
const DefaultRepeats = 3

// Options configures a calibration.
type Options struct {
	Scheme       config.Scheme
	UpperBound   int
	WorkerCounts []int
	Repeats      int
	Logger       logging.Logger
}

// calibrationResult is the best timing measured for one worker count.
type calibrationResult struct {
	Workers  int
	Duration time.Duration
	Primes   int
	Err      error
}

// Result summarizes a calibration.
type Result struct {
	Scheme      config.Scheme
	UpperBound  int
	BestWorkers int
	BestTime    time.Duration
	results     []calibrationResult
}

// Bound returns the bound used for calibrating against upperBound.
func Bound(upperBound int) int {
	return max(1, min(upperBound, MaxCalibrationBound))
}

// Run benchmarks every worker count and prints the summary table to out.
// Each count is timed Repeats times on the same bound and its fastest run
// is kept; the best count is the fastest overall, ties going to fewer
// workers.
func Run(ctx context.Context, opts Options, out io.Writer) (Result, error) {
	if opts.Scheme == config.SchemeAll || opts.Scheme == "" {
		opts.Scheme = config.SchemeRange
	}
	bound := Bound(opts.UpperBound)
	if len(opts.WorkerCounts) == 0 {
		opts.WorkerCounts = GenerateWorkerCounts(bound)
	}
	if opts.Repeats < 1 {
		opts.Repeats = DefaultRepeats
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger{}
	}

	fmt.Fprintf(out, "Calibrating the %s scheme on [1, %d] with %d worker counts...\n",
		opts.Scheme, bound, len(opts.WorkerCounts))

	coordinator := search.NewCoordinator(search.WithLogger(opts.Logger))
	res := Result{Scheme: opts.Scheme, UpperBound: bound}
	for _, w := range opts.WorkerCounts {
		cr := measure(ctx, coordinator, config.SearchConfig{
			Workers:    w,
			UpperBound: bound,
			EmitMode:   config.EmitDeferred,
			Scheme:     opts.Scheme,
		}, opts.Repeats)
		opts.Logger.Debug("calibration point",
			logging.Int("workers", w), logging.Duration("best", cr.Duration), logging.Err(cr.Err))
		res.results = append(res.results, cr)
		if cr.Err == nil && (res.BestWorkers == 0 || cr.Duration < res.BestTime) {
			res.BestWorkers = cr.Workers
			res.BestTime = cr.Duration
		}
	}

	if res.BestWorkers == 0 {
		return res, fmt.Errorf("calibration failed: no worker count completed")
	}
	printCalibrationResults(out, res.results, res.BestWorkers)
	return res, nil
}

// measure runs cfg repeats times and keeps the fastest elapsed time.
func measure(ctx context.Context, c *search.Coordinator, cfg config.SearchConfig, repeats int) calibrationResult {
	cr := calibrationResult{Workers: cfg.Workers}
	for i := range repeats {
		o, err := c.Run(ctx, cfg)
		if err != nil {
			cr.Err = err
			return cr
		}
		if i == 0 || o.Elapsed < cr.Duration {
			cr.Duration = o.Elapsed
		}
		cr.Primes = o.Count()
	}
	return cr
}
