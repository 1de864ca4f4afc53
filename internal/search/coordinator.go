package search

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/primefind/internal/config"
	apperrors "github.com/agbru/primefind/internal/errors"
	"github.com/agbru/primefind/internal/logging"
	"github.com/agbru/primefind/internal/partition"
	"github.com/agbru/primefind/internal/primality"
)

const tracerName = "github.com/agbru/primefind/internal/search"

// progressSteps is the number of intermediate progress reports per unit.
const progressSteps = 100

// Coordinator runs prime searches. A Coordinator may be reused for several
// sequential runs but must not run two searches at once.
type Coordinator struct {
	notifier    Notifier
	logger      logging.Logger
	recorder    Recorder
	reporter    ProgressReporter
	progressOut io.Writer
	now         func() time.Time
	tracer      trace.Tracer

	state atomic.Int32
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithNotifier sets the immediate-mode notifier.
func WithNotifier(n Notifier) Option {
	return func(c *Coordinator) { c.notifier = n }
}

// WithLogger sets the logger for run lifecycle events.
func WithLogger(l logging.Logger) Option {
	return func(c *Coordinator) { c.logger = l }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Coordinator) { c.recorder = r }
}

// WithProgressReporter sets the progress display and its output.
func WithProgressReporter(r ProgressReporter, out io.Writer) Option {
	return func(c *Coordinator) {
		c.reporter = r
		c.progressOut = out
	}
}

// WithClock replaces time.Now for discovery and run timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// WithTracerProvider sets the OpenTelemetry tracer provider. The global
// provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Coordinator) { c.tracer = tp.Tracer(tracerName) }
}

// NewCoordinator creates an idle Coordinator.
func NewCoordinator(opts ...Option) *Coordinator {
	c := &Coordinator{
		notifier:    NullNotifier{},
		logger:      logging.NopLogger{},
		recorder:    nopRecorder{},
		reporter:    NullProgressReporter{},
		progressOut: io.Discard,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}
	return c
}

// State returns the current lifecycle phase. It is safe to call from any
// goroutine.
func (c *Coordinator) State() State { return State(c.state.Load()) }

func (c *Coordinator) setState(s State) { c.state.Store(int32(s)) }

// Run searches [1, cfg.UpperBound] for primes with cfg.Workers workers.
//
// The configuration is validated first; an invalid configuration returns a
// ValidationError and never starts a run. A started run always completes:
// ctx carries trace and log values only.
//
// Parameters:
//   - ctx: The context carrying trace spans.
//   - cfg: The search configuration.
//
// Returns:
//   - Outcome: The sorted primes with timing and task counts.
//   - error: A configuration error, or nil.
func (c *Coordinator) Run(ctx context.Context, cfg config.SearchConfig) (Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return Outcome{}, err
	}
	units, err := partition.Range(cfg.UpperBound, cfg.Workers)
	if err != nil {
		return Outcome{}, apperrors.SearchError{Scheme: string(cfg.Scheme), Cause: err}
	}

	ctx, span := c.tracer.Start(ctx, "search.Run", trace.WithAttributes(
		attribute.String("scheme", string(cfg.Scheme)),
		attribute.String("emit_mode", string(cfg.EmitMode)),
		attribute.Int("workers", cfg.Workers),
		attribute.Int("upper_bound", cfg.UpperBound),
	))
	defer span.End()

	c.setState(StateRunning)
	c.logger.Info("search started",
		logging.String("scheme", string(cfg.Scheme)),
		logging.String("emit_mode", string(cfg.EmitMode)),
		logging.Int("workers", cfg.Workers),
		logging.Int("upper_bound", cfg.UpperBound))

	var (
		oracle   primality.Oracle = primality.Serial{}
		parallel *primality.Parallel
	)
	if cfg.Scheme == config.SchemeDivisibility {
		parallel = primality.NewParallel(cfg.Workers)
		oracle = parallel
	}

	results := NewResultSet(estimatePrimeCount(cfg.UpperBound))
	progressChan := make(chan ProgressUpdate, len(units)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go c.reporter.DisplayProgress(&displayWg, progressChan, len(units), c.progressOut)

	start := c.now()
	var g errgroup.Group
	for idx, unit := range units {
		g.Go(func() error {
			c.runUnit(ctx, idx, unit, oracle, cfg.EmitMode, results, progressChan)
			return nil
		})
	}
	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	c.setState(StateAggregating)
	primes := results.SnapshotSorted()
	end := c.now()

	outcome := Outcome{
		Scheme:     cfg.Scheme,
		Config:     cfg,
		Primes:     primes,
		Start:      start,
		End:        end,
		Elapsed:    end.Sub(start),
		Candidates: cfg.UpperBound,
	}
	if parallel != nil {
		outcome.OracleTasks = parallel.Tasks()
	}

	span.SetAttributes(
		attribute.Int("primes", outcome.Count()),
		attribute.Int64("oracle_tasks", outcome.OracleTasks),
	)
	c.recorder.ObserveRun(outcome)
	c.logger.Info("search finished",
		logging.String("scheme", string(cfg.Scheme)),
		logging.Int("primes", outcome.Count()),
		logging.Duration("elapsed", outcome.Elapsed))
	c.setState(StateDone)
	return outcome, nil
}

// runUnit tests every candidate of unit and records the primes.
func (c *Coordinator) runUnit(ctx context.Context, idx int, unit partition.WorkUnit, oracle primality.Oracle, mode config.EmitMode, results *ResultSet, progressChan chan<- ProgressUpdate) {
	_, span := c.tracer.Start(ctx, "search.worker", trace.WithAttributes(
		attribute.Int("worker", unit.Worker),
		attribute.Int("start", unit.Start),
		attribute.Int("end", unit.End),
	))
	defer span.End()

	total := unit.Len()
	step := max(1, total/progressSteps)
	found := 0
	for n := unit.Start; n <= unit.End; n++ {
		if oracle.IsPrime(n) {
			found++
			results.Add(n)
			if mode == config.EmitImmediate {
				c.notifier.Notify(Notification{Worker: unit.Worker, Value: n, At: c.now()})
			}
		}
		if done := n - unit.Start + 1; done%step == 0 && done < total {
			reportProgress(progressChan, idx, float64(done)/float64(total))
		}
	}
	// The final update is never dropped so displays reach 100%.
	progressChan <- ProgressUpdate{WorkerIndex: idx, Value: 1}

	span.SetAttributes(attribute.Int("primes", found))
	c.logger.Debug("worker finished",
		logging.Int("worker", unit.Worker),
		logging.Int("start", unit.Start),
		logging.Int("end", unit.End),
		logging.Int("primes", found))
}

// reportProgress sends a non-blocking update; it is dropped when the
// channel is full.
func reportProgress(progressChan chan<- ProgressUpdate, idx int, value float64) {
	select {
	case progressChan <- ProgressUpdate{WorkerIndex: idx, Value: value}:
	default:
	}
}
