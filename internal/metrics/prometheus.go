package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	apperrors "github.com/agbru/primefind/internal/errors"
	"github.com/agbru/primefind/internal/search"
)

const namespace = "primefind"

// Collector records search runs on a private Prometheus registry.
// It implements search.Recorder.
type Collector struct {
	registry    *prometheus.Registry
	runs        *prometheus.CounterVec
	primes      *prometheus.CounterVec
	candidates  *prometheus.CounterVec
	oracleTasks *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	lastPrimes  *prometheus.GaugeVec
}

var _ search.Recorder = (*Collector)(nil)

// NewCollector creates a Collector with Go runtime metrics registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed search runs.",
		}, []string{"scheme", "emit_mode"}),
		primes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "primes_found_total",
			Help:      "Primes found across runs.",
		}, []string{"scheme"}),
		candidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_tested_total",
			Help:      "Candidates tested across runs.",
		}, []string{"scheme"}),
		oracleTasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "oracle_tasks_total",
			Help:      "Divisor tasks spawned by the parallel primality oracle.",
		}, []string{"scheme"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of search runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"scheme"}),
		lastPrimes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_primes",
			Help:      "Primes found by the most recent run.",
		}, []string{"scheme"}),
	}
	c.registry.MustRegister(
		c.runs, c.primes, c.candidates, c.oracleTasks, c.duration, c.lastPrimes,
		collectors.NewGoCollector(),
	)
	return c
}

// ObserveRun records one finished run.
func (c *Collector) ObserveRun(o search.Outcome) {
	scheme := string(o.Scheme)
	c.runs.WithLabelValues(scheme, string(o.Config.EmitMode)).Inc()
	c.primes.WithLabelValues(scheme).Add(float64(o.Count()))
	c.candidates.WithLabelValues(scheme).Add(float64(o.Candidates))
	c.oracleTasks.WithLabelValues(scheme).Add(float64(o.OracleTasks))
	c.duration.WithLabelValues(scheme).Observe(o.Elapsed.Seconds())
	c.lastPrimes.WithLabelValues(scheme).Set(float64(o.Count()))
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// WriteTextfile writes every metric to path in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return apperrors.WrapError(err, "writing metrics to %s", path)
	}
	return nil
}
