package search

import (
	"io"
	"sync"
	"time"
)

// Notification announces a prime discovered by a worker in immediate mode.
type Notification struct {
	// Worker is the 1-based id of the discovering worker.
	Worker int
	// Value is the prime.
	Value int
	// At is the discovery time.
	At time.Time
}

// Notifier receives immediate-mode discoveries. Notify is called concurrently
// from every worker; implementations must serialize their own output.
//
//go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks github.com/agbru/primefind/internal/search Notifier
type Notifier interface {
	Notify(n Notification)
}

// NullNotifier discards every notification.
type NullNotifier struct{}

// Notify does nothing.
func (NullNotifier) Notify(Notification) {}

// ProgressUpdate reports the completed fraction of one worker's unit.
type ProgressUpdate struct {
	// WorkerIndex is the 0-based index of the worker.
	WorkerIndex int
	// Value is the completed fraction in [0, 1].
	Value float64
}

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking worker
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// ProgressReporter defines the interface for displaying search progress.
// This interface decouples the coordinator from the presentation layer.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It is called in a separate goroutine and must run until progressChan
	// is closed, then call wg.Done.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from workers.
	//   - numWorkers: The number of concurrent workers being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numWorkers int, out io.Writer)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// Recorder receives per-run measurements. internal/metrics provides the
// Prometheus implementation.
type Recorder interface {
	ObserveRun(o Outcome)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRun(Outcome) {}

// ResultPresenter presents finished runs.
type ResultPresenter interface {
	// PresentComparisonTable displays one row per scheme run.
	PresentComparisonTable(results []SchemeResult, out io.Writer)
	// PresentOutcome displays the report of a single run.
	PresentOutcome(o Outcome, out io.Writer)
}
