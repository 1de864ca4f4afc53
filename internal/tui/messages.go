package tui

import (
	"time"

	"github.com/agbru/primefind/internal/metrics"
	"github.com/agbru/primefind/internal/search"
)

// PrimeMsg carries one immediate-mode discovery.
type PrimeMsg struct {
	search.Notification
}

// ProgressMsg carries an aggregated progress update.
type ProgressMsg struct {
	WorkerIndex     int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// ProgressDoneMsg signals that a run's progress channel was closed.
type ProgressDoneMsg struct{}

// OutcomeMsg carries the outcome selected for presentation.
type OutcomeMsg struct {
	Outcome search.Outcome
}

// ComparisonResultsMsg carries the per-scheme results of a run.
type ComparisonResultsMsg struct {
	Results []search.SchemeResult
}

// RunCompleteMsg signals that all schemes of a run have finished.
type RunCompleteMsg struct {
	ExitCode int
	Run      int
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// MemStatsMsg carries a resource snapshot.
type MemStatsMsg struct {
	Snapshot metrics.ResourceSnapshot
}
