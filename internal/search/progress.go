package search

import (
	"time"

	"github.com/agbru/primefind/internal/format"
)

// ProgressAggregator folds per-unit progress updates into one run-wide
// fraction and ETA. It is not safe for concurrent use; each display owns one
// and feeds it from the progress channel.
type ProgressAggregator struct {
	eta      *format.ProgressWithETA
	finished []bool
	done     int
}

// NewProgressAggregator returns an aggregator for a run split into units
// work units, or nil when units is not positive.
func NewProgressAggregator(units int) *ProgressAggregator {
	if units <= 0 {
		return nil
	}
	return &ProgressAggregator{
		eta:      format.NewProgressWithETA(units),
		finished: make([]bool, units),
	}
}

// AggregatedProgress is the run-wide view after one update.
type AggregatedProgress struct {
	// WorkerIndex is the 0-based unit that reported.
	WorkerIndex int
	// Value is that unit's completed fraction.
	Value float64
	// AverageProgress is the mean fraction over all units.
	AverageProgress float64
	// ETA is the smoothed time left, zero while unknown.
	ETA time.Duration
	// Finished counts units that have sent their final update.
	Finished int
}

// Update records one unit's progress. A value of 1 marks the unit finished.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	avg, eta := a.eta.UpdateWithETA(update.WorkerIndex, update.Value)
	if i := update.WorkerIndex; update.Value >= 1 && i >= 0 && i < len(a.finished) && !a.finished[i] {
		a.finished[i] = true
		a.done++
	}
	return AggregatedProgress{
		WorkerIndex:     update.WorkerIndex,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             eta,
		Finished:        a.done,
	}
}

// Average returns the mean fraction over all units.
func (a *ProgressAggregator) Average() float64 { return a.eta.CalculateAverage() }

// ETA returns the current estimate; the spinner polls it between updates.
func (a *ProgressAggregator) ETA() time.Duration { return a.eta.GetETA() }

// Complete reports whether every unit has sent its final update.
func (a *ProgressAggregator) Complete() bool { return a.done == len(a.finished) }

// DrainChannel discards updates until the channel is closed.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
