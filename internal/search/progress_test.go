package search

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/primefind/internal/config"
)

func TestNewProgressAggregator_NonPositive(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, -1} {
		assert.Nil(t, NewProgressAggregator(n), "units=%d", n)
	}
}

func TestProgressAggregator_FinalUpdatesComplete(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(2)
	assert.False(t, agg.Complete())
	assert.Zero(t, agg.ETA(), "no estimate before any update")

	ap := agg.Update(ProgressUpdate{WorkerIndex: 0, Value: 0.5})
	assert.Equal(t, 0.25, ap.AverageProgress)
	assert.Zero(t, ap.Finished)

	ap = agg.Update(ProgressUpdate{WorkerIndex: 0, Value: 1})
	assert.Equal(t, 0.5, ap.AverageProgress)
	assert.Equal(t, 1, ap.Finished)
	assert.False(t, agg.Complete())

	// A repeated final update does not count twice.
	ap = agg.Update(ProgressUpdate{WorkerIndex: 0, Value: 1})
	assert.Equal(t, 1, ap.Finished)

	ap = agg.Update(ProgressUpdate{WorkerIndex: 1, Value: 1})
	assert.Equal(t, 2, ap.Finished)
	assert.Equal(t, 1.0, agg.Average())
	assert.True(t, agg.Complete())
	assert.Zero(t, ap.ETA, "no time left once every unit is done")
}

func TestProgressAggregator_IgnoresUnknownUnit(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(1)
	ap := agg.Update(ProgressUpdate{WorkerIndex: 5, Value: 1})
	assert.Zero(t, ap.Finished)
	assert.Zero(t, agg.Average())
}

// TestProgressAggregator_FedByRun checks that a real run's updates, empty
// leading units included, drive the aggregator to completion.
func TestProgressAggregator_FedByRun(t *testing.T) {
	t.Parallel()
	var (
		agg       *ProgressAggregator
		last      AggregatedProgress
		decreased bool
	)
	reporter := progressReporterFunc(func(wg *sync.WaitGroup, ch <-chan ProgressUpdate, n int, _ io.Writer) {
		defer wg.Done()
		agg = NewProgressAggregator(n)
		prev := 0.0
		for u := range ch {
			last = agg.Update(u)
			if last.AverageProgress < prev {
				decreased = true
			}
			prev = last.AverageProgress
		}
	})

	// More workers than candidates leaves leading units empty.
	for _, cfg := range []config.SearchConfig{
		searchConfig(5000, 4, config.EmitDeferred, config.SchemeRange),
		searchConfig(3, 6, config.EmitDeferred, config.SchemeDivisibility),
	} {
		c := NewCoordinator(WithProgressReporter(reporter, io.Discard))
		_, err := c.Run(context.Background(), cfg)
		require.NoError(t, err)

		require.NotNil(t, agg)
		assert.True(t, agg.Complete(), "workers=%d", cfg.Workers)
		assert.Equal(t, cfg.Workers, last.Finished)
		assert.Equal(t, 1.0, agg.Average())
		assert.False(t, decreased, "average progress went backwards")
	}
}

func TestDrainChannel(t *testing.T) {
	t.Parallel()
	ch := make(chan ProgressUpdate, 2)
	ch <- ProgressUpdate{WorkerIndex: 0, Value: 0.1}
	ch <- ProgressUpdate{WorkerIndex: 0, Value: 1}
	close(ch)
	DrainChannel(ch)
	_, open := <-ch
	assert.False(t, open)
}

func TestReportProgress_DropsWhenFull(t *testing.T) {
	t.Parallel()
	ch := make(chan ProgressUpdate, 1)
	reportProgress(ch, 0, 0.1)
	reportProgress(ch, 0, 0.2) // must not block
	got := <-ch
	assert.Equal(t, 0.1, got.Value)
}
