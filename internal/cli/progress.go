package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/agbru/primefind/internal/format"
	"github.com/agbru/primefind/internal/search"
	"github.com/agbru/primefind/internal/ui"
)

// DisplayProgress renders a spinner with an aggregated progress bar and ETA
// until progressChan is closed.
//
// Parameters:
//   - wg: Signaled when the display has stopped.
//   - progressChan: Updates from the search workers.
//   - numWorkers: The number of workers reporting.
//   - out: The writer the spinner draws on.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan search.ProgressUpdate, numWorkers int, out io.Writer) {
	defer wg.Done()
	agg := search.NewProgressAggregator(numWorkers)
	if agg == nil {
		search.DrainChannel(progressChan)
		return
	}

	s := newSpinner(out)
	s.UpdateSuffix(progressSuffix(0, 0))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.UpdateSuffix(progressSuffix(agg.Average(), 0))
				return
			}
			agg.Update(update)
		case <-ticker.C:
			s.UpdateSuffix(progressSuffix(agg.Average(), agg.ETA()))
		}
	}
}

func progressSuffix(progress float64, eta time.Duration) string {
	return fmt.Sprintf(" %sSearching%s %s", ui.ColorPrimary(), ui.ColorReset(),
		format.FormatProgressBarWithETA(progress, eta, ProgressBarWidth))
}
