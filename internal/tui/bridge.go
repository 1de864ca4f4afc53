package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/primefind/internal/search"
)

// programRef is a shared reference to the tea.Program.
// bubbletea copies the model on every Update, so the bridges hold a pointer
// that survives the copies.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe). It is a
// no-op until a program is set.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUINotifier forwards discoveries to the dashboard.
type TUINotifier struct {
	ref *programRef
}

var _ search.Notifier = (*TUINotifier)(nil)

// Notify sends a PrimeMsg.
func (t *TUINotifier) Notify(n search.Notification) {
	t.ref.Send(PrimeMsg{Notification: n})
}

// TUIProgressReporter drains the progress channel and forwards aggregated
// updates as bubbletea messages.
type TUIProgressReporter struct {
	ref *programRef
}

var _ search.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress implements search.ProgressReporter.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan search.ProgressUpdate, numWorkers int, _ io.Writer) {
	defer wg.Done()

	agg := search.NewProgressAggregator(numWorkers)
	if agg == nil {
		search.DrainChannel(progressChan)
		return
	}

	for update := range progressChan {
		ap := agg.Update(update)
		t.ref.Send(ProgressMsg{
			WorkerIndex:     ap.WorkerIndex,
			Value:           ap.Value,
			AverageProgress: ap.AverageProgress,
			ETA:             ap.ETA,
		})
	}
	t.ref.Send(ProgressDoneMsg{})
}

// TUIResultPresenter sends results to the dashboard instead of a writer.
type TUIResultPresenter struct {
	ref *programRef
}

var _ search.ResultPresenter = (*TUIResultPresenter)(nil)

// PresentComparisonTable sends the per-scheme results.
func (t *TUIResultPresenter) PresentComparisonTable(results []search.SchemeResult, _ io.Writer) {
	t.ref.Send(ComparisonResultsMsg{Results: results})
}

// PresentOutcome sends the selected outcome.
func (t *TUIResultPresenter) PresentOutcome(o search.Outcome, _ io.Writer) {
	t.ref.Send(OutcomeMsg{Outcome: o})
}
