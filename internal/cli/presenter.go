package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/agbru/primefind/internal/config"
	"github.com/agbru/primefind/internal/format"
	"github.com/agbru/primefind/internal/metrics"
	"github.com/agbru/primefind/internal/search"
	"github.com/agbru/primefind/internal/ui"
)

// CLIProgressReporter implements search.ProgressReporter with the spinner
// display.
type CLIProgressReporter struct{}

var _ search.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for a running search.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan search.ProgressUpdate, numWorkers int, out io.Writer) {
	DisplayProgress(wg, progressChan, numWorkers, out)
}

// CLIResultPresenter implements search.ResultPresenter for terminal output.
type CLIResultPresenter struct {
	// ListPrimes prints the full "Prime: n" listing for deferred runs.
	ListPrimes bool
}

var _ search.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays one row per scheme with its duration,
// prime count and status. Padding is computed on the raw text so that ANSI
// codes do not break alignment.
func (CLIResultPresenter) PresentComparisonTable(results []search.SchemeResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := 6     // "Scheme"
	maxDurationLen := 8 // "Duration"
	maxCountLen := 6    // "Primes"
	for _, res := range results {
		maxNameLen = max(maxNameLen, len(res.Scheme))
		maxDurationLen = max(maxDurationLen, len(tableDuration(res)))
		maxCountLen = max(maxCountLen, len(tableCount(res)))
	}

	fmt.Fprintf(out, "%sScheme%s%s   %sDuration%s%s   %sPrimes%s%s   %sStatus%s\n",
		ui.ColorBold(), ui.ColorReset(), padRight("", maxNameLen-6),
		ui.ColorBold(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorBold(), ui.ColorReset(), padRight("", maxCountLen-6),
		ui.ColorBold(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		}
		name := string(res.Scheme)
		duration := tableDuration(res)
		count := tableCount(res)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s%s   %s\n",
			ui.ColorCyan(), name, ui.ColorReset(), padRight("", maxNameLen-len(name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			count, padRight("", maxCountLen-len(count)),
			status)
	}
}

func tableDuration(res search.SchemeResult) string {
	if res.Err != nil {
		return "-"
	}
	if res.Outcome.Elapsed == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(res.Outcome.Elapsed)
}

func tableCount(res search.SchemeResult) string {
	if res.Err != nil {
		return "-"
	}
	return format.FormatCount(res.Outcome.Count())
}

// PresentOutcome prints the deferred listing when enabled, then the summary.
func (p CLIResultPresenter) PresentOutcome(o search.Outcome, out io.Writer) {
	if p.ListPrimes && o.Config.EmitMode == config.EmitDeferred {
		DisplayPrimes(o.Primes, out)
	}
	DisplaySummary(o, out)
}

// DisplayResourceUsage shows memory and CPU statistics measured around a run.
func DisplayResourceUsage(u metrics.ResourceUsage, out io.Writer) {
	fmt.Fprintf(out, "\nResource Usage:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(u.PeakHeapAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", u.GCCycles)
	if u.GCPause > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(u.GCPause.Nanoseconds())/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms\n")
	}
	if u.CPUAvailable {
		fmt.Fprintf(out, "  CPU time:        user %s, system %s\n",
			format.FormatExecutionDuration(u.UserCPU), format.FormatExecutionDuration(u.SystemCPU))
	}
}
