package cli

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/primefind/internal/config"
	"github.com/agbru/primefind/internal/format"
	"github.com/agbru/primefind/internal/search"
	"github.com/agbru/primefind/internal/ui"
)

// PrintExecutionConfig displays the run configuration banner.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "%s=== Prime Search Configuration ===%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Number of threads: %s%d%s\n", ui.ColorCyan(), cfg.Threads, ui.ColorReset())
	fmt.Fprintf(out, "Max number:        %s%s%s", ui.ColorCyan(), format.FormatCount(cfg.UpperBound()), ui.ColorReset())
	if cfg.MaxNumber == 0 {
		fmt.Fprintf(out, " (2^%d)", cfg.Exponent)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Print mode:        %s%s%s\n", ui.ColorCyan(), describeEmitMode(cfg.PrintMode), ui.ColorReset())
	fmt.Fprintf(out, "Division scheme:   %s%s%s\n", ui.ColorCyan(), cfg.Scheme, ui.ColorReset())
	fmt.Fprintf(out, "Environment:       %d logical CPUs, Go %s, %s/%s\n",
		runtime.NumCPU(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func describeEmitMode(mode string) string {
	if m, err := config.ParseEmitMode(mode); err == nil && m == config.EmitImmediate {
		return "immediate (print primes as they are found)"
	}
	return "wait (print primes after the search)"
}

// PrintStart announces the beginning of a run.
func PrintStart(scheme config.Scheme, at time.Time, out io.Writer) {
	fmt.Fprintf(out, "\nSTART (%s): %s%s%s\n", scheme, ui.ColorDim(), format.FormatDateTime(at), ui.ColorReset())
}

// DisplayPrimes prints the sorted primes of a deferred run, one per line.
func DisplayPrimes(primes []int, out io.Writer) {
	var b strings.Builder
	for _, p := range primes {
		b.WriteString("Prime: ")
		b.WriteString(strconv.Itoa(p))
		b.WriteByte('\n')
	}
	io.WriteString(out, b.String())
}

// DisplaySummary prints the totals of a run and its first primes.
func DisplaySummary(o search.Outcome, out io.Writer) {
	fmt.Fprintf(out, "\n%s=== Summary (%s) ===%s\n", ui.ColorBold(), o.Scheme, ui.ColorReset())
	fmt.Fprintf(out, "Total primes found: %s%s%s\n", ui.ColorGreen(), format.FormatCount(o.Count()), ui.ColorReset())
	fmt.Fprintf(out, "Execution time:     %s%s%s\n", ui.ColorYellow(), format.FormatSeconds(o.Elapsed), ui.ColorReset())
	if o.OracleTasks > 0 {
		fmt.Fprintf(out, "Divisor tasks:      %s\n", format.FormatCount(int(o.OracleTasks)))
	}
	fmt.Fprintf(out, "First %d primes:    %s\n", SummaryHeadCount, FormatHead(o, SummaryHeadCount))
	fmt.Fprintf(out, "END   (%s): %s%s%s\n", o.Scheme, ui.ColorDim(), format.FormatDateTime(o.End), ui.ColorReset())
}

// FormatHead joins the first k primes, appending "..." when more exist.
func FormatHead(o search.Outcome, k int) string {
	head := o.Head(k)
	if len(head) == 0 {
		return "(none)"
	}
	parts := make([]string, len(head))
	for i, p := range head {
		parts[i] = strconv.Itoa(p)
	}
	s := strings.Join(parts, ", ")
	if o.Count() > len(head) {
		s += ", ..."
	}
	return s
}

// FormatQuietResult returns the single-line quiet output: the prime count.
func FormatQuietResult(o search.Outcome) string {
	return strconv.Itoa(o.Count())
}

// DisplayQuietResult prints only the prime count, for scripting.
func DisplayQuietResult(o search.Outcome, out io.Writer) {
	fmt.Fprintln(out, FormatQuietResult(o))
}
