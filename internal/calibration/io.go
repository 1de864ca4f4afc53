package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/primefind/internal/config"
	"github.com/agbru/primefind/internal/format"
	"github.com/agbru/primefind/internal/ui"
)

// printCalibrationResults formats and prints the calibration results table.
func printCalibrationResults(out io.Writer, results []calibrationResult, bestWorkers int) {
	fmt.Fprintf(out, "\n--- Calibration Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sThreads%s      │ %sExecution Time%s\n", ui.ColorBold(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s┼%s\n", strings.Repeat("─", 14), strings.Repeat("─", 25))
	for _, res := range results {
		label := fmt.Sprintf("%d", res.Workers)
		durationStr := fmt.Sprintf("%sN/A%s", ui.ColorRed(), ui.ColorReset())
		if res.Err == nil {
			durationStr = format.FormatExecutionDuration(res.Duration)
			if res.Duration == 0 {
				durationStr = "< 1µs"
			}
		}
		highlight := ""
		if res.Workers == bestWorkers && res.Err == nil {
			highlight = fmt.Sprintf(" %s(Optimal)%s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %s%-12s%s │ %s%s%s%s\n", ui.ColorCyan(), label, ui.ColorReset(), ui.ColorYellow(), durationStr, ui.ColorReset(), highlight)
	}
	tw.Flush()
}

// PrintCalibrationOutput prints the recommended setting.
func PrintCalibrationOutput(res Result, out io.Writer) {
	fmt.Fprintf(out, "\n%sCalibration%s: scheme=%s, best threads=%s%d%s (%s)\n",
		ui.ColorGreen(), ui.ColorReset(),
		res.Scheme,
		ui.ColorYellow(), res.BestWorkers, ui.ColorReset(),
		format.FormatExecutionDuration(res.BestTime))
}

// Apply returns cfg with the calibrated thread count.
func Apply(cfg config.AppConfig, res Result) config.AppConfig {
	if res.BestWorkers > 0 {
		cfg.Threads = res.BestWorkers
	}
	return cfg
}
