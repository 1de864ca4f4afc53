package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/primefind/internal/cli"
	"github.com/agbru/primefind/internal/config"
	apperrors "github.com/agbru/primefind/internal/errors"
	"github.com/agbru/primefind/internal/metrics"
	"github.com/agbru/primefind/internal/search"
	"github.com/agbru/primefind/internal/ui"
)

// runSearch runs every configured scheme and reports the results. SIGINT
// keeps its default behavior and ends the process; a canceled ctx stops
// before the next scheme.
func (a *Application) runSearch(ctx context.Context, out io.Writer) int {
	cfg := a.Config
	schemes := cfg.Schemes()
	base := cfg.SearchConfig(schemes[0])

	if !cfg.Quiet {
		cli.PrintExecutionConfig(cfg, out)
	}

	collector := metrics.NewCollector()
	resources := metrics.NewResourceCollector()
	coordinator := search.NewCoordinator(a.searchOptions(base, collector, out)...)

	var onStart func(config.Scheme)
	if !cfg.Quiet {
		onStart = func(s config.Scheme) { cli.PrintStart(s, time.Now(), out) }
	}

	before := resources.Snapshot()
	results := search.RunSchemes(ctx, coordinator, base, schemes, onStart)
	usage := resources.Snapshot().Since(before)

	if err := firstError(results); apperrors.IsContextError(err) {
		return apperrors.HandleSearchError(err, a.ErrWriter)
	}

	exitCode := a.report(results, out)

	if cfg.Details && !cfg.Quiet {
		cli.DisplayResourceUsage(usage, out)
	}
	if exitCode == apperrors.ExitSuccess {
		exitCode = a.writeArtifacts(results, collector, out)
	}
	return exitCode
}

// searchOptions selects the coordinator collaborators for the run mode.
func (a *Application) searchOptions(base config.SearchConfig, collector *metrics.Collector, out io.Writer) []search.Option {
	opts := []search.Option{
		search.WithLogger(a.logger),
		search.WithRecorder(collector),
	}
	if base.EmitMode == config.EmitImmediate && !a.Config.Quiet {
		opts = append(opts, search.WithNotifier(cli.NewConsoleNotifier(out)))
	}
	// The spinner would interleave with immediate lines and pollute
	// redirected output.
	if base.EmitMode == config.EmitDeferred && !a.Config.Quiet && ui.IsTerminal(out) {
		opts = append(opts, search.WithProgressReporter(cli.CLIProgressReporter{}, out))
	}
	return opts
}

// report presents the results and returns the exit code.
func (a *Application) report(results []search.SchemeResult, out io.Writer) int {
	if a.Config.Quiet {
		if err := firstError(results); err != nil {
			return apperrors.HandleSearchError(err, a.ErrWriter)
		}
		if err := search.CompareResults(results); err != nil {
			return apperrors.HandleSearchError(err, a.ErrWriter)
		}
		cli.DisplayQuietResult(results[0].Outcome, out)
		return apperrors.ExitSuccess
	}

	presenter := cli.CLIResultPresenter{ListPrimes: true}
	if len(results) == 1 {
		if results[0].Err != nil {
			return apperrors.HandleSearchError(results[0].Err, a.ErrWriter)
		}
		presenter.PresentOutcome(results[0].Outcome, out)
		return apperrors.ExitSuccess
	}
	return search.AnalyzeComparisonResults(results, presenter, out)
}

// writeArtifacts writes the optional primes and metrics files.
func (a *Application) writeArtifacts(results []search.SchemeResult, collector *metrics.Collector, out io.Writer) int {
	best := fastest(results)
	if best != nil && a.Config.OutputFile != "" {
		if err := cli.WritePrimesToFile(best.Outcome, a.Config.OutputFile); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving primes: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Primes saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), a.Config.OutputFile, ui.ColorReset())
		}
	}
	if a.Config.MetricsFile != "" {
		if err := collector.WriteTextfile(a.Config.MetricsFile); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error writing metrics: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}
	return apperrors.ExitSuccess
}

func firstError(results []search.SchemeResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

func fastest(results []search.SchemeResult) *search.SchemeResult {
	var best *search.SchemeResult
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		if best == nil || results[i].Outcome.Elapsed < best.Outcome.Elapsed {
			best = &results[i]
		}
	}
	return best
}
