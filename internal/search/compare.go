package search

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/agbru/primefind/internal/config"
	apperrors "github.com/agbru/primefind/internal/errors"
)

// SchemeResult is the outcome of one scheme in a comparison run.
type SchemeResult struct {
	Scheme  config.Scheme
	Outcome Outcome
	Err     error
}

// RunSchemes runs base once per scheme, sequentially, so that the runs do not
// compete for CPU and their timings stay comparable. A started run always
// completes; once ctx is done the remaining schemes are not started and
// report ctx.Err().
//
// Parameters:
//   - ctx: The context carrying trace spans.
//   - c: The coordinator, reused across runs.
//   - base: The configuration; its Scheme is replaced for each run.
//   - schemes: The schemes to run, in order.
//   - onStart: Called before each run starts; may be nil.
//
// Returns:
//   - []SchemeResult: One entry per scheme, in the order given. Errors are
//     wrapped in apperrors.SearchError.
func RunSchemes(ctx context.Context, c *Coordinator, base config.SearchConfig, schemes []config.Scheme, onStart func(config.Scheme)) []SchemeResult {
	results := make([]SchemeResult, len(schemes))
	for i, s := range schemes {
		if err := ctx.Err(); err != nil {
			results[i] = SchemeResult{Scheme: s, Err: apperrors.SearchError{Scheme: string(s), Cause: err}}
			continue
		}
		if onStart != nil {
			onStart(s)
		}
		cfg := base
		cfg.Scheme = s
		o, err := c.Run(ctx, cfg)
		if err != nil {
			err = apperrors.SearchError{Scheme: string(s), Cause: err}
		}
		results[i] = SchemeResult{Scheme: s, Outcome: o, Err: err}
	}
	return results
}

// CompareResults checks that every successful result holds the same prime
// set as the first one. It returns a MismatchError naming the first
// disagreeing pair.
func CompareResults(results []SchemeResult) error {
	var ref *SchemeResult
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		if ref == nil {
			ref = &results[i]
			continue
		}
		if ok, idx := ref.Outcome.Equal(results[i].Outcome); !ok {
			return apperrors.MismatchError{Reference: string(ref.Scheme), Other: string(results[i].Scheme), Index: idx}
		}
	}
	return nil
}

// AnalyzeComparisonResults processes the results of several schemes and
// generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful runs, and displays a comparative table.
//
// Parameters:
//   - results: The scheme results to analyze.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []SchemeResult, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Outcome.Elapsed < results[j].Outcome.Elapsed
	})

	var firstValid *SchemeResult
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else if firstValid == nil {
			firstValid = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if firstValid == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No scheme could complete the search.\n")
		return apperrors.HandleSearchError(firstError, out)
	}

	if err := CompareResults(results); err != nil {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The schemes found different primes: %v\n", err)
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All schemes found the same %d primes.\n", firstValid.Outcome.Count())
	presenter.PresentOutcome(firstValid.Outcome, out)
	return apperrors.ExitSuccess
}
