// This file generates the worker counts to benchmark from the hardware.

package calibration

import (
	"runtime"
	"slices"

	"github.com/agbru/primefind/internal/config"
)

// GenerateWorkerCounts returns the worker counts to benchmark for a bound:
// powers of two up to the useful maximum, plus the logical CPU count and
// the default estimate. The result is ascending and free of duplicates.
func GenerateWorkerCounts(upperBound int) []int {
	limit := config.MaxUsefulWorkers(upperBound)
	counts := []int{}
	for w := 1; w <= limit; w *= 2 {
		counts = append(counts, w)
	}
	for _, extra := range []int{runtime.NumCPU(), config.EstimateDefaultWorkers()} {
		if extra <= limit {
			counts = append(counts, extra)
		}
	}
	slices.Sort(counts)
	return slices.Compact(counts)
}

// GenerateQuickWorkerCounts returns a reduced set: one worker, the CPU
// count and twice the CPU count, capped by the useful maximum.
func GenerateQuickWorkerCounts(upperBound int) []int {
	limit := config.MaxUsefulWorkers(upperBound)
	numCPU := runtime.NumCPU()
	counts := []int{1}
	for _, w := range []int{numCPU, 2 * numCPU} {
		if w <= limit {
			counts = append(counts, w)
		}
	}
	slices.Sort(counts)
	return slices.Compact(counts)
}
