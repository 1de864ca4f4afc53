package partition

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRange_CoversInterval_PropertyBased verifies that Range always returns
// exactly `workers` units whose non-empty members are contiguous, do not
// overlap and cover [1, upperBound].
func TestRange_CoversInterval_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("units partition [1, N]", prop.ForAll(
		func(upperBound, workers int) bool {
			units, err := Range(upperBound, workers)
			if err != nil || len(units) != workers {
				return false
			}
			next := 1
			for i, u := range units {
				if u.Worker != i+1 {
					return false
				}
				if u.Empty() {
					continue
				}
				if u.Start != next {
					return false
				}
				next = u.End + 1
			}
			return next == upperBound+1
		},
		gen.IntRange(1, 100000),
		gen.IntRange(1, 256),
	))

	properties.TestingRun(t)
}

// TestSplitDivisors_PreservesOrder_PropertyBased verifies that concatenating
// the chunks yields the original divisor list and that no chunk is empty.
func TestSplitDivisors_PreservesOrder_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("chunks concatenate to the divisor list", prop.ForAll(
		func(n, workers int) bool {
			divisors := OddDivisors(n)
			chunks := SplitDivisors(divisors, workers)
			if len(chunks) != min(workers, len(divisors)) {
				return false
			}
			var joined []int
			for _, c := range chunks {
				if len(c) == 0 {
					return false
				}
				joined = append(joined, c...)
			}
			if len(joined) != len(divisors) {
				return false
			}
			for i := range joined {
				if joined[i] != divisors[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 1<<24),
		gen.IntRange(1, 64),
	))

	properties.TestingRun(t)
}
