package search

import (
	"time"

	"github.com/agbru/primefind/internal/config"
)

// Outcome is the immutable result of one search run.
type Outcome struct {
	Scheme config.Scheme
	Config config.SearchConfig
	// Primes holds every prime in [1, UpperBound], ascending.
	Primes  []int
	Start   time.Time
	End     time.Time
	Elapsed time.Duration
	// Candidates is the number of integers tested.
	Candidates int
	// OracleTasks counts the divisor tasks spawned under the divisibility
	// scheme; it is zero under the range scheme.
	OracleTasks int64
}

// Count returns the number of primes found.
func (o Outcome) Count() int { return len(o.Primes) }

// Head returns at most k of the smallest primes.
func (o Outcome) Head(k int) []int {
	return o.Primes[:min(max(k, 0), len(o.Primes))]
}

// Equal reports whether both outcomes hold the same prime set, and if not,
// the first index at which they differ.
func (o Outcome) Equal(other Outcome) (bool, int) {
	n := min(len(o.Primes), len(other.Primes))
	for i := range n {
		if o.Primes[i] != other.Primes[i] {
			return false, i
		}
	}
	if len(o.Primes) != len(other.Primes) {
		return false, n
	}
	return true, -1
}
