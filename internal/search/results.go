package search

import (
	"math"
	"slices"
	"sync"
)

// ResultSet is the append-only collection of primes shared by the workers of
// one run. The zero value is ready to use.
type ResultSet struct {
	mu     sync.Mutex
	primes []int
}

// NewResultSet creates a set with room for capacity primes.
func NewResultSet(capacity int) *ResultSet {
	return &ResultSet{primes: make([]int, 0, max(capacity, 0))}
}

// Add appends n. It is safe for concurrent use.
func (r *ResultSet) Add(n int) {
	r.mu.Lock()
	r.primes = append(r.primes, n)
	r.mu.Unlock()
}

// Len returns the number of primes added so far.
func (r *ResultSet) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.primes)
}

// SnapshotSorted returns an ascending copy of the collected primes.
func (r *ResultSet) SnapshotSorted() []int {
	r.mu.Lock()
	out := slices.Clone(r.primes)
	r.mu.Unlock()
	slices.Sort(out)
	return out
}

// maxPreallocated caps the initial capacity; larger sets grow by append.
const maxPreallocated = 1 << 20

// estimatePrimeCount returns an upper estimate of pi(n) for preallocation,
// capped at maxPreallocated.
func estimatePrimeCount(n int) int {
	switch {
	case n < 2:
		return 0
	case n < 100:
		return 25
	}
	est := 1.26 * float64(n) / math.Log(float64(n))
	if est >= maxPreallocated {
		return maxPreallocated
	}
	return int(est)
}
