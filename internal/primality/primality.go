package primality

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/primefind/internal/partition"
)

// Oracle decides primality of a single candidate.
// Implementations must be safe for concurrent use.
type Oracle interface {
	Name() string
	IsPrime(n int) bool
}

// IsPrimeSerial reports whether n is prime using sequential trial division
// by the odd integers up to floor(sqrt(n)).
func IsPrimeSerial(n int) bool {
	if prime, decided := trivial(n); decided {
		return prime
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// IsPrimeParallel reports whether n is prime, scanning its odd trial divisors
// in up to workers concurrent tasks. A workers value below 1 is treated as 1.
func IsPrimeParallel(n, workers int) bool {
	prime, _ := TestParallel(n, workers)
	return prime
}

// TestParallel is IsPrimeParallel that also returns the number of divisor
// tasks it spawned.
func TestParallel(n, workers int) (prime bool, tasks int) {
	if prime, decided := trivial(n); decided {
		return prime, 0
	}
	chunks := partition.SplitDivisors(partition.OddDivisors(n), workers)
	if len(chunks) == 0 {
		return true, 0
	}

	var composite verdict
	var g errgroup.Group
	for _, chunk := range chunks {
		g.Go(func() error {
			scanChunk(n, chunk, &composite)
			return nil
		})
	}
	_ = g.Wait()
	return !composite.isSet(), len(chunks)
}

// scanChunk records a divisor of n found in chunk. It stops early once any
// task has recorded one.
func scanChunk(n int, chunk partition.DivisorChunk, composite *verdict) {
	for _, d := range chunk {
		if composite.isSet() {
			return
		}
		if n%d == 0 {
			composite.set()
			return
		}
	}
}

// verdict is a one-shot flag scoped to a single oracle call.
type verdict struct {
	flag atomic.Bool
}

func (v *verdict) set() bool  { return v.flag.CompareAndSwap(false, true) }
func (v *verdict) isSet() bool { return v.flag.Load() }

func trivial(n int) (prime, decided bool) {
	switch {
	case n < 2:
		return false, true
	case n == 2:
		return true, true
	case n%2 == 0:
		return false, true
	}
	return false, false
}

// Serial is the single-goroutine oracle.
type Serial struct{}

// Name returns the oracle name.
func (Serial) Name() string { return "serial" }

// IsPrime implements Oracle.
func (Serial) IsPrime(n int) bool { return IsPrimeSerial(n) }

// Parallel is the divisor fan-out oracle. It counts the tasks it spawns
// across all calls.
type Parallel struct {
	Workers int
	tasks   atomic.Int64
}

// NewParallel creates a divisor fan-out oracle using up to workers tasks per
// candidate.
func NewParallel(workers int) *Parallel {
	return &Parallel{Workers: max(workers, 1)}
}

// Name returns the oracle name.
func (p *Parallel) Name() string { return "parallel" }

// IsPrime implements Oracle.
func (p *Parallel) IsPrime(n int) bool {
	prime, tasks := TestParallel(n, p.Workers)
	p.tasks.Add(int64(tasks))
	return prime
}

// Tasks returns the number of divisor tasks spawned so far.
func (p *Parallel) Tasks() int64 { return p.tasks.Load() }
