package partition

import (
	"fmt"
	"math"

	apperrors "github.com/agbru/primefind/internal/errors"
)

// WorkUnit is the contiguous candidate range assigned to one worker.
// Worker ids are 1-based. A unit with Start > End is empty.
type WorkUnit struct {
	Worker int
	Start  int
	End    int
}

// Len returns the number of candidates in the unit.
func (u WorkUnit) Len() int {
	if u.End < u.Start {
		return 0
	}
	return u.End - u.Start + 1
}

// Empty reports whether the unit holds no candidates.
func (u WorkUnit) Empty() bool { return u.Len() == 0 }

// String renders the unit as "Worker-i [start-end]".
func (u WorkUnit) String() string {
	if u.Empty() {
		return fmt.Sprintf("Worker-%d [empty]", u.Worker)
	}
	return fmt.Sprintf("Worker-%d [%d-%d]", u.Worker, u.Start, u.End)
}

// Range splits [1, upperBound] into exactly workers contiguous units.
// Each unit spans upperBound/workers candidates and the last one absorbs the
// remainder. When workers exceeds upperBound the leading units are empty and
// the last unit covers the whole interval.
func Range(upperBound, workers int) ([]WorkUnit, error) {
	if workers < 1 {
		return nil, apperrors.ValidationError{Field: "workers", Message: "must be at least 1"}
	}
	if upperBound < 1 {
		return nil, apperrors.ValidationError{Field: "upperBound", Message: "must be at least 1"}
	}

	chunk := upperBound / workers
	units := make([]WorkUnit, workers)
	for i := range workers {
		u := WorkUnit{Worker: i + 1, Start: i*chunk + 1, End: (i + 1) * chunk}
		if i == workers-1 {
			u.End = upperBound
			if chunk == 0 {
				u.Start = 1
			}
		}
		units[i] = u
	}
	return units, nil
}

// ISqrt returns floor(sqrt(n)) for n >= 0.
func ISqrt(n int) int {
	if n < 2 {
		return max(n, 0)
	}
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// OddDivisors returns the odd trial divisors of n in [3, floor(sqrt(n))],
// ascending. It returns nil when there are none.
func OddDivisors(n int) []int {
	limit := ISqrt(n)
	if limit < 3 {
		return nil
	}
	divisors := make([]int, 0, (limit-1)/2)
	for d := 3; d <= limit; d += 2 {
		divisors = append(divisors, d)
	}
	return divisors
}

// DivisorChunk is a contiguous slice of trial divisors scanned by one task.
type DivisorChunk []int

// SplitDivisors splits divisors into at most workers contiguous chunks of
// max(1, len/workers) elements; the last chunk absorbs the remainder.
// Chunks that would start past the end are not produced, so the result holds
// min(workers, len(divisors)) non-empty chunks.
func SplitDivisors(divisors []int, workers int) []DivisorChunk {
	if len(divisors) == 0 {
		return nil
	}
	workers = max(workers, 1)
	size := max(1, len(divisors)/workers)

	chunks := make([]DivisorChunk, 0, min(workers, len(divisors)))
	for i := 0; i < workers; i++ {
		start := i * size
		if start >= len(divisors) {
			break
		}
		end := start + size
		if i == workers-1 || end > len(divisors) {
			end = len(divisors)
		}
		chunks = append(chunks, DivisorChunk(divisors[start:end]))
	}
	return chunks
}
