package config

import "runtime"

// Worker count resolution chain (highest priority first):
//   1. CLI flags (--threads, -t)
//   2. Environment variable PRIMEFIND_THREADS
//   3. num_threads in the configuration file
//   4. Adaptive hardware estimation (this file)

// EstimateDefaultWorkers provides a heuristic worker count from the number
// of logical CPUs without running benchmarks. Trial division is CPU bound,
// so the estimate never exceeds the CPU count.
func EstimateDefaultWorkers() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 1:
		return 1
	case numCPU <= 4:
		return numCPU
	case numCPU <= 16:
		return numCPU - 1 // Leave one core for the reporting goroutines
	default:
		return 16
	}
}

// MaxUsefulWorkers caps a worker count for the given bound: more workers
// than candidates only produces empty units.
func MaxUsefulWorkers(upperBound int) int {
	return max(1, min(upperBound, 4*runtime.NumCPU()))
}
