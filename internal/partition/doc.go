// Package partition splits the candidate interval [1, N] into per-worker
// work units and splits a candidate's odd trial divisors into per-task
// chunks. Both splits are pure and deterministic.
package partition
