// Package search coordinates a concurrent prime search over [1, N].
//
// A Coordinator splits the interval into one work unit per worker, runs every
// unit in its own goroutine, collects primes in a lock-guarded ResultSet and
// returns a sorted Outcome once all workers have finished. Presentation is
// reached only through the Notifier and ProgressReporter interfaces.
package search
