// Package primality decides whether a candidate is prime by trial division.
//
// Two oracles are provided. Serial scans the odd divisors up to the square
// root in a single goroutine. Parallel splits the same divisors into chunks
// and scans every chunk in its own goroutine, joining them before returning.
// Both oracles agree on every input.
package primality
