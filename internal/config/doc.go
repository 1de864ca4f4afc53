// Package config defines the prime search configuration and resolves it from
// command-line flags, PRIMEFIND_* environment variables, a JSON configuration
// file and built-in defaults, in that order of priority.
package config
