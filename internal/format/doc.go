// Package format provides presentation-independent formatting helpers for
// durations, timestamps, counts and progress, shared by the CLI and the TUI.
package format
