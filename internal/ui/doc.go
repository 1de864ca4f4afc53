// Package ui provides theme and color support for the prime finder's
// console output and dashboard. Colors are disabled by --no-color, by the
// NO_COLOR environment variable, and when the output is not a terminal.
package ui
