// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplaySummary], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatDiscovery].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WritePrimesToFile].

package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/primefind/internal/search"
)

// WritePrimesToFile writes the sorted primes of a run to path, one per line,
// after a commented header. An empty path is a no-op.
func WritePrimesToFile(o search.Outcome, path string) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "# Prime Search Result\n")
	fmt.Fprintf(w, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "# Scheme: %s\n", o.Scheme)
	fmt.Fprintf(w, "# Threads: %d\n", o.Config.Workers)
	fmt.Fprintf(w, "# Max number: %d\n", o.Config.UpperBound)
	fmt.Fprintf(w, "# Duration: %s\n", o.Elapsed)
	fmt.Fprintf(w, "# Primes: %d\n", o.Count())
	fmt.Fprintf(w, "\n")
	for _, p := range o.Primes {
		fmt.Fprintln(w, p)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
