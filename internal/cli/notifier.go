package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/agbru/primefind/internal/format"
	"github.com/agbru/primefind/internal/search"
	"github.com/agbru/primefind/internal/ui"
)

// ConsoleNotifier prints immediate-mode discoveries, one whole line per
// prime. Lines from concurrent workers never interleave.
type ConsoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

var _ search.Notifier = (*ConsoleNotifier)(nil)

// NewConsoleNotifier creates a notifier writing to out.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

// Notify writes "[Worker-i] [HH:MM:SS.mmm] Found prime: n".
func (c *ConsoleNotifier) Notify(n search.Notification) {
	line := FormatDiscovery(n)
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, line)
}

// FormatDiscovery renders a notification as a report line.
func FormatDiscovery(n search.Notification) string {
	return fmt.Sprintf("%s[Worker-%d]%s %s[%s]%s Found prime: %s%d%s",
		ui.ColorPrimary(), n.Worker, ui.ColorReset(),
		ui.ColorDim(), format.FormatClock(n.At), ui.ColorReset(),
		ui.ColorGreen(), n.Value, ui.ColorReset())
}
