package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/primefind/internal/config"
	"github.com/agbru/primefind/internal/format"
	"github.com/agbru/primefind/internal/search"
)

// MaxLogLines bounds the number of lines kept by the logs panel.
const MaxLogLines = 200

// LogsModel is a scrollable panel holding the most recent log lines.
type LogsModel struct {
	lines  []string
	head   int
	count  int
	offset int // lines scrolled up from the tail; 0 follows new output
	width  int
	height int
	keymap KeyMap
}

// NewLogsModel creates an empty logs panel.
func NewLogsModel() LogsModel {
	return LogsModel{lines: make([]string, MaxLogLines), keymap: DefaultKeyMap()}
}

// SetSize updates dimensions.
func (l *LogsModel) SetSize(w, h int) {
	l.width = w
	l.height = h
}

// Add appends a line, evicting the oldest when full.
func (l *LogsModel) Add(line string) {
	l.lines[l.head] = line
	l.head = (l.head + 1) % len(l.lines)
	if l.count < len(l.lines) {
		l.count++
	}
}

// Len returns the number of buffered lines.
func (l LogsModel) Len() int { return l.count }

// Lines returns the buffered lines, oldest first.
func (l LogsModel) Lines() []string {
	out := make([]string, l.count)
	start := (l.head - l.count + len(l.lines)) % len(l.lines)
	for i := range l.count {
		out[i] = l.lines[(start+i)%len(l.lines)]
	}
	return out
}

// Reset clears the panel.
func (l *LogsModel) Reset() {
	l.head, l.count, l.offset = 0, 0, 0
}

// AddExecutionConfig logs the run settings.
func (l *LogsModel) AddExecutionConfig(cfg config.AppConfig) {
	l.Add(logSuccessStyle.Render(fmt.Sprintf("Searching primes up to %s with %d threads (scheme %s, print mode %s)",
		format.FormatCount(cfg.UpperBound()), cfg.Threads, cfg.Scheme, cfg.PrintMode)))
}

// AddPrime logs one discovery.
func (l *LogsModel) AddPrime(n search.Notification) {
	l.Add(fmt.Sprintf("%s %s %s",
		logTimeStyle.Render("["+format.FormatClock(n.At)+"]"),
		logWorkerStyle.Render(fmt.Sprintf("[Worker-%d]", n.Worker)),
		logPrimeStyle.Render(fmt.Sprintf("Found prime: %d", n.Value))))
}

// AddResults logs one line per scheme.
func (l *LogsModel) AddResults(results []search.SchemeResult) {
	for _, r := range results {
		if r.Err != nil {
			l.Add(logErrorStyle.Render(fmt.Sprintf("%s: %v", r.Scheme, r.Err)))
			continue
		}
		l.Add(logSuccessStyle.Render(fmt.Sprintf("%s: %s primes in %s",
			r.Scheme, format.FormatCount(r.Outcome.Count()), format.FormatExecutionDuration(r.Outcome.Elapsed))))
	}
}

// AddOutcome logs the summary of the presented outcome.
func (l *LogsModel) AddOutcome(o search.Outcome, headCount int) {
	head := o.Head(headCount)
	parts := make([]string, len(head))
	for i, p := range head {
		parts[i] = fmt.Sprint(p)
	}
	suffix := ""
	if o.Count() > len(head) {
		suffix = ", ..."
	}
	l.Add(logSuccessStyle.Render(fmt.Sprintf("Total primes found: %s in %s",
		format.FormatCount(o.Count()), format.FormatSeconds(o.Elapsed))))
	l.Add(fmt.Sprintf("First primes: %s%s", strings.Join(parts, ", "), suffix))
}

// AddError logs an error line.
func (l *LogsModel) AddError(msg string) {
	l.Add(logErrorStyle.Render(msg))
}

// Update handles scroll keys.
func (l *LogsModel) Update(msg tea.KeyMsg) {
	page := max(l.visibleRows(), 1)
	switch {
	case key.Matches(msg, l.keymap.Up):
		l.offset++
	case key.Matches(msg, l.keymap.Down):
		l.offset--
	case key.Matches(msg, l.keymap.PageUp):
		l.offset += page
	case key.Matches(msg, l.keymap.PageDown):
		l.offset -= page
	}
	l.offset = max(min(l.offset, l.count-page), 0)
}

func (l LogsModel) visibleRows() int {
	return l.height - 3 // borders and title
}

// renderToHeight renders the panel with an outer height of h.
func (l LogsModel) renderToHeight(h int) string {
	rows := max(h-3, 1)
	lines := l.Lines()
	end := max(len(lines)-l.offset, 0)
	start := max(end-rows, 0)

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Discoveries"))
	for _, line := range lines[start:end] {
		b.WriteByte('\n')
		b.WriteString(line)
	}
	return panelStyle.
		Width(max(l.width-2, 0)).
		Height(max(h-2, 1)).
		MaxHeight(h).
		Render(b.String())
}
