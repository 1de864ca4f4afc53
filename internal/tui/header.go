package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/primefind/internal/format"
)

// HeaderModel renders the top bar: title, run settings and elapsed time.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	settings  string
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version, settings string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		settings:  settings,
	}
}

// SetDone freezes the elapsed timer at the current time.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// Elapsed returns the running or frozen duration.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "Prime Search Monitor"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := separatorStyle.Render(" | ")
	row := titleStyle.Render(titleText) + pipe +
		separatorStyle.Render(h.settings) + pipe +
		elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(h.Elapsed())))

	gap := max(h.width-2-lipgloss.Width(row), 0)
	return headerStyle.Width(h.width).Render(row + spaces(gap))
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
