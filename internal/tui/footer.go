package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// FooterModel renders the key help and the run status.
type FooterModel struct {
	help   help.Model
	keymap KeyMap
	paused bool
	done   bool
	failed bool
	width  int
}

// NewFooterModel creates a footer.
func NewFooterModel(keymap KeyMap) FooterModel {
	return FooterModel{help: help.New(), keymap: keymap}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
	f.help.Width = w
}

// SetPaused toggles the paused status.
func (f *FooterModel) SetPaused(p bool) { f.paused = p }

// SetDone toggles the done status.
func (f *FooterModel) SetDone(d bool) { f.done = d }

// SetError marks the run as failed.
func (f *FooterModel) SetError(e bool) { f.failed = e }

// Status returns the status label.
func (f FooterModel) Status() string {
	switch {
	case f.failed:
		return statusErrorStyle.Render("ERROR")
	case f.done:
		return statusDoneStyle.Render("DONE")
	case f.paused:
		return statusPausedStyle.Render("PAUSED")
	default:
		return statusRunningStyle.Render("RUNNING")
	}
}

// View renders the footer.
func (f FooterModel) View() string {
	status := f.Status()
	keys := f.help.ShortHelpView(f.keymap.ShortHelp())
	gap := max(f.width-lipgloss.Width(keys)-lipgloss.Width(status)-2, 1)
	return " " + keys + spaces(gap) + status
}
