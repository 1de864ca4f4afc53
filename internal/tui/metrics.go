package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/primefind/internal/format"
	"github.com/agbru/primefind/internal/metrics"
)

// MetricsModel displays the search counters and runtime statistics.
type MetricsModel struct {
	primes    int
	progress  float64
	eta       time.Duration
	rate      float64 // primes per second, smoothed
	lastCount int
	lastTick  time.Time
	snapshot  metrics.ResourceSnapshot
	width     int
	height    int
}

// NewMetricsModel creates a new metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{lastTick: time.Now()}
}

// SetSize updates dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// AddPrime counts one discovery.
func (m *MetricsModel) AddPrime() { m.primes++ }

// SetPrimes replaces the count with the final total of a run.
func (m *MetricsModel) SetPrimes(n int) { m.primes = n }

// Primes returns the current count.
func (m MetricsModel) Primes() int { return m.primes }

// UpdateProgress records the aggregated progress.
func (m *MetricsModel) UpdateProgress(progress float64, eta time.Duration) {
	m.progress = progress
	m.eta = eta
}

// UpdateMemStats stores a resource snapshot.
func (m *MetricsModel) UpdateMemStats(s metrics.ResourceSnapshot) {
	m.snapshot = s
}

// SampleRate updates the smoothed discovery rate and returns the
// instantaneous rate since the previous sample.
func (m *MetricsModel) SampleRate(now time.Time) float64 {
	dt := now.Sub(m.lastTick).Seconds()
	if dt <= 0 {
		return m.rate
	}
	instant := float64(m.primes-m.lastCount) / dt
	if m.rate > 0 {
		m.rate = 0.7*m.rate + 0.3*instant
	} else {
		m.rate = instant
	}
	m.lastCount = m.primes
	m.lastTick = now
	return instant
}

// View renders the metrics panel.
func (m MetricsModel) View() string {
	var rows strings.Builder
	rows.WriteString(panelTitleStyle.Render("Metrics"))

	colWidth := max((m.width-6)/2, 0)
	left := []string{
		formatMetricCol("Primes:", format.FormatCount(m.primes), colWidth),
		formatMetricCol("Progress:", fmt.Sprintf("%.1f%%", m.progress*100), colWidth),
		formatMetricCol("Rate:", fmt.Sprintf("%.0f/s", m.rate), colWidth),
	}
	right := []string{
		formatMetricCol("Heap:", format.FormatBytes(m.snapshot.HeapAlloc), colWidth),
		formatMetricCol("Goroutines:", fmt.Sprint(m.snapshot.Goroutines), colWidth),
		formatMetricCol("GC:", fmt.Sprintf("%d (%.1fms)", m.snapshot.NumGC, float64(m.snapshot.PauseTotalNs)/1e6), colWidth),
	}
	for i := range left {
		rows.WriteString("\n")
		rows.WriteString(left[i])
		rows.WriteString(right[i])
	}
	rows.WriteString("\n")
	rows.WriteString(formatMetricCol("ETA:", format.FormatETA(m.eta), colWidth))

	return panelStyle.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 1)).
		Render(rows.String())
}

func formatMetricCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", label)),
		metricValueStyle.Render(value))
	if visible := lipgloss.Width(cell); visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}
