package tui

import (
	"fmt"
	"strings"
)

// ChartModel plots the discovery rate over time.
type ChartModel struct {
	rates  *RingBuffer
	width  int
	height int
}

// NewChartModel creates an empty chart.
func NewChartModel() ChartModel {
	return ChartModel{rates: NewRingBuffer(120)}
}

// SetSize updates dimensions and resizes the history to the plot width.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	c.rates.Resize(max((w-4)*2, 1))
}

// AddRate records a primes-per-second sample.
func (c *ChartModel) AddRate(v float64) {
	c.rates.Push(v)
}

// Reset clears the history.
func (c *ChartModel) Reset() {
	c.rates.Reset()
}

// View renders the chart panel.
func (c ChartModel) View() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(fmt.Sprintf("Primes/s  peak %.0f", peak(c.rates.Slice()))))
	rows := max(c.height-3, 1)
	for _, line := range RenderBrailleChart(c.rates.Slice(), max(c.width-4, 1), rows) {
		b.WriteByte('\n')
		b.WriteString(chartStyle.Render(line))
	}
	return panelStyle.
		Width(max(c.width-2, 0)).
		Height(max(c.height-2, 1)).
		Render(b.String())
}
