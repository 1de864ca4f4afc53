package tui

// sparklineChars maps levels 0..7 to the block elements ▁▂▃▄▅▆▇█.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RingBuffer is a fixed-capacity circular buffer of rate samples.
type RingBuffer struct {
	data  []float64
	head  int
	count int
}

// NewRingBuffer creates a ring buffer with the given capacity (at least 1).
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{data: make([]float64, max(capacity, 1))}
}

// Push adds a sample, overwriting the oldest if full.
func (r *RingBuffer) Push(v float64) {
	r.data[r.head] = v
	r.head = (r.head + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
}

// Len returns the number of valid samples.
func (r *RingBuffer) Len() int { return r.count }

// Cap returns the buffer capacity.
func (r *RingBuffer) Cap() int { return len(r.data) }

// Last returns the most recent sample, or 0 if empty.
func (r *RingBuffer) Last() float64 {
	if r.count == 0 {
		return 0
	}
	return r.data[(r.head-1+len(r.data))%len(r.data)]
}

// Slice returns samples oldest first.
func (r *RingBuffer) Slice() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	start := (r.head - r.count + len(r.data)) % len(r.data)
	for i := range r.count {
		result[i] = r.data[(start+i)%len(r.data)]
	}
	return result
}

// Resize changes the capacity, keeping the most recent samples that fit.
func (r *RingBuffer) Resize(newCap int) {
	newCap = max(newCap, 1)
	if newCap == len(r.data) {
		return
	}
	old := r.Slice()
	r.data = make([]float64, newCap)
	r.head, r.count = 0, 0
	for _, v := range old[max(len(old)-newCap, 0):] {
		r.Push(v)
	}
}

// Reset clears all samples.
func (r *RingBuffer) Reset() {
	r.head, r.count = 0, 0
}

// peak returns the largest value, or 0 for an empty or non-positive slice.
func peak(values []float64) float64 {
	var m float64
	for _, v := range values {
		m = max(m, v)
	}
	return m
}

// level maps v into [0, steps-1] relative to top.
func level(v, top float64, steps int) int {
	if top <= 0 || v <= 0 {
		return 0
	}
	return min(int(v/top*float64(steps-1)+0.5), steps-1)
}

// RenderSparkline renders values scaled to their own maximum.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	top := peak(values)
	runes := make([]rune, len(values))
	for i, v := range values {
		runes[i] = sparklineChars[level(v, top, len(sparklineChars))]
	}
	return string(runes)
}

// brailleDots maps (column 0-1, row 0-3) to the braille dot bits.
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// RenderBrailleChart plots values scaled to their maximum on a grid of
// width x rows braille cells, most recent sample on the right.
func RenderBrailleChart(values []float64, width, rows int) []string {
	if width <= 0 || rows <= 0 || len(values) == 0 {
		return nil
	}

	dotRows := rows * 4
	dotCols := width * 2

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = 0x2800
		}
	}

	visible := values[max(len(values)-dotCols, 0):]
	top := peak(visible)
	offset := dotCols - len(visible)
	for i, v := range visible {
		dotCol := offset + i
		dotRow := dotRows - 1 - level(v, top, dotRows)
		grid[dotRow/4][dotCol/2] |= brailleDots[dotCol%2][dotRow%4]
	}

	result := make([]string, rows)
	for r := range grid {
		result[r] = string(grid[r])
	}
	return result
}
