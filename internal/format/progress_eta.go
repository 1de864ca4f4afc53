package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// progressState holds the completed fraction of each worker.
type progressState struct {
	progresses []float64
}

// Update records the progress of one worker. Out-of-range indices are
// ignored and values are clamped to [0, 1].
func (ps *progressState) Update(index int, value float64) {
	if index < 0 || index >= len(ps.progresses) {
		return
	}
	ps.progresses[index] = min(max(value, 0), 1)
}

// CalculateAverage returns the mean progress across workers.
func (ps *progressState) CalculateAverage() float64 {
	if len(ps.progresses) == 0 {
		return 0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(len(ps.progresses))
}

// maxETA caps estimates from very slow starts.
const maxETA = 24 * time.Hour

// ProgressWithETA tracks per-worker fractions and an exponentially smoothed
// completion rate. It is safe for concurrent use.
type ProgressWithETA struct {
	mu           sync.Mutex
	state        progressState
	lastUpdate   time.Time
	lastProgress float64
	progressRate float64 // fraction per second
}

// NewProgressWithETA creates a tracker for numWorkers workers, all at zero.
func NewProgressWithETA(numWorkers int) *ProgressWithETA {
	return &ProgressWithETA{
		state:      progressState{progresses: make([]float64, max(numWorkers, 0))},
		lastUpdate: time.Now(),
	}
}

// UpdateWithETA records a worker update and returns the average progress and
// the estimated remaining time.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.Update(index, value)
	avg := p.state.CalculateAverage()

	now := time.Now()
	if dt := now.Sub(p.lastUpdate).Seconds(); dt > 0 && avg > p.lastProgress {
		rate := (avg - p.lastProgress) / dt
		if p.progressRate == 0 {
			p.progressRate = rate
		} else {
			p.progressRate = 0.3*rate + 0.7*p.progressRate
		}
		p.lastUpdate = now
		p.lastProgress = avg
	}
	return avg, p.etaLocked(avg)
}

// CalculateAverage returns the mean progress across workers.
func (p *ProgressWithETA) CalculateAverage() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.CalculateAverage()
}

// GetETA returns the current estimate without recording an update.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.etaLocked(p.state.CalculateAverage())
}

func (p *ProgressWithETA) etaLocked(avg float64) time.Duration {
	if p.progressRate <= 0 || avg >= 1 {
		return 0
	}
	eta := time.Duration((1 - avg) / p.progressRate * float64(time.Second))
	return min(eta, maxETA)
}

// FormatETA renders an estimate for display.
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}
	eta = eta.Round(time.Second)
	h := int(eta.Hours())
	m := int(eta.Minutes()) % 60
	s := int(eta.Seconds()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// ProgressBar renders a fixed-width bar of full and light shade blocks.
func ProgressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders "[bar] 42.0% ETA: 3s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), min(max(progress, 0), 1)*100, FormatETA(eta))
}
