package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/primefind/internal/config"
	"github.com/agbru/primefind/internal/metrics"
	"github.com/agbru/primefind/internal/search"
)

func TestPresentComparisonTable(t *testing.T) {
	t.Parallel()
	ok := sampleOutcome(2, 3, 5)
	div := ok
	div.Scheme = config.SchemeDivisibility
	results := []search.SchemeResult{
		{Scheme: config.SchemeRange, Outcome: ok},
		{Scheme: config.SchemeDivisibility, Outcome: div, Err: errors.New("boom")},
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	out := buf.String()

	for _, want := range []string{"Comparison Summary", "Scheme", "Duration", "Primes", "Status", "range", "divisibility", "✅ Success", "❌ Failure (boom)"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	header, row := lines[1], lines[2]
	if strings.Index(header, "Duration") != strings.Index(row, "1ms") {
		t.Errorf("duration column misaligned:\n%s\n%s", header, row)
	}
}

func TestPresentOutcome(t *testing.T) {
	t.Parallel()
	o := sampleOutcome(2, 3, 5, 7)

	tests := []struct {
		name       string
		presenter  CLIResultPresenter
		mode       config.EmitMode
		wantListed bool
	}{
		{"deferred listing", CLIResultPresenter{ListPrimes: true}, config.EmitDeferred, true},
		{"listing disabled", CLIResultPresenter{}, config.EmitDeferred, false},
		{"immediate already printed", CLIResultPresenter{ListPrimes: true}, config.EmitImmediate, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			o := o
			o.Config.EmitMode = tt.mode
			var buf bytes.Buffer
			tt.presenter.PresentOutcome(o, &buf)
			out := buf.String()
			if got := strings.Contains(out, "Prime: 7\n"); got != tt.wantListed {
				t.Errorf("listing present = %v, want %v\n%s", got, tt.wantListed, out)
			}
			if !strings.Contains(out, "Total primes found: 4") {
				t.Errorf("summary missing:\n%s", out)
			}
		})
	}
}

func TestDisplayResourceUsage(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayResourceUsage(metrics.ResourceUsage{
		PeakHeapAlloc: 2048,
		GCCycles:      3,
		GCPause:       2 * time.Millisecond,
		UserCPU:       time.Second,
		CPUAvailable:  true,
	}, &buf)
	out := buf.String()
	for _, want := range []string{"Peak heap:       2.0 KiB", "GC cycles:       3", "2.00ms", "CPU time:"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	DisplayResourceUsage(metrics.ResourceUsage{}, &buf)
	if strings.Contains(buf.String(), "CPU time:") {
		t.Error("CPU line should be omitted when unavailable")
	}
}
