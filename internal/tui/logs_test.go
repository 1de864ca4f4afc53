package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/primefind/internal/config"
	"github.com/agbru/primefind/internal/search"
)

func TestLogsModel_RingEviction(t *testing.T) {
	t.Parallel()
	l := NewLogsModel()
	for i := range MaxLogLines + 25 {
		l.Add(fmt.Sprint(i))
	}
	if l.Len() != MaxLogLines {
		t.Fatalf("Len = %d, want %d", l.Len(), MaxLogLines)
	}
	lines := l.Lines()
	if lines[0] != "25" || lines[len(lines)-1] != fmt.Sprint(MaxLogLines+24) {
		t.Errorf("ring holds %s..%s", lines[0], lines[len(lines)-1])
	}

	l.Reset()
	if l.Len() != 0 || len(l.Lines()) != 0 {
		t.Error("Reset should empty the panel")
	}
}

func TestLogsModel_Entries(t *testing.T) {
	t.Parallel()
	l := NewLogsModel()
	cfg := config.Defaults()
	cfg.Threads = 3
	l.AddExecutionConfig(cfg)
	l.AddPrime(search.Notification{Worker: 2, Value: 31, At: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)})
	o := search.Outcome{Scheme: config.SchemeRange, Primes: []int{2, 3, 5}, Elapsed: time.Millisecond}
	l.AddResults([]search.SchemeResult{{Scheme: config.SchemeRange, Outcome: o}, {Scheme: config.SchemeDivisibility, Err: fmt.Errorf("boom")}})
	l.AddOutcome(o, 2)

	all := strings.Join(l.Lines(), "\n")
	for _, want := range []string{
		"with 3 threads",
		"[12:00:00.000]",
		"[Worker-2]",
		"Found prime: 31",
		"range: 3 primes",
		"divisibility: boom",
		"Total primes found: 3",
		"First primes: 2, 3, ...",
	} {
		if !strings.Contains(all, want) {
			t.Errorf("logs missing %q:\n%s", want, all)
		}
	}
}

func TestLogsModel_Scroll(t *testing.T) {
	t.Parallel()
	l := NewLogsModel()
	l.SetSize(40, 8) // 5 visible rows
	for i := range 20 {
		l.Add(fmt.Sprint("line", i))
	}

	l.Update(tea.KeyMsg{Type: tea.KeyUp})
	if l.offset != 1 {
		t.Errorf("offset after up = %d, want 1", l.offset)
	}
	l.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	if l.offset != 6 {
		t.Errorf("offset after pgup = %d, want 6", l.offset)
	}
	for range 10 {
		l.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	}
	if l.offset != 15 {
		t.Errorf("offset should stop at count-page, got %d", l.offset)
	}
	for range 10 {
		l.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	l.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if l.offset != 0 {
		t.Errorf("offset should not go below zero, got %d", l.offset)
	}

	view := l.renderToHeight(8)
	if !strings.Contains(view, "line19") || strings.Contains(view, "line10") {
		t.Errorf("tail not rendered:\n%s", view)
	}
}
