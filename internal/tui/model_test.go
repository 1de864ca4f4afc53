package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/primefind/internal/config"
	apperrors "github.com/agbru/primefind/internal/errors"
	"github.com/agbru/primefind/internal/search"
)

func testConfig() config.AppConfig {
	cfg := config.Defaults()
	cfg.Threads = 2
	cfg.MaxNumber = 30
	cfg.PrintMode = string(config.EmitImmediate)
	return cfg
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModel_MessageFlow(t *testing.T) {
	t.Parallel()
	m := NewModel(context.Background(), testConfig(), "dev")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})

	m, _ = update(t, m, PrimeMsg{search.Notification{Worker: 1, Value: 2, At: time.Now()}})
	m, _ = update(t, m, PrimeMsg{search.Notification{Worker: 2, Value: 17, At: time.Now()}})
	m, _ = update(t, m, ProgressMsg{AverageProgress: 0.5})
	if m.metrics.Primes() != 2 || m.metrics.progress != 0.5 {
		t.Errorf("metrics primes=%d progress=%v", m.metrics.Primes(), m.metrics.progress)
	}

	o := search.Outcome{Scheme: config.SchemeRange, Primes: []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}}
	m, _ = update(t, m, OutcomeMsg{Outcome: o})
	m, _ = update(t, m, RunCompleteMsg{ExitCode: apperrors.ExitSuccess, Run: 1})
	if !m.done || m.ExitCode() != apperrors.ExitSuccess {
		t.Errorf("done=%v exit=%d", m.done, m.ExitCode())
	}
	if m.metrics.Primes() != 10 {
		t.Errorf("final count = %d, want 10", m.metrics.Primes())
	}

	view := m.View()
	for _, want := range []string{"Prime Search Monitor", "Found prime: 17", "Total primes found: 10", "DONE"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	if _, cmd := update(t, m, TickMsg(time.Now())); cmd != nil {
		t.Error("ticks should stop once the run is done")
	}
}

func TestModel_StaleRunIgnored(t *testing.T) {
	t.Parallel()
	m := NewModel(context.Background(), testConfig(), "dev")
	m, _ = update(t, m, RunCompleteMsg{ExitCode: apperrors.ExitErrorMismatch, Run: 7})
	if m.done {
		t.Error("completion of another run must be ignored")
	}
}

func TestModel_FailedRun(t *testing.T) {
	t.Parallel()
	m := NewModel(context.Background(), testConfig(), "dev")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 24})
	m, _ = update(t, m, RunCompleteMsg{ExitCode: apperrors.ExitErrorMismatch, Run: 1})
	if m.ExitCode() != apperrors.ExitErrorMismatch {
		t.Errorf("exit = %d", m.ExitCode())
	}
	if !strings.Contains(m.View(), "ERROR") {
		t.Error("footer should show the error status")
	}
}

func TestModel_PauseKeepsCounting(t *testing.T) {
	t.Parallel()
	m := NewModel(context.Background(), testConfig(), "dev")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.paused {
		t.Fatal("space should pause")
	}
	before := m.logs.Len()
	m, _ = update(t, m, PrimeMsg{search.Notification{Worker: 1, Value: 3}})
	if m.metrics.Primes() != 1 {
		t.Error("paused dashboard must still count primes")
	}
	if m.logs.Len() != before {
		t.Error("paused dashboard must not append log lines")
	}
}

func TestModel_RerunOnlyWhenDone(t *testing.T) {
	t.Parallel()
	m := NewModel(context.Background(), testConfig(), "dev")
	rerun := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}

	m, cmd := update(t, m, rerun)
	if cmd != nil || m.run != 1 {
		t.Errorf("rerun while running should be ignored (run=%d)", m.run)
	}

	m, _ = update(t, m, RunCompleteMsg{Run: 1})
	m, cmd = update(t, m, rerun)
	if cmd == nil || m.run != 2 || m.done {
		t.Errorf("rerun after completion: run=%d done=%v cmd=%v", m.run, m.done, cmd != nil)
	}
}

func TestModel_QuitKey(t *testing.T) {
	t.Parallel()
	m := NewModel(context.Background(), testConfig(), "dev")
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
}

func TestStartSearchCmd(t *testing.T) {
	t.Parallel()
	msg := startSearchCmd(context.Background(), &programRef{}, testConfig(), 4)()
	done, ok := msg.(RunCompleteMsg)
	if !ok {
		t.Fatalf("got %T, want RunCompleteMsg", msg)
	}
	if done.Run != 4 || done.ExitCode != apperrors.ExitSuccess {
		t.Errorf("got %+v", done)
	}
}

func TestModel_InitializingView(t *testing.T) {
	t.Parallel()
	if got := NewModel(context.Background(), testConfig(), "dev").View(); got != "Initializing..." {
		t.Errorf("View before sizing = %q", got)
	}
}
