package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/primefind/internal/config"
	apperrors "github.com/agbru/primefind/internal/errors"
	"github.com/agbru/primefind/internal/logging"
	"github.com/agbru/primefind/internal/metrics"
	"github.com/agbru/primefind/internal/search"
)

// Layout constants for the dashboard.
const (
	headerHeight          = 1
	footerHeight          = 1
	minBodyHeight         = 6
	LogsPanelWidthPercent = 60
	MetricsPanelHeight    = 7
	TickInterval          = 500 * time.Millisecond
	summaryHeadCount      = 20
)

// ExecutionState holds the run-related fields of a dashboard session.
type ExecutionState struct {
	run      int
	done     bool
	exitCode int
}

// LayoutManager holds terminal dimensions and derives the panel sizes.
type LayoutManager struct {
	width  int
	height int
}

func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-footerHeight, minBodyHeight)
}

func (l LayoutManager) logsWidth() int {
	return l.width * LogsPanelWidthPercent / 100
}

func (l LayoutManager) rightWidth() int {
	return l.width - l.logsWidth()
}

func (l LayoutManager) metricsHeight() int {
	return min(MetricsPanelHeight, l.bodyHeight()/2)
}

func (l LayoutManager) chartHeight() int {
	return l.bodyHeight() - l.metricsHeight()
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	header  HeaderModel
	logs    LogsModel
	metrics MetricsModel
	chart   ChartModel
	footer  FooterModel

	keymap KeyMap

	ExecutionState
	LayoutManager

	ctx       context.Context
	config    config.AppConfig
	ref       *programRef
	resources *metrics.ResourceCollector
	paused    bool
}

// NewModel creates a dashboard for cfg.
func NewModel(ctx context.Context, cfg config.AppConfig, version string) Model {
	logs := NewLogsModel()
	logs.AddExecutionConfig(cfg)
	keymap := DefaultKeyMap()

	settings := fmt.Sprintf("N=%d  threads=%d  scheme=%s", cfg.UpperBound(), cfg.Threads, cfg.Scheme)
	return Model{
		header:         NewHeaderModel(version, settings),
		logs:           logs,
		metrics:        NewMetricsModel(),
		chart:          NewChartModel(),
		footer:         NewFooterModel(keymap),
		keymap:         keymap,
		ExecutionState: ExecutionState{run: 1, exitCode: apperrors.ExitSuccess},
		ctx:            ctx,
		config:         cfg,
		ref:            &programRef{},
		resources:      metrics.NewResourceCollector(),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), startSearchCmd(m.ctx, m.ref, m.config, m.run))
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case PrimeMsg:
		m.metrics.AddPrime()
		if !m.paused {
			m.logs.AddPrime(msg.Notification)
		}
		return m, nil

	case ProgressMsg:
		if !m.paused {
			m.metrics.UpdateProgress(msg.AverageProgress, msg.ETA)
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case ComparisonResultsMsg:
		m.logs.AddResults(msg.Results)
		return m, nil

	case OutcomeMsg:
		m.metrics.SetPrimes(msg.Outcome.Count())
		m.metrics.UpdateProgress(1, 0)
		m.logs.AddOutcome(msg.Outcome, summaryHeadCount)
		return m, nil

	case RunCompleteMsg:
		if msg.Run != m.run {
			return m, nil
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.header.SetDone()
		m.footer.SetDone(true)
		if msg.ExitCode != apperrors.ExitSuccess {
			m.footer.SetError(true)
			m.logs.AddError(fmt.Sprintf("Run finished with exit code %d", msg.ExitCode))
		}
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			m.chart.AddRate(m.metrics.SampleRate(time.Time(msg)))
			return m, tea.Batch(sampleMemStatsCmd(m.resources), tickCmd())
		}
		return m, tickCmd()

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg.Snapshot)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		m.footer.SetPaused(m.paused)
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		// A started run always completes, so a rerun waits for it.
		if !m.done {
			return m, nil
		}
		m.run++
		m.header.Reset()
		m.logs.Reset()
		m.logs.AddExecutionConfig(m.config)
		m.chart.Reset()
		m.metrics = NewMetricsModel()
		m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
		m.footer.SetDone(false)
		m.footer.SetError(false)
		m.footer.SetPaused(false)
		m.done = false
		m.paused = false
		m.exitCode = apperrors.ExitSuccess
		return m, tea.Batch(tickCmd(), startSearchCmd(m.ctx, m.ref, m.config, m.run))

	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down),
		key.Matches(msg, m.keymap.PageUp), key.Matches(msg, m.keymap.PageDown):
		m.logs.Update(msg)
		return m, nil
	}

	return m, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	rightCol := lipgloss.JoinVertical(lipgloss.Left, m.metrics.View(), m.chart.View())
	logs := m.logs.renderToHeight(lipgloss.Height(rightCol))
	body := lipgloss.JoinHorizontal(lipgloss.Top, logs, rightCol)
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.logs.SetSize(m.logsWidth(), m.bodyHeight())
	m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
	m.chart.SetSize(m.rightWidth(), m.chartHeight())
}

// ExitCode returns the exit code of the last finished run.
func (m Model) ExitCode() int { return m.exitCode }

// Run is the entry point of the dashboard mode. It returns the exit code of
// the last run.
func Run(ctx context.Context, cfg config.AppConfig, version string) int {
	initTUIStyles()

	model := NewModel(ctx, cfg, version)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		if apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		if !m.done {
			return apperrors.ExitErrorCanceled
		}
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startSearchCmd runs every configured scheme and reports through the
// bridges.
func startSearchCmd(ctx context.Context, ref *programRef, cfg config.AppConfig, run int) tea.Cmd {
	return func() tea.Msg {
		presenter := &TUIResultPresenter{ref: ref}
		coordinator := search.NewCoordinator(
			search.WithNotifier(&TUINotifier{ref: ref}),
			search.WithProgressReporter(&TUIProgressReporter{ref: ref}, io.Discard),
			search.WithLogger(logging.NopLogger{}),
		)
		schemes := cfg.Schemes()
		results := search.RunSchemes(ctx, coordinator, cfg.SearchConfig(schemes[0]), schemes, nil)
		exitCode := search.AnalyzeComparisonResults(results, presenter, io.Discard)
		return RunCompleteMsg{ExitCode: exitCode, Run: run}
	}
}

// tickCmd sends a TickMsg after TickInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads a resource snapshot off the UI goroutine.
func sampleMemStatsCmd(rc *metrics.ResourceCollector) tea.Cmd {
	return func() tea.Msg {
		return MemStatsMsg{Snapshot: rc.Snapshot()}
	}
}
