package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bamsammich/preroll/internal/splash"
	"github.com/bamsammich/preroll/internal/stats"
)

// Bubble Tea messages.
type loopTaskMsg func()
type sequenceDoneMsg struct{}
type tickMsg time.Time

// readNextTask returns a tea.Cmd that blocks on the loop's task queue, so
// every timer and media callback runs inside Update.
func readNextTask(tasks <-chan func()) tea.Cmd {
	return func() tea.Msg {
		return loopTaskMsg(<-tasks)
	}
}

func waitDone(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return sequenceDoneMsg{}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the root Bubble Tea model.
type Model struct {
	ctrl    *splash.Controller
	tasks   <-chan func()
	stats   stats.ReadTicker
	measure func(cols int) int // viewport width in pixels
	feed    *feedView
	title   string
	spinner spinner.Model

	cols     int
	rows     int
	done     bool // sequence complete
	quitting bool

	lastSnap stats.Snapshot
}

// NewModel creates a new TUI model for a started controller.
func NewModel(
	ctrl *splash.Controller,
	tasks <-chan func(),
	collector stats.ReadTicker,
	measure func(cols int) int,
	feed *feedView,
	title string,
) Model {
	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	spin.Style = styleSpinner
	return Model{
		ctrl:    ctrl,
		tasks:   tasks,
		stats:   collector,
		measure: measure,
		feed:    feed,
		title:   title,
		spinner: spin,
		cols:    80,
		rows:    24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		readNextTask(m.tasks),
		waitDone(m.ctrl.Done()),
		tickCmd(),
		m.spinner.Tick,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
		m.ctrl.Resize(m.measure(msg.Width))
		return m, nil

	case loopTaskMsg:
		if msg != nil {
			msg()
		}
		return m, readNextTask(m.tasks)

	case sequenceDoneMsg:
		m.done = true
		m.lastSnap = m.stats.Snapshot()
		return m, tea.Quit

	case tickMsg:
		m.stats.Tick()
		m.lastSnap = m.stats.Snapshot()
		return m, tickCmd()

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.ctrl.Close()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting || m.done {
		return ""
	}

	view := m.ctrl.View()
	var body string
	switch view.Tier {
	case splash.Compact:
		body = renderCompact(m.title, view.Progress)
	case splash.Medium:
		body = renderMedium(m.title, view.Progress)
	case splash.Large:
		body = renderMedia(m.title, m.cols, view.Ready, m.spinner.View(), m.lastSnap, m.stats)
	}

	content := body
	if feed := m.feed.view(); feed != "" {
		content = lipgloss.JoinVertical(lipgloss.Center, body, "", feed)
	}

	height := max(m.rows-1, 1) // footer
	var b strings.Builder
	b.WriteString(lipgloss.Place(m.cols, height, lipgloss.Center, lipgloss.Center, content))
	b.WriteByte('\n')
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderFooter() string {
	return "  " + styleKeybindKey.Render("q") + " " + styleKeybindLabel.Render("quit")
}
