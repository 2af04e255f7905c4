package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/geomesh/internal/render"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for a panel's title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// borderStyle defines the style for a panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// errorStyle defines the style for snapshot failure notices.
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5F87"))

	// helpStyle defines the style for the help panel's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// maxLogLines bounds the log panel's backlog.
const maxLogLines = 100

// SnapshotMsg is a [tea.Msg] carrying a freshly decoded and rendered
// topology snapshot.
type SnapshotMsg struct {
	summary string
	tree    string
}

// SnapshotErrMsg is a [tea.Msg] carrying a snapshot read or decode failure.
type SnapshotErrMsg struct {
	err error
}

// TeaModel is the principal [tea.Model] for the topology browser.
type TeaModel struct {
	width  int
	height int

	cancel context.CancelFunc

	uiHandler *Handler
	loader    graphProvider
	renderer  *render.Handler

	summary string
	loadErr error

	treeViewport viewport.Model
	logsViewport viewport.Model
	logs         []string

	ready bool
}

// NewTeaModel returns an initial new [TeaModel].
//
//nolint:mnd
func NewTeaModel(uiHandler *Handler, loader graphProvider, renderer *render.Handler, cancel context.CancelFunc) TeaModel {
	return TeaModel{
		uiHandler:    uiHandler,
		loader:       loader,
		renderer:     renderer,
		cancel:       cancel,
		treeViewport: viewport.New(80, 20),
		logsViewport: viewport.New(80, 6),
		logs:         make([]string, 0, maxLogLines),
		summary:      "reading topology...",
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		loadSnapshot(m.loader, m.renderer),
	)
}

// loadSnapshot produces a [tea.Cmd] that reads, decodes and renders one
// topology snapshot.
func loadSnapshot(loader graphProvider, renderer *render.Handler) tea.Cmd {
	return func() tea.Msg {
		graph, err := loader.Graph()
		if err != nil {
			return SnapshotErrMsg{err: err}
		}

		return SnapshotMsg{
			summary: renderer.Summary(graph),
			tree:    renderer.Tree(graph),
		}
	}
}

// Update is the principal message handling method of the model.
// It sets the internal state of the model, for later rendering.
//
//nolint:ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()

			return m, tea.Quit
		case "q":
			return m, tea.Quit
		case "r":
			m.summary = "reading topology..."

			return m, loadSnapshot(m.loader, m.renderer)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

		if !m.ready {
			m.ready = true
			m.uiHandler.Ready.Store(true)
		}

	case SnapshotMsg:
		m.loadErr = nil
		m.summary = msg.summary
		m.treeViewport.SetContent(msg.tree)
		m.treeViewport.GotoTop()

	case SnapshotErrMsg:
		m.loadErr = msg.err

	case LogMsg:
		if len(m.logs) >= maxLogLines {
			m.logs = m.logs[1:]
		}
		m.logs = append(m.logs, string(msg))

		m.logsViewport.SetContent(m.renderLogs())
		m.logsViewport.GotoBottom()
	}

	// Scrolling keys land in the tree panel.
	m.treeViewport, cmd = m.treeViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// resize distributes the terminal space between the panels.
//
//nolint:mnd
func (m *TeaModel) resize() {
	contentWidth := m.width - 2

	// The log panel takes about a quarter of the height; borders, titles and
	// the help line take the rest.
	logsHeight := m.height / 4
	treeHeight := m.height - logsHeight - 7

	m.treeViewport.Width = contentWidth
	m.treeViewport.Height = max(treeHeight, 1)
	m.logsViewport.Width = contentWidth
	m.logsViewport.Height = max(logsHeight, 1)

	if len(m.logs) > 0 {
		m.logsViewport.SetContent(m.renderLogs())
		m.logsViewport.GotoBottom()
	}
}

// renderLogs joins the log backlog for the log panel's viewport.
func (m *TeaModel) renderLogs() string {
	return lipgloss.NewStyle().
		Width(m.logsViewport.Width).
		Render(strings.TrimSuffix(strings.Join(m.logs, ""), "\n"))
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the topology browser..."
	}

	contentWidth := m.width - 2

	title := m.summary
	if m.loadErr != nil {
		title = errorStyle.Render("snapshot failed: " + m.loadErr.Error())
	}

	treeSection := borderStyle.
		Width(contentWidth).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(contentWidth).Render("Storage Topology: "+title),
				m.treeViewport.View(),
			),
		)

	logsSection := borderStyle.
		Width(contentWidth).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(contentWidth).Render("Process Information"),
				m.logsViewport.View(),
			),
		)

	helpSection := helpStyle.
		Width(contentWidth).
		Render("r: refresh • q: quit browser • ctrl+c: quit program")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		treeSection,
		logsSection,
		helpSection,
	)
}
