package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/gantt/internal/chart"
	"github.com/pablasso/gantt/internal/project"
	"github.com/pablasso/gantt/internal/render/term"
	"github.com/pablasso/gantt/internal/tui/components"
	"github.com/pablasso/gantt/internal/tui/styles"
)

// header and status bar take one line each.
const chromeHeight = 2

var helpItems = []string{"←→ Pan", "↑↓ Scroll", "c Colors", "q Quit"}

// Model is the Bubble Tea model of the chart viewer.
type Model struct {
	name     string
	chart    *chart.Chart
	opts     Options
	viewport components.ChartViewport
	width    int
	height   int
}

// Run starts the viewer for a chart.
func Run(name string, c *chart.Chart, opts Options) error {
	p := tea.NewProgram(
		New(name, c, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// New creates the viewer model. It renders once the first window size
// arrives.
func New(name string, c *chart.Chart, opts Options) Model {
	return Model{
		name:     name,
		chart:    c,
		opts:     opts,
		viewport: components.NewChartViewport(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.SetSize(m.width, max(m.height-chromeHeight, 0))
		m.render()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "c":
			m.opts.NoColor = !m.opts.NoColor
			m.render()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) render() {
	m.viewport.SetContent(term.Render(m.chart, term.Options{
		CellWidth: m.opts.CellWidth,
		NoColor:   m.opts.NoColor,
	}))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := styles.TitleStyle.Render(m.name) + "  " +
		styles.SubtleStyle.Render(fmt.Sprintf("%d tasks", m.chart.Rows))

	last := m.chart.Range.End.AddDate(0, 0, -1)
	dates := fmt.Sprintf("%s – %s", project.FormatDate(m.chart.Range.Start), project.FormatDate(last))
	status := components.NewStatusBar().Render(m.width, helpItems, dates)

	return header + "\n" + m.viewport.View() + "\n" + status
}

// NoColor reports whether the viewer is in glyph-only mode.
func (m Model) NoColor() bool {
	return m.opts.NoColor
}

// Viewport returns the chart viewport.
func (m Model) Viewport() components.ChartViewport {
	return m.viewport
}
