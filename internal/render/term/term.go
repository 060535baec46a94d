// Package term draws a chart layout as styled terminal text.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pablasso/gantt/internal/chart"
)

const (
	defaultCellWidth = 3
	maxLabelWidth    = 48

	glyphBar       = '█'
	glyphOverlay   = '▒'
	glyphConnector = '╌'
	glyphEdge      = '┆'
	glyphSwatch    = "██"
)

// Options control terminal rendering.
type Options struct {
	// CellWidth is the number of columns per day.
	CellWidth int
	// LabelWidth caps the task label column. Zero fits the longest label.
	LabelWidth int
	// NoColor renders glyphs only.
	NoColor bool
}

func (o Options) withDefaults(c *chart.Chart) Options {
	if o.CellWidth <= 0 {
		o.CellWidth = defaultCellWidth
	}
	if o.LabelWidth <= 0 {
		for _, l := range c.YAxis.Labels {
			if w := ansi.StringWidth(l); w > o.LabelWidth {
				o.LabelWidth = w
			}
		}
		if o.LabelWidth > maxLabelWidth {
			o.LabelWidth = maxLabelWidth
		}
	}
	return o
}

// cell is one terminal column of a plot row.
type cell struct {
	glyph rune
	fg    string
	bg    string
}

// Render draws the chart: title, rotated date axis on top, one row per task
// and the legend below.
func Render(c *chart.Chart, opts Options) string {
	opts = opts.withDefaults(c)
	r := renderer{c: c, opts: opts}

	var sections []string
	sections = append(sections, r.title())
	sections = append(sections, r.topAxis()...)
	for row := 0; row < c.Rows; row++ {
		sections = append(sections, r.row(row))
	}
	sections = append(sections, "")
	sections = append(sections, r.legend())

	return strings.Join(sections, "\n")
}

type renderer struct {
	c    *chart.Chart
	opts Options
}

// plotWidth includes one trailing column for the last tick.
func (r renderer) plotWidth() int {
	return r.c.Range.Days()*r.opts.CellWidth + 1
}

func (r renderer) gutter() string {
	return strings.Repeat(" ", r.opts.LabelWidth+1)
}

func (r renderer) col(day int) int {
	return day * r.opts.CellWidth
}

func (r renderer) style() lipgloss.Style {
	return lipgloss.NewStyle()
}

func (r renderer) title() string {
	width := r.opts.LabelWidth + 1 + r.plotWidth()
	s := r.style().Bold(true)
	return s.Width(width).Align(lipgloss.Center).Render(r.c.Title)
}

// topAxis renders the axis label, the tick labels rotated to read top to
// bottom, and the tick marks.
func (r renderer) topAxis() []string {
	axis := r.c.TopAxis
	width := r.plotWidth()

	var lines []string
	if axis.Label != "" {
		label := r.style().Width(width).Align(lipgloss.Center).Render(axis.Label)
		lines = append(lines, r.gutter()+label)
	}

	height := 0
	for _, t := range axis.Ticks {
		if n := len([]rune(t.Label)); n > height {
			height = n
		}
	}
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}
	for _, t := range axis.Ticks {
		x := r.col(r.c.DayIndex(t.Date))
		if x < 0 || x >= width {
			continue
		}
		for i, ch := range []rune(t.Label) {
			grid[i][x] = ch
		}
	}
	for _, g := range grid {
		lines = append(lines, r.gutter()+strings.TrimRight(string(g), " "))
	}

	marks := []rune(strings.Repeat("─", width))
	for _, t := range axis.Ticks {
		x := r.col(r.c.DayIndex(t.Date))
		if x >= 0 && x < width {
			marks[x] = '┬'
		}
	}
	yLabel := r.style().Width(r.opts.LabelWidth).Align(lipgloss.Right).Render(r.c.YAxis.Label)
	lines = append(lines, yLabel+" "+string(marks))
	return lines
}

// row renders display row i (0 = top).
func (r renderer) row(i int) string {
	labelIdx := r.c.Rows - 1 - i
	label := ""
	if labelIdx >= 0 && labelIdx < len(r.c.YAxis.Labels) {
		label = ansi.Truncate(r.c.YAxis.Labels[labelIdx], r.opts.LabelWidth, "…")
	}
	label = r.style().Width(r.opts.LabelWidth).Align(lipgloss.Right).Render(label)

	cells := make([]cell, r.plotWidth())
	for j := range cells {
		cells[j] = cell{glyph: ' '}
	}

	for _, bar := range r.c.Bars {
		if r.c.Row(bar.Y) != i {
			continue
		}
		from := r.col(r.c.DayIndex(bar.Start))
		to := r.col(r.c.DayIndex(bar.End))
		for x := from; x < to && x < len(cells); x++ {
			cells[x] = cell{glyph: glyphBar, fg: bar.Color, bg: bar.Color}
		}
	}

	for _, ov := range r.c.Overlays {
		if r.c.Row(ov.Y) != i {
			continue
		}
		from := r.col(r.c.DayIndex(ov.Start))
		to := r.col(r.c.DayIndex(ov.End))
		for x := from; x < to && x < len(cells); x++ {
			base := cells[x].bg
			if base == "" {
				base = "#ffffff"
			}
			blended, err := chart.Blend(base, ov.Color, ov.Alpha)
			if err != nil {
				blended = ov.Color
			}
			cells[x] = cell{glyph: glyphOverlay, fg: blended, bg: blended}
		}
		// Outline: one edge per side, a single edge for a zero-width span.
		for _, x := range []int{from, to} {
			if x < len(cells) {
				cells[x].glyph = glyphEdge
				cells[x].fg = ov.EdgeColor
			}
		}
	}

	for _, cn := range r.c.Connectors {
		if r.c.Row(cn.Y) != i {
			continue
		}
		from := r.col(r.c.DayIndex(cn.Start))
		to := r.col(r.c.DayIndex(cn.End))
		for x := from; x <= to && x < len(cells); x++ {
			if cells[x].glyph == glyphEdge {
				continue
			}
			cells[x].glyph = glyphConnector
			cells[x].fg = cn.Color
		}
	}

	return label + " " + r.paint(cells)
}

// paint joins cells into a string, styling runs of identical cells together.
func (r renderer) paint(cells []cell) string {
	// Trailing blanks carry no information.
	end := len(cells)
	for end > 0 && cells[end-1].glyph == ' ' && cells[end-1].bg == "" {
		end--
	}
	cells = cells[:end]

	var b strings.Builder
	for start := 0; start < len(cells); {
		stop := start + 1
		for stop < len(cells) && cells[stop] == cells[start] {
			stop++
		}
		b.WriteString(r.paintRun(cells[start], stop-start))
		start = stop
	}
	return b.String()
}

func (r renderer) paintRun(c cell, n int) string {
	if r.opts.NoColor {
		return strings.Repeat(string(c.glyph), n)
	}
	glyph := c.glyph
	if glyph == glyphBar || glyph == glyphOverlay {
		// Color carries the bar; the glyph would hide the background.
		glyph = ' '
	}
	s := r.style()
	if c.bg != "" {
		s = s.Background(lipgloss.Color(c.bg))
	}
	if c.fg != "" {
		s = s.Foreground(lipgloss.Color(c.fg))
	}
	return s.Render(strings.Repeat(string(glyph), n))
}

// legend lays entries out column-major in Legend.Columns columns.
func (r renderer) legend() string {
	entries := r.c.Legend.Entries
	cols := r.c.Legend.Columns
	if cols <= 0 {
		cols = 1
	}
	perCol := (len(entries) + cols - 1) / cols

	var blocks []string
	for k := 0; k < cols; k++ {
		from := k * perCol
		if from >= len(entries) {
			break
		}
		to := from + perCol
		if to > len(entries) {
			to = len(entries)
		}

		var lines []string
		for _, e := range entries[from:to] {
			lines = append(lines, r.swatch(e)+" "+e.Label)
		}
		block := strings.Join(lines, "\n")
		if k < cols-1 {
			block = r.style().PaddingRight(4).Render(block)
		}
		blocks = append(blocks, block)
	}

	legend := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	return r.gutter() + strings.ReplaceAll(legend, "\n", "\n"+r.gutter())
}

func (r renderer) swatch(e chart.LegendEntry) string {
	if r.opts.NoColor {
		if e.Overlay {
			return strings.Repeat(string(glyphOverlay), 2)
		}
		return glyphSwatch
	}
	return r.style().Foreground(lipgloss.Color(e.Color)).Render(glyphSwatch)
}
