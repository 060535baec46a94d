package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

const defaultPanStep = 6

// ChartViewport shows a window onto a chart that may be wider and taller
// than the terminal. Vertical scrolling is delegated to bubbles/viewport;
// horizontal panning cuts each line at the current column offset.
type ChartViewport struct {
	viewport     viewport.Model
	lines        []string // full-width rendered lines
	contentWidth int      // widest line, in cells
	xOffset      int
	panStep      int
	width        int // total width including scrollbar
	height       int // total height including pan bar
}

// NewChartViewport creates a viewport of the given size. One column is
// reserved for the scrollbar and one line for the pan bar.
func NewChartViewport(width, height int) ChartViewport {
	vp := viewport.New(max(width-1, 0), max(height-1, 0))
	vp.SetContent("")

	return ChartViewport{
		viewport: vp,
		panStep:  defaultPanStep,
		width:    width,
		height:   height,
	}
}

func (c ChartViewport) viewWidth() int {
	return max(c.width-1, 0)
}

func (c ChartViewport) viewHeight() int {
	return max(c.height-1, 0)
}

// SetSize updates the viewport dimensions.
func (c *ChartViewport) SetSize(width, height int) {
	if c.width == width && c.height == height {
		return
	}
	c.width = width
	c.height = height
	c.viewport.Width = c.viewWidth()
	c.viewport.Height = c.viewHeight()
	c.clampX()
	c.refresh()
	c.viewport.SetYOffset(c.viewport.YOffset)
}

// SetContent replaces the chart text, keeping the scroll position where
// possible.
func (c *ChartViewport) SetContent(content string) {
	c.lines = strings.Split(content, "\n")
	c.contentWidth = 0
	for _, l := range c.lines {
		if w := ansi.StringWidth(l); w > c.contentWidth {
			c.contentWidth = w
		}
	}
	c.clampX()
	c.refresh()
}

func (c *ChartViewport) refresh() {
	w := c.viewWidth()
	cut := make([]string, len(c.lines))
	for i, l := range c.lines {
		cut[i] = ansi.Cut(l, c.xOffset, c.xOffset+w)
	}
	c.viewport.SetContent(strings.Join(cut, "\n"))
}

func (c *ChartViewport) clampX() {
	maxX := c.contentWidth - c.viewWidth()
	if c.xOffset > maxX {
		c.xOffset = maxX
	}
	if c.xOffset < 0 {
		c.xOffset = 0
	}
}

// Pan moves the visible window by dx columns.
func (c *ChartViewport) Pan(dx int) {
	c.xOffset += dx
	c.clampX()
	c.refresh()
}

// Update handles pan keys and forwards everything else to the viewport.
func (c ChartViewport) Update(msg tea.Msg) (ChartViewport, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "left", "h":
			c.Pan(-c.panStep)
			return c, nil
		case "right", "l":
			c.Pan(c.panStep)
			return c, nil
		case "home", "0":
			c.Pan(-c.xOffset)
			return c, nil
		case "end", "$":
			c.Pan(c.contentWidth)
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

// View renders the visible window, the scrollbar and the pan bar.
func (c ChartViewport) View() string {
	h := c.viewHeight()
	w := c.viewWidth()
	contentLines := strings.Split(c.viewport.View(), "\n")
	scrollLines := strings.Split(RenderScrollbar(h, len(c.lines), c.viewport.YOffset), "\n")

	var b strings.Builder
	for i := 0; i < h; i++ {
		cl := ""
		if i < len(contentLines) {
			cl = contentLines[i]
		}
		sl := " "
		if i < len(scrollLines) {
			sl = scrollLines[i]
		}
		b.WriteString(cl)
		if pad := w - ansi.StringWidth(cl); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(sl)
		b.WriteByte('\n')
	}
	b.WriteString(RenderPanBar(w, c.contentWidth, c.xOffset))
	return b.String()
}

// XOffset returns the first visible column.
func (c ChartViewport) XOffset() int {
	return c.xOffset
}

// YOffset returns the first visible line.
func (c ChartViewport) YOffset() int {
	return c.viewport.YOffset
}

// ContentWidth returns the width of the widest chart line.
func (c ChartViewport) ContentWidth() int {
	return c.contentWidth
}
