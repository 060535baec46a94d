package components

import "strings"

const (
	track  = "│"
	thumb  = "█"
	htrack = "─"
	hthumb = "━"
)

// thumbSpan returns the thumb position and size along a track of length
// view for content of the given size scrolled to offset. ok is false when
// the content fits and no thumb is needed.
func thumbSpan(view, content, offset int) (top, size int, ok bool) {
	if view <= 0 || content <= view {
		return 0, 0, false
	}

	size = view * view / content
	if size < 1 {
		size = 1
	}

	maxOffset := content - view
	maxTop := view - size
	top = offset * maxTop / maxOffset
	if top > maxTop {
		top = maxTop
	}
	if top < 0 {
		top = 0
	}
	return top, size, true
}

// RenderScrollbar renders a 1-column vertical scrollbar for viewHeight
// visible lines out of contentHeight, scrolled to yOffset. When everything
// fits it renders a blank gutter so the layout width stays stable.
func RenderScrollbar(viewHeight, contentHeight, yOffset int) string {
	if viewHeight <= 0 {
		return ""
	}

	top, size, ok := thumbSpan(viewHeight, contentHeight, yOffset)
	if !ok {
		return strings.Repeat(" \n", viewHeight-1) + " "
	}

	var b strings.Builder
	for i := 0; i < viewHeight; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i >= top && i < top+size {
			b.WriteString(thumb)
		} else {
			b.WriteString(track)
		}
	}
	return b.String()
}

// RenderPanBar renders a 1-line horizontal bar showing which columns of a
// wide chart are visible. It is blank when the chart fits.
func RenderPanBar(viewWidth, contentWidth, xOffset int) string {
	if viewWidth <= 0 {
		return ""
	}

	left, size, ok := thumbSpan(viewWidth, contentWidth, xOffset)
	if !ok {
		return strings.Repeat(" ", viewWidth)
	}

	return strings.Repeat(htrack, left) +
		strings.Repeat(hthumb, size) +
		strings.Repeat(htrack, viewWidth-left-size)
}
