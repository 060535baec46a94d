package components

import (
	"strings"

	"github.com/pablasso/gantt/internal/tui/styles"
)

// StatusBar renders the bottom help line of the viewer.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render joins items with " • " and pads to width. The right-hand text, if
// any, is placed after the items.
func (s StatusBar) Render(width int, items []string, right string) string {
	content := strings.Join(items, " • ")
	if right != "" {
		if content != "" {
			content += "  " + right
		} else {
			content = right
		}
	}
	return styles.StatusBarStyle.Width(width).Render(content)
}
