package tui

// Options configures the viewer.
type Options struct {
	// CellWidth is the number of terminal columns per day.
	CellWidth int
	// NoColor starts the viewer in glyph-only mode.
	NoColor bool
}
