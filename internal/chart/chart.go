// Package chart lays out a Gantt chart for a project. The result is a plain
// value describing every bar, overlay, connector, axis and legend entry in
// data coordinates; renderers only translate it into pixels or cells.
package chart

import (
	"time"

	"github.com/pablasso/gantt/internal/project"
)

// Row geometry in data units. Rows are one unit apart, counted from the
// bottom of the plot.
const (
	BarHeight = 0.8
	midHeight = BarHeight / 2
)

// Range is a half-open interval of calendar days [Start, End).
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days returns the number of days in the range.
func (r Range) Days() int {
	return project.DaysBetween(r.Start, r.End)
}

// Bar is one broken-bar segment for a task.
type Bar struct {
	Task   int       `json:"task"`
	Name   string    `json:"name"`
	Start  time.Time `json:"start"`
	Days   int       `json:"days"`
	End    time.Time `json:"end"`
	Y      float64   `json:"y"`
	Height float64   `json:"height"`
	Color  string    `json:"color"`
}

// Overlay is the translucent band drawn over a parallel task.
type Overlay struct {
	Task      int       `json:"task"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Y         float64   `json:"y"`
	Height    float64   `json:"height"`
	Color     string    `json:"color"`
	Alpha     float64   `json:"alpha"`
	EdgeColor string    `json:"edgeColor"`
	EdgeWidth float64   `json:"edgeWidth"`
}

// Connector is the dashed line drawn at mid-height of a parallel task.
type Connector struct {
	Task   int       `json:"task"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Y      float64   `json:"y"`
	Dashed bool      `json:"dashed"`
	Color  string    `json:"color"`
	Width  float64   `json:"width"`
	Alpha  float64   `json:"alpha"`
}

// Tick is a labelled position on a date axis.
type Tick struct {
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
}

// Edge identifies which side of the plot a date axis sits on.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// DateAxis is a horizontal axis over the visible range.
type DateAxis struct {
	Edge     Edge    `json:"edge"`
	Label    string  `json:"label"`
	Range    Range   `json:"range"`
	Ticks    []Tick  `json:"ticks"`
	Rotation float64 `json:"rotation"`
}

// CategoryAxis is the vertical task axis. Labels[i] belongs to row i.
type CategoryAxis struct {
	Label  string   `json:"label"`
	Labels []string `json:"labels"`
}

// LegendEntry maps a color to a label.
type LegendEntry struct {
	Label   string `json:"label"`
	Color   string `json:"color"`
	Overlay bool   `json:"overlay"`
}

// Legend is laid out below the plot.
type Legend struct {
	Columns int           `json:"columns"`
	Entries []LegendEntry `json:"entries"`
}

// Chart is the complete layout of a Gantt chart.
type Chart struct {
	Title      string       `json:"title"`
	Rows       int          `json:"rows"`
	Range      Range        `json:"range"`
	Bars       []Bar        `json:"bars"`
	Overlays   []Overlay    `json:"overlays"`
	Connectors []Connector  `json:"connectors"`
	YAxis      CategoryAxis `json:"yAxis"`
	TopAxis    DateAxis     `json:"topAxis"`
	BottomAxis DateAxis     `json:"bottomAxis"`
	Legend     Legend       `json:"legend"`
}

// DayIndex returns the column of t counted in days from the range start.
func (c *Chart) DayIndex(t time.Time) int {
	return project.DaysBetween(c.Range.Start, t)
}

// Row returns the display row (0 = top) for a y position.
func (c *Chart) Row(y float64) int {
	return c.Rows - 1 - int(y)
}
