package chart

import (
	"errors"
	"fmt"

	"github.com/pablasso/gantt/internal/project"
)

// Options control the text and styling of a chart layout.
type Options struct {
	Title         string
	XLabel        string
	YLabel        string
	DateLayout    string
	ParallelLabel string
	ParallelColor string
	ParallelAlpha float64
	EdgeColor     string
	TickRotation  float64
	LegendColumns int
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Title:         "Project Gantt Chart",
		XLabel:        "Date",
		YLabel:        "Task",
		DateLayout:    project.DateLayout,
		ParallelLabel: "Parallel Activities",
		ParallelColor: "#add8e6",
		ParallelAlpha: 0.3,
		EdgeColor:     "#000000",
		TickRotation:  45,
		LegendColumns: 2,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.XLabel == "" {
		o.XLabel = d.XLabel
	}
	if o.YLabel == "" {
		o.YLabel = d.YLabel
	}
	if o.DateLayout == "" {
		o.DateLayout = d.DateLayout
	}
	if o.ParallelLabel == "" {
		o.ParallelLabel = d.ParallelLabel
	}
	if o.ParallelColor == "" {
		o.ParallelColor = d.ParallelColor
	}
	if o.ParallelAlpha <= 0 {
		o.ParallelAlpha = d.ParallelAlpha
	}
	if o.EdgeColor == "" {
		o.EdgeColor = d.EdgeColor
	}
	if o.LegendColumns <= 0 {
		o.LegendColumns = d.LegendColumns
	}
	return o
}

// Build lays out the chart for a project.
func Build(p *project.Project, opts Options) (*Chart, error) {
	if p == nil || p.Len() == 0 {
		return nil, errors.New("chart: empty project")
	}
	opts = opts.withDefaults()

	tasks := p.Tasks()
	n := len(tasks)
	colors := Palette(n)

	start, end := p.Span()
	visible := Range{Start: start, End: end.AddDate(0, 0, 1)}

	c := &Chart{
		Title: opts.Title,
		Rows:  n,
		Range: visible,
		Bars:  make([]Bar, 0, n),
	}

	for idx, t := range tasks {
		c.Bars = append(c.Bars, Bar{
			Task:   idx,
			Name:   t.Name,
			Start:  t.Start,
			Days:   t.Duration(),
			End:    t.Finish(),
			Y:      float64(n - idx - 1),
			Height: BarHeight,
			Color:  colors[idx],
		})
	}

	for _, idx := range p.Parallel() {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("chart: %w: %d", project.ErrParallelIndexOutOfRange, idx)
		}
		t := tasks[idx]
		y := float64(n - idx - 1)
		c.Overlays = append(c.Overlays, Overlay{
			Task:      idx,
			Start:     t.Start,
			End:       t.End,
			Y:         y,
			Height:    BarHeight,
			Color:     opts.ParallelColor,
			Alpha:     opts.ParallelAlpha,
			EdgeColor: opts.EdgeColor,
			EdgeWidth: 1.2,
		})
		c.Connectors = append(c.Connectors, Connector{
			Task:   idx,
			Start:  t.Start,
			End:    t.End,
			Y:      y + midHeight,
			Dashed: true,
			Color:  opts.EdgeColor,
			Width:  1.5,
			Alpha:  0.7,
		})
	}

	labels := make([]string, n)
	for idx, t := range tasks {
		labels[n-idx-1] = t.Name
	}
	c.YAxis = CategoryAxis{Label: opts.YLabel, Labels: labels}

	c.TopAxis = DateAxis{
		Edge:     EdgeTop,
		Label:    opts.XLabel,
		Range:    visible,
		Ticks:    dayTicks(visible, opts.DateLayout),
		Rotation: opts.TickRotation,
	}
	c.BottomAxis = DateAxis{
		Edge:  EdgeBottom,
		Range: visible,
	}

	c.Legend = Legend{Columns: opts.LegendColumns}
	for idx, t := range tasks {
		c.Legend.Entries = append(c.Legend.Entries, LegendEntry{Label: t.Name, Color: colors[idx]})
	}
	c.Legend.Entries = append(c.Legend.Entries, LegendEntry{
		Label:   opts.ParallelLabel,
		Color:   opts.ParallelColor,
		Overlay: true,
	})

	return c, nil
}

// dayTicks places one tick per day, including both ends of the range.
func dayTicks(r Range, layout string) []Tick {
	var ticks []Tick
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		ticks = append(ticks, Tick{Date: d, Label: d.Format(layout)})
	}
	return ticks
}
