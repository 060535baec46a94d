// Package svg exports a chart layout as an SVG image.
package svg

import (
	"bytes"
	"fmt"
	"io"
	"math"

	svgo "github.com/ajstarks/svgo"

	"github.com/pablasso/gantt/internal/chart"
)

const (
	defaultWidth  = 1400
	defaultHeight = 800

	fontFamily     = "font-family:DejaVu Sans,Arial,sans-serif"
	plotBackground = "#eaeaf2"
	gridColor      = "#ffffff"

	charWidth    = 6 // approximate px per character at 10px
	legendLine   = 20
	tickLabelPad = 90
)

// Options control the exported image.
type Options struct {
	Width  int
	Height int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	return o
}

// frame maps data coordinates to pixels.
type frame struct {
	x0, y0, x1, y1 float64
	days           int
	rows           int
}

func (f frame) x(day int) int {
	return int(math.Round(f.x0 + float64(day)*(f.x1-f.x0)/float64(f.days)))
}

// y maps a data y (0 at the bottom) to a pixel row.
func (f frame) y(v float64) int {
	return int(math.Round(f.y1 - v*(f.y1-f.y0)/float64(f.rows)))
}

// Write renders the chart as SVG. Output is produced in full before anything
// is written to w.
func Write(w io.Writer, c *chart.Chart, opts Options) error {
	if c == nil || c.Rows == 0 || c.Range.Days() <= 0 {
		return fmt.Errorf("svg: empty chart")
	}
	opts = opts.withDefaults()

	var buf bytes.Buffer
	canvas := svgo.New(&buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Title(c.Title)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#ffffff")

	f := layout(c, opts)

	drawTitle(canvas, c, opts)
	drawPlot(canvas, c, f)
	drawTopAxis(canvas, c, f)
	drawYAxis(canvas, c, f)
	drawLegend(canvas, c, f, opts)

	canvas.End()

	_, err := io.Copy(w, &buf)
	return err
}

func layout(c *chart.Chart, opts Options) frame {
	longest := 0
	for _, l := range c.YAxis.Labels {
		if n := len([]rune(l)); n > longest {
			longest = n
		}
	}

	legendRows := (len(c.Legend.Entries) + max(c.Legend.Columns, 1) - 1) / max(c.Legend.Columns, 1)
	legendHeight := float64(legendRows*legendLine + 30)

	return frame{
		x0:   float64(longest*charWidth + 50),
		y0:   float64(40 + 20 + tickLabelPad),
		x1:   float64(opts.Width - 40),
		y1:   float64(opts.Height) - legendHeight,
		days: c.Range.Days(),
		rows: c.Rows,
	}
}

func drawTitle(canvas *svgo.SVG, c *chart.Chart, opts Options) {
	canvas.Text(opts.Width/2, 28, c.Title,
		`class="title"`, "text-anchor:middle;font-size:18px;"+fontFamily)
}

func drawPlot(canvas *svgo.SVG, c *chart.Chart, f frame) {
	x0, y0 := int(f.x0), int(f.y0)
	canvas.Rect(x0, y0, int(f.x1)-x0, int(f.y1)-y0, "fill:"+plotBackground)

	for _, t := range c.TopAxis.Ticks {
		x := f.x(c.DayIndex(t.Date))
		canvas.Line(x, y0, x, int(f.y1), "stroke:"+gridColor+";stroke-width:1")
	}
	for row := 0; row <= c.Rows; row++ {
		y := f.y(float64(row))
		canvas.Line(x0, y, int(f.x1), y, "stroke:"+gridColor+";stroke-width:1")
	}

	for _, bar := range c.Bars {
		x := f.x(c.DayIndex(bar.Start))
		top := f.y(bar.Y + bar.Height)
		canvas.Rect(x, top, f.x(c.DayIndex(bar.End))-x, f.y(bar.Y)-top,
			`class="bar"`, "fill:"+bar.Color)
	}

	for _, ov := range c.Overlays {
		x := f.x(c.DayIndex(ov.Start))
		width := f.x(c.DayIndex(ov.End)) - x
		top := f.y(ov.Y + ov.Height)
		bottom := f.y(ov.Y)
		stroke := fmt.Sprintf("stroke:%s;stroke-width:%.1f;stroke-opacity:%.2f", ov.EdgeColor, ov.EdgeWidth, ov.Alpha)
		if width == 0 {
			// A zero-width rect is not rendered; keep the edge visible.
			canvas.Line(x, top, x, bottom, `class="overlay"`, stroke)
			continue
		}
		canvas.Rect(x, top, width, bottom-top, `class="overlay"`,
			fmt.Sprintf("fill:%s;fill-opacity:%.2f;%s", ov.Color, ov.Alpha, stroke))
	}

	for _, cn := range c.Connectors {
		y := f.y(cn.Y)
		style := fmt.Sprintf("stroke:%s;stroke-width:%.1f;stroke-opacity:%.2f", cn.Color, cn.Width, cn.Alpha)
		if cn.Dashed {
			style += ";stroke-dasharray:6,4"
		}
		canvas.Line(f.x(c.DayIndex(cn.Start)), y, f.x(c.DayIndex(cn.End)), y, `class="connector"`, style)
	}
}

func drawTopAxis(canvas *svgo.SVG, c *chart.Chart, f frame) {
	axis := c.TopAxis
	y0 := int(f.y0)

	for _, t := range axis.Ticks {
		x := f.x(c.DayIndex(t.Date))
		canvas.Line(x, y0, x, y0-5, "stroke:#333333;stroke-width:1")
		canvas.TranslateRotate(x, y0-8, -axis.Rotation)
		canvas.Text(0, 0, t.Label, `class="tick"`, "font-size:10px;"+fontFamily)
		canvas.Gend()
	}

	if axis.Label != "" {
		canvas.Text(int((f.x0+f.x1)/2), 52, axis.Label,
			`class="axis-label"`, "text-anchor:middle;font-size:12px;"+fontFamily)
	}
}

func drawYAxis(canvas *svgo.SVG, c *chart.Chart, f frame) {
	for i, label := range c.YAxis.Labels {
		y := (f.y(float64(i)) + f.y(float64(i)+chart.BarHeight)) / 2
		canvas.Text(int(f.x0)-8, y+4, label,
			`class="category"`, "text-anchor:end;font-size:10px;"+fontFamily)
	}

	if c.YAxis.Label != "" {
		canvas.TranslateRotate(14, int((f.y0+f.y1)/2), -90)
		canvas.Text(0, 0, c.YAxis.Label, `class="axis-label"`, "text-anchor:middle;font-size:12px;"+fontFamily)
		canvas.Gend()
	}
}

// drawLegend lays entries out column-major below the plot.
func drawLegend(canvas *svgo.SVG, c *chart.Chart, f frame, opts Options) {
	entries := c.Legend.Entries
	cols := max(c.Legend.Columns, 1)
	perCol := (len(entries) + cols - 1) / cols
	colWidth := (opts.Width - 80) / cols
	top := int(f.y1) + 30

	for i, e := range entries {
		col, row := i/perCol, i%perCol
		x := 40 + col*colWidth
		y := top + row*legendLine

		canvas.Line(x, y-4, x+28, y-4, `class="legend-entry"`, "stroke-width:4;stroke:"+e.Color)
		canvas.Text(x+36, y, e.Label, "font-size:10px;"+fontFamily)
	}
}
