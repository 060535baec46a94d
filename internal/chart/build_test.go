package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablasso/gantt/internal/project"
)

func date(d, m, y int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func buildDefault(t *testing.T) (*project.Project, *Chart) {
	t.Helper()
	p := project.MustDefault()
	c, err := Build(p, DefaultOptions())
	require.NoError(t, err)
	return p, c
}

func TestBuild_VisibleRange(t *testing.T) {
	_, c := buildDefault(t)

	assert.True(t, c.Range.Start.Equal(date(23, 5, 2024)), "start %v", c.Range.Start)
	assert.True(t, c.Range.End.Equal(date(5, 6, 2024)), "end %v", c.Range.End)
	assert.Equal(t, 13, c.Range.Days())

	assert.Equal(t, c.Range, c.TopAxis.Range)
	assert.Equal(t, c.Range, c.BottomAxis.Range)
}

func TestBuild_OneBarPerTask(t *testing.T) {
	p, c := buildDefault(t)

	require.Len(t, c.Bars, p.Len())
	for i, bar := range c.Bars {
		task := p.Task(i)
		assert.Equal(t, i, bar.Task)
		assert.True(t, bar.Start.Equal(task.Start), "bar %d start", i)
		assert.Equal(t, task.Duration(), bar.Days, "bar %d days", i)
		assert.True(t, bar.End.Equal(task.Start.AddDate(0, 0, task.Duration())), "bar %d end", i)
		assert.Equal(t, float64(p.Len()-i-1), bar.Y, "bar %d y", i)
		assert.Equal(t, BarHeight, bar.Height)
		assert.Equal(t, i, c.Row(bar.Y))
	}
}

func TestBuild_DatabaseDesignBar(t *testing.T) {
	_, c := buildDefault(t)

	bar := c.Bars[1]
	assert.Equal(t, "Database Design and Setup", bar.Name)
	assert.Equal(t, 2, bar.Days)
	assert.True(t, bar.End.Equal(date(27, 5, 2024)))
	assert.Equal(t, 2, c.DayIndex(bar.Start))
}

func TestBuild_DistinctColors(t *testing.T) {
	_, c := buildDefault(t)

	seen := map[string]bool{}
	for _, bar := range c.Bars {
		assert.False(t, seen[bar.Color], "duplicate color %s", bar.Color)
		seen[bar.Color] = true
	}
}

func TestBuild_LabelsReversed(t *testing.T) {
	p, c := buildDefault(t)

	require.Len(t, c.YAxis.Labels, 13)
	for i, label := range c.YAxis.Labels {
		assert.Equal(t, p.Task(p.Len()-1-i).Name, label)
	}
	assert.Equal(t, "Documentation and Final Review", c.YAxis.Labels[0])
	assert.Equal(t, "Task", c.YAxis.Label)
}

func TestBuild_ParallelOverlaysAndConnectors(t *testing.T) {
	p, c := buildDefault(t)

	require.Len(t, c.Overlays, 3)
	require.Len(t, c.Connectors, 3)

	for i, idx := range []int{7, 8, 9} {
		task := p.Task(idx)
		ov := c.Overlays[i]
		assert.Equal(t, idx, ov.Task)
		assert.True(t, ov.Start.Equal(task.Start))
		assert.True(t, ov.End.Equal(task.End))
		assert.Equal(t, c.Bars[idx].Y, ov.Y)
		assert.Equal(t, 0.3, ov.Alpha)
		assert.Equal(t, "#add8e6", ov.Color)

		cn := c.Connectors[i]
		assert.Equal(t, idx, cn.Task)
		assert.True(t, cn.Dashed)
		assert.True(t, cn.Start.Equal(task.Start))
		assert.True(t, cn.End.Equal(task.End))
		assert.InDelta(t, c.Bars[idx].Y+0.4, cn.Y, 1e-9)
	}
}

func TestBuild_TopAxisTicks(t *testing.T) {
	_, c := buildDefault(t)

	require.Len(t, c.TopAxis.Ticks, 14)
	assert.Equal(t, "23/05/2024", c.TopAxis.Ticks[0].Label)
	assert.Equal(t, "05/06/2024", c.TopAxis.Ticks[13].Label)
	assert.Equal(t, EdgeTop, c.TopAxis.Edge)
	assert.Equal(t, 45.0, c.TopAxis.Rotation)
	assert.Equal(t, "Date", c.TopAxis.Label)

	assert.Empty(t, c.BottomAxis.Ticks)
	assert.Empty(t, c.BottomAxis.Label)
}

func TestBuild_Legend(t *testing.T) {
	p, c := buildDefault(t)

	require.Len(t, c.Legend.Entries, p.Len()+1)
	assert.Equal(t, 2, c.Legend.Columns)
	for i, bar := range c.Bars {
		assert.Equal(t, bar.Name, c.Legend.Entries[i].Label)
		assert.Equal(t, bar.Color, c.Legend.Entries[i].Color)
		assert.False(t, c.Legend.Entries[i].Overlay)
	}
	last := c.Legend.Entries[p.Len()]
	assert.Equal(t, "Parallel Activities", last.Label)
	assert.Equal(t, "#add8e6", last.Color)
	assert.True(t, last.Overlay)
}

func TestBuild_CustomOptions(t *testing.T) {
	p := project.MustDefault()
	c, err := Build(p, Options{Title: "Launch", DateLayout: "02 Jan", ParallelLabel: "Concurrent"})
	require.NoError(t, err)

	assert.Equal(t, "Launch", c.Title)
	assert.Equal(t, "23 May", c.TopAxis.Ticks[0].Label)
	assert.Equal(t, "Concurrent", c.Legend.Entries[len(c.Legend.Entries)-1].Label)
	assert.Equal(t, "Task", c.YAxis.Label)
}

func TestBuild_NilProject(t *testing.T) {
	_, err := Build(nil, DefaultOptions())
	assert.Error(t, err)
}

func TestBuild_NoParallel(t *testing.T) {
	task, err := project.NewTask("Solo", "1/01/2024", "1/01/2024")
	require.NoError(t, err)
	p, err := project.New("solo", []project.Task{task}, nil)
	require.NoError(t, err)

	c, err := Build(p, DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, c.Overlays)
	assert.Empty(t, c.Connectors)
	assert.Equal(t, 1, c.Range.Days())
	assert.Len(t, c.TopAxis.Ticks, 2)
	assert.Len(t, c.Legend.Entries, 2)
}
