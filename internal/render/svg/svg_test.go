package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablasso/gantt/internal/chart"
	"github.com/pablasso/gantt/internal/project"
)

func render(t *testing.T, opts Options) string {
	t.Helper()
	c, err := chart.Build(project.MustDefault(), chart.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c, opts))
	return buf.String()
}

func TestWrite_Elements(t *testing.T) {
	out := render(t, Options{})

	assert.Equal(t, 13, strings.Count(out, `class="bar"`))
	assert.Equal(t, 3, strings.Count(out, `class="overlay"`))
	assert.Equal(t, 3, strings.Count(out, `class="connector"`))
	assert.Equal(t, 3, strings.Count(out, "stroke-dasharray"))
	assert.Equal(t, 14, strings.Count(out, `class="legend-entry"`))
	assert.Equal(t, 14, strings.Count(out, `class="tick"`))
	assert.Equal(t, 13, strings.Count(out, `class="category"`))
}

func TestWrite_Text(t *testing.T) {
	out := render(t, Options{})

	assert.Contains(t, out, "Project Gantt Chart")
	assert.Contains(t, out, "23/05/2024")
	assert.Contains(t, out, "05/06/2024")
	assert.Contains(t, out, "Parallel Activities")
	assert.Contains(t, out, "rotate(-45")
	assert.Contains(t, out, "fill-opacity:0.30")
}

func TestWrite_Size(t *testing.T) {
	out := render(t, Options{Width: 800, Height: 600})

	assert.Contains(t, out, `width="800"`)
	assert.Contains(t, out, `height="600"`)
}

func TestWrite_WellFormed(t *testing.T) {
	out := render(t, Options{})

	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}
}

func TestWrite_EmptyChart(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, &chart.Chart{}, Options{})

	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
