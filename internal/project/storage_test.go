package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `name: Sample
parallel: [1]
tasks:
  - name: Design
    start: 1/03/2024
    end: 3/03/2024
  - name: Build
    start: 2/03/2024
    end: 5/03/2024
`

func TestDecode(t *testing.T) {
	p, err := Decode([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Sample", p.Name())
	require.Equal(t, 2, p.Len())
	assert.Equal(t, "Build", p.Task(1).Name)
	assert.Equal(t, 4, p.Task(1).Duration())
	assert.True(t, p.IsParallel(1))
}

func TestDecode_JSON(t *testing.T) {
	data := `{"name": "J", "tasks": [{"name": "A", "start": "01/01/2024", "end": "01/01/2024"}]}`

	p, err := Decode([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Task(0).Duration())
	assert.Empty(t, p.Parallel())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "bad date",
			data: "name: x\ntasks:\n  - name: A\n    start: 2024-01-01\n    end: 02/01/2024\n",
			want: ErrInvalidDate,
		},
		{
			name: "parallel out of range",
			data: "name: x\nparallel: [3]\ntasks:\n  - name: A\n    start: 01/01/2024\n    end: 02/01/2024\n",
			want: ErrParallelIndexOutOfRange,
		},
		{
			name: "no tasks",
			data: "name: x\ntasks: []\n",
			want: ErrNoTasks,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := Decode([]byte("name: x\nowner: me\ntasks: []\n"))
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.yaml")

	original := MustDefault()
	require.NoError(t, Save(path, original))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original.Name(), loaded.Name())
	assert.Equal(t, original.Parallel(), loaded.Parallel())
	require.Equal(t, original.Len(), loaded.Len())
	for i := 0; i < original.Len(); i++ {
		assert.Equal(t, original.Task(i).Name, loaded.Task(i).Name)
		assert.True(t, original.Task(i).Start.Equal(loaded.Task(i).Start))
		assert.True(t, original.Task(i).End.Equal(loaded.Task(i).End))
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
