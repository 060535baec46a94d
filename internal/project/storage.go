package project

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the on-disk form of a project.
type document struct {
	Name     string         `yaml:"name"`
	Parallel []int          `yaml:"parallel,flow,omitempty"`
	Tasks    []taskDocument `yaml:"tasks"`
}

type taskDocument struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Decode parses a YAML (or JSON) project document.
func Decode(data []byte) (*Project, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse project: %w", err)
	}

	rows := make([]row, len(doc.Tasks))
	for i, t := range doc.Tasks {
		rows[i] = row{name: t.Name, start: t.Start, end: t.End}
	}
	return build(doc.Name, rows, doc.Parallel)
}

// Encode renders a project as a YAML document.
func Encode(p *Project) ([]byte, error) {
	doc := document{
		Name:     p.name,
		Parallel: p.Parallel(),
		Tasks:    make([]taskDocument, len(p.tasks)),
	}
	for i, t := range p.tasks {
		doc.Tasks[i] = taskDocument{
			Name:  t.Name,
			Start: FormatDate(t.Start),
			End:   FormatDate(t.End),
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal project: %w", err)
	}
	return buf.Bytes(), nil
}

// Load reads and parses a project file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	p, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Save atomically writes a project file.
// Uses a temp file + rename so readers never see a partial document.
func Save(path string, p *Project) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
