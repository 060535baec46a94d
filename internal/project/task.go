package project

import (
	"fmt"
	"strings"
	"time"
)

// Task is a single row of the project table.
type Task struct {
	Name  string
	Start time.Time
	End   time.Time
}

// NewTask parses the start and end dates and validates the task.
func NewTask(name, start, end string) (Task, error) {
	if strings.TrimSpace(name) == "" {
		return Task{}, ErrEmptyName
	}

	s, err := ParseDate(start)
	if err != nil {
		return Task{}, fmt.Errorf("task %q start: %w", name, err)
	}
	e, err := ParseDate(end)
	if err != nil {
		return Task{}, fmt.Errorf("task %q end: %w", name, err)
	}

	t := Task{Name: name, Start: s, End: e}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Validate checks the task invariants.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if t.End.Before(t.Start) {
		return fmt.Errorf("task %q: %w (%s < %s)", t.Name, ErrEndBeforeStart,
			FormatDate(t.End), FormatDate(t.Start))
	}
	return nil
}

// Duration returns the number of days the task covers, counting both the
// start and the end day.
func (t Task) Duration() int {
	return DaysBetween(t.Start, t.End) + 1
}

// Finish returns the exclusive end of the task: start plus its duration.
func (t Task) Finish() time.Time {
	return t.Start.AddDate(0, 0, t.Duration())
}
