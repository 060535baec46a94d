package project

import (
	"fmt"
	"time"
)

// Project is an ordered, immutable table of tasks. A subset of the tasks is
// flagged as parallel activities for visual emphasis only.
type Project struct {
	name     string
	tasks    []Task
	parallel []int
}

// New validates the tasks and parallel indices and builds a project.
func New(name string, tasks []Task, parallel []int) (*Project, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
	}
	for _, idx := range parallel {
		if idx < 0 || idx >= len(tasks) {
			return nil, fmt.Errorf("%w: %d (project has %d tasks)", ErrParallelIndexOutOfRange, idx, len(tasks))
		}
	}

	p := &Project{
		name:     name,
		tasks:    make([]Task, len(tasks)),
		parallel: make([]int, len(parallel)),
	}
	copy(p.tasks, tasks)
	copy(p.parallel, parallel)
	return p, nil
}

// Name returns the project name.
func (p *Project) Name() string {
	return p.name
}

// Len returns the number of tasks.
func (p *Project) Len() int {
	return len(p.tasks)
}

// Task returns the task at position i.
func (p *Project) Task(i int) Task {
	return p.tasks[i]
}

// Tasks returns a copy of the tasks in insertion order.
func (p *Project) Tasks() []Task {
	out := make([]Task, len(p.tasks))
	copy(out, p.tasks)
	return out
}

// Parallel returns a copy of the parallel task indices in the order given.
func (p *Project) Parallel() []int {
	out := make([]int, len(p.parallel))
	copy(out, p.parallel)
	return out
}

// IsParallel reports whether task i is flagged as a parallel activity.
func (p *Project) IsParallel(i int) bool {
	for _, idx := range p.parallel {
		if idx == i {
			return true
		}
	}
	return false
}

// Span returns the earliest start date and the latest end date.
func (p *Project) Span() (start, end time.Time) {
	start, end = p.tasks[0].Start, p.tasks[0].End
	for _, t := range p.tasks[1:] {
		if t.Start.Before(start) {
			start = t.Start
		}
		if t.End.After(end) {
			end = t.End
		}
	}
	return start, end
}
