package project

import "errors"

var (
	// ErrInvalidDate is returned when a date string is not in day/month/year form.
	ErrInvalidDate = errors.New("invalid date")

	// ErrEndBeforeStart is returned when a task ends before it starts.
	ErrEndBeforeStart = errors.New("end date before start date")

	// ErrEmptyName is returned for a task without a name.
	ErrEmptyName = errors.New("task name is empty")

	// ErrNoTasks is returned when a project has no tasks.
	ErrNoTasks = errors.New("project has no tasks")

	// ErrParallelIndexOutOfRange is returned when a parallel index does not
	// point at a task.
	ErrParallelIndexOutOfRange = errors.New("parallel index out of range")
)
