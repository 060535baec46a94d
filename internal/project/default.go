package project

import "fmt"

// DefaultName is the name of the built-in project.
const DefaultName = "E-Commerce Platform"

type row struct {
	name, start, end string
}

var defaultRows = []row{
	{"Project Planning and Requirements Gathering", "23/05/2024", "25/05/2024"},
	{"Database Design and Setup", "25/05/2024", "26/05/2024"},
	{"User Authentication", "26/05/2024", "27/05/2024"},
	{"Product Management", "27/05/2024", "29/05/2024"},
	{"Promotional Offers Management", "30/05/2024", "31/05/2024"},
	{"Refund Processing", "31/05/2024", "2/06/2024"},
	{"Checkout and Order Processing", "31/05/2024", "2/06/2024"},
	{"UI Design", "2/06/2024", "2/06/2024"},
	{"Cart and Promotion Logic", "2/06/2024", "2/06/2024"},
	{"Admin Panel", "2/06/2024", "3/06/2024"},
	{"Testing and Bug Fixing", "3/06/2024", "3/06/2024"},
	{"Deployment", "3/06/2024", "4/06/2024"},
	{"Documentation and Final Review", "4/06/2024", "4/06/2024"},
}

// UI Design, Cart and Promotion Logic, Admin Panel.
var defaultParallel = []int{7, 8, 9}

// Default builds the built-in project table.
func Default() (*Project, error) {
	return build(DefaultName, defaultRows, defaultParallel)
}

// MustDefault is like Default but panics on malformed literal data.
func MustDefault() *Project {
	p, err := Default()
	if err != nil {
		panic(fmt.Sprintf("project: built-in table: %v", err))
	}
	return p
}

func build(name string, rows []row, parallel []int) (*Project, error) {
	tasks := make([]Task, 0, len(rows))
	for i, r := range rows {
		t, err := NewTask(r.name, r.start, r.end)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return New(name, tasks, parallel)
}
