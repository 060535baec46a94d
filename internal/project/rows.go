package project

// Row is the printable form of one task: dates as dd/mm/yyyy, duration in
// days, and whether the task is flagged parallel.
type Row struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration int    `json:"duration"`
	Parallel bool   `json:"parallel"`
}

// Rows returns one Row per task in insertion order.
func (p *Project) Rows() []Row {
	rows := make([]Row, 0, len(p.tasks))
	for i, t := range p.tasks {
		rows = append(rows, Row{
			Index:    i,
			Name:     t.Name,
			Start:    FormatDate(t.Start),
			End:      FormatDate(t.End),
			Duration: t.Duration(),
			Parallel: p.IsParallel(i),
		})
	}
	return rows
}
