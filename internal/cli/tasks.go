package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var tasksJSON bool

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the task table with durations",
	Args:  cobra.NoArgs,
	RunE:  runTasks,
}

func init() {
	tasksCmd.Flags().BoolVar(&tasksJSON, "json", false, "Output JSON")
}

func runTasks(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	rows := p.Rows()
	out := cmd.OutOrStdout()

	if tasksJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Task", "Start", "End", "Days", "Parallel")
	for _, r := range rows {
		parallel := ""
		if r.Parallel {
			parallel = "yes"
		}
		t.Row(strconv.Itoa(r.Index), r.Name, r.Start, r.End, strconv.Itoa(r.Duration), parallel)
	}

	fmt.Fprintln(out, p.Name())
	fmt.Fprintln(out, t.Render())
	return nil
}
