package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pablasso/gantt/internal/project"
)

const defaultTasksFile = "tasks.yaml"

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the built-in task table to a YAML file",
	Long:  "Writes the built-in project as an editable task table (default tasks.yaml). Render it with --file.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := defaultTasksFile
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	p, err := project.Default()
	if err != nil {
		return err
	}
	if err := project.Save(path, p); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Wrote task table to", path)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Edit the tasks, dates (dd/mm/yyyy) and parallel indices")
	fmt.Fprintf(out, "  2. Run: gantt render --file %s\n", path)
	return nil
}
