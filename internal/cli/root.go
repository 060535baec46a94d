package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pablasso/gantt/internal/chart"
	"github.com/pablasso/gantt/internal/config"
	"github.com/pablasso/gantt/internal/logging"
	"github.com/pablasso/gantt/internal/project"
	"github.com/pablasso/gantt/internal/version"
)

var (
	projectFile string
	configFile  string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:               "gantt",
	Short:             "Render project Gantt charts",
	Long:              `Gantt draws a task table as a Gantt chart: one bar per task on a shared date axis, with parallel activities highlighted. Run without arguments to open the interactive viewer.`,
	Version:           version.String(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectFile, "file", "f", "", "Task table YAML file (default: built-in project)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config YAML file (default: environment only)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// View opens the interactive viewer on the built-in project.
func View() error {
	rootCmd.SetArgs([]string{viewCmd.Name()})
	return rootCmd.Execute()
}

// setup reads configuration and initialises logging before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Read(configFile)
	if err != nil {
		return err
	}
	if err := logging.Init(c.Env, os.Stderr); err != nil {
		return err
	}
	cfg = c
	return nil
}

// loadProject returns the project from --file, or the built-in table.
func loadProject() (*project.Project, error) {
	if projectFile == "" {
		return project.Default()
	}
	return project.Load(projectFile)
}

// loadChart loads the project and lays out its chart.
func loadChart() (*project.Project, *chart.Chart, error) {
	p, err := loadProject()
	if err != nil {
		return nil, nil, err
	}

	c, err := chart.Build(p, cfg.Chart.ChartOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lay out chart: %w", err)
	}

	logging.L().Debug().
		Str("project", p.Name()).
		Int("tasks", p.Len()).
		Ints("parallel", p.Parallel()).
		Time("from", c.Range.Start).
		Time("to", c.Range.End).
		Msg("built chart")
	return p, c, nil
}
