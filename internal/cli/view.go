package cli

import (
	"github.com/spf13/cobra"

	"github.com/pablasso/gantt/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive chart viewer",
	Args:  cobra.NoArgs,
	RunE:  runView,
}

func runView(cmd *cobra.Command, args []string) error {
	p, c, err := loadChart()
	if err != nil {
		return err
	}
	return tui.Run(p.Name(), c, tui.Options{
		CellWidth: cfg.Terminal.CellWidth,
		NoColor:   cfg.Terminal.NoColor,
	})
}
