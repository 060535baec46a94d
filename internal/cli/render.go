package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/gantt/internal/render/term"
)

var (
	renderCellWidth int
	renderNoColor   bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the chart to the terminal",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().IntVar(&renderCellWidth, "cell-width", 0, "Columns per day (default from config)")
	renderCmd.Flags().BoolVar(&renderNoColor, "no-color", false, "Draw with glyphs only")
}

func runRender(cmd *cobra.Command, args []string) error {
	_, c, err := loadChart()
	if err != nil {
		return err
	}

	opts := term.Options{
		CellWidth: cfg.Terminal.CellWidth,
		NoColor:   cfg.Terminal.NoColor || renderNoColor,
	}
	if renderCellWidth > 0 {
		opts.CellWidth = renderCellWidth
	}

	fmt.Fprintln(cmd.OutOrStdout(), term.Render(c, opts))
	return nil
}
