package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pablasso/gantt/internal/logging"
	"github.com/pablasso/gantt/internal/render/svg"
	"github.com/pablasso/gantt/internal/util"
)

var (
	exportOutput string
	exportWidth  int
	exportHeight int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the chart as an SVG image",
	Long:  `Export the chart as an SVG image. The file defaults to <project-name>-gantt.svg in the current directory.`,
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: <project>-gantt.svg)")
	exportCmd.Flags().IntVar(&exportWidth, "width", 0, "Image width in px (default from config)")
	exportCmd.Flags().IntVar(&exportHeight, "height", 0, "Image height in px (default from config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	p, c, err := loadChart()
	if err != nil {
		return err
	}

	opts := svg.Options{Width: cfg.SVG.Width, Height: cfg.SVG.Height}
	if exportWidth > 0 {
		opts.Width = exportWidth
	}
	if exportHeight > 0 {
		opts.Height = exportHeight
	}

	var buf bytes.Buffer
	if err := svg.Write(&buf, c, opts); err != nil {
		return fmt.Errorf("failed to render svg: %w", err)
	}

	path := exportOutput
	if path == "" {
		path = util.FileName(p.Name(), "gantt", "svg")
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return err
	}

	logging.L().Info().
		Str("file", path).
		Int("bytes", buf.Len()).
		Msg("exported chart")
	fmt.Fprintf(cmd.OutOrStdout(), "Exported chart to %s\n", path)
	return nil
}

// writeFileAtomic writes to a temp file and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
