package cli

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pablasso/gantt/internal/config"
	"github.com/pablasso/gantt/internal/logging"
	"github.com/pablasso/gantt/internal/render/svg"
	"github.com/pablasso/gantt/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chart over HTTP",
	Long:  `Serve the chart as /chart.svg, with the layout and task table as JSON under /api/v1. Stops on SIGINT or SIGTERM.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address host:port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	p, c, err := loadChart()
	if err != nil {
		return err
	}

	host, port := cfg.HTTP.Host, cfg.HTTP.Port
	if serveAddr != "" {
		host, port, err = net.SplitHostPort(serveAddr)
		if err != nil {
			return fmt.Errorf("invalid --addr %q: %w", serveAddr, err)
		}
	}

	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	ctx, stop := signal.NotifyContext(base, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(*logging.L(), p, c, svg.Options{Width: cfg.SVG.Width, Height: cfg.SVG.Height})
	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s at http://%s/chart.svg\n", p.Name(), net.JoinHostPort(host, port))
	return srv.ListenAndServe(ctx, host, port, cfg.HTTP.ShutdownTimeout)
}
