// Package server presents a chart over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pablasso/gantt/internal/chart"
	"github.com/pablasso/gantt/internal/project"
	"github.com/pablasso/gantt/internal/render/svg"
)

// Server serves one prebuilt chart.
type Server struct {
	logger  zerolog.Logger
	project *project.Project
	chart   *chart.Chart
	svgOpts svg.Options
	router  *gin.Engine
}

// New builds a server. The chart must already be laid out so a malformed
// project never reaches the listener.
func New(logger zerolog.Logger, p *project.Project, c *chart.Chart, svgOpts svg.Options) *Server {
	s := &Server{
		logger:  logger,
		project: p,
		chart:   c,
		svgOpts: svgOpts,
	}

	router := gin.New()
	router.Use(s.requestLogger)
	router.Use(gin.Recovery())
	s.registerRoutes(router)
	s.router = router

	return s
}

func (s *Server) registerRoutes(router gin.IRouter) {
	router.GET("/healthz", s.handleHealth)
	router.GET("/chart.svg", s.handleChartSVG)

	v1 := router.Group("/api/v1")
	v1.GET("/chart", s.handleChart)
	v1.GET("/tasks", s.handleTasks)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on host:port until ctx is cancelled, then shuts
// down within shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, host, port string, shutdownTimeout time.Duration) error {
	server := &http.Server{
		Addr:    net.JoinHostPort(host, port),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str("host", host).
			Str("port", port).
			Msg("serving chart")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to listen and serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}
	s.logger.Info().Msg("shut down http server")
	return nil
}
