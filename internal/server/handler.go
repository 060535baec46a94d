package server

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pablasso/gantt/internal/project"
	"github.com/pablasso/gantt/internal/render/svg"
)

type tasksResponse struct {
	Project string         `json:"project"`
	Tasks   []project.Row `json:"tasks"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleChartSVG(c *gin.Context) {
	var buf bytes.Buffer
	if err := svg.Write(&buf, s.chart, s.svgOpts); err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to render svg")
		abort(c, newInternalError("failed to render chart"))
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
}

func (s *Server) handleChart(c *gin.Context) {
	c.JSON(http.StatusOK, s.chart)
}

func (s *Server) handleTasks(c *gin.Context) {
	c.JSON(http.StatusOK, tasksResponse{
		Project: s.project.Name(),
		Tasks:   s.project.Rows(),
	})
}

// requestLogger logs each request with the server logger.
func (s *Server) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	s.logger.Info().
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", c.Writer.Status()).
		Dur("latency", time.Since(start)).
		Msg("handled request")
}
