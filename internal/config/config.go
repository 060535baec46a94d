package config

import (
	"time"

	"github.com/pablasso/gantt/internal/chart"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

type Config struct {
	Env      string         `yaml:"env" env:"GANTT_ENV" env-default:"prod"`
	Chart    ChartConfig    `yaml:"chart"`
	Terminal TerminalConfig `yaml:"terminal"`
	SVG      SVGConfig      `yaml:"svg"`
	HTTP     HTTPConfig     `yaml:"http"`
}

type ChartConfig struct {
	Title         string  `yaml:"title" env:"GANTT_TITLE" env-default:"Project Gantt Chart"`
	DateLayout    string  `yaml:"date_layout" env:"GANTT_DATE_LAYOUT" env-default:"02/01/2006"`
	ParallelLabel string  `yaml:"parallel_label" env:"GANTT_PARALLEL_LABEL" env-default:"Parallel Activities"`
	ParallelColor string  `yaml:"parallel_color" env:"GANTT_PARALLEL_COLOR" env-default:"#add8e6"`
	ParallelAlpha float64 `yaml:"parallel_alpha" env:"GANTT_PARALLEL_ALPHA" env-default:"0.3"`
	TickRotation  float64 `yaml:"tick_rotation" env:"GANTT_TICK_ROTATION" env-default:"45"`
}

type TerminalConfig struct {
	CellWidth int  `yaml:"cell_width" env:"GANTT_CELL_WIDTH" env-default:"3"`
	NoColor   bool `yaml:"no_color" env:"NO_COLOR"`
}

type SVGConfig struct {
	Width  int `yaml:"width" env:"GANTT_SVG_WIDTH" env-default:"1400"`
	Height int `yaml:"height" env:"GANTT_SVG_HEIGHT" env-default:"800"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"GANTT_HTTP_HOST" env-default:"127.0.0.1"`
	Port            string        `yaml:"port" env:"GANTT_HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"GANTT_HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// ChartOptions converts the chart section into layout options.
func (c ChartConfig) ChartOptions() chart.Options {
	opts := chart.DefaultOptions()
	opts.Title = c.Title
	opts.DateLayout = c.DateLayout
	opts.ParallelLabel = c.ParallelLabel
	opts.ParallelColor = c.ParallelColor
	opts.ParallelAlpha = c.ParallelAlpha
	opts.TickRotation = c.TickRotation
	return opts
}
