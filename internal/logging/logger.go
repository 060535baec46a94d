package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/pablasso/gantt/internal/config"
)

// Chart output goes to stdout, so logs go to stderr.
var globalLogger = newLogger(os.Stderr)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func newLogger(w io.Writer) zerolog.Logger {
	zerolog.TimestampFieldName = "timestamp"
	return zerolog.New(w).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger()
}

// L returns the application logger.
func L() *zerolog.Logger {
	return &globalLogger
}

// Init configures the application logger for env, writing to w.
func Init(env string, w io.Writer) error {
	logger := newLogger(w)

	switch env {
	case config.EnvDev:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case config.EnvProd:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case config.EnvLocal:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)

		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = w
		logger = logger.Output(consoleWriter)
	default:
		globalLogger.Error().
			Str("env", env).
			Msg("unknown env")
		return fmt.Errorf("unknown env: %s", env)
	}

	globalLogger = logger
	globalLogger.Debug().Str("env", env).Msg("initialized application logger")
	return nil
}
