// Package logging builds the structured logger shared by every component.
package logging

import (
	"io"
	"os"

	"github.com/phuslu/log"

	"github.com/ridwanfathin/cognito-webhook-service/internal/config"
)

// New creates a logger for the given configuration.
// Format "pretty" writes human-readable console output, anything else writes JSON lines.
func New(cfg config.LoggingConfig) *log.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a logger that writes to w.
func NewWithWriter(cfg config.LoggingConfig, w io.Writer) *log.Logger {
	logger := &log.Logger{
		Level:      parseLevel(cfg.Level),
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}

	if cfg.Format == "pretty" {
		logger.Caller = 1
		logger.Writer = &log.ConsoleWriter{
			Writer:         w,
			ColorOutput:    w == os.Stdout || w == os.Stderr,
			EndWithMessage: true,
		}
	} else {
		logger.Writer = &log.IOWriter{Writer: w}
	}

	return logger
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *log.Logger {
	return &log.Logger{
		Level:  log.PanicLevel,
		Writer: &log.IOWriter{Writer: io.Discard},
	}
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug", "info", "warn", "error", "fatal", "trace":
		return log.ParseLevel(level)
	case "warning":
		return log.WarnLevel
	case "critical":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
