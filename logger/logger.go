// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLogLevel maps LOG_LEVEL values to slog levels, defaulting to info
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogger builds the application logger and installs it as the slog default.
// dev gets human readable coloured output on stderr, everything else JSON on stdout.
func InitLogger(level slog.Level, environment string) *slog.Logger {
	var w io.Writer = os.Stdout
	if environment == "dev" {
		w = os.Stderr
	}
	l := New(w, level, environment)
	slog.SetDefault(l)
	return l
}

// New builds a logger writing to w without touching the slog default
func New(w io.Writer, level slog.Level, environment string) *slog.Logger {
	var handler slog.Handler
	if environment == "dev" {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}
