// Package logging provides structured logging configuration using log/slog.
//
// Both pipelines are one-shot batch runs; every log entry carries a run ID
// so the entries of a single invocation can be correlated after the fact.
package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// Use "json" format when the output feeds a log pipeline, "text" for
// human readability during development.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// NewRun returns a logger tagged with a fresh run ID, plus the ID itself.
//
// Usage:
//
//	log, runID := logging.NewRun()
//	log.Info("transform started", "input", cfg.Input.CSVPath)
func NewRun() (*slog.Logger, string) {
	runID := uuid.NewString()
	return slog.Default().With("run_id", runID), runID
}
