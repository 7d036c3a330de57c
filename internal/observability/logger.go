// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package observability configures structured logging for the CLI.
package observability

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paperscreen/pkg/types"
)

// NewLogger builds a zerolog logger from config. Diagnostics default to a
// console writer on stderr so the CSV report on stdout stays machine-readable.
func NewLogger(cfg types.LoggingConfig) zerolog.Logger {
	var output io.Writer = os.Stderr
	if strings.ToLower(cfg.Output) == "stdout" {
		output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339
	if strings.ToLower(cfg.Format) != "json" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: "15:04:05"}
	}

	return zerolog.New(output).With().Timestamp().Logger().Level(parseLevel(cfg.Level))
}

// parseLevel converts a string log level to zerolog.Level. Unknown or empty
// levels default to info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
