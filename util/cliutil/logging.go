package cliutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type LogOptions struct {
	// Discard all log output
	Quiet bool

	// Number of repeated -v flags; ignored when LogLevel is set
	Verbosity int

	// debug, info, warn, error
	LogLevel string

	// text or json
	LogFormat string
}

func firstenv(envVarNames ...string) string {
	for _, name := range envVarNames {
		if val := os.Getenv(name); val != "" {
			return val
		}
	}
	return ""
}

// LevelForVerbosity maps repeated -v flags onto a level: none logs warnings
// and errors, one adds info, two or more add debug.
func LevelForVerbosity(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// SetupSlog configures the default logger to write to out.
//
// SPECTYPES_LOG_LEVEL=debug|info|warn|error overrides the verbosity count.
//
// SPECTYPES_LOG_FMT=text|json
func SetupSlog(out io.Writer, options LogOptions) (*slog.Logger, error) {
	var hopts slog.HandlerOptions
	hopts.Level = LevelForVerbosity(options.Verbosity)

	if options.LogLevel == "" {
		options.LogLevel = firstenv("SPECTYPES_LOG_LEVEL")
	}
	if options.LogLevel != "" {
		switch strings.ToLower(options.LogLevel) {
		case "debug":
			hopts.Level = slog.LevelDebug
		case "info":
			hopts.Level = slog.LevelInfo
		case "warn":
			hopts.Level = slog.LevelWarn
		case "error":
			hopts.Level = slog.LevelError
		default:
			return nil, fmt.Errorf("unknown log level: %#v", options.LogLevel)
		}
	}

	if options.LogFormat == "" {
		options.LogFormat = firstenv("SPECTYPES_LOG_FMT")
	}
	if options.LogFormat == "" {
		options.LogFormat = "text"
	}

	if options.Quiet {
		out = io.Discard
	}

	var handler slog.Handler
	switch strings.ToLower(options.LogFormat) {
	case "text":
		handler = slog.NewTextHandler(out, &hopts)
	case "json":
		handler = slog.NewJSONHandler(out, &hopts)
	default:
		return nil, fmt.Errorf("unknown log format: %#v", options.LogFormat)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}
