// Package observability wires the structured logger shared by cmd/klattplay
// and cmd/klattd.
package observability

import (
	"os"

	"github.com/charmbracelet/log"
)

var defaultLogger *log.Logger

// Init configures the package-level logger. level is one of
// debug/info/warn/error; unrecognized values fall back to info.
func Init(level string, pretty bool) *log.Logger {
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	}
	if !pretty {
		opts.Formatter = log.JSONFormatter
	}

	l := log.NewWithOptions(os.Stderr, opts)
	l.SetLevel(parseLevel(level))
	defaultLogger = l
	return l
}

// Logger returns the package-level logger, initializing it at info level on
// first use if Init was never called.
func Logger() *log.Logger {
	if defaultLogger == nil {
		return Init("info", true)
	}
	return defaultLogger
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
