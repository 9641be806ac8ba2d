// Package log builds the slog handler used by the CLI.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
)

// CreateHandler creates a [slog.Handler] writing to w.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case TextFormat, "":
		return newCharmHandler(w, level, charmlog.TextFormatter), nil
	case LogfmtFormat:
		return newCharmHandler(w, level, charmlog.LogfmtFormatter), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", logFormat)
	}
}

func newCharmHandler(w io.Writer, level slog.Level, f charmlog.Formatter) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:     charmlog.Level(level),
		Formatter: f,
	})
}

// GetLevel parses a level name.
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
