// Package logging builds the zerolog logger shared by the scanners and rewriters.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/napalu/ngx-i18n-scan/errors"
	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured
const DefaultLevel = "warn"

// ParseLevel maps a level name to a zerolog level
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return zerolog.WarnLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, errors.ErrInvalidLogLevel.WithArgs(level)
	}
}

// New returns a console logger writing to w. verbose forces debug level.
func New(w io.Writer, level string, verbose bool) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}

	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
	}

	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger(), nil
}
