// Package common provides logging utilities for the application
package common

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// --------------------------------------------------------------------------
// Logger Factory
// --------------------------------------------------------------------------

var baseLogger = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.DateTime,
}).With().Timestamp().Logger()

// GetLogger returns a named logger for the given package. All loggers
// share one console writer on stderr and the global log level.
func GetLogger(pkgName string) zerolog.Logger {
	return baseLogger.With().Str("pkg", pkgName).Logger()
}

// --------------------------------------------------------------------------
// Logger initialization
// --------------------------------------------------------------------------

// SetLogLevel sets the global log level from its string form
func SetLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warning", "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		return fmt.Errorf("invalid log level: %s. must be one of debug, info, warn, error", level)
	}
	return nil
}
