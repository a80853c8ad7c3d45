// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level: trace, debug, info, warn, error, fatal, panic, disabled.
	Level string

	// Format is the output format: json or console.
	Format string

	// Caller includes caller file and line number in logs.
	Caller bool

	// Timestamp enables timestamps in log output.
	Timestamp bool

	// Service is attached to every line as "service". Default: storeboard.
	Service string

	// Version is attached as "version" when set.
	Version string

	// Output is the writer for log output. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Timestamp: true,
		Service:   "storeboard",
		Output:    os.Stderr,
	}
}

// levels maps accepted level names to zerolog levels.
var levels = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"panic":    zerolog.PanicLevel,
	"disabled": zerolog.Disabled,
}

var global atomic.Pointer[zerolog.Logger]

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"
	Init(DefaultConfig())
}

// Init builds the global logger from cfg. Later calls replace it.
func Init(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if cfg.Service == "" {
		cfg.Service = "storeboard"
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	var out io.Writer = cfg.Output
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	c := zerolog.New(out).With().Str("service", cfg.Service)
	if cfg.Version != "" {
		c = c.Str("version", cfg.Version)
	}
	if cfg.Timestamp {
		c = c.Timestamp()
	}
	if cfg.Caller {
		c = c.Caller()
	}

	l := c.Logger()
	global.Store(&l)
}

// parseLevel converts a level name to zerolog.Level, defaulting to info.
func parseLevel(level string) zerolog.Level {
	if l, ok := levels[strings.ToLower(level)]; ok {
		return l
	}
	return zerolog.InfoLevel
}

// ValidLevel reports whether level is a recognized level name.
func ValidLevel(level string) bool {
	_, ok := levels[strings.ToLower(level)]
	return ok
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	return *global.Load()
}

// SetLogger replaces the global logger. Intended for tests.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	global.Store(&l)
}

// With creates a child logger context with additional fields.
//
//	providerLog := logging.With().Str("component", "dataset").Logger()
func With() zerolog.Context {
	return global.Load().With()
}

// WithComponent creates a child logger tagged with a component field.
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}

// Debug starts a new message with debug level.
func Debug() *zerolog.Event { return global.Load().Debug() }

// Info starts a new message with info level.
//
//	logging.Info().Int64("seed", seed).Msg("Dataset built")
func Info() *zerolog.Event { return global.Load().Info() }

// Warn starts a new message with warning level.
func Warn() *zerolog.Event { return global.Load().Warn() }

// Error starts a new message with error level.
func Error() *zerolog.Event { return global.Load().Error() }

// Fatal starts a new message with fatal level; os.Exit(1) follows the write.
func Fatal() *zerolog.Event { return global.Load().Fatal() }

// Err starts a new error level message carrying err.
func Err(err error) *zerolog.Event { return global.Load().Err(err) }

// GetLevel returns the current global log level.
func GetLevel() zerolog.Level {
	return zerolog.GlobalLevel()
}

// SetLevelString updates the global log level. Unknown names are ignored
// and reported as false.
func SetLevelString(level string) bool {
	l, ok := levels[strings.ToLower(level)]
	if ok {
		zerolog.SetGlobalLevel(l)
	}
	return ok
}

// NewTestLogger creates a JSON logger writing to w, for capturing output in tests.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
