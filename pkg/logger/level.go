package logger

import (
	"errors"
	"log/slog"
	"strings"
)

// Levels beyond the four built into slog.
const (
	LevelVerbose = slog.LevelDebug - 4
	LevelFatal   = slog.LevelError + 4
)

// ErrInvalidLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLevel = errors.New("invalid log level")

// LevelNames lists the names accepted by ParseLevel.
var LevelNames = []string{"log", "error", "warn", "debug", "verbose", "fatal"}

// ParseLevel maps a configured level name onto a slog.Level.
// "log" is the conventional alias of info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "log", "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	case "warn":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "verbose":
		return LevelVerbose, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return slog.LevelInfo, errors.Join(ErrInvalidLevel, errors.New(name))
	}
}

// replaceLevelNames renders the custom levels by name instead of "DEBUG-4".
func replaceLevelNames(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}
	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch level {
	case LevelVerbose:
		a.Value = slog.StringValue("VERBOSE")
	case LevelFatal:
		a.Value = slog.StringValue("FATAL")
	}
	return a
}
