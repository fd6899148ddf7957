package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"log":     slog.LevelInfo,
		"error":   slog.LevelError,
		"warn":    slog.LevelWarn,
		"debug":   slog.LevelDebug,
		"verbose": logger.LevelVerbose,
		"fatal":   logger.LevelFatal,
		" LOG ":   slog.LevelInfo,
	}
	for name, want := range tests {
		got, err := logger.ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := logger.ParseLevel("trace")
	require.Error(t, err)
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
}

func TestCustomLevelNames(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithTextFormatter(),
		logger.WithLevel(logger.LevelVerbose),
	)
	log.Log(context.Background(), logger.LevelVerbose, "chatty")
	log.Log(context.Background(), logger.LevelFatal, "boom")

	out := buf.String()
	assert.Contains(t, out, "level=VERBOSE")
	assert.Contains(t, out, "level=FATAL")
}
