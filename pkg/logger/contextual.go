package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Contextual logs arbitrary payloads through a *slog.Logger.
//
// Message payloads are rendered with Render before they reach the handler,
// so structs and maps show up as JSON text. Pair it with WithMessagePrefix to
// tag every line with request-scoped data.
type Contextual struct {
	log *slog.Logger
}

// NewContextual wraps l. A nil logger falls back to slog.Default.
func NewContextual(l *slog.Logger) *Contextual {
	if l == nil {
		l = slog.Default()
	}
	return &Contextual{log: l}
}

// Logger returns the wrapped logger.
func (c *Contextual) Logger() *slog.Logger { return c.log }

func (c *Contextual) Log(ctx context.Context, level slog.Level, msg any, args ...any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !c.log.Enabled(ctx, level) {
		return
	}
	c.log.Log(ctx, level, Render(msg), args...)
}

func (c *Contextual) Verbose(ctx context.Context, msg any, args ...any) {
	c.Log(ctx, LevelVerbose, msg, args...)
}

func (c *Contextual) Debug(ctx context.Context, msg any, args ...any) {
	c.Log(ctx, slog.LevelDebug, msg, args...)
}

func (c *Contextual) Info(ctx context.Context, msg any, args ...any) {
	c.Log(ctx, slog.LevelInfo, msg, args...)
}

func (c *Contextual) Warn(ctx context.Context, msg any, args ...any) {
	c.Log(ctx, slog.LevelWarn, msg, args...)
}

func (c *Contextual) Error(ctx context.Context, msg any, args ...any) {
	c.Log(ctx, slog.LevelError, msg, args...)
}

// Fatal logs at LevelFatal. It does not exit the process.
func (c *Contextual) Fatal(ctx context.Context, msg any, args ...any) {
	c.Log(ctx, LevelFatal, msg, args...)
}

// Render turns a log payload into message text.
// Strings pass through, errors use their message, anything else is
// JSON-encoded with a %+v fallback for values JSON cannot represent.
func Render(msg any) string {
	switch v := msg.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case nil:
		return "null"
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Sprintf("%+v", msg)
	}
	return string(b)
}
