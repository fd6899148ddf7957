package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// PrefixFunc returns the text prepended to a record message.
// An empty result leaves the message untouched.
type PrefixFunc func(ctx context.Context) string

// LogHandlerDecorator wraps a slog.Handler, prefixing messages and injecting
// attributes from context. Both run only when a record is actually handled.
type LogHandlerDecorator struct {
	next       slog.Handler
	prefix     PrefixFunc
	extractors []ContextExtractor
}

// NewLogHandlerDecorator creates a new decorated handler. Nil extractors are dropped.
func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	return newDecorator(next, nil, extractors...)
}

func newDecorator(next slog.Handler, prefix PrefixFunc, extractors ...ContextExtractor) *LogHandlerDecorator {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &LogHandlerDecorator{next: next, prefix: prefix, extractors: clean}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle applies the prefix and extractors, then delegates to the underlying handler.
func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if h.prefix != nil {
		if p := h.prefix(ctx); p != "" {
			rec.Message = p + rec.Message
		}
	}
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandlerDecorator{
		next:       h.next.WithAttrs(attrs),
		prefix:     h.prefix,
		extractors: h.extractors,
	}
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return &LogHandlerDecorator{
		next:       h.next.WithGroup(name),
		prefix:     h.prefix,
		extractors: h.extractors,
	}
}
