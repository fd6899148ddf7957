package reqctx

import (
	"context"
	"log/slog"
)

// LogPrefix returns "[ReqId: <id>] " inside a request scope with a non-empty
// request ID, "" otherwise. Use it with logger.WithMessagePrefix.
func LogPrefix(ctx context.Context) string {
	if id := RequestID(ctx); id != "" {
		return "[ReqId: " + id + "] "
	}
	return ""
}

// LoggerExtractor returns a logger.ContextExtractor adding the request values
// as a "request" attribute group.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		v, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.Group("request",
			slog.String("id", v.RequestID),
			slog.String("language", v.Language.String()),
			slog.String("timezone", v.Timezone),
		), true
	}
}
