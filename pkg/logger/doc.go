// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// # Architecture
//
// New picks slog.NewJSONHandler, slog.NewTextHandler or a colorized tint
// handler (FormatColor) based on the configured Format and wraps it with
// LogHandlerDecorator. For every record
// the decorator:
//
//   - prepends the text returned by the PrefixFunc registered with
//     WithMessagePrefix (for example "[ReqId: 6f1c...] ");
//   - runs the ContextExtractor callbacks registered with
//     WithContextExtractors and appends their attributes.
//
// Both are evaluated with the context passed to the *Context logging methods,
// so a single logger instance serves every request and still tags each line
// with the data of the request it was called for.
//
// Contextual accepts arbitrary payloads instead of a message string and
// renders non-string values as JSON text before the prefix is applied.
//
// # Levels
//
// ParseLevel understands the configuration names log, error, warn, debug,
// verbose and fatal. verbose and fatal map to LevelVerbose and LevelFatal and
// are printed by name.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "api"),
//	    logger.WithLevel(level),
//	    logger.WithMessagePrefix(reqctx.LogPrefix),
//	    logger.WithContextExtractors(reqctx.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	logger.NewContextual(log).Info(r.Context(), "health status requested")
package logger
