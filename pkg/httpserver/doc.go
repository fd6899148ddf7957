// Package httpserver wraps net/http with an eagerly bound listener, graceful
// shutdown, configurable timeouts and slog logging.
//
// Run opens the listener before anything else, so bind errors are returned
// synchronously and Addr reports the real address (useful with port 0).
// Start hooks then run, the server begins serving, and Run blocks until the
// context is done, SIGINT/SIGTERM arrives or Shutdown is called.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run wraps bind and serve errors with ErrStart; Shutdown wraps errors with
// ErrShutdown. Use errors.Is to tell them apart.
package httpserver
