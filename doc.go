// Package apikit is an HTTP API scaffold whose core is a request context
// pipeline: every request gets a correlation ID, a response language and a
// timezone, resolved from headers and bound to the request context for the
// rest of the handler chain and for the logger.
//
// The root package holds the process configuration and the router. The
// building blocks live under pkg/:
//
//   - pkg/reqctx binds the per-request values and provides the middleware
//   - pkg/requestid, pkg/lang and pkg/timezone resolve the individual values
//   - pkg/logger prefixes log lines with "[ReqId: <id>] " via WithMessagePrefix
//   - pkg/cors, pkg/secure, pkg/metrics and pkg/health are the collaborators
//     mounted by NewRouter
//
// # Usage
//
//	var cfg apikit.Config
//	config.MustLoad(&cfg)
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
//		logger.WithMessagePrefix(reqctx.LogPrefix),
//	)
//	h, err := apikit.NewRouter(cfg, apikit.RouterOptions{Logger: log})
//	if err != nil {
//		log.Error("invalid configuration", logger.Error(err))
//		os.Exit(1)
//	}
//	_ = httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, h)
//
// HTTP surface: GET /api/health, GET /metrics, and CORS preflight on any path.
package apikit
