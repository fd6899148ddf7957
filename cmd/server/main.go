package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	_ "go.uber.org/automaxprocs"

	"github.com/dmitrymomot/apikit"
	"github.com/dmitrymomot/apikit/pkg/config"
	"github.com/dmitrymomot/apikit/pkg/cors"
	"github.com/dmitrymomot/apikit/pkg/health"
	"github.com/dmitrymomot/apikit/pkg/httpserver"
	"github.com/dmitrymomot/apikit/pkg/logger"
	"github.com/dmitrymomot/apikit/pkg/reqctx"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg apikit.Config
	if err := config.Load(&cfg); err != nil {
		slog.Error("failed to load configuration", logger.Error(err))
		return err
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	if err := cfg.Validate(); err != nil {
		msg := "invalid configuration"
		if errors.Is(err, cors.ErrWildcardCredentials) {
			msg = "invalid CORS configuration"
		}
		log.Log(ctx, logger.LevelFatal, msg, logger.Error(err))
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router, err := apikit.NewRouter(cfg, apikit.RouterOptions{
		Logger:   log,
		Registry: reg,
		Health:   health.Default(),
	})
	if err != nil {
		log.Log(ctx, logger.LevelFatal, "failed to build router", logger.Error(err))
		return err
	}

	policy := cfg.CORS.Policy()
	log.InfoContext(ctx, "security headers enabled", logger.Component("bootstrap"))
	log.InfoContext(ctx, "CORS enabled",
		logger.Component("bootstrap"),
		slog.String("origin", strings.Join(policy.Origins, ",")),
		slog.String("methods", strings.Join(policy.Methods, ",")),
		slog.Bool("credentials", policy.Credentials),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil {
		log.ErrorContext(ctx, "server stopped with error", logger.Error(err))
		return err
	}
	return nil
}

// newLogger builds the process logger. Invalid level or format values are
// ignored here and reported by Config.Validate.
func newLogger(cfg apikit.Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithMessagePrefix(reqctx.LogPrefix),
		logger.WithContextExtractors(reqctx.LoggerExtractor()),
	}
	if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
		opts = append(opts, logger.WithLevel(level))
	}
	if slices.Contains(logger.Formats, cfg.LogFormat) {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...)
}
