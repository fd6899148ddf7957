package apikit

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	healthmod "github.com/dmitrymomot/apikit/modules/health"
	"github.com/dmitrymomot/apikit/pkg/cors"
	"github.com/dmitrymomot/apikit/pkg/environment"
	"github.com/dmitrymomot/apikit/pkg/health"
	"github.com/dmitrymomot/apikit/pkg/logger"
	"github.com/dmitrymomot/apikit/pkg/metrics"
	"github.com/dmitrymomot/apikit/pkg/reqctx"
	"github.com/dmitrymomot/apikit/pkg/secure"
)

// APIPrefix is the global route prefix.
const APIPrefix = "/api"

// Mountable is a module that exposes its own router.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures NewRouter. Zero values get defaults.
type RouterOptions struct {
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Health   healthmod.Reporter
	// Modules are mounted under APIPrefix by path.
	Modules map[string]Mountable
}

// NewRouter validates cfg and builds the HTTP handler.
//
// Middleware order: security headers, CORS (preflight ends here), request
// context, environment, metrics, panic recovery.
func NewRouter(cfg Config, opts RouterOptions) (http.Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.Health == nil {
		opts.Health = health.Default()
	}

	m := metrics.New(opts.Registry)
	log := logger.NewContextual(opts.Logger)

	r := chi.NewRouter()
	r.Use(
		secure.Middleware(),
		cors.Middleware(cfg.CORS.Policy()),
		reqctx.Middleware,
		environment.Middleware(cfg.Environment()),
		m.Middleware,
		recoverer(log),
	)
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Route(APIPrefix, func(api chi.Router) {
		api.Mount("/health", healthmod.NewService(opts.Health, log).Handle())
		for path, mod := range opts.Modules {
			api.Mount(path, mod.Handle())
		}
	})
	r.Handle("/metrics", metrics.Handler(opts.Registry))

	return r, nil
}
