package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/apikit/pkg/health"
	"github.com/dmitrymomot/apikit/pkg/logger"
	"github.com/dmitrymomot/apikit/pkg/reqctx"
)

// Reporter produces the health report.
type Reporter interface {
	Check(ctx context.Context) health.Result
}

// Service serves the health endpoint.
type Service struct {
	reporter Reporter
	log      *logger.Contextual
}

// NewService creates the health service.
func NewService(reporter Reporter, log *logger.Contextual) *Service {
	if reporter == nil {
		reporter = health.Default()
	}
	if log == nil {
		log = logger.NewContextual(nil)
	}
	return &Service{reporter: reporter, log: log}
}

// Handle returns the module router. Mount it at /api/health.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.status)
	return r
}

func (s *Service) status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := reqctx.Language(ctx)
	tz := reqctx.Timezone(ctx)

	res := s.reporter.Check(ctx)
	s.log.Info(ctx, "health status requested",
		logger.Language(l.String()),
		logger.Timezone(tz),
		logger.Handler("health.status"),
		"status", res.Status,
	)

	code := http.StatusOK
	if res.Status == health.StatusDown {
		code = http.StatusServiceUnavailable
		s.log.Warn(ctx, "health check failing", "error", res.Error)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Language", l.Tag().String())
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.log.Error(ctx, err)
	}
}
