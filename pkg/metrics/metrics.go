package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/apikit/pkg/reqctx"
	"github.com/dmitrymomot/apikit/pkg/requestid"
	"github.com/dmitrymomot/apikit/pkg/timezone"
)

// Label values for the source labels.
const (
	SourceHeader    = "header"
	SourceDefault   = "default"
	SourceClient    = "client"
	SourceGenerated = "generated"

	unmatchedRoute = "unmatched"
)

// Collector holds the request metrics. Request IDs are never used as labels.
type Collector struct {
	RequestContext  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		RequestContext: f.NewCounterVec(prometheus.CounterOpts{
			Name: "apikit_request_context_total",
			Help: "Total number of resolved request contexts, by language, timezone source and request id source.",
		}, []string{"language", "timezone_source", "request_id_source"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "apikit_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, by method, route pattern and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// Middleware records both metrics. It reads the bound request context, so it
// must be mounted after reqctx.Middleware.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		v, _ := reqctx.FromContext(r.Context())
		c.RequestContext.WithLabelValues(
			string(reqctx.Language(r.Context())),
			timezoneSource(r.Header.Get(timezone.Header), v.Timezone),
			requestIDSource(r.Header.Get(requestid.Header)),
		).Inc()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		c.RequestDuration.WithLabelValues(
			r.Method,
			routePattern(r),
			strconv.Itoa(status),
		).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func timezoneSource(raw, resolved string) string {
	if trimmed := strings.TrimSpace(raw); trimmed != "" && trimmed == resolved {
		return SourceHeader
	}
	return SourceDefault
}

func requestIDSource(raw string) string {
	if raw != "" {
		return SourceClient
	}
	return SourceGenerated
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}
