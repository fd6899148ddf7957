// Package metrics exposes Prometheus metrics for the request pipeline:
// a counter of resolved request contexts and a latency histogram keyed by
// chi route pattern.
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(reg)
//	r.Use(reqctx.Middleware, m.Middleware)
//	r.Handle("/metrics", metrics.Handler(reg))
package metrics
