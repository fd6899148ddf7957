// Package environment propagates the application environment (development,
// production or test) through context.Context and HTTP requests.
//
// Parse turns a configured name into an Environment; Middleware stores it on
// every request context where FromContext and the Is* predicates read it.
//
//	r.Use(environment.Middleware(environment.Parse(cfg.Env)))
package environment
