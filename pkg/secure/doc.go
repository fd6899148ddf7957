// Package secure sets the conventional set of HTTP security response headers
// (CSP, HSTS, frame and sniffing protection, cross-origin isolation).
//
// Defaults suit a JSON API. Handlers may overwrite individual headers after
// the middleware has run.
//
//	r.Use(secure.Middleware())
//	r.Use(secure.Middleware(secure.WithHSTS(""))) // plain HTTP behind a proxy
package secure
