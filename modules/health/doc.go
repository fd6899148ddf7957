// Package health is the HTTP module for the service health endpoint.
//
//	svc := health.NewService(pkghealth.Default(), logger.NewContextual(log))
//	r.Mount("/api/health", svc.Handle())
//
// The endpoint answers 200 when the report is up or degraded and 503 when it
// is down. Content-Language follows the language resolved for the request.
package health
