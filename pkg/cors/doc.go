// Package cors implements a Cross-Origin Resource Sharing middleware
// configured from comma-separated settings (CORS_ORIGIN, CORS_METHODS,
// CORS_ALLOWED_HEADERS, CORS_CREDENTIALS).
//
// An origin list containing "*" allows every origin; the request origin is
// reflected rather than sending a literal "*". Combining "*" with credentials
// is rejected by Config.Validate with ErrWildcardCredentials, and start-up is
// expected to abort on that error.
//
// The X-Request-ID response header is exposed to browser scripts so clients
// can report the correlation ID of a failed call.
package cors
