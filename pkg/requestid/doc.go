// Package requestid resolves request correlation identifiers (request IDs).
//
// A request ID is a short opaque string that identifies one inbound HTTP
// request. Echoing it back to the client and tagging every log record with it
// makes it possible to correlate a user interaction across log lines.
//
// # Overview
//
// Resolve reuses the value supplied by the client in the "X-Request-ID" header
// verbatim. The value is treated as opaque: any non-empty string is accepted.
// When the header is absent or empty, New generates a version 4 UUID from a
// cryptographically strong random source.
//
// The package does not store IDs anywhere. Binding the resolved ID to the
// request scope is the job of package reqctx, which also writes the response
// header.
//
// # Usage
//
//	id := requestid.Resolve(r.Header.Get(requestid.Header))
//	w.Header().Set(requestid.Header, id)
//
// # Error Handling
//
// The package does not return errors.
package requestid
