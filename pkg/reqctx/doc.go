// Package reqctx enriches every inbound request with a request ID, a response
// language and a timezone, and makes them available to all code that handles
// the request.
//
// # Pipeline
//
// Middleware runs, in order:
//
//  1. requestid.Resolve on the X-Request-ID header (reused verbatim or generated);
//  2. writes the resolved ID to the X-Request-ID response header;
//  3. lang.Detect on Accept-Language (EN or ES);
//  4. timezone.Normalize on Time-Zone (IANA name or "UTC");
//  5. binds the resulting Values to the request context and calls next.
//
// None of the steps can fail; invalid or missing input falls back to defaults.
//
// # Scope
//
// The values live in the request's context.Context. Each request gets its own
// derived context, so concurrent requests never see each other's values and no
// locking is involved. Work started on behalf of a request, synchronous or in a
// goroutine, sees the values as long as it is given the request context. The
// values disappear with the context once the handler returns.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		tz := reqctx.Timezone(r.Context())
//		go audit(r.Context()) // still sees the same request ID
//	}
//
// # Logging
//
// LogPrefix plugs into logger.WithMessagePrefix to tag every record with
// "[ReqId: <id>] "; LoggerExtractor adds the values as structured attributes.
package reqctx
