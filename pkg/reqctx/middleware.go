package reqctx

import (
	"net/http"

	"github.com/dmitrymomot/apikit/pkg/lang"
	"github.com/dmitrymomot/apikit/pkg/requestid"
	"github.com/dmitrymomot/apikit/pkg/timezone"
)

// Resolve derives the request values from inbound headers.
// Every step has a default, so Resolve cannot fail.
func Resolve(h http.Header) Values {
	return Values{
		RequestID: requestid.Resolve(h.Get(requestid.Header)),
		Language:  lang.Detect(h.Get(lang.Header)),
		Timezone:  timezone.Normalize(h.Get(timezone.Header)),
	}
}

// Middleware resolves the request values, echoes the request ID in the
// response header and binds the values for the rest of the handler chain.
// The header is written before next runs so it is present on every response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := Resolve(r.Header)
		if v.RequestID != "" {
			w.Header().Set(requestid.Header, v.RequestID)
		}
		next.ServeHTTP(w, r.WithContext(WithValues(r.Context(), v)))
	})
}
