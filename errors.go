package apikit

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/apikit/pkg/environment"
	"github.com/dmitrymomot/apikit/pkg/logger"
	"github.com/dmitrymomot/apikit/pkg/reqctx"
)

// ErrorResponse is the JSON body of routing errors.
type ErrorResponse struct {
	Error ErrorDetail    `json:"error"`
	Meta  map[string]any `json:"meta,omitempty"`
}

// ErrorDetail describes the error.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Detail carries internal error text. Set only in development.
	Detail string `json:"detail,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeErrorDetail(w, r, status, code, message, "")
}

func writeErrorDetail(w http.ResponseWriter, r *http.Request, status int, code, message, detail string) {
	body := ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
	if environment.IsDevelopment(r.Context()) {
		body.Error.Detail = detail
	}
	if id := reqctx.RequestID(r.Context()); id != "" {
		body.Meta = map[string]any{"request_id": id}
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not_found", fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path))
}

// recoverer turns handler panics into a JSON 500 response and logs them.
// The panic value reaches the client only in development.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func recoverer(log *logger.Contextual) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rvr)
				}
				log.Error(r.Context(), "handler panicked",
					logger.Component("router"),
					slog.String("path", r.URL.Path),
					slog.Any("panic", rvr),
				)
				writeErrorDetail(w, r, http.StatusInternalServerError, "internal_error",
					http.StatusText(http.StatusInternalServerError), fmt.Sprint(rvr))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
