package reqctx

import (
	"context"

	"github.com/dmitrymomot/apikit/pkg/lang"
	"github.com/dmitrymomot/apikit/pkg/timezone"
)

// Values is the context resolved for one inbound request.
// It is copied by value and never changed after the pipeline builds it.
type Values struct {
	RequestID string
	Language  lang.Language
	Timezone  string
}

type contextKey struct{}

// WithValues binds v to ctx. Everything that runs with the returned context,
// including goroutines started with it, observes v through FromContext.
func WithValues(ctx context.Context, v Values) context.Context {
	return context.WithValue(ctx, contextKey{}, v)
}

// Run binds v for the duration of fn.
func Run(ctx context.Context, v Values, fn func(ctx context.Context)) {
	fn(WithValues(ctx, v))
}

// FromContext returns the values bound to ctx, or false outside a request scope.
func FromContext(ctx context.Context) (Values, bool) {
	if ctx == nil {
		return Values{}, false
	}
	v, ok := ctx.Value(contextKey{}).(Values)
	return v, ok
}

// RequestID returns the bound request ID or "".
func RequestID(ctx context.Context) string {
	v, _ := FromContext(ctx)
	return v.RequestID
}

// Language returns the bound language or lang.Default.
func Language(ctx context.Context) lang.Language {
	if v, ok := FromContext(ctx); ok && v.Language != "" {
		return v.Language
	}
	return lang.Default
}

// Timezone returns the bound timezone or timezone.Default.
func Timezone(ctx context.Context) string {
	if v, ok := FromContext(ctx); ok && v.Timezone != "" {
		return v.Timezone
	}
	return timezone.Default
}
