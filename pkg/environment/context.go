package environment

import (
	"context"
	"strings"
)

// Environment represents application environment.
type Environment string

const (
	// Development for local development.
	Development Environment = "development"
	// Production for production deployments.
	Production Environment = "production"
	// Test for automated test runs.
	Test Environment = "test"
)

// Names lists the accepted environment names.
var Names = []string{string(Development), string(Production), string(Test)}

// Parse maps a configured name (including the short aliases dev, prod and
// testing) to an Environment. Unknown names fall back to Development.
func Parse(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(Production), "prod":
		return Production
	case string(Test), "testing":
		return Test
	default:
		return Development
	}
}

type contextKey struct{}

// WithContext adds environment to context
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves environment from context. Empty when unset.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsProduction checks if the environment from context is production
func IsProduction(ctx context.Context) bool {
	return FromContext(ctx) == Production
}

// IsDevelopment checks if the environment from context is development
func IsDevelopment(ctx context.Context) bool {
	return FromContext(ctx) == Development
}

// IsTest checks if the environment from context is test
func IsTest(ctx context.Context) bool {
	return FromContext(ctx) == Test
}
