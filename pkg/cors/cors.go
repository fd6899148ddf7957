package cors

import (
	"errors"
	"slices"
	"strings"

	"github.com/dmitrymomot/apikit/pkg/requestid"
)

// Wildcard allows every origin.
const Wildcard = "*"

// ErrWildcardCredentials rejects credentials combined with a wildcard origin,
// which browsers refuse and which would expose credentialed responses to any site.
var ErrWildcardCredentials = errors.New("invalid CORS configuration: credentials cannot be enabled with wildcard origin (*); set CORS_ORIGIN to specific origins or disable CORS_CREDENTIALS")

// Config describes the CORS policy.
type Config struct {
	Origins        []string
	Methods        []string
	AllowedHeaders []string
	ExposedHeaders []string
	Credentials    bool
}

// Parse builds a Config from comma-separated settings. Entries are trimmed
// and empty entries dropped.
func Parse(origins, methods, allowedHeaders string, credentials bool) Config {
	return Config{
		Origins:        split(origins),
		Methods:        split(methods),
		AllowedHeaders: split(allowedHeaders),
		ExposedHeaders: []string{requestid.Header},
		Credentials:    credentials,
	}
}

// AllowsAnyOrigin reports whether the wildcard origin is configured.
func (c Config) AllowsAnyOrigin() bool {
	return slices.Contains(c.Origins, Wildcard)
}

// Validate returns ErrWildcardCredentials for credentials with "*".
func (c Config) Validate() error {
	if c.Credentials && c.AllowsAnyOrigin() {
		return ErrWildcardCredentials
	}
	return nil
}

func split(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
