package requestid

import "github.com/google/uuid"

// Header is the canonical request-ID header name.
const Header = "X-Request-ID"

// Resolve returns raw unchanged when it is non-empty, otherwise a freshly
// generated ID. Client-supplied IDs are opaque and never validated.
func Resolve(raw string) string {
	if raw != "" {
		return raw
	}
	return New()
}

// New generates a random version 4 UUID string.
// Randomness comes from crypto/rand; a failing source panics.
func New() string {
	return uuid.Must(uuid.NewRandom()).String()
}
