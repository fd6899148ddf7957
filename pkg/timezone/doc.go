// Package timezone normalizes caller-supplied timezone identifiers.
//
// Clients send their IANA zone (for example "America/Lima") in the Time-Zone
// request header. Normalize trims the value and checks it against the
// timezone database, ignoring case; invalid, empty or missing values silently
// degrade to "UTC". A valid value is returned as sent, so "america/lima" stays
// lower-case while Load resolves it to the America/Lima location.
//
// The database is embedded via time/tzdata, so validation gives the same
// answer on minimal container images without /usr/share/zoneinfo.
//
//	tz := timezone.Normalize(r.Header.Get(timezone.Header))
//	now := time.Now().In(timezone.Load(tz))
package timezone
