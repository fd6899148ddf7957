package timezone

import (
	_ "embed"
	"strings"
	"sync"
	"time"
	_ "time/tzdata" // validation must not depend on the host zoneinfo

	"golang.org/x/sync/singleflight"
)

const (
	// Header is the request header carrying the caller's IANA timezone.
	Header = "Time-Zone"
	// Default is returned for missing or invalid input.
	Default = "UTC"
)

// known memoizes names that loaded successfully. Only valid names are
// stored, so its size is bounded by the timezone database.
var known sync.Map // map[string]*time.Location

// loads collapses concurrent loads of the same name, valid or not.
var loads singleflight.Group

// zoneList holds one timezone database identifier per line, taken from the
// same release as time/tzdata.
//
//go:embed zones.txt
var zoneList string

// folded maps lower-cased identifiers to their canonical spelling.
var folded = sync.OnceValue(func() map[string]string {
	names := strings.Fields(zoneList)
	idx := make(map[string]string, len(names))
	for _, name := range names {
		idx[strings.ToLower(name)] = name
	}
	return idx
})

// reserved names are accepted by the Go loader but are not zone identifiers.
var reserved = []string{"Local", "localtime", "posixrules"}

// Normalize validates a raw timezone value and returns it trimmed, or Default
// when the trimmed value is empty or not a known IANA identifier.
// The case and exact form of a valid value are preserved.
func Normalize(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Default
	}
	if !IsValid(name) {
		return Default
	}
	return name
}

// IsValid reports whether name is an identifier of the timezone database,
// compared case-insensitively. Go's "Local" alias, loader files such as
// "posixrules" and the empty string are not identifiers.
func IsValid(name string) bool {
	_, ok := lookup(name)
	return ok
}

// Load returns the location for the normalized form of raw.
func Load(raw string) *time.Location {
	loc, ok := lookup(Normalize(raw))
	if !ok {
		return time.UTC
	}
	return loc
}

// lookup resolves name to its location. Names that differ from a database
// identifier only in case resolve to the canonical location, so the memo
// only ever holds canonical names plus exact host-only matches.
func lookup(name string) (*time.Location, bool) {
	if name == "" || isReserved(name) {
		return nil, false
	}
	if canonical, ok := folded()[strings.ToLower(name)]; ok {
		return load(canonical)
	}
	return load(name)
}

func isReserved(name string) bool {
	for _, r := range reserved {
		if strings.EqualFold(name, r) {
			return true
		}
	}
	return false
}

func load(name string) (*time.Location, bool) {
	if v, ok := known.Load(name); ok {
		return v.(*time.Location), true
	}
	v, err, _ := loads.Do(name, func() (any, error) {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, err
		}
		known.Store(name, loc)
		return loc, nil
	})
	if err != nil {
		return nil, false
	}
	return v.(*time.Location), true
}
