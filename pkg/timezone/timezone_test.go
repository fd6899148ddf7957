package timezone_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/apikit/pkg/timezone"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", "UTC"},
		{"whitespace", "   ", "UTC"},
		{"padded utc", " UTC ", "UTC"},
		{"unknown zone", "Foo/Bar", "UTC"},
		{"invalid zone", "Invalid/Zone", "UTC"},
		{"padded lima", " America/Lima ", "America/Lima"},
		{"lima", "America/Lima", "America/Lima"},
		{"madrid", "Europe/Madrid", "Europe/Madrid"},
		{"new york", "America/New_York", "America/New_York"},
		{"tokyo", "Asia/Tokyo", "Asia/Tokyo"},
		{"tabs and newlines", "\tEurope/Madrid\n", "Europe/Madrid"},
		{"lowercase lima", "america/lima", "america/lima"},
		{"padded lowercase utc", " utc ", "utc"},
		{"mixed case", "EUROPE/madrid", "EUROPE/madrid"},
		{"lowercase multi segment", "america/argentina/buenos_aires", "america/argentina/buenos_aires"},
		{"go local alias", "Local", "UTC"},
		{"go local alias lowercase", "local", "UTC"},
		{"loader rules file", "posixrules", "UTC"},
		{"loader localtime file", "localtime", "UTC"},
		{"path traversal", "../../etc/passwd", "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, timezone.Normalize(tt.raw))
		})
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, timezone.IsValid("UTC"))
	assert.True(t, timezone.IsValid("America/Lima"))
	assert.False(t, timezone.IsValid(""))
	assert.False(t, timezone.IsValid("Local"))
	assert.False(t, timezone.IsValid("posixrules"))
	assert.False(t, timezone.IsValid("POSIXRULES"))
	assert.True(t, timezone.IsValid("asia/tokyo"))
	assert.False(t, timezone.IsValid("Mars/Olympus_Mons"))

	// Memoized lookups keep answering the same way.
	assert.True(t, timezone.IsValid("America/Lima"))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "America/Lima", timezone.Load(" America/Lima ").String())
	assert.Equal(t, time.UTC.String(), timezone.Load("Invalid/Zone").String())
	assert.Equal(t, "UTC", timezone.Load("").String())
	assert.Equal(t, "America/Lima", timezone.Load("america/lima").String())
	assert.Equal(t, "UTC", timezone.Load(" utc ").String())
}

func TestNormalize_Concurrent(t *testing.T) {
	t.Parallel()

	names := []string{"Europe/Berlin", "Not/AZone", " Asia/Tokyo ", "", "Pacific/Auckland"}
	expected := []string{"Europe/Berlin", "UTC", "Asia/Tokyo", "UTC", "Pacific/Auckland"}

	var g errgroup.Group
	for range 50 {
		for i, name := range names {
			g.Go(func() error {
				if got := timezone.Normalize(name); got != expected[i] {
					return fmt.Errorf("Normalize(%q) = %q, want %q", name, got, expected[i])
				}
				return nil
			})
		}
	}
	require.NoError(t, g.Wait())
}
