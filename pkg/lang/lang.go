package lang

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// Header is the request header the language is detected from.
const Header = "Accept-Language"

// Language is one of the languages the service answers in.
type Language string

const (
	// EN is English.
	EN Language = "en"
	// ES is Spanish.
	ES Language = "es"
)

// Default is used when the client did not ask for English.
const Default = ES

// ErrUnsupported is returned by Parse for codes outside the supported set.
var ErrUnsupported = errors.New("unsupported language")

// Detect classifies a raw Accept-Language value.
//
// The match is a case-insensitive substring test for "en" anywhere in the
// header, not a parsed locale negotiation: "en", "EN" and "en-US" give EN, and
// so does any other value that happens to contain "en". Everything else,
// including an empty header, gives ES.
func Detect(header string) Language {
	if header == "" {
		return Default
	}
	if strings.Contains(strings.ToLower(header), "en") {
		return EN
	}
	return ES
}

// Parse converts an exact language code ("en", "es", any case) to a Language.
func Parse(s string) (Language, error) {
	switch l := Language(strings.ToLower(strings.TrimSpace(s))); l {
	case EN, ES:
		return l, nil
	default:
		return "", errors.Join(ErrUnsupported, errors.New(s))
	}
}

func (l Language) String() string { return string(l) }

// Tag returns the BCP 47 tag for l. Unknown values map to the default language.
func (l Language) Tag() language.Tag {
	switch l {
	case EN:
		return language.English
	case ES:
		return language.Spanish
	default:
		return Default.Tag()
	}
}
