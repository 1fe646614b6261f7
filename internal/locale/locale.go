// Package locale holds the supported site languages and the routing rule that
// keeps every page path locale-qualified.
package locale

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies a translated content set.
type Locale string

const (
	English    Locale = "en"
	Portuguese Locale = "pt"

	// Default is served when no other signal selects a locale.
	Default = Portuguese
)

var supported = []Locale{English, Portuguese}

// Supported returns the closed set of site locales.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse reports whether value names a supported locale.
func Parse(value string) (Locale, bool) {
	for _, l := range supported {
		if string(l) == value {
			return l, true
		}
	}
	return "", false
}

// FromPath returns the locale of a path that equals "/<locale>" or starts with "/<locale>/".
func FromPath(path string) (Locale, bool) {
	for _, l := range supported {
		prefix := "/" + string(l)
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return l, true
		}
	}
	return "", false
}

// HasPrefix reports whether path is already locale-qualified.
func HasPrefix(path string) bool {
	_, ok := FromPath(path)
	return ok
}

// Resolver picks the locale a request is redirected to.
type Resolver interface {
	Resolve(r *http.Request) Locale
}

// Fixed always answers the same locale and ignores the request.
type Fixed Locale

func (f Fixed) Resolve(*http.Request) Locale { return Locale(f) }

// Negotiator matches the Accept-Language header against the supported set,
// falling back to its default locale.
type Negotiator struct {
	fallback Locale
	locales  []Locale
	matcher  language.Matcher
}

func NewNegotiator(fallback Locale) *Negotiator {
	locales := []Locale{fallback}
	for _, l := range supported {
		if l != fallback {
			locales = append(locales, l)
		}
	}
	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		tags = append(tags, language.Make(string(l)))
	}
	return &Negotiator{fallback: fallback, locales: locales, matcher: language.NewMatcher(tags)}
}

func (n *Negotiator) Resolve(r *http.Request) Locale {
	if r == nil {
		return n.fallback
	}
	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if accept == "" {
		return n.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return n.fallback
	}
	_, idx, conf := n.matcher.Match(tags...)
	if conf == language.No {
		return n.fallback
	}
	return n.locales[idx]
}

// NewResolver returns a Fixed resolver for def unless negotiate is set.
func NewResolver(def Locale, negotiate bool) Resolver {
	if negotiate {
		return NewNegotiator(def)
	}
	return Fixed(def)
}
