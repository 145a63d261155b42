// Package i18n defines the site's locales and how they map onto URL paths.
package i18n

import (
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported content language.
type Locale string

const (
	EN Locale = "en"
	FA Locale = "fa"
)

// Locales lists every locale content may declare.
var Locales = []Locale{EN, FA}

var regions = map[Locale]language.Tag{
	EN: language.MustParse("en-US"),
	FA: language.MustParse("fa-IR"),
}

// ParseLocale returns the Locale named by s, or an error if s is not declared.
func ParseLocale(s string) (Locale, error) {
	l := Locale(strings.TrimSpace(s))
	if !l.Valid() {
		return "", fmt.Errorf("i18n: unknown locale %q", s)
	}
	return l, nil
}

// Valid reports whether l is one of Locales.
func (l Locale) Valid() bool {
	for _, known := range Locales {
		if l == known {
			return true
		}
	}
	return false
}

// Tag returns the regional BCP 47 tag for l (en-US, fa-IR).
func (l Locale) Tag() language.Tag {
	if t, ok := regions[l]; ok {
		return t
	}
	return language.Make(string(l))
}

// FeedLanguage returns the RSS <language> value, e.g. "fa-ir".
func (l Locale) FeedLanguage() string {
	return strings.ToLower(l.Tag().String())
}

// Dir returns the text direction for l.
func (l Locale) Dir() string {
	base, _ := l.Tag().Base()
	switch base.String() {
	case "fa", "ar", "he", "ur":
		return "rtl"
	}
	return "ltr"
}

func (l Locale) String() string { return string(l) }

// Routing describes how locales are reflected in URL paths.
type Routing struct {
	DefaultLocale       Locale   `mapstructure:"defaultLocale"`
	Locales             []Locale `mapstructure:"locales"`
	PrefixDefaultLocale bool     `mapstructure:"prefixDefaultLocale"`
}

// DefaultRouting is English by default with an unprefixed default locale.
func DefaultRouting() Routing {
	return Routing{
		DefaultLocale: EN,
		Locales:       []Locale{EN, FA},
	}
}

// Validate checks that the routing only uses declared locales.
func (r Routing) Validate() error {
	if len(r.Locales) == 0 {
		return fmt.Errorf("i18n: no locales configured")
	}
	for _, l := range r.Locales {
		if !l.Valid() {
			return fmt.Errorf("i18n: unknown locale %q", l)
		}
	}
	if !r.Has(r.DefaultLocale) {
		return fmt.Errorf("i18n: default locale %q is not in %v", r.DefaultLocale, r.Locales)
	}
	return nil
}

// Has reports whether l is enabled by the routing.
func (r Routing) Has(l Locale) bool {
	for _, known := range r.Locales {
		if known == l {
			return true
		}
	}
	return false
}

// Prefix returns the path prefix for l: "" for an unprefixed default locale,
// "<locale>/" otherwise.
func (r Routing) Prefix(l Locale) string {
	if l == "" || (l == r.DefaultLocale && !r.PrefixDefaultLocale) {
		return ""
	}
	return string(l) + "/"
}

// Path builds an absolute, slash-terminated path for segments under l.
// Path(FA, "blog", "hello") is "/fa/blog/hello/".
func (r Routing) Path(l Locale, segments ...string) string {
	p := path.Join(append([]string{"/", r.Prefix(l)}, segments...)...)
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}
