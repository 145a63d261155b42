package views

import (
	"html/template"
	"time"

	"github.com/navidjalilian/devblog/i18n"
)

// Site holds site-wide values every page needs. Handlers fill it per locale
// so nothing is hardcoded in templates.
type Site struct {
	Name        string
	Description string
	URL         string // canonical base URL
	Locale      i18n.Locale
	Home        string // home path of Locale, e.g. "/fa/"
	Feed        string // feed path of Locale, empty when there is none
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
}

// Alternate is the same page in another locale.
type Alternate struct {
	Locale i18n.Locale
	URL    string
}

// PostSummary is a post as listed on the home page and in related links.
type PostSummary struct {
	Title       string
	Description string
	URL         string
	PubDate     time.Time
	HeroImage   string
	Tags        []string
	Featured    bool
}

// HomePage is the model of a locale's home page.
type HomePage struct {
	Site       Site
	Meta       PageMeta
	Featured   []PostSummary
	Posts      []PostSummary
	Tags       []string
	Alternates []Alternate
}

// PostPage is the model of a single post page.
type PostPage struct {
	Site       Site
	Meta       PageMeta
	Post       PostSummary
	Author     string
	Updated    time.Time // zero when never updated
	Body       template.HTML
	Related    []PostSummary
	Alternates []Alternate
}
