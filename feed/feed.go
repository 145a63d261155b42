// Package feed builds RSS documents from the blog collection.
package feed

import (
	"time"

	"github.com/navidjalilian/devblog/content"
	"github.com/navidjalilian/devblog/i18n"
)

// Item is one entry of a feed. Link is a site-relative path.
type Item struct {
	Title       string
	PubDate     time.Time
	Description string
	Author      string
	Link        string
	Categories  []string
}

// Options describes the channel of one feed.
type Options struct {
	Title       string
	Description string
	// Site is the absolute base URL item links are resolved against.
	Site string
	// Locale restricts the feed to posts written in it. Empty means every
	// locale.
	Locale i18n.Locale
	// Language is the channel <language> value. It defaults to the feed
	// locale's region tag.
	Language string
}

// Document is a generated feed ready to be encoded.
type Document struct {
	Title       string
	Description string
	Site        string
	Language    string
	Items       []Item
}

// Generator turns a collection into feed documents.
type Generator struct {
	Routing i18n.Routing
}

// New returns a Generator building links with r.
func New(r i18n.Routing) *Generator {
	return &Generator{Routing: r}
}

// Generate drops drafts and, for a localized feed, posts in other locales,
// then orders the rest newest first. Posts with the same pubDate keep their
// collection order.
func (g *Generator) Generate(posts content.Collection, opts Options) Document {
	selected := posts.Filter(func(p content.BlogPost) bool {
		return !p.Draft && (opts.Locale == "" || p.Lang == opts.Locale)
	}).SortedByDate()

	items := make([]Item, 0, len(selected))
	for _, e := range selected {
		items = append(items, Item{
			Title:       e.Data.Title,
			PubDate:     e.Data.PubDate,
			Description: e.Data.Description,
			Author:      e.Data.Author,
			Link:        g.Link(e),
			Categories:  e.Data.Tags,
		})
	}

	lang := opts.Language
	if lang == "" {
		l := opts.Locale
		if l == "" {
			l = g.Routing.DefaultLocale
		}
		lang = l.FeedLanguage()
	}
	return Document{
		Title:       opts.Title,
		Description: opts.Description,
		Site:        opts.Site,
		Language:    lang,
		Items:       items,
	}
}

// Link returns the permalink path of e under its own locale.
func (g *Generator) Link(e content.Entry) string {
	return g.Routing.Path(e.Data.Lang, "blog", e.Slug)
}
