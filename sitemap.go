package devblog

import (
	"encoding/xml"
	"io"

	"github.com/navidjalilian/devblog/content"
	"github.com/navidjalilian/devblog/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string        `xml:"loc"`
	LastMod    string        `xml:"lastmod,omitempty"`
	Alternates []sitemapLink `xml:"xhtml:link"`
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// sitemap lists every home page and published post. Pages that exist in
// more than one locale carry hreflang alternates.
func (a *App) sitemap(posts content.Collection) sitemapURLSet {
	r := a.Config.Routing
	var homes []sitemapLink
	if len(r.Locales) > 1 {
		for _, l := range r.Locales {
			homes = append(homes, sitemapLink{Rel: "alternate", Hreflang: string(l), Href: views.BuildURL(a.Config.URL, r.Path(l))})
		}
	}

	var urls []sitemapURL
	for _, l := range r.Locales {
		urls = append(urls, sitemapURL{Loc: views.BuildURL(a.Config.URL, r.Path(l)), Alternates: homes})
	}

	published := posts.Published()
	for _, e := range published.SortedByDate() {
		if !r.Has(e.Data.Lang) {
			continue
		}
		u := sitemapURL{
			Loc:     views.BuildURL(a.Config.URL, a.feeds.Link(e)),
			LastMod: e.Data.Updated().Format("2006-01-02"),
		}
		for _, alt := range a.alternates(published, e) {
			u.Alternates = append(u.Alternates, sitemapLink{Rel: "alternate", Hreflang: string(alt.Locale), Href: alt.URL})
		}
		urls = append(urls, u)
	}

	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
		URLs:  urls,
	}
}

// Encode writes the sitemap document.
func (s sitemapURLSet) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(s)
}
