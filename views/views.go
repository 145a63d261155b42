// Package views holds the default page components of the blog. Pages are
// html/template layouts embedded in the binary and exposed as templ
// components, so callers can swap any of them for their own templ code.
package views

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/navidjalilian/devblog/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"t":          T,
	"date":       FormatDate,
	"localeName": LocaleName,
	"tagClass":   TagClass,
	"joinTags":   JoinTags,
	"pathEscape": PathEscape,
	"websiteLD":  WebsiteJsonLD,
	"postingLD":  BlogPostingJsonLD,
	"abs":        ResolveURL,
	"tag":        func(l i18n.Locale) string { return l.Tag().String() },
}

var pages = template.Must(template.New("views").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))

// ErrorPage is the model of the 404 and 500 pages.
type ErrorPage struct {
	Site  Site
	Meta  PageMeta
	Title string
	Text  string
}

// Home renders a locale's home page.
func Home(p HomePage) templ.Component {
	return page("home.html", p)
}

// Post renders a single post.
func Post(p PostPage) templ.Component {
	return page("post.html", p)
}

// NotFound renders the 404 page in the site's locale.
func NotFound(site Site) templ.Component {
	return errorPage(site, "notFound", "notFoundText")
}

// ServerError renders the 500 page in the site's locale.
func ServerError(site Site) templ.Component {
	return errorPage(site, "serverError", "errorText")
}

func errorPage(site Site, title, text string) templ.Component {
	p := ErrorPage{
		Site:  site,
		Title: T(site.Locale, title),
		Text:  T(site.Locale, text),
	}
	p.Meta = PageMeta{Title: p.Title + " | " + site.Name, OGType: "website"}
	return page("error.html", p)
}

func page(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return pages.ExecuteTemplate(w, name, data)
	})
}
