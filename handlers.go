package devblog

import (
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/navidjalilian/devblog/feed"
	"github.com/navidjalilian/devblog/i18n"
)

func (a *App) homeHandler(l i18n.Locale) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := a.HomePage(c.Request().Context(), l)
		if err != nil {
			return err
		}
		return Render(c, a.Views.Home(page))
	}
}

func (a *App) postHandler(l i18n.Locale) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Slugs keep the directories of their file, so the whole tail is one slug.
		slug := strings.TrimSuffix(c.Param("*"), "/")
		if s, err := url.PathUnescape(slug); err == nil {
			slug = s
		}
		page, err := a.PostPage(c.Request().Context(), l, slug)
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.site(l)))
		}
		if err != nil {
			return err
		}
		return Render(c, a.Views.Post(page))
	}
}

func (a *App) redirectHome(l i18n.Locale) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, a.Config.Routing.Path(l))
	}
}

func (a *App) feedHandler(fc FeedConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		doc, err := a.Feed(c.Request().Context(), fc)
		if err != nil {
			return err
		}
		return renderXML(c, feed.ContentType, doc.Encode)
	}
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Collection(c.Request().Context())
	if err != nil {
		return err
	}
	return renderXML(c, "application/xml; charset=utf-8", a.sitemap(posts).Encode)
}

// handleRobots serves PublicDir/robots.txt when present and a generated
// allow-all file pointing at the sitemap otherwise.
func (a *App) handleRobots(c echo.Context) error {
	p := filepath.Join(a.Config.PublicDir, "robots.txt")
	if _, err := os.Stat(p); err == nil {
		return c.File(p)
	}
	return c.String(http.StatusOK, a.robots())
}

// handleAsset serves name from PublicDir, falling back to EmbeddedAssets.
func (a *App) handleAsset(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p := filepath.Join(a.Config.PublicDir, name)
		if _, err := os.Stat(p); err == nil {
			return c.File(p)
		}
		data, err := fs.ReadFile(EmbeddedAssets, "embedded/"+name)
		if err != nil {
			return echo.ErrNotFound
		}
		return c.Blob(http.StatusOK, mimeType(name), data)
	}
}

func mimeType(name string) string {
	switch filepath.Ext(name) {
	case ".css":
		return "text/css; charset=utf-8"
	case ".svg":
		return "image/svg+xml"
	}
	return echo.MIMEOctetStream
}

// localeOf returns the locale whose prefix starts path, or the default locale.
func (a *App) localeOf(path string) i18n.Locale {
	r := a.Config.Routing
	for _, l := range r.Locales {
		if p := r.Prefix(l); p != "" && strings.HasPrefix(strings.TrimPrefix(path, "/")+"/", p) {
			return l
		}
	}
	return r.DefaultLocale
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	site := a.site(a.localeOf(c.Request().URL.Path))
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if (ok && he.Code == http.StatusNotFound) || errors.Is(err, ErrNotFound) {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(site))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
		_ = RenderStatus(c, code, a.Views.ServerError(site))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
