// Package devblog is a bilingual blog built with Go, Echo, and templ.
// It loads a markdown collection with a validated frontmatter schema and
// serves or statically builds localized home pages, post pages, RSS feeds,
// and a sitemap.
//
// Callers may replace any page through the ViewFuncs struct; the views
// package provides the defaults.
package devblog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/navidjalilian/devblog/content"
	"github.com/navidjalilian/devblog/feed"
	"github.com/navidjalilian/devblog/markdown"
	"github.com/navidjalilian/devblog/views"
)

// ViewFuncs holds the components the App calls when rendering pages.
// A nil field falls back to the views package.
type ViewFuncs struct {
	Home        func(p views.HomePage) templ.Component
	Post        func(p views.PostPage) templ.Component
	NotFound    func(site views.Site) templ.Component
	ServerError func(site views.Site) templ.Component
}

func (v *ViewFuncs) setDefaults() {
	if v.Home == nil {
		v.Home = views.Home
	}
	if v.Post == nil {
		v.Post = views.Post
	}
	if v.NotFound == nil {
		v.NotFound = views.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = views.ServerError
	}
}

// App is the central devblog application. It wires together the collection
// cache, feed generator, markdown renderer, handlers, and views.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Cache  *CollectionCache
	Views  ViewFuncs
	Log    zerolog.Logger

	feeds        *feed.Generator
	markdown     *markdown.Renderer
	contentFS    fs.FS
	customRoutes []func(*App)
	watch        bool
	ready        bool
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()
	views.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
		Log:    zerolog.Nop(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	if a.contentFS == nil {
		a.contentFS = os.DirFS(a.Config.ContentDir)
	}
	loader := content.NewLoader(a.contentFS, ".")
	loader.Log = a.Log
	a.Cache = NewCollectionCache(loader, a.Config.CollectionTTL)
	a.feeds = feed.New(a.Config.Routing)
	a.markdown = markdown.New(a.Config.Markdown)
	return a
}

// WithContentFS loads the collection from fsys instead of ContentDir.
func WithContentFS(fsys fs.FS) Option {
	return func(a *App) {
		a.contentFS = fsys
	}
}

func (a *App) validate() error {
	if err := a.Config.Validate(); err != nil {
		return fmt.Errorf("devblog: invalid config: %w", err)
	}
	return nil
}

// Collection returns every valid post, drafts included.
func (a *App) Collection(ctx context.Context) (content.Collection, error) {
	return a.Cache.Collection(ctx)
}

// Feed generates the feed described by fc from the current collection.
func (a *App) Feed(ctx context.Context, fc FeedConfig) (feed.Document, error) {
	posts, err := a.Collection(ctx)
	if err != nil {
		return feed.Document{}, err
	}
	return a.feeds.Generate(posts, a.feedOptions(fc)), nil
}

func (a *App) feedOptions(fc FeedConfig) feed.Options {
	return feed.Options{
		Title:       fc.Title,
		Description: fc.Description,
		Site:        a.siteURL(),
		Locale:      fc.Locale,
		Language:    fc.Language,
	}
}

// siteURL is the configured URL with exactly one trailing slash.
func (a *App) siteURL() string {
	return strings.TrimRight(a.Config.URL, "/") + "/"
}

// Init validates the configuration and registers middleware and routes.
// Start calls it; tests may call it directly and drive a.Echo.
func (a *App) Init() error {
	if a.ready {
		return nil
	}
	if err := a.validate(); err != nil {
		return err
	}
	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start loads the collection, starts the server, and blocks until ctx is
// done or the server fails.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(); err != nil {
		return err
	}
	posts, err := a.Collection(ctx)
	if err != nil {
		return fmt.Errorf("devblog: load content: %w", err)
	}
	a.Log.Info().Int("posts", len(posts)).Str("dir", a.Config.ContentDir).Msg("collection loaded")

	if a.watch {
		if err := a.Cache.Watch(ctx, a.Config.ContentDir, a.Log); err != nil {
			return fmt.Errorf("devblog: watch content: %w", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info().Str("addr", a.Config.Addr).Msg("listening")
		errCh <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo
	r := a.Config.Routing

	for _, fc := range a.Config.Feeds {
		e.GET("/"+fc.Path, a.feedHandler(fc))
	}
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/styles.css", a.handleAsset("styles.css"))
	e.GET("/favicon.svg", a.handleAsset("favicon.svg"))

	for _, l := range r.Locales {
		e.GET(r.Path(l), a.homeHandler(l))
		e.GET(r.Path(l, "blog")+"*", a.postHandler(l))
		e.GET(r.Path(l, "blog"), a.redirectHome(l))
	}

	e.Static("/", a.Config.PublicDir)
}

// Close releases resources held by the App.
func (a *App) Close() error {
	if a.Echo != nil {
		return a.Echo.Close()
	}
	return nil
}
