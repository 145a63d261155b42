package devblog

import (
	"fmt"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/rs/zerolog"

	"github.com/navidjalilian/devblog/i18n"
	"github.com/navidjalilian/devblog/markdown"
)

// LocaleConfig holds the per-locale site identity.
type LocaleConfig struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
}

// FeedConfig describes one RSS endpoint.
type FeedConfig struct {
	Path        string      `mapstructure:"path"`   // relative to the site root, e.g. "fa/rss.xml"
	Locale      i18n.Locale `mapstructure:"locale"` // empty for a feed of every locale
	Title       string      `mapstructure:"title"`
	Description string      `mapstructure:"description"`
	Language    string      `mapstructure:"language"` // defaults to the locale's region tag
}

var feedPath = regexp.MustCompile(`^[^/].*\.xml$`)

// Validate checks a single feed entry.
func (f FeedConfig) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Path, validation.Required, validation.Match(feedPath).Error("must be a relative .xml path")),
		validation.Field(&f.Title, validation.Required),
		validation.Field(&f.Locale, validation.By(func(any) error {
			if f.Locale != "" && !f.Locale.Valid() {
				return fmt.Errorf("unknown locale %q", f.Locale)
			}
			return nil
		})),
	)
}

// SiteConfig holds all configuration for a devblog site.
type SiteConfig struct {
	URL        string `mapstructure:"url"`        // Canonical URL (default "https://navidjalilian.com")
	ContentDir string `mapstructure:"contentDir"` // Blog collection (default "src/content/blog")
	PublicDir  string `mapstructure:"publicDir"`  // Static assets copied as-is (default "public")
	OutputDir  string `mapstructure:"outputDir"`  // Build output (default "dist")
	Addr       string `mapstructure:"addr"`       // Listen address (default ":4321")

	Routing i18n.Routing                  `mapstructure:"i18n"`
	Locales map[i18n.Locale]LocaleConfig `mapstructure:"locales"`
	Feeds   []FeedConfig                  `mapstructure:"feeds"`

	Markdown markdown.Config `mapstructure:"markdown"`

	CollectionTTL time.Duration `mapstructure:"collectionTTL"` // 0 keeps the collection until invalidated
	MaxImageWidth int           `mapstructure:"maxImageWidth"` // Hero images wider than this are resized (default 1200)
}

const (
	enTitle       = "DevBlog"
	enDescription = "A modern developer blog featuring the latest in web development, programming tutorials, and tech insights."
	faTitle       = "لومن - رشد شخصی و موفقیت"
	faDescription = "مجله دیجیتال لومن با تمرکز بر رشد شخصی، موفقیت حرفه‌ای و بهترین روش‌های جهانی برای بهبود زندگی"
)

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "https://navidjalilian.com"
	}
	if c.ContentDir == "" {
		c.ContentDir = "src/content/blog"
	}
	if c.PublicDir == "" {
		c.PublicDir = "public"
	}
	if c.OutputDir == "" {
		c.OutputDir = "dist"
	}
	if c.Addr == "" {
		c.Addr = ":4321"
	}
	if c.Routing.DefaultLocale == "" && len(c.Routing.Locales) == 0 {
		c.Routing = i18n.DefaultRouting()
	}
	if c.Locales == nil {
		c.Locales = map[i18n.Locale]LocaleConfig{
			i18n.EN: {Title: enTitle, Description: enDescription},
			i18n.FA: {Title: faTitle, Description: faDescription},
		}
	}
	if c.Feeds == nil {
		c.Feeds = []FeedConfig{
			{Path: "rss.xml", Title: enTitle, Description: enDescription, Language: "en-us"},
			{Path: "fa/rss.xml", Locale: i18n.FA, Title: faTitle, Description: faDescription, Language: "fa-ir"},
		}
	}
	if c.Markdown.Theme == "" {
		c.Markdown = markdown.Config{Theme: markdown.DefaultTheme, Wrap: true}
	}
	if c.MaxImageWidth == 0 {
		c.MaxImageWidth = 1200
	}
}

var httpURL = regexp.MustCompile(`^https?://`)

// Validate reports every configuration problem at once.
func (c SiteConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.URL, validation.Required, is.URL, validation.Match(httpURL).Error("must be an http(s) URL")),
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.Routing),
		validation.Field(&c.Feeds, validation.By(func(any) error {
			seen := make(map[string]bool)
			for _, f := range c.Feeds {
				if f.Locale != "" && !c.Routing.Has(f.Locale) {
					return fmt.Errorf("feed %s: locale %q is not routed", f.Path, f.Locale)
				}
				if seen[f.Path] {
					return fmt.Errorf("feed %s: duplicate path", f.Path)
				}
				seen[f.Path] = true
			}
			return nil
		})),
		validation.Field(&c.MaxImageWidth, validation.Min(0)),
	)
}

// Site returns the identity configured for l, falling back to the default
// locale's.
func (c SiteConfig) Site(l i18n.Locale) LocaleConfig {
	if lc, ok := c.Locales[l]; ok {
		return lc
	}
	return c.Locales[c.Routing.DefaultLocale]
}

// FeedFor returns the feed dedicated to l, or the global feed when l has none.
func (c SiteConfig) FeedFor(l i18n.Locale) (FeedConfig, bool) {
	var global *FeedConfig
	for i, f := range c.Feeds {
		if f.Locale == l {
			return f, true
		}
		if f.Locale == "" && global == nil {
			global = &c.Feeds[i]
		}
	}
	if global != nil {
		return *global, true
	}
	return FeedConfig{}, false
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger sets the logger used by the App and its request logging.
func WithLogger(log zerolog.Logger) Option {
	return func(a *App) {
		a.Log = log
	}
}

// WithWatch invalidates the collection whenever the content directory
// changes while the server runs.
func WithWatch() Option {
	return func(a *App) {
		a.watch = true
	}
}
