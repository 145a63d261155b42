package devblog

import (
	"strings"
	"testing"

	"github.com/navidjalilian/devblog/i18n"
)

func TestSetDefaults(t *testing.T) {
	var cfg SiteConfig
	cfg.setDefaults()

	if cfg.ContentDir != "src/content/blog" || cfg.OutputDir != "dist" || cfg.Addr != ":4321" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Routing.DefaultLocale != i18n.EN || len(cfg.Routing.Locales) != 2 || cfg.Routing.PrefixDefaultLocale {
		t.Errorf("unexpected routing: %+v", cfg.Routing)
	}
	if len(cfg.Feeds) != 2 {
		t.Fatalf("expected two feeds, got %d", len(cfg.Feeds))
	}
	if cfg.Feeds[0].Path != "rss.xml" || cfg.Feeds[0].Locale != "" || cfg.Feeds[0].Title != "DevBlog" {
		t.Errorf("global feed = %+v", cfg.Feeds[0])
	}
	if cfg.Feeds[1].Path != "fa/rss.xml" || cfg.Feeds[1].Locale != i18n.FA || cfg.Feeds[1].Language != "fa-ir" {
		t.Errorf("fa feed = %+v", cfg.Feeds[1])
	}
	if cfg.Markdown.Theme != "github-dark" || !cfg.Markdown.Wrap {
		t.Errorf("markdown = %+v", cfg.Markdown)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSetDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := SiteConfig{
		URL:   "https://example.com",
		Feeds: []FeedConfig{},
	}
	cfg.setDefaults()
	if cfg.URL != "https://example.com" {
		t.Errorf("URL overwritten: %q", cfg.URL)
	}
	if len(cfg.Feeds) != 0 {
		t.Errorf("an explicit empty feed list should stay empty, got %d", len(cfg.Feeds))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SiteConfig)
		field  string
	}{
		{"non-http url", func(c *SiteConfig) { c.URL = "ftp://example.com" }, "url"},
		{"missing url", func(c *SiteConfig) { c.URL = "" }, "url"},
		{"unknown default locale", func(c *SiteConfig) { c.Routing.DefaultLocale = "de" }, "i18n"},
		{"feed without title", func(c *SiteConfig) { c.Feeds[0].Title = "" }, "title"},
		{"absolute feed path", func(c *SiteConfig) { c.Feeds[0].Path = "/rss.xml" }, "path"},
		{"unknown feed locale", func(c *SiteConfig) { c.Feeds[1].Locale = "de" }, "locale"},
		{"unrouted feed locale", func(c *SiteConfig) { c.Routing.Locales = []i18n.Locale{i18n.EN} }, "not routed"},
		{"duplicate feed path", func(c *SiteConfig) { c.Feeds[1].Path = "rss.xml" }, "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg SiteConfig
			cfg.setDefaults()
			tt.modify(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(strings.ToLower(err.Error()), tt.field) {
				t.Errorf("error %q should mention %q", err, tt.field)
			}
		})
	}
}

func TestFeedFor(t *testing.T) {
	var cfg SiteConfig
	cfg.setDefaults()

	fc, ok := cfg.FeedFor(i18n.FA)
	if !ok || fc.Path != "fa/rss.xml" {
		t.Errorf("FeedFor(fa) = %+v, %v", fc, ok)
	}
	fc, ok = cfg.FeedFor(i18n.EN)
	if !ok || fc.Path != "rss.xml" {
		t.Errorf("FeedFor(en) should fall back to the global feed, got %+v, %v", fc, ok)
	}

	cfg.Feeds = nil
	if _, ok := cfg.FeedFor(i18n.EN); ok {
		t.Error("no feeds configured should report false")
	}
}
