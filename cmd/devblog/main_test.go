package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/navidjalilian/devblog/content"
	"github.com/navidjalilian/devblog/i18n"
)

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "devblog.yaml")
	yml := `url: https://example.com
outputDir: build
i18n:
  defaultLocale: en
  locales: [en, fa]
feeds:
  - path: rss.xml
    title: Example
  - path: fa/rss.xml
    locale: fa
    title: نمونه
`
	if err := os.WriteFile(p, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgFile = p
	t.Cleanup(func() { cfgFile = "" })
	t.Setenv("DEVBLOG_OUTPUTDIR", "from-env")
	t.Setenv("DEVBLOG_MARKDOWN_THEME", "monokai")

	cfg, err := loadConfig(zerolog.Nop())
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.URL != "https://example.com" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.OutputDir != "from-env" {
		t.Errorf("environment should override the file, OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Markdown.Theme != "monokai" {
		t.Errorf("Markdown.Theme = %q", cfg.Markdown.Theme)
	}
	if len(cfg.Feeds) != 2 || cfg.Feeds[1].Locale != i18n.FA || cfg.Feeds[1].Title != "نمونه" {
		t.Errorf("Feeds = %+v", cfg.Feeds)
	}
	if cfg.Routing.DefaultLocale != i18n.EN || len(cfg.Routing.Locales) != 2 {
		t.Errorf("Routing = %+v", cfg.Routing)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	cfgFile = filepath.Join(t.TempDir(), "nope.yaml")
	t.Cleanup(func() { cfgFile = "" })
	if _, err := loadConfig(zerolog.Nop()); err == nil {
		t.Error("an explicit config file that does not exist should fail")
	}
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("devblog %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	if got := execute(t, "version"); got != "devblog dev\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestNewAndCheckCommands(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "content")
	t.Setenv("DEVBLOG_CONTENTDIR", dir)

	out := execute(t, "new", "Hello World", "--lang", "fa", "--tags", "go,web")
	p := filepath.Join(dir, "fa", "hello-world.md")
	if !strings.Contains(out, p) {
		t.Errorf("output %q should name %s", out, p)
	}
	if !strings.Contains(out, "/fa/blog/hello-world/") {
		t.Errorf("output %q should name the post URL", out)
	}

	posts, err := content.NewLoader(os.DirFS(dir), ".").Load(context.Background())
	if err != nil {
		t.Fatalf("generated post does not validate: %v", err)
	}
	if len(posts) != 1 || posts[0].Data.Lang != i18n.FA || len(posts[0].Data.Tags) != 2 {
		t.Errorf("unexpected collection: %+v", posts)
	}

	out = execute(t, "check")
	if !strings.Contains(out, "1 posts OK") || !strings.Contains(out, "fa/hello-world.md") {
		t.Errorf("check output = %q", out)
	}
}
