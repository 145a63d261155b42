package devblog

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeJPEG(t *testing.T, p string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(x), A: 255})
	}
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
}

func newBuildApp(t *testing.T) (*App, string) {
	t.Helper()
	public := t.TempDir()
	writeJPEG(t, filepath.Join(public, "hero.jpg"), 1600, 800)
	if err := os.MkdirAll(filepath.Join(public, "fonts"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(public, "fonts", "a.woff2"), []byte("font"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "dist")
	app := New(SiteConfig{
		URL:       "https://navidjalilian.com",
		PublicDir: public,
		OutputDir: out,
	}, ViewFuncs{}, WithContentFS(fixtures()))
	return app, out
}

func TestBuildWritesSite(t *testing.T) {
	app, out := newBuildApp(t)
	if err := os.MkdirAll(out, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(out, "stale.html"), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := app.Build(t.Context()); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, rel := range []string{
		"index.html",
		"fa/index.html",
		"blog/first-post/index.html",
		"blog/second/index.html",
		"fa/blog/salam/index.html",
		"fa/blog/دنیا/index.html",
		"rss.xml",
		"fa/rss.xml",
		"sitemap.xml",
		"robots.txt",
		"404.html",
		"styles.css",
		"favicon.svg",
		"fonts/a.woff2",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err != nil {
			t.Errorf("expected %s in output: %v", rel, err)
		}
	}

	for _, rel := range []string{"stale.html", "blog/draft/index.html"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err == nil {
			t.Errorf("%s should not be in the output", rel)
		}
	}

	faFeed, err := os.ReadFile(filepath.Join(out, "fa", "rss.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(faFeed), "<language>fa-ir</language>") || strings.Contains(string(faFeed), "First post") {
		t.Errorf("unexpected fa feed: %s", faFeed)
	}

	f, err := os.Open(filepath.Join(out, "hero.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1200 || cfg.Height != 600 {
		t.Errorf("hero image = %dx%d, want 1200x600", cfg.Width, cfg.Height)
	}

	src, err := os.Open(filepath.Join(app.Config.PublicDir, "hero.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()
	orig, _, err := image.DecodeConfig(src)
	if err != nil {
		t.Fatal(err)
	}
	if orig.Width != 1600 {
		t.Errorf("source image should be untouched, width = %d", orig.Width)
	}
}

func TestBuildKeepsPublicRobots(t *testing.T) {
	app, out := newBuildApp(t)
	if err := os.WriteFile(filepath.Join(app.Config.PublicDir, "robots.txt"), []byte("User-agent: *\nDisallow: /\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := app.Build(t.Context()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(out, "robots.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Disallow: /") {
		t.Errorf("robots.txt from public should win, got %q", data)
	}
}

func TestBuildFailsOnInvalidPost(t *testing.T) {
	fsys := fixtures()
	fsys["bad.md"] = post("title: Bad\ndescription: d\npubDate: 2024-01-01\nlang: de\n", "x")
	app := New(SiteConfig{PublicDir: t.TempDir(), OutputDir: filepath.Join(t.TempDir(), "dist")}, ViewFuncs{}, WithContentFS(fsys))

	err := app.Build(t.Context())
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"bad.md", "lang"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestBuildRefusesUnsafeOutputDir(t *testing.T) {
	tests := []string{".", "/"}
	for _, dir := range tests {
		app := New(SiteConfig{OutputDir: dir}, ViewFuncs{}, WithContentFS(fixtures()))
		if err := app.Build(t.Context()); err == nil {
			t.Errorf("Build with OutputDir %q should fail", dir)
		}
	}
}
