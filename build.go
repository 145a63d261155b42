package devblog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/navidjalilian/devblog/content"
)

// Build writes the whole site as static files into OutputDir, which is
// emptied first.
func (a *App) Build(ctx context.Context) error {
	if err := a.validate(); err != nil {
		return err
	}
	start := time.Now()

	posts, err := a.Collection(ctx)
	if err != nil {
		return fmt.Errorf("devblog: load content: %w", err)
	}

	out := filepath.Clean(a.Config.OutputDir)
	if out == "." || out == string(filepath.Separator) || out == filepath.Clean(a.Config.ContentDir) || out == filepath.Clean(a.Config.PublicDir) {
		return fmt.Errorf("devblog: refusing to use %q as output directory", a.Config.OutputDir)
	}
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("devblog: clean output: %w", err)
	}
	if err := os.MkdirAll(out, os.ModePerm); err != nil {
		return fmt.Errorf("devblog: create output: %w", err)
	}

	if err := fs.WalkDir(EmbeddedAssets, "embedded", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(EmbeddedAssets, p)
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(out, d.Name()), data, 0o644)
	}); err != nil {
		return fmt.Errorf("devblog: write assets: %w", err)
	}

	if _, err := os.Stat(a.Config.PublicDir); err == nil {
		if err := copyDirContents(a.Config.PublicDir, out); err != nil {
			return fmt.Errorf("devblog: copy public: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("devblog: copy public: %w", err)
	}

	resized, err := a.optimizeHeroImages(posts, out)
	if err != nil {
		return err
	}

	for _, fc := range a.Config.Feeds {
		doc := a.feeds.Generate(posts, a.feedOptions(fc))
		if err := writeFile(filepath.Join(out, filepath.FromSlash(fc.Path)), doc.Encode); err != nil {
			return err
		}
		a.Log.Info().Str("feed", fc.Path).Int("items", len(doc.Items)).Msg("feed written")
	}

	if err := writeFile(filepath.Join(out, "sitemap.xml"), a.sitemap(posts).Encode); err != nil {
		return err
	}
	robots := filepath.Join(out, "robots.txt")
	if _, err := os.Stat(robots); errors.Is(err, fs.ErrNotExist) {
		if err := writeFile(robots, func(w io.Writer) error {
			_, err := io.WriteString(w, a.robots())
			return err
		}); err != nil {
			return err
		}
	}

	pages, err := a.buildPages(ctx, posts, out)
	if err != nil {
		return err
	}

	a.Log.Info().
		Int("posts", len(posts)).
		Int("pages", pages).
		Int("imagesResized", resized).
		Str("out", out).
		Dur("took", time.Since(start)).
		Msg("build complete")
	return nil
}

// buildPages renders every home page, every published post, and 404.html.
func (a *App) buildPages(ctx context.Context, posts content.Collection, out string) (int, error) {
	r := a.Config.Routing
	n := 0
	for _, l := range r.Locales {
		if err := writePage(ctx, out, r.Path(l), a.Views.Home(a.homePage(posts, l))); err != nil {
			return n, err
		}
		n++
		for _, e := range posts.Published().ByLocale(l) {
			page, err := a.postPage(posts, l, e.Slug)
			if err != nil {
				return n, err
			}
			if err := writePage(ctx, out, page.Post.URL, a.Views.Post(page)); err != nil {
				return n, err
			}
			n++
		}
	}
	notFound := a.Views.NotFound(a.site(r.DefaultLocale))
	if err := writeFile(filepath.Join(out, "404.html"), func(w io.Writer) error {
		return notFound.Render(ctx, w)
	}); err != nil {
		return n, err
	}
	return n, nil
}

// writePage renders cmp to the index.html of the directory matching urlPath.
func writePage(ctx context.Context, out, urlPath string, cmp templ.Component) error {
	rel := filepath.FromSlash(strings.Trim(urlPath, "/"))
	return writeFile(filepath.Join(out, rel, "index.html"), func(w io.Writer) error {
		return cmp.Render(ctx, w)
	})
}

func writeFile(p string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(p), os.ModePerm); err != nil {
		return fmt.Errorf("devblog: create directory for %s: %w", p, err)
	}
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("devblog: create %s: %w", p, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("devblog: write %s: %w", p, err)
	}
	return f.Close()
}

// copyDirContents recursively copies contents from src to dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", p, err)
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, os.ModePerm)
		}
		return copyFile(p, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	return writeFile(dst, func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
}
