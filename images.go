package devblog

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/navidjalilian/devblog/content"
)

const jpegQuality = 80

// processImage decodes an image from src and, when it is a JPEG or PNG wider
// than maxWidth, scales it down to maxWidth keeping the aspect ratio and
// re-encodes it in its own format. resized is false when the image was left
// as it is.
func processImage(src io.Reader, maxWidth int) (data []byte, format string, resized bool, err error) {
	img, format, err := image.Decode(src)
	if err != nil {
		return nil, "", false, fmt.Errorf("decode image: %w", err)
	}
	if format != "jpeg" && format != "png" {
		return nil, format, false, nil
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxWidth <= 0 || w <= maxWidth {
		return nil, format, false, nil
	}

	newH := max(h*maxWidth/w, 1)
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	case "png":
		err = png.Encode(&buf, dst)
	}
	if err != nil {
		return nil, format, false, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), format, true, nil
}

// heroPath maps a site-relative hero image to a file under root. Remote
// images and empty values yield "".
func heroPath(root, hero string) string {
	if hero == "" || strings.Contains(hero, "://") || strings.HasPrefix(hero, "//") {
		return ""
	}
	clean := path.Clean("/" + hero)
	return filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(clean, "/")))
}

// optimizeHeroImages resizes the local hero images of published posts that
// were copied into root. Missing files are logged and skipped.
func (a *App) optimizeHeroImages(posts content.Collection, root string) (int, error) {
	seen := make(map[string]bool)
	n := 0
	for _, e := range posts.Published() {
		p := heroPath(root, e.Data.HeroImage)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true

		f, err := os.Open(p)
		if err != nil {
			a.Log.Warn().Str("post", e.ID).Str("image", e.Data.HeroImage).Msg("hero image not found")
			continue
		}
		data, format, resized, err := processImage(f, a.Config.MaxImageWidth)
		f.Close()
		if err != nil {
			return n, fmt.Errorf("devblog: hero image %s of %s: %w", e.Data.HeroImage, e.ID, err)
		}
		if !resized {
			a.Log.Debug().Str("image", p).Str("format", format).Msg("hero image kept")
			continue
		}
		if err := os.WriteFile(p, data, 0o644); err != nil {
			return n, fmt.Errorf("devblog: write %s: %w", p, err)
		}
		n++
	}
	return n, nil
}
