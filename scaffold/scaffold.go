// Package scaffold provides embedded template files for the devblog CLI:
// a starter config and new post skeletons.
package scaffold

import (
	"embed"
	"fmt"
	"io"
	"text/template"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

var templates = template.Must(template.New("scaffold").ParseFS(Templates, "templates/*.tmpl"))

// PostData holds the values of a new post skeleton.
type PostData struct {
	Title   string
	PubDate string // YYYY-MM-DD
	Lang    string
	Tags    []string
	Draft   bool
}

// ConfigData holds the values of a starter devblog.yaml.
type ConfigData struct {
	URL string
}

// Post writes a markdown post with frontmatter for d.
func Post(w io.Writer, d PostData) error {
	return execute(w, "post.md.tmpl", d)
}

// Config writes a starter configuration file.
func Config(w io.Writer, d ConfigData) error {
	return execute(w, "devblog.yaml.tmpl", d)
}

func execute(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	return nil
}
