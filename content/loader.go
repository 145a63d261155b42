package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// ErrDuplicateSlug is returned when two files map to the same slug.
var ErrDuplicateSlug = errors.New("duplicate slug")

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

var extensions = map[string]bool{
	".md":       true,
	".mdx":      true,
	".markdown": true,
}

// Entry is one validated post of the collection.
type Entry struct {
	// ID is the file path relative to the collection root, e.g. "fa/hello.md".
	ID   string
	Slug string
	Body string
	Data BlogPost
}

// Loader reads the blog collection from a directory of markdown files.
type Loader struct {
	FS  fs.FS
	Dir string
	Log zerolog.Logger
}

// NewLoader returns a Loader for dir inside fsys.
func NewLoader(fsys fs.FS, dir string) *Loader {
	if dir == "" {
		dir = "."
	}
	return &Loader{FS: fsys, Dir: dir, Log: zerolog.Nop()}
}

// Load walks the collection directory and validates every post. Files whose
// name starts with "_" are skipped. The first invalid post aborts the load.
func (l *Loader) Load(ctx context.Context) (Collection, error) {
	var entries Collection
	seen := make(map[string]string)
	err := fs.WalkDir(l.FS, l.Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p != l.Dir && strings.HasPrefix(name, "_") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, "_") || !extensions[strings.ToLower(path.Ext(name))] {
			return nil
		}
		e, err := l.LoadFile(p)
		if err != nil {
			return err
		}
		key := string(e.Data.Lang) + "/" + e.Slug
		if other, ok := seen[key]; ok {
			return fmt.Errorf("%w %q: %s and %s", ErrDuplicateSlug, e.Slug, other, e.ID)
		}
		seen[key] = e.ID
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.Log.Debug().Int("posts", len(entries)).Str("dir", l.Dir).Msg("collection loaded")
	return entries, nil
}

// LoadFile parses and validates a single post at p.
func (l *Loader) LoadFile(p string) (Entry, error) {
	src, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Entry{}, err
	}
	id := strings.TrimPrefix(p, strings.TrimSuffix(l.Dir, "/")+"/")
	if l.Dir == "." {
		id = p
	}

	raw := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(src), &raw, yamlFormat)
	if err != nil {
		return Entry{}, fmt.Errorf("parse frontmatter in %s: %w", p, err)
	}
	data, err := Decode(raw)
	if err != nil {
		var verr *SchemaValidationError
		if errors.As(err, &verr) {
			verr.File = p
		}
		return Entry{}, err
	}
	return Entry{
		ID:   id,
		Slug: localSlug(SlugFromID(id), data),
		Body: string(body),
		Data: data,
	}, nil
}

// localSlug drops a leading directory named after the post's own locale, so
// "fa/salam" written in fa is addressed as "salam" under the /fa/ prefix.
func localSlug(slug string, data BlogPost) string {
	if rest, ok := strings.CutPrefix(slug, string(data.Lang)+"/"); ok && rest != "" {
		return rest
	}
	return slug
}
