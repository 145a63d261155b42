// Package markdown renders post bodies to HTML as templ components.
package markdown

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultTheme is the chroma style used for fenced code blocks.
const DefaultTheme = "github-dark"

// Config controls code highlighting.
type Config struct {
	Theme string `mapstructure:"theme"`
	Wrap  bool   `mapstructure:"wrap"`
}

// Renderer converts markdown to HTML.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a Renderer with GFM, heading IDs and highlighted code blocks.
// Raw HTML in the source is dropped.
func New(cfg Config) *Renderer {
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(cfg.Theme),
				highlighting.WithFormatOptions(chromahtml.WrapLongLines(cfg.Wrap)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(linkTransformer{}, 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &Renderer{md: md}
}

// RenderMarkdown writes the HTML representation of source to buf.
func (r *Renderer) RenderMarkdown(buf *bytes.Buffer, source string) error {
	return r.md.Convert([]byte(source), buf)
}

// HTML renders source for use in html/template.
func (r *Renderer) HTML(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.RenderMarkdown(&buf, source); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Markdown returns a templ.Component that renders source as HTML.
func (r *Renderer) Markdown(source string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := r.RenderMarkdown(&buf, source); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// linkTransformer opens external links in a new tab and loads every image
// after the first one lazily.
type linkTransformer struct{}

func (linkTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	imageCount := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			if isExternal(string(node.Destination)) {
				node.SetAttributeString("target", []byte("_blank"))
				node.SetAttributeString("rel", []byte("noopener noreferrer"))
			}
		case *ast.Image:
			imageCount++
			if imageCount == 1 {
				node.SetAttributeString("loading", []byte("eager"))
			} else {
				node.SetAttributeString("loading", []byte("lazy"))
			}
			node.SetAttributeString("decoding", []byte("async"))
		}
		return ast.WalkContinue, nil
	})
}

func isExternal(dest string) bool {
	return strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://") || strings.HasPrefix(dest, "//")
}
