package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, input string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := New(Config{}).RenderMarkdown(&buf, input); err != nil {
		t.Fatalf("RenderMarkdown(%q) failed: %v", input, err)
	}
	return buf.String()
}

func TestRenderMarkdownHeadings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"# Heading 1", `<h1 id="heading-1">Heading 1</h1>`},
		{"## Heading 2", `<h2 id="heading-2">Heading 2</h2>`},
		{"### Heading 3", `<h3 id="heading-3">Heading 3</h3>`},
	}
	for _, tt := range tests {
		got := render(t, tt.input)
		if !strings.Contains(got, tt.expected) {
			t.Errorf("RenderMarkdown(%q) = %q, want it to contain %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderMarkdownInline(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"`code`", "<code>code</code>"},
		{"~~gone~~", "<del>gone</del>"},
	}
	for _, tt := range tests {
		got := render(t, tt.input)
		if !strings.Contains(got, tt.expected) {
			t.Errorf("RenderMarkdown(%q) = %q, want it to contain %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderMarkdownCodeBlockIsHighlighted(t *testing.T) {
	got := render(t, "```go\nfmt.Println(\"hello\")\n```")
	if !strings.Contains(got, "<pre") {
		t.Errorf("code block should render a <pre>: %q", got)
	}
	if !strings.Contains(got, "style=") {
		t.Errorf("code block should carry inline highlight styles: %q", got)
	}
	if !strings.Contains(got, "Println") {
		t.Errorf("code block missing content: %q", got)
	}
}

func TestRenderMarkdownWrapsLongLines(t *testing.T) {
	var buf bytes.Buffer
	if err := New(Config{Wrap: true}).RenderMarkdown(&buf, "```go\nx := 1\n```"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "white-space:pre-wrap") {
		t.Errorf("wrapped code block should use pre-wrap: %q", buf.String())
	}
}

func TestRenderMarkdownExternalLinks(t *testing.T) {
	got := render(t, "[ext](https://example.com) and [local](/blog/x/)")
	if !strings.Contains(got, `<a href="https://example.com" target="_blank" rel="noopener noreferrer">ext</a>`) {
		t.Errorf("external link should open in a new tab: %q", got)
	}
	if !strings.Contains(got, `<a href="/blog/x/">local</a>`) {
		t.Errorf("local link should be untouched: %q", got)
	}
}

func TestRenderMarkdownImageLoading(t *testing.T) {
	got := render(t, "![a](/a.jpg)\n\n![b](/b.jpg)")
	first := strings.Index(got, `loading="eager"`)
	second := strings.Index(got, `loading="lazy"`)
	if first < 0 || second < 0 || first > second {
		t.Errorf("first image should load eagerly and later ones lazily: %q", got)
	}
}

func TestRenderMarkdownDropsRawHTMLAndUnsafeLinks(t *testing.T) {
	got := render(t, "<script>alert(1)</script>\n\n[x](javascript:alert(1))")
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML should be omitted: %q", got)
	}
	if strings.Contains(got, "javascript:") {
		t.Errorf("dangerous URL should be dropped: %q", got)
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := New(Config{}).Markdown("hello *world*").Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); !strings.Contains(got, "<p>hello <em>world</em></p>") {
		t.Errorf("Markdown component = %q", got)
	}
}

func TestHTML(t *testing.T) {
	h, err := New(Config{}).HTML("plain")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(h), "<p>plain</p>") {
		t.Errorf("HTML = %q", h)
	}
}
