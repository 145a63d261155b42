package content

import (
	"path"
	"strings"
	"unicode"
)

// Slugify converts one path segment to a URL-safe slug. Letters and digits of
// any script are kept so Farsi file names survive; spaces become hyphens and
// other punctuation is dropped.
func Slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r):
			b.WriteRune(unicode.ToLower(r))
		case r == '-', r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte('-')
		}
	}
	return b.String()
}

// SlugFromID derives an entry slug from its collection-relative path:
// "fa/My Post.md" becomes "fa/my-post". An "index" file takes its directory's
// slug.
func SlugFromID(id string) string {
	id = strings.TrimSuffix(id, path.Ext(id))
	parts := strings.Split(id, "/")
	if len(parts) > 1 && parts[len(parts)-1] == "index" {
		parts = parts[:len(parts)-1]
	}
	out := parts[:0]
	for _, p := range parts {
		if s := Slugify(p); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "/")
}
