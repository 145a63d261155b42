package devblog

import (
	"strings"

	"github.com/navidjalilian/devblog/views"
)

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (a *App) robots() string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + views.ResolveURL(a.siteURL(), "sitemap.xml") + "\n"
}
