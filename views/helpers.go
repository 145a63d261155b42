package views

import (
	"encoding/json"
	"html/template"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/navidjalilian/devblog/i18n"
)

// BuildURL joins path segments onto a base URL, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// ResolveURL resolves ref against base without touching its trailing slash.
// Absolute refs are returned unchanged and unparsable input is returned as-is.
func ResolveURL(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

var messages = map[i18n.Locale]map[string]string{
	i18n.EN: {
		"featured":     "Featured",
		"recent":       "Recent posts",
		"tags":         "Tags",
		"related":      "Related posts",
		"published":    "Published",
		"updated":      "Updated",
		"by":           "by",
		"readIn":       "Read in",
		"rss":          "RSS",
		"noPosts":      "No posts yet.",
		"notFound":     "Page not found",
		"notFoundText": "The page you are looking for does not exist.",
		"serverError":  "Something went wrong",
		"errorText":    "Please try again later.",
		"backHome":     "Back to home",
	},
	i18n.FA: {
		"featured":     "برگزیده",
		"recent":       "تازه‌ترین نوشته‌ها",
		"tags":         "برچسب‌ها",
		"related":      "نوشته‌های مرتبط",
		"published":    "منتشر شده",
		"updated":      "به‌روزرسانی",
		"by":           "نوشته‌ی",
		"readIn":       "خواندن به",
		"rss":          "خوراک",
		"noPosts":      "هنوز نوشته‌ای نیست.",
		"notFound":     "صفحه پیدا نشد",
		"notFoundText": "صفحه‌ای که دنبالش هستید وجود ندارد.",
		"serverError":  "خطایی رخ داد",
		"errorText":    "لطفا بعدا دوباره تلاش کنید.",
		"backHome":     "بازگشت به خانه",
	},
}

var localeNames = map[i18n.Locale]string{
	i18n.EN: "English",
	i18n.FA: "فارسی",
}

// T returns the interface string key in locale l, falling back to English
// and then to the key itself.
func T(l i18n.Locale, key string) string {
	if s, ok := messages[l][key]; ok {
		return s
	}
	if s, ok := messages[i18n.EN][key]; ok {
		return s
	}
	return key
}

// FormatDate formats t for display in locale l.
func FormatDate(l i18n.Locale, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if l == i18n.FA {
		return t.Format("2006/01/02")
	}
	return t.Format("Jan 2, 2006")
}

// LocaleName returns the native name of l.
func LocaleName(l i18n.Locale) string {
	if n, ok := localeNames[l]; ok {
		return n
	}
	return string(l)
}

// PathEscape wraps url.PathEscape for use in template expressions.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// TagClass returns CSS classes for a tag pill, with active variant.
func TagClass(active bool) string {
	base := "inline-flex items-center rounded border border-ink dark:border-white/30 bg-stone-100 dark:bg-neutral-700 px-2.5 py-1 text-[11px] font-semibold uppercase tracking-[0.12em]"
	if active {
		base += " bg-ink dark:bg-white text-white dark:text-ink"
	}
	return base
}

// JoinTags formats a tag slice as a comma-separated string.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block for site.
func WebsiteJsonLD(site Site) template.JS {
	data := map[string]interface{}{
		"@context":   "https://schema.org",
		"@type":      "WebSite",
		"name":       site.Name,
		"url":        BuildURL(site.URL, site.Home),
		"inLanguage": site.Locale.Tag().String(),
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	return marshalJS(data)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(p PostPage) template.JS {
	postURL := BuildURL(p.Site.URL, p.Post.URL)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      p.Post.Title,
		"description":   p.Post.Description,
		"datePublished": p.Post.PubDate.Format(time.RFC3339),
		"url":           postURL,
		"inLanguage":    p.Site.Locale.Tag().String(),
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  p.Site.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if !p.Updated.IsZero() {
		data["dateModified"] = p.Updated.Format(time.RFC3339)
	}
	if p.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  p.Author,
		}
	}
	if p.Post.HeroImage != "" {
		data["image"] = ResolveURL(p.Site.URL, p.Post.HeroImage)
	}
	if len(p.Post.Tags) > 0 {
		data["keywords"] = strings.Join(p.Post.Tags, ", ")
	}
	return marshalJS(data)
}

func marshalJS(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return template.JS(b)
}
