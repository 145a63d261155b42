package content

import (
	"slices"
	"sort"
	"strings"

	"github.com/navidjalilian/devblog/i18n"
)

// Collection is the immutable set of posts loaded for one build.
type Collection []Entry

// Filter returns the entries whose data satisfies keep, in order.
func (c Collection) Filter(keep func(BlogPost) bool) Collection {
	out := make(Collection, 0, len(c))
	for _, e := range c {
		if keep(e.Data) {
			out = append(out, e)
		}
	}
	return out
}

// Published drops drafts.
func (c Collection) Published() Collection {
	return c.Filter(func(p BlogPost) bool { return !p.Draft })
}

// ByLocale keeps entries written in l.
func (c Collection) ByLocale(l i18n.Locale) Collection {
	return c.Filter(func(p BlogPost) bool { return p.Lang == l })
}

// SortedByDate returns a copy ordered newest first. Entries with equal
// pubDate keep their relative order.
func (c Collection) SortedByDate() Collection {
	out := slices.Clone(c)
	slices.SortStableFunc(out, func(a, b Entry) int {
		return b.Data.PubDate.Compare(a.Data.PubDate)
	})
	return out
}

// Find returns the entry with slug written in l.
func (c Collection) Find(l i18n.Locale, slug string) (Entry, bool) {
	for _, e := range c {
		if e.Slug == slug && e.Data.Lang == l {
			return e, true
		}
	}
	return Entry{}, false
}

// Translations returns the other-language entries that share e's postSlug.
func (c Collection) Translations(e Entry) Collection {
	if e.Data.PostSlug == "" {
		return nil
	}
	var out Collection
	for _, other := range c {
		if other.ID != e.ID && other.Data.Lang != e.Data.Lang && other.Data.PostSlug == e.Data.PostSlug {
			out = append(out, other)
		}
	}
	return out
}

// Related returns entries in the same locale sharing at least one tag with e.
func (c Collection) Related(e Entry) Collection {
	tagSet := make(map[string]struct{})
	for _, t := range e.Data.Tags {
		if tag := normalizeTag(t); tag != "" {
			tagSet[tag] = struct{}{}
		}
	}
	var related Collection
	for _, p := range c {
		if p.ID == e.ID || p.Data.Lang != e.Data.Lang {
			continue
		}
		for _, t := range p.Data.Tags {
			if _, ok := tagSet[normalizeTag(t)]; ok {
				related = append(related, p)
				break
			}
		}
	}
	return related
}

// Tags returns the sorted, deduplicated lowercase tags of c.
func (c Collection) Tags() []string {
	set := make(map[string]struct{})
	for _, e := range c {
		for _, t := range e.Data.Tags {
			if tag := normalizeTag(t); tag != "" {
				set[tag] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
