package devblog

import (
	"context"
	"fmt"

	"github.com/navidjalilian/devblog/content"
	"github.com/navidjalilian/devblog/i18n"
	"github.com/navidjalilian/devblog/views"
)

const maxRelated = 3

func (a *App) site(l i18n.Locale) views.Site {
	lc := a.Config.Site(l)
	s := views.Site{
		Name:        lc.Title,
		Description: lc.Description,
		URL:         a.Config.URL,
		Locale:      l,
		Home:        a.Config.Routing.Path(l),
	}
	if fc, ok := a.Config.FeedFor(l); ok {
		s.Feed = "/" + fc.Path
	}
	return s
}

func (a *App) summary(e content.Entry) views.PostSummary {
	return views.PostSummary{
		Title:       e.Data.Title,
		Description: e.Data.Description,
		URL:         a.feeds.Link(e),
		PubDate:     e.Data.PubDate,
		HeroImage:   e.Data.HeroImage,
		Tags:        e.Data.Tags,
		Featured:    e.Data.Featured,
	}
}

func (a *App) summaries(c content.Collection) []views.PostSummary {
	out := make([]views.PostSummary, 0, len(c))
	for _, e := range c {
		out = append(out, a.summary(e))
	}
	return out
}

// HomePage builds the model of l's home page.
func (a *App) HomePage(ctx context.Context, l i18n.Locale) (views.HomePage, error) {
	posts, err := a.Collection(ctx)
	if err != nil {
		return views.HomePage{}, err
	}
	return a.homePage(posts, l), nil
}

// PostPage builds the model of the published post slug in l. It returns
// ErrNotFound when there is no such post.
func (a *App) PostPage(ctx context.Context, l i18n.Locale, slug string) (views.PostPage, error) {
	posts, err := a.Collection(ctx)
	if err != nil {
		return views.PostPage{}, err
	}
	return a.postPage(posts, l, slug)
}

func (a *App) homePage(posts content.Collection, l i18n.Locale) views.HomePage {
	site := a.site(l)
	listed := posts.Published().ByLocale(l).SortedByDate()
	featured := listed.Filter(func(p content.BlogPost) bool { return p.Featured })

	var alternates []views.Alternate
	if len(a.Config.Routing.Locales) > 1 {
		for _, other := range a.Config.Routing.Locales {
			alternates = append(alternates, views.Alternate{Locale: other, URL: views.BuildURL(a.Config.URL, a.Config.Routing.Path(other))})
		}
	}

	return views.HomePage{
		Site: site,
		Meta: views.PageMeta{
			Title:       site.Name,
			Description: site.Description,
			URL:         views.BuildURL(a.Config.URL, site.Home),
			OGType:      "website",
		},
		Featured:   a.summaries(featured),
		Posts:      a.summaries(listed),
		Tags:       listed.Tags(),
		Alternates: alternates,
	}
}

func (a *App) postPage(posts content.Collection, l i18n.Locale, slug string) (views.PostPage, error) {
	published := posts.Published()
	e, ok := published.Find(l, slug)
	if !ok {
		return views.PostPage{}, ErrNotFound
	}
	body, err := a.markdown.HTML(e.Body)
	if err != nil {
		return views.PostPage{}, fmt.Errorf("devblog: render %s: %w", e.ID, err)
	}

	site := a.site(l)
	post := a.summary(e)
	page := views.PostPage{
		Site: site,
		Meta: views.PageMeta{
			Title:       post.Title + " | " + site.Name,
			Description: post.Description,
			URL:         views.BuildURL(a.Config.URL, post.URL),
			OGType:      "article",
		},
		Post:       post,
		Author:     e.Data.Author,
		Body:       body,
		Related:    a.summaries(limit(published.Related(e).SortedByDate(), maxRelated)),
		Alternates: a.alternates(published, e),
	}
	if e.Data.UpdatedDate != nil {
		page.Updated = *e.Data.UpdatedDate
	}
	if post.HeroImage != "" {
		page.Meta.Image = views.ResolveURL(a.Config.URL, post.HeroImage)
	}
	return page, nil
}

// alternates lists e and its published translations, or nothing when e has
// no translation.
func (a *App) alternates(published content.Collection, e content.Entry) []views.Alternate {
	translations := published.Translations(e)
	if len(translations) == 0 {
		return nil
	}
	out := []views.Alternate{{Locale: e.Data.Lang, URL: views.BuildURL(a.Config.URL, a.feeds.Link(e))}}
	for _, t := range translations {
		out = append(out, views.Alternate{Locale: t.Data.Lang, URL: views.BuildURL(a.Config.URL, a.feeds.Link(t))})
	}
	return out
}

func limit(c content.Collection, n int) content.Collection {
	if len(c) > n {
		return c[:n]
	}
	return c
}
