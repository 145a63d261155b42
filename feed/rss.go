package feed

import (
	"bytes"
	"encoding/xml"
	"io"
	"net/url"
)

// pubDateLayout is RFC 822 with a literal GMT zone, as feed readers expect.
const pubDateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// ContentType is the media type of an encoded Document.
const ContentType = "application/rss+xml; charset=utf-8"

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Description string    `xml:"description"`
	Link        string    `xml:"link"`
	Language    string    `xml:"language,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        rssGUID  `xml:"guid"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate"`
	Categories  []string `xml:"category"`
	Author      string   `xml:"author,omitempty"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// Encode writes d as an RSS 2.0 document.
func (d Document) Encode(w io.Writer) error {
	items := make([]rssItem, 0, len(d.Items))
	for _, it := range d.Items {
		link := resolve(d.Site, it.Link)
		items = append(items, rssItem{
			Title:       it.Title,
			Link:        link,
			GUID:        rssGUID{IsPermaLink: true, Value: link},
			Description: it.Description,
			PubDate:     it.PubDate.UTC().Format(pubDateLayout),
			Categories:  it.Categories,
			Author:      it.Author,
		})
	}
	doc := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       d.Title,
			Description: d.Description,
			Link:        d.Site,
			Language:    d.Language,
			Items:       items,
		},
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(doc)
}

// Bytes returns the encoded document.
func (d Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// resolve makes link absolute against site. An unparsable site leaves link
// untouched.
func resolve(site, link string) string {
	base, err := url.Parse(site)
	if err != nil || site == "" {
		return link
	}
	ref, err := url.Parse(link)
	if err != nil {
		return link
	}
	return base.ResolveReference(ref).String()
}
