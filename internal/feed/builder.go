// Package feed assembles extracted items into an RSS 2.0 document.
package feed

import (
	"github.com/gorilla/feeds"

	"scrapefeed/domain"
)

// Build serializes a channel titled title and linked to pageURL, with one
// item per extracted item. The item link doubles as its permalink guid; an
// image enclosure is attached only when the item has one.
func Build(title, pageURL string, items []domain.Item) (string, error) {
	f := &feeds.Feed{
		Title:       title,
		Link:        &feeds.Link{Href: pageURL},
		Description: "Generated from " + pageURL,
	}
	for _, it := range items {
		entry := &feeds.Item{
			Title: it.Title,
			Link:  &feeds.Link{Href: it.Link},
			Id:    it.Link,
		}
		if it.Image != "" {
			entry.Enclosure = &feeds.Enclosure{Url: it.Image, Type: "image", Length: "0"}
		}
		f.Items = append(f.Items, entry)
	}
	return f.ToRss()
}
