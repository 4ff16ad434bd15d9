package extract_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrapefeed/domain"
	"scrapefeed/internal/extract"
	"scrapefeed/internal/htmltree"
)

func newExtractor(t *testing.T, markup string) (*extract.Extractor, *htmltree.Document) {
	t.Helper()
	base, err := url.Parse("http://ex.com/")
	require.NoError(t, err)
	doc, err := htmltree.Parse(markup)
	require.NoError(t, err)
	t.Cleanup(func() { _ = doc.Close() })
	return extract.New(base, nil), doc
}

func TestItemsWithExplicitSelectors(t *testing.T) {
	ex, doc := newExtractor(t, `<ul><li><a href="/a">One</a><img src="/1.jpg"></li></ul>`)

	items := ex.Items(doc, domain.Source{
		ListSelector:  "li",
		TitleSelector: "a",
		LinkSelector:  "a/@href",
		ImageSelector: "img/@src",
	})

	require.Len(t, items, 1)
	assert.Equal(t, domain.Item{
		Title: "One",
		Link:  "http://ex.com/a",
		Image: "http://ex.com/1.jpg",
	}, items[0])
}

func TestItemsDefaultSelectors(t *testing.T) {
	ex, doc := newExtractor(t, `<ul><li><a href="/a">One</a><img src="/1.jpg"></li></ul>`)

	items := ex.Items(doc, domain.Source{ListSelector: "li"})

	require.Len(t, items, 1)
	assert.Equal(t, "One", items[0].Title)
	assert.Equal(t, "http://ex.com/a", items[0].Link)
	assert.Equal(t, "http://ex.com/1.jpg", items[0].Image)
}

func TestItemsDocumentOrderAndFieldIsolation(t *testing.T) {
	ex, doc := newExtractor(t, `<ul>
<li><a href="/a">One</a><img src="/1.jpg"></li>
<li><a href="/b">Two</a></li>
</ul>`)

	items := ex.Items(doc, domain.Source{ListSelector: "li"})

	require.Len(t, items, 2)
	assert.Equal(t, "One", items[0].Title)
	assert.Equal(t, "Two", items[1].Title)
	// the second item has no image; the first item's must not bleed over
	assert.Equal(t, "", items[1].Image)
}

func TestItemsBadFieldSelectorLeavesFieldEmpty(t *testing.T) {
	ex, doc := newExtractor(t, `<ul><li><a href="/a">One</a></li></ul>`)

	items := ex.Items(doc, domain.Source{
		ListSelector:  "li",
		TitleSelector: "a[",
	})

	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].Title, "a bad field selector never discards the item")
	assert.Equal(t, "http://ex.com/a", items[0].Link)
}

func TestItemsBadListSelectorYieldsEmpty(t *testing.T) {
	ex, doc := newExtractor(t, `<ul><li><a href="/a">One</a></li></ul>`)

	assert.Empty(t, ex.Items(doc, domain.Source{ListSelector: "li["}))
	assert.Empty(t, ex.Items(doc, domain.Source{ListSelector: ""}))
}

func TestItemsNoMatches(t *testing.T) {
	ex, doc := newExtractor(t, `<p>nothing to list</p>`)
	assert.Empty(t, ex.Items(doc, domain.Source{ListSelector: "li"}))
}
