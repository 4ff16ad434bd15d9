package feed_test

import (
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrapefeed/domain"
	"scrapefeed/internal/feed"
)

func TestBuildRoundTrips(t *testing.T) {
	rss, err := feed.Build("My Page", "http://ex.com/", []domain.Item{
		{Title: "One", Link: "http://ex.com/a", Image: "http://ex.com/1.jpg"},
		{Title: "Two", Link: "http://ex.com/b"},
	})
	require.NoError(t, err)

	parsed, err := gofeed.NewParser().ParseString(rss)
	require.NoError(t, err)

	assert.Equal(t, "My Page", parsed.Title)
	assert.Equal(t, "http://ex.com/", parsed.Link)
	require.Len(t, parsed.Items, 2)

	assert.Equal(t, "One", parsed.Items[0].Title)
	assert.Equal(t, "http://ex.com/a", parsed.Items[0].Link)
	require.Len(t, parsed.Items[0].Enclosures, 1)
	assert.Equal(t, "http://ex.com/1.jpg", parsed.Items[0].Enclosures[0].URL)
	assert.Equal(t, "image", parsed.Items[0].Enclosures[0].Type)

	assert.Empty(t, parsed.Items[1].Enclosures, "enclosure only when an image is present")
}

func TestBuildEmptyItems(t *testing.T) {
	rss, err := feed.Build("Empty", "http://ex.com/", nil)
	require.NoError(t, err)

	parsed, err := gofeed.NewParser().ParseString(rss)
	require.NoError(t, err)
	assert.Empty(t, parsed.Items)
}
