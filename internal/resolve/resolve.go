// Package resolve rewrites relative link-bearing attribute values in raw
// markup to absolute form against a base URI.
package resolve

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var linkAttrs = []struct {
	match string
	attr  string
}{
	{"a[href]", "href"},
	{"img[src]", "src"},
}

// Links returns markup with relative href/src values resolved against base.
// It operates on markup text, independent of the extraction tree; on a parse
// failure the input is returned unchanged.
func Links(markup string, base *url.URL) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return markup
	}
	for _, la := range linkAttrs {
		doc.Find(la.match).Each(func(_ int, s *goquery.Selection) {
			raw, _ := s.Attr(la.attr)
			ref, err := url.Parse(strings.TrimSpace(raw))
			if err != nil || ref.IsAbs() {
				return
			}
			s.SetAttr(la.attr, base.ResolveReference(ref).String())
		})
	}
	out, err := doc.Html()
	if err != nil {
		return markup
	}
	return out
}
