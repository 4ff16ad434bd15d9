// Package extract applies a list selector plus per-field selectors to a
// parsed document, yielding structured items in document order.
package extract

import (
	"net/url"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"scrapefeed/domain"
	"scrapefeed/internal/htmltree"
	"scrapefeed/internal/selector"
)

// defaultFields fixes both the fallback selector per field and the field
// evaluation order.
var defaultFields = [...]struct {
	key string
	def string
}{
	{"title", "//a"},
	{"link", "//a/@href"},
	{"image", "//img/@src"},
}

type Extractor struct {
	base *url.URL
	log  *zap.Logger
}

func New(base *url.URL, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{base: base, log: log}
}

// Items evaluates cfg.ListSelector against doc and builds one item per
// match. Every selector failure is contained: a bad list selector yields an
// empty slice, a bad or unmatched field selector leaves that field empty.
func (e *Extractor) Items(doc *htmltree.Document, cfg domain.Source) []domain.Item {
	listExpr, err := selector.Compile(cfg.ListSelector)
	if err != nil {
		e.log.Warn("list selector rejected", zap.Error(err))
		return nil
	}
	nodes, err := doc.Nodes(listExpr)
	if err != nil {
		e.log.Warn("list evaluation failed", zap.Error(err))
		return nil
	}

	fieldSelectors := map[string]string{
		"title": cfg.TitleSelector,
		"link":  cfg.LinkSelector,
		"image": cfg.ImageSelector,
	}

	items := make([]domain.Item, 0, len(nodes))
	for _, node := range nodes {
		// Field selectors run against an isolated copy so they cannot
		// match content of sibling items.
		scope := htmltree.Clone(node)

		var item domain.Item
		for _, f := range defaultFields {
			expr := fieldSelectors[f.key]
			if expr == "" {
				expr = f.def
			}
			value := e.field(scope, expr)
			switch f.key {
			case "title":
				item.Title = value
			case "link":
				item.Link = value
			case "image":
				item.Image = value
			}
		}
		items = append(items, item)
	}
	return items
}

// field evaluates one selector against the isolated item subtree and
// converts the first match to a plain value.
func (e *Extractor) field(scope *html.Node, rawExpr string) string {
	expr, err := selector.Compile(rawExpr)
	if err != nil {
		e.log.Debug("field selector rejected", zap.Error(err))
		return ""
	}
	v, ok := htmltree.First(scope, expr)
	if !ok {
		return ""
	}
	return htmltree.Extract(v, e.base)
}
