package htmltree

import (
	"net/url"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"

	"scrapefeed/internal/urlx"
)

// Kind classifies a matched node.
type Kind int

const (
	KindNone Kind = iota
	KindElement
	KindText
	KindAttribute
)

// Value is a matched node copied out as plain strings. For attribute nodes
// OwnerTag and Attr identify the owning element and attribute name; Data is
// the attribute value or text content.
type Value struct {
	Kind     Kind
	OwnerTag string
	Attr     string
	Data     string
}

// linkAttrs registers the element/attribute pairs whose values are URLs
// requiring resolution against the page base.
var linkAttrs = map[string]string{
	"a":   "href",
	"img": "src",
}

// Extract converts a matched value into a plain string. Link-bearing
// attribute values are resolved against base to an absolute URI; other
// attributes pass through verbatim; text-bearing nodes yield their text.
func Extract(v Value, base *url.URL) string {
	switch v.Kind {
	case KindAttribute:
		if base != nil && linkAttrs[v.OwnerTag] == v.Attr {
			return urlx.Resolve(base, v.Data)
		}
		return v.Data
	case KindElement, KindText:
		return v.Data
	}
	return ""
}

func valueOf(nav *htmlquery.NodeNavigator) Value {
	switch nav.NodeType() {
	case xpath.AttributeNode:
		return Value{
			Kind:     KindAttribute,
			OwnerTag: nav.Current().Data,
			Attr:     nav.LocalName(),
			Data:     nav.Value(),
		}
	case xpath.TextNode:
		return Value{Kind: KindText, Data: nav.Value()}
	case xpath.ElementNode, xpath.RootNode:
		return Value{Kind: KindElement, OwnerTag: nav.LocalName(), Data: nav.Value()}
	}
	return Value{}
}
