// Package htmltree owns the parsed HTML document resource and the
// XPath-driven value extraction over it.
package htmltree

import (
	"errors"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// ErrClosed is returned when a document is queried or released after Close.
var ErrClosed = errors.New("document already released")

// Document is a parsed HTML tree, exclusively owned by its creator. It must
// be released with Close exactly once; it is not safe for concurrent use.
type Document struct {
	root   *html.Node
	closed bool
}

// Parse builds a document from markup. Parsing is lenient: malformed markup
// yields a partial tree, not an error.
func Parse(markup string) (*Document, error) {
	root, err := htmlquery.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// Close releases the tree. A second call reports ErrClosed.
func (d *Document) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true
	d.root = nil
	return nil
}

// Nodes evaluates expr against the document root and returns the matched
// nodes in document order. Returned nodes are owned by the document and are
// valid until Close.
func (d *Document) Nodes(expr *xpath.Expr) ([]*html.Node, error) {
	if d.closed {
		return nil, ErrClosed
	}
	return SelectNodes(d.root, expr), nil
}

// Values evaluates expr against the document root and returns copied-out
// plain values in document order.
func (d *Document) Values(expr *xpath.Expr) ([]Value, error) {
	if d.closed {
		return nil, ErrClosed
	}
	return SelectValues(d.root, expr), nil
}

// SelectNodes evaluates expr with top as the root of the search.
func SelectNodes(top *html.Node, expr *xpath.Expr) []*html.Node {
	var out []*html.Node
	iter := expr.Select(htmlquery.CreateXPathNavigator(top))
	for iter.MoveNext() {
		nav, ok := iter.Current().(*htmlquery.NodeNavigator)
		if !ok {
			continue
		}
		out = append(out, nav.Current())
	}
	return out
}

// SelectValues evaluates expr with top as the root of the search, copying
// each match out as a plain Value. The navigator is reused across matches,
// so nothing returned references the iteration state.
func SelectValues(top *html.Node, expr *xpath.Expr) []Value {
	var out []Value
	iter := expr.Select(htmlquery.CreateXPathNavigator(top))
	for iter.MoveNext() {
		nav, ok := iter.Current().(*htmlquery.NodeNavigator)
		if !ok {
			continue
		}
		out = append(out, valueOf(nav))
	}
	return out
}

// First returns the first match of expr under top.
func First(top *html.Node, expr *xpath.Expr) (Value, bool) {
	iter := expr.Select(htmlquery.CreateXPathNavigator(top))
	if !iter.MoveNext() {
		return Value{}, false
	}
	nav, ok := iter.Current().(*htmlquery.NodeNavigator)
	if !ok {
		return Value{}, false
	}
	return valueOf(nav), true
}

// Clone returns a deep copy of n detached from its tree. Evaluating an
// expression against the copy cannot match siblings or ancestors of n.
func Clone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = append([]html.Attribute(nil), n.Attr...)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		cc := Clone(child)
		cc.Parent = c
		if c.FirstChild == nil {
			c.FirstChild = cc
		} else {
			c.LastChild.NextSibling = cc
			cc.PrevSibling = c.LastChild
		}
		c.LastChild = cc
	}
	return c
}

// Text returns the text content of n.
func Text(n *html.Node) string {
	return htmlquery.InnerText(n)
}
