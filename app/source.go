package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"scrapefeed/domain"
	"scrapefeed/internal/cache"
	"scrapefeed/internal/extract"
	"scrapefeed/internal/feed"
	"scrapefeed/internal/htmltree"
	"scrapefeed/internal/selector"
	"scrapefeed/internal/urlx"
)

// Source runs the fetch-cache-extract-render pipeline for one configured
// page. Results are compute-once: repeated calls to Items, Feed, Title and
// Search reuse the first result and trigger exactly one fetch and one parse.
// A Source is not safe for concurrent use and must be released with Close.
type Source struct {
	cfg   domain.Source
	cache *cache.Cache
	log   *zap.Logger
	base  *url.URL

	doc        *htmltree.Document
	items      []domain.Item
	itemsDone  bool
	feedXML    string
	feedDone   bool
	title      string
	titleDone  bool
	matches    []*html.Node
	searchDone bool
}

// NewSource validates the configured URL and wires the injected cache and
// logger. The configuration is not mutated afterwards.
func NewSource(cfg domain.Source, c *cache.Cache, log *zap.Logger) (*Source, error) {
	base, err := urlx.Parse(cfg.URL)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Source{cfg: cfg, cache: c, log: log, base: base}, nil
}

// document fetches the page through the content cache and parses it, both at
// most once per Source.
func (s *Source) document(ctx context.Context) (*htmltree.Document, error) {
	if s.doc != nil {
		return s.doc, nil
	}
	entry, err := s.cache.Get(ctx, s.cfg.URL)
	if err != nil {
		return nil, err
	}
	doc, err := htmltree.Parse(entry.DecodedBody)
	if err != nil {
		return nil, err
	}
	s.doc = doc
	return doc, nil
}

// Items extracts the configured list as structured items in document order.
// Selector failures degrade to empty results; only storage errors propagate.
func (s *Source) Items(ctx context.Context) ([]domain.Item, error) {
	if s.itemsDone {
		return s.items, nil
	}
	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	s.items = extract.New(s.base, s.log).Items(doc, s.cfg)
	s.itemsDone = true
	return s.items, nil
}

// Title returns the page's <title> with internal whitespace collapsed, or
// the configured URL when the page has no usable title.
func (s *Source) Title(ctx context.Context) (string, error) {
	if s.titleDone {
		return s.title, nil
	}
	doc, err := s.document(ctx)
	if err != nil {
		return "", err
	}
	s.title = s.cfg.URL
	if expr, err := selector.Compile("//title"); err == nil {
		if values, err := doc.Values(expr); err == nil && len(values) > 0 {
			if t := strings.Join(strings.Fields(values[0].Data), " "); t != "" {
				s.title = t
			}
		}
	}
	s.titleDone = true
	return s.title, nil
}

// Feed serializes the channel and items as an RSS 2.0 document.
func (s *Source) Feed(ctx context.Context) (string, error) {
	if s.feedDone {
		return s.feedXML, nil
	}
	items, err := s.Items(ctx)
	if err != nil {
		return "", err
	}
	title, err := s.Title(ctx)
	if err != nil {
		return "", err
	}
	xml, err := feed.Build(title, s.cfg.URL, items)
	if err != nil {
		return "", err
	}
	s.feedXML = xml
	s.feedDone = true
	return s.feedXML, nil
}

// Search returns the elements whose text contains the configured search
// word. Without a search word it returns nothing. Returned nodes are owned
// by the source's document and are valid until Close.
func (s *Source) Search(ctx context.Context) ([]*html.Node, error) {
	if s.searchDone {
		return s.matches, nil
	}
	if s.cfg.SearchWord == "" {
		s.searchDone = true
		return nil, nil
	}
	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	expr, err := selector.Compile(fmt.Sprintf("//text()[contains(., %s)]/..",
		selector.Literal(s.cfg.SearchWord)))
	if err != nil {
		s.log.Warn("search expression rejected", zap.Error(err))
		s.searchDone = true
		return nil, nil
	}
	nodes, err := doc.Nodes(expr)
	if err != nil {
		return nil, err
	}
	s.matches = nodes
	s.searchDone = true
	return s.matches, nil
}

// Close releases the parsed document. Closing twice reports an error; a
// source that never parsed has nothing to release.
func (s *Source) Close() error {
	if s.doc == nil {
		return nil
	}
	return s.doc.Close()
}
