// Package urlx validates page URLs and derives the canonical form used as
// the cache key.
package urlx

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Parse validates rawURL and returns its parsed form. Only http and https
// schemes are accepted.
func Parse(rawURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme: %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("URL has no host: %q", rawURL)
	}
	return u, nil
}

// Canonical returns the normalized form of u used as the sole cache key:
// lowercased scheme and host, default port stripped, cleaned path, fragment
// dropped. The query string is kept since it addresses distinct content.
func Canonical(u *url.URL) string {
	c := *u
	c.Scheme = strings.ToLower(c.Scheme)
	c.Host = strings.ToLower(c.Host)
	if (c.Scheme == "http" && strings.HasSuffix(c.Host, ":80")) ||
		(c.Scheme == "https" && strings.HasSuffix(c.Host, ":443")) {
		c.Host = c.Host[:strings.LastIndex(c.Host, ":")]
	}
	p := c.EscapedPath()
	if p == "" {
		p = "/"
	} else {
		trailing := strings.HasSuffix(p, "/") && p != "/"
		p = path.Clean(p)
		if trailing && p != "/" {
			p += "/"
		}
	}
	c.Path = p
	c.RawPath = ""
	c.Fragment = ""
	return c.String()
}

// Resolve resolves ref against base and returns the absolute form. A ref
// that does not parse is returned unchanged.
func Resolve(base *url.URL, ref string) string {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}
