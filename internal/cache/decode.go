package cache

import (
	"bytes"
	"io"

	"golang.org/x/net/html/charset"
)

// decode converts fetched bytes to UTF-8, sniffing the encoding from the
// Content-Type header and the document itself. Undecodable input falls back
// to the raw bytes.
func decode(body []byte, contentType string) string {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return string(body)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return string(body)
	}
	return string(decoded)
}
