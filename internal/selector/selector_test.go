package selector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrapefeed/domain"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"li", "//li"},
		{"ul > li", "//ul/li"},
		{"div p", "//div//p"},
		{"*", "//*"},
		{".item", "//*[contains(concat(' ', normalize-space(@class), ' '), ' item ')]"},
		{"li.item", "//li[contains(concat(' ', normalize-space(@class), ' '), ' item ')]"},
		{"#main", "//*[@id='main']"},
		{"a/@href", "//a/@href"},
		{"img/@src", "//img/@src"},
		{"a[rel]", "//a[@rel]"},
		{"a[rel=nofollow]", "//a[@rel='nofollow']"},
		{`a[rel="nofollow"]`, "//a[@rel='nofollow']"},
		{"a[href^=http]", "//a[starts-with(@href, 'http')]"},
		{"a[href*=example]", "//a[contains(@href, 'example')]"},
		{"a, b", "//a | //b"},
		{"div > ul li", "//div/ul//li"},
	}
	for _, tc := range cases {
		got, err := Translate(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestTranslatePassthrough(t *testing.T) {
	for _, expr := range []string{"/html/body", "//ul/li", "id('main')//a"} {
		got, err := Translate(expr)
		require.NoError(t, err)
		assert.Equal(t, expr, got)
	}
}

func TestTranslateInvalid(t *testing.T) {
	for _, expr := range []string{"", "li[", "li:first-child", "ul >", "> li", "a{b}"} {
		_, err := Translate(expr)
		assert.Error(t, err, expr)
	}
}

func TestCompileReportsSelectorError(t *testing.T) {
	_, err := Compile("li[")
	var selErr *domain.SelectorError
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, "li[", selErr.Expr)
}

func TestCompileValid(t *testing.T) {
	expr, err := Compile("ul > li.item")
	require.NoError(t, err)
	assert.NotNil(t, expr)
}

func TestLiteral(t *testing.T) {
	assert.Equal(t, "'plain'", Literal("plain"))
	assert.Equal(t, `"don't"`, Literal("don't"))
	assert.Equal(t, `'say "hi"'`, Literal(`say "hi"`))
	assert.Equal(t, `concat('a', "'", 'b"c')`, Literal(`a'b"c`))
}
