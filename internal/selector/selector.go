// Package selector normalizes caller-supplied selector strings into compiled
// XPath expressions. Expressions starting with "/" or "id(" are treated as
// XPath and passed through; everything else is translated from CSS selector
// syntax.
package selector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/antchfx/xpath"

	"scrapefeed/domain"
)

// Compile normalizes expr and compiles it. Invalid syntax is reported as a
// *domain.SelectorError; callers catch it per selector evaluation, never at
// the pipeline level.
func Compile(expr string) (*xpath.Expr, error) {
	translated, err := Translate(expr)
	if err != nil {
		return nil, &domain.SelectorError{Expr: expr, Err: err}
	}
	compiled, err := xpath.Compile(translated)
	if err != nil {
		return nil, &domain.SelectorError{Expr: expr, Err: err}
	}
	return compiled, nil
}

// Translate returns the XPath form of expr without compiling it.
func Translate(expr string) (string, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return "", errors.New("empty selector")
	}
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, "id(") {
		return s, nil
	}
	var parts []string
	for _, sel := range strings.Split(s, ",") {
		xp, err := translateSelector(strings.TrimSpace(sel))
		if err != nil {
			return "", err
		}
		parts = append(parts, xp)
	}
	return strings.Join(parts, " | "), nil
}

func translateSelector(sel string) (string, error) {
	if sel == "" {
		return "", errors.New("empty selector")
	}
	tokens := strings.Fields(strings.ReplaceAll(sel, ">", " > "))

	var b strings.Builder
	axis := "//"
	pending := false
	for _, tok := range tokens {
		if tok == ">" {
			if b.Len() == 0 || pending {
				return "", fmt.Errorf("misplaced combinator in %q", sel)
			}
			axis = "/"
			pending = true
			continue
		}
		step, err := translateStep(tok)
		if err != nil {
			return "", err
		}
		b.WriteString(axis)
		b.WriteString(step)
		axis = "//"
		pending = false
	}
	if pending || b.Len() == 0 {
		return "", fmt.Errorf("incomplete selector %q", sel)
	}
	return b.String(), nil
}

// translateStep converts one simple selector (type, class, id and attribute
// qualifiers, plus a Nokogiri-style trailing /@attr) into an XPath step.
func translateStep(tok string) (string, error) {
	attr := ""
	if i := strings.Index(tok, "/@"); i >= 0 {
		attr = tok[i+2:]
		tok = tok[:i]
		if tok == "" || !isName(attr) {
			return "", fmt.Errorf("invalid attribute reference %q", attr)
		}
	}

	tag := "*"
	i := 0
	if j := scanName(tok, 0); j > 0 {
		tag = tok[:j]
		i = j
	} else if i < len(tok) && tok[i] == '*' {
		i++
	}

	var preds strings.Builder
	for i < len(tok) {
		switch tok[i] {
		case '.':
			name, next := readName(tok, i+1)
			if name == "" {
				return "", fmt.Errorf("invalid class in %q", tok)
			}
			fmt.Fprintf(&preds, "[contains(concat(' ', normalize-space(@class), ' '), %s)]",
				Literal(" "+name+" "))
			i = next
		case '#':
			name, next := readName(tok, i+1)
			if name == "" {
				return "", fmt.Errorf("invalid id in %q", tok)
			}
			fmt.Fprintf(&preds, "[@id=%s]", Literal(name))
			i = next
		case '[':
			end := strings.IndexByte(tok[i:], ']')
			if end < 0 {
				return "", fmt.Errorf("unterminated attribute selector in %q", tok)
			}
			pred, err := translateAttr(tok[i+1 : i+end])
			if err != nil {
				return "", err
			}
			preds.WriteString(pred)
			i += end + 1
		default:
			return "", fmt.Errorf("unsupported selector syntax %q", tok[i:])
		}
	}

	step := tag + preds.String()
	if attr != "" {
		step += "/@" + attr
	}
	return step, nil
}

func translateAttr(expr string) (string, error) {
	ops := []string{"~=", "^=", "$=", "*=", "|=", "="}
	for _, op := range ops {
		i := strings.Index(expr, op)
		if i < 0 {
			continue
		}
		name := strings.TrimSpace(expr[:i])
		val := strings.TrimSpace(expr[i+len(op):])
		val = strings.Trim(val, `"'`)
		if !isName(name) {
			return "", fmt.Errorf("invalid attribute name %q", name)
		}
		switch op {
		case "=":
			return fmt.Sprintf("[@%s=%s]", name, Literal(val)), nil
		case "~=":
			return fmt.Sprintf("[contains(concat(' ', normalize-space(@%s), ' '), %s)]",
				name, Literal(" "+val+" ")), nil
		case "^=":
			return fmt.Sprintf("[starts-with(@%s, %s)]", name, Literal(val)), nil
		case "$=":
			return fmt.Sprintf("[substring(@%s, string-length(@%s) - %d) = %s]",
				name, name, len(val)-1, Literal(val)), nil
		case "*=":
			return fmt.Sprintf("[contains(@%s, %s)]", name, Literal(val)), nil
		case "|=":
			return fmt.Sprintf("[@%s=%s or starts-with(@%s, %s)]",
				name, Literal(val), name, Literal(val+"-")), nil
		}
	}
	name := strings.TrimSpace(expr)
	if !isName(name) {
		return "", fmt.Errorf("invalid attribute name %q", name)
	}
	return fmt.Sprintf("[@%s]", name), nil
}

// Literal quotes s as an XPath 1.0 string literal. XPath has no escape
// syntax, so a value containing both quote kinds becomes a concat() call.
func Literal(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, "'")
	quoted := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			quoted = append(quoted, `"'"`)
		}
		if p != "" {
			quoted = append(quoted, "'"+p+"'")
		}
	}
	return "concat(" + strings.Join(quoted, ", ") + ")"
}

func scanName(s string, from int) int {
	i := from
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	return i
}

func readName(s string, from int) (string, int) {
	end := scanName(s, from)
	return s[from:end], end
}

func isName(s string) bool {
	return s != "" && scanName(s, 0) == len(s)
}

func isNameByte(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
