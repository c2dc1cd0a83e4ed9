// Package transform contains tree visitors that rewrite stylesheets: unit conversion, color shortening, property reversal and minification.
package transform // import "github.com/tdewolff/csstree/transform"

import (
	"strings"

	"github.com/tdewolff/csstree"
	"github.com/tdewolff/csstree/css"
)

// Apply runs the visitors over the tree in order.
func Apply(root *css.Root, visitors ...css.MutVisitor) {
	for _, v := range visitors {
		css.WalkMut(v, root)
	}
}

// rewriteValue re-lexes a value and rewrites its words with f. Strings, comments and url() contents are copied verbatim, other bracketed groups are rewritten recursively.
func rewriteValue(value string, f func(string) string) string {
	tokens, err := css.Tokenize([]byte(value), true)
	if err != nil {
		return value
	}

	sb := strings.Builder{}
	sb.Grow(len(value))
	for i, t := range tokens {
		data := string(t.Data)
		switch t.TokenType {
		case css.WordToken:
			data = rewriteList(data, f)
		case css.BracketsToken:
			if !isURL(tokens, i) && 2 <= len(data) && data[len(data)-1] == ')' {
				data = "(" + rewriteValue(data[1:len(data)-1], f) + ")"
			}
		}
		sb.WriteString(data)
	}
	return sb.String()
}

// rewriteList applies f to the comma separated parts of a word.
func rewriteList(word string, f func(string) string) string {
	if strings.IndexByte(word, ',') == -1 {
		return f(word)
	}
	parts := strings.Split(word, ",")
	for i, part := range parts {
		if part != "" {
			parts[i] = f(part)
		}
	}
	return strings.Join(parts, ",")
}

// isURL returns true if the token at i is the argument of url().
func isURL(tokens []css.Token, i int) bool {
	return 0 < i && tokens[i-1].TokenType == css.WordToken && csstree.EqualFold(string(tokens[i-1].Data), "url")
}
