package css

import (
	"strings"

	"github.com/tdewolff/csstree"
)

// Split splits a value at any of the separator bytes, except inside quotes and parentheses or after a backslash. Parts are trimmed and empty parts dropped, unless last is set which always keeps the last part.
func Split(s string, separators string, last bool) []string {
	parts := []string{}
	start := 0
	level := 0
	quote := byte(0)
	escape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escape {
			escape = false
		} else if c == '\\' {
			escape = true
		} else if quote != 0 {
			if c == quote {
				quote = 0
			}
		} else if c == '"' || c == '\'' {
			quote = c
		} else if c == '(' {
			level++
		} else if c == ')' {
			if 0 < level {
				level--
			}
		} else if level == 0 && strings.IndexByte(separators, c) != -1 {
			if start < i {
				parts = append(parts, csstree.TrimWhitespace(s[start:i]))
			}
			start = i + 1
		}
	}
	if last || start < len(s) {
		parts = append(parts, csstree.TrimWhitespace(s[start:]))
	}
	return parts
}

// Space splits space-separated values, such as those of the background and border-radius properties.
func Space(s string) []string {
	return Split(s, " \n\t", false)
}

// Comma splits comma-separated values, such as those of the transition and background properties.
func Comma(s string) []string {
	return Split(s, ",", true)
}
