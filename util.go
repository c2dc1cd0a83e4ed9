package csstree

// IsWhitespace returns true for the CSS whitespace characters: space, tab, newline, carriage return and form feed.
func IsWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// TrimWhitespace removes leading and trailing CSS whitespace.
func TrimWhitespace(s string) string {
	start, end := 0, len(s)
	for start < end && IsWhitespace(s[start]) {
		start++
	}
	for start < end && IsWhitespace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// ToLower returns s with ASCII uppercase letters converted to lowercase. It only allocates when s contains uppercase letters.
func ToLower(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

// EqualFold returns true if s equals match ignoring ASCII case. Match must be lowercase.
func EqualFold(s, match string) bool {
	if len(s) != len(match) {
		return false
	}
	for i := 0; i < len(match); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != match[i] {
			return false
		}
	}
	return true
}
