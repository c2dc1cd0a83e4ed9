package css

// IsWord returns true if s lexes as exactly one word, which makes it safe to use as a property name.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	l := NewLexer([]byte(s), false)
	t, err := l.Next(false)
	return err == nil && t.TokenType == WordToken && l.EOF()
}
