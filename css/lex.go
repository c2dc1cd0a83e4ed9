// Package css is a lossless CSS lexer and parser. Every node keeps the byte spans of its parts and the trivia around them, so that an unmodified tree stringifies back to its source exactly.
package css // import "github.com/tdewolff/csstree/css"

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/tdewolff/csstree"
)

// Lexer is the state for the lexer. Tokens are produced on demand and borrow from the source buffer.
type Lexer struct {
	src     []byte
	pos     int
	lenient bool

	words ring
	back  []Token
}

// NewLexer returns a new Lexer for the given source. If lenient is set, unclosed strings, comments and url( brackets never produce an error.
func NewLexer(src []byte, lenient bool) *Lexer {
	return &Lexer{
		src:     src,
		lenient: lenient,
	}
}

// Bytes returns the source buffer.
func (l *Lexer) Bytes() []byte {
	return l.src
}

// Offset returns the current position in the source buffer, not accounting for pushed back tokens.
func (l *Lexer) Offset() int {
	return l.pos
}

// EOF returns true if there are no pushed back tokens and the source is exhausted.
func (l *Lexer) EOF() bool {
	return len(l.back) == 0 && len(l.src) <= l.pos
}

// Back pushes a token back to be returned by the next call to Next.
func (l *Lexer) Back(t Token) {
	l.back = append(l.back, t)
}

// Next returns the next Token. It returns io.EOF at the end of the source, or a *csstree.Error of kind csstree.ErrUnclosed for unclosed constructs unless either the lexer or this call is lenient.
// The per-call flag can only relax a strict lexer: a lexer created lenient stays lenient even when lenient is false.
func (l *Lexer) Next(lenient bool) (Token, error) {
	if n := len(l.back); 0 < n {
		t := l.back[n-1]
		l.back = l.back[:n-1]
		return t, nil
	} else if len(l.src) <= l.pos {
		return Token{}, io.EOF
	}
	lenient = lenient || l.lenient

	start := l.pos
	c := l.src[start]
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		l.pos++
		for l.pos < len(l.src) && csstree.IsWhitespace(l.src[l.pos]) {
			l.pos++
		}
		return l.token(SpaceToken, start), nil
	case '[':
		l.pos++
		return l.token(OpenSquareToken, start), nil
	case ']':
		l.pos++
		return l.token(CloseSquareToken, start), nil
	case '{':
		l.pos++
		return l.token(OpenCurlyToken, start), nil
	case '}':
		l.pos++
		return l.token(CloseCurlyToken, start), nil
	case ':':
		l.pos++
		return l.token(ColonToken, start), nil
	case ';':
		l.pos++
		return l.token(SemicolonToken, start), nil
	case ')':
		l.pos++
		return l.token(CloseParenToken, start), nil
	case '(':
		return l.consumeParen(lenient)
	case '"', '\'':
		return l.consumeString(c, lenient)
	case '@':
		l.pos = l.indexAtWordEnd(start + 1)
		return l.token(AtWordToken, start), nil
	case '\\':
		l.consumeEscape()
		t := l.token(WordToken, start)
		l.words.push(t.Data)
		return t, nil
	case '/':
		if l.at(start+1) == '*' {
			return l.consumeComment(lenient)
		}
	}
	l.pos = l.indexWordEnd(start + 1)
	t := l.token(WordToken, start)
	l.words.push(t.Data)
	return t, nil
}

////////////////////////////////////////////////////////////////

func (l *Lexer) token(tt TokenType, start int) Token {
	return Token{tt, l.src[start:l.pos], start, l.pos}
}

// at returns the byte at i, or zero when out of range.
func (l *Lexer) at(i int) byte {
	if i < len(l.src) {
		return l.src[i]
	}
	return 0
}

func (l *Lexer) unclosed(what string, start int) error {
	l.pos = len(l.src)
	return csstree.NewError(csstree.ErrUnclosed, "unclosed "+what, l.src, start, len(l.src))
}

// isEscaped returns true if the byte at i is preceded by an odd number of backslashes.
func (l *Lexer) isEscaped(i int) bool {
	escaped := false
	for 0 < i && l.src[i-1] == '\\' {
		escaped = !escaped
		i--
	}
	return escaped
}

// indexUnescaped returns the index of the first unescaped c at or after from, or -1.
func (l *Lexer) indexUnescaped(c byte, from int) int {
	for from < len(l.src) {
		i := bytes.IndexByte(l.src[from:], c)
		if i == -1 {
			return -1
		}
		i += from
		if !l.isEscaped(i) {
			return i
		}
		from = i + 1
	}
	return -1
}

func (l *Lexer) consumeParen(lenient bool) (Token, error) {
	start := l.pos
	if prev := l.words.pop(); string(prev) == "url" {
		if c := l.at(start + 1); c != '"' && c != '\'' && !csstree.IsWhitespace(c) {
			end := l.indexUnescaped(')', start+1)
			if end == -1 {
				if !lenient {
					return Token{}, l.unclosed("bracket", start)
				}
				l.pos = len(l.src)
			} else {
				l.pos = end + 1
			}
			return l.token(BracketsToken, start), nil
		}
	}

	l.pos++
	end := bytes.IndexByte(l.src[start+1:], ')')
	if end == -1 || isBadBracket(l.src[start+1:start+1+end]) {
		return l.token(OpenParenToken, start), nil
	}
	l.pos = start + 1 + end + 1
	return l.token(BracketsToken, start), nil
}

func isBadBracket(b []byte) bool {
	for _, c := range b {
		switch c {
		case '\n', '"', '\'', '(', '/', '\\':
			return true
		}
	}
	return false
}

func (l *Lexer) consumeString(quote byte, lenient bool) (Token, error) {
	start := l.pos
	end := l.indexUnescaped(quote, start+1)
	if end == -1 {
		if !lenient {
			return Token{}, l.unclosed("string", start)
		}
		l.pos = len(l.src)
	} else {
		l.pos = end + 1
	}
	return l.token(StringToken, start), nil
}

func (l *Lexer) consumeComment(lenient bool) (Token, error) {
	start := l.pos
	end := bytes.Index(l.src[start+2:], []byte("*/"))
	if end == -1 {
		if !lenient {
			return Token{}, l.unclosed("comment", start)
		}
		l.pos = len(l.src)
	} else {
		l.pos = start + 2 + end + 2
	}
	return l.token(CommentToken, start), nil
}

// consumeEscape consumes a run of backslashes and, if the last one escapes a character, that character followed by up to five more hex digits and a single space.
func (l *Lexer) consumeEscape() {
	live := true
	l.pos++
	for l.at(l.pos) == '\\' {
		live = !live
		l.pos++
	}
	c := l.at(l.pos)
	if !live || c == '/' || csstree.IsWhitespace(c) || len(l.src) <= l.pos {
		return
	}
	if c < utf8.RuneSelf {
		l.pos++
	} else {
		_, n := utf8.DecodeRune(l.src[l.pos:])
		l.pos += n
	}
	if isHex(c) {
		for n := 1; n < 6 && isHex(l.at(l.pos)); n++ {
			l.pos++
		}
		if l.at(l.pos) == ' ' {
			l.pos++
		}
	}
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func (l *Lexer) indexAtWordEnd(i int) int {
	for ; i < len(l.src); i++ {
		switch l.src[i] {
		case ' ', '\t', '\n', '\r', '\f', '"', '#', '\'', '(', ')', '/', ';', '[', '\\', ']', '{', '}':
			return i
		}
	}
	return i
}

func (l *Lexer) indexWordEnd(i int) int {
	for ; i < len(l.src); i++ {
		switch l.src[i] {
		case ' ', '\t', '\n', '\r', '\f', '!', '"', '#', '\'', '(', ')', ':', ';', '@', '[', '\\', ']', '{', '}':
			return i
		case '/':
			if l.at(i+1) == '*' {
				return i
			}
		}
	}
	return i
}

////////////////////////////////////////////////////////////////

// Tokenize returns all tokens of src.
func Tokenize(src []byte, lenient bool) ([]Token, error) {
	l := NewLexer(src, lenient)
	tokens := []Token{}
	for {
		t, err := l.Next(false)
		if err == io.EOF {
			return tokens, nil
		} else if err != nil {
			return tokens, err
		}
		tokens = append(tokens, t)
	}
}
