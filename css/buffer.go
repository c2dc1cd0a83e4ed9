package css

import "io"

// tokenBuffer gives the parser lookahead over the lexer. Peek(0) only uses the lexer's pushback; deeper peeks are buffered.
type tokenBuffer struct {
	l       *Lexer
	lenient bool

	buf []Token
	err error
}

func newTokenBuffer(l *Lexer, lenient bool) *tokenBuffer {
	return &tokenBuffer{
		l:       l,
		lenient: lenient,
		buf:     make([]Token, 0, 8),
	}
}

// read returns the next token from the lexer, or an UnknownToken at the end of input or after an error.
func (z *tokenBuffer) read() Token {
	if z.err != nil {
		return Token{}
	}
	t, err := z.l.Next(z.lenient)
	if err != nil {
		if err != io.EOF {
			z.err = err
		}
		return Token{}
	}
	return t
}

// Peek returns the ith next token without consuming it. Peeking past the end returns an UnknownToken.
func (z *tokenBuffer) Peek(i int) Token {
	if i == 0 && len(z.buf) == 0 {
		t := z.read()
		if t.TokenType != UnknownToken {
			z.l.Back(t)
		}
		return t
	}
	for len(z.buf) <= i {
		t := z.read()
		if t.TokenType == UnknownToken {
			return t
		}
		z.buf = append(z.buf, t)
	}
	return z.buf[i]
}

// Shift returns the next token and advances position.
func (z *tokenBuffer) Shift() Token {
	if 0 < len(z.buf) {
		t := z.buf[0]
		z.buf = z.buf[1:]
		return t
	}
	return z.read()
}
