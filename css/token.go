package css

import (
	"strconv"

	"github.com/tdewolff/csstree"
)

// TokenType determines the type of token, eg. a word or a semicolon.
type TokenType uint32

// TokenType values.
const (
	UnknownToken TokenType = iota // never emitted by the lexer
	SpaceToken                    // space \t \r \n \f
	WordToken
	StringToken
	CommentToken
	AtWordToken       // @abc
	OpenParenToken    // (
	CloseParenToken   // )
	OpenSquareToken   // [
	CloseSquareToken  // ]
	OpenCurlyToken    // {
	CloseCurlyToken   // }
	SemicolonToken    // ;
	ColonToken        // :
	BracketsToken     // (...) without nested parentheses, quotes, newlines or escapes, and url(...)
)

// String returns the string representation of a TokenType.
func (tt TokenType) String() string {
	switch tt {
	case UnknownToken:
		return "Unknown"
	case SpaceToken:
		return "Space"
	case WordToken:
		return "Word"
	case StringToken:
		return "String"
	case CommentToken:
		return "Comment"
	case AtWordToken:
		return "AtWord"
	case OpenParenToken:
		return "OpenParen"
	case CloseParenToken:
		return "CloseParen"
	case OpenSquareToken:
		return "OpenSquare"
	case CloseSquareToken:
		return "CloseSquare"
	case OpenCurlyToken:
		return "OpenCurly"
	case CloseCurlyToken:
		return "CloseCurly"
	case SemicolonToken:
		return "Semicolon"
	case ColonToken:
		return "Colon"
	case BracketsToken:
		return "Brackets"
	}
	return "Invalid(" + strconv.Itoa(int(tt)) + ")"
}

// IsTrivia returns true for whitespace and comments.
func (tt TokenType) IsTrivia() bool {
	return tt == SpaceToken || tt == CommentToken
}

////////////////////////////////////////////////////////////////

// Token is a lexical unit. Data is a subslice of the source buffer.
type Token struct {
	TokenType
	Data  []byte
	Start int
	End   int
}

// Span returns the byte range of the token.
func (t Token) Span() csstree.Span {
	return csstree.Span{Start: t.Start, End: t.End}
}

func (t Token) String() string {
	return t.TokenType.String() + "(" + strconv.Quote(string(t.Data)) + ")"
}
