package css

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/tdewolff/csstree"
	"github.com/tdewolff/test"
)

type tok struct {
	tt   TokenType
	data string
}

func helperTokens(t *testing.T, src string, lenient bool) []tok {
	t.Helper()
	tokens, err := Tokenize([]byte(src), lenient)
	test.Error(t, err)
	toks := []tok{}
	for _, token := range tokens {
		toks = append(toks, tok{token.TokenType, string(token.Data)})
	}
	return toks
}

////////////////////////////////////////////////////////////////

func TestTokens(t *testing.T) {
	var tokenTests = []struct {
		src      string
		expected []tok
	}{
		{"", []tok{}},
		{" ", []tok{{SpaceToken, " "}}},
		{"a {\n  color: red;\n}", []tok{{WordToken, "a"}, {SpaceToken, " "}, {OpenCurlyToken, "{"}, {SpaceToken, "\n  "}, {WordToken, "color"}, {ColonToken, ":"}, {SpaceToken, " "}, {WordToken, "red"}, {SemicolonToken, ";"}, {SpaceToken, "\n"}, {CloseCurlyToken, "}"}}},
		{"a\r\n\tb", []tok{{WordToken, "a"}, {SpaceToken, "\r\n\t"}, {WordToken, "b"}}},
		{"[x=y]", []tok{{OpenSquareToken, "["}, {WordToken, "x=y"}, {CloseSquareToken, "]"}}},
		{"a:b;", []tok{{WordToken, "a"}, {ColonToken, ":"}, {WordToken, "b"}, {SemicolonToken, ";"}}},
		{"a,b", []tok{{WordToken, "a,b"}}},
		{"#fff", []tok{{WordToken, "#fff"}}},
		{"red!important", []tok{{WordToken, "red"}, {WordToken, "!important"}}},
		{"a/b", []tok{{WordToken, "a/b"}}},
		{"a/*b*/c", []tok{{WordToken, "a"}, {CommentToken, "/*b*/"}, {WordToken, "c"}}},
		{"/**/", []tok{{CommentToken, "/**/"}}},

		// at-words
		{"@media screen{}", []tok{{AtWordToken, "@media"}, {SpaceToken, " "}, {WordToken, "screen"}, {OpenCurlyToken, "{"}, {CloseCurlyToken, "}"}}},
		{"@import\"x\";", []tok{{AtWordToken, "@import"}, {StringToken, "\"x\""}, {SemicolonToken, ";"}}},
		{"@", []tok{{AtWordToken, "@"}}},
		{"@a:b", []tok{{AtWordToken, "@a:b"}}},

		// strings
		{"'a\\'b'", []tok{{StringToken, "'a\\'b'"}}},
		{"\"a\\\\\"b", []tok{{StringToken, "\"a\\\\\""}, {WordToken, "b"}}},

		// escapes
		{"\\41 x", []tok{{WordToken, "\\41 "}, {WordToken, "x"}}},
		{"\\1234567", []tok{{WordToken, "\\123456"}, {WordToken, "7"}}},
		{"\\\\a", []tok{{WordToken, "\\\\"}, {WordToken, "a"}}},
		{"a\\:b", []tok{{WordToken, "a"}, {WordToken, "\\:"}, {WordToken, "b"}}},
		{"\\ a", []tok{{WordToken, "\\"}, {SpaceToken, " "}, {WordToken, "a"}}},
		{"\\/", []tok{{WordToken, "\\"}, {WordToken, "/"}}},
		{"\\中x", []tok{{WordToken, "\\中"}, {WordToken, "x"}}},
		{"\\", []tok{{WordToken, "\\"}}},

		// brackets
		{"()", []tok{{BracketsToken, "()"}}},
		{"rgba(1, 2)", []tok{{WordToken, "rgba"}, {BracketsToken, "(1, 2)"}}},
		{"f(a(b))", []tok{{WordToken, "f"}, {OpenParenToken, "("}, {WordToken, "a"}, {BracketsToken, "(b)"}, {CloseParenToken, ")"}}},
		{"(a\nb)", []tok{{OpenParenToken, "("}, {WordToken, "a"}, {SpaceToken, "\n"}, {WordToken, "b"}, {CloseParenToken, ")"}}},
		{"(a/b)", []tok{{OpenParenToken, "("}, {WordToken, "a/b"}, {CloseParenToken, ")"}}},
		{"(a", []tok{{OpenParenToken, "("}, {WordToken, "a"}}},
		{"url(/*\\))", []tok{{WordToken, "url"}, {BracketsToken, "(/*\\))"}}},
		{"url(a.png)", []tok{{WordToken, "url"}, {BracketsToken, "(a.png)"}}},
		{"url()", []tok{{WordToken, "url"}, {BracketsToken, "()"}}},
		{"url( x )", []tok{{WordToken, "url"}, {BracketsToken, "( x )"}}},
		{"url(\"a.png\")", []tok{{WordToken, "url"}, {OpenParenToken, "("}, {StringToken, "\"a.png\""}, {CloseParenToken, ")"}}},
		{"url(a'b)", []tok{{WordToken, "url"}, {BracketsToken, "(a'b)"}}},
		{"URL(a/b)", []tok{{WordToken, "URL"}, {OpenParenToken, "("}, {WordToken, "a/b"}, {CloseParenToken, ")"}}},
		{"url x(a/b)", []tok{{WordToken, "url"}, {SpaceToken, " "}, {WordToken, "x"}, {OpenParenToken, "("}, {WordToken, "a/b"}, {CloseParenToken, ")"}}},
	}
	for _, tt := range tokenTests {
		t.Run(tt.src, func(t *testing.T) {
			test.T(t, helperTokens(t, tt.src, false), tt.expected)
		})
	}
}

func TestTokensLenient(t *testing.T) {
	var tokenTests = []struct {
		src      string
		expected []tok
	}{
		{" \"", []tok{{SpaceToken, " "}, {StringToken, "\""}}},
		{"'abc", []tok{{StringToken, "'abc"}}},
		{"a /* b", []tok{{WordToken, "a"}, {SpaceToken, " "}, {CommentToken, "/* b"}}},
		{"url(a", []tok{{WordToken, "url"}, {BracketsToken, "(a"}}},
		{"url(a\\)", []tok{{WordToken, "url"}, {BracketsToken, "(a\\)"}}},
	}
	for _, tt := range tokenTests {
		t.Run(tt.src, func(t *testing.T) {
			test.T(t, helperTokens(t, tt.src, true), tt.expected)
		})
	}
}

func TestTokensUnclosed(t *testing.T) {
	var errorTests = []struct {
		src     string
		message string
		start   int
	}{
		{"a \"b", "unclosed string", 2},
		{"'", "unclosed string", 0},
		{"a/*", "unclosed comment", 1},
		{"url(x", "unclosed bracket", 3},
		{"url(x\\)", "unclosed bracket", 3},
	}
	for _, tt := range errorTests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := Tokenize([]byte(tt.src), false)
			test.That(t, errors.Is(err, csstree.ErrUnclosed), "must be unclosed error")

			var perr *csstree.Error
			test.That(t, errors.As(err, &perr))
			test.T(t, perr.Message, tt.message)
			test.T(t, perr.Span(), csstree.Span{Start: tt.start, End: len(tt.src)})
		})
	}
}

func TestLexerPerCallLenient(t *testing.T) {
	l := NewLexer([]byte("'abc"), false)
	token, err := l.Next(true)
	test.Error(t, err)
	test.T(t, token.TokenType, StringToken)
	test.String(t, string(token.Data), "'abc")

	_, err = l.Next(false)
	test.T(t, err, io.EOF)

	l = NewLexer([]byte("/* abc"), true)
	token, err = l.Next(false)
	test.Error(t, err)
	test.T(t, token.TokenType, CommentToken)
	test.String(t, string(token.Data), "/* abc")
}

func TestLexerBack(t *testing.T) {
	l := NewLexer([]byte("a b"), false)
	test.That(t, !l.EOF())

	first, err := l.Next(false)
	test.Error(t, err)
	l.Back(first)
	again, err := l.Next(false)
	test.Error(t, err)
	test.T(t, again, first)

	for !l.EOF() {
		_, err = l.Next(false)
		test.Error(t, err)
	}
	test.T(t, l.Offset(), 3)

	l.Back(first)
	test.That(t, !l.EOF(), "pushed back token must be pending")
	token, err := l.Next(false)
	test.Error(t, err)
	test.T(t, token, first)
	test.That(t, l.EOF())
}

func TestLexerExhaustive(t *testing.T) {
	inputs := []string{
		"a { color: red; }",
		"@media (min-width: 100px) { .a > b[c=\"d\"] { e: f(g, h) !important } }",
		"url(/*\\)) url( x ) url('a') u\\72l(a)",
		"/* a */ b /**/ c\\41 d\\\\e",
		"a{--x:{b:c}}",
	}
	r := rand.New(rand.NewSource(1))
	const alphabet = "ab(){}[];:'\"/*\\@!# \n\turl"
	for i := 0; i < 200; i++ {
		b := make([]byte, r.Intn(40))
		for j := range b {
			b[j] = alphabet[r.Intn(len(alphabet))]
		}
		inputs = append(inputs, string(b))
	}

	for _, src := range inputs {
		t.Run(fmt.Sprintf("%q", src), func(t *testing.T) {
			l := NewLexer([]byte(src), true)
			sb := strings.Builder{}
			offset := 0
			for i := 0; !l.EOF(); i++ {
				token, err := l.Next(false)
				test.Error(t, err)
				if i%3 == 0 {
					// pushed back tokens are returned exactly once
					l.Back(token)
					token, err = l.Next(false)
					test.Error(t, err)
				}
				test.T(t, token.Start, offset, "contiguous")
				test.That(t, token.Start < token.End, "non-empty")
				offset = token.End
				sb.Write(token.Data)
			}
			test.String(t, sb.String(), src)
		})
	}
}

func TestRing(t *testing.T) {
	r := ring{}
	test.That(t, r.pop() == nil)
	for i := 0; i < ringSize+5; i++ {
		r.push([]byte(fmt.Sprint(i)))
	}
	for i := ringSize + 4; 5 <= i; i-- {
		test.String(t, string(r.pop()), fmt.Sprint(i))
	}
	test.That(t, r.pop() == nil, "ring holds at most its capacity")
}

func TestTokenTypeString(t *testing.T) {
	for tt := UnknownToken; tt <= BracketsToken; tt++ {
		test.That(t, !strings.HasPrefix(tt.String(), "Invalid"), tt.String())
	}
	test.T(t, TokenType(100).String(), "Invalid(100)")
	test.T(t, Token{WordToken, []byte("a"), 0, 1}.String(), "Word(\"a\")")
}
