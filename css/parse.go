package css

import (
	"errors"

	"github.com/tdewolff/csstree"
)

// DefaultMaxDepth is the default limit on the nesting of blocks and brackets.
const DefaultMaxDepth = 512

// Option configures the parser.
type Option func(*Parser)

// Lenient makes unclosed strings, comments and url( brackets run to the end of input, and lets the end of input close open brackets.
func Lenient(lenient bool) Option {
	return func(p *Parser) {
		p.lenient = lenient
	}
}

// Filename sets the name used in error messages.
func Filename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// MaxDepth limits the nesting of blocks and brackets. Deeper input results in an error.
func MaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

////////////////////////////////////////////////////////////////

// Parser is the state for the parser.
type Parser struct {
	l   *Lexer
	z   *tokenBuffer
	src string
	err error

	lenient  bool
	filename string
	maxDepth int
	depth    int
	pos      int // end of the last consumed token
}

// Parse parses a stylesheet. On error no tree is returned, the error is a *csstree.Error.
// The returned tree references a string copy of src, which is kept in Root.Source.
func Parse(src []byte, opts ...Option) (*Root, error) {
	p := newParser(opts)
	p.l = NewLexer(src, p.lenient)
	p.init()
	return p.Parse()
}

// NewParser returns a parser that consumes tokens from l.
func NewParser(l *Lexer, opts ...Option) *Parser {
	p := newParser(opts)
	p.l = l
	p.init()
	return p
}

func newParser(opts []Option) *Parser {
	p := &Parser{
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) init() {
	p.z = newTokenBuffer(p.l, p.lenient)
	p.src = string(p.l.Bytes())
	p.pos = p.l.Offset()
	for _, t := range p.l.back {
		if t.Start < p.pos {
			p.pos = t.Start
		}
	}
}

// Parse parses the remainder of the lexer's input into a Root.
func (p *Parser) Parse() (*Root, error) {
	root := &Root{
		Source: p.src,
	}
	start := p.pos
	prev := start
	for p.err == nil {
		t := p.peek()
		var n Node
		switch t.TokenType {
		case UnknownToken:
			if p.err != nil {
				return nil, p.err
			}
			root.Span = csstree.Span{Start: start, End: p.pos}
			root.Raws.After = p.src[prev:p.pos]
			return root, nil
		case SpaceToken, SemicolonToken:
			p.shift()
			continue
		case CommentToken:
			p.shift()
			n = &Comment{
				Span: t.Span(),
				Text: p.text(t.Span()),
			}
		case AtWordToken:
			n = p.parseAtRule()
		default:
			n = p.parseRule()
		}
		if p.err != nil {
			break
		}
		setBefore(n, p.src[prev:n.Range().Start])
		prev = n.Range().End
		root.Nodes = append(root.Nodes, n)
	}
	return nil, p.err
}

////////////////////////////////////////////////////////////////

// peek returns the next token, or an UnknownToken at the end of input. A lexer error is recorded in p.err.
func (p *Parser) peek() Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(i int) Token {
	t := p.z.Peek(i)
	if t.TokenType == UnknownToken && p.z.err != nil && p.err == nil {
		p.err = p.z.err
		var perr *csstree.Error
		if errors.As(p.err, &perr) {
			perr.Filename = p.filename
		}
	}
	return t
}

func (p *Parser) shift() Token {
	t := p.z.Shift()
	if t.TokenType != UnknownToken {
		p.pos = t.End
	}
	return t
}

func (p *Parser) skipTrivia() {
	for p.err == nil && p.peek().IsTrivia() {
		p.shift()
	}
}

func (p *Parser) text(span csstree.Span) string {
	return p.src[span.Start:span.End]
}

func (p *Parser) fail(in, expected string, t Token) {
	if p.err != nil {
		return
	}
	at := "EOF"
	start, end := len(p.src), len(p.src)
	if t.TokenType != UnknownToken {
		at = "'" + string(t.Data) + "'"
		start, end = t.Start, t.End
	}
	p.failAt(start, end, "expected "+expected+" instead of "+at+" in "+in)
}

func (p *Parser) failAt(start, end int, msg string) {
	if p.err == nil {
		err := csstree.NewError(csstree.ErrStructure, msg, p.l.Bytes(), start, end)
		err.Filename = p.filename
		p.err = err
	}
}

func (p *Parser) enter(open Token) bool {
	p.depth++
	if 0 < p.maxDepth && p.maxDepth < p.depth {
		p.failAt(open.Start, open.End, "nesting too deep")
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

////////////////////////////////////////////////////////////////

// parseRule parses a selector up to its block. The selector span excludes trailing trivia.
func (p *Parser) parseRule() *Rule {
	r := &Rule{}
	start := p.peek().Start
	end := start
	for p.err == nil {
		t := p.peek()
		if t.TokenType == OpenCurlyToken {
			break
		} else if t.TokenType == UnknownToken {
			p.fail("rule", "'{'", t)
			return nil
		}
		if _, trivia := p.parseComponent(); !trivia {
			end = p.pos
		}
	}
	if p.err != nil {
		return nil
	}

	r.SelectorSpan = csstree.Span{Start: start, End: end}
	r.Selector = p.text(r.SelectorSpan)
	r.Raws.Between = p.src[end:p.peek().Start]
	r.Open, r.Close, r.Nodes, r.Raws.After = p.parseCurlyBlock(false)
	r.Span = csstree.Span{Start: start, End: r.Close + 1}
	return r
}

// parseAtRule parses an at-rule with its params, which end at {, ; or the } of the enclosing block.
func (p *Parser) parseAtRule() *AtRule {
	at := p.shift()
	a := &AtRule{
		NameSpan:  csstree.Span{Start: at.Start + 1, End: at.End},
		Open:      -1,
		Close:     -1,
		Semicolon: -1,
	}
	a.Name = p.text(a.NameSpan)
	a.ParamsSpan = csstree.Span{Start: at.End, End: at.End}

	p.skipTrivia()
	first := true
	for p.err == nil {
		t := p.peek()
		if t.TokenType == OpenCurlyToken || t.TokenType == SemicolonToken || t.TokenType == CloseCurlyToken || t.TokenType == UnknownToken {
			break
		}
		start := t.Start
		if _, trivia := p.parseComponent(); !trivia {
			if first {
				a.ParamsSpan.Start = start
				first = false
			}
			a.ParamsSpan.End = p.pos
		}
	}
	if p.err != nil {
		return nil
	}
	a.Params = p.text(a.ParamsSpan)
	a.Raws.AfterName = p.src[at.End:a.ParamsSpan.Start]
	a.Span = csstree.Span{Start: at.Start, End: a.ParamsSpan.End}

	switch t := p.peek(); t.TokenType {
	case OpenCurlyToken:
		a.Raws.Between = p.src[a.ParamsSpan.End:t.Start]
		a.Open, a.Close, a.Nodes, a.Raws.After = p.parseCurlyBlock(true)
		a.Span.End = a.Close + 1
	case SemicolonToken:
		p.shift()
		a.Raws.Between = p.src[a.ParamsSpan.End:t.Start]
		a.Semicolon = t.Start
		a.Span.End = t.End
	}
	return a
}

// parseCurlyBlock parses the block at {. Rule blocks contain declarations and at-rules; at-rule blocks may also contain rules.
func (p *Parser) parseCurlyBlock(allowRules bool) (int, int, []Node, string) {
	open := p.shift()
	if !p.enter(open) {
		return open.Start, -1, nil, ""
	}
	defer p.leave()

	var nodes []Node
	prev := open.End
	for p.err == nil {
		t := p.peek()
		var n Node
		switch t.TokenType {
		case UnknownToken:
			p.fail("block", "'}'", t)
			return open.Start, -1, nil, ""
		case CloseCurlyToken:
			p.shift()
			return open.Start, t.Start, nodes, p.src[prev:t.Start]
		case SemicolonToken, SpaceToken, CommentToken:
			p.shift()
			continue
		case AtWordToken:
			n = p.parseAtRule()
		default:
			if allowRules && !p.isDeclaration() {
				n = p.parseRule()
			} else {
				n = p.parseDeclaration()
			}
		}
		if p.err != nil {
			break
		}
		setBefore(n, p.src[prev:n.Range().Start])
		prev = n.Range().End
		nodes = append(nodes, n)
	}
	return open.Start, -1, nil, ""
}

// isDeclaration looks ahead to decide whether a block entry is a declaration, which is when it starts with a word and reaches ; or } before {.
func (p *Parser) isDeclaration() bool {
	if p.peek().TokenType != WordToken {
		return false
	}
	level := 0
	for i := 1; ; i++ {
		switch p.z.Peek(i).TokenType {
		case UnknownToken:
			return true
		case OpenParenToken, OpenSquareToken:
			level++
		case CloseParenToken, CloseSquareToken:
			if 0 < level {
				level--
			}
		case OpenCurlyToken:
			if level == 0 {
				return false
			}
		case SemicolonToken, CloseCurlyToken:
			if level == 0 {
				return true
			}
		}
	}
}

// parseDeclaration parses `prop: value !important;`. The value ends before ; or } and excludes trailing trivia and the !important marker.
func (p *Parser) parseDeclaration() *Declaration {
	prop := p.peek()
	if prop.TokenType != WordToken {
		p.fail("declaration", "property name", prop)
		return nil
	}
	p.shift()
	d := &Declaration{
		PropSpan:  prop.Span(),
		Prop:      p.text(prop.Span()),
		Semicolon: -1,
	}

	p.skipTrivia()
	if colon := p.peek(); colon.TokenType != ColonToken {
		p.fail("declaration", "':'", colon)
		return nil
	}
	colon := p.shift()
	p.skipTrivia()

	// significant components of the value
	var comps []component
	for p.err == nil {
		t := p.peek()
		if t.TokenType == SemicolonToken || t.TokenType == CloseCurlyToken || t.TokenType == UnknownToken {
			break
		}
		first, trivia := p.parseComponent()
		if !trivia {
			comps = append(comps, component{first, csstree.Span{Start: first.Start, End: p.pos}})
		}
	}
	if p.err != nil {
		return nil
	}

	n := len(comps)
	end := colon.End
	if 0 < n {
		end = comps[n-1].End
	}
	if 1 <= n && comps[n-1].isWord("!important") {
		d.Important = true
		n--
	} else if 2 <= n && comps[n-1].isWord("important") && comps[n-2].isWord("!") {
		d.Important = true
		n -= 2
	}

	d.ValueSpan = csstree.Span{Start: colon.End, End: colon.End}
	if 0 < n {
		d.ValueSpan = csstree.Span{Start: comps[0].Start, End: comps[n-1].End}
	}
	d.Value = p.text(d.ValueSpan)
	d.Raws.Between = p.src[prop.End:d.ValueSpan.Start]
	if d.Important {
		d.Raws.Important = p.src[d.ValueSpan.End:end]
	}
	if t := p.peek(); t.TokenType == SemicolonToken {
		p.shift()
		d.Semicolon = t.Start
		d.Raws.Semicolon = p.src[end:t.End]
		end = t.End
	}
	d.Span = csstree.Span{Start: prop.Start, End: end}
	return d
}

type component struct {
	first Token
	csstree.Span
}

// isWord returns true if the component is a single word token equal to match, ignoring case.
func (c component) isWord(match string) bool {
	return c.first.TokenType == WordToken && c.first.End == c.End && csstree.EqualFold(string(c.first.Data), match)
}

// parseComponent consumes a single token or a balanced group of (), [] or {}. It returns the first token and whether it was trivia.
func (p *Parser) parseComponent() (Token, bool) {
	t := p.shift()
	switch t.TokenType {
	case OpenCurlyToken:
		p.parseGroup(t, CloseCurlyToken)
	case OpenParenToken:
		p.parseGroup(t, CloseParenToken)
	case OpenSquareToken:
		p.parseGroup(t, CloseSquareToken)
	default:
		return t, t.IsTrivia()
	}
	return t, false
}

func (p *Parser) parseGroup(open Token, close TokenType) {
	if !p.enter(open) {
		return
	}
	defer p.leave()

	for p.err == nil {
		t := p.peek()
		if t.TokenType == close {
			p.shift()
			return
		} else if t.TokenType == UnknownToken {
			if !p.lenient && p.err == nil {
				p.failAt(open.Start, len(p.src), "unclosed '"+string(open.Data)+"'")
			}
			return
		}
		p.parseComponent()
	}
}
