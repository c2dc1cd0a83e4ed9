package transform

import (
	"strings"

	"github.com/tdewolff/csstree/css"
)

// Minify removes the trivia of a tree: whitespace between nodes, comments, and the last semicolon of a block.
// Comments starting with /*! are kept. An at-rule or declaration without semicolon is always the last in its block, so none is added. Whitespace inside selectors, params and values is collapsed to a single space.
type Minify struct {
	last map[*css.Declaration]bool
}

func (m *Minify) VisitRoot(root *css.Root) {
	nodes := make([]css.Node, 0, len(root.Nodes))
	for _, n := range root.Nodes {
		if c, ok := n.(*css.Comment); ok && !strings.HasPrefix(c.Text, "/*!") {
			continue
		}
		nodes = append(nodes, n)
	}
	root.Nodes = nodes
	root.Raws.After = ""
}

func (m *Minify) VisitRule(r *css.Rule) {
	r.Selector = collapse(r.Selector)
	r.Raws = css.RuleRaws{}
	m.markLast(r.Nodes)
}

func (m *Minify) VisitAtRule(a *css.AtRule) {
	a.Params = collapse(a.Params)
	a.Raws = css.AtRuleRaws{}
	if a.Params != "" {
		a.Raws.AfterName = " "
	}
	m.markLast(a.Nodes)
}

func (m *Minify) VisitDeclaration(d *css.Declaration) {
	d.Value = collapse(d.Value)
	d.Raws.Before = ""
	d.Raws.Between = ":"
	d.Raws.Important = ""
	if d.Important {
		d.Raws.Important = "!important"
	}
	d.Raws.Semicolon = ";"
	if m.last[d] {
		d.Raws.Semicolon = ""
		delete(m.last, d)
	}
}

func (m *Minify) VisitComment(c *css.Comment) {
	c.Raws.Before = ""
}

func (m *Minify) markLast(nodes []css.Node) {
	if len(nodes) == 0 {
		return
	} else if d, ok := nodes[len(nodes)-1].(*css.Declaration); ok {
		if m.last == nil {
			m.last = map[*css.Declaration]bool{}
		}
		m.last[d] = true
	}
}

// collapse replaces runs of whitespace and comments by a single space. Strings and url() contents are copied verbatim.
func collapse(s string) string {
	tokens, err := css.Tokenize([]byte(s), true)
	if err != nil {
		return s
	}

	sb := strings.Builder{}
	sb.Grow(len(s))
	space := false
	for _, t := range tokens {
		if t.TokenType.IsTrivia() {
			space = true
			continue
		}
		if space && 0 < sb.Len() {
			sb.WriteByte(' ')
		}
		space = false
		sb.Write(t.Data)
	}
	return sb.String()
}
