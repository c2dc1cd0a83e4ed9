package css

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes an indented outline of a tree with the spans of all nodes.
type Printer struct {
	w     io.Writer
	level int
	err   error
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the outline of n.
func (p *Printer) Print(n Node) error {
	switch n := n.(type) {
	case *Root:
		p.line("Root@%v", n.Span)
		p.children(n.Nodes)
	case *Rule:
		p.line("Rule@%v", n.Span)
		p.level++
		p.line("selector: `%s`", n.Selector)
		p.level--
		p.children(n.Nodes)
	case *AtRule:
		p.line("AtRule@%v", n.Span)
		p.level++
		p.line("name: `%s`", n.Name)
		p.line("params: `%s`", n.Params)
		p.level--
		p.children(n.Nodes)
	case *Declaration:
		p.line("Declaration@%v", n.Span)
		p.level++
		p.line("prop: `%s`", n.Prop)
		p.line("value: `%s`", n.Value)
		if n.Important {
			p.line("important: true")
		}
		p.level--
	case *Comment:
		p.line("Comment@%v", n.Span)
	}
	return p.err
}

func (p *Printer) children(nodes []Node) {
	p.level++
	for _, n := range nodes {
		p.Print(n)
	}
	p.level--
}

func (p *Printer) line(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, strings.Repeat("  ", p.level)+format+"\n", args...)
}

// Dump returns the outline of n.
func Dump(n Node) string {
	sb := strings.Builder{}
	NewPrinter(&sb).Print(n)
	return sb.String()
}
