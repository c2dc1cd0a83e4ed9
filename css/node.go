package css

import (
	"strconv"

	"github.com/tdewolff/csstree"
)

// NodeType determines the kind of node.
type NodeType uint32

// NodeType values.
const (
	RootNode NodeType = iota
	RuleNode
	AtRuleNode
	DeclarationNode
	CommentNode
)

// String returns the string representation of a NodeType.
func (nt NodeType) String() string {
	switch nt {
	case RootNode:
		return "Root"
	case RuleNode:
		return "Rule"
	case AtRuleNode:
		return "AtRule"
	case DeclarationNode:
		return "Declaration"
	case CommentNode:
		return "Comment"
	}
	return "Invalid(" + strconv.Itoa(int(nt)) + ")"
}

// Node is implemented by *Root, *Rule, *AtRule, *Declaration and *Comment only.
type Node interface {
	Type() NodeType
	Range() csstree.Span
	Children() []Node
	node()
}

// Text fields of nodes (Selector, Name, Params, Prop, Value, Text and all raws) are substrings of Root.Source after parsing.
// They may be replaced by visitors; the spans keep pointing into the source.

////////////////////////////////////////////////////////////////

// Root is the top-level node. Nodes contains *Rule, *AtRule and *Comment nodes.
type Root struct {
	Span   csstree.Span
	Source string
	Nodes  []Node
	Raws   RootRaws
}

// RootRaws holds the trivia of a Root.
type RootRaws struct {
	After string // after the last node
}

// Rule is a style rule, such as `a > b { color: red }`.
type Rule struct {
	Span         csstree.Span
	Selector     string
	SelectorSpan csstree.Span
	Open, Close  int // offsets of { and }
	Nodes        []Node
	Raws         RuleRaws
}

// RuleRaws holds the trivia of a Rule.
type RuleRaws struct {
	Before  string // before the selector
	Between string // between the selector and {
	After   string // between the last node and }
}

// AtRule is an at-rule statement or block, such as `@import "a.css";` or `@media screen { ... }`.
type AtRule struct {
	Span        csstree.Span
	Name        string // without @
	NameSpan    csstree.Span
	Params      string
	ParamsSpan  csstree.Span
	Nodes       []Node
	Open, Close int // offsets of { and }, or -1 without a block
	Semicolon   int // offset of the terminating ;, or -1
	Raws        AtRuleRaws
}

// AtRuleRaws holds the trivia of an AtRule.
type AtRuleRaws struct {
	Before    string
	AfterName string // between the name and the params
	Between   string // between the params and { or ;
	After     string // between the last node and }
}

// Declaration is a property and its value, such as `color: red !important;`.
type Declaration struct {
	Span      csstree.Span
	Prop      string
	PropSpan  csstree.Span
	Value     string
	ValueSpan csstree.Span
	Important bool
	Semicolon int // offset of the terminating ;, or -1
	Raws      DeclarationRaws
}

// DeclarationRaws holds the trivia of a Declaration.
type DeclarationRaws struct {
	Before    string
	Between   string // between the property and the value, including the colon
	Important string // between the value and the end of !important
	Semicolon string // between the value or !important and the end of ;
}

// Comment is a top-level comment. Comments inside blocks are kept as trivia in the raws of the surrounding nodes.
type Comment struct {
	Span csstree.Span
	Text string // including /* and */
	Raws CommentRaws
}

// CommentRaws holds the trivia of a Comment.
type CommentRaws struct {
	Before string
}

func (*Root) Type() NodeType        { return RootNode }
func (*Rule) Type() NodeType        { return RuleNode }
func (*AtRule) Type() NodeType      { return AtRuleNode }
func (*Declaration) Type() NodeType { return DeclarationNode }
func (*Comment) Type() NodeType     { return CommentNode }

func (n *Root) Range() csstree.Span        { return n.Span }
func (n *Rule) Range() csstree.Span        { return n.Span }
func (n *AtRule) Range() csstree.Span      { return n.Span }
func (n *Declaration) Range() csstree.Span { return n.Span }
func (n *Comment) Range() csstree.Span     { return n.Span }

func (n *Root) Children() []Node        { return n.Nodes }
func (n *Rule) Children() []Node        { return n.Nodes }
func (n *AtRule) Children() []Node      { return n.Nodes }
func (n *Declaration) Children() []Node { return nil }
func (n *Comment) Children() []Node     { return nil }

func (*Root) node()        {}
func (*Rule) node()        {}
func (*AtRule) node()      {}
func (*Declaration) node() {}
func (*Comment) node()     {}

// Text returns the source text covered by span.
func (n *Root) Text(span csstree.Span) string {
	return span.Text(n.Source)
}

// HasBlock returns true if the at-rule has a {...} block, even if it is empty.
func (n *AtRule) HasBlock() bool {
	return 0 <= n.Open
}

// before returns the raw trivia preceding a child node.
func before(n Node) string {
	switch n := n.(type) {
	case *Rule:
		return n.Raws.Before
	case *AtRule:
		return n.Raws.Before
	case *Declaration:
		return n.Raws.Before
	case *Comment:
		return n.Raws.Before
	}
	return ""
}

func setBefore(n Node, s string) {
	switch n := n.(type) {
	case *Rule:
		n.Raws.Before = s
	case *AtRule:
		n.Raws.Before = s
	case *Declaration:
		n.Raws.Before = s
	case *Comment:
		n.Raws.Before = s
	}
}
