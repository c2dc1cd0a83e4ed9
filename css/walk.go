package css

// Visitor inspects nodes by kind. Nodes are passed by value and changes are not reflected in the tree.
type Visitor interface {
	VisitRoot(Root)
	VisitRule(Rule)
	VisitAtRule(AtRule)
	VisitDeclaration(Declaration)
	VisitComment(Comment)
}

// MutVisitor edits nodes in place.
type MutVisitor interface {
	VisitRoot(*Root)
	VisitRule(*Rule)
	VisitAtRule(*AtRule)
	VisitDeclaration(*Declaration)
	VisitComment(*Comment)
}

// BaseVisitor implements Visitor with no-ops, embed it to override only some methods.
type BaseVisitor struct{}

func (BaseVisitor) VisitRoot(Root)               {}
func (BaseVisitor) VisitRule(Rule)               {}
func (BaseVisitor) VisitAtRule(AtRule)           {}
func (BaseVisitor) VisitDeclaration(Declaration) {}
func (BaseVisitor) VisitComment(Comment)         {}

// BaseMutVisitor implements MutVisitor with no-ops, embed it to override only some methods.
type BaseMutVisitor struct{}

func (BaseMutVisitor) VisitRoot(*Root)               {}
func (BaseMutVisitor) VisitRule(*Rule)               {}
func (BaseMutVisitor) VisitAtRule(*AtRule)           {}
func (BaseMutVisitor) VisitDeclaration(*Declaration) {}
func (BaseMutVisitor) VisitComment(*Comment)         {}

// Walk traverses a tree in depth-first pre-order, visiting children in document order.
func Walk(v Visitor, n Node) {
	switch n := n.(type) {
	case *Root:
		v.VisitRoot(*n)
	case *Rule:
		v.VisitRule(*n)
	case *AtRule:
		v.VisitAtRule(*n)
	case *Declaration:
		v.VisitDeclaration(*n)
	case *Comment:
		v.VisitComment(*n)
	default:
		return
	}
	for _, child := range n.Children() {
		Walk(v, child)
	}
}

// WalkMut traverses a tree in depth-first pre-order like Walk. Children are read after their parent is visited, so a visitor may replace them.
func WalkMut(v MutVisitor, n Node) {
	switch n := n.(type) {
	case *Root:
		v.VisitRoot(n)
	case *Rule:
		v.VisitRule(n)
	case *AtRule:
		v.VisitAtRule(n)
	case *Declaration:
		v.VisitDeclaration(n)
	case *Comment:
		v.VisitComment(n)
	default:
		return
	}
	for _, child := range n.Children() {
		WalkMut(v, child)
	}
}

// Inspect traverses a tree in depth-first pre-order. The children of a node are skipped when f returns false.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, child := range n.Children() {
		Inspect(child, f)
	}
}
