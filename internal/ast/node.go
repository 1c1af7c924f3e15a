package ast

import "strings"

// Node is one AST node. Str holds identifier text or float/char literal
// text; Val holds an integer literal or a Specifier's primitive-type
// tag. A node is owned by exactly one parent; the root is owned by the
// driver that built the tree.
type Node struct {
	Line     int
	Op       Op
	Val      int
	Str      string
	Children []*Node
}

// New creates a node of the given operator with no payload.
func New(op Op, line int) *Node {
	return &Node{Op: op, Line: line}
}

// NewID creates an identifier (SYMBOL) node.
func NewID(name string, line int) *Node {
	return &Node{Op: ID, Line: line, Str: name}
}

// NewInt creates an integer-literal node.
func NewInt(val int, line int) *Node {
	return &Node{Op: IntConst, Line: line, Val: val}
}

// NewFloat creates a float-literal node; the text is kept verbatim
// since no float folding is defined (spec.md §1 Non-goals).
func NewFloat(text string, line int) *Node {
	return &Node{Op: FloatConst, Line: line, Str: text}
}

// NewChar creates a char-literal node.
func NewChar(text string, line int) *Node {
	return &Node{Op: CharConst, Line: line, Str: text}
}

// Append adds a child, skipping nils so optional grammar productions
// (an absent Else, an absent for-loop clause) don't need a special case
// at every call site.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Child returns the i'th child, or nil if out of range — handlers that
// branch on a node's shape only need to range-check once via NumChildren.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// NumChildren reports how many children n has.
func (n *Node) NumChildren() int {
	if n == nil {
		return 0
	}
	return len(n.Children)
}

// ShapeKey is OP_child1OPchild2OP..., a textual key that tells grammar
// alternatives apart. The IR generator does not call it; it dispatches
// on child counts and operators directly.
func (n *Node) ShapeKey() string {
	var b strings.Builder
	b.WriteString(n.Op.String())
	b.WriteByte('_')
	for _, c := range n.Children {
		b.WriteString(c.Op.String())
	}
	return b.String()
}

// Walk calls fn for n and, if fn returns true, recurses into n's
// children in order. The semantic analyzer does not use it; its
// fallback traversal is its own visitChildren.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if fn(n) {
		for _, c := range n.Children {
			Walk(c, fn)
		}
	}
}
