// Package ir is the three-address IR data model of spec.md §3: values,
// the doubly-linked instruction list, and the translation-unit context
// that owns the naming counters and symbol/array tables the IR
// generator and optimizer share.
package ir

import (
	"strconv"

	"splc/internal/ast"
)

// Kind is one of the value tags of spec.md §3.1. Complex is never
// printed — it is an internal dispatch tag the IR generator uses for
// an indexed expression on the left of an assignment before resolving
// it to a Pointer.
type Kind int

const (
	Symbol Kind = iota
	Label
	Const
	Var
	Temp
	Pointer
	Complex
)

// Value is always held and compared by pointer: two Values that
// happen to carry the same Kind and Num are still distinct operands
// unless they are the identical pointer, matching the source's
// Value* identity semantics — the optimizer relies on this for its
// arg1 == arg2 checks.
type Value struct {
	Kind Kind
	Num  int
	Name string
	Node *ast.Node // only set when Kind == Complex
}

func NewSymbol(name string) *Value { return &Value{Kind: Symbol, Name: name} }
func NewLabel(num int) *Value      { return &Value{Kind: Label, Num: num} }
func NewConst(val int) *Value      { return &Value{Kind: Const, Num: val} }
func NewVar(num int) *Value        { return &Value{Kind: Var, Num: num} }
func NewTemp(num int) *Value       { return &Value{Kind: Temp, Num: num} }
func NewPointer(num int) *Value    { return &Value{Kind: Pointer, Num: num} }
func NewComplex(n *ast.Node) *Value { return &Value{Kind: Complex, Node: n} }

// String renders a Value the way spec.md §6 specifies: a bare symbol
// name, or a tag letter followed by its number.
func (v *Value) String() string {
	if v == nil {
		return "null"
	}
	switch v.Kind {
	case Symbol:
		return v.Name
	case Label:
		return "label" + strconv.Itoa(v.Num)
	case Const:
		return "#" + strconv.Itoa(v.Num)
	case Var:
		return "v" + strconv.Itoa(v.Num)
	case Temp:
		return "t" + strconv.Itoa(v.Num)
	case Pointer:
		return "a" + strconv.Itoa(v.Num)
	case Complex:
		return "complex"
	default:
		return "?"
	}
}

// IsConst reports whether v is a constant, optionally of a specific value.
func IsConst(v *Value, val ...int) bool {
	if v == nil || v.Kind != Const {
		return false
	}
	if len(val) == 0 {
		return true
	}
	return v.Num == val[0]
}
