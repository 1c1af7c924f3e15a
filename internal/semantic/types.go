package semantic

import "strings"

// ExprType is the result of type-checking one Exp node (spec.md §4.1).
// Valid is false for an expression that already triggered an error
// further down the tree; comparisons against an invalid ExprType
// always succeed so one bad subexpression doesn't cascade into a
// second, redundant diagnostic higher up.
type ExprType struct {
	LValue bool
	Type   string
	Valid  bool
}

// Invalid is the zero-value placeholder returned once an expression
// has already been reported as erroneous.
func Invalid() ExprType { return ExprType{} }

// RValue builds a non-assignable result of the given type name.
func RValue(t string) ExprType { return ExprType{Type: t, Valid: true} }

// LValueOf builds an assignable result of the given type name.
func LValueOf(t string) ExprType { return ExprType{Type: t, Valid: true, LValue: true} }

func (e ExprType) IsInt() bool        { return e.Type == "int" }
func (e ExprType) IsFloat() bool      { return e.Type == "float" }
func (e ExprType) IsChar() bool       { return e.Type == "char" }
func (e ExprType) IsIntOrFloat() bool { return e.IsInt() || e.IsFloat() }
func (e ExprType) IsArray() bool      { return strings.ContainsRune(e.Type, '[') }

// popArrayBracket strips the first (outermost) "[N]" level, turning an array's
// element-access result type back into the type of one element
// (spec.md §4.1: indexing "a[3][4]" once yields the type "a[4]" would
// have as a standalone declaration).
func popArrayBracket(t string) string {
	begin := strings.IndexByte(t, '[')
	if begin < 0 {
		return t
	}
	end := strings.IndexByte(t[begin:], ']')
	if end < 0 {
		return t
	}
	end += begin
	return t[:begin] + t[end+1:]
}

// typesEqual implements spec.md §4.1's equivalence rule: identical type
// strings, or both name struct definitions that are structurally
// equivalent. An invalid operand makes any comparison succeed, so
// already-reported errors don't cascade.
func (a *Analyzer) typesEqual(x, y ExprType) bool {
	if !x.Valid || !y.Valid {
		return true
	}
	if x.Type == y.Type {
		return true
	}
	xSym := a.scope.LookupGlobal(x.Type)
	ySym := a.scope.LookupGlobal(y.Type)
	if xSym != nil && ySym != nil && xSym.Kind == StructDefKind && ySym.Kind == StructDefKind {
		return a.structurallyEquivalent(xSym, ySym)
	}
	return false
}
