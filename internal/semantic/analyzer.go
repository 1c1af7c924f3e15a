// Package semantic implements the semantic analyzer of spec.md §4: a
// single top-down traversal of an externally-built ast.Node tree that
// maintains a scoped symbol table and reports every numbered error
// class it finds, without ever stopping at the first one.
package semantic

import (
	"splc/internal/ast"
	"splc/internal/diag"
)

// Analyzer holds the traversal's mutable state: the scope stack, the
// diagnostic sink, and a pointer to the symbol of the function whose
// body is currently being walked (for return-type checking).
type Analyzer struct {
	scope           *Scope
	sink            *diag.Sink
	currentFunction *Symbol
}

// New returns an Analyzer ready to run over one translation unit, with
// the read/write intrinsics pre-declared in the global scope. spec.md
// §5 treats them as reserved identifiers the IR generator lowers
// directly to READ/WRITE rather than CALL; the semantic phase needs
// the same exemption so a plain write(x) doesn't read as a call to an
// undeclared function.
func New() *Analyzer {
	a := &Analyzer{scope: NewScope(), sink: &diag.Sink{}}
	a.scope.InsertGlobal(&Symbol{Kind: FunctionKind, Name: "read", Type: "int"})
	a.scope.InsertGlobal(&Symbol{Kind: FunctionKind, Name: "write", Type: "int", Params: []string{"int"}})
	return a
}

// Analyze walks program and returns the accumulated diagnostics.
// program is the Program root; an empty Sink (Ok() == true) means the
// unit is well-typed.
func Analyze(program *ast.Node) *diag.Sink {
	a := New()
	a.visit(program)
	return a.sink
}

// AnalyzeUnit is Analyze plus the Analyzer itself, so a caller can
// still inspect the global symbol table afterward (cmd/splc's symbols
// command) without every Analyze caller paying for that.
func AnalyzeUnit(program *ast.Node) (*diag.Sink, *Analyzer) {
	a := New()
	a.visit(program)
	return a.sink, a
}

// Globals returns every symbol inserted into the global scope during
// the traversal (functions, struct definitions and global variables), in no
// particular order. The pre-declared read/write intrinsics are
// excluded — they were never part of the program's own source.
func (a *Analyzer) Globals() []*Symbol {
	var out []*Symbol
	for name, sym := range a.scope.global() {
		if name == "read" || name == "write" {
			continue
		}
		out = append(out, sym)
	}
	return out
}

// visit is the generic dispatcher of spec.md §4.2's handler map: only
// ExtDef, CompSt, Stmt and Exp carry special handling, everything else
// — Program, the *List spines, declarations reached structurally — is
// walked by recursing into children in order.
func (a *Analyzer) visit(n *ast.Node) {
	if n == nil {
		return
	}
	switch n.Op {
	case ast.ExtDef:
		a.visitExtDef(n)
	case ast.CompSt:
		a.visitCompSt(n)
	case ast.Stmt:
		a.visitStmt(n)
	case ast.Exp:
		a.visitExp(n)
	default:
		a.visitChildren(n)
	}
}

func (a *Analyzer) visitChildren(n *ast.Node) {
	for _, c := range n.Children {
		a.visit(c)
	}
}
