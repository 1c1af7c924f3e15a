package semantic

import (
	"splc/internal/ast"
	"splc/internal/diag"
)

// visitStmt special-cases only "RETURN Exp SEMI"; every other
// statement form (if/while/do/for/break/continue/expr-stmt/nested
// CompSt) carries no check of its own and is walked generically,
// reaching its Exp and CompSt children through the default dispatch
// (spec.md §4.2, semantic.cpp visitStmt).
func (a *Analyzer) visitStmt(n *ast.Node) {
	if n.NumChildren() == 3 && n.Child(0).Op == ast.Return {
		rtype := a.visitExp(n.Child(1))
		declared := ExprType{LValue: true, Type: a.currentFunction.Type, Valid: true}
		if !a.typesEqual(declared, rtype) {
			a.sink.Report(diag.ReturnTypeMismatch, n.Line, "function return type mismatch the declared type")
		}
		return
	}
	a.visitChildren(n)
}
