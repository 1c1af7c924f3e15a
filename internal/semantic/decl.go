package semantic

import (
	"strconv"

	"splc/internal/ast"
	"splc/internal/diag"
)

func (a *Analyzer) insertVariable(sym *Symbol, line int) bool {
	if !a.scope.InsertVariable(sym) {
		a.sink.Report(diag.VariableRedefined, line, "variable is redefined in the same scope")
		return false
	}
	return true
}

func (a *Analyzer) insertGlobal(sym *Symbol, line int) bool {
	if !a.scope.InsertGlobal(sym) {
		if sym.Kind == FunctionKind {
			a.sink.Report(diag.FunctionRedefined, line, "function is redefined in the global scope")
		} else {
			a.sink.Report(diag.StructRedefined, line, "struct is redefined in the global scope")
		}
		return false
	}
	return true
}

// symbolFromSpecifier resolves a Specifier node to its type-string name,
// registering the struct definition it introduces as a side effect when
// the specifier names one (spec.md §4.1, grounded on semantic.cpp's
// symbol_from_specifier).
func (a *Analyzer) symbolFromSpecifier(n *ast.Node) string {
	if n.NumChildren() == 0 {
		return ast.TypeName(n.Val)
	}
	structSpec := n.Child(0)
	a.visitStructSpecifier(structSpec)
	return structSpec.Child(1).Str
}

// visitStructSpecifier handles "STRUCT ID LC DefList RC" (a definition,
// 5 children), "STRUCT ID LC RC" (an empty definition, 4 children), and
// "STRUCT ID" (a reference to an already-defined struct, 2 children).
func (a *Analyzer) visitStructSpecifier(n *ast.Node) {
	if n.NumChildren() >= 4 {
		tag := n.Child(1).Str
		sym := &Symbol{Kind: StructDefKind, Name: tag}
		if a.insertGlobal(sym, n.Line) && n.NumChildren() == 5 {
			sym.Members = a.visitStructDefList(n.Child(3))
		}
		return
	}
	name := n.Child(1).Str
	if a.scope.LookupGlobal(name) == nil {
		a.sink.Report(diag.UndeclaredStruct, n.Line, "struct is used without definition")
	}
}

// visitStructDefList flattens the DefList chain nested under a struct
// body into an ordered member list, iteratively rather than via the
// mutual recursion semantic.cpp uses for the same shape.
func (a *Analyzer) visitStructDefList(n *ast.Node) []*Symbol {
	var members []*Symbol
	for n != nil && n.NumChildren() > 0 {
		def := n.Child(0)
		specifier := a.symbolFromSpecifier(def.Child(0))
		for _, dec := range flattenCommaList(def.Child(1)) {
			members = append(members, a.visitVarDec(specifier, dec.Child(0)))
		}
		n = n.Child(1)
	}
	return members
}

// visitVarDec unwraps "ID" (1 child) or "VarDec LB INT RB" (4
// children, array dimension), appending dimensions left to right as it
// unwinds back out of the recursion.
func (a *Analyzer) visitVarDec(specifier string, n *ast.Node) *Symbol {
	if n.NumChildren() == 1 {
		return &Symbol{Kind: VariableKind, Name: n.Child(0).Str, Type: specifier}
	}
	sym := a.visitVarDec(specifier, n.Child(0))
	sym.Type += "[" + strconv.Itoa(n.Child(2).Val) + "]"
	return sym
}

// flattenCommaList walks the "X" | "X COMMA List" chain shared by
// DecList, Args, VarList and ExtDecList, returning the X nodes in
// source order.
func flattenCommaList(n *ast.Node) []*ast.Node {
	var out []*ast.Node
	for n != nil {
		out = append(out, n.Child(0))
		if n.NumChildren() == 1 {
			break
		}
		n = n.Child(2)
	}
	return out
}

// visitDef registers every name in one "Specifier DecList SEMI"
// declaration. An initializer on a Dec, if present, is not
// type-checked here — matching semantic.cpp's visitDec, which never
// recurses into a Dec's ASSIGN Exp; the IR generator lowers it as a
// plain store once the declared name is known.
func (a *Analyzer) visitDef(n *ast.Node) {
	specifier := a.symbolFromSpecifier(n.Child(0))
	for _, dec := range flattenCommaList(n.Child(1)) {
		sym := a.visitVarDec(specifier, dec.Child(0))
		a.insertVariable(sym, n.Line)
	}
}

// visitDefList walks the "Def DefList" | empty chain at the top of a
// compound statement or struct body.
func (a *Analyzer) visitDefList(n *ast.Node) {
	for n != nil && n.NumChildren() > 0 {
		a.visitDef(n.Child(0))
		n = n.Child(1)
	}
}

// visitParamDec resolves one formal parameter's declared name and
// records the parameter's declared TYPE (not the full VarDec-derived
// type) as its symbol type, matching visitParamDec's
// `symbol.type = specifier` overwrite in semantic.cpp.
func (a *Analyzer) visitParamDec(n *ast.Node) *Symbol {
	specifier := a.symbolFromSpecifier(n.Child(0))
	sym := a.visitVarDec(specifier, n.Child(1))
	sym.Type = specifier
	return sym
}

func (a *Analyzer) visitVarList(n *ast.Node) []*Symbol {
	var out []*Symbol
	for _, p := range flattenCommaList(n) {
		out = append(out, a.visitParamDec(p))
	}
	return out
}

// visitFunDec builds the function's Symbol, inserting each formal
// parameter into the scope pushed by visitExtDef before visiting the
// body. The function's own return type is filled in by the caller.
func (a *Analyzer) visitFunDec(n *ast.Node) *Symbol {
	sym := &Symbol{Kind: FunctionKind, Name: n.Child(0).Str}
	if n.NumChildren() == 4 {
		for _, param := range a.visitVarList(n.Child(2)) {
			a.insertVariable(param, n.Line)
			sym.Params = append(sym.Params, param.Type)
		}
	}
	return sym
}

func (a *Analyzer) visitExtDecList(specifier string, n *ast.Node) []*Symbol {
	var out []*Symbol
	for _, dec := range flattenCommaList(n) {
		out = append(out, a.visitVarDec(specifier, dec))
	}
	return out
}

// visitExtDef handles one top-level declaration. The specifier is
// always resolved first — even for a bare "struct Foo { ... };" with
// no following declarator list — since that is how a struct
// definition gets registered (spec.md §4.1, semantic.cpp visitExtDef).
func (a *Analyzer) visitExtDef(n *ast.Node) {
	specifier := a.symbolFromSpecifier(n.Child(0))
	switch {
	case n.NumChildren() == 3 && n.Child(1).Op == ast.ExtDecList:
		for _, sym := range a.visitExtDecList(specifier, n.Child(1)) {
			a.insertVariable(sym, n.Line)
		}
	case n.NumChildren() == 3 && n.Child(1).Op == ast.FunDec:
		a.scope.Push()
		sym := a.visitFunDec(n.Child(1))
		sym.Type = specifier
		a.insertGlobal(sym, n.Line)
		prev := a.currentFunction
		a.currentFunction = sym
		a.visit(n.Child(2))
		a.currentFunction = prev
		a.scope.Pop()
	default:
		a.visitChildren(n)
	}
}

// visitCompSt pushes a fresh scope, processes the leading DefList if
// present, then recurses into every child generically — reaching the
// StmtList and, through it, nested Stmt/Exp/CompSt nodes.
func (a *Analyzer) visitCompSt(n *ast.Node) {
	a.scope.Push()
	if def := n.Child(1); def != nil && def.Op == ast.DefList {
		a.visitDefList(def)
	}
	a.visitChildren(n)
	a.scope.Pop()
}
