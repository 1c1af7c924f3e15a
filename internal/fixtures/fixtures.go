// Package fixtures builds ast.Node trees by hand, standing in for the
// external lexer/parser (spec.md §1 Non-goals) so the core packages'
// tests can exercise realistic programs without one.
package fixtures

import "splc/internal/ast"

func marker(op ast.Op, line int) *ast.Node { return ast.New(op, line) }

// Program wraps a list of ExtDef nodes in the Program/ExtDefList spine.
func Program(defs ...*ast.Node) *ast.Node {
	p := ast.New(ast.Program, 0)
	p.Append(buildRightAssocOpt(ast.ExtDefList, defs))
	return p
}

func buildRightAssocOpt(op ast.Op, items []*ast.Node) *ast.Node {
	n := ast.New(op, 0)
	if len(items) == 0 {
		return n
	}
	n.Append(items[0], buildRightAssocOpt(op, items[1:]))
	return n
}

// --- specifiers ---

func SpecInt(line int) *ast.Node   { n := ast.New(ast.Specifier, line); n.Val = ast.TypeInt; return n }
func SpecFloat(line int) *ast.Node { n := ast.New(ast.Specifier, line); n.Val = ast.TypeFloat; return n }
func SpecChar(line int) *ast.Node  { n := ast.New(ast.Specifier, line); n.Val = ast.TypeChar; return n }

// SpecStruct builds a struct definition specifier: "STRUCT ID LC DefList RC".
func SpecStruct(line int, tag string, fields ...*ast.Node) *ast.Node {
	spec := ast.New(ast.Specifier, line)
	ss := ast.New(ast.StructSpecifier, line)
	ss.Append(marker(ast.StructTag, line), ast.NewID(tag, line), marker(ast.Lc, line),
		buildRightAssocOpt(ast.DefList, fields), marker(ast.Rc, line))
	spec.Append(ss)
	return spec
}

// SpecStructRef builds a struct reference specifier: "STRUCT ID".
func SpecStructRef(line int, tag string) *ast.Node {
	spec := ast.New(ast.Specifier, line)
	ss := ast.New(ast.StructSpecifier, line)
	ss.Append(marker(ast.StructTag, line), ast.NewID(tag, line))
	spec.Append(ss)
	return spec
}

// Field builds one "Specifier DecList" member declaration for a
// struct body (no SEMI terminal is appended).
func Field(line int, spec *ast.Node, decs ...*ast.Node) *ast.Node {
	def := ast.New(ast.Def, line)
	def.Append(spec, buildDecList(line, decs))
	return def
}

// --- declarators ---

// VarDecID builds a plain "ID" declarator.
func VarDecID(line int, name string) *ast.Node {
	vd := ast.New(ast.VarDec, line)
	vd.Append(ast.NewID(name, line))
	return vd
}

// VarDecArray wraps inner with one more "[size]" dimension.
func VarDecArray(line int, inner *ast.Node, size int) *ast.Node {
	vd := ast.New(ast.VarDec, line)
	vd.Append(inner, marker(ast.Lb, line), ast.NewInt(size, line), marker(ast.Rb, line))
	return vd
}

// Dec wraps a declarator with no initializer.
func Dec(line int, vardec *ast.Node) *ast.Node {
	d := ast.New(ast.Dec, line)
	d.Append(vardec)
	return d
}

// DecInit wraps a declarator with an initializer expression.
func DecInit(line int, vardec, init *ast.Node) *ast.Node {
	d := ast.New(ast.Dec, line)
	d.Append(vardec, marker(ast.Assign, line), init)
	return d
}

func buildDecList(line int, decs []*ast.Node) *ast.Node {
	if len(decs) == 1 {
		n := ast.New(ast.DecList, line)
		n.Append(decs[0])
		return n
	}
	n := ast.New(ast.DecList, line)
	n.Append(decs[0], marker(ast.Comma, line), buildDecList(line, decs[1:]))
	return n
}

// Def builds one "Specifier DecList" local/global declaration (no SEMI
// terminal is appended).
func Def(line int, spec *ast.Node, decs ...*ast.Node) *ast.Node {
	def := ast.New(ast.Def, line)
	def.Append(spec, buildDecList(line, decs))
	return def
}

// ExtDefVar builds a top-level "Specifier ExtDecList SEMI" declaration.
func ExtDefVar(line int, spec *ast.Node, vardecs ...*ast.Node) *ast.Node {
	ed := ast.New(ast.ExtDef, line)
	ed.Append(spec, buildExtDecList(line, vardecs), marker(ast.Semi, line))
	return ed
}

// ExtDefStruct builds a top-level struct-only declaration: "Specifier SEMI".
func ExtDefStruct(line int, spec *ast.Node) *ast.Node {
	ed := ast.New(ast.ExtDef, line)
	ed.Append(spec, marker(ast.Semi, line))
	return ed
}

func buildExtDecList(line int, vardecs []*ast.Node) *ast.Node {
	if len(vardecs) == 1 {
		n := ast.New(ast.ExtDecList, line)
		n.Append(vardecs[0])
		return n
	}
	n := ast.New(ast.ExtDecList, line)
	n.Append(vardecs[0], marker(ast.Comma, line), buildExtDecList(line, vardecs[1:]))
	return n
}

// --- functions ---

// ParamDec builds one "Specifier VarDec" formal parameter.
func ParamDec(line int, spec, vardec *ast.Node) *ast.Node {
	pd := ast.New(ast.ParamDec, line)
	pd.Append(spec, vardec)
	return pd
}

func buildVarList(line int, params []*ast.Node) *ast.Node {
	if len(params) == 1 {
		n := ast.New(ast.VarList, line)
		n.Append(params[0])
		return n
	}
	n := ast.New(ast.VarList, line)
	n.Append(params[0], marker(ast.Comma, line), buildVarList(line, params[1:]))
	return n
}

// FunDec builds "ID LP RP" (no params) or "ID LP VarList RP".
func FunDec(line int, name string, params ...*ast.Node) *ast.Node {
	fd := ast.New(ast.FunDec, line)
	if len(params) == 0 {
		fd.Append(ast.NewID(name, line), marker(ast.Lp, line), marker(ast.Rp, line))
	} else {
		fd.Append(ast.NewID(name, line), marker(ast.Lp, line), buildVarList(line, params), marker(ast.Rp, line))
	}
	return fd
}

// CompSt builds a compound statement: "LC DefList StmtList RC".
func CompSt(line int, defs []*ast.Node, stmts []*ast.Node) *ast.Node {
	cs := ast.New(ast.CompSt, line)
	cs.Append(marker(ast.Lc, line), buildRightAssocOpt(ast.DefList, defs),
		buildRightAssocOpt(ast.StmtList, stmts), marker(ast.Rc, line))
	return cs
}

// ExtDefFunc builds a top-level function definition: "Specifier FunDec CompSt".
func ExtDefFunc(line int, spec, fundec, compst *ast.Node) *ast.Node {
	ed := ast.New(ast.ExtDef, line)
	ed.Append(spec, fundec, compst)
	return ed
}

// --- statements ---

func StmtExp(line int, e *ast.Node) *ast.Node {
	s := ast.New(ast.Stmt, line)
	s.Append(e, marker(ast.Semi, line))
	return s
}

func StmtReturn(line int, e *ast.Node) *ast.Node {
	s := ast.New(ast.Stmt, line)
	s.Append(marker(ast.Return, line), e, marker(ast.Semi, line))
	return s
}

func StmtCompSt(compst *ast.Node) *ast.Node {
	s := ast.New(ast.Stmt, compst.Line)
	s.Append(compst)
	return s
}

func StmtIf(line int, cond, then *ast.Node) *ast.Node {
	s := ast.New(ast.Stmt, line)
	s.Append(marker(ast.If, line), marker(ast.Lp, line), cond, marker(ast.Rp, line), then)
	return s
}

func StmtIfElse(line int, cond, then, els *ast.Node) *ast.Node {
	s := ast.New(ast.Stmt, line)
	s.Append(marker(ast.If, line), marker(ast.Lp, line), cond, marker(ast.Rp, line), then,
		marker(ast.Else, line), els)
	return s
}

func StmtWhile(line int, cond, body *ast.Node) *ast.Node {
	s := ast.New(ast.Stmt, line)
	s.Append(marker(ast.While, line), marker(ast.Lp, line), cond, marker(ast.Rp, line), body)
	return s
}

func StmtDoWhile(line int, body, cond *ast.Node) *ast.Node {
	s := ast.New(ast.Stmt, line)
	s.Append(marker(ast.Do, line), body, marker(ast.While, line), marker(ast.Lp, line), cond,
		marker(ast.Rp, line), marker(ast.Semi, line))
	return s
}

func StmtFor(line int, init, cond, post, body *ast.Node) *ast.Node {
	s := ast.New(ast.Stmt, line)
	s.Append(marker(ast.For, line), marker(ast.Lp, line), init, marker(ast.Semi, line), cond,
		marker(ast.Semi, line), post, marker(ast.Rp, line), body)
	return s
}

func StmtBreak(line int) *ast.Node {
	s := ast.New(ast.Stmt, line)
	s.Append(marker(ast.Break, line), marker(ast.Semi, line))
	return s
}

func StmtContinue(line int) *ast.Node {
	s := ast.New(ast.Stmt, line)
	s.Append(marker(ast.Continue, line), marker(ast.Semi, line))
	return s
}

// --- expressions ---

func ExpID(line int, name string) *ast.Node {
	e := ast.New(ast.Exp, line)
	e.Append(ast.NewID(name, line))
	return e
}

func ExpInt(line, v int) *ast.Node {
	e := ast.New(ast.Exp, line)
	e.Append(ast.NewInt(v, line))
	return e
}

func ExpFloat(line int, text string) *ast.Node {
	e := ast.New(ast.Exp, line)
	e.Append(ast.NewFloat(text, line))
	return e
}

func ExpChar(line int, text string) *ast.Node {
	e := ast.New(ast.Exp, line)
	e.Append(ast.NewChar(text, line))
	return e
}

func ExpAssign(line int, l, r *ast.Node) *ast.Node {
	e := ast.New(ast.Exp, line)
	e.Append(l, marker(ast.Assign, line), r)
	return e
}

// ExpBin builds "Exp op Exp" for any binary operator Op (Plus, Lt, And, ...).
func ExpBin(line int, op ast.Op, l, r *ast.Node) *ast.Node {
	e := ast.New(ast.Exp, line)
	e.Append(l, marker(op, line), r)
	return e
}

// ExpUnary builds "op Exp" for Minus or Not.
func ExpUnary(line int, op ast.Op, operand *ast.Node) *ast.Node {
	e := ast.New(ast.Exp, line)
	e.Append(marker(op, line), operand)
	return e
}

func ExpIndex(line int, arr, idx *ast.Node) *ast.Node {
	e := ast.New(ast.Exp, line)
	e.Append(arr, marker(ast.Lb, line), idx, marker(ast.Rb, line))
	return e
}

func ExpDot(line int, l *ast.Node, field string) *ast.Node {
	e := ast.New(ast.Exp, line)
	e.Append(l, marker(ast.Dot, line), ast.NewID(field, line))
	return e
}

func buildArgs(line int, args []*ast.Node) *ast.Node {
	if len(args) == 1 {
		n := ast.New(ast.Args, line)
		n.Append(args[0])
		return n
	}
	n := ast.New(ast.Args, line)
	n.Append(args[0], marker(ast.Comma, line), buildArgs(line, args[1:]))
	return n
}

func ExpCall(line int, name string, args ...*ast.Node) *ast.Node {
	e := ast.New(ast.Exp, line)
	if len(args) == 0 {
		e.Append(ast.NewID(name, line), marker(ast.Lp, line), marker(ast.Rp, line))
	} else {
		e.Append(ast.NewID(name, line), marker(ast.Lp, line), buildArgs(line, args), marker(ast.Rp, line))
	}
	return e
}

func ExpParen(line int, inner *ast.Node) *ast.Node {
	e := ast.New(ast.Exp, line)
	e.Append(marker(ast.Lp, line), inner, marker(ast.Rp, line))
	return e
}
