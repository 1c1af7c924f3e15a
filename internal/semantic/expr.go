package semantic

import (
	"splc/internal/ast"
	"splc/internal/diag"
)

func (a *Analyzer) checkVariable(name string, line int) *Symbol {
	sym := a.scope.LookupVariable(name)
	if sym == nil {
		a.sink.Report(diag.UndeclaredVariable, line, "variable is used without definition")
	}
	return sym
}

func (a *Analyzer) checkFunction(name string, line int) *Symbol {
	sym := a.scope.LookupGlobal(name)
	if sym == nil {
		a.sink.Report(diag.UndeclaredFunction, line, "function is invoked without definition")
	}
	return sym
}

// visitExp type-checks one expression node and returns its ExprType,
// dispatching on child count the way semantic.cpp's visitExp does,
// then — where child count alone doesn't disambiguate — on the
// concrete grammar shape (spec.md §4.2).
func (a *Analyzer) visitExp(n *ast.Node) ExprType {
	switch n.NumChildren() {
	case 4:
		if n.Child(0).Op == ast.ID {
			return a.visitCall(n)
		}
		return a.visitIndex(n)
	case 3:
		switch {
		case n.Child(1).Op == ast.Assign:
			return a.visitAssign(n)
		case n.Child(0).Op == ast.Exp && n.Child(2).Op == ast.Exp:
			return a.visitBinOp(n)
		case n.Child(1).Op == ast.Dot:
			return a.visitFieldAccess(n)
		case n.Child(0).Op == ast.ID && n.Child(1).Op == ast.Lp:
			return a.visitCallNoArgs(n)
		case n.Child(0).Op == ast.Lp:
			return a.visitExp(n.Child(1))
		}
	case 2:
		return a.visitUnary(n)
	case 1:
		return a.visitLeaf(n)
	}
	return Invalid()
}

// visitCall handles "ID LP Args RP".
func (a *Analyzer) visitCall(n *ast.Node) ExprType {
	ptr := a.checkFunction(n.Child(0).Str, n.Line)
	if ptr == nil {
		return Invalid()
	}
	if ptr.Kind != FunctionKind {
		a.sink.Report(diag.CallOnNonFunction, n.Line, "invoke function operator on non-function names")
		return Invalid()
	}
	args := a.visitArgs(n.Child(2))
	match := len(args) == len(ptr.Params)
	if match {
		for i := range args {
			if !a.typesEqual(args[i], RValue(ptr.Params[i])) {
				match = false
				break
			}
		}
	}
	if !match {
		a.sink.Report(diag.ArgumentMismatch, n.Line, "function's arguments mismatch the declared arguments")
		return Invalid()
	}
	return RValue(ptr.Type)
}

// visitIndex handles "Exp LB Exp RB". Both checks below run
// unconditionally against the raw type string, regardless of Valid —
// matching semantic.cpp's visitExp, which does not guard this pair of
// checks with a validity test the way the assignment and binop checks
// do, so an already-invalid array expression still raises "indexing on
// non-array" here.
func (a *Analyzer) visitIndex(n *ast.Node) ExprType {
	arrayType := a.visitExp(n.Child(0))
	indexType := a.visitExp(n.Child(2))
	ok := true
	if !arrayType.IsArray() {
		a.sink.Report(diag.IndexOnNonArray, n.Line, "indexing on non-array")
		ok = false
	}
	if indexType.Type != "int" {
		a.sink.Report(diag.IndexByNonInteger, n.Line, "indexing by non-integer")
		ok = false
	}
	if !ok {
		return Invalid()
	}
	return LValueOf(popArrayBracket(arrayType.Type))
}

// visitAssign handles "Exp ASSIGN Exp".
func (a *Analyzer) visitAssign(n *ast.Node) ExprType {
	ltype := a.visitExp(n.Child(0))
	rtype := a.visitExp(n.Child(2))
	if !a.typesEqual(ltype, rtype) {
		a.sink.Report(diag.AssignTypeMismatch, n.Line, "unmatching types on both sides of assignment")
		return Invalid()
	}
	if ltype.Valid && rtype.Valid && !ltype.LValue {
		a.sink.Report(diag.AssignToRValue, n.Line, "rvalue on the left side of assignment")
		return Invalid()
	}
	return RValue(ltype.Type)
}

// visitBinOp handles every "Exp OP Exp" form that isn't an assignment:
// boolean, arithmetic, and comparison operators each get their own
// operand-class check once the two sides are confirmed type-equal.
func (a *Analyzer) visitBinOp(n *ast.Node) ExprType {
	ltype := a.visitExp(n.Child(0))
	rtype := a.visitExp(n.Child(2))
	if !a.typesEqual(ltype, rtype) {
		a.sink.Report(diag.OperandTypeMismatch, n.Line, "unmatching operands on both sides of operator")
		return Invalid()
	}
	if ltype.Valid && rtype.Valid {
		switch n.Child(1).Op {
		case ast.And, ast.Or:
			if !ltype.IsInt() || !rtype.IsInt() {
				a.sink.Report(diag.NonIntegralBoolOperand, n.Line, "non-integral boolean operation")
			}
		case ast.Plus, ast.Minus, ast.Mul, ast.Div:
			if !ltype.IsIntOrFloat() || !rtype.IsIntOrFloat() {
				a.sink.Report(diag.NonNumericArithOperand, n.Line, "non-numeral arithmetic operation")
			}
		default:
			if ltype.IsChar() || rtype.IsChar() {
				a.sink.Report(diag.CharInComparison, n.Line, "char in binary operation")
			}
		}
	}
	return RValue(ltype.Type)
}

// visitFieldAccess handles "Exp DOT ID". ltype.Type names either a
// primitive or a struct tag; looking it up in the global scope finds
// the struct definition when it is one (structs are only ever
// inserted there) without needing a dummy placeholder for the
// primitive names the way semantic.cpp's reuse of check_variable does.
func (a *Analyzer) visitFieldAccess(n *ast.Node) ExprType {
	ltype := a.visitExp(n.Child(0))
	field := n.Child(2).Str
	ptr := a.scope.LookupGlobal(ltype.Type)
	if ptr != nil {
		if ptr.Kind != StructDefKind {
			a.sink.Report(diag.FieldOnNonStruct, n.Line, "accessing member of non-struct variables")
			return Invalid()
		}
		for _, m := range ptr.Members {
			if m.Name == field {
				return LValueOf(m.Type)
			}
		}
		a.sink.Report(diag.UndeclaredField, n.Line, "accessing an undefined struct member")
		return Invalid()
	}
	if ltype.Valid {
		a.sink.Report(diag.FieldOnNonStruct, n.Line, "accessing member of non-struct variables")
	}
	return Invalid()
}

// visitCallNoArgs handles "ID LP RP".
func (a *Analyzer) visitCallNoArgs(n *ast.Node) ExprType {
	ptr := a.checkFunction(n.Child(0).Str, n.Line)
	if ptr == nil {
		return Invalid()
	}
	if ptr.Kind != FunctionKind {
		a.sink.Report(diag.CallOnNonFunction, n.Line, "invoking function operator on non-function names")
		return Invalid()
	}
	if len(ptr.Params) != 0 {
		a.sink.Report(diag.ArgumentMismatch, n.Line, "function's arguments mismatch the declared arguments")
		return Invalid()
	}
	return RValue(ptr.Type)
}

// visitUnary handles "MINUS Exp" and "NOT Exp". The result is never an
// l-value even when the operand was one.
func (a *Analyzer) visitUnary(n *ast.Node) ExprType {
	t := a.visitExp(n.Child(1))
	if t.Valid {
		switch n.Child(0).Op {
		case ast.Not:
			if !t.IsInt() {
				a.sink.Report(diag.NonIntegralBoolOperand, n.Line, "non-integral boolean operation")
			}
		case ast.Minus:
			if !t.IsIntOrFloat() {
				a.sink.Report(diag.NonNumericArithOperand, n.Line, "non-numeral arithmetic operation")
			}
		}
	}
	t.LValue = false
	return t
}

// visitLeaf handles the four single-child Exp forms: ID and the three
// literal kinds.
func (a *Analyzer) visitLeaf(n *ast.Node) ExprType {
	c := n.Child(0)
	switch c.Op {
	case ast.ID:
		ptr := a.checkVariable(c.Str, n.Line)
		if ptr == nil {
			return Invalid()
		}
		return LValueOf(ptr.Type)
	case ast.IntConst:
		return RValue("int")
	case ast.FloatConst:
		return RValue("float")
	case ast.CharConst:
		return RValue("char")
	}
	return Invalid()
}

func (a *Analyzer) visitArgs(n *ast.Node) []ExprType {
	var out []ExprType
	for _, e := range flattenCommaList(n) {
		out = append(out, a.visitExp(e))
	}
	return out
}
