package semantic_test

import (
	"testing"

	"splc/internal/ast"
	"splc/internal/diag"
	"splc/internal/fixtures"
	"splc/internal/semantic"
)

// mainReturning wraps stmts in "int main() { <stmts> }".
func mainReturning(stmts ...*ast.Node) *ast.Node {
	return fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, nil, stmts)),
	)
}

func classesOf(s *diag.Sink) []diag.Class {
	var out []diag.Class
	for _, d := range s.Diagnostics {
		out = append(out, d.Class)
	}
	return out
}

func expectClasses(t *testing.T, sink *diag.Sink, want ...diag.Class) {
	t.Helper()
	got := classesOf(sink)
	if len(got) != len(want) {
		t.Fatalf("diagnostics = %v, want classes %v", sink.Strings(), want)
	}
	for i, c := range want {
		if got[i] != c {
			t.Fatalf("diagnostic[%d] class = %d, want %d (%v)", i, got[i], c, sink.Strings())
		}
	}
}

func TestCleanProgramOk(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefStruct(1, fixtures.SpecStruct(1, "Point",
			fixtures.Field(1, fixtures.SpecInt(1), fixtures.Dec(1, fixtures.VarDecID(1, "x"))),
			fixtures.Field(1, fixtures.SpecInt(1), fixtures.Dec(1, fixtures.VarDecID(1, "y"))),
		)),
		fixtures.ExtDefVar(2, fixtures.SpecInt(2), fixtures.VarDecArray(2, fixtures.VarDecID(2, "nums"), 4)),
		fixtures.ExtDefFunc(3, fixtures.SpecInt(3), fixtures.FunDec(3, "addOne",
			fixtures.ParamDec(3, fixtures.SpecInt(3), fixtures.VarDecID(3, "n"))),
			fixtures.CompSt(3, nil, []*ast.Node{
				fixtures.StmtReturn(3, fixtures.ExpBin(3, ast.Plus, fixtures.ExpID(3, "n"), fixtures.ExpInt(3, 1))),
			})),
		fixtures.ExtDefFunc(4, fixtures.SpecInt(4), fixtures.FunDec(4, "main"),
			fixtures.CompSt(4, []*ast.Node{
				fixtures.Def(4, fixtures.SpecStructRef(4, "Point"), fixtures.Dec(4, fixtures.VarDecID(4, "p"))),
			}, []*ast.Node{
				fixtures.StmtExp(5, fixtures.ExpAssign(5, fixtures.ExpDot(5, fixtures.ExpID(5, "p"), "x"), fixtures.ExpInt(5, 1))),
				fixtures.StmtExp(6, fixtures.ExpAssign(6, fixtures.ExpIndex(6, fixtures.ExpID(6, "nums"), fixtures.ExpInt(6, 0)),
					fixtures.ExpCall(6, "addOne", fixtures.ExpInt(6, 1)))),
				fixtures.StmtReturn(7, fixtures.ExpInt(7, 0)),
			})),
	)
	sink := semantic.Analyze(prog)
	if !sink.Ok() {
		t.Fatalf("expected no diagnostics, got %v", sink.Strings())
	}
}

func TestUndeclaredVariable(t *testing.T) {
	prog := mainReturning(fixtures.StmtReturn(2, fixtures.ExpID(2, "x")))
	expectClasses(t, semantic.Analyze(prog), diag.UndeclaredVariable)
}

func TestUndeclaredFunction(t *testing.T) {
	prog := mainReturning(fixtures.StmtExp(2, fixtures.ExpCall(2, "foo")))
	expectClasses(t, semantic.Analyze(prog), diag.UndeclaredFunction)
}

func TestVariableRedefined(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, []*ast.Node{
				fixtures.Def(1, fixtures.SpecInt(1), fixtures.Dec(1, fixtures.VarDecID(1, "a"))),
				fixtures.Def(2, fixtures.SpecInt(2), fixtures.Dec(2, fixtures.VarDecID(2, "a"))),
			}, nil)),
	)
	expectClasses(t, semantic.Analyze(prog), diag.VariableRedefined)
}

func TestFunctionRedefined(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "foo"), fixtures.CompSt(1, nil, nil)),
		fixtures.ExtDefFunc(2, fixtures.SpecInt(2), fixtures.FunDec(2, "foo"), fixtures.CompSt(2, nil, nil)),
	)
	expectClasses(t, semantic.Analyze(prog), diag.FunctionRedefined)
}

func TestAssignTypeMismatch(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, []*ast.Node{
				fixtures.Def(1, fixtures.SpecInt(1), fixtures.Dec(1, fixtures.VarDecID(1, "a"))),
				fixtures.Def(1, fixtures.SpecFloat(1), fixtures.Dec(1, fixtures.VarDecID(1, "b"))),
			}, []*ast.Node{
				fixtures.StmtExp(2, fixtures.ExpAssign(2, fixtures.ExpID(2, "a"), fixtures.ExpID(2, "b"))),
			})),
	)
	expectClasses(t, semantic.Analyze(prog), diag.AssignTypeMismatch)
}

func TestAssignToRValue(t *testing.T) {
	prog := mainReturning(fixtures.StmtExp(2, fixtures.ExpAssign(2, fixtures.ExpInt(2, 5), fixtures.ExpInt(2, 3))))
	expectClasses(t, semantic.Analyze(prog), diag.AssignToRValue)
}

func TestOperandTypeMismatch(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, []*ast.Node{
				fixtures.Def(1, fixtures.SpecInt(1), fixtures.Dec(1, fixtures.VarDecID(1, "a"))),
				fixtures.Def(1, fixtures.SpecFloat(1), fixtures.Dec(1, fixtures.VarDecID(1, "b"))),
			}, []*ast.Node{
				fixtures.StmtExp(2, fixtures.ExpBin(2, ast.Plus, fixtures.ExpID(2, "a"), fixtures.ExpID(2, "b"))),
			})),
	)
	expectClasses(t, semantic.Analyze(prog), diag.OperandTypeMismatch)
}

func TestReturnTypeMismatch(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, nil, []*ast.Node{
				fixtures.StmtReturn(2, fixtures.ExpFloat(2, "1.0")),
			})),
	)
	expectClasses(t, semantic.Analyze(prog), diag.ReturnTypeMismatch)
}

func TestArgumentMismatch(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "foo",
			fixtures.ParamDec(1, fixtures.SpecInt(1), fixtures.VarDecID(1, "n"))),
			fixtures.CompSt(1, nil, []*ast.Node{fixtures.StmtReturn(1, fixtures.ExpID(1, "n"))})),
		fixtures.ExtDefFunc(2, fixtures.SpecInt(2), fixtures.FunDec(2, "main"),
			fixtures.CompSt(2, nil, []*ast.Node{
				fixtures.StmtExp(3, fixtures.ExpCall(3, "foo")),
			})),
	)
	expectClasses(t, semantic.Analyze(prog), diag.ArgumentMismatch)
}

func TestIndexOnNonArray(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, []*ast.Node{
				fixtures.Def(1, fixtures.SpecInt(1), fixtures.Dec(1, fixtures.VarDecID(1, "a"))),
			}, []*ast.Node{
				fixtures.StmtExp(2, fixtures.ExpIndex(2, fixtures.ExpID(2, "a"), fixtures.ExpInt(2, 0))),
			})),
	)
	expectClasses(t, semantic.Analyze(prog), diag.IndexOnNonArray)
}

func TestCallOnNonFunction(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefVar(1, fixtures.SpecInt(1), fixtures.VarDecID(1, "foo")),
		fixtures.ExtDefFunc(2, fixtures.SpecInt(2), fixtures.FunDec(2, "main"),
			fixtures.CompSt(2, nil, []*ast.Node{
				fixtures.StmtExp(3, fixtures.ExpCall(3, "foo")),
			})),
	)
	expectClasses(t, semantic.Analyze(prog), diag.CallOnNonFunction)
}

func TestIndexByNonInteger(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, []*ast.Node{
				fixtures.Def(1, fixtures.SpecInt(1), fixtures.Dec(1, fixtures.VarDecArray(1, fixtures.VarDecID(1, "a"), 3))),
			}, []*ast.Node{
				fixtures.StmtExp(2, fixtures.ExpIndex(2, fixtures.ExpID(2, "a"), fixtures.ExpFloat(2, "1.0"))),
			})),
	)
	expectClasses(t, semantic.Analyze(prog), diag.IndexByNonInteger)
}

func TestFieldOnNonStruct(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, []*ast.Node{
				fixtures.Def(1, fixtures.SpecInt(1), fixtures.Dec(1, fixtures.VarDecID(1, "a"))),
			}, []*ast.Node{
				fixtures.StmtExp(2, fixtures.ExpDot(2, fixtures.ExpID(2, "a"), "x")),
			})),
	)
	expectClasses(t, semantic.Analyze(prog), diag.FieldOnNonStruct)
}

func TestUndeclaredField(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefStruct(1, fixtures.SpecStruct(1, "Point",
			fixtures.Field(1, fixtures.SpecInt(1), fixtures.Dec(1, fixtures.VarDecID(1, "x"))))),
		fixtures.ExtDefFunc(2, fixtures.SpecInt(2), fixtures.FunDec(2, "main"),
			fixtures.CompSt(2, []*ast.Node{
				fixtures.Def(2, fixtures.SpecStructRef(2, "Point"), fixtures.Dec(2, fixtures.VarDecID(2, "p"))),
			}, []*ast.Node{
				fixtures.StmtExp(3, fixtures.ExpDot(3, fixtures.ExpID(3, "p"), "z")),
			})),
	)
	expectClasses(t, semantic.Analyze(prog), diag.UndeclaredField)
}

func TestStructRedefined(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefStruct(1, fixtures.SpecStruct(1, "Point",
			fixtures.Field(1, fixtures.SpecInt(1), fixtures.Dec(1, fixtures.VarDecID(1, "x"))))),
		fixtures.ExtDefStruct(2, fixtures.SpecStruct(2, "Point",
			fixtures.Field(2, fixtures.SpecInt(2), fixtures.Dec(2, fixtures.VarDecID(2, "y"))))),
	)
	expectClasses(t, semantic.Analyze(prog), diag.StructRedefined)
}

func TestUndeclaredStruct(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, []*ast.Node{
				fixtures.Def(1, fixtures.SpecStructRef(1, "Missing"), fixtures.Dec(1, fixtures.VarDecID(1, "p"))),
			}, nil)),
	)
	expectClasses(t, semantic.Analyze(prog), diag.UndeclaredStruct)
}

func TestNonIntegralBoolOperand(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, []*ast.Node{
				fixtures.Def(1, fixtures.SpecFloat(1), fixtures.Dec(1, fixtures.VarDecID(1, "a"))),
				fixtures.Def(1, fixtures.SpecFloat(1), fixtures.Dec(1, fixtures.VarDecID(1, "b"))),
			}, []*ast.Node{
				fixtures.StmtExp(2, fixtures.ExpBin(2, ast.And, fixtures.ExpID(2, "a"), fixtures.ExpID(2, "b"))),
			})),
	)
	expectClasses(t, semantic.Analyze(prog), diag.NonIntegralBoolOperand)
}

func TestNonNumericArithOperand(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, []*ast.Node{
				fixtures.Def(1, fixtures.SpecChar(1), fixtures.Dec(1, fixtures.VarDecID(1, "a"))),
				fixtures.Def(1, fixtures.SpecChar(1), fixtures.Dec(1, fixtures.VarDecID(1, "b"))),
			}, []*ast.Node{
				fixtures.StmtExp(2, fixtures.ExpBin(2, ast.Plus, fixtures.ExpID(2, "a"), fixtures.ExpID(2, "b"))),
			})),
	)
	expectClasses(t, semantic.Analyze(prog), diag.NonNumericArithOperand)
}

func TestCharInComparison(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, []*ast.Node{
				fixtures.Def(1, fixtures.SpecChar(1), fixtures.Dec(1, fixtures.VarDecID(1, "a"))),
				fixtures.Def(1, fixtures.SpecChar(1), fixtures.Dec(1, fixtures.VarDecID(1, "b"))),
			}, []*ast.Node{
				fixtures.StmtExp(2, fixtures.ExpBin(2, ast.Lt, fixtures.ExpID(2, "a"), fixtures.ExpID(2, "b"))),
			})),
	)
	expectClasses(t, semantic.Analyze(prog), diag.CharInComparison)
}

func TestErrorsDoNotStopTraversal(t *testing.T) {
	prog := fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, nil, []*ast.Node{
				fixtures.StmtExp(2, fixtures.ExpID(2, "x")),
				fixtures.StmtExp(3, fixtures.ExpID(3, "y")),
			})),
	)
	expectClasses(t, semantic.Analyze(prog), diag.UndeclaredVariable, diag.UndeclaredVariable)
}
