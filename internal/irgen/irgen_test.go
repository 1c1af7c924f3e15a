package irgen_test

import (
	"strings"
	"testing"

	"splc/internal/ast"
	"splc/internal/fixtures"
	"splc/internal/ir"
	"splc/internal/irgen"
)

func generate(t *testing.T, program *ast.Node) string {
	t.Helper()
	ctx := ir.NewContext()
	head := irgen.Generate(ctx, program)
	var b strings.Builder
	if err := ir.Fprint(&b, head); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	return b.String()
}

func opcodes(t *testing.T, program *ast.Node) []ir.OpCode {
	t.Helper()
	ctx := ir.NewContext()
	head := irgen.Generate(ctx, program)
	var ops []ir.OpCode
	for c := head; c != nil; c = c.Next {
		ops = append(ops, c.Opcode)
	}
	return ops
}

func mainReturning(defs []*ast.Node, stmts []*ast.Node) *ast.Node {
	return fixtures.Program(fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
		fixtures.CompSt(1, defs, stmts)))
}

// S1 — "int a; a = 1 + 2; write(a); return 0;" (spec.md §8 S1, before
// optimization folds the constants and drops the redundant moves).
func TestIntegerAssignmentAndWrite(t *testing.T) {
	prog := mainReturning(
		[]*ast.Node{fixtures.Def(2, fixtures.SpecInt(2), fixtures.Dec(2, fixtures.VarDecID(2, "a")))},
		[]*ast.Node{
			fixtures.StmtExp(3, fixtures.ExpAssign(3, fixtures.ExpID(3, "a"),
				fixtures.ExpBin(3, ast.Plus, fixtures.ExpInt(3, 1), fixtures.ExpInt(3, 2)))),
			fixtures.StmtExp(4, fixtures.ExpCall(4, "write", fixtures.ExpID(4, "a"))),
			fixtures.StmtReturn(5, fixtures.ExpInt(5, 0)),
		})

	got := generate(t, prog)
	want := "FUNCTION main :\n" +
		"t2 := #1\n" +
		"t3 := #2\n" +
		"v1 := t2 + t3\n" +
		"WRITE v1\n" +
		"t5 := #0\n" +
		"RETURN t5\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

// S2 — "if (x > 0 && x < 10) write(x); return 0;": AND must lower to
// two IFGOTOs, the first branching to a fresh label that gates the
// second, both ultimately sharing the same false label.
func TestShortCircuitAnd(t *testing.T) {
	cond := fixtures.ExpBin(2, ast.And,
		fixtures.ExpBin(2, ast.Gt, fixtures.ExpID(2, "x"), fixtures.ExpInt(2, 0)),
		fixtures.ExpBin(2, ast.Lt, fixtures.ExpID(2, "x"), fixtures.ExpInt(2, 10)))
	prog := fixtures.Program(fixtures.ExtDefFunc(1, fixtures.SpecInt(1),
		fixtures.FunDec(1, "f", fixtures.ParamDec(1, fixtures.SpecInt(1), fixtures.VarDecID(1, "x"))),
		fixtures.CompSt(1, nil, []*ast.Node{
			fixtures.StmtIf(2, cond, fixtures.StmtExp(2, fixtures.ExpCall(2, "write", fixtures.ExpID(2, "x")))),
			fixtures.StmtReturn(3, fixtures.ExpInt(3, 0)),
		})))

	ops := opcodes(t, prog)
	var ifGotos, labels int
	for _, op := range ops {
		switch op {
		case ir.IfGoto:
			ifGotos++
		case ir.LabelOp:
			labels++
		}
	}
	if ifGotos != 2 {
		t.Fatalf("expected 2 IFGOTOs for a short-circuit AND, got %d (ops=%v)", ifGotos, ops)
	}
	if labels < 2 {
		t.Fatalf("expected at least 2 LABELs, got %d", labels)
	}

	ctx := ir.NewContext()
	head := irgen.Generate(ctx, prog)
	var relops []ir.OpCode
	for c := head; c != nil; c = c.Next {
		if c.Opcode == ir.IfGoto {
			relops = append(relops, c.RelOp)
		}
	}
	if len(relops) != 2 || relops[0] != ir.Gt || relops[1] != ir.Lt {
		t.Fatalf("IFGOTO relops = %v, want [Gt Lt]", relops)
	}
}

// S3 — "int a[3][4]; a[i][j] = 7;": index lowering must scale the
// first index by the row stride (4*4=16 bytes) and the second by the
// element stride (4 bytes), then STORE through the computed address.
func TestTwoDimensionalArrayStore(t *testing.T) {
	arrDec := fixtures.VarDecArray(2, fixtures.VarDecArray(2, fixtures.VarDecID(2, "a"), 3), 4)
	prog := mainReturning(
		[]*ast.Node{
			fixtures.Def(2, fixtures.SpecInt(2), fixtures.Dec(2, arrDec)),
			fixtures.Def(2, fixtures.SpecInt(2), fixtures.Dec(2, fixtures.VarDecID(2, "i")), fixtures.Dec(2, fixtures.VarDecID(2, "j"))),
		},
		[]*ast.Node{
			fixtures.StmtExp(3, fixtures.ExpAssign(3,
				fixtures.ExpIndex(3, fixtures.ExpIndex(3, fixtures.ExpID(3, "a"), fixtures.ExpID(3, "i")), fixtures.ExpID(3, "j")),
				fixtures.ExpInt(3, 7))),
			fixtures.StmtReturn(4, fixtures.ExpInt(4, 0)),
		})

	ctx := ir.NewContext()
	head := irgen.Generate(ctx, prog)

	var alloc *ir.Instruction
	var muls []*ir.Instruction
	var store *ir.Instruction
	for c := head; c != nil; c = c.Next {
		switch c.Opcode {
		case ir.Alloc:
			alloc = c
		case ir.Mul:
			muls = append(muls, c)
		case ir.Store:
			store = c
		}
	}
	if alloc == nil || alloc.Size != 48 {
		t.Fatalf("expected a 48-byte ALLOC for a[3][4], got %v", alloc)
	}
	if len(muls) != 2 {
		t.Fatalf("expected 2 MUL instructions scaling each index, got %d", len(muls))
	}
	sawStride16, sawStride4 := false, false
	for _, m := range muls {
		if ir.IsConst(m.Arg2, 16) {
			sawStride16 = true
		}
		if ir.IsConst(m.Arg2, 4) {
			sawStride4 = true
		}
	}
	if !sawStride16 || !sawStride4 {
		t.Fatalf("expected strides 16 and 4 among %v", muls)
	}
	if store == nil {
		t.Fatal("expected a STORE instruction")
	}
	var storedSeven bool
	for c := head; c != store; c = c.Next {
		if c.Opcode == ir.Move && ir.IsConst(c.Arg1, 7) && c.Result == store.Arg1 {
			storedSeven = true
		}
	}
	if !storedSeven {
		t.Fatalf("expected STORE's value to trace back to a MOVE of the constant 7")
	}
}

// A plain function call passes its arguments as ARG instructions in
// reverse source order (the calling convention this grammar assumes).
func TestCallArgumentsEmitInReverseOrder(t *testing.T) {
	prog := mainReturning(nil, []*ast.Node{
		fixtures.StmtExp(2, fixtures.ExpCall(2, "add", fixtures.ExpInt(2, 1), fixtures.ExpInt(2, 2), fixtures.ExpInt(2, 3))),
		fixtures.StmtReturn(3, fixtures.ExpInt(3, 0)),
	})

	ctx := ir.NewContext()
	head := irgen.Generate(ctx, prog)

	constOf := map[*ir.Value]int{}
	var argVals []int
	for c := head; c != nil; c = c.Next {
		if c.Opcode == ir.Move && ir.IsConst(c.Arg1) {
			constOf[c.Result] = c.Arg1.Num
		}
		if c.Opcode == ir.Arg {
			argVals = append(argVals, constOf[c.Result])
		}
	}
	if len(argVals) != 3 || argVals[0] != 3 || argVals[1] != 2 || argVals[2] != 1 {
		t.Fatalf("ARG constants = %v, want [3 2 1]", argVals)
	}
}

// A unary "!x" used as a value (not a branch condition) still
// materializes through the same branch-to-0/1 pattern as a relational
// comparison.
func TestLogicalNotMaterializesBoolean(t *testing.T) {
	prog := mainReturning(
		[]*ast.Node{fixtures.Def(2, fixtures.SpecInt(2), fixtures.Dec(2, fixtures.VarDecID(2, "b")))},
		[]*ast.Node{
			fixtures.StmtExp(2, fixtures.ExpAssign(2, fixtures.ExpID(2, "b"),
				fixtures.ExpUnary(2, ast.Not, fixtures.ExpBin(2, ast.Gt, fixtures.ExpID(2, "x"), fixtures.ExpInt(2, 0))))),
			fixtures.StmtReturn(3, fixtures.ExpInt(3, 0)),
		})

	ops := opcodes(t, prog)
	counts := map[ir.OpCode]int{}
	for _, op := range ops {
		counts[op]++
	}
	if counts[ir.IfGoto] != 1 || counts[ir.LabelOp] != 2 || counts[ir.Move] < 2 {
		t.Fatalf("unexpected opcode mix for NOT materialization: %v", counts)
	}
}

// A function's own parameters are PARAM-declared in source order, even
// though plain call-site arguments are emitted in reverse.
func TestFunctionParamsInSourceOrder(t *testing.T) {
	prog := fixtures.Program(fixtures.ExtDefFunc(1, fixtures.SpecInt(1),
		fixtures.FunDec(1, "f",
			fixtures.ParamDec(1, fixtures.SpecInt(1), fixtures.VarDecID(1, "x")),
			fixtures.ParamDec(1, fixtures.SpecInt(1), fixtures.VarDecID(1, "y"))),
		fixtures.CompSt(1, nil, []*ast.Node{fixtures.StmtReturn(1, fixtures.ExpID(1, "x"))})))

	ctx := ir.NewContext()
	head := irgen.Generate(ctx, prog)
	var params []*ir.Value
	for c := head; c != nil; c = c.Next {
		if c.Opcode == ir.Param {
			params = append(params, c.Result)
		}
	}
	if len(params) != 2 {
		t.Fatalf("expected 2 PARAMs, got %d", len(params))
	}
	if params[0] != ctx.LookupVariable("x") || params[1] != ctx.LookupVariable("y") {
		t.Fatalf("PARAM order does not match source declaration order")
	}
}
