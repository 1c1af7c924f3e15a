package irgen

import (
	"splc/internal/ast"
	"splc/internal/ir"
)

// translateExp lowers exp's value into temp, dispatching on child
// count and then on concrete shape the way ir_codegen.hpp's
// translateExp does. It returns the code to run and the Value that now
// holds the result: ordinarily that's temp itself, unchanged, but a
// bare identifier used where temp is a disposable Temp resolves
// directly to the variable's own Value instead — the caller must use
// the returned Value, not temp, for anything built afterward. This
// mirrors the source's Value*& out-parameter, which rebinds the
// caller's temp in exactly that one case to skip a redundant MOVE.
//
// Struct field access ("Exp DOT ID") has no case below and falls to
// the final no-op return, matching the original: struct-member
// addressing was never wired into IR generation, only into the
// semantic analyzer's type checking.
func (g *Generator) translateExp(exp *ast.Node, temp *ir.Value) (*ir.Instruction, *ir.Value) {
	switch {
	case exp.NumChildren() == 1 && exp.Child(0).Op == ast.IntConst:
		return ir.NewArg1(ir.Move, ir.NewConst(exp.Child(0).Val), temp), temp

	case exp.NumChildren() == 1 && exp.Child(0).Op == ast.ID:
		name := exp.Child(0).Str
		if temp.Kind == ir.Temp {
			return nil, g.ctx.LookupVariable(name)
		}
		return ir.NewArg1(ir.Move, g.ctx.LookupVariable(name), temp), temp

	case exp.NumChildren() == 3 && exp.Child(1).Op == ast.Assign:
		return g.translateAssign(exp, temp)

	case exp.NumChildren() == 3 && exp.Child(0).Op == ast.Exp && exp.Child(2).Op == ast.Exp:
		return g.translateBinOp(exp, temp)

	case exp.NumChildren() == 2 && exp.Child(0).Op == ast.Minus:
		c1, rt := g.translateExp(exp.Child(1), temp)
		c2 := ir.NewBin(ir.Minus, ir.NewConst(0), rt, rt)
		return ir.Combine(c1, c2), rt

	case exp.NumChildren() == 2 && exp.Child(0).Op == ast.Not:
		return g.materializeBool(exp, temp)

	case exp.NumChildren() == 3 && exp.Child(0).Op == ast.ID && exp.Child(1).Op == ast.Lp:
		return g.translateCallNoArgs(exp, temp)

	case exp.NumChildren() == 4 && exp.Child(0).Op == ast.ID:
		return g.translateCall(exp, temp)

	case exp.NumChildren() == 4:
		addr := g.ctx.MakePointer()
		c1, _, _ := g.translateArray(exp, addr)
		c2 := ir.NewArg1(ir.Load, addr, temp)
		return ir.Combine(c1, c2), temp

	case exp.NumChildren() == 3 && exp.Child(0).Op == ast.Lp:
		return g.translateExp(exp.Child(1), temp)
	}
	return nil, temp
}

// lookupVariableFromExp resolves an assignment's left-hand side: a bare
// name resolves directly, an indexed expression is wrapped as a
// Complex Value so translateAssign can hand its AST node to
// translateArray (ir.hpp's AST-overloaded lookupVariable).
func (g *Generator) lookupVariableFromExp(exp *ast.Node) *ir.Value {
	if exp.NumChildren() == 1 {
		return g.ctx.LookupVariable(exp.Child(0).Str)
	}
	return ir.NewComplex(exp)
}

// translateAssign handles "Exp ASSIGN Exp". Assigning into an array
// element computes the address and stores through it; the overall
// expression's Value is left as temp unchanged in that case — like the
// original, a nested "(a[i] = x) + 1" doesn't compute a meaningful
// value for the outer expression to consume, since that shape is
// unreachable from a well-typed program (an array element is never an
// operand, and no surrounding context other than a bare Stmt ever
// discards the assignment's own result anyway).
func (g *Generator) translateAssign(exp *ast.Node, temp *ir.Value) (*ir.Instruction, *ir.Value) {
	dest := g.lookupVariableFromExp(exp.Child(0))
	if dest.Kind == ir.Complex {
		addr := g.ctx.MakePointer()
		val := g.ctx.MakePointer()
		c1, _, _ := g.translateArray(dest.Node, addr)
		c2, rval := g.translateExp(exp.Child(2), val)
		c3 := ir.NewArg1(ir.Store, rval, addr)
		return ir.Combine(ir.Combine(c1, c2), c3), temp
	}
	return g.translateExp(exp.Child(2), dest)
}

// translateBinOp handles every "Exp OP Exp" shape that isn't an
// assignment. Relational and boolean operators materialize a 0/1 value
// through translateCondExp; arithmetic operators translate each side
// into its own fresh temp and emit the op directly.
func (g *Generator) translateBinOp(exp *ast.Node, temp *ir.Value) (*ir.Instruction, *ir.Value) {
	op := exp.Child(1).Op
	if isConditional(op) {
		return g.materializeBool(exp, temp)
	}
	t1, t2 := g.ctx.MakeTemp(), g.ctx.MakeTemp()
	c1, rt1 := g.translateExp(exp.Child(0), t1)
	c2, rt2 := g.translateExp(exp.Child(2), t2)
	c3 := ir.NewBin(arithOpFor(op), rt1, rt2, temp)
	return ir.Combine(ir.Combine(c1, c2), c3), temp
}

func arithOpFor(op ast.Op) ir.OpCode {
	switch op {
	case ast.Plus:
		return ir.Add
	case ast.Minus:
		return ir.Minus
	case ast.Mul:
		return ir.Mul
	case ast.Div:
		return ir.Div
	default:
		return ir.Nop
	}
}

// materializeBool lowers a relational/boolean expression or a "NOT Exp"
// into a 0/1 value in temp via the classic branch-to-constant pattern.
func (g *Generator) materializeBool(exp *ast.Node, temp *ir.Value) (*ir.Instruction, *ir.Value) {
	lb1, lb2 := g.ctx.MakeLabel(), g.ctx.MakeLabel()
	c1 := g.translateCondExp(exp, lb1, lb2)
	c2 := ir.NewResult(ir.LabelOp, lb1)
	c3 := ir.NewArg1(ir.Move, ir.NewConst(1), temp)
	c4 := ir.NewResult(ir.LabelOp, lb2)
	c5 := ir.NewArg1(ir.Move, ir.NewConst(0), temp)
	return ir.Combine(ir.Combine(ir.Combine(ir.Combine(c1, c2), c3), c4), c5), temp
}

// translateCallNoArgs handles "ID LP RP". "read" is the one builtin
// with no arguments.
func (g *Generator) translateCallNoArgs(exp *ast.Node, temp *ir.Value) (*ir.Instruction, *ir.Value) {
	name := exp.Child(0).Str
	if name == "read" {
		return ir.NewResult(ir.Read, temp), temp
	}
	return ir.NewArg1(ir.Call, ir.NewSymbol(name), temp), temp
}

// translateArgs flattens one "Args" comma chain into its per-argument
// code and resolved Values, in source order.
func (g *Generator) translateArgs(n *ast.Node) (*ir.Instruction, []*ir.Value) {
	t1 := g.ctx.MakeTemp()
	c1, rt1 := g.translateExp(n.Child(0), t1)
	if n.NumChildren() == 1 {
		return c1, []*ir.Value{rt1}
	}
	c2, rest := g.translateArgs(n.Child(2))
	return ir.Combine(c1, c2), append([]*ir.Value{rt1}, rest...)
}

// translateCall handles "ID LP Args RP". "write" is the one builtin
// taking exactly one argument; every other call emits an ARG per
// argument in reverse source order (the source-language calling
// convention this grammar assumes), LOADADDR'ing any argument that
// names a declared array so the callee receives its address rather
// than its first element's value.
func (g *Generator) translateCall(exp *ast.Node, temp *ir.Value) (*ir.Instruction, *ir.Value) {
	name := exp.Child(0).Str
	if name == "write" {
		c1, rt := g.translateExp(exp.Child(2).Child(0), temp)
		c2 := ir.NewResult(ir.Write, rt)
		return ir.Combine(c1, c2), rt
	}

	c1, args := g.translateArgs(exp.Child(2))
	var c2 *ir.Instruction
	for i := len(args) - 1; i >= 0; i-- {
		if _, ok := g.ctx.ArrayOf(args[i]); ok {
			addr := g.ctx.MakePointer()
			c2 = ir.Combine(c2, ir.NewArg1(ir.LoadAddr, args[i], addr))
			c2 = ir.Combine(c2, ir.NewResult(ir.Arg, addr))
		} else {
			c2 = ir.Combine(c2, ir.NewResult(ir.Arg, args[i]))
		}
	}
	c3 := ir.NewArg1(ir.Call, ir.NewSymbol(name), temp)
	return ir.Combine(ir.Combine(c1, c2), c3), temp
}
