package irgen

import "splc/internal/ast"
import "splc/internal/ir"

// translateArray lowers the address of one array-element reference
// into temp, returning the Array shape and the 0-based bracket depth
// this node sits at within it — callers one level up use both to
// compute the next dimension's stride (ir_codegen.hpp translateArray).
//
// Base case: exp is a bare array name or an integer constant used as a
// base address (only ever reached through the Exp_ExpLBExpRB recursion
// below, never directly from translateExp). A parameter array already
// holds its own address, so it is MOVEd rather than LOADADDR'd.
func (g *Generator) translateArray(exp *ast.Node, temp *ir.Value) (code *ir.Instruction, arr *ir.Array, depth int) {
	if exp.NumChildren() == 1 {
		if exp.Child(0).Op == ast.IntConst {
			return ir.NewArg1(ir.Move, ir.NewConst(exp.Child(0).Val), temp), nil, 0
		}
		name := exp.Child(0).Str
		arr = g.ctx.ArrayByName(name)
		if arr != nil && arr.Param {
			code = ir.NewArg1(ir.Move, g.ctx.LookupVariable(name), temp)
		} else {
			code = ir.NewArg1(ir.LoadAddr, g.ctx.LookupVariable(name), temp)
		}
		return code, arr, 0
	}

	addr := g.ctx.MakePointer()
	offset := g.ctx.MakePointer()
	c1, innerArr, innerDepth := g.translateArray(exp.Child(0), addr)
	c2, roffset := g.translateExp(exp.Child(2), offset)
	c3 := ir.NewBin(ir.Mul, roffset, ir.NewConst(innerArr.Sizes[innerDepth]), roffset)
	c4 := ir.NewBin(ir.Add, addr, roffset, addr)
	c5 := ir.NewArg1(ir.Move, addr, temp)
	code = ir.Combine(ir.Combine(ir.Combine(ir.Combine(c1, c2), c3), c4), c5)
	return code, innerArr, innerDepth + 1
}

// findArrayValue resolves one formal parameter's Value, registering it
// as an array (without emitting the ALLOC that a local declaration
// would get, since the caller already owns the storage) when its
// VarDec nests at least one "[N]" level, grounded on ir_codegen.hpp's
// findArrayValue.
func (g *Generator) findArrayValue(vardec *ast.Node) *ir.Value {
	outer := vardec
	inner := vardec
	isArray := false
	for inner.Child(0).Op != ast.ID {
		inner = inner.Child(0)
		isArray = true
	}
	if isArray {
		g.translateVarDec(outer, true)
	}
	return g.ctx.LookupVariable(inner.Child(0).Str)
}

// translateVarDec registers a local or parameter array's shape and, for
// a local, emits the ALLOC reserving its storage. A scalar VarDec has
// no dimensions and lowers to no code.
func (g *Generator) translateVarDec(n *ast.Node, param bool) *ir.Instruction {
	arr := ir.NewArrayFromVarDec(n)
	if len(arr.Dimensions) == 0 {
		return nil
	}
	arr.ComputeSizes()
	arr.Param = param
	val := g.ctx.LookupVariable(arr.Name)
	g.ctx.RegisterArray(val, arr)
	if param {
		return nil
	}
	c := ir.NewResult(ir.Alloc, val)
	c.Size = arr.TotalSize()
	return c
}

// translateDec lowers one "VarDec" or "VarDec ASSIGN Exp" declaration.
// An initializer only ever targets a plain scalar declarator — array
// declarators can't carry one in this grammar — so the destination is
// always the innermost declared name directly (ir_codegen.hpp
// translateDec).
func (g *Generator) translateDec(n *ast.Node) *ir.Instruction {
	if n.NumChildren() == 3 {
		dest := g.ctx.LookupVariable(n.Child(0).Child(0).Str)
		code, _ := g.translateExp(n.Child(2), dest)
		return code
	}
	return g.translateVarDec(n.Child(0), false)
}
