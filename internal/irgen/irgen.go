// Package irgen lowers a semantically-checked ast.Node tree into the
// three-address ir.Instruction list of spec.md §3, one translation
// unit per ir.Context (ir_codegen.hpp).
package irgen

import (
	"splc/internal/ast"
	"splc/internal/ir"
)

// Generator holds the ir.Context a translation pass writes its fresh
// names and array-shape records into.
type Generator struct {
	ctx *ir.Context
}

func New(ctx *ir.Context) *Generator { return &Generator{ctx: ctx} }

// Generate lowers program's whole tree, threading nil continue/break
// targets at the top level (only reachable inside a loop body).
func Generate(ctx *ir.Context, program *ast.Node) *ir.Instruction {
	return New(ctx).translateCode(program, nil, nil)
}

// translateCode is the structural fallback dispatcher: EXP, FUNDEC,
// DEC and STMT nodes get their own lowering, everything else —
// Program, ExtDefList, ExtDef, CompSt, DefList, DecList, StmtList —
// is walked by combining each child's lowered code in order
// (ir_codegen.hpp translateCode).
func (g *Generator) translateCode(n *ast.Node, contLabel, breakLabel *ir.Value) *ir.Instruction {
	if n == nil {
		return nil
	}
	switch n.Op {
	case ast.Exp:
		t1 := g.ctx.MakeTemp()
		code, _ := g.translateExp(n, t1)
		return code
	case ast.FunDec:
		return g.translateFunDec(n)
	case ast.Dec:
		return g.translateDec(n)
	case ast.Stmt:
		return g.translateStmt(n, contLabel, breakLabel)
	default:
		var code *ir.Instruction
		for _, c := range n.Children {
			code = ir.Combine(code, g.translateCode(c, contLabel, breakLabel))
		}
		return code
	}
}

// translateStmt lowers one Stmt node. contLabel/breakLabel are the
// targets a nested "continue"/"break" jumps to; each loop form
// installs its own pair before recursing into its body.
func (g *Generator) translateStmt(n *ast.Node, contLabel, breakLabel *ir.Value) *ir.Instruction {
	if n.NumChildren() == 1 || n.NumChildren() == 2 {
		switch n.Child(0).Op {
		case ast.Continue:
			return ir.NewResult(ir.Goto, contLabel)
		case ast.Break:
			return ir.NewResult(ir.Goto, breakLabel)
		default:
			return g.translateCode(n.Child(0), contLabel, breakLabel)
		}
	}
	switch n.Child(0).Op {
	case ast.Return:
		t1 := g.ctx.MakeTemp()
		c1, rt1 := g.translateExp(n.Child(1), t1)
		c2 := ir.NewResult(ir.Return, rt1)
		return ir.Combine(c1, c2)

	case ast.If:
		if n.NumChildren() == 5 { // IF LP Exp RP Stmt
			lb1, lb2 := g.ctx.MakeLabel(), g.ctx.MakeLabel()
			c1 := g.translateCondExp(n.Child(2), lb1, lb2)
			c2 := ir.NewResult(ir.LabelOp, lb1)
			c3 := g.translateStmt(n.Child(4), contLabel, breakLabel)
			c4 := ir.NewResult(ir.LabelOp, lb2)
			return ir.Combine(ir.Combine(ir.Combine(c1, c2), c3), c4)
		}
		// IF LP Exp RP Stmt ELSE Stmt
		lb1, lb2, lb3 := g.ctx.MakeLabel(), g.ctx.MakeLabel(), g.ctx.MakeLabel()
		c1 := g.translateCondExp(n.Child(2), lb1, lb2)
		c2 := ir.NewResult(ir.LabelOp, lb1)
		c3 := g.translateStmt(n.Child(4), contLabel, breakLabel)
		c4 := ir.NewResult(ir.Goto, lb3)
		c5 := ir.NewResult(ir.LabelOp, lb2)
		c6 := g.translateStmt(n.Child(6), contLabel, breakLabel)
		c7 := ir.NewResult(ir.LabelOp, lb3)
		return ir.Combine(ir.Combine(ir.Combine(ir.Combine(ir.Combine(ir.Combine(c1, c2), c3), c4), c5), c6), c7)

	case ast.Do: // DO Stmt WHILE LP Exp RP SEMI
		lb1, lb2, lb3 := g.ctx.MakeLabel(), g.ctx.MakeLabel(), g.ctx.MakeLabel()
		c1 := ir.NewResult(ir.LabelOp, lb1)
		c2 := g.translateStmt(n.Child(1), lb2, lb3)
		c3 := ir.NewResult(ir.LabelOp, lb2)
		c4 := g.translateCondExp(n.Child(4), lb1, lb3)
		c5 := ir.NewResult(ir.Goto, lb1)
		c6 := ir.NewResult(ir.LabelOp, lb3)
		return ir.Combine(ir.Combine(ir.Combine(ir.Combine(ir.Combine(c1, c2), c3), c4), c5), c6)

	case ast.While:
		lb1, lb2, lb3 := g.ctx.MakeLabel(), g.ctx.MakeLabel(), g.ctx.MakeLabel()
		c1 := ir.NewResult(ir.LabelOp, lb1)
		c2 := g.translateCondExp(n.Child(2), lb2, lb3)
		c3 := ir.NewResult(ir.LabelOp, lb2)
		c4 := g.translateStmt(n.Child(4), lb1, lb3)
		c5 := ir.NewResult(ir.Goto, lb1)
		c6 := ir.NewResult(ir.LabelOp, lb3)
		return ir.Combine(ir.Combine(ir.Combine(ir.Combine(ir.Combine(c1, c2), c3), c4), c5), c6)

	case ast.For: // FOR LP Exp SEMI Exp SEMI Exp RP Stmt
		lb1, lb2, lb3 := g.ctx.MakeLabel(), g.ctx.MakeLabel(), g.ctx.MakeLabel()
		c00 := g.translateCode(n.Child(2), contLabel, breakLabel)
		c01 := g.translateCode(n.Child(6), contLabel, breakLabel)
		c1 := ir.Combine(c00, ir.NewResult(ir.LabelOp, lb1))
		var c2 *ir.Instruction
		if n.Child(4).Op != ast.Nop {
			c2 = g.translateCondExp(n.Child(4), lb2, lb3)
		}
		c3 := ir.NewResult(ir.LabelOp, lb2)
		c4 := ir.Combine(g.translateStmt(n.Child(8), lb1, lb3), c01)
		c5 := ir.NewResult(ir.Goto, lb1)
		c6 := ir.NewResult(ir.LabelOp, lb3)
		return ir.Combine(ir.Combine(ir.Combine(ir.Combine(ir.Combine(c1, c2), c3), c4), c5), c6)
	}
	return nil
}
