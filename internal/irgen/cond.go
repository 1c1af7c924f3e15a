package irgen

import (
	"splc/internal/ast"
	"splc/internal/ir"
)

// relopFor maps a comparison operator token to its IR relop.
func relopFor(op ast.Op) ir.OpCode {
	switch op {
	case ast.Lt:
		return ir.Lt
	case ast.Le:
		return ir.Le
	case ast.Gt:
		return ir.Gt
	case ast.Ge:
		return ir.Ge
	case ast.Ne:
		return ir.Ne
	case ast.Eq:
		return ir.Eq
	default:
		return ir.Nop
	}
}

// isConditional reports whether op is a short-circuiting or relational
// operator, i.e. one translateBinOp routes through translateCondExp
// rather than emitting a plain arithmetic instruction.
func isConditional(op ast.Op) bool {
	switch op {
	case ast.And, ast.Or, ast.Lt, ast.Le, ast.Gt, ast.Ge, ast.Ne, ast.Eq:
		return true
	default:
		return false
	}
}

// translateCondExp lowers exp as a branch: control falls to lbTrue if
// exp holds, lbFalse otherwise. exp is either a 2-child "NOT Exp" node
// (handled by swapping the two labels and recursing on the operand) or
// a 3-child "Exp OP Exp" node, grounded on ir_codegen.hpp's
// translateCondExp. Dispatching on shape rather than re-reading
// exp.Child(1).Op after already committing to the AND/OR/relop switch
// means a NOT node routed in from translateExp's unary case (which
// passes the NOT node itself, not its operand) is handled correctly
// instead of reading an operator off what would be its Exp operand.
func (g *Generator) translateCondExp(exp *ast.Node, lbTrue, lbFalse *ir.Value) *ir.Instruction {
	if exp.NumChildren() == 2 {
		return g.translateCondExp(exp.Child(1), lbFalse, lbTrue)
	}

	switch exp.Child(1).Op {
	case ast.And:
		lb1 := g.ctx.MakeLabel()
		c1 := g.translateCondExp(exp.Child(0), lb1, lbFalse)
		c2 := ir.NewResult(ir.LabelOp, lb1)
		c3 := g.translateCondExp(exp.Child(2), lbTrue, lbFalse)
		return ir.Combine(ir.Combine(c1, c2), c3)

	case ast.Or:
		lb1 := g.ctx.MakeLabel()
		c1 := g.translateCondExp(exp.Child(0), lbTrue, lb1)
		c2 := ir.NewResult(ir.LabelOp, lb1)
		c3 := g.translateCondExp(exp.Child(2), lbTrue, lbFalse)
		return ir.Combine(ir.Combine(c1, c2), c3)

	default:
		t1, t2 := g.ctx.MakeTemp(), g.ctx.MakeTemp()
		c1, rt1 := g.translateExp(exp.Child(0), t1)
		c2, rt2 := g.translateExp(exp.Child(2), t2)
		c3 := ir.NewRelop(ir.IfGoto, rt1, rt2, lbTrue, relopFor(exp.Child(1).Op))
		c4 := ir.NewResult(ir.Goto, lbFalse)
		return ir.Combine(ir.Combine(ir.Combine(c1, c2), c3), c4)
	}
}
