package irgen

import (
	"splc/internal/ast"
	"splc/internal/ir"
)

// translateFunDec handles "ID LP RP" and "ID LP VarList RP", emitting
// the FUNCTION marker followed by one PARAM per formal in source
// order (ir_codegen.hpp translateFunDec).
func (g *Generator) translateFunDec(n *ast.Node) *ir.Instruction {
	c1 := ir.NewResult(ir.FunDec, ir.NewSymbol(n.Child(0).Str))
	if n.NumChildren() != 4 {
		return c1
	}
	var c2 *ir.Instruction
	for _, p := range g.translateVarList(n.Child(2)) {
		c2 = ir.Combine(c2, ir.NewResult(ir.Param, p))
	}
	return ir.Combine(c1, c2)
}

// translateVarList resolves each formal parameter's Value in source
// order, registering array shapes along the way via findArrayValue.
func (g *Generator) translateVarList(n *ast.Node) []*ir.Value {
	var out []*ir.Value
	for n != nil {
		paramDec := n.Child(0)
		out = append(out, g.findArrayValue(paramDec.Child(1)))
		if n.NumChildren() == 1 {
			break
		}
		n = n.Child(2)
	}
	return out
}
