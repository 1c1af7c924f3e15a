package iropt

import "splc/internal/ir"

// markUsed records that v's value is consumed somewhere, ignoring nil
// (an instruction missing an operand).
func markUsed(used map[*ir.Value]bool, v *ir.Value) {
	if v != nil {
		used[v] = true
	}
}

// UnusedValueElim removes every LABEL or value-producing instruction
// whose Result is never read anywhere else in the list (spec.md §5.2,
// ir_optimizer.hpp irUnusedValueOpt). IFGOTO/GOTO/ARG/RETURN/WRITE/
// STORE read their own Result as a value (a branch target, an
// argument, a stored-through address) rather than defining one, so
// those mark Result used too, alongside Arg1/Arg2. CALL's Result is a
// genuine assignment target like MOVE's — an unused call result lets
// the whole call, side effects included, fall to the second pass,
// matching the original's treatment of CALL as just another
// assign-class opcode.
func UnusedValueElim(head *ir.Instruction) {
	used := map[*ir.Value]bool{}
	for c := head; c != nil; c = c.Next {
		switch c.Opcode {
		case ir.IfGoto, ir.Goto, ir.Arg, ir.Return, ir.Write, ir.Store:
			markUsed(used, c.Result)
			markUsed(used, c.Arg1)
			markUsed(used, c.Arg2)
		case ir.LabelOp, ir.Nop:
		default:
			markUsed(used, c.Arg1)
			markUsed(used, c.Arg2)
		}
	}
	for c := head; c != nil; c = c.Next {
		if (c.Opcode == ir.LabelOp || ir.IsAssign(c.Opcode)) && !used[c.Result] {
			ir.Detach(c)
		}
	}
}
