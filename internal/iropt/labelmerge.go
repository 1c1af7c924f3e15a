package iropt

import "splc/internal/ir"

// CoalesceLabels folds every run of adjacent LABELs into its first
// member, remapping every GOTO/IFGOTO target that pointed at a merged
// label (ir_optimizer.hpp irLabelOpt). A three-LABEL run converges to
// one survivor within a single call, rather than needing several
// optimizer passes to fully collapse — a stricter, output-equivalent
// version of the source's pairwise single-pass walk, since the fixed
// 100-iteration driver runs this to the same fixed point either way.
func CoalesceLabels(head *ir.Instruction) {
	remap := map[*ir.Value]*ir.Value{}
	for c := head; c != nil; {
		if c.Opcode == ir.LabelOp && c.Next != nil && c.Next.Opcode == ir.LabelOp {
			dead := c.Next
			remap[dead.Result] = c.Result
			c.Next = dead.Next
			if dead.Next != nil {
				dead.Next.Prev = c
			}
			continue
		}
		c = c.Next
	}
	if len(remap) == 0 {
		return
	}
	resolve := func(v *ir.Value) *ir.Value {
		for {
			r, ok := remap[v]
			if !ok {
				return v
			}
			v = r
		}
	}
	for c := head; c != nil; c = c.Next {
		if c.Opcode == ir.Goto || c.Opcode == ir.IfGoto {
			c.Result = resolve(c.Result)
		}
	}
}
