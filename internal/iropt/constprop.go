package iropt

import "splc/internal/ir"

// ConstantPropagate folds constant arithmetic and algebraic identities
// in place, then substitutes any Arg1/Arg2 operand that has exactly
// one constant-valued definition and no later reassignment with that
// constant directly (ir_optimizer.hpp irConstantPropOpt). Only the
// Arg1/Arg2 operand slots are substituted — an instruction's own
// Result (IFGOTO/GOTO's branch target, ARG/RETURN/WRITE's value) stays
// a symbolic reference to whatever MOVE last defined it; spec.md §8's
// S1 keeps exactly this shape (`v1 := #3` folded, but `WRITE v1` and
// `RETURN v2` still read their variable symbolically rather than the
// literal constant). Like the source, this is a single two-pass sweep
// per call: a value folded from ADD/MINUS/MUL/DIV into a MOVE within
// this call isn't recorded as a propagatable constant until the *next*
// optimizer iteration re-walks it as a MOVE — the fixed 100-iteration
// driver gives this plenty of room to converge.
func ConstantPropagate(head *ir.Instruction) {
	constants := map[*ir.Value]int{}
	reassigned := map[*ir.Value]bool{}

	for c := head; c != nil; c = c.Next {
		switch c.Opcode {
		case ir.Move, ir.Call:
			if ir.IsConst(c.Arg1) {
				constants[c.Result] = c.Arg1.Num
			} else {
				reassigned[c.Result] = true
			}
		case ir.Add, ir.Minus, ir.Mul, ir.Div:
			foldArith(c)
			reassigned[c.Result] = true
		}
	}

	subst := func(slot **ir.Value) {
		v := *slot
		if v == nil {
			return
		}
		if val, ok := constants[v]; ok && !reassigned[v] {
			*slot = ir.NewConst(val)
		}
	}
	for c := head; c != nil; c = c.Next {
		subst(&c.Arg1)
		subst(&c.Arg2)
	}
}

// foldArith collapses c's arithmetic into a MOVE when both operands
// are constant, otherwise applies the usual algebraic identities
// (x+0, x-0, x*1, x/1, x*0, x-x, x/x). Division by a constant zero is
// left unfolded rather than panicking the compiler — that div-by-zero
// is the generated program's bug, not ours to evaluate at compile
// time.
func foldArith(c *ir.Instruction) {
	if ir.IsConst(c.Arg1) && ir.IsConst(c.Arg2) {
		var result int
		switch c.Opcode {
		case ir.Add:
			result = c.Arg1.Num + c.Arg2.Num
		case ir.Minus:
			result = c.Arg1.Num - c.Arg2.Num
		case ir.Mul:
			result = c.Arg1.Num * c.Arg2.Num
		case ir.Div:
			if c.Arg2.Num == 0 {
				return
			}
			result = c.Arg1.Num / c.Arg2.Num
		}
		c.Opcode = ir.Move
		c.Arg1 = ir.NewConst(result)
		c.Arg2 = nil
		return
	}

	switch c.Opcode {
	case ir.Add:
		switch {
		case ir.IsConst(c.Arg1, 0):
			c.Opcode, c.Arg1, c.Arg2 = ir.Move, c.Arg2, nil
		case ir.IsConst(c.Arg2, 0):
			c.Opcode, c.Arg2 = ir.Move, nil
		}
	case ir.Minus:
		switch {
		case ir.IsConst(c.Arg2, 0):
			c.Opcode, c.Arg2 = ir.Move, nil
		case c.Arg1 == c.Arg2:
			c.Opcode, c.Arg1, c.Arg2 = ir.Move, ir.NewConst(0), nil
		}
	case ir.Mul:
		switch {
		case ir.IsConst(c.Arg1, 1):
			c.Opcode, c.Arg1, c.Arg2 = ir.Move, c.Arg2, nil
		case ir.IsConst(c.Arg2, 1):
			c.Opcode, c.Arg2 = ir.Move, nil
		case ir.IsConst(c.Arg1, 0) || ir.IsConst(c.Arg2, 0):
			c.Opcode, c.Arg1, c.Arg2 = ir.Move, ir.NewConst(0), nil
		}
	case ir.Div:
		switch {
		case ir.IsConst(c.Arg2, 1):
			c.Opcode, c.Arg2 = ir.Move, nil
		case c.Arg1 == c.Arg2:
			c.Opcode, c.Arg1, c.Arg2 = ir.Move, ir.NewConst(1), nil
		}
	}
}
