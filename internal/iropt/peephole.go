package iropt

import "splc/internal/ir"

// Peephole applies the local rewrites of ir_optimizer.hpp's
// irPeepholeOpt: self-move elimination, branch simplification, the
// address-arithmetic fusion chain for ADD/MINUS, and forwarding a
// value straight from the single MOVE that immediately precedes its
// use. FixPrev must have already run over head so Prev is current.
func Peephole(head *ir.Instruction) {
	for c := head; c != nil; c = c.Next {
		switch c.Opcode {
		case ir.Move:
			if c.Arg1 == c.Result {
				ir.Detach(c)
				continue
			}
		case ir.IfGoto, ir.Goto:
			simplifyBranch(c)
		case ir.Add:
			normalizeAdd(c)
			fuseAddressArith(c)
		case ir.Minus:
			fuseAddressArith(c)
		}
		forwardFromPrecedingMove(c)
	}
}

// simplifyBranch handles two shapes: an IFGOTO immediately followed by
// an unconditional GOTO and then the IFGOTO's own target label —
// rewritten to branch on the inverted condition straight to the
// GOTO's target, dropping the now-unreachable GOTO; and any
// IFGOTO/GOTO whose very next instruction is its own target label,
// which branches to the next line and so is a no-op.
func simplifyBranch(c *ir.Instruction) {
	if c.Opcode == ir.IfGoto && c.Next != nil && c.Next.Opcode == ir.Goto &&
		c.Next.Next != nil && c.Next.Next.Opcode == ir.LabelOp && c.Next.Next.Result == c.Result {
		skip := c.Next
		c.RelOp = ir.RevRelop(c.RelOp)
		c.Result = skip.Result
		ir.Detach(skip)
		return
	}
	if c.Next != nil && c.Next.Opcode == ir.LabelOp && c.Next.Result == c.Result {
		ir.Detach(c)
	}
}

// normalizeAdd puts a constant operand in Arg2, so fuseAddressArith
// and foldArith only ever need to look there.
func normalizeAdd(c *ir.Instruction) {
	if ir.IsConst(c.Arg1) && !ir.IsConst(c.Arg2) {
		c.Arg1, c.Arg2 = c.Arg2, c.Arg1
	}
}

func signOf(op ir.OpCode) int {
	if op == ir.Add {
		return 1
	}
	return -1
}

// fuseAddressArith collapses a chain of constant-offset ADD/MINUS
// instructions built from the same base pointer — the stride
// arithmetic translateArray emits for nested indexing — into a single
// offset from that base. When c re-subtracts the exact base the prior
// instruction added an offset to, the whole chain reduces to the
// constant offset itself.
func fuseAddressArith(c *ir.Instruction) {
	prev := c.Prev
	if prev == nil || prev.Result != c.Arg1 {
		return
	}
	if prev.Opcode != ir.Add && prev.Opcode != ir.Minus {
		return
	}
	baseSign := signOf(prev.Opcode)

	if c.Opcode == ir.Minus && c.Arg2 == prev.Arg1 && ir.IsConst(prev.Arg2) {
		c.Opcode = ir.Move
		c.Arg1 = ir.NewConst(baseSign * prev.Arg2.Num)
		c.Arg2 = nil
		return
	}

	if !ir.IsConst(prev.Arg2) || !ir.IsConst(c.Arg2) {
		return
	}
	base := prev.Arg1
	total := baseSign*prev.Arg2.Num + signOf(c.Opcode)*c.Arg2.Num

	if prev.Result == c.Arg1 {
		ir.Detach(prev)
	}
	switch {
	case total == 0:
		c.Opcode = ir.Move
		if base != nil {
			c.Arg1 = base
		} else {
			c.Arg1 = ir.NewConst(0)
		}
		c.Arg2 = nil
	case total > 0:
		c.Opcode = ir.Add
		c.Arg1 = base
		c.Arg2 = ir.NewConst(total)
	default:
		c.Opcode = ir.Minus
		c.Arg1 = base
		c.Arg2 = ir.NewConst(-total)
	}
}

// forwardFromPrecedingMove substitutes c's operands with the source of
// an immediately preceding MOVE they happen to equal, shortening the
// chain a step at a time across optimizer passes. The Result operand of
// ARG, RETURN and WRITE is forwarded only when that source is not a
// constant, so those instructions keep naming a variable or temp.
func forwardFromPrecedingMove(c *ir.Instruction) {
	prev := c.Prev
	if prev == nil || prev.Opcode != ir.Move {
		return
	}
	if c.Arg1 == prev.Result {
		c.Arg1 = prev.Arg1
	}
	if c.Arg2 == prev.Result {
		c.Arg2 = prev.Arg1
	}
	switch c.Opcode {
	case ir.Arg, ir.Return, ir.Write:
		if c.Result == prev.Result && !ir.IsConst(prev.Arg1) {
			c.Result = prev.Arg1
		}
	}
}
