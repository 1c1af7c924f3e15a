package ir

import "strings"

// Instruction is one three-address instruction, linked into its
// translation unit's code list via Prev/Next (spec.md §3.3). Size is
// only meaningful on an Alloc instruction, in bytes.
type Instruction struct {
	Opcode OpCode
	Arg1   *Value
	Arg2   *Value
	Result *Value
	RelOp  OpCode
	Size   int
	Prev   *Instruction
	Next   *Instruction
}

func New(op OpCode) *Instruction { return &Instruction{Opcode: op} }

func NewResult(op OpCode, result *Value) *Instruction {
	return &Instruction{Opcode: op, Result: result}
}

func NewArg1(op OpCode, arg1, result *Value) *Instruction {
	return &Instruction{Opcode: op, Arg1: arg1, Result: result}
}

func NewBin(op OpCode, arg1, arg2, result *Value) *Instruction {
	return &Instruction{Opcode: op, Arg1: arg1, Arg2: arg2, Result: result}
}

func NewRelop(op OpCode, arg1, arg2, result *Value, relop OpCode) *Instruction {
	return &Instruction{Opcode: op, Arg1: arg1, Arg2: arg2, Result: result, RelOp: relop}
}

// Combine appends c2 after c1's tail and returns the head of the
// result, tolerating either side being empty — every IR-generator
// helper builds its output by chaining Combine calls (ir.hpp
// combineCode).
func Combine(c1, c2 *Instruction) *Instruction {
	if c1 == nil {
		return c2
	}
	if c2 == nil {
		return c1
	}
	tail := c1
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = c2
	c2.Prev = c1
	return c1
}

// Detach splices code out of its list by relinking its neighbors,
// without touching code's own Prev/Next — a later FixPrev call (or the
// optimizer's next pass) recomputes Prev from a fresh walk, so a
// dangling self-reference here is harmless (ir_optimizer.hpp
// disableInst).
func Detach(code *Instruction) {
	if code.Prev != nil {
		code.Prev.Next = code.Next
	}
	if code.Next != nil {
		code.Next.Prev = code.Prev
	}
}

// FixPrev recomputes every Prev pointer from a single forward walk —
// Detach never rewires Prev, and the address-arithmetic fusion in the
// peephole pass reads code.Prev, so every optimizer round starts with
// this (ir_optimizer.hpp irFixPrev).
func FixPrev(head *Instruction) {
	var prev *Instruction
	for c := head; c != nil; c = c.Next {
		c.Prev = prev
		prev = c
	}
}

func safeString(v *Value) string {
	if v == nil {
		return "null"
	}
	return v.String()
}

// String renders one instruction using the debug format of ir.hpp's
// Code::to_string — a raw dump of Arg1, Arg2, Result and any relop
// (the opcode is not printed), not the pretty printed form Fprint
// produces; useful in panics and test failure messages.
func (c *Instruction) String() string {
	var b strings.Builder
	b.WriteString(safeString(c.Arg1))
	b.WriteString(", ")
	b.WriteString(safeString(c.Arg2))
	b.WriteString(", ")
	b.WriteString(safeString(c.Result))
	if c.RelOp != Nop {
		b.WriteString(" (")
		b.WriteString(relopSymbol(c.RelOp))
		b.WriteByte(')')
	}
	return b.String()
}
