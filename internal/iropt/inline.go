package iropt

import "splc/internal/ir"

// function is one translation unit's FUNDEC block: its formal
// parameters in source order and the first instruction of its body
// (past the PARAM instructions).
type function struct {
	name   string
	params []*ir.Value
	entry  *ir.Instruction
}

func findAllFunctions(head *ir.Instruction) map[string]*function {
	fns := map[string]*function{}
	for c := head; c != nil; c = c.Next {
		if c.Opcode != ir.FunDec {
			continue
		}
		body := c.Next
		var params []*ir.Value
		for body != nil && body.Opcode == ir.Param {
			params = append(params, body.Result)
			body = body.Next
		}
		fns[c.Result.Name] = &function{name: c.Result.Name, params: params, entry: body}
	}
	return fns
}

// canInline reports whether fn's body is free of calls (no nested
// inlining within one pass), free of LOAD (an address-taken local
// would need its own storage to survive the copy), and never
// reassigns one of its own formal parameters — ir_inliner.hpp's
// irCanInline guard has this as a third, separate disjunct
// (`std::find(function->params..., code->result) != ...end()`), since
// inlineFunction substitutes a parameter directly with the call
// site's argument Value: if the body reassigned it, that write would
// land in the caller's own argument rather than a private copy.
func canInline(fn *function) bool {
	for c := fn.entry; c != nil && c.Opcode != ir.FunDec; c = c.Next {
		if c.Opcode == ir.Call || c.Opcode == ir.Load {
			return false
		}
		if isParam(fn.params, c.Result) {
			return false
		}
	}
	return true
}

// isParam reports whether v is one of params.
func isParam(params []*ir.Value, v *ir.Value) bool {
	for _, p := range params {
		if p == v {
			return true
		}
	}
	return false
}

// copyInstruction clones one instruction of fn's body for inlining,
// remapping any operand found in subst (the callee's parameters and
// its internal labels) and lowering RETURN into a MOVE of the
// returned value into ret, the call site's own destination.
func copyInstruction(c *ir.Instruction, subst map[*ir.Value]*ir.Value, ret *ir.Value) *ir.Instruction {
	remap := func(v *ir.Value) *ir.Value {
		if v == nil {
			return nil
		}
		if r, ok := subst[v]; ok {
			return r
		}
		return v
	}
	cp := &ir.Instruction{
		Opcode: c.Opcode,
		Arg1:   remap(c.Arg1),
		Arg2:   remap(c.Arg2),
		Result: remap(c.Result),
		RelOp:  c.RelOp,
		Size:   c.Size,
	}
	if cp.Opcode == ir.Return {
		cp.Opcode = ir.Move
		cp.Arg1 = remap(c.Result)
		cp.Result = ret
		cp.Arg2 = nil
	}
	return cp
}

// insertFunction splices a freshly relabeled copy of callee's body
// right after callSite, with subst already carrying the
// parameter-to-argument substitution; every LABEL the body defines
// gets its own fresh label so two inlined copies of the same function
// never collide.
func insertFunction(ctx *ir.Context, callSite *ir.Instruction, subst map[*ir.Value]*ir.Value, ret *ir.Value, callee *function) {
	for c := callee.entry; c != nil && c.Opcode != ir.FunDec; c = c.Next {
		if c.Opcode == ir.LabelOp {
			if _, ok := subst[c.Result]; !ok {
				subst[c.Result] = ctx.MakeLabel()
			}
		}
	}
	var copies *ir.Instruction
	for c := callee.entry; c != nil && c.Opcode != ir.FunDec; c = c.Next {
		copies = ir.Combine(copies, copyInstruction(c, subst, ret))
	}
	if copies == nil {
		return
	}
	after := callSite.Next
	callSite.Next = copies
	copies.Prev = callSite
	tail := copies
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = after
	if after != nil {
		after.Prev = tail
	}
}

// inlineFunction walks fn's own body, splicing in an inlined copy of
// every directly-inlinable callee it CALLs. ARG instructions are
// collected in the reverse-source-order they were emitted in, so
// args[len-1-i] recovers the i-th formal's actual argument
// (ir_inliner.hpp irInlineFunction).
func inlineFunction(ctx *ir.Context, fns map[string]*function, fn *function) {
	var args []*ir.Instruction
	for c := fn.entry; c != nil && c.Opcode != ir.FunDec; {
		next := c.Next
		switch c.Opcode {
		case ir.Arg:
			args = append(args, c)
		case ir.Call:
			callee, ok := fns[c.Arg1.Name]
			if ok && callee.name != fn.name && canInline(callee) && len(args) >= len(callee.params) {
				subst := map[*ir.Value]*ir.Value{}
				n := len(args)
				for i, p := range callee.params {
					subst[p] = args[n-1-i].Result
				}
				insertFunction(ctx, c, subst, c.Result, callee)
				for _, a := range args {
					ir.Detach(a)
				}
				ir.Detach(c)
			}
			args = nil
		default:
			if c.Opcode != ir.LabelOp {
				args = nil
			}
		}
		c = next
	}
}
