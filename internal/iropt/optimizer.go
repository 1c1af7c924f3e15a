// Package iropt is the fixed-point IR optimizer of spec.md §5:
// peephole simplification, dead-value elimination, label coalescing,
// constant propagation, and bounded whole-program function inlining,
// grounded on ir_optimizer.hpp and ir_inliner.hpp.
package iropt

import (
	"sort"

	"splc/internal/ir"
)

// optPasses mirrors ir_optimizer.hpp's ENABLE_OPT iteration count: the
// driver doesn't detect a fixed point, it just runs this many rounds.
const optPasses = 100

// inlinePasses mirrors ENABLE_INLINE.
const inlinePasses = 100

// Optimize runs the peephole/DCE/label/constant-prop sweep for a fixed
// 100 iterations, recomputing Prev at the start of each since Detach
// never rewires it.
func Optimize(head *ir.Instruction) {
	for i := 0; i < optPasses; i++ {
		ir.FixPrev(head)
		Peephole(head)
		UnusedValueElim(head)
		CoalesceLabels(head)
		ConstantPropagate(head)
	}
}

// Inline runs whole-program function inlining for a fixed 100
// iterations, substituting every directly-inlinable call it finds
// in each function in turn. Functions are visited in sorted name
// order for determinism — the original iterates an unordered_map,
// whose order is unspecified, so this is a deliberate, documented
// deviation rather than a faithful port of an actual behavior.
func Inline(ctx *ir.Context, head *ir.Instruction) {
	fns := findAllFunctions(head)
	names := make([]string, 0, len(fns))
	for name := range fns {
		names = append(names, name)
	}
	sort.Strings(names)

	for i := 0; i < inlinePasses; i++ {
		ir.FixPrev(head)
		for _, name := range names {
			inlineFunction(ctx, fns, fns[name])
		}
	}
}

// Run inlines call sites and then folds/simplifies the result — an
// inlined callee's body is only ever constant-folded and dead-code
// eliminated by a subsequent Optimize pass, so inlining runs first.
func Run(ctx *ir.Context, head *ir.Instruction) *ir.Instruction {
	Inline(ctx, head)
	Optimize(head)
	return head
}
