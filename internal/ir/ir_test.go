package ir_test

import (
	"strings"
	"testing"

	"splc/internal/ir"
)

func TestValueStringForms(t *testing.T) {
	cases := []struct {
		v    *ir.Value
		want string
	}{
		{ir.NewSymbol("main"), "main"},
		{ir.NewLabel(2), "label2"},
		{ir.NewConst(7), "#7"},
		{ir.NewVar(1), "v1"},
		{ir.NewTemp(3), "t3"},
		{ir.NewPointer(4), "a4"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestIsConst(t *testing.T) {
	c := ir.NewConst(5)
	if !ir.IsConst(c) || !ir.IsConst(c, 5) {
		t.Fatal("expected IsConst(c) and IsConst(c, 5)")
	}
	if ir.IsConst(c, 6) {
		t.Fatal("IsConst(c, 6) should be false")
	}
	if ir.IsConst(ir.NewVar(1)) {
		t.Fatal("a Var is not a Const")
	}
}

func TestCombineAndFixPrev(t *testing.T) {
	a := ir.NewResult(ir.LabelOp, ir.NewLabel(1))
	b := ir.NewResult(ir.Goto, ir.NewLabel(2))
	c := ir.NewResult(ir.LabelOp, ir.NewLabel(2))
	head := ir.Combine(ir.Combine(a, b), c)
	ir.FixPrev(head)

	if head != a || a.Next != b || b.Next != c || c.Next != nil {
		t.Fatal("unexpected chain shape")
	}
	if b.Prev != a || c.Prev != b || a.Prev != nil {
		t.Fatal("FixPrev did not relink Prev correctly")
	}
}

func TestCombineNilSides(t *testing.T) {
	a := ir.New(ir.Nop)
	if ir.Combine(nil, a) != a {
		t.Fatal("Combine(nil, a) should return a")
	}
	if ir.Combine(a, nil) != a {
		t.Fatal("Combine(a, nil) should return a")
	}
}

func TestDetachSplicesOut(t *testing.T) {
	a := ir.New(ir.Nop)
	b := ir.New(ir.Nop)
	c := ir.New(ir.Nop)
	head := ir.Combine(ir.Combine(a, b), c)
	ir.FixPrev(head)

	ir.Detach(b)
	if a.Next != c || c.Prev != a {
		t.Fatal("Detach did not splice b out of the list")
	}
}

func TestRevRelop(t *testing.T) {
	pairs := map[ir.OpCode]ir.OpCode{
		ir.Lt: ir.Ge, ir.Le: ir.Gt, ir.Gt: ir.Le, ir.Ge: ir.Lt, ir.Ne: ir.Eq, ir.Eq: ir.Ne,
	}
	for op, want := range pairs {
		if got := ir.RevRelop(op); got != want {
			t.Errorf("RevRelop(%v) = %v, want %v", op, got, want)
		}
	}
	if ir.RevRelop(ir.Add) != ir.Nop {
		t.Fatal("RevRelop of a non-relational opcode should be Nop")
	}
}

func TestFprintRendersCanonicalForm(t *testing.T) {
	lb1 := ir.NewLabel(1)
	v1 := ir.NewVar(1)
	head := ir.Combine(ir.Combine(
		ir.NewResult(ir.FunDec, ir.NewSymbol("main")),
		ir.NewArg1(ir.Move, ir.NewConst(0), v1)),
		ir.NewRelop(ir.IfGoto, v1, ir.NewConst(0), lb1, ir.Gt))

	var b strings.Builder
	if err := ir.Fprint(&b, head); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	want := "FUNCTION main :\nv1 := #0\nIF v1 > #0 GOTO label1\n"
	if b.String() != want {
		t.Fatalf("Fprint output = %q, want %q", b.String(), want)
	}
}

func TestContextCountersAreMonotonic(t *testing.T) {
	ctx := ir.NewContext()
	v1 := ctx.LookupVariable("x")
	v2 := ctx.LookupVariable("y")
	v1Again := ctx.LookupVariable("x")
	if v1 != v1Again {
		t.Fatal("repeated lookup of the same name must return the same Value")
	}
	if v1 == v2 {
		t.Fatal("distinct names must get distinct Values")
	}
	if ctx.MakeTemp().String() != "t1" || ctx.MakeTemp().String() != "t2" {
		t.Fatal("temp counter should be monotonic starting at 1")
	}
}

func TestArraySizesRowMajor(t *testing.T) {
	arr := &ir.Array{Name: "m", Dimensions: []int{3, 4}}
	arr.ComputeSizes()
	if len(arr.Sizes) != 2 || arr.Sizes[0] != 16 || arr.Sizes[1] != 4 {
		t.Fatalf("Sizes = %v, want [16 4]", arr.Sizes)
	}
	if arr.TotalSize() != 48 {
		t.Fatalf("TotalSize() = %d, want 48", arr.TotalSize())
	}
}
