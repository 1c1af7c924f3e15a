package ir

import "splc/internal/ast"

// Array is one declared array's shape: its dimensions in source order
// and the byte strides Sizes derived from them (spec.md §3.3, §8
// invariant 8: sizes[i] = 4 * product of dimensions[i+1:]).
type Array struct {
	Name       string
	Dimensions []int
	Sizes      []int
	Param      bool
}

// NewArrayFromVarDec walks a "VarDec" chain ("ID" or "VarDec LB INT
// RB") collecting dimensions in source order, grounded on ir.hpp's
// makeArray.
func NewArrayFromVarDec(n *ast.Node) *Array {
	if n.NumChildren() == 1 {
		return &Array{Name: n.Child(0).Str}
	}
	arr := NewArrayFromVarDec(n.Child(0))
	arr.Dimensions = append(arr.Dimensions, n.Child(2).Val)
	return arr
}

// ComputeSizes fills Sizes from Dimensions: each element is 4 bytes
// times the product of every following dimension, so Sizes[i] is the
// stride in bytes of one step along dimension i.
func (a *Array) ComputeSizes() {
	a.Sizes = a.Sizes[:0]
	for i := range a.Dimensions {
		size := 4
		for j := i + 1; j < len(a.Dimensions); j++ {
			size *= a.Dimensions[j]
		}
		a.Sizes = append(a.Sizes, size)
	}
}

// TotalSize is the full allocation size in bytes: 4 times the product
// of every dimension.
func (a *Array) TotalSize() int {
	size := 4
	for _, d := range a.Dimensions {
		size *= d
	}
	return size
}
