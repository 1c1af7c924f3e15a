package ir

import "github.com/google/uuid"

// Context groups one translation unit's IR-generation state: the
// counters that hand out fresh var/temp/pointer/label numbers, the
// name->Value table a repeated identifier resolves through, and the
// array-shape tables the index-lowering code consults. spec.md §9
// calls out grouping these process-wide maps and counters into a
// single value instead of package-level globals, since a batch driver
// may run several units concurrently (internal/batch). ID identifies
// the Context; no package reads it, and batch results carry an ID of
// their own.
type Context struct {
	ID uuid.UUID

	variables map[string]*Value
	arrays    map[string]*Array
	valueToArray map[*Value]*Array

	varCounter     int
	tempCounter    int
	pointerCounter int
	labelCounter   int
}

// NewContext returns a Context ready for one translation unit.
func NewContext() *Context {
	return &Context{
		ID:           uuid.New(),
		variables:    make(map[string]*Value),
		arrays:       make(map[string]*Array),
		valueToArray: make(map[*Value]*Array),
	}
}

// LookupVariable resolves name to its Value, minting a fresh Var on
// first use (ir_codegen.hpp lookupVariable).
func (c *Context) LookupVariable(name string) *Value {
	if v, ok := c.variables[name]; ok {
		return v
	}
	c.varCounter++
	v := NewVar(c.varCounter)
	c.variables[name] = v
	return v
}

func (c *Context) MakeTemp() *Value {
	c.tempCounter++
	return NewTemp(c.tempCounter)
}

func (c *Context) MakePointer() *Value {
	c.pointerCounter++
	return NewPointer(c.pointerCounter)
}

func (c *Context) MakeLabel() *Value {
	c.labelCounter++
	return NewLabel(c.labelCounter)
}

// RegisterArray records arr as the shape behind the Value bound to its
// name, so later LOADADDR/indexing lowering and the inliner's
// array-by-value argument check can find it.
func (c *Context) RegisterArray(val *Value, arr *Array) {
	c.arrays[arr.Name] = arr
	c.valueToArray[val] = arr
}

// ArrayByName looks up an array's shape by its source name.
func (c *Context) ArrayByName(name string) *Array {
	return c.arrays[name]
}

// ArrayOf reports whether val names a declared array, and its shape.
func (c *Context) ArrayOf(val *Value) (*Array, bool) {
	arr, ok := c.valueToArray[val]
	return arr, ok
}

// Arrays returns every array registered against this context, keyed by
// source name — for debug dumping (cmd/splc's symbols command), not
// used by code generation itself.
func (c *Context) Arrays() map[string]*Array {
	return c.arrays
}
