package main

import (
	"fmt"
	"sort"

	"splc/internal/ast"
	"splc/internal/batch"
	"splc/internal/fixtures"
)

// examples is the fixed set of named demo programs splc compiles —
// the external lexer/parser being out of scope (spec.md §1 Non-goals),
// splc runs against pre-built ast.Node trees instead of .c-like source
// files. Each one grounds one of spec.md §8's scenarios.
var examples = map[string]*ast.Node{
	"s1-assign": fixtures.Program(fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
		fixtures.CompSt(1,
			[]*ast.Node{fixtures.Def(1, fixtures.SpecInt(1), fixtures.Dec(1, fixtures.VarDecID(1, "a")))},
			[]*ast.Node{
				fixtures.StmtExp(1, fixtures.ExpAssign(1, fixtures.ExpID(1, "a"),
					fixtures.ExpBin(1, ast.Plus, fixtures.ExpInt(1, 1), fixtures.ExpInt(1, 2)))),
				fixtures.StmtExp(1, fixtures.ExpCall(1, "write", fixtures.ExpID(1, "a"))),
				fixtures.StmtReturn(1, fixtures.ExpInt(1, 0)),
			}))),

	"s2-short-circuit": fixtures.Program(fixtures.ExtDefFunc(1, fixtures.SpecInt(1),
		fixtures.FunDec(1, "f", fixtures.ParamDec(1, fixtures.SpecInt(1), fixtures.VarDecID(1, "x"))),
		fixtures.CompSt(1, nil, []*ast.Node{
			fixtures.StmtIf(1, fixtures.ExpBin(1, ast.And,
				fixtures.ExpBin(1, ast.Gt, fixtures.ExpID(1, "x"), fixtures.ExpInt(1, 0)),
				fixtures.ExpBin(1, ast.Lt, fixtures.ExpID(1, "x"), fixtures.ExpInt(1, 10))),
				fixtures.StmtExp(1, fixtures.ExpCall(1, "write", fixtures.ExpID(1, "x")))),
			fixtures.StmtReturn(1, fixtures.ExpInt(1, 0)),
		}))),

	"s3-array-store": fixtures.Program(fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
		fixtures.CompSt(1,
			[]*ast.Node{
				fixtures.Def(1, fixtures.SpecInt(1), fixtures.Dec(1,
					fixtures.VarDecArray(1, fixtures.VarDecArray(1, fixtures.VarDecID(1, "a"), 3), 4))),
				fixtures.Def(1, fixtures.SpecInt(1), fixtures.Dec(1, fixtures.VarDecID(1, "i")), fixtures.Dec(1, fixtures.VarDecID(1, "j"))),
			},
			[]*ast.Node{
				fixtures.StmtExp(1, fixtures.ExpAssign(1,
					fixtures.ExpIndex(1, fixtures.ExpIndex(1, fixtures.ExpID(1, "a"), fixtures.ExpID(1, "i")), fixtures.ExpID(1, "j")),
					fixtures.ExpInt(1, 7))),
				fixtures.StmtReturn(1, fixtures.ExpInt(1, 0)),
			}))),

	"s4-inline": fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1),
			fixtures.FunDec(1, "sq", fixtures.ParamDec(1, fixtures.SpecInt(1), fixtures.VarDecID(1, "x"))),
			fixtures.CompSt(1, nil, []*ast.Node{
				fixtures.StmtReturn(1, fixtures.ExpBin(1, ast.Mul, fixtures.ExpID(1, "x"), fixtures.ExpID(1, "x"))),
			})),
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, nil, []*ast.Node{
				fixtures.StmtExp(1, fixtures.ExpCall(1, "write", fixtures.ExpCall(1, "sq", fixtures.ExpInt(1, 3)))),
				fixtures.StmtReturn(1, fixtures.ExpInt(1, 0)),
			}))),

	"s6-undeclared": fixtures.Program(fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
		fixtures.CompSt(1, nil, []*ast.Node{
			fixtures.StmtExp(1, fixtures.ExpAssign(1, fixtures.ExpID(1, "undeclared"), fixtures.ExpInt(1, 1))),
			fixtures.StmtReturn(1, fixtures.ExpInt(1, 0)),
		}))),
}

// exampleNames returns every registered example name, sorted.
func exampleNames() []string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// unitsFor resolves a list of example names into batch.Units,
// defaulting to every registered example when names is empty.
func unitsFor(names []string) ([]batch.Unit, error) {
	if len(names) == 0 {
		names = exampleNames()
	}
	units := make([]batch.Unit, 0, len(names))
	for _, name := range names {
		prog, ok := examples[name]
		if !ok {
			return nil, fmt.Errorf("unknown example %q (see splc list)", name)
		}
		units = append(units, batch.Unit{Name: name, Program: prog})
	}
	return units, nil
}
