package batch_test

import (
	"context"
	"strings"
	"testing"

	"splc/internal/ast"
	"splc/internal/batch"
	"splc/internal/fixtures"
)

func okUnit(name string) batch.Unit {
	return batch.Unit{Name: name, Program: fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, nil, []*ast.Node{
				fixtures.StmtExp(2, fixtures.ExpCall(2, "write", fixtures.ExpInt(2, 1))),
				fixtures.StmtReturn(3, fixtures.ExpInt(3, 0)),
			})))}
}

func brokenUnit(name string) batch.Unit {
	return batch.Unit{Name: name, Program: fixtures.Program(
		fixtures.ExtDefFunc(1, fixtures.SpecInt(1), fixtures.FunDec(1, "main"),
			fixtures.CompSt(1, nil, []*ast.Node{
				fixtures.StmtExp(2, fixtures.ExpID(2, "undeclared")),
				fixtures.StmtReturn(3, fixtures.ExpInt(3, 0)),
			})))}
}

func TestRunCompilesEachUnitIndependently(t *testing.T) {
	d := batch.NewDriver()
	results, stats, err := d.Run(context.Background(), []batch.Unit{okUnit("a"), brokenUnit("b"), okUnit("c")})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if stats.Failed != 1 {
		t.Fatalf("expected 1 failed unit, got %d (%s)", stats.Failed, stats)
	}
	if len(results[1].Diagnostics) == 0 {
		t.Fatalf("expected unit b to carry its undeclared-variable diagnostic")
	}
	if results[0].ID == results[2].ID {
		t.Fatal("expected distinct unit IDs")
	}
	if !strings.Contains(results[0].IR, "WRITE") {
		t.Fatalf("expected unit a's IR to contain a WRITE, got %q", results[0].IR)
	}
}

func TestRunDeduplicatesIdenticalOutput(t *testing.T) {
	d := batch.NewDriver()
	results, stats, err := d.Run(context.Background(), []batch.Unit{okUnit("a"), okUnit("b")})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if results[0].IR != results[1].IR {
		t.Fatalf("expected identical units to produce identical IR text")
	}
	if stats.CacheHits != 1 {
		t.Fatalf("expected exactly 1 cache hit among 2 identical units, got %d", stats.CacheHits)
	}
}
