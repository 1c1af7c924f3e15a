// Package batch drives many translation units through the semantic
// analyzer, IR generator, and IR optimizer concurrently. Each unit
// gets its own ir.Context (spec.md §9 calls this out explicitly, since
// Context holds per-unit counters and tables that must never be
// shared across goroutines), and each Result is stamped with a
// google/uuid ID. Optimized IR text is content-addressed with blake2b:
// every unit is still compiled and rendered, and a unit whose text
// matches an earlier unit's reuses the stored string and is marked
// Cached.
package batch

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"

	"splc/internal/ast"
	"splc/internal/diag"
	"splc/internal/ir"
	"splc/internal/irgen"
	"splc/internal/iropt"
	"splc/internal/semantic"
)

// Unit is one translation unit submitted to a Driver: a name for
// reporting, and its already-built AST (the external lexer/parser
// being out of scope, per spec.md Non-goals, every unit arrives
// pre-parsed).
type Unit struct {
	Name    string
	Program *ast.Node
}

// Result is one unit's outcome. Diagnostics is non-empty exactly when
// the unit failed semantic analysis, in which case IR is empty; Err
// carries an IR rendering error, or any panic recovered while
// compiling the unit, formatted with the unit's name.
type Result struct {
	Unit        string
	ID          uuid.UUID
	Diagnostics []diag.Diagnostic
	IR          string
	Cached      bool
	Err         error
}

// Stats summarizes one Driver.Run call for a human-readable report.
type Stats struct {
	Units      int
	Failed     int
	CacheHits  int
	IRBytes    int64
	Elapsed    time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("%d units, %d failed, %d cache hits, %s of IR in %s",
		s.Units, s.Failed, s.CacheHits, humanize.Bytes(uint64(s.IRBytes)), s.Elapsed)
}

// Driver runs units concurrently, deduplicating identical optimized
// output across a run.
type Driver struct {
	mu    sync.Mutex
	cache map[[32]byte]string
}

// NewDriver returns a Driver with an empty cache.
func NewDriver() *Driver {
	return &Driver{cache: make(map[[32]byte]string)}
}

// Run compiles every unit concurrently, bounded by ctx, and returns
// one Result per unit in submission order plus aggregate Stats. A panic
// while compiling a unit is captured into its own Result.Err rather
// than aborting the whole batch — one broken
// translation unit should never take down the others running beside
// it.
func (d *Driver) Run(ctx context.Context, units []Unit) ([]*Result, Stats, error) {
	start := time.Now()
	results := make([]*Result, len(units))

	g, gctx := errgroup.WithContext(ctx)
	for i, u := range units {
		i, u := i, u
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = d.compile(u)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{Units: len(results), Elapsed: time.Since(start)}
	for _, r := range results {
		if len(r.Diagnostics) > 0 || r.Err != nil {
			stats.Failed++
		}
		if r.Cached {
			stats.CacheHits++
		}
		stats.IRBytes += int64(len(r.IR))
	}
	return results, stats, nil
}

func (d *Driver) compile(u Unit) (res *Result) {
	res = &Result{Unit: u.Name, ID: uuid.New()}
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("unit %s: %v", u.Name, r)
		}
	}()

	sink := semantic.Analyze(u.Program)
	if !sink.Ok() {
		res.Diagnostics = sink.Diagnostics
		return res
	}

	unitCtx := ir.NewContext()
	head := irgen.Generate(unitCtx, u.Program)
	head = iropt.Run(unitCtx, head)

	var b strings.Builder
	if err := ir.Fprint(&b, head); err != nil {
		res.Err = err
		return res
	}
	text := b.String()
	sum := blake2b.Sum256([]byte(text))

	d.mu.Lock()
	defer d.mu.Unlock()
	if cached, ok := d.cache[sum]; ok {
		res.IR = cached
		res.Cached = true
		return res
	}
	d.cache[sum] = text
	res.IR = text
	return res
}
