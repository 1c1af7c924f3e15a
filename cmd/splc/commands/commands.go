// Package commands implements splc's subcommands, one exported
// XCommand function per command that takes the output writer and the
// inputs main has already resolved, matching the teacher CLI's
// convention of returning a plain error for main to report rather than
// calling os.Exit from inside a command.
package commands

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kr/pretty"

	"splc/internal/batch"
	"splc/internal/ir"
	"splc/internal/irgen"
	"splc/internal/semantic"
)

// BuildCommand compiles units through the full pipeline (semantic
// analysis, IR generation, IR optimization) and writes each unit's
// diagnostics or optimized IR to out. It returns an error, after the
// full report is written, when any unit failed.
func BuildCommand(out io.Writer, driver *batch.Driver, units []batch.Unit, color bool) error {
	results, stats, err := driver.Run(context.Background(), units)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Fprintf(out, "=== %s ===\n", r.Unit)
		switch {
		case r.Err != nil:
			fmt.Fprintln(out, colorize(color, "31", r.Err.Error()))
		case len(r.Diagnostics) > 0:
			for _, d := range r.Diagnostics {
				fmt.Fprintln(out, colorize(color, "33", d.Error()))
			}
		default:
			cachedNote := ""
			if r.Cached {
				cachedNote = colorize(color, "36", " (cached)")
			}
			fmt.Fprintf(out, "%s%s\n", r.IR, cachedNote)
		}
	}
	fmt.Fprintln(out, stats.String())
	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d units failed", stats.Failed, stats.Units)
	}
	return nil
}

// ListCommand prints every registered example name, one per line.
func ListCommand(out io.Writer, names []string) error {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	for _, n := range sorted {
		fmt.Fprintln(out, n)
	}
	return nil
}

// SymbolsCommand runs semantic analysis and IR generation on each unit
// (discarding the generated code) and dumps the resolved global symbol
// table and array table with github.com/kr/pretty — splc's equivalent
// of a debug flag exposing the core's two process-wide tables
// (internal/ir.Context's symbol-table-adjacent array table in
// particular has no other CLI-visible surface).
func SymbolsCommand(out io.Writer, units []batch.Unit) error {
	for _, u := range units {
		fmt.Fprintf(out, "=== %s ===\n", u.Name)
		sink, analyzer := semantic.AnalyzeUnit(u.Program)
		if !sink.Ok() {
			for _, d := range sink.Diagnostics {
				fmt.Fprintln(out, d.Error())
			}
			continue
		}
		for _, sym := range analyzer.Globals() {
			fmt.Fprintf(out, "%# v\n", pretty.Formatter(sym))
		}

		ctx := ir.NewContext()
		irgen.Generate(ctx, u.Program)
		for name, arr := range ctx.Arrays() {
			fmt.Fprintf(out, "array %s: %# v\n", name, pretty.Formatter(arr))
		}
	}
	return nil
}

// colorize wraps s in an ANSI SGR code when color is true, matching
// the dim/bright conventions splc's own diagnostic output uses
// depending on whether stdout is a terminal (github.com/mattn/go-isatty,
// checked once in main before any command runs).
func colorize(color bool, code, s string) string {
	if !color {
		return s
	}
	var b strings.Builder
	b.WriteString("\x1b[")
	b.WriteString(code)
	b.WriteString("m")
	b.WriteString(s)
	b.WriteString("\x1b[0m")
	return b.String()
}
