// cmd/splc/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"splc/cmd/splc/commands"
	"splc/internal/batch"
)

// commandAliases mirrors the teacher CLI's short-flag convention.
var commandAliases = map[string]string{
	"b": "build",
	"l": "list",
	"s": "symbols",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is main's body pulled out so the testscript-driven golden tests
// (cmd/splc/main_test.go) can invoke splc as an in-process subcommand
// instead of spawning a real binary.
func run(args []string) int {
	if len(args) == 0 {
		showUsage()
		return 0
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}
	rest := args[1:]

	if cmd == "--help" || cmd == "-h" || cmd == "help" {
		showUsage()
		return 0
	}

	var err error
	switch cmd {
	case "build":
		err = runBuild(rest)
	case "list":
		err = commands.ListCommand(os.Stdout, exampleNames())
	case "symbols":
		err = runSymbols(rest)
	default:
		showUsage()
		return 1
	}

	if err != nil {
		log.Printf("splc: %v", err)
		return 1
	}
	return 0
}

func runBuild(names []string) error {
	units, err := unitsFor(names)
	if err != nil {
		return err
	}
	color := isatty.IsTerminal(os.Stdout.Fd())
	return commands.BuildCommand(os.Stdout, batch.NewDriver(), units, color)
}

func runSymbols(names []string) error {
	units, err := unitsFor(names)
	if err != nil {
		return err
	}
	return commands.SymbolsCommand(os.Stdout, units)
}

func showUsage() {
	fmt.Println(`splc — the core semantic analyzer / IR generator / IR optimizer pipeline

Usage:
  splc build [example...]     compile named examples (default: all), printing
                               diagnostics or optimized three-address IR
  splc list                   list every registered example name
  splc symbols [example...]   dump the global symbol table and array table
                               resolved for each example

Aliases: b=build, l=list, s=symbols`)
}
