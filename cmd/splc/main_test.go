package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain lets testscript invoke splc's own run() as an in-process
// subcommand (the "splc" program name below), avoiding a real go build
// of the binary for every script under testdata/script.
func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"splc": func() { main() },
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
