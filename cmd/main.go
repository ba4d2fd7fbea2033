// Command demangle translates mangled MSVC symbol names into their
// human-readable C++ declarations.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/msvcdemangle/symbols/internal/invariant"
	"github.com/msvcdemangle/symbols/internal/parser"
)

// main: `demangle SYMBOL [SYMBOL...]` demangles each argument; with no
// arguments it reads one mangled name per line from stdin. Exit status is 0
// unless every input failed to parse.
func main() {
	if len(os.Args) > 1 {
		os.Exit(runArgs(os.Args[1:]))
	}
	os.Exit(runStdin(os.Stdin))
}

func runArgs(names []string) int {
	anyOK := false
	for _, name := range names {
		if demangleOne(name) {
			anyOK = true
		}
	}
	if !anyOK {
		return 1
	}
	return 0
}

func runStdin(f *os.File) int {
	scanner := bufio.NewScanner(f)
	anyOK := false
	anyLine := false
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		anyLine = true
		if demangleOne(line) {
			anyOK = true
		}
	}
	if !anyLine {
		fmt.Fprintln(os.Stderr, "usage: demangle SYMBOL [SYMBOL...] (or pipe mangled names on stdin)")
		return 1
	}
	if !anyOK {
		return 1
	}
	return 0
}

func demangleOne(name string) bool {
	stream, ok := parser.Demangle(name)
	if !ok {
		fmt.Printf("%s\n", name)
		return false
	}

	if sym, symOK := parser.ParseSymbol(name); symOK {
		for _, v := range invariant.Check(sym, []byte(name)) {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", name, v)
		}
	}

	fmt.Println(stream.String())
	return true
}
