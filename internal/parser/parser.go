// Package parser implements a recursive-descent parser for mangled MSVC
// symbol names, turning a mangled byte string into an *ast.Symbol and, via
// ast.Render, a colourised token.Stream.
package parser

import (
	"github.com/msvcdemangle/symbols/internal/ast"
	"github.com/msvcdemangle/symbols/internal/token"
)

// Demangle parses a mangled MSVC symbol name and renders it as a
// token.Stream. It reports (nil, false) for any input that doesn't parse as
// a complete symbol — there is exactly one failure mode, matching the
// grammar's own "no partial result" discipline (§3, §7): no distinction is
// surfaced between "not a mangled name", "truncated", and "recursion limit
// exceeded".
//
// A single leading '.' is stripped before parsing, matching the optional
// TLS-model prefix some MSVC toolchains emit ahead of the '?'.
func Demangle(input string) (*token.Stream, bool) {
	raw := []byte(input)
	if len(raw) > 0 && raw[0] == '.' {
		raw = raw[1:]
	}

	c := NewContext(raw)
	sym, ok := parseSymbol(c)
	if !ok || !c.eof() {
		return nil, false
	}

	return ast.Render(sym, raw), true
}

// ParseSymbol exposes the AST directly, for callers (and tests) that want to
// inspect the parsed structure rather than its rendered text.
func ParseSymbol(input string) (*ast.Symbol, bool) {
	raw := []byte(input)
	if len(raw) > 0 && raw[0] == '.' {
		raw = raw[1:]
	}
	c := NewContext(raw)
	sym, ok := parseSymbol(c)
	if !ok || !c.eof() {
		return nil, false
	}
	return sym, true
}
