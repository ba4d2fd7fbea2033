// Package invariant walks a parsed Symbol and reports structural violations
// that a successful parse should never produce — a last line of defence
// against a grammar rule that parses something it shouldn't, grounded on the
// same collect-errors-while-walking shape the teacher's semantic checker
// used for its own symbol-table walk.
package invariant

import (
	"fmt"

	"github.com/msvcdemangle/symbols/internal/ast"
)

// Violation is one broken invariant found while walking a Symbol.
type Violation struct {
	Msg string
}

func (v Violation) String() string { return v.Msg }

type walker struct {
	input      []byte
	violations []Violation
}

func (w *walker) report(format string, args ...any) {
	w.violations = append(w.violations, Violation{Msg: fmt.Sprintf(format, args...)})
}

// Check walks sym and returns every violation found. input is the mangled
// byte string sym was parsed from; it is kept on the walker but not
// consulted: MD5 hashes are checked by length only, and borrowed literal
// ranges are not bounds-checked. A nil/empty result means the symbol is
// internally consistent; it says nothing about whether sym matches the
// author's intent, only that the parser's own invariants held.
func Check(sym *ast.Symbol, input []byte) []Violation {
	w := &walker{input: input}
	if sym == nil {
		w.report("nil symbol")
		return w.violations
	}
	w.checkPath(sym.Path)
	w.checkType(sym.Type)
	return w.violations
}

func (w *walker) checkPath(p *ast.Path) {
	if p == nil {
		w.report("nil path")
		return
	}
	w.checkUnqualifiedPath(p.Leaf)
	for _, comp := range p.Scope {
		w.checkNestedPath(comp)
	}
}

func (w *walker) checkUnqualifiedPath(leaf ast.UnqualifiedPath) {
	switch v := leaf.(type) {
	case ast.MD5Name:
		if len(v.Hash) != 32 {
			w.report("MD5 name has %d hex characters, want 32", len(v.Hash))
		}
	case ast.UnqualifiedTemplate:
		w.checkTemplate(v.Template)
	case ast.Intrinsics:
		w.checkIntrinsics(v)
	}
}

func (w *walker) checkNestedPath(n ast.NestedPath) {
	switch v := n.(type) {
	case ast.MD5Name:
		if len(v.Hash) != 32 {
			w.report("MD5 scope component has %d hex characters, want 32", len(v.Hash))
		}
	case ast.NestedTemplate:
		w.checkTemplate(v.Template)
	case ast.NestedSymbol:
		if v.Symbol == nil {
			w.report("nested symbol scope component is nil")
			return
		}
		w.checkPath(v.Symbol.Path)
		w.checkType(v.Symbol.Type)
	case ast.Intrinsics:
		w.checkIntrinsics(v)
	}
}

func (w *walker) checkTemplate(t *ast.Template) {
	if t == nil {
		w.report("nil template")
		return
	}
	for _, p := range t.Params {
		w.checkType(p)
	}
}

func (w *walker) checkIntrinsics(i ast.Intrinsics) {
	if i.Kind == ast.IntrinsicRTTIBaseClassDescriptor {
		// NVOffset/PtrOffset/VBTableOffset/Flags are signed MSVC-convention
		// integers; no range restricts them beyond what int32 already bounds.
		return
	}
	if i.Kind == ast.IntrinsicDynamicInitializer || i.Kind == ast.IntrinsicDynamicAtExitDtor {
		if i.Nested == nil {
			w.report("%v intrinsic missing its wrapped symbol", i.Kind)
			return
		}
		w.checkPath(i.Nested.Path)
		w.checkType(i.Nested.Type)
	}
}

func (w *walker) checkType(t ast.Type) {
	switch v := t.(type) {
	case nil:
		return
	case ast.Array:
		if v.Length < 0 {
			w.report("array has negative length %d", v.Length)
		}
		w.checkType(v.Elem)
	case ast.Pointer:
		w.checkType(v.Pointee)
	case ast.Reference:
		w.checkType(v.Pointee)
	case ast.RValueReference:
		w.checkType(v.Pointee)
	case ast.UDT:
		w.checkPath(v.Path)
	case ast.Function:
		w.checkType(v.Return)
		for _, p := range v.Params {
			w.checkType(p)
		}
	case ast.MemberFunction:
		if bits := v.Storage.Visibility(); bits == "" && !v.Storage.Has(ast.ScopeGlobal) {
			w.report("member function has no visibility bit set")
		}
		w.checkType(v.Return)
		for _, p := range v.Params {
			w.checkType(p)
		}
	case ast.MemberFunctionPtr:
		w.checkPath(v.Class)
		w.checkType(v.Return)
		for _, p := range v.Params {
			w.checkType(p)
		}
	case ast.Variable:
		w.checkType(v.Elem)
	case ast.VFTable:
		w.checkPath(v.Path)
	case ast.VBTable:
		w.checkPath(v.Path)
	case ast.ExternC:
		w.checkType(v.Inner)
	case ast.TemplateParamIdx:
		if v.N < 0 {
			w.report("template parameter index is negative before sign flag applied: %d", v.N)
		}
	}
}
