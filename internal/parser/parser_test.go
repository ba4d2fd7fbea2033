package parser_test

import (
	"strings"
	"testing"

	"github.com/msvcdemangle/symbols/internal/parser"
)

func demangle(t *testing.T, input string) string {
	t.Helper()
	s, ok := parser.Demangle(input)
	if !ok {
		t.Fatalf("Demangle(%q): expected success", input)
	}
	return s.String()
}

func TestDemangleSimpleVariable(t *testing.T) {
	got := demangle(t, "?x@@3HA")
	for _, want := range []string{"int", "x"} {
		if !strings.Contains(got, want) {
			t.Errorf("Demangle(?x@@3HA) = %q, want substring %q", got, want)
		}
	}
}

func TestDemangleConstVariable(t *testing.T) {
	got := demangle(t, "?x@@3HB")
	for _, want := range []string{"const", "int", "x"} {
		if !strings.Contains(got, want) {
			t.Errorf("Demangle(?x@@3HB) = %q, want substring %q", got, want)
		}
	}
}

func TestDemangleFreeFunction(t *testing.T) {
	got := demangle(t, "?fn@@YAHH@Z")
	for _, want := range []string{"int", "__cdecl", "fn", "(int)"} {
		if !strings.Contains(got, want) {
			t.Errorf("Demangle(?fn@@YAHH@Z) = %q, want substring %q", got, want)
		}
	}
}

func TestDemangleConstructor(t *testing.T) {
	got := demangle(t, "??0A@@QAE@XZ")
	for _, want := range []string{"public:", "__thiscall", "A::A", "(void)"} {
		if !strings.Contains(got, want) {
			t.Errorf("Demangle(??0A@@QAE@XZ) = %q, want substring %q", got, want)
		}
	}
}

func TestDemangleVirtualDestructor(t *testing.T) {
	got := demangle(t, "??1A@@UAE@XZ")
	for _, want := range []string{"public:", "virtual", "__thiscall", "A::~A", "(void)"} {
		if !strings.Contains(got, want) {
			t.Errorf("Demangle(??1A@@UAE@XZ) = %q, want substring %q", got, want)
		}
	}
}

func TestDemangleNamespacedFreeFunction(t *testing.T) {
	got := demangle(t, "?foo@NS@@YAXXZ")
	for _, want := range []string{"void", "__cdecl", "NS::foo", "(void)"} {
		if !strings.Contains(got, want) {
			t.Errorf("Demangle(?foo@NS@@YAXXZ) = %q, want substring %q", got, want)
		}
	}
}

func TestDemangleFunctionReturningPointer(t *testing.T) {
	got := demangle(t, "?f@@YAPAHXZ")
	for _, want := range []string{"int", "*", "__cdecl", "f", "(void)"} {
		if !strings.Contains(got, want) {
			t.Errorf("Demangle(?f@@YAPAHXZ) = %q, want substring %q", got, want)
		}
	}
}

// TestDemangleFunctionReturningFunctionPointer exercises the pre/post
// precedence rule: a function returning a pointer to function must
// parenthesise the pointer marker so it binds to the enclosing function's
// name rather than the returned function type's own parameter list.
func TestDemangleFunctionReturningFunctionPointer(t *testing.T) {
	got := demangle(t, "?g@@YAP6AHH@ZXZ")
	for _, want := range []string{"int", "(__cdecl*__cdecl g(void))(int)"} {
		if !strings.Contains(got, want) {
			t.Errorf("Demangle(?g@@YAP6AHH@ZXZ) = %q, want substring %q", got, want)
		}
	}
}

func TestDemangleVFTable(t *testing.T) {
	got := demangle(t, "??_7A@@6B@")
	for _, want := range []string{"const", "A::`vftable'"} {
		if !strings.Contains(got, want) {
			t.Errorf("Demangle(??_7A@@6B@) = %q, want substring %q", got, want)
		}
	}
}

func TestDemangleFailsOnGarbage(t *testing.T) {
	tests := []string{
		"",
		"not a mangled name",
		"?",
		"?x@@3H", // truncated: missing terminal modifier byte
	}
	for _, in := range tests {
		if _, ok := parser.Demangle(in); ok {
			t.Errorf("Demangle(%q): expected failure, got success", in)
		}
	}
}

func TestDemangleStripsLeadingDot(t *testing.T) {
	a := demangle(t, "?x@@3HA")
	b := demangle(t, ".?x@@3HA")
	if a != b {
		t.Errorf("leading '.' should be stripped: %q != %q", a, b)
	}
}

func TestParseSymbolExposesAST(t *testing.T) {
	sym, ok := parser.ParseSymbol("?x@@3HA")
	if !ok {
		t.Fatal("ParseSymbol(?x@@3HA): expected success")
	}
	if sym.Path == nil {
		t.Fatal("expected non-nil Path")
	}
}

func TestDemangleDeeplyNestedScopeFails(t *testing.T) {
	// Each "??x@" opens one NestedSymbol scope component recursing back into
	// parseSymbol; past the recursion ceiling the parse must fail cleanly
	// rather than overflow the goroutine stack.
	var sb strings.Builder
	sb.WriteString("?x@")
	for i := 0; i < 300; i++ {
		sb.WriteString("??x@")
	}
	for i := 0; i < 301; i++ {
		sb.WriteString("@")
	}
	if _, ok := parser.Demangle(sb.String()); ok {
		t.Errorf("expected deeply nested input to fail, got success")
	}
}
