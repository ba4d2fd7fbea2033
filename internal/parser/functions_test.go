package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/msvcdemangle/symbols/internal/ast"
)

func TestParseModifierByte(t *testing.T) {
	tests := []struct {
		in   byte
		want ast.Modifiers
	}{
		{'A', 0},
		{'B', ast.ModConst},
		{'C', ast.ModVolatile},
		{'D', ast.ModConst | ast.ModVolatile},
		{'E', ast.ModFar},
	}
	for _, tt := range tests {
		c := NewContext([]byte{tt.in})
		got, ok := parseModifierByte(c)
		if !ok || got != tt.want {
			t.Errorf("parseModifierByte(%q) = (%v, %v), want (%v, true)", tt.in, got, ok, tt.want)
		}
	}
}

func TestParseCallingConvention(t *testing.T) {
	tests := []struct {
		in   byte
		want ast.CallingConv
	}{
		{'A', ast.CallCdecl},
		{'E', ast.CallThiscall},
		{'G', ast.CallStdcall},
		{'Q', ast.CallVectorcall},
	}
	for _, tt := range tests {
		c := NewContext([]byte{tt.in})
		got, ok := parseCallingConvention(c)
		if !ok || got != tt.want {
			t.Errorf("parseCallingConvention(%q) = (%v, %v), want (%v, true)", tt.in, got, ok, tt.want)
		}
	}
}

func TestParseParamsVoidConsumesTrailingZ(t *testing.T) {
	// A bare "X" means void: the list ends right there, and a following
	// overall-symbol terminator 'Z' (present in real manglings) must still
	// be consumed rather than left dangling.
	c := NewContext([]byte("XZ"))
	params, ok := parseParams(c)
	if !ok {
		t.Fatal("parseParams failed")
	}
	if len(params) != 0 {
		t.Errorf("got %d params, want 0 (void)", len(params))
	}
	if !c.eof() {
		t.Error("trailing 'Z' should have been consumed")
	}
}

func TestParseArraySingleDimension(t *testing.T) {
	// MSVC-convention digit '0' = 1 dimension; digit '2' = length 3;
	// element type 'H' (int), no modifier override.
	c := NewContext([]byte("0@2@H"))
	typ, ok := parseArray(c)
	if !ok {
		t.Fatal("parseArray failed")
	}
	arr, isArr := typ.(ast.Array)
	if !isArr {
		t.Fatalf("expected ast.Array, got %T", typ)
	}
	if arr.Length != 3 {
		t.Errorf("array length = %d, want 3", arr.Length)
	}
	if _, isPrim := arr.Elem.(ast.Primitive); !isPrim {
		t.Errorf("array element = %T, want ast.Primitive", arr.Elem)
	}
}

func TestParseArrayRejectsNegativeDimensionCount(t *testing.T) {
	c := NewContext([]byte("?0@2@H"))
	if _, ok := parseArray(c); ok {
		t.Error("parseArray should reject a negative dimension count")
	}
}

func TestParseParamsBackreference(t *testing.T) {
	// "PAH" (pointer to int, 3 bytes, memorised) then "0" (back-reference to
	// slot 0). A single-byte primitive would never be memorised (§3.2), so
	// the first parameter must consume more than one byte for this to work.
	c := NewContext([]byte("PAH0@"))
	params, ok := parseParams(c)
	if !ok {
		t.Fatal("parseParams failed")
	}
	if len(params) != 2 {
		t.Fatalf("got %d params, want 2", len(params))
	}
	if _, ok := params[0].(ast.Pointer); !ok {
		t.Errorf("params[0] = %T, want ast.Pointer", params[0])
	}
	if params[1] != params[0] {
		t.Errorf("params[1] should equal the back-referenced params[0]")
	}
}

// TestParseParamsMemorizesBackrefTable verifies the parameter back-reference
// table's actual contents, not just that a later '0' resolves to something
// equal - exactly the back-ref-table-contents check a worked parse example
// calls for.
func TestParseParamsMemorizesBackrefTable(t *testing.T) {
	c := NewContext([]byte("PAH0@"))
	if _, ok := parseParams(c); !ok {
		t.Fatal("parseParams failed")
	}
	want := ast.Pointer{Pointee: ast.Primitive{Kind: ast.PrimInt}, Mod: 0}
	got, ok := c.types.get(0)
	if !ok {
		t.Fatal("types backref table slot 0 is empty")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("backref table slot 0 mismatch (-want +got):\n%s", diff)
	}
	if _, ok := c.types.get(1); ok {
		t.Error("only the first distinct param type should have been memorized")
	}
}

func TestParseMemberFunctionPtrKeepsStorageScope(t *testing.T) {
	// "A@@" - class A, no scope; "S" - public+static storage scope byte;
	// "A" - cdecl; "X" return, "X" void params, "Z" terminator. The storage
	// byte is only read when qualifier parsing is off.
	c := NewContext([]byte("A@@SAXXZ"))
	c.parsingQualifiers = false
	typ, ok := parseMemberFunctionPtr(c)
	if !ok {
		t.Fatal("parseMemberFunctionPtr failed")
	}
	mfp, ok := typ.(ast.MemberFunctionPtr)
	if !ok {
		t.Fatalf("got %T, want ast.MemberFunctionPtr", typ)
	}
	want := ast.ScopePublic | ast.ScopeStatic
	if mfp.Storage != want {
		t.Errorf("Storage = %v, want %v", mfp.Storage, want)
	}
}
