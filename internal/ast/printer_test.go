package ast_test

import (
	"strings"
	"testing"

	"github.com/msvcdemangle/symbols/internal/ast"
)

func sym(path *ast.Path, typ ast.Type) *ast.Symbol {
	return &ast.Symbol{Path: path, Type: typ}
}

func literalPath(name string) *ast.Path {
	return &ast.Path{Leaf: ast.UnqualifiedLiteral{Name: ast.NewBorrowedLiteral(0, len(name))}}
}

func TestRenderVariable(t *testing.T) {
	input := []byte("x")
	path := literalPath("x")
	s := ast.Render(sym(path, ast.Variable{Storage: ast.StorageGlobal, Elem: ast.Primitive{Kind: ast.PrimInt}}), input)

	got := s.String()
	if !strings.Contains(got, "int") || !strings.Contains(got, "x") {
		t.Errorf("expected rendered variable to contain type and name, got %q", got)
	}
}

func TestRenderFreeFunction(t *testing.T) {
	input := []byte("fn")
	path := literalPath("fn")
	f := ast.Function{
		CallConv: ast.CallCdecl,
		Return:   ast.Primitive{Kind: ast.PrimInt},
		Params:   []ast.Type{ast.Primitive{Kind: ast.PrimInt}},
	}
	s := ast.Render(sym(path, f), input)

	got := s.String()
	for _, want := range []string{"int", "__cdecl", "fn", "(int)"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in rendered function, got %q", want, got)
		}
	}
}

func TestRenderMemberFunctionVoidParams(t *testing.T) {
	input := []byte("A")
	path := &ast.Path{
		Leaf:  ast.UnqualifiedLiteral{Name: ast.NewBorrowedLiteral(0, 1)},
		Scope: ast.Scope{ast.NestedLiteral{Name: ast.NewBorrowedLiteral(0, 1)}},
	}
	m := ast.MemberFunction{
		Storage:  ast.ScopePublic,
		CallConv: ast.CallThiscall,
		Return:   ast.Unit{},
	}
	s := ast.Render(sym(path, m), input)

	got := s.String()
	for _, want := range []string{"public", "__thiscall", "(void)"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in rendered member function, got %q", want, got)
		}
	}
}

func TestRenderConstructorUsesClassName(t *testing.T) {
	input := []byte("A")
	path := &ast.Path{
		Leaf:  ast.Intrinsics{Kind: ast.IntrinsicCtor},
		Scope: ast.Scope{ast.NestedLiteral{Name: ast.NewBorrowedLiteral(0, 1)}},
	}
	m := ast.MemberFunction{Storage: ast.ScopePublic, CallConv: ast.CallThiscall, Return: ast.Unit{}}
	s := ast.Render(sym(path, m), input)

	got := s.String()
	if !strings.Contains(got, "A::A") {
		t.Errorf("expected constructor name 'A::A', got %q", got)
	}
}

func TestRenderCastOperatorPutsReturnTypeAfterName(t *testing.T) {
	input := []byte("A")
	path := &ast.Path{
		Leaf:  ast.Intrinsics{Kind: ast.IntrinsicOperatorCast},
		Scope: ast.Scope{ast.NestedLiteral{Name: ast.NewBorrowedLiteral(0, 1)}},
	}
	m := ast.MemberFunction{
		Storage:    ast.ScopePublic,
		Qualifiers: ast.ModConst,
		CallConv:   ast.CallThiscall,
		Return:     ast.Primitive{Kind: ast.PrimInt},
	}
	s := ast.Render(sym(path, m), input)

	got := s.String()
	for _, want := range []string{"public:", "__thiscall", "A::operator int", "(void)"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render(cast operator) = %q, want substring %q", got, want)
		}
	}
	if strings.Contains(got, "const") {
		t.Errorf("Render(cast operator) = %q, should not carry a this-qualifier suffix", got)
	}
}

func TestRenderDestructorUsesTildeClassName(t *testing.T) {
	input := []byte("A")
	path := &ast.Path{
		Leaf:  ast.Intrinsics{Kind: ast.IntrinsicDtor},
		Scope: ast.Scope{ast.NestedLiteral{Name: ast.NewBorrowedLiteral(0, 1)}},
	}
	m := ast.MemberFunction{Storage: ast.ScopePublic | ast.ScopeVirtual, CallConv: ast.CallThiscall, Return: ast.Unit{}}
	s := ast.Render(sym(path, m), input)

	got := s.String()
	if !strings.Contains(got, "A::~A") {
		t.Errorf("expected destructor name 'A::~A', got %q", got)
	}
	if !strings.Contains(got, "virtual") {
		t.Errorf("expected 'virtual' for a virtual destructor, got %q", got)
	}
}

func TestRenderPointerToFunctionParenthesises(t *testing.T) {
	input := []byte("x")
	path := literalPath("x")
	fn := ast.Function{CallConv: ast.CallCdecl, Return: ast.Primitive{Kind: ast.PrimVoid}}
	v := ast.Variable{Storage: ast.StorageGlobal, Elem: ast.Pointer{Pointee: fn}}
	s := ast.Render(sym(path, v), input)

	got := s.String()
	if !strings.Contains(got, "(__cdecl*x)") {
		t.Errorf("expected parenthesised pointer-to-function declarator, got %q", got)
	}
}

func TestRenderArrayOfInt(t *testing.T) {
	input := []byte("arr")
	path := literalPath("arr")
	v := ast.Variable{Storage: ast.StorageGlobal, Elem: ast.Array{Length: 4, Elem: ast.Primitive{Kind: ast.PrimInt}}}
	s := ast.Render(sym(path, v), input)

	got := s.String()
	if !strings.Contains(got, "[4]") {
		t.Errorf("expected array dimension [4], got %q", got)
	}
}

func TestRenderTemplateParameterIndex(t *testing.T) {
	input := []byte("x")
	path := literalPath("x")
	v := ast.Variable{Storage: ast.StorageGlobal, Elem: ast.TemplateParamIdx{N: 0}}
	s := ast.Render(sym(path, v), input)

	got := s.String()
	if !strings.Contains(got, "`template-parameter-0'") {
		t.Errorf("expected template-parameter placeholder, got %q", got)
	}
}

func TestRenderMD5Name(t *testing.T) {
	input := []byte("")
	path := &ast.Path{Leaf: ast.MD5Name{Hash: strings.Repeat("a", 32)}}
	s := ast.Render(sym(path, ast.Unit{}), input)

	got := s.String()
	if !strings.Contains(got, strings.Repeat("a", 32)) {
		t.Errorf("expected MD5 hash in rendered output, got %q", got)
	}
}

func TestRenderRTTITypeDescriptorUsesBacktickMarker(t *testing.T) {
	input := []byte("")
	path := &ast.Path{Leaf: ast.Intrinsics{
		Kind:     ast.IntrinsicRTTITypeDescriptor,
		RTTIType: ast.Primitive{Kind: ast.PrimInt},
	}}
	s := ast.Render(sym(path, ast.Unit{}), input)

	got := s.String()
	if !strings.Contains(got, "int") || !strings.Contains(got, "`RTTI Type Descriptor'") {
		t.Errorf("Render(RTTI type descriptor) = %q, want type + backtick marker", got)
	}
}

func TestRenderRTTIBaseClassDescriptorShowsOffsets(t *testing.T) {
	input := []byte("")
	path := &ast.Path{Leaf: ast.Intrinsics{
		Kind:          ast.IntrinsicRTTIBaseClassDescriptor,
		NVOffset:      1,
		PtrOffset:     2,
		VBTableOffset: 3,
		Flags:         4,
	}}
	s := ast.Render(sym(path, ast.Unit{}), input)

	got := s.String()
	if !strings.Contains(got, "`RTTI Base Class Descriptor at (1, 2, 3, 4)'") {
		t.Errorf("Render(RTTI base class descriptor) = %q, want offsets rendered", got)
	}
}
