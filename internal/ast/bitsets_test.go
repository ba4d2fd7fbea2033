package ast_test

import (
	"testing"

	"github.com/msvcdemangle/symbols/internal/ast"
)

func TestModifiersString(t *testing.T) {
	tests := []struct {
		m    ast.Modifiers
		want string
	}{
		{0, ""},
		{ast.ModConst, "const"},
		{ast.ModVolatile, "volatile"},
		{ast.ModConst | ast.ModVolatile, "const volatile"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Modifiers(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestStorageScopeVisibility(t *testing.T) {
	tests := []struct {
		s    ast.StorageScope
		want string
	}{
		{ast.ScopePublic, "public"},
		{ast.ScopeProtected, "protected"},
		{ast.ScopePrivate, "private"},
		{ast.ScopeGlobal, ""},
		{ast.ScopePublic | ast.ScopeVirtual, "public"},
	}
	for _, tt := range tests {
		if got := tt.s.Visibility(); got != tt.want {
			t.Errorf("StorageScope(%d).Visibility() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestCallingConvString(t *testing.T) {
	tests := []struct {
		c    ast.CallingConv
		want string
	}{
		{ast.CallCdecl, "__cdecl"},
		{ast.CallThiscall, "__thiscall"},
		{ast.CallStdcall, "__stdcall"},
		{ast.CallVectorcall, "__vectorcall"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("CallingConv(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
