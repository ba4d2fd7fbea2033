package parser

import (
	"testing"

	"github.com/msvcdemangle/symbols/internal/ast"
)

func TestNumberPositive(t *testing.T) {
	c := NewContext([]byte("A@"))
	n, ok := c.number()
	if !ok || n != 0 {
		t.Errorf("number() = (%d, %v), want (0, true)", n, ok)
	}
}

func TestNumberNegative(t *testing.T) {
	// digit '9' represents 10 under the 0..9 -> 1..10 convention.
	c := NewContext([]byte("?9@"))
	n, ok := c.number()
	if !ok || n != -10 {
		t.Errorf("number() = (%d, %v), want (-10, true)", n, ok)
	}
}

func TestNumberMissingTerminator(t *testing.T) {
	c := NewContext([]byte("9"))
	if _, ok := c.number(); ok {
		t.Error("number() should fail without a terminating '@'")
	}
}

func TestIdentReadsUntilAt(t *testing.T) {
	c := NewContext([]byte("hello@rest"))
	lit, ok := c.ident()
	if !ok {
		t.Fatal("ident() failed")
	}
	if got := lit.Resolve(c.input); got != "hello" {
		t.Errorf("ident() = %q, want %q", got, "hello")
	}
	if c.pos != 6 {
		t.Errorf("cursor position = %d, want 6", c.pos)
	}
}

func TestIdentEmptyFails(t *testing.T) {
	c := NewContext([]byte("@"))
	if _, ok := c.ident(); ok {
		t.Error("ident() should fail on an empty run")
	}
}

func TestBackrefTableCapacityAndSilentOverflow(t *testing.T) {
	c := NewContext(nil)
	for i := 0; i < 12; i++ {
		c.memorizeIdent(ast.NewBorrowedLiteral(i, i+1))
	}
	if c.idents.count != 10 {
		t.Errorf("idents.count = %d, want 10 (overflow must be a silent no-op)", c.idents.count)
	}
	if _, ok := c.getIdent(10); ok {
		t.Error("getIdent(10) should fail: only indices 0-9 were ever stored")
	}
}

func TestDescentRecursionCeiling(t *testing.T) {
	c := NewContext(nil)
	ok := true
	for i := 0; i < maxRecursionDepth+1; i++ {
		ok = c.descent()
	}
	if ok {
		t.Error("descent() should fail once the recursion ceiling is exceeded")
	}
}

func TestWithFreshBackrefsIsolatesState(t *testing.T) {
	c := NewContext(nil)
	c.memorizeIdent(ast.NewBorrowedLiteral(0, 1))
	c.withFreshBackrefs(func() {
		if c.idents.count != 0 {
			t.Errorf("fresh table should start empty, got count %d", c.idents.count)
		}
		c.memorizeIdent(ast.NewBorrowedLiteral(1, 2))
	})
	if c.idents.count != 1 {
		t.Errorf("outer table should be restored with its original single entry, got count %d", c.idents.count)
	}
}
