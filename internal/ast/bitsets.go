package ast

// Modifiers is a bit-set of cv-qualifiers and pointer attributes. The same
// bit-set shape is reused for a function's this-qualifiers (Qualifiers is a
// plain alias, not a distinct type, since the grammar and the rendering
// rules treat them identically).
type Modifiers uint8

const (
	ModConst Modifiers = 1 << iota
	ModVolatile
	ModFar
	ModPtr64
	ModUnaligned
	ModRestrict
	ModLValue
	ModRValue
)

// Qualifiers is the modifier set attached to a function's implicit this
// parameter, or to the outer face of a pointer/reference.
type Qualifiers = Modifiers

// Has reports whether every bit in mask is set in m.
func (m Modifiers) Has(mask Modifiers) bool { return m&mask == mask }

// String renders the modifiers in the conventional "const volatile" order,
// used by the formatter when emitting a type's trailing qualifiers.
func (m Modifiers) String() string {
	s := ""
	if m.Has(ModConst) {
		s += "const "
	}
	if m.Has(ModVolatile) {
		s += "volatile "
	}
	if s != "" {
		s = s[:len(s)-1]
	}
	return s
}

// StorageScope is the bit-set attached to a member variable or function:
// visibility, linkage, and the virtual/far/thunk/adjust markers.
type StorageScope uint16

const (
	ScopePublic StorageScope = 1 << iota
	ScopePrivate
	ScopeProtected
	ScopeGlobal
	ScopeStatic
	ScopeVirtual
	ScopeFar
	ScopeThunk
	ScopeAdjust
)

// Has reports whether every bit in mask is set in s.
func (s StorageScope) Has(mask StorageScope) bool { return s&mask == mask }

// Visibility renders the public/private/protected prefix the formatter puts
// before every member symbol, or "" for file-scope symbols with no access
// specifier (e.g. global variables).
func (s StorageScope) Visibility() string {
	switch {
	case s.Has(ScopePublic):
		return "public"
	case s.Has(ScopeProtected):
		return "protected"
	case s.Has(ScopePrivate):
		return "private"
	default:
		return ""
	}
}

// CallingConv is one of the ABI argument-passing conventions a function or
// member function may be decorated with.
type CallingConv int

const (
	CallCdecl CallingConv = iota
	CallPascal
	CallThiscall
	CallStdcall
	CallFastcall
	CallClrcall
	CallEabicall
	CallVectorcall
)

// String renders the calling convention's source-level spelling.
func (c CallingConv) String() string {
	switch c {
	case CallCdecl:
		return "__cdecl"
	case CallPascal:
		return "__pascal"
	case CallThiscall:
		return "__thiscall"
	case CallStdcall:
		return "__stdcall"
	case CallFastcall:
		return "__fastcall"
	case CallClrcall:
		return "__clrcall"
	case CallEabicall:
		return "__eabicall"
	case CallVectorcall:
		return "__vectorcall"
	default:
		return "__cdecl"
	}
}

// StorageVariable is the kind of a Variable's storage (§4.9): private,
// protected, or public static member, file-scope global, or function-local
// static.
type StorageVariable int

const (
	StoragePrivateStatic StorageVariable = iota
	StorageProtectedStatic
	StoragePublicStatic
	StorageGlobal
	StorageFunctionLocalStatic
)
