package ast

import "fmt"

// Type is the C++ type tree: arithmetic, pointer/reference, array, function
// family, user-defined-type reference, and the handful of MSVC-specific
// artefacts (vftable/vbtable/vcall thunk markers, the extern-C wrapper, the
// template-parameter index). The ~45 variants the grammar recognises are
// represented here as a smaller set of structurally distinct Go types plus
// enums for the cases that differ only by a payload code (every primitive
// scalar; union/struct/class/enum) — the tagged-union shape the grammar
// notes call out, without a one-struct-per-letter blowup.
type Type interface {
	typeNode()
}

// PrimitiveKind enumerates the arithmetic and void scalar types.
type PrimitiveKind int

const (
	PrimVoid PrimitiveKind = iota
	PrimChar
	PrimSignedChar
	PrimUnsignedChar
	PrimShort
	PrimUnsignedShort
	PrimInt
	PrimUnsignedInt
	PrimLong
	PrimUnsignedLong
	PrimFloat
	PrimDouble
	PrimLongDouble
	PrimBool
	PrimInt64
	PrimUInt64
	PrimWChar
	PrimChar8
	PrimChar16
	PrimChar32
)

// String renders the primitive's C++ spelling.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimVoid:
		return "void"
	case PrimChar:
		return "char"
	case PrimSignedChar:
		return "signed char"
	case PrimUnsignedChar:
		return "unsigned char"
	case PrimShort:
		return "short"
	case PrimUnsignedShort:
		return "unsigned short"
	case PrimInt:
		return "int"
	case PrimUnsignedInt:
		return "unsigned int"
	case PrimLong:
		return "long"
	case PrimUnsignedLong:
		return "unsigned long"
	case PrimFloat:
		return "float"
	case PrimDouble:
		return "double"
	case PrimLongDouble:
		return "long double"
	case PrimBool:
		return "bool"
	case PrimInt64:
		return "__int64"
	case PrimUInt64:
		return "unsigned __int64"
	case PrimWChar:
		return "wchar_t"
	case PrimChar8:
		return "char8_t"
	case PrimChar16:
		return "char16_t"
	case PrimChar32:
		return "char32_t"
	default:
		return "int"
	}
}

// Primitive is an arithmetic or void scalar type.
type Primitive struct{ Kind PrimitiveKind }

func (Primitive) typeNode() {}

// Pointer is a pointer to Pointee, with the baked-in cv-qualification that
// the P/Q/R/S dispatch byte encodes plus whatever the modifier stack
// contributed.
type Pointer struct {
	Pointee Type
	Mod     Modifiers
}

func (Pointer) typeNode() {}

// Reference is a C++ lvalue reference to Pointee.
type Reference struct {
	Pointee Type
	Mod     Modifiers
}

func (Reference) typeNode() {}

// RValueReference is a C++ rvalue reference ($$Q) to Pointee.
type RValueReference struct {
	Pointee Type
	Mod     Modifiers
}

func (RValueReference) typeNode() {}

// Array is one dimension of a multi-dimensional array. Arrays of more than
// one dimension chain through Elem rather than holding a single node with a
// dimension list of an array-of-arrays shape.
type Array struct {
	Length int64
	Elem   Type
	Mod    Modifiers
}

func (Array) typeNode() {}

// UDTKind distinguishes union/struct/class/enum user-defined types.
type UDTKind int

const (
	UDTUnion UDTKind = iota
	UDTStruct
	UDTClass
	UDTEnum
)

func (k UDTKind) String() string {
	switch k {
	case UDTUnion:
		return "union"
	case UDTStruct:
		return "struct"
	case UDTClass:
		return "class"
	case UDTEnum:
		return "enum"
	default:
		return "class"
	}
}

// UDT is a reference to a named union, struct, class, or enum.
type UDT struct {
	Kind UDTKind
	Path *Path
}

func (UDT) typeNode() {}

// Function is a free function's signature: calling convention, optional
// this-qualifiers (only populated when the grammar position allowed
// qualifier parsing), return type, and parameter list.
type Function struct {
	CallConv   CallingConv
	Qualifiers Qualifiers
	Return     Type
	Params     []Type
	Variadic   bool // trailing Z: non-throwing, currently not surfaced in output
}

func (Function) typeNode() {}

// MemberFunction is a non-static member function's signature.
type MemberFunction struct {
	Storage    StorageScope
	Qualifiers Qualifiers
	CallConv   CallingConv
	Return     Type
	Params     []Type
	Variadic   bool
}

func (MemberFunction) typeNode() {}

// MemberFunctionPtr is a pointer-to-member-function type.
type MemberFunctionPtr struct {
	Class      *Path
	Ptr64      bool
	Storage    StorageScope
	Qualifiers Qualifiers
	CallConv   CallingConv
	Return     Type
	Params     []Type
	Variadic   bool
}

func (MemberFunctionPtr) typeNode() {}

// TemplateParamIdx is an unresolved template-parameter reference ($D<n> or
// ?<n>). Rendering is the minimum-viable `template-parameter-<n>'.
type TemplateParamIdx struct {
	N        int64
	Negative bool
}

func (TemplateParamIdx) typeNode() {}

// Constant is an integral constant baked into a type position ($0<num>).
type Constant struct{ Value int64 }

func (Constant) typeNode() {}

// Variable is a data symbol's type: its storage class, modifiers, and
// underlying type.
type Variable struct {
	Storage StorageVariable
	Mod     Modifiers
	Elem    Type
}

func (Variable) typeNode() {}

// VFTable is a virtual function table's type, scoped under Path.
type VFTable struct {
	Path *Path
	Mod  Modifiers
}

func (VFTable) typeNode() {}

// VBTable is a virtual base table's type, scoped under Path.
type VBTable struct {
	Path *Path
	Mod  Modifiers
}

func (VBTable) typeNode() {}

// VCallThunk is a virtual call thunk's type: a this-adjustment offset plus
// calling convention.
type VCallThunk struct {
	Offset   int64
	CallConv CallingConv
}

func (VCallThunk) typeNode() {}

// ExternC wraps a type declared with C linkage.
type ExternC struct{ Inner Type }

func (ExternC) typeNode() {}

// Unit is the empty placeholder type: a void return with no text, or one of
// the $$V/$$Z/$S empty markers.
type Unit struct{}

func (Unit) typeNode() {}

func (p Primitive) String() string { return fmt.Sprintf("Primitive{%s}", p.Kind) }

