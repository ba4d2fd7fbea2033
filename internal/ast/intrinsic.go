package ast

import "fmt"

// IntrinsicKind enumerates the well-known, non-user-identifier names the
// mangled-name grammar can produce: operators, constructors/destructors,
// vtable and RTTI artefacts, and compiler-generated helpers. Roughly 70
// variants are recognised by a real MSVC mangler; this enumeration groups
// them as payload-free tags except for the handful that carry data
// (RTTITypeDescriptor, RTTIBaseClassDescriptor, DynamicInitializer,
// DynamicAtExitDtor, SourceName), which use the Intrinsics struct's extra
// fields below.
type IntrinsicKind int

const (
	IntrinsicCtor IntrinsicKind = iota
	IntrinsicDtor
	IntrinsicOperatorNew
	IntrinsicOperatorDelete
	IntrinsicOperatorAssign
	IntrinsicOperatorShr
	IntrinsicOperatorShl
	IntrinsicOperatorNot
	IntrinsicOperatorEq
	IntrinsicOperatorNeq
	IntrinsicOperatorIndex   // "Array" in the source; renders operator[]
	IntrinsicOperatorCast    // "TypeCast" in the source; renders operator <type>
	IntrinsicOperatorArrow
	IntrinsicOperatorDeref
	IntrinsicOperatorIncr
	IntrinsicOperatorDecr
	IntrinsicOperatorUnaryMinus
	IntrinsicOperatorUnaryPlus
	IntrinsicOperatorAddr
	IntrinsicOperatorArrowStar
	IntrinsicOperatorDiv
	IntrinsicOperatorMod
	IntrinsicOperatorLt
	IntrinsicOperatorLe
	IntrinsicOperatorGt
	IntrinsicOperatorGe
	IntrinsicOperatorComma
	IntrinsicOperatorCall
	IntrinsicOperatorBitNot
	IntrinsicOperatorXor
	IntrinsicOperatorOr
	IntrinsicOperatorLogAnd
	IntrinsicOperatorLogOr
	IntrinsicOperatorMulAssign
	IntrinsicOperatorAddAssign
	IntrinsicOperatorSubAssign
	IntrinsicOperatorDivAssign
	IntrinsicOperatorModAssign
	IntrinsicOperatorShrAssign
	IntrinsicOperatorShlAssign
	IntrinsicOperatorAndAssign
	IntrinsicOperatorOrAssign
	IntrinsicOperatorXorAssign
	IntrinsicVFTable
	IntrinsicVBTable
	IntrinsicVCall
	IntrinsicTypeof
	IntrinsicLocalStaticGuard
	IntrinsicStringLiteral
	IntrinsicVBaseDtor
	IntrinsicVectorDeletingDtor
	IntrinsicDefaultCtorClosure
	IntrinsicScalarDeletingDtor
	IntrinsicVectorCtorIterator
	IntrinsicVectorDtorIterator
	IntrinsicVectorVBaseCtorIterator
	IntrinsicVirtualDisplacementMap
	IntrinsicEHVectorCtorIterator
	IntrinsicEHVectorDtorIterator
	IntrinsicEHVectorVBaseCtorIterator
	IntrinsicCopyCtorClosure
	IntrinsicLocalVFTable
	IntrinsicLocalVFTableCtorClosure
	IntrinsicOperatorNewArray
	IntrinsicOperatorDeleteArray
	IntrinsicPlacementDeleteClosure
	IntrinsicPlacementDeleteArrayClosure
	IntrinsicManagedVectorCtorIterator
	IntrinsicCoroutineHandle
	IntrinsicRTTITypeDescriptor
	IntrinsicRTTIBaseClassDescriptor
	IntrinsicRTTIBaseClassArray
	IntrinsicRTTIClassHierarchyDescriptor
	IntrinsicRTTICompleteObjectLocator
	IntrinsicDynamicInitializer
	IntrinsicDynamicAtExitDtor
	IntrinsicSourceName
)

// Intrinsics is the single Go type used for every mangled-name-level
// intrinsic. Kind selects the variant; the remaining fields are populated
// only by the kinds that need them (a tagged union of structurally similar
// payloads collapsed into one struct, per the design notes' guidance that a
// table-of-variants loses exactly these payload-carrying cases otherwise).
type Intrinsics struct {
	Kind IntrinsicKind

	// RTTIBaseClassDescriptor payload (§4.5, __R1): four signed offsets.
	NVOffset      int32
	PtrOffset     int32
	VBTableOffset int32
	Flags         int32

	// RTTITypeDescriptor payload (§4.5, __R0): the described type and its
	// cv-modifier.
	RTTIType Type
	RTTIMod  Modifiers

	// DynamicInitializer / DynamicAtExitDtor payload: the wrapped symbol.
	Nested *Symbol

	// SourceName payload: the literal used as the intrinsic's rendered name.
	Name Literal
}

func (Intrinsics) unqualifiedPathNode() {}
func (Intrinsics) nestedPathNode()      {}

func (i Intrinsics) String() string {
	return fmt.Sprintf("Intrinsics{%v}", i.Kind)
}

// operatorText is the plain-text rendering for the payload-free operator and
// helper kinds. Kinds not handled here (ctor/dtor, RTTI, dynamic
// initializers, source name) are rendered by printer.go, which needs extra
// context (the enclosing scope, the nested symbol) to do so.
func (k IntrinsicKind) operatorText() (string, bool) {
	switch k {
	case IntrinsicOperatorNew:
		return "operator new", true
	case IntrinsicOperatorDelete:
		return "operator delete", true
	case IntrinsicOperatorAssign:
		return "operator=", true
	case IntrinsicOperatorShr:
		return "operator>>", true
	case IntrinsicOperatorShl:
		return "operator<<", true
	case IntrinsicOperatorNot:
		return "operator!", true
	case IntrinsicOperatorEq:
		return "operator==", true
	case IntrinsicOperatorNeq:
		return "operator!=", true
	case IntrinsicOperatorIndex:
		return "operator[]", true
	case IntrinsicOperatorArrow:
		return "operator->", true
	case IntrinsicOperatorDeref:
		return "operator*", true
	case IntrinsicOperatorIncr:
		return "operator++", true
	case IntrinsicOperatorDecr:
		return "operator--", true
	case IntrinsicOperatorUnaryMinus:
		return "operator-", true
	case IntrinsicOperatorUnaryPlus:
		return "operator+", true
	case IntrinsicOperatorAddr:
		return "operator&", true
	case IntrinsicOperatorArrowStar:
		return "operator->*", true
	case IntrinsicOperatorDiv:
		return "operator/", true
	case IntrinsicOperatorMod:
		return "operator%", true
	case IntrinsicOperatorLt:
		return "operator<", true
	case IntrinsicOperatorLe:
		return "operator<=", true
	case IntrinsicOperatorGt:
		return "operator>", true
	case IntrinsicOperatorGe:
		return "operator>=", true
	case IntrinsicOperatorComma:
		return "operator,", true
	case IntrinsicOperatorCall:
		return "operator()", true
	case IntrinsicOperatorBitNot:
		return "operator~", true
	case IntrinsicOperatorXor:
		return "operator^", true
	case IntrinsicOperatorOr:
		return "operator|", true
	case IntrinsicOperatorLogAnd:
		return "operator&&", true
	case IntrinsicOperatorLogOr:
		return "operator||", true
	case IntrinsicOperatorMulAssign:
		return "operator*=", true
	case IntrinsicOperatorAddAssign:
		return "operator+=", true
	case IntrinsicOperatorSubAssign:
		return "operator-=", true
	case IntrinsicOperatorDivAssign:
		return "operator/=", true
	case IntrinsicOperatorModAssign:
		return "operator%=", true
	case IntrinsicOperatorShrAssign:
		return "operator>>=", true
	case IntrinsicOperatorShlAssign:
		return "operator<<=", true
	case IntrinsicOperatorAndAssign:
		return "operator&=", true
	case IntrinsicOperatorOrAssign:
		return "operator|=", true
	case IntrinsicOperatorXorAssign:
		return "operator^=", true
	case IntrinsicOperatorNewArray:
		return "operator new[]", true
	case IntrinsicOperatorDeleteArray:
		return "operator delete[]", true
	case IntrinsicVFTable:
		return "`vftable'", true
	case IntrinsicVBTable:
		return "`vbtable'", true
	case IntrinsicVCall:
		return "`vcall'", true
	case IntrinsicTypeof:
		return "`typeof'", true
	case IntrinsicLocalStaticGuard:
		return "`local static guard'", true
	case IntrinsicStringLiteral:
		return "`string'", true
	case IntrinsicVBaseDtor:
		return "`vbase destructor'", true
	case IntrinsicVectorDeletingDtor:
		return "`vector deleting destructor'", true
	case IntrinsicDefaultCtorClosure:
		return "`default constructor closure'", true
	case IntrinsicScalarDeletingDtor:
		return "`scalar deleting destructor'", true
	case IntrinsicVectorCtorIterator:
		return "`vector constructor iterator'", true
	case IntrinsicVectorDtorIterator:
		return "`vector destructor iterator'", true
	case IntrinsicVectorVBaseCtorIterator:
		return "`vector vbase constructor iterator'", true
	case IntrinsicVirtualDisplacementMap:
		return "`virtual displacement map'", true
	case IntrinsicEHVectorCtorIterator:
		return "`eh vector constructor iterator'", true
	case IntrinsicEHVectorDtorIterator:
		return "`eh vector destructor iterator'", true
	case IntrinsicEHVectorVBaseCtorIterator:
		return "`eh vector vbase constructor iterator'", true
	case IntrinsicCopyCtorClosure:
		return "`copy constructor closure'", true
	case IntrinsicLocalVFTable:
		return "`local vftable'", true
	case IntrinsicLocalVFTableCtorClosure:
		return "`local vftable constructor closure'", true
	case IntrinsicPlacementDeleteClosure:
		return "`placement delete closure'", true
	case IntrinsicPlacementDeleteArrayClosure:
		return "`placement delete[] closure'", true
	case IntrinsicManagedVectorCtorIterator:
		return "`managed vector constructor iterator'", true
	case IntrinsicCoroutineHandle:
		return "`coroutine handle'", true
	default:
		return "", false
	}
}
