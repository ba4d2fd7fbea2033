package parser

import "github.com/msvcdemangle/symbols/internal/ast"

// parseIntrinsics dispatches on the selector byte(s) that follow the '?'
// already consumed by the caller (§4.5). Simple payload-free operators and
// helpers are a straight byte-to-Kind lookup; a handful of variants carry
// extra data and are parsed specially below.
func parseIntrinsics(c *Context) (ast.Intrinsics, bool) {
	b, ok := c.take()
	if !ok {
		return ast.Intrinsics{}, false
	}

	switch b {
	case '0':
		return ast.Intrinsics{Kind: ast.IntrinsicCtor}, true
	case '1':
		return ast.Intrinsics{Kind: ast.IntrinsicDtor}, true
	case '2':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorNew}, true
	case '3':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorDelete}, true
	case '4':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorAssign}, true
	case '5':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorShr}, true
	case '6':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorShl}, true
	case '7':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorNot}, true
	case '8':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorEq}, true
	case '9':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorNeq}, true
	case 'A':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorIndex}, true
	case 'B':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorCast}, true
	case 'C':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorArrow}, true
	case 'D':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorDeref}, true
	case 'E':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorIncr}, true
	case 'F':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorDecr}, true
	case 'G':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorUnaryMinus}, true
	case 'H':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorUnaryPlus}, true
	case 'I':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorAddr}, true
	case 'J':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorArrowStar}, true
	case 'K':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorDiv}, true
	case 'L':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorMod}, true
	case 'M':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorLt}, true
	case 'N':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorLe}, true
	case 'O':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorGt}, true
	case 'P':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorGe}, true
	case 'Q':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorComma}, true
	case 'R':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorCall}, true
	case 'S':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorBitNot}, true
	case 'T':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorXor}, true
	case 'U':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorOr}, true
	case 'V':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorLogAnd}, true
	case 'W':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorLogOr}, true
	case 'X':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorMulAssign}, true
	case 'Y':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorAddAssign}, true
	case 'Z':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorSubAssign}, true
	case '_':
		return parseIntrinsicsUnderscore(c)
	default:
		return ast.Intrinsics{}, false
	}
}

func parseIntrinsicsUnderscore(c *Context) (ast.Intrinsics, bool) {
	b, ok := c.take()
	if !ok {
		return ast.Intrinsics{}, false
	}
	switch b {
	case '0':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorDivAssign}, true
	case '1':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorModAssign}, true
	case '2':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorShrAssign}, true
	case '3':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorShlAssign}, true
	case '4':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorAndAssign}, true
	case '5':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorOrAssign}, true
	case '6':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorXorAssign}, true
	case '7':
		return ast.Intrinsics{Kind: ast.IntrinsicVFTable}, true
	case '8':
		return ast.Intrinsics{Kind: ast.IntrinsicVBTable}, true
	case '9':
		return ast.Intrinsics{Kind: ast.IntrinsicVCall}, true
	case 'A':
		return ast.Intrinsics{Kind: ast.IntrinsicTypeof}, true
	case 'B':
		return ast.Intrinsics{Kind: ast.IntrinsicLocalStaticGuard}, true
	case 'C':
		return ast.Intrinsics{Kind: ast.IntrinsicStringLiteral}, true
	case 'D':
		return ast.Intrinsics{Kind: ast.IntrinsicVBaseDtor}, true
	case 'E':
		return ast.Intrinsics{Kind: ast.IntrinsicVectorDeletingDtor}, true
	case 'F':
		return ast.Intrinsics{Kind: ast.IntrinsicDefaultCtorClosure}, true
	case 'G':
		return ast.Intrinsics{Kind: ast.IntrinsicScalarDeletingDtor}, true
	case 'H':
		return ast.Intrinsics{Kind: ast.IntrinsicVectorCtorIterator}, true
	case 'I':
		return ast.Intrinsics{Kind: ast.IntrinsicVectorDtorIterator}, true
	case 'J':
		return ast.Intrinsics{Kind: ast.IntrinsicVectorVBaseCtorIterator}, true
	case 'K':
		return ast.Intrinsics{Kind: ast.IntrinsicVirtualDisplacementMap}, true
	case 'L':
		return ast.Intrinsics{Kind: ast.IntrinsicEHVectorCtorIterator}, true
	case 'M':
		return ast.Intrinsics{Kind: ast.IntrinsicEHVectorDtorIterator}, true
	case 'N':
		return ast.Intrinsics{Kind: ast.IntrinsicEHVectorVBaseCtorIterator}, true
	case 'O':
		return ast.Intrinsics{Kind: ast.IntrinsicCopyCtorClosure}, true
	case 'S':
		return ast.Intrinsics{Kind: ast.IntrinsicLocalVFTable}, true
	case 'T':
		return ast.Intrinsics{Kind: ast.IntrinsicLocalVFTableCtorClosure}, true
	case 'U':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorNewArray}, true
	case 'V':
		return ast.Intrinsics{Kind: ast.IntrinsicOperatorDeleteArray}, true
	case 'X':
		return ast.Intrinsics{Kind: ast.IntrinsicPlacementDeleteClosure}, true
	case 'Y':
		return ast.Intrinsics{Kind: ast.IntrinsicPlacementDeleteArrayClosure}, true
	case 'R':
		return parseRTTIDescriptor(c)
	case '_':
		return parseIntrinsicsDoubleUnderscore(c)
	default:
		return ast.Intrinsics{}, false
	}
}

func parseIntrinsicsDoubleUnderscore(c *Context) (ast.Intrinsics, bool) {
	b, ok := c.take()
	if !ok {
		return ast.Intrinsics{}, false
	}
	switch b {
	case 'E':
		sym, ok := parseSymbol(c)
		if !ok {
			return ast.Intrinsics{}, false
		}
		return ast.Intrinsics{Kind: ast.IntrinsicDynamicInitializer, Nested: sym}, true
	case 'F':
		sym, ok := parseSymbol(c)
		if !ok {
			return ast.Intrinsics{}, false
		}
		return ast.Intrinsics{Kind: ast.IntrinsicDynamicAtExitDtor, Nested: sym}, true
	case 'K':
		lit, ok := c.ident()
		if !ok {
			return ast.Intrinsics{}, false
		}
		return ast.Intrinsics{Kind: ast.IntrinsicSourceName, Name: lit}, true
	default:
		return ast.Intrinsics{}, false
	}
}

// parseRTTIDescriptor parses the five _R0.._R4 RTTI artefacts (§4.5).
func parseRTTIDescriptor(c *Context) (ast.Intrinsics, bool) {
	digit, ok := c.base10()
	if !ok {
		return ast.Intrinsics{}, false
	}
	switch digit {
	case 0:
		typ, ok := parseType(c)
		if !ok {
			return ast.Intrinsics{}, false
		}
		mod, ok := parseModifierByte(c)
		if !ok {
			return ast.Intrinsics{}, false
		}
		return ast.Intrinsics{Kind: ast.IntrinsicRTTITypeDescriptor, RTTIType: typ, RTTIMod: mod}, true
	case 1:
		nv, ok1 := c.number()
		ptr, ok2 := c.number()
		vb, ok3 := c.number()
		flags, ok4 := c.number()
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return ast.Intrinsics{}, false
		}
		return ast.Intrinsics{
			Kind:          ast.IntrinsicRTTIBaseClassDescriptor,
			NVOffset:      int32(nv),
			PtrOffset:     int32(ptr),
			VBTableOffset: int32(vb),
			Flags:         int32(flags),
		}, true
	case 2:
		return ast.Intrinsics{Kind: ast.IntrinsicRTTIBaseClassArray}, true
	case 3:
		return ast.Intrinsics{Kind: ast.IntrinsicRTTIClassHierarchyDescriptor}, true
	case 4:
		return ast.Intrinsics{Kind: ast.IntrinsicRTTICompleteObjectLocator}, true
	default:
		return ast.Intrinsics{}, false
	}
}
