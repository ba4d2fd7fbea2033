package parser

import "github.com/msvcdemangle/symbols/internal/ast"

// parseModifierByte reads a single cv-modifier byte (§4.9): A/Q carry no
// qualification, B/R add const, C/S add volatile, D/T add both, and E/F/G/H
// repeat A/B/C/D with an added far marker. Used both for a Variable's
// element type and as the inner half of the pointee modifier merge in
// parseWithModifierPrefix.
func parseModifierByte(c *Context) (ast.Modifiers, bool) {
	b, ok := c.take()
	if !ok {
		return 0, false
	}
	switch b {
	case 'A':
		return 0, true
	case 'B':
		return ast.ModConst, true
	case 'C':
		return ast.ModVolatile, true
	case 'D':
		return ast.ModConst | ast.ModVolatile, true
	case 'E':
		return ast.ModFar, true
	case 'F':
		return ast.ModConst | ast.ModFar, true
	case 'G':
		return ast.ModVolatile | ast.ModFar, true
	case 'H':
		return ast.ModConst | ast.ModVolatile | ast.ModFar, true
	case 'Q':
		return 0, true
	case 'R':
		return ast.ModConst, true
	case 'S':
		return ast.ModVolatile, true
	case 'T':
		return ast.ModConst | ast.ModVolatile, true
	default:
		return 0, false
	}
}

// parseCallingConvention reads the single byte naming a function's ABI
// convention (§4.9).
func parseCallingConvention(c *Context) (ast.CallingConv, bool) {
	b, ok := c.take()
	if !ok {
		return 0, false
	}
	switch b {
	case 'A', 'B':
		return ast.CallCdecl, true
	case 'C', 'D':
		return ast.CallPascal, true
	case 'E', 'F':
		return ast.CallThiscall, true
	case 'G', 'H':
		return ast.CallStdcall, true
	case 'I', 'J':
		return ast.CallFastcall, true
	case 'M', 'N':
		return ast.CallClrcall, true
	case 'O', 'P':
		return ast.CallEabicall, true
	case 'Q', 'R':
		return ast.CallVectorcall, true
	default:
		return 0, false
	}
}

// parseFunctionQualifiers reads the run of up to four this-qualifier bytes
// that precede a member function's calling convention: 'E' (ptr64), 'I'
// (restrict), 'F' (unaligned), and a mutually-exclusive lvalue/rvalue-ref
// pair ('G'/'H'), where either side terminates the run without being
// consumed once the other has matched (§4.9).
func parseFunctionQualifiers(c *Context) ast.Qualifiers {
	var q ast.Qualifiers
	for i := 0; i < 4; i++ {
		b, ok := c.peek()
		if !ok {
			break
		}
		switch b {
		case 'E':
			q |= ast.ModPtr64
		case 'I':
			q |= ast.ModRestrict
		case 'F':
			q |= ast.ModUnaligned
		case 'G':
			if q.Has(ast.ModRValue) {
				return q
			}
			q |= ast.ModLValue
		case 'H':
			if q.Has(ast.ModLValue) {
				return q
			}
			q |= ast.ModRValue
		default:
			return q
		}
		c.pos++
	}
	return q
}

// parseThisModifier reads the const/volatile qualifier byte a member
// function's this pointer carries (A/B/C/D, same spelling as
// parseModifierByte's first four cases, per §4.9).
func parseThisModifier(c *Context) (ast.Qualifiers, bool) {
	b, ok := c.take()
	if !ok {
		return 0, false
	}
	switch b {
	case 'A':
		return 0, true
	case 'B':
		return ast.ModConst, true
	case 'C':
		return ast.ModVolatile, true
	case 'D':
		return ast.ModConst | ast.ModVolatile, true
	default:
		return 0, false
	}
}

// parseReturnType parses a function's return type: an optional leading
// `?<A|B|C|D>` modifier override pushed onto the modifier stack ahead of the
// recursive parse, or a bare '@' meaning void with no text (§4.8).
func parseReturnType(c *Context) (ast.Type, bool) {
	if c.eat('@') {
		// No return type at all (constructor/destructor), distinct from an
		// explicit "void" return spelled with the 'X' primitive byte.
		return nil, true
	}
	if c.eat('?') {
		mod, ok := parseThisModifier(c)
		if !ok {
			return nil, false
		}
		c.pushModifiers(mod)
		defer c.popModifiers()
	}
	return parseType(c)
}

// parseParams parses a parameter list: a run of types terminated by '@' (or
// end of input), where a single decimal digit back-references a
// previously-memorised type and any other type that consumed more than one
// byte is itself memorised for later reuse (§3.2, §4.8). A trailing 'Z'
// after the terminator marks the function non-throwing and is consumed but
// not surfaced.
func parseParams(c *Context) ([]ast.Type, bool) {
	var params []ast.Type
	for {
		if c.eat('@') {
			c.eat('Z')
			return params, true
		}
		if c.eof() {
			return params, true
		}
		// A bare 'X' in first position means "void": the parameter list is
		// empty and ends right there, with no further '@' list terminator.
		if len(params) == 0 {
			if b, ok := c.peek(); ok && b == 'X' {
				c.pos++
				c.eat('Z')
				return nil, true
			}
		}
		if d, ok := c.base10(); ok {
			t, found := c.getType(d)
			if !found {
				return nil, false
			}
			params = append(params, t)
			continue
		}
		start := c.pos
		t, ok := parseType(c)
		if !ok {
			return nil, false
		}
		c.memorizeType(t, c.pos-start)
		params = append(params, t)
	}
}

// parseFunction parses a free function's signature (§4.8): optional
// this-qualifiers only when parsingQualifiers is set (a pointer/reference-
// to-function pointee disables it), calling convention, return type,
// parameters.
func parseFunction(c *Context) (ast.Type, bool) {
	var quals ast.Qualifiers
	if c.parsingQualifiers {
		quals = parseFunctionQualifiers(c)
	}
	conv, ok := parseCallingConvention(c)
	if !ok {
		return nil, false
	}
	ret, ok := parseReturnType(c)
	if !ok {
		return nil, false
	}
	params, ok := parseParams(c)
	if !ok {
		return nil, false
	}
	return ast.Function{CallConv: conv, Qualifiers: quals, Return: ret, Params: params}, true
}

// parseMemberFunction parses a non-static member function's signature
// (§4.8): storage scope already consumed by the caller, a this-qualifier
// byte (the same A-H const/volatile/far table parseModifierByte reads
// elsewhere) unless the scope is static, calling convention, return,
// parameters. The return type's own modifier is pushed and popped around
// its parse, mirroring the pointee modifier discipline used elsewhere.
func parseMemberFunction(c *Context, storage ast.StorageScope) (ast.Type, bool) {
	var quals ast.Qualifiers
	if !storage.Has(ast.ScopeStatic) {
		mod, ok := parseModifierByte(c)
		if !ok {
			return nil, false
		}
		quals = mod
	}
	conv, ok := parseCallingConvention(c)
	if !ok {
		return nil, false
	}
	ret, ok := parseReturnType(c)
	if !ok {
		return nil, false
	}
	params, ok := parseParams(c)
	if !ok {
		return nil, false
	}
	return ast.MemberFunction{Storage: storage, Qualifiers: quals, CallConv: conv, Return: ret, Params: params}, true
}

// parseMemberFunctionPtr parses a pointer-to-member-function type (§4.6,
// §4.8): the owning class's path, an optional 'E' ptr64 marker, then either
// this-qualifiers (when parsingQualifiers) or a storage-scope byte, calling
// convention, return, parameters.
func parseMemberFunctionPtr(c *Context) (ast.Type, bool) {
	class, ok := parsePath(c)
	if !ok {
		return nil, false
	}
	ptr64 := c.eat('E')

	var quals ast.Qualifiers
	var storage ast.StorageScope
	if c.parsingQualifiers {
		quals = parseFunctionQualifiers(c)
	} else if b, ok := c.peek(); ok {
		if scope, found := storageScopeTable[b]; found {
			c.pos++
			storage = scope
		}
	}

	conv, ok := parseCallingConvention(c)
	if !ok {
		return nil, false
	}
	ret, ok := parseReturnType(c)
	if !ok {
		return nil, false
	}
	params, ok := parseParams(c)
	if !ok {
		return nil, false
	}
	return ast.MemberFunctionPtr{
		Class:      class,
		Ptr64:      ptr64,
		Storage:    storage,
		Qualifiers: quals,
		CallConv:   conv,
		Return:     ret,
		Params:     params,
	}, true
}

// parseArray parses §4.7: a dimension count N≥1 followed by N dimension
// lengths and an element type, with an optional `$C<A|B|C|D>` modifier
// override on the outermost dimension. Dimensions are built bottom-up so
// that the innermost Array wraps the element type directly and each
// enclosing Array wraps the one inside it — a chain, never a single node
// holding a dimension list.
func parseArray(c *Context) (ast.Type, bool) {
	n, ok := c.number()
	if !ok || n < 1 {
		return nil, false
	}

	var mod ast.Modifiers
	if c.eatSlice("$C") {
		m, ok := parseModifierByte(c)
		if !ok {
			return nil, false
		}
		mod = m
	}

	lengths := make([]int64, n)
	for i := int64(0); i < n; i++ {
		l, ok := c.number()
		if !ok || l < 0 {
			return nil, false
		}
		lengths[i] = l
	}

	elem, ok := parseType(c)
	if !ok {
		return nil, false
	}

	var arr ast.Type = elem
	for i := int(n) - 1; i >= 0; i-- {
		m := ast.Modifiers(0)
		if i == 0 {
			m = mod
		}
		arr = ast.Array{Length: lengths[i], Elem: arr, Mod: m}
	}
	return arr, true
}
